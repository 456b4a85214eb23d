package services

import (
	"context"
	"errors"

	"printshop-backend/internal/cache"
	"printshop-backend/internal/models"
	"printshop-backend/internal/realtime"
	"printshop-backend/internal/repositories"
)

func validExpenseType(t models.ExpenseType) bool {
	for _, known := range models.ExpenseTypes {
		if t == known {
			return true
		}
	}
	return false
}

type ExpenseService struct {
	Repo *repositories.ExpenseRepository
	Hub  *realtime.Hub
}

func NewExpenseService(repo *repositories.ExpenseRepository, hub *realtime.Hub) *ExpenseService {
	return &ExpenseService{Repo: repo, Hub: hub}
}

func (s *ExpenseService) CreateExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error) {
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if !validExpenseType(req.Type) {
		return nil, errors.New("unknown expense type")
	}
	if req.PaymentMethod != "" && !validPaymentMethod(req.PaymentMethod) {
		return nil, errors.New("unknown payment method")
	}

	date, err := parseRequestDate(req.ExpenseDate)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Type:          req.Type,
		Description:   req.Description,
		Amount:        req.Amount,
		ExpenseDate:   date,
		Category:      req.Category,
		Vendor:        req.Vendor,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
	if err := s.Repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	cache.InvalidateDerived(ctx)
	s.Hub.Notify("expenses")
	return expense, nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, id int) (*models.Expense, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ExpenseService) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.Repo.List(ctx)
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, id int, req *models.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if !validExpenseType(req.Type) {
		return nil, errors.New("unknown expense type")
	}
	if req.PaymentMethod != "" && !validPaymentMethod(req.PaymentMethod) {
		return nil, errors.New("unknown payment method")
	}

	date, err := parseRequestDate(req.ExpenseDate)
	if err != nil {
		return nil, err
	}

	expense.Type = req.Type
	expense.Description = req.Description
	expense.Amount = req.Amount
	expense.ExpenseDate = date
	expense.Category = req.Category
	expense.Vendor = req.Vendor
	expense.PaymentMethod = req.PaymentMethod
	expense.Notes = req.Notes

	if err := s.Repo.Update(ctx, expense); err != nil {
		return nil, err
	}

	cache.InvalidateDerived(ctx)
	s.Hub.Notify("expenses")
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDerived(ctx)
	s.Hub.Notify("expenses")
	return nil
}
