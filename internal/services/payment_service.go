package services

import (
	"context"
	"errors"

	"printshop-backend/internal/cache"
	"printshop-backend/internal/models"
	"printshop-backend/internal/realtime"
	"printshop-backend/internal/repositories"
)

func validPaymentMethod(m models.PaymentMethod) bool {
	for _, known := range models.PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

type PaymentService struct {
	Repo        *repositories.PaymentRepository
	TeacherRepo *repositories.TeacherRepository
	Hub         *realtime.Hub
}

func NewPaymentService(repo *repositories.PaymentRepository, teacherRepo *repositories.TeacherRepository, hub *realtime.Hub) *PaymentService {
	return &PaymentService{Repo: repo, TeacherRepo: teacherRepo, Hub: hub}
}

func (s *PaymentService) CreatePayment(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	if req.TeacherID <= 0 {
		return nil, errors.New("teacher_id is required")
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return nil, errors.New("unknown payment method")
	}

	if _, err := s.TeacherRepo.Get(ctx, req.TeacherID); err != nil {
		return nil, errors.New("teacher not found")
	}

	date, err := parseRequestDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		TeacherID:     req.TeacherID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   date,
		Reference:     req.Reference,
		Notes:         req.Notes,
	}
	if err := s.Repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	cache.InvalidateDerived(ctx)
	s.Hub.Notify("payments")
	return payment, nil
}

func (s *PaymentService) GetPayment(ctx context.Context, id int) (*models.Payment, error) {
	return s.Repo.Get(ctx, id)
}

func (s *PaymentService) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	return s.Repo.List(ctx)
}

func (s *PaymentService) ListByTeacher(ctx context.Context, teacherID int) ([]*models.Payment, error) {
	return s.Repo.ListByTeacher(ctx, teacherID)
}

func (s *PaymentService) UpdatePayment(ctx context.Context, id int, req *models.UpdatePaymentRequest) (*models.Payment, error) {
	payment, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return nil, errors.New("unknown payment method")
	}

	date, err := parseRequestDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	payment.Amount = req.Amount
	payment.PaymentMethod = req.PaymentMethod
	payment.PaymentDate = date
	payment.Reference = req.Reference
	payment.Notes = req.Notes

	if err := s.Repo.Update(ctx, payment); err != nil {
		return nil, err
	}

	cache.InvalidateDerived(ctx)
	s.Hub.Notify("payments")
	return payment, nil
}

func (s *PaymentService) DeletePayment(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDerived(ctx)
	s.Hub.Notify("payments")
	return nil
}
