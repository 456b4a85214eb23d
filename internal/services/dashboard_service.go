package services

import (
	"context"
	"encoding/json"

	"printshop-backend/internal/cache"
	"printshop-backend/internal/ledger"
	"printshop-backend/internal/models"
	"printshop-backend/internal/repositories"
)

// DebtorEntry is one teacher with outstanding debt on the dashboard
type DebtorEntry struct {
	TeacherID int     `json:"teacher_id"`
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Debt      float64 `json:"debt"`
}

// DashboardSummary is the landing page snapshot. Profit and TotalCost are
// admin only and are stripped before serving to a secretary.
type DashboardSummary struct {
	TeacherCount    int           `json:"teacher_count"`
	OperationCount  int           `json:"operation_count"`
	PaymentCount    int           `json:"payment_count"`
	ExpenseCount    int           `json:"expense_count"`
	TotalOperations float64       `json:"total_operations"`
	TotalPayments   float64       `json:"total_payments"`
	TotalExpenses   float64       `json:"total_expenses"`
	TotalDebt       float64       `json:"total_debt"`
	Debtors         []DebtorEntry `json:"debtors"`
	TotalCost       *float64      `json:"total_cost,omitempty"`
	Profit          *float64      `json:"profit,omitempty"`
}

type DashboardService struct {
	TeacherRepo   *repositories.TeacherRepository
	OperationRepo *repositories.OperationRepository
	PaymentRepo   *repositories.PaymentRepository
	ExpenseRepo   *repositories.ExpenseRepository
}

func NewDashboardService(
	teacherRepo *repositories.TeacherRepository,
	operationRepo *repositories.OperationRepository,
	paymentRepo *repositories.PaymentRepository,
	expenseRepo *repositories.ExpenseRepository,
) *DashboardService {
	return &DashboardService{
		TeacherRepo:   teacherRepo,
		OperationRepo: operationRepo,
		PaymentRepo:   paymentRepo,
		ExpenseRepo:   expenseRepo,
	}
}

// GetSummary builds the dashboard snapshot. The full summary is cached;
// redaction for non-admin callers happens after the cache so both roles
// share one entry.
func (s *DashboardService) GetSummary(ctx context.Context, includeProfit bool) (*DashboardSummary, error) {
	if data, ok := cache.GetCachedDashboard(ctx); ok {
		var summary DashboardSummary
		if err := json.Unmarshal(data, &summary); err == nil {
			redactSummary(&summary, includeProfit)
			return &summary, nil
		}
	}

	teachers, err := s.TeacherRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	operations, err := s.OperationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ExpenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TeacherCount:   len(teachers),
		OperationCount: len(operations),
		PaymentCount:   len(payments),
		ExpenseCount:   len(expenses),
		Debtors:        []DebtorEntry{},
	}

	var totalCost float64
	for _, op := range operations {
		summary.TotalOperations += op.Amount
		if op.Cost != nil {
			totalCost += *op.Cost
		}
	}
	for _, p := range payments {
		summary.TotalPayments += p.Amount
	}
	for _, e := range expenses {
		summary.TotalExpenses += e.Amount
	}

	for _, t := range teachers {
		lg := ledger.ComputeTeacherLedger(t.ID,
			filterOperationsByTeacher(operations, t.ID),
			filterPaymentsByTeacher(payments, t.ID))
		if lg.Status == models.LedgerStatusDebt {
			summary.TotalDebt += lg.Debt
			summary.Debtors = append(summary.Debtors, DebtorEntry{
				TeacherID: t.ID,
				Name:      t.Name,
				Phone:     t.Phone,
				Debt:      lg.Debt,
			})
		}
	}

	profit := ledger.ComputeBusinessProfit(payments, expenses, operations)
	summary.TotalCost = &totalCost
	summary.Profit = &profit

	if data, err := json.Marshal(summary); err == nil {
		cache.CacheDashboard(ctx, data)
	}

	redactSummary(summary, includeProfit)
	return summary, nil
}

func redactSummary(summary *DashboardSummary, includeProfit bool) {
	if includeProfit {
		return
	}
	summary.TotalCost = nil
	summary.Profit = nil
}

func filterOperationsByTeacher(operations []*models.Operation, teacherID int) []*models.Operation {
	var out []*models.Operation
	for _, op := range operations {
		if op.TeacherID == teacherID {
			out = append(out, op)
		}
	}
	return out
}

func filterPaymentsByTeacher(payments []*models.Payment, teacherID int) []*models.Payment {
	var out []*models.Payment
	for _, p := range payments {
		if p.TeacherID == teacherID {
			out = append(out, p)
		}
	}
	return out
}
