package services

import (
	"context"
	"log"

	"printshop-backend/internal/cache"
	"printshop-backend/internal/metrics"
	"printshop-backend/internal/models"
	"printshop-backend/internal/normalize"
	"printshop-backend/internal/realtime"
	"printshop-backend/internal/repositories"
)

// ImportRequest is a bulk export from the previous document store. Each
// slice holds raw documents in their original loose shape.
type ImportRequest struct {
	Teachers   []normalize.Document `json:"teachers"`
	Operations []normalize.Document `json:"operations"`
	Payments   []normalize.Document `json:"payments"`
	Expenses   []normalize.Document `json:"expenses"`
}

// ImportResult reports what a bulk import did. Skipped counts records that
// referenced a teacher missing from the batch and the database.
type ImportResult struct {
	TeachersImported   int `json:"teachers_imported"`
	OperationsImported int `json:"operations_imported"`
	PaymentsImported   int `json:"payments_imported"`
	ExpensesImported   int `json:"expenses_imported"`
	Skipped            int `json:"skipped"`
	Anomalies          int `json:"anomalies"`
}

type ImportService struct {
	TeacherRepo   *repositories.TeacherRepository
	OperationRepo *repositories.OperationRepository
	PaymentRepo   *repositories.PaymentRepository
	ExpenseRepo   *repositories.ExpenseRepository
	Hub           *realtime.Hub
}

func NewImportService(
	teacherRepo *repositories.TeacherRepository,
	operationRepo *repositories.OperationRepository,
	paymentRepo *repositories.PaymentRepository,
	expenseRepo *repositories.ExpenseRepository,
	hub *realtime.Hub,
) *ImportService {
	return &ImportService{
		TeacherRepo:   teacherRepo,
		OperationRepo: operationRepo,
		PaymentRepo:   paymentRepo,
		ExpenseRepo:   expenseRepo,
		Hub:           hub,
	}
}

// Import normalizes and persists a bulk export. Teachers go first so their
// new database IDs can remap the teacher_id references of the other
// collections. One bad record never aborts the batch.
func (s *ImportService) Import(ctx context.Context, req *ImportRequest) (*ImportResult, error) {
	var counter normalize.Counter
	result := &ImportResult{}

	// old document ID -> new database ID
	idMap := make(map[int]int, len(req.Teachers))

	for _, doc := range req.Teachers {
		t := normalize.Teacher(doc, &counter)
		oldID := t.ID
		t.ID = 0
		if t.Name == "" {
			result.Skipped++
			continue
		}
		if err := s.TeacherRepo.Create(ctx, t); err != nil {
			log.Printf("[Import] teacher %q: %v", t.Name, err)
			result.Skipped++
			continue
		}
		if oldID != 0 {
			idMap[oldID] = t.ID
		}
		result.TeachersImported++
	}

	for _, doc := range req.Operations {
		op := normalize.Operation(doc, &counter)
		op.ID = 0
		newID, ok := idMap[op.TeacherID]
		if !ok {
			result.Skipped++
			continue
		}
		op.TeacherID = newID
		if !validOperationType(op.Type) {
			op.Type = models.OperationTypeOther
			counter.Anomalies++
		}
		if err := s.OperationRepo.Create(ctx, op); err != nil {
			log.Printf("[Import] operation for teacher %d: %v", op.TeacherID, err)
			result.Skipped++
			continue
		}
		result.OperationsImported++
	}

	for _, doc := range req.Payments {
		p := normalize.Payment(doc, &counter)
		p.ID = 0
		newID, ok := idMap[p.TeacherID]
		if !ok {
			result.Skipped++
			continue
		}
		p.TeacherID = newID
		if !validPaymentMethod(p.PaymentMethod) {
			p.PaymentMethod = models.PaymentMethodCash
			counter.Anomalies++
		}
		if err := s.PaymentRepo.Create(ctx, p); err != nil {
			log.Printf("[Import] payment for teacher %d: %v", p.TeacherID, err)
			result.Skipped++
			continue
		}
		result.PaymentsImported++
	}

	for _, doc := range req.Expenses {
		e := normalize.Expense(doc, &counter)
		e.ID = 0
		if !validExpenseType(e.Type) {
			e.Type = models.ExpenseTypeOther
			counter.Anomalies++
		}
		if e.PaymentMethod != "" && !validPaymentMethod(e.PaymentMethod) {
			e.PaymentMethod = models.PaymentMethodCash
			counter.Anomalies++
		}
		if err := s.ExpenseRepo.Create(ctx, e); err != nil {
			log.Printf("[Import] expense %q: %v", e.Description, err)
			result.Skipped++
			continue
		}
		result.ExpensesImported++
	}

	result.Anomalies = counter.Anomalies
	metrics.NormalizationAnomalies.Add(float64(counter.Anomalies))

	cache.InvalidateDerived(ctx)
	s.Hub.Notify("teachers")
	s.Hub.Notify("operations")
	s.Hub.Notify("payments")
	s.Hub.Notify("expenses")

	log.Printf("[Import] done: %d teachers, %d operations, %d payments, %d expenses, %d skipped, %d anomalies",
		result.TeachersImported, result.OperationsImported, result.PaymentsImported,
		result.ExpensesImported, result.Skipped, result.Anomalies)
	return result, nil
}
