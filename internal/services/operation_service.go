package services

import (
	"context"
	"errors"
	"time"

	"printshop-backend/internal/cache"
	"printshop-backend/internal/models"
	"printshop-backend/internal/realtime"
	"printshop-backend/internal/repositories"
	"printshop-backend/internal/timeutil"
)

// parseRequestDate accepts YYYY-MM-DD or RFC3339 and interprets bare dates
// in the shop timezone. An empty string means today.
func parseRequestDate(s string) (time.Time, error) {
	if s == "" {
		return timeutil.Now(), nil
	}
	if t, err := timeutil.ParseLocal(timeutil.DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return timeutil.ToLocal(t), nil
	}
	return time.Time{}, errors.New("invalid date, expected YYYY-MM-DD")
}

func validOperationType(t models.OperationType) bool {
	for _, known := range models.OperationTypes {
		if t == known {
			return true
		}
	}
	return false
}

type OperationService struct {
	Repo        *repositories.OperationRepository
	TeacherRepo *repositories.TeacherRepository
	Hub         *realtime.Hub
}

func NewOperationService(repo *repositories.OperationRepository, teacherRepo *repositories.TeacherRepository, hub *realtime.Hub) *OperationService {
	return &OperationService{Repo: repo, TeacherRepo: teacherRepo, Hub: hub}
}

func (s *OperationService) CreateOperation(ctx context.Context, req *models.CreateOperationRequest) (*models.Operation, error) {
	if req.TeacherID <= 0 {
		return nil, errors.New("teacher_id is required")
	}
	if !validOperationType(req.Type) {
		return nil, errors.New("unknown operation type")
	}
	if req.Amount < 0 {
		return nil, errors.New("amount must not be negative")
	}
	if req.Cost < 0 {
		return nil, errors.New("cost must not be negative")
	}

	// Operations must reference an existing teacher
	if _, err := s.TeacherRepo.Get(ctx, req.TeacherID); err != nil {
		return nil, errors.New("teacher not found")
	}

	date, err := parseRequestDate(req.OperationDate)
	if err != nil {
		return nil, err
	}

	cost := req.Cost
	op := &models.Operation{
		TeacherID:     req.TeacherID,
		Type:          req.Type,
		Description:   req.Description,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		Amount:        req.Amount,
		Cost:          &cost,
		OperationDate: date,
		Notes:         req.Notes,
	}
	if err := s.Repo.Create(ctx, op); err != nil {
		return nil, err
	}

	cache.InvalidateDerived(ctx)
	s.Hub.Notify("operations")
	return op, nil
}

func (s *OperationService) GetOperation(ctx context.Context, id int) (*models.Operation, error) {
	return s.Repo.Get(ctx, id)
}

func (s *OperationService) ListOperations(ctx context.Context) ([]*models.Operation, error) {
	return s.Repo.List(ctx)
}

func (s *OperationService) ListByTeacher(ctx context.Context, teacherID int) ([]*models.Operation, error) {
	return s.Repo.ListByTeacher(ctx, teacherID)
}

func (s *OperationService) UpdateOperation(ctx context.Context, id int, req *models.UpdateOperationRequest) (*models.Operation, error) {
	op, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !validOperationType(req.Type) {
		return nil, errors.New("unknown operation type")
	}
	if req.Amount < 0 {
		return nil, errors.New("amount must not be negative")
	}
	if req.Cost < 0 {
		return nil, errors.New("cost must not be negative")
	}

	date, err := parseRequestDate(req.OperationDate)
	if err != nil {
		return nil, err
	}

	op.Type = req.Type
	op.Description = req.Description
	op.Quantity = req.Quantity
	op.UnitPrice = req.UnitPrice
	op.Amount = req.Amount
	cost := req.Cost
	op.Cost = &cost
	op.OperationDate = date
	op.Notes = req.Notes

	if err := s.Repo.Update(ctx, op); err != nil {
		return nil, err
	}

	cache.InvalidateDerived(ctx)
	s.Hub.Notify("operations")
	return op, nil
}

func (s *OperationService) DeleteOperation(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDerived(ctx)
	s.Hub.Notify("operations")
	return nil
}
