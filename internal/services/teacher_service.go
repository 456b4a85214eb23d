package services

import (
	"context"
	"errors"

	"printshop-backend/internal/cache"
	"printshop-backend/internal/ledger"
	"printshop-backend/internal/models"
	"printshop-backend/internal/realtime"
	"printshop-backend/internal/repositories"
)

type TeacherService struct {
	Repo          *repositories.TeacherRepository
	OperationRepo *repositories.OperationRepository
	PaymentRepo   *repositories.PaymentRepository
	Hub           *realtime.Hub
}

func NewTeacherService(
	repo *repositories.TeacherRepository,
	operationRepo *repositories.OperationRepository,
	paymentRepo *repositories.PaymentRepository,
	hub *realtime.Hub,
) *TeacherService {
	return &TeacherService{
		Repo:          repo,
		OperationRepo: operationRepo,
		PaymentRepo:   paymentRepo,
		Hub:           hub,
	}
}

/// TeacherAccount is a teacher's full account view: the ledger plus every
// operation and payment, as shown on the account details screen
type TeacherAccount struct {
	Teacher    *models.Teacher      `json:"teacher"`
	Ledger     models.TeacherLedger `json:"ledger"`
	Operations []*models.Operation  `json:"operations"`
	Payments   []*models.Payment    `json:"payments"`
}

func (s *TeacherService) CreateTeacher(ctx context.Context, req *models.CreateTeacherRequest) (*models.Teacher, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, errors.New("name and phone are required")
	}

	teacher := &models.Teacher{
		Name:    req.Name,
		Phone:   req.Phone,
		School:  req.School,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	}

	if err := s.Repo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	cache.InvalidateDerived(ctx)
	s.Hub.Notify("teachers")
	return teacher, nil
}

func (s *TeacherService) GetTeacher(ctx context.Context, id int) (*models.Teacher, error) {
	return s.Repo.Get(ctx, id)
}

func (s *TeacherService) ListTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.Repo.List(ctx)
}

// GetAccount loads a teacher's records and computes the ledger over them
func (s *TeacherService) GetAccount(ctx context.Context, id int) (*TeacherAccount, error) {
	teacher, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	operations, err := s.OperationRepo.ListByTeacher(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.PaymentRepo.ListByTeacher(ctx, id)
	if err != nil {
		return nil, err
	}

	return &TeacherAccount{
		Teacher:    teacher,
		Ledger:     ledger.ComputeTeacherLedger(id, operations, payments),
		Operations: operations,
		Payments:   payments,
	}, nil
}

func (s *TeacherService) UpdateTeacher(ctx context.Context, id int, req *models.UpdateTeacherRequest) (*models.Teacher, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, errors.New("name and phone are required")
	}

	teacher := &models.Teacher{
		ID:      id,
		Name:    req.Name,
		Phone:   req.Phone,
		School:  req.School,
		Email:   req.Email,
		Address: req.Address,
		Notes:   req.Notes,
	}

	if err := s.Repo.Update(ctx, teacher); err != nil {
		return nil, err
	}

	cache.InvalidateDerived(ctx)
	s.Hub.Notify("teachers")
	return s.Repo.Get(ctx, id)
}

// DeleteTeacher removes the teacher and cascades to their operations and
// payments
func (s *TeacherService) DeleteTeacher(ctx context.Context, id int) error {
	if err := s.Repo.DeleteCascade(ctx, id); err != nil {
		return err
	}
	cache.InvalidateDerived(ctx)
	s.Hub.Notify("teachers")
	s.Hub.Notify("operations")
	s.Hub.Notify("payments")
	return nil
}
