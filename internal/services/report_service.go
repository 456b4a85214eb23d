package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"

	"printshop-backend/internal/cache"
	"printshop-backend/internal/metrics"
	"printshop-backend/internal/models"
	"printshop-backend/internal/reports"
	"printshop-backend/internal/repositories"
)

type ReportService struct {
	TeacherRepo     *repositories.TeacherRepository
	OperationRepo   *repositories.OperationRepository
	PaymentRepo     *repositories.PaymentRepository
	ExpenseRepo     *repositories.ExpenseRepository
	SavedReportRepo *repositories.SavedReportRepository
}

func NewReportService(
	teacherRepo *repositories.TeacherRepository,
	operationRepo *repositories.OperationRepository,
	paymentRepo *repositories.PaymentRepository,
	expenseRepo *repositories.ExpenseRepository,
	savedReportRepo *repositories.SavedReportRepository,
) *ReportService {
	return &ReportService{
		TeacherRepo:     teacherRepo,
		OperationRepo:   operationRepo,
		PaymentRepo:     paymentRepo,
		ExpenseRepo:     expenseRepo,
		SavedReportRepo: savedReportRepo,
	}
}

// loadSnapshot reads every collection the assembler may need. Expense-only
// reports skip the teacher collections.
func (s *ReportService) loadSnapshot(ctx context.Context, cfg models.ReportConfig) (reports.Snapshot, error) {
	var snap reports.Snapshot
	var err error

	if !cfg.Type.ExpenseOnly() {
		if snap.Teachers, err = s.TeacherRepo.List(ctx); err != nil {
			return snap, err
		}
		if snap.Operations, err = s.OperationRepo.List(ctx); err != nil {
			return snap, err
		}
		if snap.Payments, err = s.PaymentRepo.List(ctx); err != nil {
			return snap, err
		}
	}
	if cfg.Type.ExpenseOnly() || cfg.IncludeExpenses {
		if snap.Expenses, err = s.ExpenseRepo.List(ctx); err != nil {
			return snap, err
		}
	}
	return snap, nil
}

// configHash keys the report cache. GeneratedBy is part of the payload so
// it participates in the key.
func configHash(cfg models.ReportConfig, generatedBy string) string {
	data, err := json.Marshal(cfg)
	if err != nil {
		return ""
	}
	h := sha256.Sum256(append(data, []byte(generatedBy)...))
	return hex.EncodeToString(h[:])[:32]
}

// GenerateReport assembles a report from live data, consulting the cache
// first. Config errors are never cached.
func (s *ReportService) GenerateReport(ctx context.Context, cfg models.ReportConfig, generatedBy string) (*models.ReportResult, error) {
	cfg.Normalize()

	key := configHash(cfg, generatedBy)
	if key != "" {
		if data, ok := cache.GetCachedReport(ctx, key); ok {
			var result models.ReportResult
			if err := json.Unmarshal(data, &result); err == nil {
				metrics.ReportsGenerated.WithLabelValues(string(cfg.Type), "cached").Inc()
				return &result, nil
			}
		}
	}

	snap, err := s.loadSnapshot(ctx, cfg)
	if err != nil {
		metrics.ReportsGenerated.WithLabelValues(string(cfg.Type), "error").Inc()
		return nil, err
	}

	result, err := reports.Assemble(cfg, snap, generatedBy)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrNoTeachersSelected):
			metrics.ReportsGenerated.WithLabelValues(string(cfg.Type), "no_selection").Inc()
		case errors.Is(err, reports.ErrNothingToReport):
			metrics.ReportsGenerated.WithLabelValues(string(cfg.Type), "empty").Inc()
		default:
			metrics.ReportsGenerated.WithLabelValues(string(cfg.Type), "error").Inc()
		}
		return nil, err
	}

	if key != "" {
		if data, err := json.Marshal(result); err == nil {
			cache.CacheReport(ctx, key, data)
		}
	}

	metrics.ReportsGenerated.WithLabelValues(string(cfg.Type), "ok").Inc()
	return result, nil
}

// SaveReport persists a named config. Saving over an existing name replaces
// its config.
func (s *ReportService) SaveReport(ctx context.Context, req *models.SaveReportRequest, createdByID int) (*models.SavedReport, error) {
	if req.Name == "" {
		return nil, errors.New("name is required")
	}

	cfg := req.Config
	cfg.Normalize()

	saved := &models.SavedReport{
		Name:        req.Name,
		Config:      cfg,
		CreatedByID: createdByID,
	}
	if err := s.SavedReportRepo.Create(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *ReportService) ListSavedReports(ctx context.Context) ([]*models.SavedReport, error) {
	return s.SavedReportRepo.List(ctx)
}

func (s *ReportService) GetSavedReport(ctx context.Context, id int) (*models.SavedReport, error) {
	return s.SavedReportRepo.Get(ctx, id)
}

func (s *ReportService) DeleteSavedReport(ctx context.Context, id int) error {
	return s.SavedReportRepo.Delete(ctx, id)
}
