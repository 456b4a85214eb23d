package repositories

import (
	"context"
	"encoding/json"

	"printshop-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SavedReportRepository struct {
	DB *pgxpool.Pool
}

func NewSavedReportRepository(db *pgxpool.Pool) *SavedReportRepository {
	return &SavedReportRepository{DB: db}
}

func (r *SavedReportRepository) Create(ctx context.Context, s *models.SavedReport) error {
	configJSON, err := json.Marshal(s.Config)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO saved_reports(name, config, config_version, created_by_id)
         VALUES($1, $2, $3, $4)
         ON CONFLICT (name) DO UPDATE SET config=EXCLUDED.config, config_version=EXCLUDED.config_version, updated_at=CURRENT_TIMESTAMP
         RETURNING id, created_at, updated_at`,
		s.Name, configJSON, s.Config.Version, s.CreatedByID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *SavedReportRepository) Get(ctx context.Context, id int) (*models.SavedReport, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT sr.id, sr.name, sr.config, sr.config_version, sr.created_by_id, COALESCE(u.name, ''), sr.created_at, sr.updated_at
         FROM saved_reports sr
         LEFT JOIN users u ON u.id = sr.created_by_id
         WHERE sr.id=$1`, id)
	return scanSavedReport(row)
}

func (r *SavedReportRepository) List(ctx context.Context) ([]*models.SavedReport, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT sr.id, sr.name, sr.config, sr.config_version, sr.created_by_id, COALESCE(u.name, ''), sr.created_at, sr.updated_at
         FROM saved_reports sr
         LEFT JOIN users u ON u.id = sr.created_by_id
         ORDER BY sr.updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*models.SavedReport
	for rows.Next() {
		s, err := scanSavedReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, s)
	}
	return reports, rows.Err()
}

func (r *SavedReportRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM saved_reports WHERE id=$1`, id)
	return err
}

// scanSavedReport decodes the stored config and normalizes it, so configs
// serialized under an older shape keep their original meaning.
func scanSavedReport(row interface{ Scan(...interface{}) error }) (*models.SavedReport, error) {
	var s models.SavedReport
	var configJSON []byte
	var storedVersion int
	err := row.Scan(&s.ID, &s.Name, &configJSON, &storedVersion, &s.CreatedByID,
		&s.CreatedByName, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(configJSON, &s.Config); err != nil {
		return nil, err
	}
	if s.Config.Version == 0 {
		s.Config.Version = storedVersion
	}
	s.Config.Normalize()
	return &s, nil
}
