package repositories

import (
	"context"

	"printshop-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TeacherRepository struct {
	DB *pgxpool.Pool
}

func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{DB: db}
}

func (r *TeacherRepository) Create(ctx context.Context, t *models.Teacher) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO teachers(name, phone, school, email, address, notes)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		t.Name, t.Phone, t.School, t.Email, t.Address, t.Notes,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TeacherRepository) Get(ctx context.Context, id int) (*models.Teacher, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, phone, school, email, address, notes, created_at, updated_at
         FROM teachers WHERE id=$1`, id)

	var teacher models.Teacher
	err := row.Scan(&teacher.ID, &teacher.Name, &teacher.Phone, &teacher.School,
		&teacher.Email, &teacher.Address, &teacher.Notes, &teacher.CreatedAt, &teacher.UpdatedAt)
	return &teacher, err
}

func (r *TeacherRepository) List(ctx context.Context) ([]*models.Teacher, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, phone, school, email, address, notes, created_at, updated_at
         FROM teachers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		err := rows.Scan(&teacher.ID, &teacher.Name, &teacher.Phone, &teacher.School,
			&teacher.Email, &teacher.Address, &teacher.Notes, &teacher.CreatedAt, &teacher.UpdatedAt)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}
	return teachers, rows.Err()
}

func (r *TeacherRepository) Update(ctx context.Context, t *models.Teacher) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE teachers SET name=$1, phone=$2, school=$3, email=$4, address=$5, notes=$6, updated_at=CURRENT_TIMESTAMP
         WHERE id=$7`,
		t.Name, t.Phone, t.School, t.Email, t.Address, t.Notes, t.ID)
	return err
}

// DeleteCascade removes a teacher together with every operation and payment
// referencing it. The three deletes run in one transaction so a crash never
// leaves orphaned records.
func (r *TeacherRepository) DeleteCascade(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM operations WHERE teacher_id=$1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE teacher_id=$1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM teachers WHERE id=$1`, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
