package repositories

import (
	"context"

	"printshop-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

const paymentColumns = `id, teacher_id, amount, payment_method, payment_date, reference, notes, created_at, updated_at`

func scanPayment(row interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.TeacherID, &p.Amount, &p.PaymentMethod, &p.PaymentDate,
		&p.Reference, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO payments(teacher_id, amount, payment_method, payment_date, reference, notes)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		p.TeacherID, p.Amount, p.PaymentMethod, p.PaymentDate, p.Reference, p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE id=$1`, id)
	return scanPayment(row)
}

func (r *PaymentRepository) List(ctx context.Context) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments ORDER BY payment_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) ListByTeacher(ctx context.Context, teacherID int) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE teacher_id=$1 ORDER BY payment_date DESC, id DESC`,
		teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE payments SET amount=$1, payment_method=$2, payment_date=$3, reference=$4, notes=$5, updated_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		p.Amount, p.PaymentMethod, p.PaymentDate, p.Reference, p.Notes, p.ID)
	return err
}

func (r *PaymentRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM payments WHERE id=$1`, id)
	return err
}
