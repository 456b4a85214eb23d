package repositories

import (
	"context"

	"printshop-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository struct {
	DB *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

const expenseColumns = `id, type, description, amount, expense_date, category, vendor, payment_method, notes, created_at, updated_at`

func scanExpense(row interface{ Scan(...interface{}) error }) (*models.Expense, error) {
	var e models.Expense
	err := row.Scan(&e.ID, &e.Type, &e.Description, &e.Amount, &e.ExpenseDate,
		&e.Category, &e.Vendor, &e.PaymentMethod, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	return &e, err
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO expenses(type, description, amount, expense_date, category, vendor, payment_method, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		e.Type, e.Description, e.Amount, e.ExpenseDate, e.Category, e.Vendor,
		e.PaymentMethod, e.Notes,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *ExpenseRepository) Get(ctx context.Context, id int) (*models.Expense, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id=$1`, id)
	return scanExpense(row)
}

func (r *ExpenseRepository) List(ctx context.Context) ([]*models.Expense, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses ORDER BY expense_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, e *models.Expense) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE expenses SET type=$1, description=$2, amount=$3, expense_date=$4, category=$5, vendor=$6, payment_method=$7, notes=$8, updated_at=CURRENT_TIMESTAMP
         WHERE id=$9`,
		e.Type, e.Description, e.Amount, e.ExpenseDate, e.Category, e.Vendor,
		e.PaymentMethod, e.Notes, e.ID)
	return err
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	return err
}
