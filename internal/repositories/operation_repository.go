package repositories

import (
	"context"

	"printshop-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OperationRepository struct {
	DB *pgxpool.Pool
}

func NewOperationRepository(db *pgxpool.Pool) *OperationRepository {
	return &OperationRepository{DB: db}
}

const operationColumns = `id, teacher_id, type, description, quantity, unit_price, amount, cost, operation_date, notes, created_at, updated_at`

func scanOperation(row interface{ Scan(...interface{}) error }) (*models.Operation, error) {
	var op models.Operation
	var cost float64
	err := row.Scan(&op.ID, &op.TeacherID, &op.Type, &op.Description, &op.Quantity,
		&op.UnitPrice, &op.Amount, &cost, &op.OperationDate, &op.Notes,
		&op.CreatedAt, &op.UpdatedAt)
	op.Cost = &cost
	return &op, err
}

// costValue flattens the redactable pointer for the NOT NULL cost column.
func costValue(op *models.Operation) float64 {
	if op.Cost == nil {
		return 0
	}
	return *op.Cost
}

func (r *OperationRepository) Create(ctx context.Context, op *models.Operation) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO operations(teacher_id, type, description, quantity, unit_price, amount, cost, operation_date, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at, updated_at`,
		op.TeacherID, op.Type, op.Description, op.Quantity, op.UnitPrice,
		op.Amount, costValue(op), op.OperationDate, op.Notes,
	).Scan(&op.ID, &op.CreatedAt, &op.UpdatedAt)
}

func (r *OperationRepository) Get(ctx context.Context, id int) (*models.Operation, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+operationColumns+` FROM operations WHERE id=$1`, id)
	return scanOperation(row)
}

func (r *OperationRepository) List(ctx context.Context) ([]*models.Operation, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+operationColumns+` FROM operations ORDER BY operation_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var operations []*models.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		operations = append(operations, op)
	}
	return operations, rows.Err()
}

func (r *OperationRepository) ListByTeacher(ctx context.Context, teacherID int) ([]*models.Operation, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+operationColumns+` FROM operations WHERE teacher_id=$1 ORDER BY operation_date DESC, id DESC`,
		teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var operations []*models.Operation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		operations = append(operations, op)
	}
	return operations, rows.Err()
}

func (r *OperationRepository) Update(ctx context.Context, op *models.Operation) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE operations SET type=$1, description=$2, quantity=$3, unit_price=$4, amount=$5, cost=$6, operation_date=$7, notes=$8, updated_at=CURRENT_TIMESTAMP
         WHERE id=$9`,
		op.Type, op.Description, op.Quantity, op.UnitPrice, op.Amount, costValue(op),
		op.OperationDate, op.Notes, op.ID)
	return err
}

func (r *OperationRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM operations WHERE id=$1`, id)
	return err
}
