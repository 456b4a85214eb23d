package ledger

import (
	"testing"

	"printshop-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func op(teacherID int, amount, cost float64) *models.Operation {
	return &models.Operation{TeacherID: teacherID, Amount: amount, Cost: &cost}
}

func pay(teacherID int, amount float64) *models.Payment {
	return &models.Payment{TeacherID: teacherID, Amount: amount}
}

func TestComputeTeacherLedger(t *testing.T) {
	operations := []*models.Operation{
		op(1, 300, 50),
		op(1, 200, 0),
		op(2, 999, 0), // different teacher, ignored
	}
	payments := []*models.Payment{
		pay(1, 300),
		pay(2, 500),
	}

	l := ComputeTeacherLedger(1, operations, payments)
	assert.Equal(t, 1, l.TeacherID)
	assert.Equal(t, 500.0, l.TotalOperations)
	assert.Equal(t, 300.0, l.TotalPayments)
	assert.Equal(t, 200.0, l.Debt)
	assert.Equal(t, models.LedgerStatusDebt, l.Status)
}

func TestComputeTeacherLedgerNoRecords(t *testing.T) {
	l := ComputeTeacherLedger(7, nil, nil)
	assert.Equal(t, 0.0, l.TotalOperations)
	assert.Equal(t, 0.0, l.TotalPayments)
	assert.Equal(t, 0.0, l.Debt)
	assert.Equal(t, models.LedgerStatusClear, l.Status)
}

func TestComputeTeacherLedgerExactlySettled(t *testing.T) {
	operations := []*models.Operation{op(1, 500, 0)}
	payments := []*models.Payment{pay(1, 200), pay(1, 300)}

	l := ComputeTeacherLedger(1, operations, payments)
	assert.Equal(t, 0.0, l.Debt)
	assert.Equal(t, models.LedgerStatusClear, l.Status)
}

func TestComputeTeacherLedgerOverpaid(t *testing.T) {
	operations := []*models.Operation{op(1, 500, 0)}
	payments := []*models.Payment{pay(1, 600)}

	l := ComputeTeacherLedger(1, operations, payments)
	assert.Equal(t, -100.0, l.Debt)
	assert.Equal(t, models.LedgerStatusOverpaid, l.Status)
}

func TestClassifyStatusBoundary(t *testing.T) {
	// No epsilon tolerance: one cent either side flips the classification
	assert.Equal(t, models.LedgerStatusClear, ClassifyStatus(0))
	assert.Equal(t, models.LedgerStatusDebt, ClassifyStatus(0.01))
	assert.Equal(t, models.LedgerStatusOverpaid, ClassifyStatus(-0.01))
}

func TestComputeBusinessProfit(t *testing.T) {
	payments := []*models.Payment{pay(1, 1000), pay(2, 500)}
	expenses := []*models.Expense{
		{Amount: 200},
		{Amount: 100},
	}
	operations := []*models.Operation{
		op(1, 800, 150),
		op(2, 400, 0), // cost never recorded
	}

	profit := ComputeBusinessProfit(payments, expenses, operations)
	assert.Equal(t, 1050.0, profit) // 1500 - 300 - 150
}

func TestComputeBusinessProfitEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ComputeBusinessProfit(nil, nil, nil))
}
