// Package ledger computes the financial position of teachers and the shop.
// All functions are pure over in-memory snapshots; inputs are never mutated.
package ledger

import (
	"printshop-backend/internal/models"
)

// ComputeTeacherLedger sums the operations billed to and payments received
// from one teacher. A teacher with no records gets zeros with status clear.
func ComputeTeacherLedger(teacherID int, operations []*models.Operation, payments []*models.Payment) models.TeacherLedger {
	var totalOperations, totalPayments float64
	for _, op := range operations {
		if op.TeacherID == teacherID {
			totalOperations += op.Amount
		}
	}
	for _, p := range payments {
		if p.TeacherID == teacherID {
			totalPayments += p.Amount
		}
	}

	debt := totalOperations - totalPayments
	return models.TeacherLedger{
		TeacherID:       teacherID,
		TotalOperations: totalOperations,
		TotalPayments:   totalPayments,
		Debt:            debt,
		Status:          ClassifyStatus(debt),
	}
}

// ComputeBusinessProfit is the single net-profit formula:
// total payments - total expenses - total operation costs.
// Operation cost defaults to zero when it was never recorded.
func ComputeBusinessProfit(payments []*models.Payment, expenses []*models.Expense, operations []*models.Operation) float64 {
	var totalPayments, totalExpenses, totalCosts float64
	for _, p := range payments {
		totalPayments += p.Amount
	}
	for _, e := range expenses {
		totalExpenses += e.Amount
	}
	for _, op := range operations {
		if op.Cost != nil {
			totalCosts += *op.Cost
		}
	}
	return totalPayments - totalExpenses - totalCosts
}

// ClassifyStatus maps a balance to its status. The comparison is exact:
// a balance of 0 is clear, anything above is debt, anything below overpaid.
func ClassifyStatus(debt float64) models.LedgerStatus {
	switch {
	case debt > 0:
		return models.LedgerStatusDebt
	case debt < 0:
		return models.LedgerStatusOverpaid
	default:
		return models.LedgerStatusClear
	}
}
