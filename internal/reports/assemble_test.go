package reports

import (
	"testing"
	"time"

	"printshop-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teacherSnapshot() Snapshot {
	return Snapshot{
		Teachers: []*models.Teacher{
			{ID: 1, Name: "أحمد"},
			{ID: 2, Name: "سارة"},
		},
		Operations: []*models.Operation{
			{ID: 1, TeacherID: 1, Type: models.OperationTypePrinting, Amount: 300, OperationDate: date(2026, 3, 5)},
			{ID: 2, TeacherID: 1, Type: models.OperationTypeBinding, Amount: 200, OperationDate: date(2026, 3, 10)},
			{ID: 3, TeacherID: 2, Type: models.OperationTypePrinting, Amount: 150, OperationDate: date(2026, 3, 12)},
		},
		Payments: []*models.Payment{
			{ID: 1, TeacherID: 1, Amount: 300, PaymentMethod: models.PaymentMethodCash, PaymentDate: date(2026, 4, 1)},
			{ID: 2, TeacherID: 2, Amount: 150, PaymentMethod: models.PaymentMethodCash, PaymentDate: date(2026, 4, 2)},
		},
	}
}

func TestAssembleNoTeachersSelected(t *testing.T) {
	cfg := models.ReportConfig{Type: models.ReportTypeTeacherAccounts}
	_, err := Assemble(cfg, teacherSnapshot(), "admin")
	assert.ErrorIs(t, err, ErrNoTeachersSelected)
}

func TestAssembleTeacherLedgerScenarios(t *testing.T) {
	cfg := models.ReportConfig{
		Type:             models.ReportTypeTeacherAccounts,
		SelectedTeachers: []int{1, 2},
	}
	result, err := Assemble(cfg, teacherSnapshot(), "admin")
	require.NoError(t, err)
	require.Len(t, result.Teachers, 2)

	var byID = map[int]models.ReportTeacherRow{}
	for _, r := range result.Teachers {
		byID[r.Teacher.ID] = r
	}

	// 500 billed, 300 paid
	assert.Equal(t, 500.0, byID[1].Ledger.TotalOperations)
	assert.Equal(t, 300.0, byID[1].Ledger.TotalPayments)
	assert.Equal(t, 200.0, byID[1].Ledger.Debt)
	assert.Equal(t, models.LedgerStatusDebt, byID[1].Ledger.Status)

	// fully settled
	assert.Equal(t, 0.0, byID[2].Ledger.Debt)
	assert.Equal(t, models.LedgerStatusClear, byID[2].Ledger.Status)
}

func TestAssembleDateRangeExcludesPayments(t *testing.T) {
	// The March window covers every operation and no payment: the balance
	// becomes the whole billed sum
	from := date(2026, 3, 1)
	to := date(2026, 3, 31)
	cfg := models.ReportConfig{
		Type:             models.ReportTypeTeacherAccounts,
		SelectedTeachers: []int{1, 2},
		DateFrom:         &from,
		DateTo:           &to,
	}
	result, err := Assemble(cfg, teacherSnapshot(), "admin")
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Totals.TotalPayments)
	assert.Equal(t, 650.0, result.Totals.TotalOperations)
	assert.Equal(t, 650.0, result.Totals.Balance)
}

func TestAssembleWholeSelectionBalanceAbsorbsOverpayment(t *testing.T) {
	snap := teacherSnapshot()
	// teacher 2 now overpaid by 100
	snap.Payments = append(snap.Payments, &models.Payment{
		ID: 3, TeacherID: 2, Amount: 100,
		PaymentMethod: models.PaymentMethodCash, PaymentDate: date(2026, 4, 3),
	})

	cfg := models.ReportConfig{
		Type:             models.ReportTypeTeacherAccounts,
		SelectedTeachers: []int{1, 2},
	}
	result, err := Assemble(cfg, snap, "admin")
	require.NoError(t, err)

	// 650 - 550 = 100, not the 200 a sum of positive debts would give
	assert.Equal(t, 100.0, result.Totals.Balance)
}

func TestAssembleTeacherWithNoRecordsStillAppears(t *testing.T) {
	snap := teacherSnapshot()
	snap.Teachers = append(snap.Teachers, &models.Teacher{ID: 3, Name: "منى"})

	cfg := models.ReportConfig{
		Type:             models.ReportTypeTeacherAccounts,
		SelectedTeachers: []int{3},
	}
	result, err := Assemble(cfg, snap, "admin")
	require.NoError(t, err)
	require.Len(t, result.Teachers, 1)
	assert.Equal(t, 0.0, result.Teachers[0].Ledger.TotalOperations)
	assert.Equal(t, models.LedgerStatusClear, result.Teachers[0].Ledger.Status)
}

func TestAssembleHasDebtsKeepsOnlyDebtors(t *testing.T) {
	cfg := models.ReportConfig{
		Type:             models.ReportTypeDebts,
		SelectedTeachers: []int{1, 2},
		HasDebts:         true,
	}
	result, err := Assemble(cfg, teacherSnapshot(), "admin")
	require.NoError(t, err)
	require.Len(t, result.Teachers, 1)
	assert.Equal(t, 1, result.Teachers[0].Teacher.ID)
	// Totals cover only the surviving teacher
	assert.Equal(t, 500.0, result.Totals.TotalOperations)
}

func TestAssembleHasDebtsNothingMatches(t *testing.T) {
	snap := teacherSnapshot()
	cfg := models.ReportConfig{
		Type:             models.ReportTypeDebts,
		SelectedTeachers: []int{2}, // teacher 2 is settled
		HasDebts:         true,
	}
	_, err := Assemble(cfg, snap, "admin")
	assert.ErrorIs(t, err, ErrNothingToReport)
}

func TestAssembleSortByDebtAscending(t *testing.T) {
	cfg := models.ReportConfig{
		Type:             models.ReportTypeTeacherAccounts,
		SelectedTeachers: []int{1, 2},
		SortBy:           models.SortByDebt,
	}
	result, err := Assemble(cfg, teacherSnapshot(), "admin")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Teachers[0].Teacher.ID) // debt 0
	assert.Equal(t, 1, result.Teachers[1].Teacher.ID) // debt 200
}

func TestAssembleIncludeOperationsAttachesRecordsAndBreakdown(t *testing.T) {
	cfg := models.ReportConfig{
		Type:              models.ReportTypeTeacherAccounts,
		SelectedTeachers:  []int{1},
		IncludeOperations: true,
	}
	result, err := Assemble(cfg, teacherSnapshot(), "admin")
	require.NoError(t, err)
	assert.Len(t, result.Teachers[0].Operations, 2)
	require.Len(t, result.OperationsByType, 2)
	assert.Equal(t, "printing", result.OperationsByType[0].Key)
	assert.InDelta(t, 60.0, result.OperationsByType[0].Percentage, 1e-9)
}

func TestAssembleUnversionedRequestKeepsExpenses(t *testing.T) {
	snap := teacherSnapshot()
	snap.Expenses = []*models.Expense{
		{ID: 1, Type: models.ExpenseTypeInk, Amount: 400, ExpenseDate: date(2026, 3, 4)},
	}

	// No config_version in the request body, as a live client sends it
	cfg := models.ReportConfig{
		Type:             models.ReportTypeFinancialSummary,
		SelectedTeachers: []int{1, 2},
		IncludeExpenses:  true,
	}
	result, err := Assemble(cfg, snap, "admin")
	require.NoError(t, err)

	assert.True(t, result.Config.IncludeExpenses)
	require.Len(t, result.Expenses, 1)
	assert.Equal(t, 400.0, result.Totals.TotalExpenses)
}

func TestAssembleExpenseOnlyReport(t *testing.T) {
	snap := Snapshot{
		Expenses: []*models.Expense{
			{ID: 1, Type: models.ExpenseTypePaper, Amount: 100, ExpenseDate: date(2026, 3, 1)},
			{ID: 2, Type: models.ExpenseTypeInk, Amount: 1500, ExpenseDate: date(2026, 3, 2)},
			{ID: 3, Type: models.ExpenseTypeRent, Amount: 2000, ExpenseDate: date(2026, 3, 3)},
		},
	}
	cfg := models.ReportConfig{
		Type:              models.ReportTypeExpenses,
		OnlyLargeExpenses: true,
	}
	result, err := Assemble(cfg, snap, "secretary")
	require.NoError(t, err)
	require.Len(t, result.Expenses, 2)
	assert.Equal(t, 3500.0, result.Totals.TotalExpenses)
	assert.Equal(t, 2, result.Totals.ExpenseCount)
	assert.Empty(t, result.Teachers)
}

func TestAssembleExpenseOnlyNothingMatches(t *testing.T) {
	snap := Snapshot{
		Expenses: []*models.Expense{
			{ID: 1, Type: models.ExpenseTypePaper, Amount: 100, ExpenseDate: date(2026, 3, 1)},
		},
	}
	cfg := models.ReportConfig{
		Type:              models.ReportTypeExpenses,
		OnlyLargeExpenses: true,
	}
	_, err := Assemble(cfg, snap, "secretary")
	assert.ErrorIs(t, err, ErrNothingToReport)
}

func TestAssembleMetadata(t *testing.T) {
	before := time.Now().Add(-time.Second)
	cfg := models.ReportConfig{
		Type:             models.ReportTypeTeacherAccounts,
		SelectedTeachers: []int{1},
	}
	result, err := Assemble(cfg, teacherSnapshot(), "الإدارة")
	require.NoError(t, err)
	assert.Equal(t, "الإدارة", result.GeneratedBy)
	assert.True(t, result.GeneratedAt.After(before))
	assert.Equal(t, models.ConfigVersion, result.Config.Version)
}

func TestAssembleDoesNotMutateSnapshotOrder(t *testing.T) {
	snap := teacherSnapshot()
	firstBefore := snap.Teachers[0].ID
	cfg := models.ReportConfig{
		Type:             models.ReportTypeTeacherAccounts,
		SelectedTeachers: []int{1, 2},
		SortBy:           models.SortByDebt,
	}
	_, err := Assemble(cfg, snap, "admin")
	require.NoError(t, err)
	assert.Equal(t, firstBefore, snap.Teachers[0].ID)
}
