package reports

import (
	"testing"
	"time"

	"printshop-backend/internal/models"
	"printshop-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, timeutil.Cairo)
}

func ptrF(v float64) *float64    { return &v }
func ptrT(t time.Time) *time.Time { return &t }

func sampleOperations() []*models.Operation {
	return []*models.Operation{
		{ID: 1, TeacherID: 1, Type: models.OperationTypePrinting, Amount: 100, OperationDate: date(2026, 3, 1)},
		{ID: 2, TeacherID: 1, Type: models.OperationTypeBinding, Amount: 250, OperationDate: date(2026, 3, 15)},
		{ID: 3, TeacherID: 2, Type: models.OperationTypePrinting, Amount: 400, OperationDate: date(2026, 4, 2)},
	}
}

func TestFilterOperationsDateRangeInclusive(t *testing.T) {
	f := Filters{
		DateFrom: ptrT(date(2026, 3, 1)),
		DateTo:   ptrT(date(2026, 3, 15)),
	}
	got := FilterOperations(sampleOperations(), f)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
}

func TestFilterOperationsDateBoundsCoverWholeDay(t *testing.T) {
	// A record late on the to-day is still inside the inclusive bound
	nearMidnight := time.Date(2026, 3, 15, 23, 30, 0, 0, timeutil.Cairo)
	ops := []*models.Operation{{ID: 1, TeacherID: 1, OperationDate: nearMidnight, Amount: 10}}
	f := Filters{DateTo: ptrT(date(2026, 3, 15))}
	assert.Len(t, FilterOperations(ops, f), 1)
}

func TestFilterOperationsAmountRange(t *testing.T) {
	f := Filters{MinAmount: ptrF(150), MaxAmount: ptrF(300)}
	got := FilterOperations(sampleOperations(), f)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestFilterOperationsZeroMinAmountConstrains(t *testing.T) {
	// min amount 0 is a real bound, not an absent filter
	ops := []*models.Operation{
		{ID: 1, TeacherID: 1, Amount: -5, OperationDate: date(2026, 3, 1)},
		{ID: 2, TeacherID: 1, Amount: 0, OperationDate: date(2026, 3, 1)},
	}
	got := FilterOperations(ops, Filters{MinAmount: ptrF(0)})
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestFilterOperationsTypeAndMembership(t *testing.T) {
	f := Filters{OperationType: "printing", TeacherIDs: []int{1}}
	got := FilterOperations(sampleOperations(), f)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilterOperationsUnconstrainedReturnsAll(t *testing.T) {
	got := FilterOperations(sampleOperations(), Filters{})
	assert.Len(t, got, 3)
}

func TestFilterIdempotence(t *testing.T) {
	f := Filters{MinAmount: ptrF(100), DateFrom: ptrT(date(2026, 3, 1))}
	once := FilterOperations(sampleOperations(), f)
	twice := FilterOperations(once, f)
	assert.Equal(t, once, twice)
}

func TestFilterMonotonicity(t *testing.T) {
	loose := Filters{MinAmount: ptrF(50)}
	tight := Filters{MinAmount: ptrF(50), MaxAmount: ptrF(200), DateTo: ptrT(date(2026, 3, 31))}
	ops := sampleOperations()
	assert.LessOrEqual(t, len(FilterOperations(ops, tight)), len(FilterOperations(ops, loose)))
}

func TestFilterPaymentsMethod(t *testing.T) {
	payments := []*models.Payment{
		{ID: 1, TeacherID: 1, Amount: 100, PaymentMethod: models.PaymentMethodCash, PaymentDate: date(2026, 3, 5)},
		{ID: 2, TeacherID: 1, Amount: 200, PaymentMethod: models.PaymentMethodBankTransfer, PaymentDate: date(2026, 3, 6)},
	}
	got := FilterPayments(payments, Filters{PaymentMethod: "cash"})
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilterExpensesOnlyLarge(t *testing.T) {
	expenses := []*models.Expense{
		{ID: 1, Type: models.ExpenseTypePaper, Amount: 100, ExpenseDate: date(2026, 3, 1)},
		{ID: 2, Type: models.ExpenseTypeInk, Amount: 1500, ExpenseDate: date(2026, 3, 2)},
		{ID: 3, Type: models.ExpenseTypeRent, Amount: 2000, ExpenseDate: date(2026, 3, 3)},
	}
	got := FilterExpenses(expenses, Filters{OnlyLargeExpenses: true})
	assert.Len(t, got, 2)
	assert.Equal(t, 1500.0, got[0].Amount)
	assert.Equal(t, 2000.0, got[1].Amount)
}

func TestFilterExpensesExactlyAtThresholdExcluded(t *testing.T) {
	expenses := []*models.Expense{{ID: 1, Amount: LargeExpenseThreshold, ExpenseDate: date(2026, 3, 1)}}
	assert.Empty(t, FilterExpenses(expenses, Filters{OnlyLargeExpenses: true}))
}

func TestFilterTeachersEmptySelectionKeepsNone(t *testing.T) {
	teachers := []*models.Teacher{{ID: 1}, {ID: 2}}
	assert.Empty(t, FilterTeachers(teachers, []int{}))
	assert.Len(t, FilterTeachers(teachers, nil), 2)
	assert.Len(t, FilterTeachers(teachers, []int{2}), 1)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	ops := sampleOperations()
	before := make([]*models.Operation, len(ops))
	copy(before, ops)
	FilterOperations(ops, Filters{MinAmount: ptrF(200)})
	assert.Equal(t, before, ops)
}
