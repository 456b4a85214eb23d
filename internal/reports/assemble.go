package reports

import (
	"errors"

	"printshop-backend/internal/ledger"
	"printshop-backend/internal/models"
	"printshop-backend/internal/timeutil"
)

// ErrNoTeachersSelected means the config asked for a teacher-scoped report
// without choosing any teachers. The user forgot to pick, nothing was
// filtered away.
var ErrNoTeachersSelected = errors.New("report config selects no teachers")

// ErrNothingToReport means the request was valid but the filters matched
// zero records. The caller should explain, not render a blank report.
var ErrNothingToReport = errors.New("filters matched no records")

// Snapshot is one consistent read of the shop's collections, already
// normalized. Anomalies counts records that needed a lossy fallback
// during normalization; it is only nonzero for snapshots built from an
// import batch, since rows read from SQL-typed columns have nothing to
// fall back from. Live-data snapshots carry zero.
type Snapshot struct {
	Teachers   []*models.Teacher
	Operations []*models.Operation
	Payments   []*models.Payment
	Expenses   []*models.Expense
	Anomalies  int
}

// Assemble turns a ReportConfig and a snapshot into a ReportResult.
// It never mutates the snapshot.
func Assemble(cfg models.ReportConfig, snap Snapshot, generatedBy string) (*models.ReportResult, error) {
	cfg.Normalize()

	if cfg.Type.ExpenseOnly() {
		return assembleExpenseReport(cfg, snap, generatedBy)
	}
	return assembleTeacherReport(cfg, snap, generatedBy)
}

func assembleExpenseReport(cfg models.ReportConfig, snap Snapshot, generatedBy string) (*models.ReportResult, error) {
	filters := FiltersFromConfig(cfg)
	filters.TeacherIDs = nil // expenses are never teacher-scoped

	expenses := FilterExpenses(snap.Expenses, filters)
	if len(expenses) == 0 {
		return nil, ErrNothingToReport
	}

	var totalExpenses float64
	for _, e := range expenses {
		totalExpenses += e.Amount
	}

	base := CanonicalTotal(expenses, ExpenseTypeKeys(), expenseKey, expenseAmount)
	result := &models.ReportResult{
		Config:         cfg,
		Expenses:       expenses,
		ExpensesByType: GroupAndSum(expenses, ExpenseTypeKeys(), expenseKey, expenseAmount, base),
		Totals: models.ReportTotals{
			TotalExpenses: totalExpenses,
			ExpenseCount:  len(expenses),
		},
		GeneratedAt: timeutil.Now(),
		GeneratedBy: generatedBy,
		Anomalies:   snap.Anomalies,
	}
	return result, nil
}

func assembleTeacherReport(cfg models.ReportConfig, snap Snapshot, generatedBy string) (*models.ReportResult, error) {
	if len(cfg.SelectedTeachers) == 0 {
		return nil, ErrNoTeachersSelected
	}

	filters := FiltersFromConfig(cfg)
	teachers := FilterTeachers(snap.Teachers, cfg.SelectedTeachers)
	operations := FilterOperations(snap.Operations, filters)
	payments := FilterPayments(snap.Payments, filters)

	// One row per selected teacher; the ledger is computed over the
	// filtered record sets, so a teacher with nothing in range still
	// appears with zero totals.
	rows := make([]models.ReportTeacherRow, 0, len(teachers))
	for _, t := range teachers {
		row := models.ReportTeacherRow{
			Teacher: t,
			Ledger:  ledger.ComputeTeacherLedger(t.ID, operations, payments),
		}
		for _, op := range operations {
			if op.TeacherID == t.ID {
				row.OperationsCount++
				if cfg.IncludeOperations {
					row.Operations = append(row.Operations, op)
				}
			}
		}
		for _, p := range payments {
			if p.TeacherID == t.ID {
				row.PaymentsCount++
				if cfg.IncludePayments {
					row.Payments = append(row.Payments, p)
				}
			}
		}
		rows = append(rows, row)
	}

	// Teacher-level predicates run after the record-level filters
	if cfg.HasDebts {
		rows = keepRows(rows, func(r models.ReportTeacherRow) bool {
			return r.Ledger.Debt > 0
		})
	}
	if cfg.HasOperations {
		rows = keepRows(rows, func(r models.ReportTeacherRow) bool {
			return r.OperationsCount > 0
		})
	}
	if len(rows) == 0 {
		return nil, ErrNothingToReport
	}

	rows = SortTeacherRows(rows, cfg.SortBy)

	// Grand totals over the surviving rows. Balance is a whole-selection
	// figure: overpaid teachers pull it down rather than being clamped
	// at zero, so it is not the sum of positive debts.
	var totals models.ReportTotals
	kept := make(map[int]bool, len(rows))
	for _, r := range rows {
		kept[r.Teacher.ID] = true
		totals.TotalOperations += r.Ledger.TotalOperations
		totals.TotalPayments += r.Ledger.TotalPayments
		totals.OperationCount += r.OperationsCount
		totals.PaymentCount += r.PaymentsCount
	}
	totals.Balance = totals.TotalOperations - totals.TotalPayments
	totals.TeacherCount = len(rows)

	keptOps := keepOperations(operations, kept)
	keptPays := keepPayments(payments, kept)

	result := &models.ReportResult{
		Config:      cfg,
		Teachers:    rows,
		Totals:      totals,
		GeneratedAt: timeutil.Now(),
		GeneratedBy: generatedBy,
		Anomalies:   snap.Anomalies,
	}

	if cfg.IncludeOperations {
		base := CanonicalTotal(keptOps, OperationTypeKeys(), operationKey, operationAmount)
		result.OperationsByType = GroupAndSum(keptOps, OperationTypeKeys(), operationKey, operationAmount, base)
	}
	if cfg.IncludePayments {
		base := CanonicalTotal(keptPays, PaymentMethodKeys(), paymentKey, paymentAmount)
		result.PaymentsByMethod = GroupAndSum(keptPays, PaymentMethodKeys(), paymentKey, paymentAmount, base)
	}

	// Expenses ride along independently of the teacher selection
	if cfg.IncludeExpenses {
		expenseFilters := filters
		expenseFilters.TeacherIDs = nil
		expenses := FilterExpenses(snap.Expenses, expenseFilters)
		result.Expenses = expenses
		for _, e := range expenses {
			result.Totals.TotalExpenses += e.Amount
		}
		result.Totals.ExpenseCount = len(expenses)
		if cfg.IncludeFinancialSummary {
			base := CanonicalTotal(expenses, ExpenseTypeKeys(), expenseKey, expenseAmount)
			result.ExpensesByType = GroupAndSum(expenses, ExpenseTypeKeys(), expenseKey, expenseAmount, base)
		}
	}

	return result, nil
}

func keepRows(rows []models.ReportTeacherRow, keep func(models.ReportTeacherRow) bool) []models.ReportTeacherRow {
	var out []models.ReportTeacherRow
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func keepOperations(operations []*models.Operation, kept map[int]bool) []*models.Operation {
	var out []*models.Operation
	for _, op := range operations {
		if kept[op.TeacherID] {
			out = append(out, op)
		}
	}
	return out
}

func keepPayments(payments []*models.Payment, kept map[int]bool) []*models.Payment {
	var out []*models.Payment
	for _, p := range payments {
		if kept[p.TeacherID] {
			out = append(out, p)
		}
	}
	return out
}

func operationKey(op *models.Operation) string     { return string(op.Type) }
func operationAmount(op *models.Operation) float64 { return op.Amount }
func paymentKey(p *models.Payment) string          { return string(p.PaymentMethod) }
func paymentAmount(p *models.Payment) float64      { return p.Amount }
func expenseKey(e *models.Expense) string          { return string(e.Type) }
func expenseAmount(e *models.Expense) float64      { return e.Amount }
