package models

import "time"

// LedgerStatus classifies a teacher's balance
type LedgerStatus string

const (
	LedgerStatusDebt     LedgerStatus = "debt"     // owes the shop
	LedgerStatusClear    LedgerStatus = "clear"    // settled exactly
	LedgerStatusOverpaid LedgerStatus = "overpaid" // paid more than billed
)

// TeacherLedger is the computed financial position of one teacher.
// Debt = TotalOperations - TotalPayments; negative means overpayment.
type TeacherLedger struct {
	TeacherID       int          `json:"teacher_id"`
	TotalOperations float64      `json:"total_operations"`
	TotalPayments   float64      `json:"total_payments"`
	Debt            float64      `json:"debt"`
	Status          LedgerStatus `json:"status"`
}

// ReportType selects what a generated report covers
type ReportType string

const (
	ReportTypeTeacherAccounts  ReportType = "teacher_accounts"
	ReportTypeDebts            ReportType = "debts"
	ReportTypeFinancialSummary ReportType = "financial_summary"
	ReportTypeExpenses         ReportType = "expenses"
)

// ExpenseOnly reports skip teacher/operation/payment filtering entirely
func (t ReportType) ExpenseOnly() bool {
	return t == ReportTypeExpenses
}

// SortKey orders the teachers of a report
type SortKey string

const (
	SortByName            SortKey = "name"
	SortByDebt            SortKey = "debt"
	SortByOperationsCount SortKey = "operations_count"
	SortByTotalAmount     SortKey = "total_amount"
)

// ConfigVersion is the current serialized shape of ReportConfig.
// Version 1 configs predate include_expenses; Normalize fills the gaps.
const ConfigVersion = 2

// ReportConfig describes one report request. Nil pointer fields mean
// "do not constrain on this dimension"; a zero value held by a non-nil
// pointer is a real bound (min amount 0 is a legitimate filter).
type ReportConfig struct {
	Version                 int        `json:"config_version"`
	Type                    ReportType `json:"type"`
	Title                   string     `json:"title"`
	SelectedTeachers        []int      `json:"selected_teachers"`
	DateFrom                *time.Time `json:"date_from,omitempty"`
	DateTo                  *time.Time `json:"date_to,omitempty"`
	IncludeOperations       bool       `json:"include_operations"`
	IncludePayments         bool       `json:"include_payments"`
	IncludeExpenses         bool       `json:"include_expenses"`
	IncludeFinancialSummary bool       `json:"include_financial_summary"`
	MinAmount               *float64   `json:"min_amount,omitempty"`
	MaxAmount               *float64   `json:"max_amount,omitempty"`
	OperationType           string     `json:"operation_type,omitempty"`
	PaymentMethod           string     `json:"payment_method,omitempty"`
	ExpenseCategory         string     `json:"expense_category,omitempty"`
	HasDebts                bool       `json:"has_debts"`
	HasOperations           bool       `json:"has_operations"`
	OnlyLargeExpenses       bool       `json:"only_large_expenses"`
	SortBy                  SortKey    `json:"sort_by"`
	PageSize                string     `json:"page_size"`   // A4, A5, Letter
	Orientation             string     `json:"orientation"` // P or L
	FontSize                float64    `json:"font_size"`
	SeparatePagesPerTeacher bool       `json:"separate_pages_per_teacher"`
}

// Normalize applies defaults for fields that grew into the config over time,
// so configs saved under older versions keep their original meaning.
// A config without a version is a live request speaking the current shape;
// only explicitly versioned v1 configs (loaded from storage, where the
// saved-report reader supplies the stored version) get the v1 back-fill.
func (c *ReportConfig) Normalize() {
	if c.Version == 0 {
		c.Version = ConfigVersion
	}
	if c.Version < 2 {
		// include_expenses did not exist in v1; old configs never meant it
		c.IncludeExpenses = false
	}
	if c.SortBy == "" {
		c.SortBy = SortByName
	}
	if c.PageSize == "" {
		c.PageSize = "A4"
	}
	if c.Orientation == "" {
		c.Orientation = "P"
	}
	if c.FontSize == 0 {
		c.FontSize = 10
	}
	c.Version = ConfigVersion
}

// GroupStat is one row of a grouped breakdown (by operation type,
// payment method or expense category)
type GroupStat struct {
	Key        string  `json:"key"`
	Count      int     `json:"count"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ReportTeacherRow is the per-teacher section of an assembled report.
// A selected teacher with nothing in range still appears with zero totals.
type ReportTeacherRow struct {
	Teacher         *Teacher      `json:"teacher"`
	Ledger          TeacherLedger `json:"ledger"`
	OperationsCount int           `json:"operations_count"`
	PaymentsCount   int           `json:"payments_count"`
	Operations      []*Operation  `json:"operations,omitempty"`
	Payments        []*Payment    `json:"payments,omitempty"`
}

// ReportTotals are whole-selection grand totals. Balance is
// TotalOperations - TotalPayments over the selection; overpaid teachers'
// negative debt is absorbed, so this is not the sum of positive debts.
type ReportTotals struct {
	TotalOperations float64 `json:"total_operations"`
	TotalPayments   float64 `json:"total_payments"`
	Balance         float64 `json:"balance"`
	TotalExpenses   float64 `json:"total_expenses"`
	OperationCount  int     `json:"operation_count"`
	PaymentCount    int     `json:"payment_count"`
	ExpenseCount    int     `json:"expense_count"`
	TeacherCount    int     `json:"teacher_count"`
}

// ReportResult is the assembled payload handed to rendering/printing
type ReportResult struct {
	Config           ReportConfig       `json:"config"`
	Teachers         []ReportTeacherRow `json:"teachers,omitempty"`
	Expenses         []*Expense         `json:"expenses,omitempty"`
	OperationsByType []GroupStat        `json:"operations_by_type,omitempty"`
	PaymentsByMethod []GroupStat        `json:"payments_by_method,omitempty"`
	ExpensesByType   []GroupStat        `json:"expenses_by_type,omitempty"`
	Totals           ReportTotals       `json:"totals"`
	GeneratedAt      time.Time          `json:"generated_at"`
	GeneratedBy      string             `json:"generated_by"`
	Anomalies        int                `json:"anomalies,omitempty"` // lossy-fallback count; set only when assembling from an import batch
}

// SavedReport is a named, persisted ReportConfig
type SavedReport struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	Config        ReportConfig `json:"config"`
	CreatedByID   int          `json:"created_by_id"`
	CreatedByName string       `json:"created_by_name,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// SaveReportRequest creates or replaces a saved report
type SaveReportRequest struct {
	Name   string       `json:"name"`
	Config ReportConfig `json:"config"`
}
