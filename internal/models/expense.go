package models

import "time"

// ExpenseType categorizes shop overhead costs
type ExpenseType string

const (
	ExpenseTypePaper       ExpenseType = "paper"
	ExpenseTypeInk         ExpenseType = "ink"
	ExpenseTypeMaintenance ExpenseType = "maintenance"
	ExpenseTypeRent        ExpenseType = "rent"
	ExpenseTypeSupplies    ExpenseType = "supplies"
	ExpenseTypeOther       ExpenseType = "other"
)

// ExpenseTypes is the canonical ordering used by breakdowns and reports
var ExpenseTypes = []ExpenseType{
	ExpenseTypePaper,
	ExpenseTypeInk,
	ExpenseTypeMaintenance,
	ExpenseTypeRent,
	ExpenseTypeSupplies,
	ExpenseTypeOther,
}

// Expense is shop overhead, not attributed to any teacher
type Expense struct {
	ID            int           `json:"id"`
	Type          ExpenseType   `json:"type"`
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	ExpenseDate   time.Time     `json:"expense_date"`
	Category      string        `json:"category"`
	Vendor        string        `json:"vendor"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreateExpenseRequest struct {
	Type          ExpenseType   `json:"type"`
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	ExpenseDate   string        `json:"expense_date"` // YYYY-MM-DD
	Category      string        `json:"category"`
	Vendor        string        `json:"vendor"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Notes         string        `json:"notes"`
}

type UpdateExpenseRequest struct {
	Type          ExpenseType   `json:"type"`
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	ExpenseDate   string        `json:"expense_date"`
	Category      string        `json:"category"`
	Vendor        string        `json:"vendor"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Notes         string        `json:"notes"`
}
