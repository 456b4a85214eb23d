package models

import "time"

// PaymentMethod is how the money was received
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodMobileWallet PaymentMethod = "mobile_wallet"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
)

// PaymentMethods is the canonical ordering used by breakdowns and reports
var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodBankTransfer,
	PaymentMethodMobileWallet,
	PaymentMethodCheck,
	PaymentMethodCreditCard,
}

// Payment is money received from a teacher against accumulated operations
type Payment struct {
	ID            int           `json:"id"`
	TeacherID     int           `json:"teacher_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentDate   time.Time     `json:"payment_date"`
	Reference     string        `json:"reference"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type CreatePaymentRequest struct {
	TeacherID     int           `json:"teacher_id"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentDate   string        `json:"payment_date"` // YYYY-MM-DD or RFC3339
	Reference     string        `json:"reference"`
	Notes         string        `json:"notes"`
}

type UpdatePaymentRequest struct {
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentDate   string        `json:"payment_date"`
	Reference     string        `json:"reference"`
	Notes         string        `json:"notes"`
}
