// Package normalize converts raw, loosely-typed documents (as exported from
// the shop's previous cloud document store, or posted to the bulk import
// endpoint) into canonical records. One bad field never aborts a batch: the
// value falls back to a safe default and the anomaly is counted so the
// caller can report it.
package normalize

import (
	"time"

	"printshop-backend/internal/models"
	"printshop-backend/internal/timeutil"
)

// Document is a raw record as decoded from JSON. Unknown fields are simply
// ignored; they are preserved in the source document, never relied upon.
type Document = map[string]interface{}

// Counter tallies lossy fallbacks across a normalization run
type Counter struct {
	Anomalies int
}

func (c *Counter) flag() {
	if c != nil {
		c.Anomalies++
	}
}

// dateLayouts are tried in order when a date arrives as a string
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	timeutil.DateTimeLayout,
	timeutil.DateLayout,
}

// String returns the field as a string, defaulting to empty
func String(doc Document, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

// Number returns the field as a float64, defaulting to 0. A present but
// non-numeric value counts as an anomaly; an absent field does not.
func Number(doc Document, key string, c *Counter) float64 {
	v, ok := doc[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		c.flag()
		return 0
	}
}

// Int returns the field as an int, defaulting to 0
func Int(doc Document, key string, c *Counter) int {
	return int(Number(doc, key, c))
}

// Date resolves a stored date to a concrete time. It accepts RFC3339 and
// plain date strings, epoch milliseconds, and the document store's
// {"seconds": n} server-timestamp wrapper. Unparseable dates fail closed
// to now — a documented lossy fallback — and count as an anomaly.
func Date(doc Document, key string, c *Counter) time.Time {
	v, ok := doc[key]
	if !ok || v == nil {
		c.flag()
		return timeutil.Now()
	}
	switch d := v.(type) {
	case string:
		return ParseDate(d, c)
	case float64:
		// epoch milliseconds
		return time.UnixMilli(int64(d)).In(timeutil.Cairo)
	case map[string]interface{}:
		// server-timestamp wrapper {seconds, nanoseconds}
		if secs, ok := d["seconds"].(float64); ok {
			return time.Unix(int64(secs), 0).In(timeutil.Cairo)
		}
	}
	c.flag()
	return timeutil.Now()
}

// ParseDate parses a date string with the known layouts, falling back to
// now on failure
func ParseDate(s string, c *Counter) time.Time {
	for _, layout := range dateLayouts {
		if t, err := timeutil.ParseLocal(layout, s); err == nil {
			return t
		}
	}
	c.flag()
	return timeutil.Now()
}

// Teacher normalizes a raw teacher document
func Teacher(doc Document, c *Counter) *models.Teacher {
	return &models.Teacher{
		ID:        Int(doc, "id", c),
		Name:      String(doc, "name"),
		Phone:     String(doc, "phone"),
		School:    String(doc, "school"),
		Email:     String(doc, "email"),
		Address:   String(doc, "address"),
		Notes:     String(doc, "notes"),
		CreatedAt: Date(doc, "created_at", c),
	}
}

// Operation normalizes a raw operation document
func Operation(doc Document, c *Counter) *models.Operation {
	cost := Number(doc, "cost", c)
	return &models.Operation{
		ID:            Int(doc, "id", c),
		TeacherID:     Int(doc, "teacher_id", c),
		Type:          models.OperationType(String(doc, "type")),
		Description:   String(doc, "description"),
		Quantity:      Number(doc, "quantity", c),
		UnitPrice:     Number(doc, "unit_price", c),
		Amount:        Number(doc, "amount", c),
		Cost:          &cost,
		OperationDate: Date(doc, "operation_date", c),
		Notes:         String(doc, "notes"),
	}
}

// Payment normalizes a raw payment document
func Payment(doc Document, c *Counter) *models.Payment {
	return &models.Payment{
		ID:            Int(doc, "id", c),
		TeacherID:     Int(doc, "teacher_id", c),
		Amount:        Number(doc, "amount", c),
		PaymentMethod: models.PaymentMethod(String(doc, "payment_method")),
		PaymentDate:   Date(doc, "payment_date", c),
		Reference:     String(doc, "reference"),
		Notes:         String(doc, "notes"),
	}
}

// Expense normalizes a raw expense document
func Expense(doc Document, c *Counter) *models.Expense {
	return &models.Expense{
		ID:            Int(doc, "id", c),
		Type:          models.ExpenseType(String(doc, "type")),
		Description:   String(doc, "description"),
		Amount:        Number(doc, "amount", c),
		ExpenseDate:   Date(doc, "expense_date", c),
		Category:      String(doc, "category"),
		Vendor:        String(doc, "vendor"),
		PaymentMethod: models.PaymentMethod(String(doc, "payment_method")),
		Notes:         String(doc, "notes"),
	}
}
