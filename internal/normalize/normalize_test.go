package normalize

import (
	"testing"
	"time"

	"printshop-backend/internal/models"
	"printshop-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationFullDocument(t *testing.T) {
	var c Counter
	op := Operation(Document{
		"id":             float64(4),
		"teacher_id":     float64(12),
		"type":           "printing",
		"description":    "امتحانات الصف الثالث",
		"quantity":       float64(200),
		"unit_price":     0.5,
		"amount":         float64(100),
		"operation_date": "2026-03-10",
		"notes":          "",
		"extra_field":    "ignored",
	}, &c)

	assert.Equal(t, 4, op.ID)
	assert.Equal(t, 12, op.TeacherID)
	assert.Equal(t, models.OperationTypePrinting, op.Type)
	assert.Equal(t, 100.0, op.Amount)
	if assert.NotNil(t, op.Cost) { // absent optional cost defaults to zero
		assert.Equal(t, 0.0, *op.Cost)
	}
	assert.Equal(t, 2026, op.OperationDate.Year())
	assert.Equal(t, 0, c.Anomalies)
}

func TestDateServerTimestampWrapper(t *testing.T) {
	var c Counter
	d := Date(Document{"when": map[string]interface{}{"seconds": float64(1767225600)}}, "when", &c)
	assert.Equal(t, int64(1767225600), d.Unix())
	assert.Equal(t, 0, c.Anomalies)
}

func TestDateEpochMillis(t *testing.T) {
	var c Counter
	d := Date(Document{"when": float64(1767225600000)}, "when", &c)
	assert.Equal(t, int64(1767225600), d.Unix())
	assert.Equal(t, 0, c.Anomalies)
}

func TestDateUnparseableFallsBackToNow(t *testing.T) {
	var c Counter
	before := time.Now().Add(-time.Second)
	d := Date(Document{"when": "not a date"}, "when", &c)
	assert.True(t, d.After(before.In(timeutil.Cairo)))
	assert.Equal(t, 1, c.Anomalies)
}

func TestNumberNonNumericCountsAnomaly(t *testing.T) {
	var c Counter
	assert.Equal(t, 0.0, Number(Document{"amount": "oops"}, "amount", &c))
	assert.Equal(t, 1, c.Anomalies)

	// absent field is a plain default, not an anomaly
	assert.Equal(t, 0.0, Number(Document{}, "amount", &c))
	assert.Equal(t, 1, c.Anomalies)
}

func TestOneBadRecordDoesNotPoisonTheBatch(t *testing.T) {
	var c Counter
	docs := []Document{
		{"teacher_id": float64(1), "amount": float64(50), "payment_method": "cash", "payment_date": "2026-01-05"},
		{"teacher_id": float64(2), "amount": "garbage", "payment_method": "cash", "payment_date": "garbage"},
	}
	var payments []*models.Payment
	for _, doc := range docs {
		payments = append(payments, Payment(doc, &c))
	}
	require.Len(t, payments, 2)
	assert.Equal(t, 50.0, payments[0].Amount)
	assert.Equal(t, 0.0, payments[1].Amount)
	assert.Equal(t, 2, c.Anomalies)
}

func TestTeacherDefaults(t *testing.T) {
	var c Counter
	teacher := Teacher(Document{"name": "هدى"}, &c)
	assert.Equal(t, "هدى", teacher.Name)
	assert.Equal(t, "", teacher.Phone)
	assert.False(t, teacher.CreatedAt.IsZero())
	assert.Equal(t, 1, c.Anomalies) // missing created_at fell back to now
}
