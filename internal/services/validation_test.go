package services

import (
	"testing"
	"time"
	"unicode/utf8"

	"printshop-backend/internal/models"
	"printshop-backend/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestDate(t *testing.T) {
	parsed, err := parseRequestDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, timeutil.Cairo, parsed.Location())
}

func TestParseRequestDateRFC3339(t *testing.T) {
	parsed, err := parseRequestDate("2026-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, timeutil.Cairo, parsed.Location())
}

func TestParseRequestDateEmptyIsToday(t *testing.T) {
	parsed, err := parseRequestDate("")
	require.NoError(t, err)
	assert.WithinDuration(t, timeutil.Now(), parsed, time.Minute)
}

func TestParseRequestDateInvalid(t *testing.T) {
	_, err := parseRequestDate("15/03/2026")
	assert.Error(t, err)
}

func TestValidOperationType(t *testing.T) {
	assert.True(t, validOperationType(models.OperationTypePrinting))
	assert.True(t, validOperationType(models.OperationTypeOther))
	assert.False(t, validOperationType(models.OperationType("engraving")))
	assert.False(t, validOperationType(models.OperationType("")))
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, validPaymentMethod(models.PaymentMethodCash))
	assert.False(t, validPaymentMethod(models.PaymentMethod("barter")))
}

func TestValidExpenseType(t *testing.T) {
	assert.True(t, validExpenseType(models.ExpenseTypeInk))
	assert.False(t, validExpenseType(models.ExpenseType("")))
}

func TestConfigHashDistinguishesConfigs(t *testing.T) {
	a := models.ReportConfig{Type: models.ReportTypeDebts, SelectedTeachers: []int{1, 2}}
	b := models.ReportConfig{Type: models.ReportTypeDebts, SelectedTeachers: []int{1, 3}}
	a.Normalize()
	b.Normalize()

	assert.NotEqual(t, configHash(a, "admin"), configHash(b, "admin"))
	assert.NotEqual(t, configHash(a, "admin"), configHash(a, "secretary"))
	assert.Equal(t, configHash(a, "admin"), configHash(a, "admin"))
}

func TestRedactSummary(t *testing.T) {
	cost := 250.0
	profit := 1000.0
	summary := &DashboardSummary{TotalCost: &cost, Profit: &profit}

	redactSummary(summary, true)
	require.NotNil(t, summary.Profit)

	redactSummary(summary, false)
	assert.Nil(t, summary.Profit)
	assert.Nil(t, summary.TotalCost)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijk", 10))
}

func TestTruncateArabic(t *testing.T) {
	name := "مدرسة النور الدولية للغات"
	got := truncate(name, 10)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "مدرسة ا...", got)
	assert.Equal(t, 10, utf8.RuneCountInString(got))

	// shorter than the limit passes through even though it is long in bytes
	assert.Equal(t, "مدرسة", truncate("مدرسة", 10))
}
