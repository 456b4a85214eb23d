package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportConfigNormalizeDefaults(t *testing.T) {
	cfg := ReportConfig{Type: ReportTypeTeacherAccounts}
	cfg.Normalize()

	assert.Equal(t, ConfigVersion, cfg.Version)
	assert.Equal(t, SortByName, cfg.SortBy)
	assert.Equal(t, "A4", cfg.PageSize)
	assert.Equal(t, "P", cfg.Orientation)
	assert.Equal(t, float64(10), cfg.FontSize)
}

func TestReportConfigNormalizeUnversionedKeepsExpenses(t *testing.T) {
	// A request body without config_version is a live client speaking the
	// current shape; asking for expenses must survive normalization
	cfg := ReportConfig{Type: ReportTypeTeacherAccounts, IncludeExpenses: true}
	cfg.Normalize()

	assert.True(t, cfg.IncludeExpenses)
	assert.Equal(t, ConfigVersion, cfg.Version)
}

func TestReportConfigNormalizeV1DropsExpenses(t *testing.T) {
	// A v1 config could never have asked for expenses; a stray true must
	// not survive normalization
	cfg := ReportConfig{Version: 1, IncludeExpenses: true}
	cfg.Normalize()

	assert.False(t, cfg.IncludeExpenses)
	assert.Equal(t, ConfigVersion, cfg.Version)
}

func TestReportConfigNormalizeKeepsCurrentVersion(t *testing.T) {
	cfg := ReportConfig{Version: ConfigVersion, IncludeExpenses: true, SortBy: SortByDebt}
	cfg.Normalize()

	assert.True(t, cfg.IncludeExpenses)
	assert.Equal(t, SortByDebt, cfg.SortBy)
}

func TestExpenseOnly(t *testing.T) {
	assert.True(t, ReportTypeExpenses.ExpenseOnly())
	assert.False(t, ReportTypeTeacherAccounts.ExpenseOnly())
	assert.False(t, ReportTypeDebts.ExpenseOnly())
	assert.False(t, ReportTypeFinancialSummary.ExpenseOnly())
}
