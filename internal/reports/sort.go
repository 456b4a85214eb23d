package reports

import (
	"sort"

	"printshop-backend/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortTeacherRows returns a new slice ordered by the sort key. The input is
// never reordered in place, and the sort is stable so ties keep their
// original collection order. Debt sorts ascending (most overpaid first,
// biggest debtor last); counts and amounts sort descending (biggest first).
func SortTeacherRows(rows []models.ReportTeacherRow, key models.SortKey) []models.ReportTeacherRow {
	sorted := make([]models.ReportTeacherRow, len(rows))
	copy(sorted, rows)

	switch key {
	case models.SortByDebt:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Ledger.Debt < sorted[j].Ledger.Debt
		})
	case models.SortByOperationsCount:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].OperationsCount > sorted[j].OperationsCount
		})
	case models.SortByTotalAmount:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Ledger.TotalOperations > sorted[j].Ledger.TotalOperations
		})
	default: // SortByName
		// A Collator keeps mutable iterator state and must not be shared
		// between concurrent report requests.
		nameCollator := collate.New(language.Arabic)
		sort.SliceStable(sorted, func(i, j int) bool {
			return nameCollator.CompareString(sorted[i].Teacher.Name, sorted[j].Teacher.Name) < 0
		})
	}
	return sorted
}
