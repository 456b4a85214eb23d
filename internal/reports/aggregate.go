package reports

import (
	"printshop-backend/internal/models"
)

// GroupAndSum buckets records by key and computes per-group count, total and
// percentage of totalForPercentage. Output order follows the canonical key
// list, not record order; keys outside the canonical list are dropped, and
// groups nothing matched are omitted. Percentage is 0 whenever the base
// is not positive.
func GroupAndSum[T any](records []T, canonical []string, keyFn func(T) string, amountFn func(T) float64, totalForPercentage float64) []models.GroupStat {
	counts := make(map[string]int, len(canonical))
	totals := make(map[string]float64, len(canonical))
	known := make(map[string]bool, len(canonical))
	for _, key := range canonical {
		known[key] = true
	}

	for _, rec := range records {
		key := keyFn(rec)
		if !known[key] {
			continue
		}
		counts[key]++
		totals[key] += amountFn(rec)
	}

	var stats []models.GroupStat
	for _, key := range canonical {
		if counts[key] == 0 {
			continue
		}
		pct := 0.0
		if totalForPercentage > 0 {
			pct = totals[key] / totalForPercentage * 100
		}
		stats = append(stats, models.GroupStat{
			Key:        key,
			Count:      counts[key],
			Total:      totals[key],
			Percentage: pct,
		})
	}
	return stats
}

// CanonicalTotal sums the amounts of only those records whose key is in the
// canonical list. This is the percentage base GroupAndSum expects: unmapped
// categories never dilute the percentages of the reported groups.
func CanonicalTotal[T any](records []T, canonical []string, keyFn func(T) string, amountFn func(T) float64) float64 {
	known := make(map[string]bool, len(canonical))
	for _, key := range canonical {
		known[key] = true
	}
	var total float64
	for _, rec := range records {
		if known[keyFn(rec)] {
			total += amountFn(rec)
		}
	}
	return total
}

// OperationTypeKeys returns the canonical operation type list as strings
func OperationTypeKeys() []string {
	keys := make([]string, len(models.OperationTypes))
	for i, t := range models.OperationTypes {
		keys[i] = string(t)
	}
	return keys
}

// PaymentMethodKeys returns the canonical payment method list as strings
func PaymentMethodKeys() []string {
	keys := make([]string, len(models.PaymentMethods))
	for i, m := range models.PaymentMethods {
		keys[i] = string(m)
	}
	return keys
}

// ExpenseTypeKeys returns the canonical expense type list as strings
func ExpenseTypeKeys() []string {
	keys := make([]string, len(models.ExpenseTypes))
	for i, t := range models.ExpenseTypes {
		keys[i] = string(t)
	}
	return keys
}
