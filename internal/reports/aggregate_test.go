package reports

import (
	"testing"

	"printshop-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGroupAndSumBasic(t *testing.T) {
	ops := []*models.Operation{
		{Type: models.OperationTypePrinting, Amount: 100},
		{Type: models.OperationTypePrinting, Amount: 50},
		{Type: models.OperationTypeBinding, Amount: 150},
	}

	stats := GroupAndSum(ops, OperationTypeKeys(), operationKey, operationAmount, 300)
	assert.Len(t, stats, 2)

	assert.Equal(t, "printing", stats[0].Key)
	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 150.0, stats[0].Total)
	assert.Equal(t, 50.0, stats[0].Percentage)

	assert.Equal(t, "binding", stats[1].Key)
	assert.Equal(t, 1, stats[1].Count)
	assert.Equal(t, 150.0, stats[1].Total)
	assert.Equal(t, 50.0, stats[1].Percentage)
}

func TestGroupAndSumZeroCountGroupsExcluded(t *testing.T) {
	ops := []*models.Operation{{Type: models.OperationTypeDesign, Amount: 80}}
	stats := GroupAndSum(ops, OperationTypeKeys(), operationKey, operationAmount, 80)
	assert.Len(t, stats, 1)
	assert.Equal(t, "design", stats[0].Key)
}

func TestGroupAndSumCanonicalOrderNotRecordOrder(t *testing.T) {
	// binding comes after printing in the canonical list even though the
	// binding record arrives first
	ops := []*models.Operation{
		{Type: models.OperationTypeBinding, Amount: 10},
		{Type: models.OperationTypePrinting, Amount: 20},
	}
	stats := GroupAndSum(ops, OperationTypeKeys(), operationKey, operationAmount, 30)
	assert.Equal(t, "printing", stats[0].Key)
	assert.Equal(t, "binding", stats[1].Key)
}

func TestGroupAndSumUnknownKeysExcluded(t *testing.T) {
	ops := []*models.Operation{
		{Type: models.OperationTypePrinting, Amount: 100},
		{Type: "mystery", Amount: 900},
	}
	base := CanonicalTotal(ops, OperationTypeKeys(), operationKey, operationAmount)
	assert.Equal(t, 100.0, base)

	stats := GroupAndSum(ops, OperationTypeKeys(), operationKey, operationAmount, base)
	assert.Len(t, stats, 1)
	assert.Equal(t, 100.0, stats[0].Total)
	assert.Equal(t, 100.0, stats[0].Percentage)
}

func TestGroupAndSumSumsToCanonicalTotal(t *testing.T) {
	ops := []*models.Operation{
		{Type: models.OperationTypePrinting, Amount: 120},
		{Type: models.OperationTypeScanning, Amount: 30},
		{Type: "unmapped", Amount: 77},
		{Type: models.OperationTypePrinting, Amount: 50},
	}
	base := CanonicalTotal(ops, OperationTypeKeys(), operationKey, operationAmount)
	stats := GroupAndSum(ops, OperationTypeKeys(), operationKey, operationAmount, base)

	var sum, pct float64
	for _, s := range stats {
		sum += s.Total
		pct += s.Percentage
	}
	assert.Equal(t, base, sum)
	assert.InDelta(t, 100.0, pct, 1e-9)
}

func TestGroupAndSumZeroBase(t *testing.T) {
	ops := []*models.Operation{{Type: models.OperationTypePrinting, Amount: 100}}
	stats := GroupAndSum(ops, OperationTypeKeys(), operationKey, operationAmount, 0)
	assert.Equal(t, 0.0, stats[0].Percentage)
}

func TestGroupAndSumEmptyInput(t *testing.T) {
	assert.Empty(t, GroupAndSum(nil, OperationTypeKeys(), operationKey, operationAmount, 100))
}
