package reports

import (
	"sync"
	"testing"

	"printshop-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedRows() []models.ReportTeacherRow {
	return []models.ReportTeacherRow{
		{Teacher: &models.Teacher{ID: 1, Name: "سارة"}, Ledger: models.TeacherLedger{Debt: 200, TotalOperations: 500}, OperationsCount: 2},
		{Teacher: &models.Teacher{ID: 2, Name: "أحمد"}, Ledger: models.TeacherLedger{Debt: -50, TotalOperations: 100}, OperationsCount: 1},
		{Teacher: &models.Teacher{ID: 3, Name: "منى"}, Ledger: models.TeacherLedger{Debt: 0, TotalOperations: 300}, OperationsCount: 3},
	}
}

func TestSortByNameArabicOrder(t *testing.T) {
	sorted := SortTeacherRows(namedRows(), models.SortByName)
	require.Len(t, sorted, 3)
	assert.Equal(t, "أحمد", sorted[0].Teacher.Name)
	assert.Equal(t, "سارة", sorted[1].Teacher.Name)
	assert.Equal(t, "منى", sorted[2].Teacher.Name)
}

func TestSortByOperationsCountDescending(t *testing.T) {
	sorted := SortTeacherRows(namedRows(), models.SortByOperationsCount)
	assert.Equal(t, 3, sorted[0].Teacher.ID)
	assert.Equal(t, 1, sorted[1].Teacher.ID)
	assert.Equal(t, 2, sorted[2].Teacher.ID)
}

func TestSortLeavesInputUntouched(t *testing.T) {
	rows := namedRows()
	_ = SortTeacherRows(rows, models.SortByTotalAmount)
	assert.Equal(t, 1, rows[0].Teacher.ID)
}

// Name sorting runs on every concurrent report request; the collation
// state must be private to each call.
func TestSortByNameConcurrent(t *testing.T) {
	rows := namedRows()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				sorted := SortTeacherRows(rows, models.SortByName)
				if sorted[0].Teacher.Name != "أحمد" {
					t.Error("unexpected order under concurrent sorting")
					return
				}
			}
		}()
	}
	wg.Wait()
}
