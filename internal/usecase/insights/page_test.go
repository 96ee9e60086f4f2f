package insights

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsOf(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{SubjectName: fmt.Sprintf("asset-%02d", i)}
	}
	return rows
}

func TestPaginate_FirstOfTwoPages(t *testing.T) {
	page := Paginate(rowsOf(12), 0, 10)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.HasNextPage)
	require.Len(t, page.Rows, 10)
	assert.Equal(t, "asset-00", page.Rows[0].SubjectName)
}

func TestPaginate_LastPageIsShort(t *testing.T) {
	page := Paginate(rowsOf(12), 1, 10)

	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNextPage)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, "asset-10", page.Rows[0].SubjectName)
}

func TestPaginate_PageBeyondEndIsEmptyNotError(t *testing.T) {
	// Requesting page 5 of a 2-page result set
	page := Paginate(rowsOf(12), 4, 10)

	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNextPage)
	assert.Empty(t, page.Rows)
	assert.NotNil(t, page.Rows)
}

func TestPaginate_NoRows(t *testing.T) {
	page := Paginate(nil, 0, 10)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNextPage)
	assert.Empty(t, page.Rows)
}

func TestPaginate_DefaultsAppliedToBadInputs(t *testing.T) {
	page := Paginate(rowsOf(5), -3, 0)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Rows, 5)
}
