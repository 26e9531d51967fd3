package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medgrid/measure-console-api/models"
)

func fv(v string) models.FlexValue { return models.FlexValue(v) }

func TestBuildCellLookup(t *testing.T) {
	block := models.GroupBlock{
		GroupName: "Биохимия",
		Dates:     []string{"2024-03-01", "2024-03-05"},
		Metas: []models.Meta{
			{
				IndicatorName: "АЛТ",
				Measures: []models.Measure{
					{ID: 11, CurrentValue: fv("42"), RegDate: "2024-03-05", Status: models.StatusRaise, Units: "ед/л"},
				},
			},
			{
				IndicatorName: "АСТ",
				Measures: []models.Measure{
					{ID: 12, CurrentValue: fv("20"), RegDate: "2024-03-01", Status: models.StatusOK},
				},
			},
		},
	}

	table, err := Build(block)
	require.NoError(t, err)

	cell, ok := table.Cell("АЛТ", "2024-03-05")
	require.True(t, ok)
	assert.Equal(t, 11, cell.MeasureID)
	assert.Equal(t, fv("42"), cell.Value)
	assert.Equal(t, "cell-raise", cell.Class)
	assert.Equal(t, "↑", cell.Suffix)

	cell, ok = table.Cell("АСТ", "2024-03-01")
	require.True(t, ok)
	assert.Equal(t, "cell-ok", cell.Class)
	assert.Empty(t, cell.Suffix)

	_, ok = table.Cell("АЛТ", "2024-03-01")
	assert.False(t, ok)
	_, ok = table.Cell("нет такого", "2024-03-05")
	assert.False(t, ok)

	assert.Equal(t, []string{"АЛТ", "АСТ"}, table.Indicators)
}

func TestBuildDateAxisSortedDedupedAndExtended(t *testing.T) {
	block := models.GroupBlock{
		GroupName: "Общий",
		Dates:     []string{"2024-03-05", "2024-03-01", "2024-03-05"},
		Metas: []models.Meta{
			{
				IndicatorName: "Гемоглобин",
				Measures: []models.Measure{
					// date absent from the block's own axis
					{ID: 1, RegDate: "2024-02-20"},
				},
			},
		},
	}

	table, err := Build(block)
	require.NoError(t, err)

	assert.Equal(t, []string{"2024-02-20", "2024-03-01", "2024-03-05"}, table.Dates)
}

func TestBuildDuplicateCell(t *testing.T) {
	block := models.GroupBlock{
		GroupName: "Общий",
		Metas: []models.Meta{
			{
				IndicatorName: "Гемоглобин",
				Measures: []models.Measure{
					{ID: 1, RegDate: "2024-03-01"},
					{ID: 2, RegDate: "2024-03-01"},
				},
			},
		},
	}

	_, err := Build(block)
	require.Error(t, err)
	var dup *ErrDuplicateCell
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Гемоглобин", dup.IndicatorName)
	assert.Equal(t, "2024-03-01", dup.Date)
}

func TestBuildEmptyBlock(t *testing.T) {
	table, err := Build(models.GroupBlock{GroupName: "Пустая"})
	require.NoError(t, err)

	assert.Empty(t, table.Dates)
	assert.Empty(t, table.Indicators)
	assert.Equal(t, 0, table.PageCount(DefaultColumnsPerPage))
	assert.Empty(t, table.Columns(0, DefaultColumnsPerPage))
}

func TestPagination(t *testing.T) {
	block := models.GroupBlock{GroupName: "Общий"}
	for day := 1; day <= 20; day++ {
		block.Dates = append(block.Dates, fmt.Sprintf("2024-03-%02d", day))
	}
	table, err := Build(block)
	require.NoError(t, err)

	assert.Equal(t, 3, table.PageCount(8))
	assert.Len(t, table.Columns(0, 8), 8)
	assert.Len(t, table.Columns(1, 8), 8)

	last := table.Columns(2, 8)
	assert.Len(t, last, 4)
	assert.Equal(t, "2024-03-17", last[0])
	assert.Equal(t, "2024-03-20", last[3])

	assert.Empty(t, table.Columns(3, 8))
	assert.Empty(t, table.Columns(-1, 8))
}

func TestPaginationDefaultSize(t *testing.T) {
	block := models.GroupBlock{Dates: []string{"2024-01-01"}}
	table, err := Build(block)
	require.NoError(t, err)

	assert.Equal(t, 1, table.PageCount(0))
	assert.Len(t, table.Columns(0, -5), 1)
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 0, ClampPage(5, 0))
	assert.Equal(t, 0, ClampPage(-3, 4))
	assert.Equal(t, 3, ClampPage(9, 4))
	assert.Equal(t, 2, ClampPage(2, 4))
}

func TestClampGroupAfterShrink(t *testing.T) {
	// the selected group index survives a catalog shrink by pinning to the
	// last available group
	assert.Equal(t, 1, ClampGroup(4, 2))
	assert.Equal(t, 0, ClampGroup(4, 0))
}
