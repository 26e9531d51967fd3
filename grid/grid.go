// Package grid builds the read-only pivot of one indicator group's
// measurements: rows are indicators, columns are dates, cells carry the
// server-computed status and range metadata.
package grid

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/medgrid/measure-console-api/models"
)

// DefaultColumnsPerPage is the fixed width of one column page
const DefaultColumnsPerPage = 8

// ErrDuplicateCell reports two measures landing on the same (indicator, date)
// pair inside one group block. That pair must identify at most one measure;
// a collision is an upstream contract violation, never silently merged.
type ErrDuplicateCell struct {
	IndicatorName string
	Date          string
}

func (e *ErrDuplicateCell) Error() string {
	return fmt.Sprintf("duplicate measure for indicator %q on %s", e.IndicatorName, e.Date)
}

// Table is the pivot built from one group block. It is derived state: build
// a fresh one whenever the underlying block changes, never mutate it.
type Table struct {
	GroupName  string
	Dates      []string // sorted, deduplicated date axis
	Indicators []string // row order as delivered by the upstream
	cells      map[string]models.GridCell
}

func cellKey(indicatorName, date string) string {
	return indicatorName + "||" + date
}

// Build constructs the pivot for a group block. The upstream's date set is
// not trusted to be sorted or deduplicated; measure dates missing from it are
// added rather than dropped. An empty block yields a valid empty table.
func Build(block models.GroupBlock) (*Table, error) {
	t := &Table{
		GroupName: block.GroupName,
		cells:     make(map[string]models.GridCell),
	}
	dates := append([]string(nil), block.Dates...)
	for _, meta := range block.Metas {
		t.Indicators = append(t.Indicators, meta.IndicatorName)
		for _, m := range meta.Measures {
			key := cellKey(meta.IndicatorName, m.RegDate)
			if _, exists := t.cells[key]; exists {
				return nil, &ErrDuplicateCell{IndicatorName: meta.IndicatorName, Date: m.RegDate}
			}
			t.cells[key] = models.GridCell{
				MeasureID: m.ID,
				Value:     m.CurrentValue,
				Status:    m.Status,
				Class:     models.CellClass(m.Status),
				Suffix:    models.CellSuffix(m.Status),
				Units:     m.Units,
				Min:       m.MinValue,
				Max:       m.MaxValue,
				Reasons:   m.Reasons,
			}
			dates = append(dates, m.RegDate)
		}
	}
	dates = lo.Uniq(dates)
	sort.Strings(dates)
	t.Dates = dates
	return t, nil
}

// Cell returns the cell at (indicatorName, date); ok is false for an absent
// cell
func (t *Table) Cell(indicatorName, date string) (models.GridCell, bool) {
	c, ok := t.cells[cellKey(indicatorName, date)]
	return c, ok
}

// PageCount returns the number of column pages for the given page size
func (t *Table) PageCount(size int) int {
	if size <= 0 {
		size = DefaultColumnsPerPage
	}
	return (len(t.Dates) + size - 1) / size
}

// Columns returns the date slice for one page. Out-of-range pages yield an
// empty slice; callers clamp first via ClampPage.
func (t *Table) Columns(page, size int) []string {
	if size <= 0 {
		size = DefaultColumnsPerPage
	}
	start := page * size
	if start < 0 || start >= len(t.Dates) {
		return nil
	}
	end := start + size
	if end > len(t.Dates) {
		end = len(t.Dates)
	}
	return t.Dates[start:end]
}

// ClampPage pins a page index into [0, totalPages-1] so a shrinking date axis
// never leaves the view on an empty page with no recovery path
func ClampPage(page, totalPages int) int {
	if totalPages <= 0 {
		return 0
	}
	if page < 0 {
		return 0
	}
	if page > totalPages-1 {
		return totalPages - 1
	}
	return page
}

// ClampGroup pins a group index into the block list the same way
func ClampGroup(index, total int) int {
	return ClampPage(index, total)
}
