package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/medgrid/measure-console-api/config"
	"github.com/medgrid/measure-console-api/grid"
	"github.com/medgrid/measure-console-api/models"
	"github.com/medgrid/measure-console-api/upstream"
)

// Grid serves the person detail page: the pivoted measurement table for one
// indicator group with paginated date columns
type Grid struct {
	People   upstream.PersonService
	Measures upstream.MeasureService
	Nav      *NavStore
}

// GridHandler builds the grid view model for a person. Query params: group
// (tab index, clamped), page (column page, clamped), virtual (a catalog group
// name to show as an empty tab before any measurement exists).
func (h Grid) GridHandler(w http.ResponseWriter, r *http.Request) {
	id, err := personID(r)
	if err != nil {
		config.ErrorStatus("invalid person id", http.StatusBadRequest, w, err)
		return
	}

	personName := fmt.Sprintf("Person #%d", id)
	if person, err := h.People.Get(r.Context(), id); err != nil {
		if !upstream.IsNotFound(err) {
			config.ErrorStatus("failed to get person by ID", http.StatusBadGateway, w, err)
			return
		}
		zap.S().Debugw("person lookup missed, using placeholder name", "personId", id)
	} else {
		personName = person.Name
	}

	blocks, err := h.Measures.Measures(r.Context(), id)
	if err != nil {
		config.ErrorStatus("failed to get measures", http.StatusBadGateway, w, err)
		return
	}

	// a group the user started from the catalog, with no data upstream yet,
	// still renders as a valid empty tab
	if virtual := r.URL.Query().Get("virtual"); virtual != "" && !hasGroup(blocks, virtual) {
		blocks = append(blocks, models.GroupBlock{GroupName: virtual})
	}

	view, err := buildGridView(id, personName, blocks, r.URL.Query().Get("group"), r.URL.Query().Get("page"))
	if err != nil {
		config.ErrorStatus("upstream returned conflicting measures", http.StatusBadGateway, w, err)
		return
	}

	if h.Nav != nil {
		h.Nav.Set(id)
	}

	b, err := json.Marshal(view)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func hasGroup(blocks []models.GroupBlock, name string) bool {
	for _, b := range blocks {
		if b.GroupName == name {
			return true
		}
	}
	return false
}

func atoiDefault(s string, fallback int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return fallback
}

// buildGridView pivots the selected group block and slices out one column
// page. Group and page indexes are clamped so a shrinking axis never renders
// an unrecoverable empty view.
func buildGridView(personID int, personName string, blocks []models.GroupBlock, groupParam, pageParam string) (*models.GridView, error) {
	view := &models.GridView{
		PersonID:   personID,
		PersonName: personName,
		Groups:     make([]string, 0, len(blocks)),
		Columns:    []models.GridColumn{},
		Rows:       []models.GridRow{},
	}
	for _, b := range blocks {
		view.Groups = append(view.Groups, b.GroupName)
	}
	if len(blocks) == 0 {
		return view, nil
	}

	groupIndex := grid.ClampGroup(atoiDefault(groupParam, 0), len(blocks))
	current := blocks[groupIndex]

	table, err := grid.Build(current)
	if err != nil {
		return nil, err
	}

	totalPages := table.PageCount(grid.DefaultColumnsPerPage)
	page := grid.ClampPage(atoiDefault(pageParam, 0), totalPages)
	columns := table.Columns(page, grid.DefaultColumnsPerPage)

	view.GroupName = current.GroupName
	view.GroupIndex = groupIndex
	view.Page = page
	view.TotalPages = totalPages
	for _, date := range columns {
		view.Columns = append(view.Columns, models.GridColumn{Date: date, Display: models.DisplayDate(date)})
	}
	for _, indicatorName := range table.Indicators {
		row := models.GridRow{IndicatorName: indicatorName, Cells: make([]*models.GridCell, 0, len(columns))}
		for _, date := range columns {
			if cell, ok := table.Cell(indicatorName, date); ok {
				c := cell
				row.Cells = append(row.Cells, &c)
			} else {
				row.Cells = append(row.Cells, nil)
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return view, nil
}
