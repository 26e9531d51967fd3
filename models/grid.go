package models

// CellClass maps a server-supplied status onto the css class the grid renders
// with. Unknown statuses get no class.
func CellClass(status string) string {
	switch status {
	case StatusOK:
		return "cell-ok"
	case StatusRaise, StatusFall:
		return "cell-raise"
	}
	return ""
}

// CellSuffix maps a status onto the glyph appended to the cell value
func CellSuffix(status string) string {
	switch status {
	case StatusRaise:
		return "↑"
	case StatusFall:
		return "↓"
	}
	return ""
}

// GridCell is one populated cell of the pivot, carrying everything the
// inspector overlay shows plus the measure id for edit/delete
type GridCell struct {
	MeasureID int       `json:"measureId"`
	Value     FlexValue `json:"value"`
	Status    string    `json:"status"`
	Class     string    `json:"class"`
	Suffix    string    `json:"suffix,omitempty"`
	Units     string    `json:"units,omitempty"`
	Min       *float64  `json:"min,omitempty"`
	Max       *float64  `json:"max,omitempty"`
	Reasons   []Named   `json:"reasons,omitempty"`
}

// GridColumn is one date column: the wire date plus its DD.MM.YY display form
type GridColumn struct {
	Date    string `json:"date"`
	Display string `json:"display"`
}

// GridRow is one indicator row; absent cells are null
type GridRow struct {
	IndicatorName string      `json:"indicatorName"`
	Cells         []*GridCell `json:"cells"`
}

// GridView is the full view model of the person detail page for one group
// and one column page
type GridView struct {
	PersonID   int          `json:"personId"`
	PersonName string       `json:"personName"`
	GroupName  string       `json:"groupName"`
	Groups     []string     `json:"groups"`
	GroupIndex int          `json:"groupIndex"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
	Columns    []GridColumn `json:"columns"`
	Rows       []GridRow    `json:"rows"`
}
