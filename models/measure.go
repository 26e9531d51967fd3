package models

import (
	"strconv"
	"strings"
)

// Status values computed by the upstream; the console never classifies a
// value against its reference range itself.
const (
	StatusOK    = "ok"
	StatusRaise = "raise"
	StatusFall  = "fall"
)

// FlexValue carries a measurement value that the upstream may serialize as a
// JSON number or as a string
type FlexValue string

// UnmarshalJSON accepts both quoted and bare values
func (v *FlexValue) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		*v = FlexValue(unquoted)
		return nil
	}
	if s == "null" {
		*v = ""
		return nil
	}
	*v = FlexValue(s)
	return nil
}

// MarshalJSON re-emits numeric values as numbers
func (v FlexValue) MarshalJSON() ([]byte, error) {
	s := strings.TrimSpace(string(v))
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return []byte(s), nil
	}
	return []byte(strconv.Quote(string(v))), nil
}

// Measure holds one recorded value of an indicator for a person on a date.
// Status and the min/max range are computed server-side.
type Measure struct {
	ID           int       `json:"id"`
	MinValue     *float64  `json:"minValue"`
	CurrentValue FlexValue `json:"currentValue"`
	MaxValue     *float64  `json:"maxValue"`
	RegDate      string    `json:"regDate"` // YYYY-MM-DD
	Units        string    `json:"units"`
	Status       string    `json:"status"`
	Reasons      []Named   `json:"reasons"`
}

// Meta groups the measures recorded for one indicator
type Meta struct {
	IndicatorName string    `json:"indicatorName"`
	Measures      []Measure `json:"measures"`
}

// GroupBlock is the upstream's pre-pivoted view of one indicator group for a
// person, spanning all recorded dates
type GroupBlock struct {
	GroupName string   `json:"groupName"`
	Dates     []string `json:"dates"`
	Metas     []Meta   `json:"metas"`
}

// MeasureRequest holds the structure for measure create/edit requests
type MeasureRequest struct {
	Name         string  `json:"name"`
	Units        string  `json:"units"`
	CurrentValue float64 `json:"currentValue"`
	RegDate      string  `json:"regDate"`
}

// MeasuresResponse is returned after every measure write: the full reloaded
// payload, so the pivot always reflects server-computed status and ranges
type MeasuresResponse struct {
	Blocks []GroupBlock `json:"blocks"`
}
