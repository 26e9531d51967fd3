package models

// DecryptSlice is one pie-chart slice of the upstream's percentage breakdown.
// The category keys are externally owned and passed through as labels.
type DecryptSlice struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
}

// DecryptResponse wraps the breakdown for one person/date
type DecryptResponse struct {
	Date   string         `json:"date"`
	Slices []DecryptSlice `json:"slices"`
}
