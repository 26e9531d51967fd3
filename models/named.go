package models

// Named is a flat vocabulary entry (reason, unit)
type Named struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
