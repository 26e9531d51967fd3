package models

// AgeSpan bounds one edge of an indicator's age scope
type AgeSpan struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

// Indicator defines a lab metric reference-range bucket scoped by gender,
// pregnancy and age
type Indicator struct {
	EngName  string  `json:"engName"`
	RusName  string  `json:"rusName"`
	Gender   string  `json:"gender"`
	Gravid   bool    `json:"gravid"`
	MinAge   AgeSpan `json:"minAge"`
	MaxAge   AgeSpan `json:"maxAge"`
	MinValue float64 `json:"minValue"`
	MaxValue float64 `json:"maxValue"`
	Units    string  `json:"units"`
}
