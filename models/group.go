package models

// GroupIndicator is one catalog entry inside an indicator group
type GroupIndicator struct {
	Name  string   `json:"name"`
	Units []string `json:"units"`
}

// Group is the catalog shape returned by the upstream /groups resource
type Group struct {
	ID         int              `json:"id"`
	GroupName  string           `json:"groupName"`
	Indicators []GroupIndicator `json:"indicators"`
}

// IndicatorOption is a flattened catalog entry used to populate the
// measurement-entry form
type IndicatorOption struct {
	Key   string   `json:"key"`   // "<group>||<indicator>", unique
	Label string   `json:"label"` // "<group> · <indicator>"
	Name  string   `json:"name"`  // indicator name sent on measure create
	Units []string `json:"units"`
}
