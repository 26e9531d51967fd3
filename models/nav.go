package models

// NavItem is one sidebar link
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavSection is a sidebar section; Collapsible marks the "Forms" group
type NavSection struct {
	Title       string    `json:"title"`
	Collapsible bool      `json:"collapsible"`
	Items       []NavItem `json:"items"`
}

// NavResponse is the static shell descriptor plus the last-viewed-person
// convenience slot, read once at sidebar render
type NavResponse struct {
	Sections     []NavSection `json:"sections"`
	LastPersonID *int         `json:"lastPersonId,omitempty"`
}
