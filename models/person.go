package models

import "time"

// Gender values accepted by the upstream API.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderBoth   = "both"
)

// Person holds the structure for a person record as the upstream returns it
type Person struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
	IsGravid    bool   `json:"isGravid"`
}

// PersonRequest holds the structure for person create/edit requests. IsGravid
// is only meaningful when gender is female; Normalize clears it otherwise.
type PersonRequest struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	IsGravid    bool   `json:"isGravid"`
}

// Normalize trims the name and drops isGravid for non-female records
func (p *PersonRequest) Normalize() {
	p.Name = trimSpace(p.Name)
	if p.Gender != GenderFemale {
		p.IsGravid = false
	}
}

// PersonView is the console's list/detail row: the upstream person plus the
// display-only derived age. The age never goes back to the upstream.
type PersonView struct {
	Person
	Age *int `json:"age,omitempty"`
}

// NewPersonView derives the display age from the date of birth
func NewPersonView(p Person, now time.Time) PersonView {
	return PersonView{Person: p, Age: AgeAt(p.DateOfBirth, now)}
}

// AgeAt returns full years between a YYYY-MM-DD birth date and now, or nil if
// the date is empty or unparseable
func AgeAt(dateOfBirth string, now time.Time) *int {
	b, err := time.Parse(DateLayout, dateOfBirth)
	if err != nil {
		return nil
	}
	age := now.Year() - b.Year()
	if now.Month() < b.Month() || (now.Month() == b.Month() && now.Day() < b.Day()) {
		age--
	}
	return &age
}

// PeopleMutationResponse is returned by person create/edit. When the upstream
// echoed a single normalized person it rides in Person; otherwise the handler
// reloads and returns the whole list in People.
type PeopleMutationResponse struct {
	Person *PersonView  `json:"person,omitempty"`
	People []PersonView `json:"people,omitempty"`
}
