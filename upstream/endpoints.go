package upstream

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoints deterministically derives every upstream resource URL from one
// configured base URL. A trailing slash on the base is stripped so
// concatenation never produces a double slash.
type Endpoints struct {
	base string
}

// NewEndpoints normalizes the base URL and returns the registry
func NewEndpoints(baseURL string) Endpoints {
	return Endpoints{base: strings.TrimRight(baseURL, "/")}
}

// Base returns the normalized base URL
func (e Endpoints) Base() string { return e.base }

// People returns the person collection URL
func (e Endpoints) People() string { return e.base + "/people" }

// Person returns the single-person URL
func (e Endpoints) Person(personID int) string {
	return fmt.Sprintf("%s/people/%d", e.base, personID)
}

// PersonMeasures returns a person's measures collection URL
func (e Endpoints) PersonMeasures(personID int) string {
	return fmt.Sprintf("%s/people/%d/measures", e.base, personID)
}

// Measure returns the single-measure URL
func (e Endpoints) Measure(personID, measureID int) string {
	return fmt.Sprintf("%s/people/%d/measures/%d", e.base, personID, measureID)
}

// Decrypt returns the percentage-breakdown URL for a person and date
func (e Endpoints) Decrypt(personID int, date string) string {
	return fmt.Sprintf("%s/people/%d/measures/decrypt?date=%s", e.base, personID, url.QueryEscape(date))
}

// Indicators returns the indicator collection URL
func (e Endpoints) Indicators() string { return e.base + "/indicators" }

// Units returns the unit vocabulary URL
func (e Endpoints) Units() string { return e.base + "/indicators/units" }

// Unit returns the single-unit URL
func (e Endpoints) Unit(unitID int) string {
	return fmt.Sprintf("%s/indicators/units/%d", e.base, unitID)
}

// Transcripts returns the transcript collection URL
func (e Endpoints) Transcripts() string { return e.base + "/transcripts" }

// Reasons returns the reason vocabulary URL
func (e Endpoints) Reasons() string { return e.base + "/reasons" }

// Reason returns the single-reason URL
func (e Endpoints) Reason(reasonID int) string {
	return fmt.Sprintf("%s/reasons/%d", e.base, reasonID)
}

// Groups returns the indicator-group catalog URL
func (e Endpoints) Groups() string { return e.base + "/groups" }
