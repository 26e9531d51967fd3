package models

import (
	"strings"
	"time"
)

// DateLayout is the wire format for all dates exchanged with the upstream
const DateLayout = "2006-01-02"

// DisplayDateLayout is the DD.MM.YY form used for column headers
const DisplayDateLayout = "02.01.06"

// DisplayDate reformats a YYYY-MM-DD wire date for display. Unparseable input
// is returned as-is rather than dropped.
func DisplayDate(wire string) string {
	t, err := time.Parse(DateLayout, wire)
	if err != nil {
		return wire
	}
	return t.Format(DisplayDateLayout)
}

// ValidWireDate reports whether s is a well-formed YYYY-MM-DD date
func ValidWireDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func trimSpace(s string) string { return strings.TrimSpace(s) }
