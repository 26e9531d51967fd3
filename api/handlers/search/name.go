// Package search implements the console's person name matching: a
// case-insensitive substring filter that works across alphabets.
package search

import (
	"strings"

	"github.com/medgrid/measure-console-api/models"
)

// MatchName reports whether query is a case-insensitive substring of name.
// An empty query matches everything.
func MatchName(name, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), q)
}

// FilterPeople keeps the people whose name matches the query, preserving the
// upstream order
func FilterPeople(people []models.Person, query string) []models.Person {
	out := make([]models.Person, 0, len(people))
	for _, p := range people {
		if MatchName(p.Name, query) {
			out = append(out, p)
		}
	}
	return out
}
