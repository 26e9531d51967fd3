package upstream

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/medgrid/measure-console-api/models"
)

// The upstream has wrapped list payloads in several envelopes over time.
// Every consumer goes through this one normalization layer so each resource
// has a single canonical shape.
var listWrapperKeys = []string{"people", "items", "data", "results", "list", "content"}

var collator = collate.New(language.Russian)

// decodeList turns any list-like payload into its raw elements: a bare array,
// a wrapped array, a double-encoded JSON string, or a single object (which
// becomes a one-element list). Anything else normalizes to empty.
func decodeList(raw []byte) []json.RawMessage {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		inner, err := strconv.Unquote(trimmed)
		if err != nil {
			return nil
		}
		return decodeList([]byte(inner))
	}
	if strings.HasPrefix(trimmed, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		return items
	}
	if strings.HasPrefix(trimmed, "{") {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil
		}
		for _, key := range listWrapperKeys {
			if inner, ok := obj[key]; ok {
				return decodeList(inner)
			}
		}
		return []json.RawMessage{json.RawMessage(raw)}
	}
	return nil
}

// extractName unwraps a JSON-stringified {"name": "..."} accidentally nested
// in a name field
func extractName(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		var inner struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal([]byte(s), &inner); err == nil && inner.Name != "" {
			return inner.Name
		}
	}
	return s
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asInt(v interface{}, fallback int) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return fallback
}

func coerceGender(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.GenderFemale:
		return models.GenderFemale
	case models.GenderBoth:
		return models.GenderBoth
	}
	return models.GenderMale
}

// toPerson normalizes one list element into a Person. Degraded input becomes
// a displayable record rather than an error.
func toPerson(raw json.RawMessage, index int) models.Person {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return models.Person{ID: index + 1, Name: extractName(s), Gender: models.GenderMale}
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return models.Person{ID: index + 1, Gender: models.GenderMale}
	}
	name := obj["name"]
	if name == nil {
		name = obj["fullName"]
	}
	if name == nil {
		name = obj["title"]
	}
	dob := obj["dateOfBirth"]
	if dob == nil {
		dob = obj["dob"]
	}
	gender := coerceGender(asString(obj["gender"]))
	return models.Person{
		ID:          asInt(obj["id"], index+1),
		Name:        extractName(asString(name)),
		Gender:      gender,
		DateOfBirth: asString(dob),
		IsGravid:    asBool(obj["isGravid"]) && gender == models.GenderFemale,
	}
}

// ToPeople normalizes any people payload the upstream has been seen to return
func ToPeople(raw []byte) []models.Person {
	items := decodeList(raw)
	people := make([]models.Person, 0, len(items))
	for i, item := range items {
		people = append(people, toPerson(item, i))
	}
	return people
}

// ToNamed normalizes a vocabulary payload: plain string arrays are coerced
// into id+name pairs, JSON-stringified names are unwrapped
func ToNamed(raw []byte) []models.Named {
	items := decodeList(raw)
	named := make([]models.Named, 0, len(items))
	for i, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			named = append(named, models.Named{ID: i + 1, Name: extractName(s)})
			continue
		}
		var obj struct {
			ID   *int        `json:"id"`
			Name interface{} `json:"name"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		id := i + 1
		if obj.ID != nil {
			id = *obj.ID
		}
		named = append(named, models.Named{ID: id, Name: extractName(asString(obj.Name))})
	}
	return named
}

// sortNamed orders a vocabulary for stable, locale-aware display
func sortNamed(items []models.Named) {
	sort.SliceStable(items, func(i, j int) bool {
		return collator.CompareString(items[i].Name, items[j].Name) < 0
	})
}
