package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medgrid/measure-console-api/models"
)

func TestToPeopleBareArray(t *testing.T) {
	people := ToPeople([]byte(`[{"id": 3, "name": "Иванов Иван", "gender": "male", "dateOfBirth": "1990-04-12"}]`))

	assert.Len(t, people, 1)
	assert.Equal(t, 3, people[0].ID)
	assert.Equal(t, "Иванов Иван", people[0].Name)
	assert.Equal(t, "1990-04-12", people[0].DateOfBirth)
}

func TestToPeopleWrappedPayloads(t *testing.T) {
	for _, wrapper := range []string{"people", "items", "data", "results", "list", "content"} {
		payload := []byte(`{"` + wrapper + `": [{"id": 1, "name": "A"}, {"id": 2, "name": "B"}]}`)
		people := ToPeople(payload)
		assert.Len(t, people, 2, "wrapper %q", wrapper)
		assert.Equal(t, "B", people[1].Name)
	}
}

func TestToPeopleDoubleEncodedString(t *testing.T) {
	people := ToPeople([]byte(`"[{\"id\": 5, \"name\": \"Петрова\", \"gender\": \"female\", \"isGravid\": true}]"`))

	assert.Len(t, people, 1)
	assert.Equal(t, 5, people[0].ID)
	assert.Equal(t, models.GenderFemale, people[0].Gender)
	assert.True(t, people[0].IsGravid)
}

func TestToPeopleSingleObjectBecomesList(t *testing.T) {
	people := ToPeople([]byte(`{"id": 9, "name": "Solo"}`))

	assert.Len(t, people, 1)
	assert.Equal(t, 9, people[0].ID)
}

func TestToPeopleStringArray(t *testing.T) {
	people := ToPeople([]byte(`["Иванов", "Петров"]`))

	assert.Len(t, people, 2)
	assert.Equal(t, 1, people[0].ID)
	assert.Equal(t, "Петров", people[1].Name)
	assert.Equal(t, models.GenderMale, people[0].Gender)
}

func TestToPeopleJSONStringifiedName(t *testing.T) {
	people := ToPeople([]byte(`[{"id": 1, "name": "{\"name\": \"Сидоров\"}"}]`))

	assert.Equal(t, "Сидоров", people[0].Name)
}

func TestToPeopleGravidClearedForNonFemale(t *testing.T) {
	people := ToPeople([]byte(`[{"id": 1, "name": "X", "gender": "male", "isGravid": true}]`))

	assert.False(t, people[0].IsGravid)
}

func TestToPeopleNameFallbackKeys(t *testing.T) {
	people := ToPeople([]byte(`[{"id": 1, "fullName": "Full"}, {"id": 2, "title": "Titled"}]`))

	assert.Equal(t, "Full", people[0].Name)
	assert.Equal(t, "Titled", people[1].Name)
}

func TestToPeopleGarbage(t *testing.T) {
	assert.Empty(t, ToPeople([]byte(`null`)))
	assert.Empty(t, ToPeople([]byte(``)))
	assert.Empty(t, ToPeople([]byte(`42`)))
	assert.Empty(t, ToPeople([]byte(`"not json at all`)))
}

func TestToNamedStringArray(t *testing.T) {
	named := ToNamed([]byte(`["мг/л", "ммоль/л"]`))

	assert.Equal(t, []models.Named{{ID: 1, Name: "мг/л"}, {ID: 2, Name: "ммоль/л"}}, named)
}

func TestToNamedObjectsAndWrappedName(t *testing.T) {
	named := ToNamed([]byte(`{"items": [{"id": 7, "name": "{\"name\": \"щелочная фосфатаза\"}"}, {"name": "без id"}]}`))

	assert.Len(t, named, 2)
	assert.Equal(t, 7, named[0].ID)
	assert.Equal(t, "щелочная фосфатаза", named[0].Name)
	assert.Equal(t, 2, named[1].ID)
}

func TestCoerceGenderDefaultsMale(t *testing.T) {
	assert.Equal(t, models.GenderMale, coerceGender(""))
	assert.Equal(t, models.GenderMale, coerceGender("unknown"))
	assert.Equal(t, models.GenderFemale, coerceGender(" Female "))
	assert.Equal(t, models.GenderBoth, coerceGender("both"))
}

func TestSortNamedRussianCollation(t *testing.T) {
	items := []models.Named{{ID: 1, Name: "ЭКГ"}, {ID: 2, Name: "анализ"}, {ID: 3, Name: "Биопсия"}}
	sortNamed(items)

	assert.Equal(t, "анализ", items[0].Name)
	assert.Equal(t, "Биопсия", items[1].Name)
	assert.Equal(t, "ЭКГ", items[2].Name)
}
