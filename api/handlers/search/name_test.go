package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medgrid/measure-console-api/api/handlers/search"
	"github.com/medgrid/measure-console-api/models"
)

func TestMatchName(t *testing.T) {
	assert.True(t, search.MatchName("Иванов Иван", "иван"))
	assert.True(t, search.MatchName("Иванова Мария", "ИВАН"))
	assert.True(t, search.MatchName("Пётр Сидоров", "сидор"))
	assert.True(t, search.MatchName("anything", ""))
	assert.True(t, search.MatchName("anything", "   "))
	assert.False(t, search.MatchName("Пётр Сидоров", "иван"))
}

func TestFilterPeoplePreservesOrder(t *testing.T) {
	people := []models.Person{
		{ID: 1, Name: "Иванов Иван"},
		{ID: 2, Name: "Пётр Сидоров"},
		{ID: 3, Name: "Иванова Мария"},
	}

	got := search.FilterPeople(people, "иван")
	assert.Equal(t, []int{1, 3}, []int{got[0].ID, got[1].ID})

	got = search.FilterPeople(people, "")
	assert.Len(t, got, 3)

	got = search.FilterPeople(people, "никого")
	assert.Empty(t, got)
}
