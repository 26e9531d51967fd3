package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "05.03.24", DisplayDate("2024-03-05"))
	assert.Equal(t, "31.12.99", DisplayDate("1999-12-31"))
	assert.Equal(t, "garbage", DisplayDate("garbage"))
	assert.Equal(t, "", DisplayDate(""))
}

func TestValidWireDate(t *testing.T) {
	assert.True(t, ValidWireDate("2024-02-29"))
	assert.False(t, ValidWireDate("2023-02-29"))
	assert.False(t, ValidWireDate("05.03.2024"))
	assert.False(t, ValidWireDate(""))
}

func TestAgeAt(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		dob      string
		expected int
	}{
		{"1990-06-15", 34}, // birthday today
		{"1990-06-16", 33}, // birthday tomorrow
		{"1990-06-14", 34},
		{"1990-07-01", 33},
		{"2024-06-01", 0},
	}
	for _, tt := range tests {
		got := AgeAt(tt.dob, now)
		require.NotNil(t, got, tt.dob)
		assert.Equal(t, tt.expected, *got, tt.dob)
	}

	assert.Nil(t, AgeAt("", now))
	assert.Nil(t, AgeAt("not a date", now))
}

func TestPersonRequestNormalize(t *testing.T) {
	req := PersonRequest{Name: "  Иванова  ", Gender: GenderMale, IsGravid: true}
	req.Normalize()
	assert.Equal(t, "Иванова", req.Name)
	assert.False(t, req.IsGravid)

	req = PersonRequest{Name: "Петрова", Gender: GenderFemale, IsGravid: true}
	req.Normalize()
	assert.True(t, req.IsGravid)
}

func TestFlexValueUnmarshal(t *testing.T) {
	var payload struct {
		Value FlexValue `json:"value"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"value": 4.2}`), &payload))
	assert.Equal(t, FlexValue("4.2"), payload.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"value": "positive"}`), &payload))
	assert.Equal(t, FlexValue("positive"), payload.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"value": null}`), &payload))
	assert.Equal(t, FlexValue(""), payload.Value)
}

func TestFlexValueMarshal(t *testing.T) {
	raw, err := json.Marshal(FlexValue("4.2"))
	require.NoError(t, err)
	assert.Equal(t, `4.2`, string(raw))

	raw, err = json.Marshal(FlexValue("positive"))
	require.NoError(t, err)
	assert.Equal(t, `"positive"`, string(raw))
}

func TestCellClassAndSuffix(t *testing.T) {
	assert.Equal(t, "cell-ok", CellClass(StatusOK))
	assert.Equal(t, "cell-raise", CellClass(StatusRaise))
	assert.Equal(t, "cell-raise", CellClass(StatusFall))
	assert.Equal(t, "", CellClass("unknown"))

	assert.Equal(t, "↑", CellSuffix(StatusRaise))
	assert.Equal(t, "↓", CellSuffix(StatusFall))
	assert.Equal(t, "", CellSuffix(StatusOK))
}
