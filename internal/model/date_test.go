package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(time.Date(1990, time.May, 17, 13, 45, 0, 0, time.FixedZone("ECT", -5*3600)))

	body, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-05-17"`, string(body))

	var parsed Date
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.True(t, d.Equal(parsed.Time))
}

func TestDateRejectsOtherLayouts(t *testing.T) {
	for _, raw := range []string{`"17-05-1990"`, `"1990/05/17"`, `"1990-13-01"`, `19900517`} {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(raw), &d), raw)
	}
}

func TestPersonJSONShape(t *testing.T) {
	birthDate, err := ParseDate("2000-01-01")
	require.NoError(t, err)

	body, err := json.Marshal(Person{
		ID:         7,
		FullName:   "Ana Torres",
		BirthDate:  birthDate,
		Email:      "ana@example.com",
		Country:    "Ecuador",
		NationalID: "0102030405",
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 7,
		"full_name": "Ana Torres",
		"birth_date": "2000-01-01",
		"email": "ana@example.com",
		"country": "Ecuador",
		"national_id": "0102030405"
	}`, string(body))
}

func TestPersonPayloadValidate(t *testing.T) {
	payload := PersonPayload{
		FullName:   "Ana Torres",
		BirthDate:  "2000-01-01",
		Email:      "ana@example.com",
		Country:    "Ecuador",
		NationalID: "0102030405",
	}
	require.NoError(t, payload.Validate())

	person, err := payload.ToPerson()
	require.NoError(t, err)
	assert.Equal(t, "2000-01-01", person.BirthDate.String())

	payload.Email = "a@b"
	assert.Error(t, payload.Validate())
}
