package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOptions(t *testing.T) {
	opts := NewOptionsService().GetOptions()

	assert.Len(t, opts.Roles, 3)
	assert.Len(t, opts.Departments, 16)
	assert.Len(t, opts.DaysOfWeek, 7)
	assert.Len(t, opts.Seasons, 4)

	require.NotEmpty(t, opts.Roles)
	assert.Equal(t, "Student", opts.Roles[0].Name)
	assert.Equal(t, "STUDENT", opts.Roles[0].Value)

	found := false
	for _, d := range opts.Departments {
		if d.Value == "COMPUTER_SCIENCE" {
			assert.Equal(t, "Computer Science", d.Name)
			found = true
		}
	}
	assert.True(t, found, "computer science department missing from catalog")
}

func TestLabelFor(t *testing.T) {
	cases := map[string]string{
		"STUDENT":                    "Student",
		"COMPUTER_SCIENCE":           "Computer Science",
		"HEALTH_CARE_ADMINISTRATION": "Health Care Administration",
		"MONDAY":                     "Monday",
	}

	for value, want := range cases {
		assert.Equal(t, want, labelFor(value))
	}
}
