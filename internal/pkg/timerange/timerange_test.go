package timerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	for _, value := range []string{"09:00:00", "09:00", "9:00 AM", "9:00:30 PM"} {
		_, err := ParseClock(value)
		assert.NoError(t, err, value)
	}

	_, err := ParseClock("high noon")
	require.Error(t, err)
}

func TestIsValid(t *testing.T) {
	cases := []struct {
		start, end string
		want       bool
	}{
		{"09:00:00", "10:30:00", true},
		{"9:00 AM", "1:00 PM", true},
		{"10:30:00", "09:00:00", false},
		{"09:00:00", "09:00:00", false},
		{"not-a-time", "10:00:00", false},
		{"09:00:00", "not-a-time", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValid(tc.start, tc.end), "%s .. %s", tc.start, tc.end)
	}
}
