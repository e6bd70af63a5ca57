package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		name string
		in   TimeString
		want int
	}{
		{name: "morning", in: "07:00", want: 420},
		{name: "midday", in: "12:30", want: 750},
		{name: "last minute of day", in: "23:59", want: 1439},
		{name: "midnight means end of day", in: "00:00", want: 1440},
		{name: "empty string maps to zero", in: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Minutes())
		})
	}
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, TimeString("07:00"), FromMinutes(420))
	assert.Equal(t, TimeString("12:30"), FromMinutes(750))
	assert.Equal(t, TimeString("00:00"), FromMinutes(EndOfDayMinutes))
}

func TestFromMinutes_RoundTrip(t *testing.T) {
	for m := 0; m <= EndOfDayMinutes; m += 30 {
		if m == 0 {
			// minute 0 renders as "00:00" which parses back as end of day
			continue
		}
		assert.Equal(t, m, FromMinutes(m).Minutes(), "minute %d", m)
	}
}

func TestTimeString_Validate(t *testing.T) {
	valid := []TimeString{"00:00", "07:00", "23:59", "09:30"}
	for _, v := range valid {
		assert.NoError(t, v.Validate(), "%q", v)
	}

	invalid := []TimeString{"", "7:00", "24:00", "12:60", "12.30", "ab:cd", "12:345"}
	for _, v := range invalid {
		assert.Error(t, v.Validate(), "%q", v)
	}
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), ts)

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	at := time.Date(2025, 6, 1, 14, 45, 59, 0, time.UTC)
	assert.Equal(t, TimeString("14:45"), NewTimeString(at))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("08:30")))
	assert.Equal(t, TimeString("08:30"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:00"))
	// "00:00" is the end of the day, after everything else
	assert.True(t, TimeString("00:00").IsAfter("23:59"))
}
