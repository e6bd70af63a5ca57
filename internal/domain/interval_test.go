package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{name: "identical intervals", aStart: 600, aEnd: 720, bStart: 600, bEnd: 720, want: true},
		{name: "partial overlap right", aStart: 600, aEnd: 720, bStart: 660, bEnd: 780, want: true},
		{name: "partial overlap left", aStart: 660, aEnd: 780, bStart: 600, bEnd: 720, want: true},
		{name: "containment", aStart: 600, aEnd: 720, bStart: 630, bEnd: 660, want: true},
		{name: "single shared minute", aStart: 600, aEnd: 720, bStart: 719, bEnd: 780, want: true},
		{name: "back to back is not overlap", aStart: 600, aEnd: 720, bStart: 720, bEnd: 780, want: false},
		{name: "back to back reversed", aStart: 720, aEnd: 780, bStart: 600, bEnd: 720, want: false},
		{name: "disjoint", aStart: 420, aEnd: 480, bStart: 600, bEnd: 720, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestHasConflict(t *testing.T) {
	existing := []*Reservation{
		{Date: "2025-06-01", Start: "10:00", End: "12:00"},
	}

	assert.True(t, HasConflict("11:00", "13:00", existing))
	assert.True(t, HasConflict("09:00", "10:30", existing))
	assert.True(t, HasConflict("10:00", "12:00", existing))
	assert.False(t, HasConflict("12:00", "13:00", existing))
	assert.False(t, HasConflict("08:00", "10:00", existing))
	assert.False(t, HasConflict("09:00", "10:00", nil))
}

func TestHasConflict_EndOfDay(t *testing.T) {
	existing := []*Reservation{
		{Date: "2025-06-01", Start: "22:00", End: "00:00"},
	}

	// "00:00" is minute 1440, so 23:00-00:00 falls inside 22:00-00:00
	assert.True(t, HasConflict("23:00", "00:00", existing))
	assert.False(t, HasConflict("20:00", "22:00", existing))
}
