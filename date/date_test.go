package date

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	assert.Equal(t, New(2025, 7, 31).time(), New(2025, 7, 31).time())
	assert.Equal(t, New(2025, time.August, 1), New(2025, time.July, 32), "New normalizes overflowing days")
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-01", New(2025, time.July, 1), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{"2025/07/01", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAddMonth(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		n    int
		want Date
	}{
		{"plain", New(2025, time.May, 15), 3, New(2025, time.August, 15)},
		{"clipped to february", New(2025, time.November, 30), 3, New(2026, time.February, 28)},
		{"clipped to leap february", New(2023, time.November, 30), 3, New(2024, time.February, 29)},
		{"clipped to june", New(2025, time.March, 31), 3, New(2025, time.June, 30)},
		{"across year", New(2025, time.December, 31), 3, New(2026, time.March, 31)},
		{"backwards", New(2025, time.March, 31), -1, New(2025, time.February, 28)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.AddMonth(tc.n), "%v.AddMonth(%d)", tc.in, tc.n)
		})
	}
}

func TestNextQuarterEnd(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Date
	}{
		{"mid quarter", New(2025, time.May, 20), New(2025, time.September, 30)},
		{"first day of quarter", New(2025, time.January, 1), New(2025, time.June, 30)},
		{"lands on a quarter end", New(2025, time.March, 31), New(2025, time.September, 30)},
		{"short of a quarter end", New(2025, time.September, 30), New(2025, time.December, 31)},
		{"lands on march end", New(2025, time.December, 31), New(2026, time.June, 30)},
		{"clipped month end", New(2025, time.November, 30), New(2026, time.March, 31)},
		{"late in year", New(2025, time.October, 19), New(2026, time.March, 31)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextQuarterEnd(tc.in), "NextQuarterEnd(%v)", tc.in)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "2026-03-31", New(2026, time.March, 31).String())
	assert.True(t, Date{}.IsZero())
	assert.False(t, New(2026, time.March, 31).IsZero())
}
