package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoldingMonths(t *testing.T) {
	tests := []struct {
		name     string
		purchase time.Time
		asOf     time.Time
		want     int
	}{
		{
			name:     "thirteen months is long term boundary",
			purchase: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			asOf:     time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			want:     13,
		},
		{
			name:     "twelve months is not yet long term",
			purchase: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			asOf:     time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			want:     12,
		},
		{
			name:     "same month is zero",
			purchase: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			asOf:     time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			want:     0,
		},
		{
			name:     "inverted dates yield negative months",
			purchase: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			asOf:     time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			want:     -3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HoldingMonths(tt.purchase, tt.asOf))
		})
	}
}

func TestDefaultAsOf(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "January rolls to current year March 31",
			now:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "March rolls to current year March 31",
			now:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "April rolls to next year March 31",
			now:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "December rolls to next year March 31",
			now:  time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultAsOf(tt.now))
		})
	}
}

func TestAddYearsAndMonths(t *testing.T) {
	base := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC), AddYears(base, 5))
	assert.Equal(t, time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC), AddMonths(base, 18))
}

func TestBeginningAndEndOfYear(t *testing.T) {
	base := time.Date(2025, 6, 15, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), BeginningOfYear(base))
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 999999999, time.UTC), EndOfYear(base))
}
