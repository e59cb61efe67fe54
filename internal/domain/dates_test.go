package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBirthDate(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		wantDay   int
		wantMonth int
		wantErr   bool
	}{
		{
			name:      "Should accept a regular date",
			value:     "08-06",
			wantDay:   8,
			wantMonth: 6,
		},
		{
			name:      "Should accept the last day of the year",
			value:     "31-12",
			wantDay:   31,
			wantMonth: 12,
		},
		{
			name:      "Should accept the leap day",
			value:     "29-02",
			wantDay:   29,
			wantMonth: 2,
		},
		{
			name:    "Should reject a single digit day",
			value:   "8-06",
			wantErr: true,
		},
		{
			name:    "Should reject a month out of range",
			value:   "01-13",
			wantErr: true,
		},
		{
			name:    "Should reject a day that does not exist",
			value:   "31-04",
			wantErr: true,
		},
		{
			name:    "Should reject the day after the leap day",
			value:   "30-02",
			wantErr: true,
		},
		{
			name:    "Should reject the wrong separator",
			value:   "08/06",
			wantErr: true,
		},
		{
			name:    "Should reject an empty string",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, month, err := ParseBirthDate(tt.value)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDay, day)
			assert.Equal(t, tt.wantMonth, month)
		})
	}
}

func TestFormatBirthDate(t *testing.T) {
	assert.Equal(t, "08-06", FormatBirthDate(8, 6))
	assert.Equal(t, "31-12", FormatBirthDate(31, 12))
}

func TestDaysUntilNext(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		day   int
		month int
		want  int
	}{
		{
			name:  "Should count a birthday later this month",
			day:   8,
			month: 6,
			want:  7,
		},
		{
			name:  "Should return zero on the day itself",
			day:   1,
			month: 6,
			want:  0,
		},
		{
			name:  "Should return one for tomorrow",
			day:   2,
			month: 6,
			want:  1,
		},
		{
			name:  "Should roll a passed date into next year",
			day:   25,
			month: 5,
			want:  358, // 2024-06-01 to 2025-05-25
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntilNext(tt.day, tt.month, now))
		})
	}
}

func TestDaysUntilNext_acrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// The spring-forward on 2024-03-31 shortens one day to 23 hours; the
	// offset must still come out as whole days.
	now := time.Date(2024, 3, 28, 9, 0, 0, 0, loc)
	assert.Equal(t, 7, DaysUntilNext(4, 4, now))
}
