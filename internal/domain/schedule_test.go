package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blackrooms/BR-ReservationService/pkg/types"
)

func ts(t *testing.T, s string) types.TimeString {
	t.Helper()
	v, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return v
}

func TestScheduleOverlaps(t *testing.T) {
	slot := &Schedule{
		StartTime: ts(t, "18:00"),
		EndTime:   ts(t, "19:00"),
	}

	tests := []struct {
		name     string
		start    string
		end      string
		overlaps bool
	}{
		{"identical interval", "18:00", "19:00", true},
		{"starts inside", "18:30", "19:30", true},
		{"ends inside", "17:30", "18:30", true},
		{"contains slot", "17:00", "20:00", true},
		{"contained in slot", "18:15", "18:45", true},
		{"adjacent after", "19:00", "20:00", false},
		{"adjacent before", "17:00", "18:00", false},
		{"fully before", "15:00", "16:00", false},
		{"fully after", "20:00", "21:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.overlaps, slot.Overlaps(ts(t, tt.start), ts(t, tt.end)))
		})
	}
}
