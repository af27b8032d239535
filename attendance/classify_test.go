package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCutoffs(t *testing.T) Cutoffs {
	t.Helper()
	return Cutoffs{
		OnTime: mustClock(t, "08:50:00"),
		Absent: mustClock(t, "09:10:00"),
	}
}

func TestCheckInWithSinglePeriod(t *testing.T) {
	// One period 08:50-10:30: at the start is present, within is late,
	// at or past the (exclusive) end is absent.
	c := Classifier{
		Periods:  []Period{{No: 1, Start: mustClock(t, "08:50"), End: mustClock(t, "10:30")}},
		Fallback: testCutoffs(t),
	}
	tests := []struct {
		ts   string
		want Status
	}{
		{"2025-04-08 08:50:00", StatusPresent},
		{"2025-04-08 08:50:01", StatusLate},
		{"2025-04-08 10:30:00", StatusAbsent},
		{"2025-04-08 07:30:00", StatusPresent},
		{"2025-04-08 10:29:59", StatusLate},
		{"garbage", StatusInvalidTime},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.CheckIn(tt.ts), tt.ts)
	}
}

func TestCheckInFullSchedule(t *testing.T) {
	c := Classifier{Periods: bellSchedule(t), Fallback: testCutoffs(t)}
	tests := []struct {
		ts   string
		want Status
	}{
		// 10:30 falls in the gap before period 2, which starts at 10:35.
		{"2025-04-08 10:30:00", StatusPresent},
		{"2025-04-08 10:36:00", StatusLate},
		// Past the last period's end there is nothing left to attend.
		{"2025-04-08 18:20:00", StatusAbsent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.CheckIn(tt.ts), tt.ts)
	}
}

func TestCheckInFallbackCutoffs(t *testing.T) {
	c := Classifier{Fallback: testCutoffs(t)}
	tests := []struct {
		ts   string
		want Status
	}{
		{"2025-04-08 08:45:00", StatusPresent},
		{"2025-04-08 08:50:00", StatusPresent},
		{"2025-04-08 09:05:00", StatusLate},
		{"2025-04-08 09:10:00", StatusLate},
		{"2025-04-08 09:10:01", StatusAbsent},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.CheckIn(tt.ts), tt.ts)
	}
}

func TestCheckOut(t *testing.T) {
	c := Classifier{Periods: bellSchedule(t), Fallback: testCutoffs(t)}
	tests := []struct {
		ts   string
		want Status
	}{
		{"2025-04-08 09:30:00", StatusTemporaryExit},
		{"2025-04-08 18:20:00", StatusExit},
		// Unparseable timestamps default to a final exit.
		{"garbage", StatusExit},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.CheckOut(tt.ts), tt.ts)
	}

	noTable := Classifier{Fallback: testCutoffs(t)}
	assert.Equal(t, StatusTemporaryExit, noTable.CheckOut("2025-04-08 09:00:00"))
	assert.Equal(t, StatusExit, noTable.CheckOut("2025-04-08 09:10:00"))
}

func TestNextDirection(t *testing.T) {
	require.Equal(t, DirectionIn, NextDirection(""))
	require.Equal(t, DirectionOut, NextDirection(DirectionIn))
	require.Equal(t, DirectionIn, NextDirection(DirectionOut))
}
