package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNames() NameTable {
	return NameTable{
		Subjects: map[int]string{301: "Systems Programming", 999: "Guest Lecture"},
		Rooms:    map[int]string{3301: "C301", 2201: "B201"},
	}
}

func TestDaySessionsWeeklyPattern(t *testing.T) {
	day := PlanDay{Date: "2025-04-08", TermID: 1, WeekdaySlot: 2}
	weekly := []TimetableEntry{
		{Year: 2025, DepartmentID: 3, TermID: 1, Weekday: 2, PeriodNo: 3, SubjectID: 301, RoomID: 3301, Note: "C301/Terauchi"},
		{Year: 2025, DepartmentID: 3, TermID: 1, Weekday: 2, PeriodNo: 1, SubjectID: 301, RoomID: 2201},
		// Different weekday, must not appear.
		{Year: 2025, DepartmentID: 3, TermID: 1, Weekday: 3, PeriodNo: 1, SubjectID: 301},
	}

	sessions := DaySessions(day, weekly, nil, testNames())
	require.Len(t, sessions, 2)
	// Ordered by period.
	assert.Equal(t, 1, sessions[0].PeriodNo)
	assert.Equal(t, 3, sessions[1].PeriodNo)
	assert.Equal(t, 301, sessions[1].SubjectID)
	assert.Equal(t, "Systems Programming (C301)", sessions[1].Label)
	assert.Equal(t, "C301/Terauchi", sessions[1].Note)
}

func TestDaySessionsOverrideReplacesCell(t *testing.T) {
	day := PlanDay{Date: "2025-04-08", TermID: 1, WeekdaySlot: 2}
	weekly := []TimetableEntry{
		{Year: 2025, DepartmentID: 3, TermID: 1, Weekday: 2, PeriodNo: 3, SubjectID: 301, RoomID: 3301, Note: "C301/Terauchi"},
	}

	// Without an override the weekly cell wins.
	sessions := DaySessions(day, weekly, nil, testNames())
	require.Len(t, sessions, 1)
	assert.Equal(t, 301, sessions[0].SubjectID)

	// The override replaces the whole cell, note included.
	ov := OverrideMap([]Override{
		{Date: "2025-04-08", DepartmentID: 3, PeriodNo: 3, SubjectID: 999, RoomID: 2201, Note: "guest"},
	})
	sessions = DaySessions(day, weekly, ov, testNames())
	require.Len(t, sessions, 1)
	assert.Equal(t, 999, sessions[0].SubjectID)
	assert.Equal(t, "Guest Lecture (B201)", sessions[0].Label)
	assert.Equal(t, "guest", sessions[0].Note)

	// An override on another date changes nothing.
	ov = OverrideMap([]Override{
		{Date: "2025-04-09", DepartmentID: 3, PeriodNo: 3, SubjectID: 999},
	})
	sessions = DaySessions(day, weekly, ov, testNames())
	require.Len(t, sessions, 1)
	assert.Equal(t, 301, sessions[0].SubjectID)
}

func TestDaySessionsLabels(t *testing.T) {
	day := PlanDay{Date: "2025-04-08", TermID: 1, WeekdaySlot: 2}
	weekly := []TimetableEntry{
		// Subject id 0 is a deliberately empty cell.
		{DepartmentID: 3, TermID: 1, Weekday: 2, PeriodNo: 1, SubjectID: 0},
		// Subject id with no master row.
		{DepartmentID: 3, TermID: 1, Weekday: 2, PeriodNo: 2, SubjectID: 777},
	}
	sessions := DaySessions(day, weekly, nil, testNames())
	require.Len(t, sessions, 2)
	assert.Equal(t, FreeSlotLabel, sessions[0].Label)
	assert.Equal(t, UnsetSubjectLabel, sessions[1].Label)
}

func TestDaySessionsSlotZeroMaterializesNothing(t *testing.T) {
	day := PlanDay{Date: "2025-07-15", TermID: 9, WeekdaySlot: 0}
	weekly := []TimetableEntry{
		{DepartmentID: 3, TermID: 9, Weekday: 1, PeriodNo: 1, SubjectID: 301},
	}
	assert.Empty(t, DaySessions(day, weekly, nil, testNames()))
}

func TestDaySessionsSortsByPeriodThenDepartment(t *testing.T) {
	day := PlanDay{Date: "2025-04-08", TermID: 1, WeekdaySlot: 2}
	weekly := []TimetableEntry{
		{DepartmentID: 2, TermID: 1, Weekday: 2, PeriodNo: 1, SubjectID: 301},
		{DepartmentID: 1, TermID: 1, Weekday: 2, PeriodNo: 2, SubjectID: 301},
		{DepartmentID: 1, TermID: 1, Weekday: 2, PeriodNo: 1, SubjectID: 301},
	}
	sessions := DaySessions(day, weekly, nil, testNames())
	require.Len(t, sessions, 3)
	assert.Equal(t, []int{1, 1, 2}, []int{sessions[0].PeriodNo, sessions[1].PeriodNo, sessions[2].PeriodNo})
	assert.Equal(t, []int{1, 2, 1}, []int{sessions[0].DepartmentID, sessions[1].DepartmentID, sessions[2].DepartmentID})
}

func TestMonthSessions(t *testing.T) {
	plans := []PlanDay{
		{Date: "2025-04-08", TermID: 1, WeekdaySlot: 2},
		{Date: "2025/04/09", TermID: 1, WeekdaySlot: 3}, // legacy slash form
		{Date: "2025-05-01", TermID: 1, WeekdaySlot: 4}, // other month
		{Date: "bogus", TermID: 1, WeekdaySlot: 2},      // skipped
	}
	weekly := []TimetableEntry{
		{DepartmentID: 3, TermID: 1, Weekday: 2, PeriodNo: 1, SubjectID: 301},
		{DepartmentID: 3, TermID: 1, Weekday: 3, PeriodNo: 2, SubjectID: 301},
		{DepartmentID: 3, TermID: 1, Weekday: 4, PeriodNo: 1, SubjectID: 301},
	}

	month := MonthSessions(2025, 4, plans, weekly, nil, testNames())
	require.Len(t, month, 2)
	assert.Len(t, month[8], 1)
	assert.Len(t, month[9], 1)
	assert.Equal(t, "2025-04-09", month[9][0].Date)
}
