package attendance

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// weekdaysFrom generates count consecutive Mon-Fri plan days starting at
// start, all in the given term with the matching weekday slot.
func weekdaysFrom(t *testing.T, start string, count, term int) []PlanDay {
	t.Helper()
	d, err := ParseDate(start)
	require.NoError(t, err)
	var out []PlanDay
	for len(out) < count {
		if wd := int(d.Weekday()); wd >= 1 && wd <= 5 {
			out = append(out, PlanDay{Date: DateOnly(d), TermID: term, WeekdaySlot: wd})
		}
		d = d.AddDate(0, 0, 1)
	}
	return out
}

func allWeekdayCells(term, dept, periodNo, subjectID int) []TimetableEntry {
	var out []TimetableEntry
	for wd := 1; wd <= 5; wd++ {
		out = append(out, TimetableEntry{
			Year: 2025, DepartmentID: dept, TermID: term,
			Weekday: wd, PeriodNo: periodNo, SubjectID: subjectID, RoomID: 3301,
			Note: "C301/Terauchi",
		})
	}
	return out
}

func TestAggregateSubjectsRateAndRequired(t *testing.T) {
	// 20 held sessions of one subject: 15 present, 2 late, 3 absent.
	plans := weekdaysFrom(t, "2025-04-07", 20, 1)
	weekly := allWeekdayCells(1, 3, 1, 301)
	periods := bellSchedule(t)

	checkIns := map[string][]TimeOfDay{}
	for i, p := range plans {
		switch {
		case i < 15:
			checkIns[p.Date] = []TimeOfDay{mustClock(t, "08:45:00")} // present
		case i < 17:
			checkIns[p.Date] = []TimeOfDay{mustClock(t, "09:00:00")} // late
		default:
			// absent: no check-in at all
		}
	}

	rows := AggregateSubjects(AggregateInput{
		Plans:    plans,
		Weekly:   weekly,
		Periods:  periods,
		Names:    testNames(),
		CheckIns: checkIns,
		Today:    "2025-12-31",
	})
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 301, row.SubjectID)
	assert.Equal(t, "Systems Programming", row.SubjectName)
	assert.Equal(t, "C301/Terauchi", row.Teacher)
	assert.Equal(t, "C301", row.Room)
	assert.Equal(t, 15, row.Present)
	assert.Equal(t, 2, row.Late)
	assert.Equal(t, 3, row.Absent)
	assert.Equal(t, 0, row.Unmarked)
	assert.Equal(t, 20, row.Held)
	assert.Equal(t, 16, row.Required) // ceil(20 * 0.8)
	assert.Equal(t, 75.0, row.Rate)   // 15/20
	assert.Len(t, row.AbsentDates, 3)
}

func TestAggregateRequiredRoundsUp(t *testing.T) {
	plans := weekdaysFrom(t, "2025-04-07", 17, 1)
	weekly := allWeekdayCells(1, 3, 1, 301)

	rows := AggregateSubjects(AggregateInput{
		Plans:   plans,
		Weekly:  weekly,
		Periods: bellSchedule(t),
		Names:   testNames(),
		Today:   "2025-12-31",
	})
	require.Len(t, rows, 1)
	assert.Equal(t, 17, rows[0].Held)
	assert.Equal(t, 14, rows[0].Required) // ceil(17 * 0.8) = 13.6 -> 14
}

func TestAggregateFutureSessionsAreUnmarked(t *testing.T) {
	plans := weekdaysFrom(t, "2025-04-07", 10, 1)
	weekly := allWeekdayCells(1, 3, 1, 301)

	// Today falls in the middle: the first 5 sessions are held, the rest
	// are not and must be unmarked, outside the denominator.
	today := plans[5].Date
	rows := AggregateSubjects(AggregateInput{
		Plans:   plans,
		Weekly:  weekly,
		Periods: bellSchedule(t),
		Names:   testNames(),
		Today:   today,
	})
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 5, row.Held)
	assert.Equal(t, 5, row.Absent)
	assert.Equal(t, 5, row.Unmarked)
	assert.Equal(t, 0.0, row.Rate)
	assert.Len(t, row.AbsentDates, 5)
}

func TestAggregateFirstCheckInDecides(t *testing.T) {
	plans := []PlanDay{{Date: "2025-04-08", TermID: 1, WeekdaySlot: 2}}
	weekly := []TimetableEntry{
		{DepartmentID: 3, TermID: 1, Weekday: 2, PeriodNo: 1, SubjectID: 301},
		{DepartmentID: 3, TermID: 1, Weekday: 2, PeriodNo: 3, SubjectID: 302},
	}
	names := NameTable{Subjects: map[int]string{301: "A", 302: "B"}, Rooms: map[int]string{}}

	// One check-in at 09:00: late for period 1 (starts 08:50), but it is
	// also the first check-in before period 3's end, and 09:00 is before
	// period 3's start, so period 3 counts as present.
	rows := AggregateSubjects(AggregateInput{
		Plans:    plans,
		Weekly:   weekly,
		Periods:  bellSchedule(t),
		Names:    names,
		CheckIns: map[string][]TimeOfDay{"2025-04-08": {mustClock(t, "09:00:00")}},
		Today:    "2025-04-09",
	})
	require.Len(t, rows, 2)
	byID := map[int]SubjectSummary{}
	for _, r := range rows {
		byID[r.SubjectID] = r
	}
	assert.Equal(t, 1, byID[301].Late)
	assert.Equal(t, 1, byID[302].Present)
}

func TestAggregateSkipsMalformedPlanRows(t *testing.T) {
	plans := []PlanDay{
		{Date: "2025-04-08", TermID: 1, WeekdaySlot: 2},
		{Date: "not-a-date", TermID: 1, WeekdaySlot: 2},
		{Date: "2025-04-12", TermID: 1, WeekdaySlot: 6}, // weekend slot
	}
	weekly := []TimetableEntry{
		{DepartmentID: 3, TermID: 1, Weekday: 2, PeriodNo: 1, SubjectID: 301},
		{DepartmentID: 3, TermID: 1, Weekday: 6, PeriodNo: 1, SubjectID: 301},
	}
	rows := AggregateSubjects(AggregateInput{
		Plans:   plans,
		Weekly:  weekly,
		Periods: bellSchedule(t),
		Names:   testNames(),
		Today:   "2025-05-01",
	})
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Held)
}

func TestAggregateOrdering(t *testing.T) {
	// Three subjects on distinct weekdays: one fully attended, two never
	// attended. Ordered by rate descending, then name ascending.
	plans := weekdaysFrom(t, "2025-04-07", 15, 1)
	weekly := []TimetableEntry{
		{DepartmentID: 3, TermID: 1, Weekday: 1, PeriodNo: 1, SubjectID: 1},
		{DepartmentID: 3, TermID: 1, Weekday: 2, PeriodNo: 1, SubjectID: 2},
		{DepartmentID: 3, TermID: 1, Weekday: 3, PeriodNo: 1, SubjectID: 3},
	}
	names := NameTable{
		Subjects: map[int]string{1: "Zeta", 2: "Alpha", 3: "Beta"},
		Rooms:    map[int]string{},
	}
	checkIns := map[string][]TimeOfDay{}
	for _, p := range plans {
		if p.WeekdaySlot == 1 {
			checkIns[p.Date] = []TimeOfDay{mustClock(t, "08:00:00")}
		}
	}
	rows := AggregateSubjects(AggregateInput{
		Plans:    plans,
		Weekly:   weekly,
		Periods:  bellSchedule(t),
		Names:    names,
		CheckIns: checkIns,
		Today:    "2025-12-31",
	})
	require.Len(t, rows, 3)
	assert.Equal(t, "Zeta", rows[0].SubjectName)
	assert.Equal(t, "Alpha", rows[1].SubjectName)
	assert.Equal(t, "Beta", rows[2].SubjectName)
}

func TestAggregateRoster(t *testing.T) {
	plans := weekdaysFrom(t, "2025-04-07", 10, 1)
	weekly := allWeekdayCells(1, 3, 1, 301)

	checkIns := map[int]map[string][]TimeOfDay{
		101: {},
		102: {},
	}
	for _, p := range plans {
		checkIns[101][p.Date] = []TimeOfDay{mustClock(t, "08:40:00")}
	}

	rows := AggregateRoster(RosterInput{
		SubjectID: 301,
		Plans:     plans,
		Weekly:    weekly,
		Periods:   bellSchedule(t),
		Students: []RosterStudent{
			{StudentNo: 102, Name: "B"},
			{StudentNo: 101, Name: "A"},
		},
		CheckIns: checkIns,
		Today:    "2025-12-31",
	})
	require.Len(t, rows, 2)
	assert.Equal(t, 101, rows[0].StudentNo)
	assert.Equal(t, 10, rows[0].Present)
	assert.Equal(t, 100.0, rows[0].Rate)
	assert.Equal(t, 102, rows[1].StudentNo)
	assert.Equal(t, 10, rows[1].Absent)
	assert.Equal(t, 0.0, rows[1].Rate)
}

func TestAbsentDates(t *testing.T) {
	plans := weekdaysFrom(t, "2025-04-07", 5, 1)
	weekly := allWeekdayCells(1, 3, 1, 301)

	checkIns := map[string][]TimeOfDay{
		plans[0].Date: {mustClock(t, "08:45:00")},
		plans[2].Date: {mustClock(t, "09:00:00")},
	}
	dates := AbsentDates(301, AggregateInput{
		Plans:    plans,
		Weekly:   weekly,
		Periods:  bellSchedule(t),
		Names:    testNames(),
		CheckIns: checkIns,
		Today:    "2025-12-31",
	})
	assert.Equal(t, []string{plans[1].Date, plans[3].Date, plans[4].Date}, dates)
}

func TestFoldDaily(t *testing.T) {
	events := []Event{
		{Timestamp: "2025-04-08 08:45:00", Direction: DirectionIn, Status: StatusPresent},
		{Timestamp: "2025-04-08 12:20:00", Direction: DirectionOut, ExitKind: StatusTemporaryExit},
		{Timestamp: "2025-04-08 13:05:00", Direction: DirectionIn, Status: StatusLate},
		{Timestamp: "2025-04-08 18:30:00", Direction: DirectionOut, ExitKind: StatusExit},
		{Timestamp: "2025-04-09 09:00:00", Direction: DirectionIn, Status: StatusLate},
		{Timestamp: "broken", Direction: DirectionIn, Status: StatusPresent},
	}
	totals, days := FoldDaily(events)

	assert.Equal(t, 1, totals[StatusPresent])
	assert.Equal(t, 2, totals[StatusLate])

	require.Len(t, days, 2)
	// Newest day first.
	assert.Equal(t, "2025-04-09", days[0].Date)
	assert.Equal(t, "2025-04-08", days[1].Date)
	assert.Equal(t, "2025-04-08 08:45:00", days[1].FirstIn)
	assert.Equal(t, StatusPresent, days[1].FirstStatus)
	assert.Equal(t, "2025-04-08 18:30:00", days[1].LastOut)
}

// Keeps the fixture generator honest.
func TestWeekdaysFromFixture(t *testing.T) {
	plans := weekdaysFrom(t, "2025-04-07", 6, 1)
	require.Len(t, plans, 6)
	assert.Equal(t, "2025-04-07", plans[0].Date) // a Monday
	assert.Equal(t, 1, plans[0].WeekdaySlot)
	assert.Equal(t, "2025-04-14", plans[5].Date) // skips the weekend
	for i, p := range plans {
		d, err := ParseDate(p.Date)
		require.NoError(t, err, fmt.Sprintf("plan %d", i))
		assert.True(t, d.Weekday() >= time.Monday && d.Weekday() <= time.Friday)
	}
}
