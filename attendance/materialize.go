package attendance

import "sort"

// Labels used when a materialized cell has no real subject behind it.
const (
	FreeSlotLabel     = "(free slot)" // subject id 0: the cell is deliberately empty
	UnsetSubjectLabel = "(unset)"     // subject id set but missing from the subject table
)

// PlanDay is one calendar-plan row: a date assigned to a term and a
// weekday slot. Slots 1-5 pick a weekly-timetable column; slot 0 is a
// class day with no timetable and 6+ are non-class days, neither of which
// materializes sessions.
type PlanDay struct {
	Date        string // YYYY-MM-DD, legacy rows may use slashes
	TermID      int
	WeekdaySlot int
	Note        string
}

// TimetableEntry is one weekly-timetable cell.
type TimetableEntry struct {
	Year         int
	DepartmentID int
	TermID       int
	Weekday      int
	PeriodNo     int
	SubjectID    int
	RoomID       int
	Note         string
}

// Override replaces one weekly cell on one date, including replacing it
// with nothing when SubjectID is 0.
type Override struct {
	Date         string // YYYY-MM-DD
	DepartmentID int
	PeriodNo     int
	SubjectID    int
	RoomID       int
	Note         string
}

// OverrideKey addresses an override.
type OverrideKey struct {
	Date         string
	DepartmentID int
	PeriodNo     int
}

// OverrideMap indexes overrides by their natural key.
func OverrideMap(overrides []Override) map[OverrideKey]Override {
	m := make(map[OverrideKey]Override, len(overrides))
	for _, o := range overrides {
		m[OverrideKey{o.Date, o.DepartmentID, o.PeriodNo}] = o
	}
	return m
}

// NameTable resolves subject and room ids to display names.
type NameTable struct {
	Subjects map[int]string
	Rooms    map[int]string
}

// Session is one materialized class meeting.
type Session struct {
	Date         string
	PeriodNo     int
	DepartmentID int
	SubjectID    int
	RoomID       int
	Label        string // subject name, with the room appended when known
	Note         string
}

func sessionLabel(subjectID, roomID int, names NameTable) string {
	var label string
	if subjectID == 0 {
		label = FreeSlotLabel
	} else if name, ok := names.Subjects[subjectID]; ok {
		label = name
	} else {
		label = UnsetSubjectLabel
	}
	if roomID != 0 {
		if room, ok := names.Rooms[roomID]; ok && room != "" {
			label += " (" + room + ")"
		}
	}
	return label
}

// DaySessions materializes one plan day: every weekly cell whose term and
// weekday match the day, with date-specific overrides applied, ordered by
// (period, department). A day whose date cannot be parsed yields nil.
func DaySessions(day PlanDay, weekly []TimetableEntry, overrides map[OverrideKey]Override, names NameTable) []Session {
	d, err := ParseDate(day.Date)
	if err != nil {
		return nil
	}
	date := DateOnly(d)

	var out []Session
	for _, w := range weekly {
		if w.TermID != day.TermID || w.Weekday != day.WeekdaySlot {
			continue
		}
		subjectID, roomID, note := w.SubjectID, w.RoomID, w.Note
		if o, ok := overrides[OverrideKey{date, w.DepartmentID, w.PeriodNo}]; ok {
			subjectID, roomID, note = o.SubjectID, o.RoomID, o.Note
		}
		out = append(out, Session{
			Date:         date,
			PeriodNo:     w.PeriodNo,
			DepartmentID: w.DepartmentID,
			SubjectID:    subjectID,
			RoomID:       roomID,
			Label:        sessionLabel(subjectID, roomID, names),
			Note:         note,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PeriodNo != out[j].PeriodNo {
			return out[i].PeriodNo < out[j].PeriodNo
		}
		return out[i].DepartmentID < out[j].DepartmentID
	})
	return out
}

// MonthSessions materializes every plan day that falls in (year, month),
// keyed by day of month. Plan rows with unparseable dates are skipped.
func MonthSessions(year, month int, plans []PlanDay, weekly []TimetableEntry, overrides []Override, names NameTable) map[int][]Session {
	om := OverrideMap(overrides)
	out := make(map[int][]Session)
	for _, p := range plans {
		d, err := ParseDate(p.Date)
		if err != nil {
			continue
		}
		if d.Year() != year || int(d.Month()) != month {
			continue
		}
		if ss := DaySessions(p, weekly, om, names); len(ss) > 0 {
			out[d.Day()] = append(out[d.Day()], ss...)
		}
	}
	return out
}
