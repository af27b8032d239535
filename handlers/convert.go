package handlers

import (
	"github.com/polytechlab/attendgate/attendance"
	"github.com/polytechlab/attendgate/models"
)

// The converters below lift stored rows into the typed inputs the
// attendance package works on. Rows that cannot be parsed are dropped
// here so a bad legacy row never breaks a whole report.

func periodsOf(rows []models.Period) []attendance.Period {
	out := make([]attendance.Period, 0, len(rows))
	for _, r := range rows {
		start, err := attendance.ParseTimeOfDay(r.StartTime)
		if err != nil {
			continue
		}
		end, err := attendance.ParseTimeOfDay(r.EndTime)
		if err != nil {
			continue
		}
		out = append(out, attendance.Period{No: r.ID, Start: start, End: end, Note: r.Note})
	}
	attendance.SortPeriods(out)
	return out
}

func plansOf(rows []models.CalendarPlan) []attendance.PlanDay {
	out := make([]attendance.PlanDay, 0, len(rows))
	for _, r := range rows {
		out = append(out, attendance.PlanDay{
			Date:        r.Date,
			TermID:      r.TermID,
			WeekdaySlot: r.WeekdaySlot,
			Note:        r.Note,
		})
	}
	return out
}

func weeklyOf(rows []models.WeeklyTimetable) []attendance.TimetableEntry {
	out := make([]attendance.TimetableEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, attendance.TimetableEntry{
			Year:         r.Year,
			DepartmentID: r.DepartmentID,
			TermID:       r.TermID,
			Weekday:      r.Weekday,
			PeriodNo:     r.PeriodNo,
			SubjectID:    r.SubjectID,
			RoomID:       r.RoomID,
			Note:         r.Note,
		})
	}
	return out
}

func overridesOf(rows []models.SpecialSchedule) []attendance.Override {
	out := make([]attendance.Override, 0, len(rows))
	for _, r := range rows {
		out = append(out, attendance.Override{
			Date:         r.Date,
			DepartmentID: r.DepartmentID,
			PeriodNo:     r.PeriodNo,
			SubjectID:    r.SubjectID,
			RoomID:       r.RoomID,
			Note:         r.Note,
		})
	}
	return out
}

func nameTableOf(subjects []models.Subject, rooms []models.Room) attendance.NameTable {
	nt := attendance.NameTable{
		Subjects: make(map[int]string, len(subjects)),
		Rooms:    make(map[int]string, len(rooms)),
	}
	for _, s := range subjects {
		nt.Subjects[s.ID] = s.Name
	}
	for _, r := range rooms {
		nt.Rooms[r.ID] = r.Name
	}
	return nt
}

func eventsOf(rows []models.CheckEvent) []attendance.Event {
	out := make([]attendance.Event, 0, len(rows))
	for _, r := range rows {
		out = append(out, attendance.Event{
			Timestamp: r.Timestamp,
			Direction: r.Direction,
			Status:    attendance.Status(r.Status),
			ExitKind:  attendance.Status(r.ExitKind),
		})
	}
	return out
}

// checkInClocks folds a student's check-in rows into date -> ascending
// clock times, skipping rows whose timestamps cannot be parsed.
func checkInClocks(rows []models.CheckEvent) map[string][]attendance.TimeOfDay {
	out := map[string][]attendance.TimeOfDay{}
	for _, r := range rows {
		t, err := attendance.ParseTimestamp(r.Timestamp)
		if err != nil {
			continue
		}
		date := attendance.DateOnly(t)
		out[date] = append(out[date], attendance.ClockOf(t))
	}
	return out
}

// checkInClocksByStudent is the roster variant of checkInClocks.
func checkInClocksByStudent(rows []models.CheckEvent) map[int]map[string][]attendance.TimeOfDay {
	out := map[int]map[string][]attendance.TimeOfDay{}
	for _, r := range rows {
		t, err := attendance.ParseTimestamp(r.Timestamp)
		if err != nil {
			continue
		}
		date := attendance.DateOnly(t)
		if out[r.StudentNo] == nil {
			out[r.StudentNo] = map[string][]attendance.TimeOfDay{}
		}
		out[r.StudentNo][date] = append(out[r.StudentNo][date], attendance.ClockOf(t))
	}
	return out
}
