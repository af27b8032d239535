package attendance

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// SubjectSummary is one row of the per-subject attendance report.
type SubjectSummary struct {
	SubjectID   int      `json:"subject_id"`
	SubjectName string   `json:"subject_name"`
	Teacher     string   `json:"teacher"`
	Room        string   `json:"room"`
	Present     int      `json:"present"`
	Late        int      `json:"late"`
	Absent      int      `json:"absent"`
	Unmarked    int      `json:"unmarked"`
	Held        int      `json:"held"`
	Required    int      `json:"required"`
	Rate        float64  `json:"rate"`
	AbsentDates []string `json:"absent_dates"`
}

// AggregateInput carries everything the per-student aggregation needs,
// already scoped to one student's department and the terms under report.
type AggregateInput struct {
	Plans   []PlanDay        // calendar-plan rows for the terms
	Weekly  []TimetableEntry // weekly cells for the department and terms
	Periods []Period         // sorted bell schedule
	Names   NameTable
	// CheckIns maps date (YYYY-MM-DD) to that day's check-in clock times
	// in ascending order.
	CheckIns map[string][]TimeOfDay
	Today    string // YYYY-MM-DD; sessions on or after this date are not held yet
}

type weeklyKey struct{ term, weekday, period int }

// classifySession derives one session's status from the day's check-ins:
// the first check-in at or before the period's end decides present vs
// late; none at all is absent for a held session, unmarked otherwise.
func classifySession(held bool, ins []TimeOfDay, p Period) Status {
	first := TimeOfDay(-1)
	for _, t := range ins {
		if t <= p.End {
			first = t
			break
		}
	}
	if first < 0 {
		if held {
			return StatusAbsent
		}
		return StatusUnmarked
	}
	if first <= p.Start {
		return StatusPresent
	}
	return StatusLate
}

// AggregateSubjects folds every scheduled session of the input's terms
// into per-subject counts and a 0-100 attendance rate. Only sessions
// dated strictly before Today count toward the denominator; the rate is
// present/held to one decimal and Required is ceil(held*0.8). Rows are
// ordered by rate descending, then subject name. Plan rows with
// unparseable dates are skipped.
func AggregateSubjects(in AggregateInput) []SubjectSummary {
	wk := make(map[weeklyKey]TimetableEntry, len(in.Weekly))
	for _, w := range in.Weekly {
		wk[weeklyKey{w.TermID, w.Weekday, w.PeriodNo}] = w
	}

	stats := map[int]*SubjectSummary{}
	absent := map[int]map[string]struct{}{}

	for _, p := range in.Plans {
		if p.WeekdaySlot < 1 || p.WeekdaySlot > 5 {
			continue
		}
		d, err := ParseDate(p.Date)
		if err != nil {
			continue
		}
		date := DateOnly(d)
		held := date < in.Today
		ins := in.CheckIns[date]

		for _, per := range in.Periods {
			w, ok := wk[weeklyKey{p.TermID, p.WeekdaySlot, per.No}]
			if !ok || w.SubjectID == 0 {
				continue
			}
			s := stats[w.SubjectID]
			if s == nil {
				name, ok := in.Names.Subjects[w.SubjectID]
				if !ok {
					name = fmt.Sprintf("subject %d", w.SubjectID)
				}
				s = &SubjectSummary{SubjectID: w.SubjectID, SubjectName: name}
				stats[w.SubjectID] = s
				absent[w.SubjectID] = map[string]struct{}{}
			}
			if s.Teacher == "" {
				s.Teacher = strings.TrimSpace(w.Note)
			}
			if s.Room == "" {
				s.Room = in.Names.Rooms[w.RoomID]
			}
			if held {
				s.Held++
			}
			switch classifySession(held, ins, per) {
			case StatusPresent:
				s.Present++
			case StatusLate:
				s.Late++
			case StatusAbsent:
				s.Absent++
				absent[w.SubjectID][date] = struct{}{}
			default:
				s.Unmarked++
			}
		}
	}

	out := make([]SubjectSummary, 0, len(stats))
	for id, s := range stats {
		total := s.Held
		if total < 1 {
			total = 1
		}
		s.Rate = round1(float64(s.Present) / float64(total) * 100)
		s.Required = int(math.Ceil(float64(s.Held) * 0.8))
		dates := make([]string, 0, len(absent[id]))
		for d := range absent[id] {
			dates = append(dates, d)
		}
		sort.Strings(dates)
		s.AbsentDates = dates
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rate != out[j].Rate {
			return out[i].Rate > out[j].Rate
		}
		return out[i].SubjectName < out[j].SubjectName
	})
	return out
}

// AbsentDates lists the held dates on which the student missed the given
// subject entirely.
func AbsentDates(subjectID int, in AggregateInput) []string {
	for _, s := range AggregateSubjects(in) {
		if s.SubjectID == subjectID {
			return s.AbsentDates
		}
	}
	return nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// RosterStudent identifies one student on a subject roster.
type RosterStudent struct {
	StudentNo int
	Name      string
}

// RosterRow is one student's attendance against a single subject.
type RosterRow struct {
	StudentNo   int     `json:"student_no"`
	StudentName string  `json:"student_name"`
	Present     int     `json:"present"`
	Late        int     `json:"late"`
	Absent      int     `json:"absent"`
	Unmarked    int     `json:"unmarked"`
	Held        int     `json:"held"`
	Rate        float64 `json:"rate"`
}

// RosterInput scopes a roster aggregation to one subject and the students
// of its owning department.
type RosterInput struct {
	SubjectID int
	Plans     []PlanDay
	Weekly    []TimetableEntry
	Periods   []Period
	Students  []RosterStudent
	// CheckIns maps student number to date to ascending check-in clocks.
	CheckIns map[int]map[string][]TimeOfDay
	Today    string
}

// AggregateRoster computes every department student's counts against one
// subject's sessions, ordered by student number.
func AggregateRoster(in RosterInput) []RosterRow {
	wk := make(map[weeklyKey]TimetableEntry, len(in.Weekly))
	for _, w := range in.Weekly {
		wk[weeklyKey{w.TermID, w.Weekday, w.PeriodNo}] = w
	}

	// The subject's concrete sessions: (date, period, held).
	type session struct {
		date   string
		period Period
		held   bool
	}
	var sessions []session
	for _, p := range in.Plans {
		d, err := ParseDate(p.Date)
		if err != nil {
			continue
		}
		date := DateOnly(d)
		for _, per := range in.Periods {
			if w, ok := wk[weeklyKey{p.TermID, p.WeekdaySlot, per.No}]; ok && w.SubjectID == in.SubjectID {
				sessions = append(sessions, session{date, per, date < in.Today})
			}
		}
	}

	rows := make([]RosterRow, 0, len(in.Students))
	for _, st := range in.Students {
		row := RosterRow{StudentNo: st.StudentNo, StudentName: st.Name}
		for _, ses := range sessions {
			if ses.held {
				row.Held++
			}
			switch classifySession(ses.held, in.CheckIns[st.StudentNo][ses.date], ses.period) {
			case StatusPresent:
				row.Present++
			case StatusLate:
				row.Late++
			case StatusAbsent:
				row.Absent++
			default:
				row.Unmarked++
			}
		}
		total := row.Held
		if total < 1 {
			total = 1
		}
		row.Rate = round1(float64(row.Present) / float64(total) * 100)
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].StudentNo < rows[j].StudentNo })
	return rows
}

// Event is the slice of a check event the summary fold needs.
type Event struct {
	Timestamp string
	Direction string
	Status    Status
	ExitKind  Status
}

// DayActivity is one day's movement summary: the first check-in with its
// recorded status, and the last check-out.
type DayActivity struct {
	Date        string `json:"date"`
	FirstIn     string `json:"first_in,omitempty"`
	FirstStatus Status `json:"first_status,omitempty"`
	LastOut     string `json:"last_out,omitempty"`
}

// FoldDaily reduces a student's events (ordered timestamp asc, record id
// asc) into per-status totals over check-ins and a per-day first-in /
// last-out list, newest day first. Events with unparseable timestamps are
// skipped.
func FoldDaily(events []Event) (map[Status]int, []DayActivity) {
	totals := map[Status]int{}
	byDate := map[string]*DayActivity{}
	var order []string

	for _, ev := range events {
		t, err := ParseTimestamp(ev.Timestamp)
		if err != nil {
			continue
		}
		date := DateOnly(t)
		day := byDate[date]
		if day == nil {
			day = &DayActivity{Date: date}
			byDate[date] = day
			order = append(order, date)
		}
		switch ev.Direction {
		case DirectionIn:
			if ev.Status != "" {
				totals[ev.Status]++
			}
			if day.FirstIn == "" {
				day.FirstIn = FormatTimestamp(t)
				day.FirstStatus = ev.Status
			}
		case DirectionOut:
			day.LastOut = FormatTimestamp(t)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(order)))
	days := make([]DayActivity, 0, len(order))
	for _, d := range order {
		days = append(days, *byDate[d])
	}
	return totals, days
}
