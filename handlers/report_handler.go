package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/polytechlab/attendgate/attendance"
	"github.com/polytechlab/attendgate/models"
	"github.com/polytechlab/attendgate/repository"
)

// ReportHandler serves the attendance reports: per-student subject rates,
// per-subject rosters and the movement summary.
type ReportHandler struct {
	stores *repository.Stores
	today  func() string
}

func NewReportHandler(st *repository.Stores) *ReportHandler {
	return &ReportHandler{
		stores: st,
		today:  func() string { return attendance.DateOnly(time.Now()) },
	}
}

// planRange returns the inclusive date span covered by the plan rows,
// which arrive ordered by date. ok is false when there are none.
func planRange(plans []models.CalendarPlan) (start, end string, ok bool) {
	if len(plans) == 0 {
		return "", "", false
	}
	return plans[0].Date, plans[len(plans)-1].Date, true
}

func (h *ReportHandler) aggregateInput(studentNo, departmentID int, terms []int) (attendance.AggregateInput, error) {
	plans, err := h.stores.Schedule.PlansByTerms(terms)
	if err != nil {
		return attendance.AggregateInput{}, err
	}
	weekly, err := h.stores.Schedule.WeeklyByDepartment(departmentID, terms)
	if err != nil {
		return attendance.AggregateInput{}, err
	}
	periods, err := h.stores.Reference.Periods()
	if err != nil {
		return attendance.AggregateInput{}, err
	}
	subjects, err := h.stores.Subjects.List()
	if err != nil {
		return attendance.AggregateInput{}, err
	}
	rooms, err := h.stores.Reference.Rooms()
	if err != nil {
		return attendance.AggregateInput{}, err
	}

	checkIns := map[string][]attendance.TimeOfDay{}
	if start, end, ok := planRange(plans); ok {
		rows, err := h.stores.Events.CheckInsBetween(studentNo, departmentID, start, end)
		if err != nil {
			return attendance.AggregateInput{}, err
		}
		checkIns = checkInClocks(rows)
	}

	return attendance.AggregateInput{
		Plans:    plansOf(plans),
		Weekly:   weeklyOf(weekly),
		Periods:  periodsOf(periods),
		Names:    nameTableOf(subjects, rooms),
		CheckIns: checkIns,
		Today:    h.today(),
	}, nil
}

// GET /reports/subject-rates?student_no=&department_id=&term=
func (h *ReportHandler) SubjectRates(c echo.Context) error {
	studentNo := atoiOr(c.QueryParam("student_no"), 0)
	dept := atoiOr(c.QueryParam("department_id"), 0)
	term := atoiOr(c.QueryParam("term"), 0)
	if studentNo == 0 || dept == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	student, err := h.stores.Reference.Student(dept, studentNo)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	in, err := h.aggregateInput(studentNo, dept, termList(term))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"student_no":    studentNo,
		"student_name":  student.Name,
		"department_id": dept,
		"term":          term,
		"rows":          attendance.AggregateSubjects(in),
	})
}

// GET /reports/subject-roster?subject_id=&term=
func (h *ReportHandler) SubjectRoster(c echo.Context) error {
	subjectID := atoiOr(c.QueryParam("subject_id"), 0)
	term := atoiOr(c.QueryParam("term"), 0)
	if subjectID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	subject, err := h.stores.Subjects.Get(subjectID)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	terms := termList(term)
	plans, err := h.stores.Schedule.PlansByTerms(terms)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	weekly, err := h.stores.Schedule.WeeklyByDepartment(subject.DepartmentID, terms)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	periods, err := h.stores.Reference.Periods()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	students, err := h.stores.Reference.StudentsByDepartment(subject.DepartmentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	checkIns := map[int]map[string][]attendance.TimeOfDay{}
	if start, end, ok := planRange(plans); ok {
		rows, err := h.stores.Events.DepartmentCheckInsBetween(subject.DepartmentID, start, end)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}
		checkIns = checkInClocksByStudent(rows)
	}

	roster := make([]attendance.RosterStudent, 0, len(students))
	for _, s := range students {
		roster = append(roster, attendance.RosterStudent{StudentNo: s.StudentNo, Name: s.Name})
	}

	rows := attendance.AggregateRoster(attendance.RosterInput{
		SubjectID: subjectID,
		Plans:     plansOf(plans),
		Weekly:    weeklyOf(weekly),
		Periods:   periodsOf(periods),
		Students:  roster,
		CheckIns:  checkIns,
		Today:     h.today(),
	})

	return c.JSON(http.StatusOK, map[string]any{
		"subject_id":    subjectID,
		"subject_name":  subject.Name,
		"department_id": subject.DepartmentID,
		"term":          term,
		"rows":          rows,
	})
}

// GET /reports/summary?student_no=&department_id=&start=&end=
func (h *ReportHandler) Summary(c echo.Context) error {
	studentNo := atoiOr(c.QueryParam("student_no"), 0)
	dept := atoiOr(c.QueryParam("department_id"), 0)
	if studentNo == 0 || dept == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	today := h.today()
	start := c.QueryParam("start")
	end := c.QueryParam("end")
	if start == "" {
		start = today[:8] + "01" // first of the current month
	}
	if end == "" {
		end = today
	}

	student, err := h.stores.Reference.Student(dept, studentNo)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	rows, err := h.stores.Events.Between(studentNo, dept, start, end)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	totals, days := attendance.FoldDaily(eventsOf(rows))

	return c.JSON(http.StatusOK, map[string]any{
		"student_no":    studentNo,
		"student_name":  student.Name,
		"department_id": dept,
		"start":         start,
		"end":           end,
		"totals":        totals,
		"days":          days,
	})
}
