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

// AbsenceHandler lists a student's absences against one subject and lets
// staff attach a reason to each absent date.
type AbsenceHandler struct {
	stores *repository.Stores
	today  func() string
}

func NewAbsenceHandler(st *repository.Stores) *AbsenceHandler {
	return &AbsenceHandler{
		stores: st,
		today:  func() string { return attendance.DateOnly(time.Now()) },
	}
}

// absentDates recomputes which held dates of the subject the student
// missed, the same derivation the subject-rate report uses.
func (h *AbsenceHandler) absentDates(studentNo, departmentID, subjectID int, terms []int) ([]string, error) {
	plans, err := h.stores.Schedule.PlansByTerms(terms)
	if err != nil {
		return nil, err
	}
	weekly, err := h.stores.Schedule.WeeklyByDepartment(departmentID, terms)
	if err != nil {
		return nil, err
	}
	periods, err := h.stores.Reference.Periods()
	if err != nil {
		return nil, err
	}

	checkIns := map[string][]attendance.TimeOfDay{}
	if len(plans) > 0 {
		rows, err := h.stores.Events.CheckInsBetween(studentNo, departmentID, plans[0].Date, plans[len(plans)-1].Date)
		if err != nil {
			return nil, err
		}
		checkIns = checkInClocks(rows)
	}

	return attendance.AbsentDates(subjectID, attendance.AggregateInput{
		Plans:    plansOf(plans),
		Weekly:   weeklyOf(weekly),
		Periods:  periodsOf(periods),
		Names:    attendance.NameTable{Subjects: map[int]string{}, Rooms: map[int]string{}},
		CheckIns: checkIns,
		Today:    h.today(),
	}), nil
}

// GET /absences?student_no=&department_id=&subject_id=&term=
func (h *AbsenceHandler) List(c echo.Context) error {
	studentNo := atoiOr(c.QueryParam("student_no"), 0)
	dept := atoiOr(c.QueryParam("department_id"), 0)
	subjectID := atoiOr(c.QueryParam("subject_id"), 0)
	term := atoiOr(c.QueryParam("term"), 0)
	if studentNo == 0 || dept == 0 || subjectID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	student, err := h.stores.Reference.Student(dept, studentNo)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	subject, err := h.stores.Subjects.Get(subjectID)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	dates, err := h.absentDates(studentNo, dept, subjectID, termList(term))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	if dates == nil {
		dates = []string{}
	}
	reasons, err := h.stores.Absences.ForSubject(studentNo, dept, subjectID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"student_no":    studentNo,
		"student_name":  student.Name,
		"department_id": dept,
		"subject_id":    subjectID,
		"subject_name":  subject.Name,
		"term":          term,
		"absent_dates":  dates,
		"reasons":       reasons,
	})
}

type absenceReq struct {
	StudentNo    int    `json:"student_no" validate:"required"`
	DepartmentID int    `json:"department_id" validate:"required"`
	SubjectID    int    `json:"subject_id" validate:"required"`
	Date         string `json:"date" validate:"required"`
	Category     string `json:"category" validate:"required,oneof=sick official overslept other"`
	OtherText    string `json:"other_text"`
	Term         int    `json:"term"`
}

// POST /absences
//
// Only dates the aggregation currently reports as absent can carry a
// reason; anything else is rejected rather than silently stored.
func (h *AbsenceHandler) Save(c echo.Context) error {
	var req absenceReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(err)
	}
	d, err := attendance.ParseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	date := attendance.DateOnly(d)

	dates, err := h.absentDates(req.StudentNo, req.DepartmentID, req.SubjectID, termList(req.Term))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	found := false
	for _, ad := range dates {
		if ad == date {
			found = true
			break
		}
	}
	if !found {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "NOT_AN_ABSENT_DATE"})
	}

	other := ""
	if req.Category == "other" {
		other = req.OtherText
	}
	row := models.AbsenceReason{
		StudentNo:    req.StudentNo,
		DepartmentID: req.DepartmentID,
		SubjectID:    req.SubjectID,
		Date:         date,
		Category:     req.Category,
		OtherText:    other,
	}
	if err := h.stores.Absences.Upsert(&row); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, row)
}
