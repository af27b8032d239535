package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/polytechlab/attendgate/attendance"
	"github.com/polytechlab/attendgate/models"
	"github.com/polytechlab/attendgate/repository"
)

// ScheduleHandler serves the calendar plan, the weekly grid, materialized
// monthly/daily schedules and the date-specific overrides.
type ScheduleHandler struct {
	stores *repository.Stores
}

func NewScheduleHandler(st *repository.Stores) *ScheduleHandler {
	return &ScheduleHandler{stores: st}
}

func (h *ScheduleHandler) names() (attendance.NameTable, error) {
	subjects, err := h.stores.Subjects.List()
	if err != nil {
		return attendance.NameTable{}, err
	}
	rooms, err := h.stores.Reference.Rooms()
	if err != nil {
		return attendance.NameTable{}, err
	}
	return nameTableOf(subjects, rooms), nil
}

// GET /schedule/plan
func (h *ScheduleHandler) Plan(c echo.Context) error {
	plans, err := h.stores.Schedule.Plans()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	terms, err := h.stores.Reference.Terms()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	weekdays, err := h.stores.Reference.Weekdays()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	termName := map[int]string{}
	for _, t := range terms {
		termName[t.ID] = t.Name
	}
	weekdayName := map[int]string{}
	for _, w := range weekdays {
		weekdayName[w.ID] = w.Name
	}

	type planRow struct {
		Date        string `json:"date"`
		TermID      int    `json:"term_id"`
		TermName    string `json:"term_name"`
		WeekdaySlot int    `json:"weekday_slot"`
		WeekdayName string `json:"weekday_name"`
		Note        string `json:"note"`
	}
	out := make([]planRow, 0, len(plans))
	for _, p := range plans {
		out = append(out, planRow{
			Date:        p.Date,
			TermID:      p.TermID,
			TermName:    termName[p.TermID],
			WeekdaySlot: p.WeekdaySlot,
			WeekdayName: weekdayName[p.WeekdaySlot],
			Note:        p.Note,
		})
	}
	return c.JSON(http.StatusOK, out)
}

type weeklyCell struct {
	Weekday     int    `json:"weekday"`
	PeriodNo    int    `json:"period_no"`
	SubjectID   int    `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	RoomID      int    `json:"room_id"`
	RoomName    string `json:"room_name"`
	Note        string `json:"note"`
}

// GET /schedule/weekly?year=&department_id=&term=
func (h *ScheduleHandler) Weekly(c echo.Context) error {
	year := atoiOr(c.QueryParam("year"), 0)
	dept := atoiOr(c.QueryParam("department_id"), 0)
	term := atoiOr(c.QueryParam("term"), 0)
	if year == 0 || dept == 0 || term == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	rows, err := h.stores.Schedule.Weekly(year, dept, []int{term})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	periods, err := h.stores.Reference.Periods()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	names, err := h.names()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	cells := make([]weeklyCell, 0, len(rows))
	for _, r := range rows {
		cell := weeklyCell{
			Weekday:   r.Weekday,
			PeriodNo:  r.PeriodNo,
			SubjectID: r.SubjectID,
			RoomID:    r.RoomID,
			Note:      r.Note,
		}
		switch {
		case r.SubjectID == 0:
			cell.SubjectName = attendance.FreeSlotLabel
		default:
			name, ok := names.Subjects[r.SubjectID]
			if !ok {
				name = attendance.UnsetSubjectLabel
			}
			cell.SubjectName = name
		}
		cell.RoomName = names.Rooms[r.RoomID]
		cells = append(cells, cell)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"year":          year,
		"department_id": dept,
		"term":          term,
		"periods":       periods,
		"cells":         cells,
	})
}

func (h *ScheduleHandler) monthSessions(year, month int) (map[int][]attendance.Session, error) {
	plans, err := h.stores.Schedule.Plans()
	if err != nil {
		return nil, err
	}
	weekly, err := h.stores.Schedule.WeeklyAll()
	if err != nil {
		return nil, err
	}
	overrides, err := h.stores.Schedule.OverridesInMonth(year, month)
	if err != nil {
		return nil, err
	}
	names, err := h.names()
	if err != nil {
		return nil, err
	}
	return attendance.MonthSessions(year, month, plansOf(plans), weeklyOf(weekly), overridesOf(overrides), names), nil
}

// GET /schedule/monthly?year=&month=
func (h *ScheduleHandler) Monthly(c echo.Context) error {
	year := atoiOr(c.QueryParam("year"), 0)
	month := atoiOr(c.QueryParam("month"), 0)
	if year == 0 || month < 1 || month > 12 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	days, err := h.monthSessions(year, month)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"year":  year,
		"month": month,
		"days":  days,
	})
}

// GET /schedule/monthly.csv?year=&month=
func (h *ScheduleHandler) MonthlyCSV(c echo.Context) error {
	year := atoiOr(c.QueryParam("year"), 0)
	month := atoiOr(c.QueryParam("month"), 0)
	if year == 0 || month < 1 || month > 12 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	days, err := h.monthSessions(year, month)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	order := make([]int, 0, len(days))
	for d := range days {
		order = append(order, d)
	}
	sort.Ints(order)

	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF")
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"date", "period", "department_id", "subject", "note"})
	for _, d := range order {
		for _, s := range days[d] {
			_ = w.Write([]string{s.Date, strconv.Itoa(s.PeriodNo), strconv.Itoa(s.DepartmentID), s.Label, s.Note})
		}
	}
	w.Flush()

	fname := fmt.Sprintf("schedule_%04d%02d.csv", year, month)
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+fname+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GET /schedule/day?date=&department_id=
func (h *ScheduleHandler) Day(c echo.Context) error {
	date := c.QueryParam("date")
	if _, err := attendance.ParseDate(date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE"})
	}
	dept := atoiOr(c.QueryParam("department_id"), 0)

	plan, err := h.stores.Schedule.PlanOn(date)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusOK, map[string]any{"date": date, "sessions": []attendance.Session{}})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	weekly, err := h.stores.Schedule.WeeklyAll()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	overrides, err := h.stores.Schedule.OverridesOn(date)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	names, err := h.names()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	day := attendance.PlanDay{Date: plan.Date, TermID: plan.TermID, WeekdaySlot: plan.WeekdaySlot, Note: plan.Note}
	sessions := attendance.DaySessions(day, weeklyOf(weekly), attendance.OverrideMap(overridesOf(overrides)), names)
	if dept != 0 {
		filtered := sessions[:0]
		for _, s := range sessions {
			if s.DepartmentID == dept {
				filtered = append(filtered, s)
			}
		}
		sessions = filtered
	}
	if sessions == nil {
		sessions = []attendance.Session{}
	}
	return c.JSON(http.StatusOK, map[string]any{"date": date, "sessions": sessions})
}

type specialReq struct {
	Date         string `json:"date" validate:"required"`
	DepartmentID int    `json:"department_id" validate:"required"`
	PeriodNo     int    `json:"period_no" validate:"required"`
	SubjectID    int    `json:"subject_id"`
	RoomID       int    `json:"room_id"`
	Note         string `json:"note"`
}

// PUT /schedule/special
func (h *ScheduleHandler) UpsertSpecial(c echo.Context) error {
	var req specialReq
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

	row := models.SpecialSchedule{
		Date:         attendance.DateOnly(d),
		DepartmentID: req.DepartmentID,
		PeriodNo:     req.PeriodNo,
		SubjectID:    req.SubjectID,
		RoomID:       req.RoomID,
		Note:         req.Note,
	}
	if err := h.stores.Schedule.UpsertOverride(&row); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, row)
}

// DELETE /schedule/special?date=&department_id=&period_no=
func (h *ScheduleHandler) DeleteSpecial(c echo.Context) error {
	date := c.QueryParam("date")
	dept := atoiOr(c.QueryParam("department_id"), 0)
	period := atoiOr(c.QueryParam("period_no"), 0)
	if date == "" || dept == 0 || period == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}
	err := h.stores.Schedule.DeleteOverride(date, dept, period)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
