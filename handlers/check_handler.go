package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/polytechlab/attendgate/attendance"
	"github.com/polytechlab/attendgate/config"
	"github.com/polytechlab/attendgate/models"
	"github.com/polytechlab/attendgate/repository"
)

// CheckHandler records gate scans and serves the check-event log.
type CheckHandler struct {
	stores   *repository.Stores
	fallback attendance.Cutoffs
	now      func() time.Time
}

func NewCheckHandler(st *repository.Stores, cfg *config.Config) *CheckHandler {
	return &CheckHandler{
		stores:   st,
		fallback: cutoffsFrom(cfg),
		now:      time.Now,
	}
}

func cutoffsFrom(cfg *config.Config) attendance.Cutoffs {
	onTime, err := attendance.ParseTimeOfDay(cfg.OnTimeCutoff)
	if err != nil {
		onTime, _ = attendance.ParseTimeOfDay("08:50:00")
	}
	absent, err := attendance.ParseTimeOfDay(cfg.AbsentCutoff)
	if err != nil {
		absent, _ = attendance.ParseTimeOfDay("09:10:00")
	}
	return attendance.Cutoffs{OnTime: onTime, Absent: absent}
}

func (h *CheckHandler) classifier() (attendance.Classifier, error) {
	rows, err := h.stores.Reference.Periods()
	if err != nil {
		return attendance.Classifier{}, err
	}
	return attendance.Classifier{Periods: periodsOf(rows), Fallback: h.fallback}, nil
}

type checkReq struct {
	StudentNo    int    `json:"student_no" form:"student_no" validate:"required"`
	DepartmentID int    `json:"department_id" form:"department_id" validate:"required"`
	Timestamp    string `json:"ts" form:"ts"`
}

// POST /checks and POST /api/checks
func (h *CheckHandler) Create(c echo.Context) error {
	var req checkReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(err)
	}

	ts := attendance.FormatTimestamp(h.now())
	if req.Timestamp != "" {
		var ok bool
		if ts, ok = attendance.NormalizeTimestamp(req.Timestamp); !ok {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_TIMESTAMP"})
		}
	}
	return h.record(c, req.StudentNo, req.DepartmentID, ts)
}

type checkByNameReq struct {
	StudentNo  int    `json:"student_no" form:"student_no" validate:"required"`
	Department string `json:"department" form:"department" validate:"required"`
	Timestamp  string `json:"ts" form:"ts"`
}

// POST /api/checks/by-name
//
// Device submission: the department arrives by name, and when the device
// sends no timestamp the scan is backdated to one minute before the
// current period's start so it always classifies as present.
func (h *CheckHandler) CreateByName(c echo.Context) error {
	var req checkByNameReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := validate.Struct(&req); err != nil {
		return validationError(err)
	}

	dept, err := h.stores.Reference.DepartmentByName(req.Department)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	var ts string
	if req.Timestamp != "" {
		var ok bool
		if ts, ok = attendance.NormalizeTimestamp(req.Timestamp); !ok {
			return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_TIMESTAMP"})
		}
	} else {
		now := h.now()
		ts = attendance.FormatTimestamp(now)
		if cls, err := h.classifier(); err == nil {
			if p, ok := attendance.ResolvePeriod(cls.Periods, attendance.ClockOf(now)); ok {
				midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
				ts = attendance.FormatTimestamp(midnight.Add(time.Duration(p.Start)*time.Second - time.Minute))
			}
		}
	}
	return h.record(c, req.StudentNo, dept.ID, ts)
}

func (h *CheckHandler) record(c echo.Context, studentNo, departmentID int, ts string) error {
	student, err := h.stores.Reference.Student(departmentID, studentNo)
	if errors.Is(err, repository.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	last, err := h.stores.Events.LastDirection(studentNo, departmentID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	direction := attendance.NextDirection(last)

	cls, err := h.classifier()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	ev := models.CheckEvent{
		StudentNo:    studentNo,
		StudentName:  student.Name,
		DepartmentID: departmentID,
		Timestamp:    ts,
		Direction:    direction,
	}
	if direction == attendance.DirectionIn {
		ev.Status = string(cls.CheckIn(ts))
	} else {
		ev.ExitKind = string(cls.CheckOut(ts))
	}

	if err := h.stores.Events.Insert(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, ev)
}

// GET /logs/checks?limit=
func (h *CheckHandler) Recent(c echo.Context) error {
	limit := clampLimit(atoiOr(c.QueryParam("limit"), 0), 50, 500)
	rows, err := h.stores.Events.Recent(limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /logs/checks.csv?start=&end=&student_no=&department_id=
func (h *CheckHandler) ExportCSV(c echo.Context) error {
	filter := repository.EventFilter{
		Start:        c.QueryParam("start"),
		End:          c.QueryParam("end"),
		StudentNo:    atoiOr(c.QueryParam("student_no"), 0),
		DepartmentID: atoiOr(c.QueryParam("department_id"), 0),
	}
	rows, err := h.stores.Events.Filtered(filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}

	var buf bytes.Buffer
	buf.WriteString("\xEF\xBB\xBF") // BOM so spreadsheets read UTF-8
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"record_id", "student_no", "student_name", "department_id", "timestamp", "direction", "status", "exit_kind"})
	for _, r := range rows {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(r.RecordID), 10),
			strconv.Itoa(r.StudentNo),
			r.StudentName,
			strconv.Itoa(r.DepartmentID),
			r.Timestamp,
			r.Direction,
			r.Status,
			r.ExitKind,
		})
	}
	w.Flush()

	fname := fmt.Sprintf("checks_%s.csv", h.now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+fname+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// DELETE /admin/checks
func (h *CheckHandler) Reset(c echo.Context) error {
	if err := h.stores.Events.DeleteAll(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
