package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polytechlab/attendgate/attendance"
	"github.com/polytechlab/attendgate/config"
	"github.com/polytechlab/attendgate/models"
	"github.com/polytechlab/attendgate/repository"
)

// ----- in-memory fakes -----

type fakeReferenceStore struct {
	periods     []models.Period
	departments []models.Department
	students    []models.Student
}

func (f *fakeReferenceStore) Periods() ([]models.Period, error)   { return f.periods, nil }
func (f *fakeReferenceStore) Weekdays() ([]models.Weekday, error) { return nil, nil }
func (f *fakeReferenceStore) Terms() ([]models.Term, error)       { return nil, nil }
func (f *fakeReferenceStore) Rooms() ([]models.Room, error)       { return nil, nil }
func (f *fakeReferenceStore) Students() ([]models.Student, error) { return f.students, nil }

func (f *fakeReferenceStore) Departments() ([]models.Department, error) {
	return f.departments, nil
}

func (f *fakeReferenceStore) DepartmentByName(name string) (models.Department, error) {
	for _, d := range f.departments {
		if d.Name == name {
			return d, nil
		}
	}
	return models.Department{}, repository.ErrNotFound
}

func (f *fakeReferenceStore) StudentsByDepartment(departmentID int) ([]models.Student, error) {
	var out []models.Student
	for _, s := range f.students {
		if s.DepartmentID == departmentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeReferenceStore) Student(departmentID, studentNo int) (models.Student, error) {
	for _, s := range f.students {
		if s.DepartmentID == departmentID && s.StudentNo == studentNo {
			return s, nil
		}
	}
	return models.Student{}, repository.ErrNotFound
}

type fakeEventStore struct {
	rows   []models.CheckEvent
	nextID uint
}

func (f *fakeEventStore) Insert(ev *models.CheckEvent) error {
	f.nextID++
	ev.RecordID = f.nextID
	f.rows = append(f.rows, *ev)
	return nil
}

func (f *fakeEventStore) LastDirection(studentNo, departmentID int) (string, error) {
	var last *models.CheckEvent
	for i := range f.rows {
		r := &f.rows[i]
		if r.StudentNo != studentNo || r.DepartmentID != departmentID {
			continue
		}
		if last == nil || r.Timestamp > last.Timestamp ||
			(r.Timestamp == last.Timestamp && r.RecordID > last.RecordID) {
			last = r
		}
	}
	if last == nil {
		return "", nil
	}
	return last.Direction, nil
}

func (f *fakeEventStore) Recent(limit int) ([]models.CheckEvent, error) {
	out := append([]models.CheckEvent(nil), f.rows...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp > out[j].Timestamp
		}
		return out[i].RecordID > out[j].RecordID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func datePart(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}

func (f *fakeEventStore) between(studentNo, departmentID int, start, end, direction string) []models.CheckEvent {
	var out []models.CheckEvent
	for _, r := range f.rows {
		if studentNo != 0 && r.StudentNo != studentNo {
			continue
		}
		if r.DepartmentID != departmentID {
			continue
		}
		if direction != "" && r.Direction != direction {
			continue
		}
		d := datePart(r.Timestamp)
		if d < start || d > end {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}

func (f *fakeEventStore) CheckInsBetween(studentNo, departmentID int, start, end string) ([]models.CheckEvent, error) {
	return f.between(studentNo, departmentID, start, end, attendance.DirectionIn), nil
}

func (f *fakeEventStore) DepartmentCheckInsBetween(departmentID int, start, end string) ([]models.CheckEvent, error) {
	return f.between(0, departmentID, start, end, attendance.DirectionIn), nil
}

func (f *fakeEventStore) Between(studentNo, departmentID int, start, end string) ([]models.CheckEvent, error) {
	return f.between(studentNo, departmentID, start, end, ""), nil
}

func (f *fakeEventStore) Filtered(ef repository.EventFilter) ([]models.CheckEvent, error) {
	start, end := ef.Start, ef.End
	if start == "" {
		start = "0000-00-00"
	}
	if end == "" {
		end = "9999-99-99"
	}
	var out []models.CheckEvent
	for _, r := range f.rows {
		if ef.StudentNo != 0 && r.StudentNo != ef.StudentNo {
			continue
		}
		if ef.DepartmentID != 0 && r.DepartmentID != ef.DepartmentID {
			continue
		}
		d := datePart(r.Timestamp)
		if d < start || d > end {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeEventStore) DeleteAll() error {
	f.rows = nil
	return nil
}

// ----- helpers -----

func testStores() (*repository.Stores, *fakeEventStore) {
	events := &fakeEventStore{}
	ref := &fakeReferenceStore{
		periods: []models.Period{
			{ID: 1, StartTime: "08:50:00", EndTime: "10:30:00"},
			{ID: 2, StartTime: "10:35:00", EndTime: "12:15:00"},
			{ID: 3, StartTime: "13:00:00", EndTime: "14:40:00"},
			{ID: 4, StartTime: "14:45:00", EndTime: "16:25:00"},
			{ID: 5, StartTime: "16:40:00", EndTime: "18:20:00"},
		},
		departments: []models.Department{
			{ID: 3, Name: "Electronics"},
		},
		students: []models.Student{
			{DepartmentID: 3, StudentNo: 7, Name: "Sato Yuta"},
		},
	}
	return &repository.Stores{Reference: ref, Events: events}, events
}

func testCheckHandler(st *repository.Stores) *CheckHandler {
	h := NewCheckHandler(st, &config.Config{OnTimeCutoff: "08:50:00", AbsentCutoff: "09:10:00"})
	h.now = func() time.Time {
		return time.Date(2025, 4, 7, 9, 5, 0, 0, time.UTC)
	}
	return h
}

func newJSONRequest(e *echo.Echo, method, path string, body any) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return he.Code
}

// ----- tests -----

func TestCheckCreate(t *testing.T) {
	e := echo.New()
	st, events := testStores()
	h := testCheckHandler(st)

	body := map[string]any{"student_no": 7, "department_id": 3, "ts": "2025-04-07 08:50:00"}
	ctx, rec := newJSONRequest(e, http.MethodPost, "/checks", body)
	require.NoError(t, h.Create(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)

	var ev models.CheckEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, attendance.DirectionIn, ev.Direction)
	assert.Equal(t, string(attendance.StatusPresent), ev.Status)
	assert.Equal(t, "Sato Yuta", ev.StudentName)
	assert.Equal(t, "2025-04-07 08:50:00", ev.Timestamp)
	assert.Len(t, events.rows, 1)
}

func TestCheckCreateLate(t *testing.T) {
	e := echo.New()
	st, _ := testStores()
	h := testCheckHandler(st)

	body := map[string]any{"student_no": 7, "department_id": 3, "ts": "2025-04-07 08:50:01"}
	ctx, rec := newJSONRequest(e, http.MethodPost, "/checks", body)
	require.NoError(t, h.Create(ctx))

	var ev models.CheckEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, string(attendance.StatusLate), ev.Status)
}

func TestCheckCreateAlternatesDirection(t *testing.T) {
	e := echo.New()
	st, _ := testStores()
	h := testCheckHandler(st)

	in := map[string]any{"student_no": 7, "department_id": 3, "ts": "2025-04-07 08:45:00"}
	ctx, _ := newJSONRequest(e, http.MethodPost, "/checks", in)
	require.NoError(t, h.Create(ctx))

	out := map[string]any{"student_no": 7, "department_id": 3, "ts": "2025-04-07 10:00:00"}
	ctx, rec := newJSONRequest(e, http.MethodPost, "/checks", out)
	require.NoError(t, h.Create(ctx))

	var ev models.CheckEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, attendance.DirectionOut, ev.Direction)
	assert.Empty(t, ev.Status)
	// 10:00 is before period 1 ends, so the exit is temporary.
	assert.Equal(t, string(attendance.StatusTemporaryExit), ev.ExitKind)
}

func TestCheckCreateUnknownStudent(t *testing.T) {
	e := echo.New()
	st, _ := testStores()
	h := testCheckHandler(st)

	body := map[string]any{"student_no": 99, "department_id": 3}
	ctx, _ := newJSONRequest(e, http.MethodPost, "/checks", body)
	assert.Equal(t, http.StatusNotFound, httpCode(t, h.Create(ctx)))
}

func TestCheckCreateBadTimestamp(t *testing.T) {
	e := echo.New()
	st, _ := testStores()
	h := testCheckHandler(st)

	body := map[string]any{"student_no": 7, "department_id": 3, "ts": "yesterday"}
	ctx, _ := newJSONRequest(e, http.MethodPost, "/checks", body)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, h.Create(ctx)))
}

func TestCheckCreateMissingFields(t *testing.T) {
	e := echo.New()
	st, _ := testStores()
	h := testCheckHandler(st)

	ctx, _ := newJSONRequest(e, http.MethodPost, "/checks", map[string]any{"student_no": 7})
	assert.Equal(t, http.StatusUnprocessableEntity, httpCode(t, h.Create(ctx)))
}

func TestCheckCreateByName(t *testing.T) {
	e := echo.New()
	st, _ := testStores()
	h := testCheckHandler(st)

	// No timestamp: with now at 09:05 the scan is backdated to one
	// minute before period 1, so it lands on time.
	body := map[string]any{"student_no": 7, "department": "Electronics"}
	ctx, rec := newJSONRequest(e, http.MethodPost, "/api/checks/by-name", body)
	require.NoError(t, h.CreateByName(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)

	var ev models.CheckEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ev))
	assert.Equal(t, 3, ev.DepartmentID)
	assert.Equal(t, "2025-04-07 08:49:00", ev.Timestamp)
	assert.Equal(t, string(attendance.StatusPresent), ev.Status)
}

func TestCheckCreateByNameUnknownDepartment(t *testing.T) {
	e := echo.New()
	st, _ := testStores()
	h := testCheckHandler(st)

	body := map[string]any{"student_no": 7, "department": "Astronomy"}
	ctx, _ := newJSONRequest(e, http.MethodPost, "/api/checks/by-name", body)
	assert.Equal(t, http.StatusNotFound, httpCode(t, h.CreateByName(ctx)))
}

func TestCheckExportCSV(t *testing.T) {
	e := echo.New()
	st, events := testStores()
	h := testCheckHandler(st)

	_ = events.Insert(&models.CheckEvent{
		StudentNo: 7, StudentName: "Sato Yuta", DepartmentID: 3,
		Timestamp: "2025-04-07 08:45:00", Direction: attendance.DirectionIn,
		Status: string(attendance.StatusPresent),
	})

	ctx, rec := newJSONRequest(e, http.MethodGet, "/logs/checks.csv", nil)
	require.NoError(t, h.ExportCSV(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	assert.Contains(t, body, "record_id,student_no,student_name")
	assert.Contains(t, body, "Sato Yuta")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "checks_20250407.csv")
}

func TestCheckReset(t *testing.T) {
	e := echo.New()
	st, events := testStores()
	h := testCheckHandler(st)

	_ = events.Insert(&models.CheckEvent{StudentNo: 7, DepartmentID: 3, Timestamp: "2025-04-07 08:45:00"})
	ctx, rec := newJSONRequest(e, http.MethodDelete, "/admin/checks", nil)
	require.NoError(t, h.Reset(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, events.rows)
}
