package repository

import (
	"gorm.io/gorm"

	"github.com/polytechlab/attendgate/attendance"
	"github.com/polytechlab/attendgate/models"
)

// EventFilter narrows check-event range reads. Zero values mean "any";
// Start/End are inclusive YYYY-MM-DD dates matched against the date part
// of the stored timestamp.
type EventFilter struct {
	Start        string
	End          string
	StudentNo    int
	DepartmentID int
}

// EventStore appends and reads the check-event log. The log is
// append-only; the only delete is the admin full reset.
type EventStore interface {
	Insert(ev *models.CheckEvent) error
	// LastDirection returns the student's most recent scan direction,
	// by (timestamp desc, record_id desc), or "" with no rows.
	LastDirection(studentNo, departmentID int) (string, error)
	Recent(limit int) ([]models.CheckEvent, error)
	// CheckInsBetween returns the student's check-ins over an inclusive
	// date range, ordered timestamp ascending.
	CheckInsBetween(studentNo, departmentID int, start, end string) ([]models.CheckEvent, error)
	// DepartmentCheckInsBetween is the roster variant: every student of
	// the department at once.
	DepartmentCheckInsBetween(departmentID int, start, end string) ([]models.CheckEvent, error)
	// Between returns all of a student's events in a date range, ordered
	// (timestamp asc, record_id asc).
	Between(studentNo, departmentID int, start, end string) ([]models.CheckEvent, error)
	// Filtered is the export read: same ordering, optional filters.
	Filtered(f EventFilter) ([]models.CheckEvent, error)
	DeleteAll() error
}

type eventStore struct {
	db *gorm.DB
}

func (s *eventStore) Insert(ev *models.CheckEvent) error {
	return s.db.Create(ev).Error
}

func (s *eventStore) LastDirection(studentNo, departmentID int) (string, error) {
	var ev models.CheckEvent
	err := s.db.
		Where("student_no = ? AND department_id = ?", studentNo, departmentID).
		Order("timestamp DESC, record_id DESC").
		Limit(1).Find(&ev).Error
	if err != nil {
		return "", err
	}
	return ev.Direction, nil
}

func (s *eventStore) Recent(limit int) ([]models.CheckEvent, error) {
	var out []models.CheckEvent
	err := s.db.Order("timestamp DESC, record_id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (s *eventStore) CheckInsBetween(studentNo, departmentID int, start, end string) ([]models.CheckEvent, error) {
	var out []models.CheckEvent
	err := s.db.
		Where("student_no = ? AND department_id = ? AND direction = ?",
			studentNo, departmentID, attendance.DirectionIn).
		Where("substr(timestamp, 1, 10) BETWEEN ? AND ?", start, end).
		Order("timestamp ASC").
		Find(&out).Error
	return out, err
}

func (s *eventStore) DepartmentCheckInsBetween(departmentID int, start, end string) ([]models.CheckEvent, error) {
	var out []models.CheckEvent
	err := s.db.
		Where("department_id = ? AND direction = ?", departmentID, attendance.DirectionIn).
		Where("substr(timestamp, 1, 10) BETWEEN ? AND ?", start, end).
		Order("timestamp ASC").
		Find(&out).Error
	return out, err
}

func (s *eventStore) Between(studentNo, departmentID int, start, end string) ([]models.CheckEvent, error) {
	var out []models.CheckEvent
	err := s.db.
		Where("student_no = ? AND department_id = ?", studentNo, departmentID).
		Where("substr(timestamp, 1, 10) BETWEEN ? AND ?", start, end).
		Order("timestamp ASC, record_id ASC").
		Find(&out).Error
	return out, err
}

func (s *eventStore) Filtered(f EventFilter) ([]models.CheckEvent, error) {
	q := s.db.Model(&models.CheckEvent{})
	if f.Start != "" {
		q = q.Where("substr(timestamp, 1, 10) >= ?", f.Start)
	}
	if f.End != "" {
		q = q.Where("substr(timestamp, 1, 10) <= ?", f.End)
	}
	if f.StudentNo != 0 {
		q = q.Where("student_no = ?", f.StudentNo)
	}
	if f.DepartmentID != 0 {
		q = q.Where("department_id = ?", f.DepartmentID)
	}
	var out []models.CheckEvent
	err := q.Order("timestamp ASC, record_id ASC").Find(&out).Error
	return out, err
}

func (s *eventStore) DeleteAll() error {
	return s.db.Exec("DELETE FROM check_events").Error
}
