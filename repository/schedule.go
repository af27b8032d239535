package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/polytechlab/attendgate/models"
)

// ScheduleStore reads the calendar plan and weekly timetable and manages
// date-specific overrides.
type ScheduleStore interface {
	Plans() ([]models.CalendarPlan, error)
	PlanOn(date string) (models.CalendarPlan, error)
	PlansByTerms(termIDs []int) ([]models.CalendarPlan, error)
	WeeklyAll() ([]models.WeeklyTimetable, error)
	Weekly(year, departmentID int, termIDs []int) ([]models.WeeklyTimetable, error)
	WeeklyByDepartment(departmentID int, termIDs []int) ([]models.WeeklyTimetable, error)
	Overrides() ([]models.SpecialSchedule, error)
	OverridesInMonth(year, month int) ([]models.SpecialSchedule, error)
	OverridesOn(date string) ([]models.SpecialSchedule, error)
	UpsertOverride(o *models.SpecialSchedule) error
	DeleteOverride(date string, departmentID, periodNo int) error
}

type scheduleStore struct {
	db *gorm.DB
}

func (s *scheduleStore) Plans() ([]models.CalendarPlan, error) {
	var out []models.CalendarPlan
	err := s.db.Order("date").Find(&out).Error
	return out, err
}

func (s *scheduleStore) PlanOn(date string) (models.CalendarPlan, error) {
	var p models.CalendarPlan
	err := s.db.Where("date = ?", date).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p, ErrNotFound
	}
	return p, err
}

func (s *scheduleStore) PlansByTerms(termIDs []int) ([]models.CalendarPlan, error) {
	var out []models.CalendarPlan
	err := s.db.Where("term_id IN ?", termIDs).Order("date").Find(&out).Error
	return out, err
}

func (s *scheduleStore) WeeklyAll() ([]models.WeeklyTimetable, error) {
	var out []models.WeeklyTimetable
	err := s.db.Order("weekday, period_no").Find(&out).Error
	return out, err
}

func (s *scheduleStore) Weekly(year, departmentID int, termIDs []int) ([]models.WeeklyTimetable, error) {
	var out []models.WeeklyTimetable
	err := s.db.
		Where("year = ? AND department_id = ? AND term_id IN ?", year, departmentID, termIDs).
		Order("weekday, period_no").Find(&out).Error
	return out, err
}

func (s *scheduleStore) WeeklyByDepartment(departmentID int, termIDs []int) ([]models.WeeklyTimetable, error) {
	var out []models.WeeklyTimetable
	err := s.db.
		Where("department_id = ? AND term_id IN ?", departmentID, termIDs).
		Order("weekday, period_no").Find(&out).Error
	return out, err
}

func (s *scheduleStore) Overrides() ([]models.SpecialSchedule, error) {
	var out []models.SpecialSchedule
	err := s.db.Order("date, department_id, period_no").Find(&out).Error
	return out, err
}

func (s *scheduleStore) OverridesInMonth(year, month int) ([]models.SpecialSchedule, error) {
	var out []models.SpecialSchedule
	prefix := fmt.Sprintf("%04d-%02d", year, month)
	err := s.db.Where("date LIKE ?", prefix+"%").Find(&out).Error
	return out, err
}

func (s *scheduleStore) OverridesOn(date string) ([]models.SpecialSchedule, error) {
	var out []models.SpecialSchedule
	err := s.db.Where("date = ?", date).Find(&out).Error
	return out, err
}

func (s *scheduleStore) UpsertOverride(o *models.SpecialSchedule) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}, {Name: "department_id"}, {Name: "period_no"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"subject_id", "room_id", "note",
		}),
	}).Create(o).Error
}

func (s *scheduleStore) DeleteOverride(date string, departmentID, periodNo int) error {
	res := s.db.Delete(&models.SpecialSchedule{},
		"date = ? AND department_id = ? AND period_no = ?", date, departmentID, periodNo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
