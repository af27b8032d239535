package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/polytechlab/attendgate/models"
)

// ErrNotFound is returned by single-row lookups with no match.
var ErrNotFound = errors.New("not found")

// ReferenceStore reads the master tables the schedule and reports hang
// off: periods, weekdays, terms, departments, rooms and students.
type ReferenceStore interface {
	Periods() ([]models.Period, error)
	Weekdays() ([]models.Weekday, error)
	Terms() ([]models.Term, error)
	Departments() ([]models.Department, error)
	DepartmentByName(name string) (models.Department, error)
	Rooms() ([]models.Room, error)
	Students() ([]models.Student, error)
	StudentsByDepartment(departmentID int) ([]models.Student, error)
	Student(departmentID, studentNo int) (models.Student, error)
}

type referenceStore struct {
	db *gorm.DB
}

func (s *referenceStore) Periods() ([]models.Period, error) {
	var out []models.Period
	err := s.db.Order("id").Find(&out).Error
	return out, err
}

func (s *referenceStore) Weekdays() ([]models.Weekday, error) {
	var out []models.Weekday
	err := s.db.Order("id").Find(&out).Error
	return out, err
}

func (s *referenceStore) Terms() ([]models.Term, error) {
	var out []models.Term
	err := s.db.Order("id").Find(&out).Error
	return out, err
}

func (s *referenceStore) Departments() ([]models.Department, error) {
	var out []models.Department
	err := s.db.Order("id").Find(&out).Error
	return out, err
}

func (s *referenceStore) DepartmentByName(name string) (models.Department, error) {
	var d models.Department
	err := s.db.Where("name = ?", name).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return d, ErrNotFound
	}
	return d, err
}

func (s *referenceStore) Rooms() ([]models.Room, error) {
	var out []models.Room
	err := s.db.Order("id").Find(&out).Error
	return out, err
}

func (s *referenceStore) Students() ([]models.Student, error) {
	var out []models.Student
	err := s.db.Order("department_id, student_no").Find(&out).Error
	return out, err
}

func (s *referenceStore) StudentsByDepartment(departmentID int) ([]models.Student, error) {
	var out []models.Student
	err := s.db.Where("department_id = ?", departmentID).Order("student_no").Find(&out).Error
	return out, err
}

func (s *referenceStore) Student(departmentID, studentNo int) (models.Student, error) {
	var st models.Student
	err := s.db.Where("department_id = ? AND student_no = ?", departmentID, studentNo).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return st, ErrNotFound
	}
	return st, err
}
