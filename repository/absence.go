package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/polytechlab/attendgate/models"
)

type AbsenceStore interface {
	// Upsert writes the reason for (student, department, subject, date),
	// replacing any previous category and text.
	Upsert(r *models.AbsenceReason) error
	ForSubject(studentNo, departmentID, subjectID int) ([]models.AbsenceReason, error)
}

type absenceStore struct {
	db *gorm.DB
}

func (s *absenceStore) Upsert(r *models.AbsenceReason) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_no"}, {Name: "department_id"},
			{Name: "subject_id"}, {Name: "date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"category", "other_text", "updated_at"}),
	}).Create(r).Error
}

func (s *absenceStore) ForSubject(studentNo, departmentID, subjectID int) ([]models.AbsenceReason, error) {
	var out []models.AbsenceReason
	err := s.db.
		Where("student_no = ? AND department_id = ? AND subject_id = ?",
			studentNo, departmentID, subjectID).
		Order("date").Find(&out).Error
	return out, err
}
