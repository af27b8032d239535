package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/polytechlab/attendgate/models"
)

type SubjectStore interface {
	List() ([]models.Subject, error)
	Get(id int) (models.Subject, error)
	// NextID returns max(id)+1, the id a newly created subject takes.
	NextID() (int, error)
	Create(subject *models.Subject) error
	Update(subject *models.Subject) error
	Delete(id int) error
}

type subjectStore struct {
	db *gorm.DB
}

func (s *subjectStore) List() ([]models.Subject, error) {
	var out []models.Subject
	err := s.db.Order("id").Find(&out).Error
	return out, err
}

func (s *subjectStore) Get(id int) (models.Subject, error) {
	var sub models.Subject
	err := s.db.First(&sub, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sub, ErrNotFound
	}
	return sub, err
}

func (s *subjectStore) NextID() (int, error) {
	var max *int
	if err := s.db.Model(&models.Subject{}).Select("max(id)").Scan(&max).Error; err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

func (s *subjectStore) Create(subject *models.Subject) error {
	return s.db.Create(subject).Error
}

func (s *subjectStore) Update(subject *models.Subject) error {
	res := s.db.Model(&models.Subject{}).Where("id = ?", subject.ID).Updates(map[string]any{
		"name":          subject.Name,
		"department_id": subject.DepartmentID,
		"credits":       subject.Credits,
		"shared":        subject.Shared,
		"note":          subject.Note,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *subjectStore) Delete(id int) error {
	res := s.db.Delete(&models.Subject{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
