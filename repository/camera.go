package repository

import (
	"gorm.io/gorm"

	"github.com/polytechlab/attendgate/models"
)

type CameraStore interface {
	Insert(l *models.CameraLog) error
	Recent(limit int) ([]models.CameraLog, error)
	DeleteAll() error
}

type cameraStore struct {
	db *gorm.DB
}

func (s *cameraStore) Insert(l *models.CameraLog) error {
	return s.db.Create(l).Error
}

func (s *cameraStore) Recent(limit int) ([]models.CameraLog, error) {
	var out []models.CameraLog
	err := s.db.Order("recorded_at DESC, id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (s *cameraStore) DeleteAll() error {
	return s.db.Exec("DELETE FROM camera_logs").Error
}
