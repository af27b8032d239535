package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/polytechlab/attendgate/models"
)

type UserStore interface {
	ByUsername(username string) (models.User, error)
	Create(u *models.User) error
}

type userStore struct {
	db *gorm.DB
}

func (s *userStore) ByUsername(username string) (models.User, error) {
	var u models.User
	err := s.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return u, ErrNotFound
	}
	return u, err
}

func (s *userStore) Create(u *models.User) error {
	return s.db.Create(u).Error
}
