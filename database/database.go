package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/polytechlab/attendgate/config"
	"github.com/polytechlab/attendgate/models"
)

// Connect opens the database and migrates the schema.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Period{},
		&models.Weekday{},
		&models.Term{},
		&models.Department{},
		&models.Room{},
		&models.Subject{},
		&models.Student{},
		&models.CalendarPlan{},
		&models.WeeklyTimetable{},
		&models.SpecialSchedule{},
		&models.CheckEvent{},
		&models.AbsenceReason{},
		&models.CameraLog{},
		&models.User{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return db, nil
}
