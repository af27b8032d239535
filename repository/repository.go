// Package repository is the only data-access layer: one store interface
// per entity, each with a single GORM implementation. Handlers receive a
// Stores value; nothing else in the codebase touches *gorm.DB.
package repository

import "gorm.io/gorm"

type Stores struct {
	Reference ReferenceStore
	Subjects  SubjectStore
	Schedule  ScheduleStore
	Events    EventStore
	Absences  AbsenceStore
	Camera    CameraStore
	Users     UserStore
}

func New(db *gorm.DB) *Stores {
	return &Stores{
		Reference: &referenceStore{db: db},
		Subjects:  &subjectStore{db: db},
		Schedule:  &scheduleStore{db: db},
		Events:    &eventStore{db: db},
		Absences:  &absenceStore{db: db},
		Camera:    &cameraStore{db: db},
		Users:     &userStore{db: db},
	}
}
