package models

import "time"

// AbsenceReason annotates one absence found in the subject report: at most
// one row per (student, department, subject, date).
type AbsenceReason struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	StudentNo    int    `json:"student_no" gorm:"uniqueIndex:ux_absence_key;not null"`
	DepartmentID int    `json:"department_id" gorm:"uniqueIndex:ux_absence_key;not null"`
	SubjectID    int    `json:"subject_id" gorm:"uniqueIndex:ux_absence_key;not null"`
	Date         string `json:"date" gorm:"uniqueIndex:ux_absence_key;size:10;not null"`
	Category     string `json:"category" gorm:"size:20;not null"` // sick | official | overslept | other
	OtherText    string `json:"other_text" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
