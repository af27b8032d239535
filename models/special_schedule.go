package models

// SpecialSchedule overrides one weekly-timetable cell on one date. A row
// fully replaces the weekly cell for (date, department, period), including
// replacing it with nothing when SubjectID is 0.
type SpecialSchedule struct {
	Date         string `json:"date" gorm:"primaryKey;size:10"` // YYYY-MM-DD
	DepartmentID int    `json:"department_id" gorm:"primaryKey;autoIncrement:false"`
	PeriodNo     int    `json:"period_no" gorm:"primaryKey;autoIncrement:false"`
	SubjectID    int    `json:"subject_id"`
	RoomID       int    `json:"room_id"`
	Note         string `json:"note" gorm:"size:50"`
}
