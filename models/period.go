package models

// Period is one timetable slot (bell schedule row). Times are stored as
// HH:MM or HH:MM:SS strings.
type Period struct {
	ID        int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	StartTime string `json:"start_time" gorm:"size:8;not null"`
	EndTime   string `json:"end_time" gorm:"size:8;not null"`
	Note      string `json:"note" gorm:"size:50"`
}
