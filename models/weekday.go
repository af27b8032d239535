package models

// Weekday is a slot label for calendar-plan days: 1-5 are Monday-Friday
// class days, 0 is a generic class day, the rest are non-class markers
// (weekend, holiday).
type Weekday struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name" gorm:"size:20;not null"`
	Note string `json:"note" gorm:"size:50"`
}
