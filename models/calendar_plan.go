package models

// CalendarPlan maps each academic date to a term and a weekday slot.
// WeekdaySlot selects the weekly-timetable column; slot 0 is a class day
// with no fixed timetable, 6+ are non-class days.
type CalendarPlan struct {
	Date        string `json:"date" gorm:"primaryKey;size:10"` // YYYY-MM-DD
	TermID      int    `json:"term_id" gorm:"index"`
	WeekdaySlot int    `json:"weekday_slot"`
	Note        string `json:"note" gorm:"size:50"`
}
