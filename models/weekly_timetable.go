package models

// WeeklyTimetable is the recurring pattern: for (year, department, term,
// weekday, period) which subject meets where. SubjectID 0 leaves the cell
// empty. Note holds the display label for the cell (instructor name).
type WeeklyTimetable struct {
	Year         int    `json:"year" gorm:"primaryKey;autoIncrement:false"`
	DepartmentID int    `json:"department_id" gorm:"primaryKey;autoIncrement:false"`
	TermID       int    `json:"term_id" gorm:"primaryKey;autoIncrement:false"`
	Weekday      int    `json:"weekday" gorm:"primaryKey;autoIncrement:false"`
	PeriodNo     int    `json:"period_no" gorm:"primaryKey;autoIncrement:false"`
	SubjectID    int    `json:"subject_id"`
	RoomID       int    `json:"room_id"`
	Note         string `json:"note" gorm:"size:50"`
}
