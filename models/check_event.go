package models

// CheckEvent is one gate scan. Timestamp is stored as text,
// "YYYY-MM-DD HH:MM:SS" (legacy rows may carry fractional seconds or omit
// the seconds); readers parse defensively.
type CheckEvent struct {
	RecordID     uint   `json:"record_id" gorm:"primaryKey"`
	StudentNo    int    `json:"student_no" gorm:"index;not null"`
	StudentName  string `json:"student_name" gorm:"size:32;not null"`
	DepartmentID int    `json:"department_id" gorm:"index;not null"`
	Timestamp    string `json:"timestamp" gorm:"size:26;not null"`
	Direction    string `json:"direction" gorm:"size:10;not null"` // check_in | check_out
	Status       string `json:"status" gorm:"size:20"`             // set on check-in
	ExitKind     string `json:"exit_kind" gorm:"size:20"`          // set on check-out
}
