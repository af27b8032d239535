package models

// Subject is a course offered by a department. Note carries free-form
// display text (typically the instructor's name).
type Subject struct {
	ID           int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name         string `json:"name" gorm:"size:64;not null"`
	DepartmentID int    `json:"department_id" gorm:"index;not null"`
	Credits      int    `json:"credits" gorm:"not null"`
	Shared       int    `json:"shared" gorm:"not null;default:0"` // 1 = open to other departments
	Note         string `json:"note" gorm:"size:50"`
}
