package models

// Student is keyed by (department, student number): the same number can
// exist in two departments and names a different person in each.
type Student struct {
	DepartmentID int    `json:"department_id" gorm:"primaryKey;autoIncrement:false"`
	StudentNo    int    `json:"student_no" gorm:"primaryKey;autoIncrement:false"`
	Name         string `json:"name" gorm:"size:64;not null"`
	Note         string `json:"note" gorm:"type:text"`
}
