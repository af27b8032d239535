package models

type Term struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name" gorm:"size:32;not null"`
	Note string `json:"note" gorm:"size:50"`
}
