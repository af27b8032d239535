package models

type Room struct {
	ID       int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name     string `json:"name" gorm:"size:64;not null"`
	Capacity int    `json:"capacity" gorm:"not null"`
	Note     string `json:"note" gorm:"size:50"`
}
