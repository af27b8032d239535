package models

type Department struct {
	ID   int    `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name string `json:"name" gorm:"size:32"`
	Note string `json:"note" gorm:"size:50"`
}
