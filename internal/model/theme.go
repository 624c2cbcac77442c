package model

type Theme struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `json:"name" gorm:"size:50;not null;uniqueIndex"`
}
