package model

import "time"

type User struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:60;not null"`
	LastName  *string   `json:"last_name,omitempty" gorm:"size:50"`
	FirstName *string   `json:"first_name,omitempty" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`

	Questionnaires []Questionnaire `json:"questionnaires,omitempty" gorm:"foreignKey:UserID"`
	Preference     *UserPreference `json:"preference,omitempty" gorm:"foreignKey:UserID"`
}
