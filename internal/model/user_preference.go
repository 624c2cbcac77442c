package model

const (
	ThemeModeLight = "Light"
	ThemeModeDark  = "Dark"

	LanguageFrench  = "fr"
	LanguageEnglish = "en"
)

// UserPreference holds per-user UI state (1:1 with users).
type UserPreference struct {
	UserID   uint   `gorm:"primarykey" json:"user_id"`
	Theme    string `json:"theme" gorm:"size:10;not null;default:'Light'"`
	Language string `json:"language" gorm:"size:5;not null;default:'fr'"`
}
