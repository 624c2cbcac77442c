package dto

type PreferenceResponse struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}
