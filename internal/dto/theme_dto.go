package dto

type ThemeCreateRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

type ThemeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
