package dto

type UserResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token,omitempty"`
}
