package dto

type UpdateProfileRequest struct {
	FullName string `json:"fullname"`
	Email    string `json:"email" binding:"omitempty,email"`
}
