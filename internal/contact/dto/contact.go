package dto

type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Company string `json:"company" form:"company"`
	Message string `json:"message" form:"message"`
}

type ContactResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
