package models

type AdminResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Token   string         `json:"token"`
	Admin   *AdminResponse `json:"admin"`
}
