package models

type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID uint   `json:"messageId"`
}
