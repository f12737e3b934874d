package models

// ContactMessage is the contact form payload. Validation rules mirror the
// form fields; nothing is persisted, accepted messages are only logged.
type ContactMessage struct {
	Name    string `json:"name" validate:"required|minLen:2|maxLen:100"`
	Email   string `json:"email" validate:"required|email"`
	Subject string `json:"subject" validate:"maxLen:200"`
	Message string `json:"message" validate:"required|minLen:10|maxLen:5000"`
}

// ContactReceipt acknowledges an accepted message.
type ContactReceipt struct {
	ID string `json:"id"`
}
