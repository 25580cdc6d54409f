package dto

import "time"

// LoginRequest carries the card number and PIN typed at the dispenser.
type LoginRequest struct {
	CardNumber string `json:"cardNumber" binding:"required,numeric,min=8,max=19"`
	PinCode    string `json:"pinCode" binding:"required,numeric,min=4,max=12"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
