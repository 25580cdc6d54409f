package services

import (
	"context"

	"github.com/SscSPs/atm_backend/internal/dto"
)

// AuthSvcFacade defines card holder authentication
type AuthSvcFacade interface {
	// Authenticate checks a card number and PIN and returns the account they unlock.
	// Unknown cards and wrong PINs both yield apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, cardNumber string, pinCode string) (string, error)

	// Login authenticates and issues a session token.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
