package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/atm_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/atm_backend/internal/core/ports/services"
	"github.com/SscSPs/atm_backend/internal/dto"
	"github.com/SscSPs/atm_backend/internal/platform/config"
	"github.com/SscSPs/atm_backend/internal/utils"
)

// authService checks card credentials and issues session tokens.
type authService struct {
	BaseService
	cfg         *config.Config
	accountRepo portsrepo.AccountReader
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, accountRepo portsrepo.AccountReader) portssvc.AuthSvcFacade {
	return &authService{
		cfg:         cfg,
		accountRepo: accountRepo,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Authenticate(ctx context.Context, cardNumber string, pinCode string) (string, error) {
	credential, err := s.accountRepo.FindCredentialByCardNumber(ctx, cardNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Unknown card number")
			return "", apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up card credential")
		return "", fmt.Errorf("failed to look up card credential: %w", err)
	}

	if !utils.CheckPasswordHash(pinCode, credential.PinHash) {
		s.LogDebug(ctx, "PIN mismatch", slog.String("account_id", credential.AccountID))
		return "", apperrors.ErrUnauthorized
	}
	return credential.AccountID, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	accountID, err := s.Authenticate(ctx, req.CardNumber, req.PinCode)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(accountID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate session token", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	s.LogInfo(ctx, "Card holder logged in", slog.String("account_id", accountID))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
