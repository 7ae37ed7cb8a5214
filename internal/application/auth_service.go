package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

type AuthService struct {
	api   ports.AuthAPI
	creds ports.CredentialStore
	local ports.LocalStore
	data  *DataService
	log   zerolog.Logger
}

// SessionEnder is satisfied by SessionWatchdog.
type SessionEnder interface {
	ForceLogout(ctx context.Context, reason domain.LogoutReason)
}

// NewAuthService wires login. data may be nil, in which case no legacy
// migration runs after login.
func NewAuthService(api ports.AuthAPI, creds ports.CredentialStore, local ports.LocalStore, data *DataService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		api:   api,
		creds: creds,
		local: local,
		data:  data,
		log:   logger.With().Str("service", "auth").Logger(),
	}
}

func (s *AuthService) LoginWithPassword(ctx context.Context, email, password string) (domain.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.LoginResult{}, errors.New("email and password are required")
	}

	result, err := s.api.Login(ctx, email, password)
	if err != nil {
		return domain.LoginResult{}, err
	}
	return s.completeLogin(ctx, result)
}

func (s *AuthService) RequestOTP(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}
	return s.api.RequestLoginOTP(ctx, email)
}

func (s *AuthService) VerifyOTP(ctx context.Context, email, otp string) (domain.LoginResult, error) {
	email = strings.TrimSpace(email)
	otp = strings.TrimSpace(otp)
	if email == "" || otp == "" {
		return domain.LoginResult{}, errors.New("email and otp are required")
	}

	result, err := s.api.VerifyLoginOTP(ctx, email, otp)
	if err != nil {
		return domain.LoginResult{}, err
	}
	return s.completeLogin(ctx, result)
}

// Logout ends the session explicitly.
func (s *AuthService) Logout(ctx context.Context, session SessionEnder) {
	session.ForceLogout(ctx, domain.LogoutUser)
}

func (s *AuthService) completeLogin(ctx context.Context, result domain.LoginResult) (domain.LoginResult, error) {
	if strings.TrimSpace(result.Token) == "" {
		return domain.LoginResult{}, fmt.Errorf("login response without token: %w", domain.ErrBadResponse)
	}

	if err := s.creds.SetToken(ctx, result.Token); err != nil {
		return domain.LoginResult{}, fmt.Errorf("store credential: %w", err)
	}

	if err := s.storeProfile(ctx, result.User); err != nil {
		if rollbackErr := s.creds.Clear(ctx); rollbackErr != nil {
			return domain.LoginResult{}, fmt.Errorf("store profile and rollback credential: %w", errors.Join(err, rollbackErr))
		}
		return domain.LoginResult{}, fmt.Errorf("store profile: %w", err)
	}

	s.log.Info().Int("user_id", result.User.ID).Msg("logged in")

	if s.data != nil {
		s.data.MigrateLegacyData(ctx)
	}

	return result, nil
}

func (s *AuthService) storeProfile(ctx context.Context, user domain.User) error {
	if err := s.local.Set(ctx, domain.KeyUserName, user.Name); err != nil {
		return err
	}
	if err := s.local.Set(ctx, domain.KeyUserEmail, user.Email); err != nil {
		return err
	}
	if user.Mobile != nil && *user.Mobile != "" {
		return s.local.Set(ctx, domain.KeyUserMobile, *user.Mobile)
	}
	return s.local.Delete(ctx, domain.KeyUserMobile)
}
