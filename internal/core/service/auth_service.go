package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/identora/account-system/internal/core/domain"
	"github.com/identora/account-system/internal/core/ports"
	"github.com/identora/account-system/internal/core/repository"
	"github.com/identora/account-system/internal/metrics"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
)

// TokenPair bundles the two tokens issued on login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService issues signed access and refresh tokens for accounts and
// verifies credentials on login. Signing itself is delegated to the
// TokenSigner collaborator; this service only decides which claims,
// subject, audience, issuer, and expiry are used.
type AuthService struct {
	accounts   *repository.Accounts
	hasher     ports.PasswordHasher
	signer     ports.TokenSigner
	hostname   string
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(
	accounts *repository.Accounts,
	hasher ports.PasswordHasher,
	signer ports.TokenSigner,
	hostname string,
	accessTTL, refreshTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &AuthService{
		accounts:   accounts,
		hasher:     hasher,
		signer:     signer,
		hostname:   hostname,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		log:        log,
	}
}

// AccessToken signs a short-lived token for the account.
func (s *AuthService) AccessToken(account *domain.Account) (string, error) {
	return s.token(account, s.accessTTL, "access")
}

// RefreshToken signs a long-lived token for the account.
func (s *AuthService) RefreshToken(account *domain.Account) (string, error) {
	return s.token(account, s.refreshTTL, "refresh")
}

func (s *AuthService) token(account *domain.Account, ttl time.Duration, kind string) (string, error) {
	claims := map[string]any{
		"email":    account.Email(),
		"role":     string(account.Role()),
		"issuedAt": time.Now().Unix(),
	}
	signed, err := s.signer.Sign(claims, ports.SignOptions{
		Subject:   account.UID(),
		ExpiresIn: ttl,
		Audience:  s.hostname,
		Issuer:    s.hostname,
	})
	if err != nil {
		return "", err
	}
	metrics.TokensIssuedTotal.WithLabelValues(kind).Inc()
	return signed, nil
}

// Login verifies the credential and issues a token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*TokenPair, *domain.Account, error) {
	account, found, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if !found || !s.hasher.Verify(account.Password(), password) {
		return nil, nil, domain.NewInvalidCredential()
	}

	access, err := s.AccessToken(account)
	if err != nil {
		return nil, nil, err
	}
	refresh, err := s.RefreshToken(account)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("uid", account.UID()).Msg("login succeeded")
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, account, nil
}
