package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"roomreserve/internal/docstore"
	"roomreserve/internal/domain"
)

// Service mints and verifies the opaque user identities the reservation core
// consumes. A user id is a uuid fixed at registration; everything downstream
// treats it as an opaque string.
type Service struct {
	creds CredentialRepository
	jwt   TokenIssuer
}

func NewService(creds CredentialRepository, jwt TokenIssuer) *Service {
	return &Service{creds: creds, jwt: jwt}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.creds.GetCredential(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cred := domain.Credential{
		UserID:       uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.creds.CreateCredential(ctx, cred); err != nil {
		return nil, err
	}

	return s.issue(cred.UserID)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	cred, err := s.creds.GetCredential(ctx, req.Email)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(cred.UserID)
}

func (s *Service) issue(userID string) (*TokenResponse, error) {
	token, err := s.jwt.GenerateToken(userID)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{UserID: userID, Token: token}, nil
}
