package auth

import (
	"context"

	"roomreserve/internal/domain"
)

type CredentialRepository interface {
	GetCredential(ctx context.Context, email string) (*domain.Credential, error)
	CreateCredential(ctx context.Context, cred domain.Credential) error
}

type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
}
