package repository

import (
	"context"
	"errors"
	"strings"

	"roomreserve/internal/docstore"
	"roomreserve/internal/domain"
)

const (
	usersCollection       = "users"
	credentialsCollection = "credentials"
)

type UserRepository struct {
	store *docstore.Store
}

func NewUserRepository(store *docstore.Store) *UserRepository {
	return &UserRepository{store: store}
}

// GetOrCreate returns the user's profile, creating a placeholder one on
// first access.
func (r *UserRepository) GetOrCreate(ctx context.Context, userID string) (*domain.User, error) {
	doc := r.store.Collection(usersCollection).Doc(userID)

	var user domain.User
	err := doc.Get(ctx, &user)
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return nil, err
	}

	user = domain.User{Name: "John Doe", AddressList: []string{}}
	if err := doc.Set(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) credentialDoc(email string) docstore.Doc {
	key := strings.ToLower(strings.TrimSpace(email))
	return r.store.Collection(credentialsCollection).Doc(key)
}

func (r *UserRepository) GetCredential(ctx context.Context, email string) (*domain.Credential, error) {
	var cred domain.Credential
	if err := r.credentialDoc(email).Get(ctx, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *UserRepository) CreateCredential(ctx context.Context, cred domain.Credential) error {
	return r.credentialDoc(cred.Email).Set(ctx, cred)
}
