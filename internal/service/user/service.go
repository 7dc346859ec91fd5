package user

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"userpoint/internal/model"
)

type Store interface {
	Create(user *model.User) error
	Fetch(userID model.UserID) (*model.User, error)
	UpdateStatus(userID model.UserID, status string) error
}

type TokenIssuer interface {
	Issue(userID model.UserID) (string, error)
}

type service struct {
	store  Store
	tokens TokenIssuer
}

func New(store Store, tokens TokenIssuer) *service {
	return &service{
		store:  store,
		tokens: tokens,
	}
}

// Create registers a new user: allocates an identifier, hashes the
// password, stamps the registration time, issues a credential and
// persists the record with the credential attached.
func (s *service) Create(params *model.CreateUserParams) (*model.User, error) {
	userID := model.CreateID()

	passwordBytes, err := bcrypt.GenerateFromPassword([]byte(params.Password), 10)
	if err != nil {
		return nil, fmt.Errorf("generating encoded password: %w", err)
	}

	credential, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	user := &model.User{
		ID:           userID,
		Name:         params.Name,
		Email:        params.Email,
		Password:     string(passwordBytes),
		Address:      params.Address,
		Latitude:     params.Latitude,
		Longitude:    params.Longitude,
		Status:       params.Status,
		RegisteredAt: time.Now().UTC(),
		Token:        credential,
	}

	if err := s.store.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) UpdateStatus(userID model.UserID, newStatus string) (*model.User, error) {
	if err := s.store.UpdateStatus(userID, newStatus); err != nil {
		return nil, err
	}

	user, err := s.store.Fetch(userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) Fetch(userID model.UserID) (*model.User, error) {
	user, err := s.store.Fetch(userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
