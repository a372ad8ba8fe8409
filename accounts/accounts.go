package accounts

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fulldump/firelite/store"
	"github.com/fulldump/firelite/utils"
)

// UsersCollection is the collection name backing this service.
const UsersCollection = "users"

var ErrDuplicateEmail = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is the public projection of a stored user record. The password hash
// never leaves this package.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type userRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Service implements registration and login on top of the users collection.
type Service struct {
	store *store.Store

	// Validate is the field validation policy. Swappable, defaults to
	// ValidateUser.
	Validate func(username, email, password string) error

	// HashCost is the bcrypt work factor. Tunable, not part of the
	// contract. Tests lower it to bcrypt.MinCost.
	HashCost int
}

func NewService(s *store.Store) *Service {
	return &Service{
		store:    s,
		Validate: ValidateUser,
		HashCost: 12,
	}
}

// RegisterUser validates the fields, checks email uniqueness, hashes the
// password and persists the new record. Any failing stage returns its error
// and persists nothing.
func (s *Service) RegisterUser(ctx context.Context, username, email, password string) (*User, error) {

	err := s.Validate(username, email, password)
	if err != nil {
		return nil, err
	}

	users, err := s.store.Collection(UsersCollection)
	if err != nil {
		return nil, err
	}

	// Exact, case-sensitive match
	for _, document := range users.Get() {
		if document["email"] == email {
			return nil, ErrDuplicateEmail
		}
	}

	// CPU bound, by far the slowest stage
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.HashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	record := &userRecord{
		ID:       NewUserID(),
		Username: username,
		Email:    email,
		Password: string(hash),
	}

	document := store.Document{}
	err = utils.Remarshal(record, &document)
	if err != nil {
		return nil, fmt.Errorf("encode user record: %w", err)
	}

	_, err = users.Add(document)
	if err != nil {
		return nil, err
	}

	return &User{
		ID:       record.ID,
		Username: record.Username,
		Email:    record.Email,
	}, nil
}

// LoginUser looks the email up and verifies the password against the stored
// bcrypt hash (constant-time comparison).
func (s *Service) LoginUser(ctx context.Context, email, password string) (*User, error) {

	users, err := s.store.Collection(UsersCollection)
	if err != nil {
		return nil, err
	}

	record := &userRecord{}
	found := false
	for _, document := range users.Get() {
		if document["email"] == email {
			err = utils.Remarshal(document, record)
			if err != nil {
				return nil, fmt.Errorf("decode user record: %w", err)
			}
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUserNotFound
	}

	err = bcrypt.CompareHashAndPassword([]byte(record.Password), []byte(password))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return &User{
		ID:       record.ID,
		Username: record.Username,
		Email:    record.Email,
	}, nil
}
