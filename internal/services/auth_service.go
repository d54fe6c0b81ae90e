package services

import (
	"database/sql"
	"errors"
	"strings"

	"bukuku/internal/domain"
	"bukuku/internal/repos"
	"bukuku/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users *repos.UserRepo
}

func NewAuthService(users *repos.UserRepo) *AuthService {
	return &AuthService{Users: users}
}

// Login verifies credentials and issues an opaque bearer token the frontend
// keeps in localStorage.
func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrBadCreds
	}
	if err != nil {
		// real storage failure, not a credential problem
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", nil, ErrBadCreds
	}
	token := uuid.NewString()
	if err := s.Users.BindToken(token, u.ID); err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// Register creates a USER account and logs it in.
func (s *AuthService) Register(name, email, password string) (string, *domain.User, error) {
	name, ok := validate.Name(name)
	if !ok {
		return "", nil, invalid("invalid name")
	}
	email, ok = validate.Email(email)
	if !ok {
		return "", nil, invalid("invalid email address")
	}
	if !validate.Password(password) {
		return "", nil, invalid("password must be 8-72 characters")
	}
	if _, err := s.Users.ByEmail(email); err == nil {
		return "", nil, invalid("email already registered")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return "", nil, err
	}
	u := &domain.User{
		ID:    "u-" + uuid.NewString(),
		Email: email,
		Name:  name,
		Hash:  string(hash),
		Role:  "USER",
	}
	if err := s.Users.Insert(u); err != nil {
		return "", nil, err
	}
	token := uuid.NewString()
	if err := s.Users.BindToken(token, u.ID); err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *AuthService) Logout(token string) error {
	return s.Users.RevokeToken(token)
}

// CurrentUser resolves a bearer token; nil user when the token is unknown.
func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	u, err := s.Users.TokenUser(token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return u, err
}
