// Package users handles registration, credentials and the admin user CRUD.
package users

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	models "Uno/models/postgres"
	"Uno/services/store"
	"Uno/services/uno"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minNameLength     = 3
	minPasswordLength = 6
)

type Registration struct {
	Name     string `json:"name" binding:"required"`
	Age      int    `json:"age" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Changes holds the fields an update may touch; nil means keep.
type Changes struct {
	Name     *string `json:"name"`
	Age      *int    `json:"age"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type Service struct {
	store store.UserStore
	cost  int
}

func NewService(st store.UserStore) *Service {
	return &Service{store: st, cost: bcrypt.DefaultCost}
}

func validateName(name string) error {
	if len(strings.TrimSpace(name)) < minNameLength {
		return uno.ValidationError("The name must be at least %d characters long", minNameLength)
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return uno.ValidationError("Invalid email")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return uno.ValidationError("The password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

func (s *Service) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *Service) Register(ctx context.Context, r Registration) (*models.User, error) {
	if r.Name == "" || r.Email == "" || r.Password == "" || r.Age == 0 {
		return nil, uno.ValidationError("All fields are required")
	}
	if err := validateName(r.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(r.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(r.Password); err != nil {
		return nil, err
	}
	if r.Age < 0 {
		return nil, uno.ValidationError("Age must be a positive number")
	}

	if existing, err := s.store.FindUserByEmailOrName(ctx, r.Email, r.Name); err == nil {
		if existing.Email == r.Email {
			return nil, uno.ValidationError("Email already registered")
		}
		return nil, uno.ValidationError("Username already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hashed, err := s.hash(r.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:           uuid.NewString(),
		Name:         r.Name,
		Age:          r.Age,
		Email:        r.Email,
		PasswordHash: hashed,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, uno.ValidationError("Email already registered")
		}
		return nil, err
	}
	return user, nil
}

// Authenticate never tells an unknown email from a wrong password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, uno.ValidationError("Email and password are required")
	}
	user, err := s.store.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, uno.NotFoundError("Invalid credentials")
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, uno.NotFoundError("Invalid credentials")
	}
	return user, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.store.FindUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, uno.NotFoundError("Player not found")
	}
	return user, err
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, uno.NotFoundError("No players found")
	}
	return users, nil
}

func (s *Service) Update(ctx context.Context, id string, c Changes) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Name != nil {
		if err := validateName(*c.Name); err != nil {
			return nil, err
		}
		user.Name = *c.Name
	}
	if c.Email != nil {
		if err := validateEmail(*c.Email); err != nil {
			return nil, err
		}
		user.Email = *c.Email
	}
	if c.Age != nil {
		if *c.Age <= 0 {
			return nil, uno.ValidationError("Age must be a positive number")
		}
		user.Age = *c.Age
	}
	if c.Password != nil {
		if err := validatePassword(*c.Password); err != nil {
			return nil, err
		}
		if user.PasswordHash, err = s.hash(*c.Password); err != nil {
			return nil, err
		}
	}

	switch err := s.store.SaveUser(ctx, user); {
	case errors.Is(err, store.ErrDuplicate):
		return nil, uno.ValidationError("Email or username already registered")
	case errors.Is(err, store.ErrNotFound):
		return nil, uno.NotFoundError("Player not found")
	case err != nil:
		return nil, err
	}
	return user, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.store.DeleteUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return uno.NotFoundError("Player not found")
	}
	return err
}
