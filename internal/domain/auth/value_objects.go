package auth

import (
	"errors"
	"strings"

	"nagoyameshi/internal/domain/user"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

// Credentials only checks shape; the password policy belongs to signup.
type Credentials struct {
	email    user.Email
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, ErrInvalidCredentials
	}
	if strings.TrimSpace(passwordStr) == "" {
		return Credentials{}, ErrInvalidCredentials
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
