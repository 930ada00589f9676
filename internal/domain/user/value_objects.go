package user

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidRole       = errors.New("invalid role")
	ErrPasswordTooWeak   = errors.New("password must be at least 8 characters long")
	ErrInvalidPostalCode = errors.New("postal code must be 7 digits")
	ErrInvalidPhone      = errors.New("phone number must be 10 or 11 digits")
	ErrInvalidBirthday   = errors.New("birthday must be 8 digits (yyyyMMdd)")
)

const MinPasswordLength = 8

var (
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	postalCodeRegex = regexp.MustCompile(`^[0-9]{7}$`)
	phoneRegex      = regexp.MustCompile(`^[0-9]{10,11}$`)
	birthdayRegex   = regexp.MustCompile(`^[0-9]{8}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

// ReconstructEmail trusts a value that was validated before it was stored.
func ReconstructEmail(s string) Email {
	return Email{value: s}
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

func NewPostalCode(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !postalCodeRegex.MatchString(s) {
		return "", ErrInvalidPostalCode
	}
	return s, nil
}

func NewPhoneNumber(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return "", ErrInvalidPhone
	}
	return s, nil
}

// ParseBirthday accepts yyyyMMdd; blank means no birthday.
func ParseBirthday(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if !birthdayRegex.MatchString(s) {
		return nil, ErrInvalidBirthday
	}
	t, err := time.Parse("20060102", s)
	if err != nil {
		return nil, ErrInvalidBirthday
	}
	return &t, nil
}
