package user

import (
	"strings"
	"time"

	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/pkg/patch"
)

// ProfileInput is the raw form shared by signup and profile edit.
type ProfileInput struct {
	Name        string
	Furigana    string
	PostalCode  string
	Address     string
	PhoneNumber string
	Birthday    string
	Occupation  string
	Email       string
}

type Profile struct {
	Name        string
	Furigana    string
	PostalCode  string
	Address     string
	PhoneNumber string
	Birthday    *time.Time
	Occupation  *string
	Email       Email
}

// NewProfile reports every failing field at once.
func NewProfile(in ProfileInput) (Profile, error) {
	fe := errs.FieldErrors{}
	p := Profile{
		Name:       strings.TrimSpace(in.Name),
		Furigana:   strings.TrimSpace(in.Furigana),
		Address:    strings.TrimSpace(in.Address),
		Occupation: patch.NilIfBlank(in.Occupation),
	}

	if p.Name == "" {
		fe.Add("name", "name is required")
	}
	if p.Furigana == "" {
		fe.Add("furigana", "furigana is required")
	}
	if p.Address == "" {
		fe.Add("address", "address is required")
	}

	var err error
	if p.PostalCode, err = NewPostalCode(in.PostalCode); err != nil {
		fe.Add("postal_code", err.Error())
	}
	if p.PhoneNumber, err = NewPhoneNumber(in.PhoneNumber); err != nil {
		fe.Add("phone_number", err.Error())
	}
	if p.Birthday, err = ParseBirthday(in.Birthday); err != nil {
		fe.Add("birthday", err.Error())
	}
	if p.Email, err = NewEmail(in.Email); err != nil {
		fe.Add("email", err.Error())
	}

	if err := fe.Err(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

type SignupInput struct {
	ProfileInput
	Password             string
	PasswordConfirmation string
}

// ValidateSignup checks the profile and the password pair together.
func ValidateSignup(in SignupInput) (Profile, Password, error) {
	fe := errs.FieldErrors{}

	profile, err := NewProfile(in.ProfileInput)
	if ve, ok := errs.AsValidation(err); ok {
		fe.Merge(ve.Fields)
	}

	pw, pwErr := NewPassword(in.Password)
	if pwErr != nil {
		fe.Add("password", pwErr.Error())
	}
	if strings.TrimSpace(in.PasswordConfirmation) == "" {
		fe.Add("password_confirmation", "password confirmation is required")
	} else if in.Password != in.PasswordConfirmation {
		fe.Add("password", "password and confirmation do not match")
		fe.Add("password_confirmation", "password and confirmation do not match")
	}

	if err := fe.Err(); err != nil {
		return Profile{}, Password{}, err
	}
	return profile, pw, nil
}
