package content

import (
	"strings"

	"nagoyameshi/internal/pkg/errs"
)

// Company is the operator profile shown on the public company page.
type Company struct {
	ID                int64
	Name              string
	PostalCode        string
	Address           string
	Representative    string
	EstablishmentDate string
	Capital           string
	Business          string
	NumberOfEmployees string
}

// Normalize trims every field and requires all of them.
func (c Company) Normalize() (Company, error) {
	fields := []struct {
		key string
		val *string
	}{
		{"name", &c.Name},
		{"postal_code", &c.PostalCode},
		{"address", &c.Address},
		{"representative", &c.Representative},
		{"establishment_date", &c.EstablishmentDate},
		{"capital", &c.Capital},
		{"business", &c.Business},
		{"number_of_employees", &c.NumberOfEmployees},
	}

	fe := errs.FieldErrors{}
	for _, f := range fields {
		*f.val = strings.TrimSpace(*f.val)
		if *f.val == "" {
			fe.Add(f.key, f.key+" is required")
		}
	}
	if err := fe.Err(); err != nil {
		return Company{}, err
	}
	return c, nil
}
