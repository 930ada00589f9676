package category

import (
	"strings"

	"nagoyameshi/internal/pkg/errs"
)

const MaxNameLength = 50

type Category struct {
	id   int64
	name string
}

func NewCategory(name string) (*Category, error) {
	n, err := validateName(name)
	if err != nil {
		return nil, err
	}
	return &Category{name: n}, nil
}

func Reconstruct(id int64, name string) *Category {
	return &Category{id: id, name: name}
}

func (c *Category) Rename(name string) error {
	n, err := validateName(name)
	if err != nil {
		return err
	}
	c.name = n
	return nil
}

func validateName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errs.NewValidationError("name", "category name is required")
	}
	if len([]rune(n)) > MaxNameLength {
		return "", errs.NewValidationError("name", "category name is too long")
	}
	return n, nil
}

func (c *Category) ID() int64    { return c.id }
func (c *Category) Name() string { return c.name }

func (c *Category) SetID(id int64) { c.id = id }

// RegularHoliday is seeded reference data; DayIndex 7 means irregular closing.
type RegularHoliday struct {
	ID       int64  `json:"id"`
	Day      string `json:"day"`
	DayIndex int    `json:"day_index"`
}
