package content

import (
	"strings"
	"time"

	"nagoyameshi/internal/pkg/errs"
)

type Term struct {
	ID        int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ValidateTerm(content string) (string, error) {
	c := strings.TrimSpace(content)
	if c == "" {
		return "", errs.NewValidationError("content", "terms content is required")
	}
	return c, nil
}
