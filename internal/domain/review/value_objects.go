package review

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const MaxContentLength = 300

var (
	ErrInvalidScore   = errors.New("score must be between 1 and 5")
	ErrEmptyContent   = errors.New("content cannot be empty")
	ErrContentTooLong = errors.New("content must be 300 characters or fewer")
)

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < 1 || v > 5 {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() int { return s.value }

type Content struct {
	text string
}

// NewContent counts characters, not bytes.
func NewContent(s string) (Content, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Content{}, ErrEmptyContent
	}
	if utf8.RuneCountInString(t) > MaxContentLength {
		return Content{}, ErrContentTooLong
	}
	return Content{text: t}, nil
}

func (c Content) String() string { return c.text }
