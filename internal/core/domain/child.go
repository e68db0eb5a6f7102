package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrChildNameEmpty   = errors.New("child name cannot be empty")
	ErrChildNameTooLong = errors.New("child name is too long (max 100 chars)")
	ErrInvalidTheme     = errors.New("invalid theme (must be default, neo-brutalism, or candy)")
)

const (
	ThemeDefault      = "default"
	ThemeNeoBrutalism = "neo-brutalism"
	ThemeCandy        = "candy"
	MaxChildNameLen   = 100
)

type Child struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Theme     string    `json:"theme" db:"theme"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func validateChild(name, theme string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrChildNameEmpty
	}
	if len(trimmed) > MaxChildNameLen {
		return ErrChildNameTooLong
	}

	switch theme {
	case ThemeDefault, ThemeNeoBrutalism, ThemeCandy:
		return nil
	default:
		return ErrInvalidTheme
	}
}

func NewChild(name, theme string) (*Child, error) {
	if theme == "" {
		theme = ThemeDefault
	}

	if err := validateChild(name, theme); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Child{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Theme:     theme,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (c *Child) Update(name, theme string) error {
	if theme == "" {
		theme = c.Theme
	}

	if err := validateChild(name, theme); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Theme = theme
	c.UpdatedAt = time.Now().UTC()

	return nil
}
