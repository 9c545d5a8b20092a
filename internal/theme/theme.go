// Package theme owns the process-wide light/dark preference: how it is
// initialised from the stored value and the client's system preference, and
// the single entry point that changes it.
package theme

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// PreferenceKey is the storage key the persistent stores use.
const PreferenceKey = "theme"

var ErrInvalidTheme = errors.New("invalid theme")

func (t Theme) String() string { return string(t) }

func (t Theme) Valid() bool { return t == Light || t == Dark }

// Toggle flips light and dark. An unset theme toggles to dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse accepts "light" or "dark" in any case.
func Parse(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
	return t, nil
}

// Resolve picks the stored preference, else the system preference, else light.
func Resolve(stored Theme, systemPrefersDark bool) Theme {
	if stored.Valid() {
		return stored
	}
	if systemPrefersDark {
		return Dark
	}
	return Light
}

// PrefersDark reads a Sec-CH-Prefers-Color-Scheme client hint.
func PrefersDark(hint string) bool {
	return strings.EqualFold(strings.Trim(strings.TrimSpace(hint), `"`), "dark")
}

// Store persists the preference. Get returns an empty Theme when nothing has
// been stored yet.
type Store interface {
	Get(ctx context.Context) (Theme, error)
	Set(ctx context.Context, t Theme) error
}
