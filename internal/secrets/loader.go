// Package secrets resolves credentials such as the API bearer token.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrNotConfigured = errors.New("secret is not configured")

// Source lists the places a secret may come from. The first non-empty one
// wins, in the order File, Env, Value.
type Source struct {
	// Name is used in error messages.
	Name  string
	File  string
	Env   string
	Value string
}

// Load returns the trimmed secret. ErrNotConfigured is returned when no
// place holds a value; a configured but empty file is an error of its own.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from %q: %w", name, file, err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	if env := strings.TrimSpace(src.Env); env != "" {
		if secret := strings.TrimSpace(os.Getenv(env)); secret != "" {
			return secret, nil
		}
	}

	if secret := strings.TrimSpace(src.Value); secret != "" {
		return secret, nil
	}

	return "", fmt.Errorf("%s: %w", name, ErrNotConfigured)
}

// Optional is Load that treats a missing secret as empty.
func Optional(src Source) (string, error) {
	secret, err := Load(src)
	if errors.Is(err, ErrNotConfigured) {
		return "", nil
	}
	return secret, err
}
