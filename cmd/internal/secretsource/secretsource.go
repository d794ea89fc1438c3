// Package secretsource lazily resolves the gateway's JWT signing secret
// from an environment variable or an interactive terminal prompt.
package secretsource

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Source resolves the JWT HMAC signing secret once and caches it.
type Source struct {
	envVar string

	once  sync.Once
	value string
	err   error
}

// NewSource constructs a Source that checks envVar before prompting.
func NewSource(envVar string) *Source {
	return &Source{envVar: strings.TrimSpace(envVar)}
}

// Get returns the cached secret or resolves it on first call. When envVar
// is set, its exact value is used; otherwise the operator is prompted on
// stderr with input echo disabled.
func (s *Source) Get() (string, error) {
	s.once.Do(func() {
		if s.envVar != "" {
			if value, ok := os.LookupEnv(s.envVar); ok {
				if strings.TrimSpace(value) == "" {
					s.err = fmt.Errorf("%s is set but empty", s.envVar)
					return
				}
				s.value = value
				return
			}
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			if s.envVar != "" {
				s.err = fmt.Errorf("JWT signing secret required; set %s or run interactively", s.envVar)
			} else {
				s.err = errors.New("JWT signing secret required and no terminal available")
			}
			return
		}

		fmt.Fprint(os.Stderr, "Enter JWT signing secret: ")
		bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			s.err = fmt.Errorf("failed to read secret: %w", err)
			return
		}

		secret := string(bytes)
		if strings.TrimSpace(secret) == "" {
			s.err = errors.New("JWT signing secret cannot be empty")
			return
		}

		s.value = secret
	})

	return s.value, s.err
}
