package credential

import (
	"errors"
	"time"
)

var (
	ErrMissingKey = errors.New("api key required")
	ErrUnknownKey = errors.New("unknown api key")
	ErrExpiredKey = errors.New("api key expired")

	ErrEmptyKey  = errors.New("credential key must not be empty")
	ErrEmptyName = errors.New("credential name must not be empty")
)

// Credential is an immutable API key record. The table is loaded once at
// startup and never mutated afterwards, so it is safe to share across
// concurrent requests without locking.
type Credential struct {
	key       string
	name      string
	createdAt time.Time
	expiresAt *time.Time
}

func NewCredential(key, name string, createdAt time.Time, expiresAt *time.Time) (Credential, error) {
	if key == "" {
		return Credential{}, ErrEmptyKey
	}
	if name == "" {
		return Credential{}, ErrEmptyName
	}
	return Credential{
		key:       key,
		name:      name,
		createdAt: createdAt,
		expiresAt: expiresAt,
	}, nil
}

func (c Credential) Key() string {
	return c.key
}

func (c Credential) Name() string {
	return c.name
}

func (c Credential) CreatedAt() time.Time {
	return c.createdAt
}

func (c Credential) ExpiresAt() *time.Time {
	return c.expiresAt
}

// ExpiredAt reports whether the credential is expired at the given instant.
// A nil expiry never expires; expiry is strict (now must be after it).
func (c Credential) ExpiredAt(now time.Time) bool {
	return c.expiresAt != nil && now.After(*c.expiresAt)
}
