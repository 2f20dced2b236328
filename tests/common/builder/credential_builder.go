//go:build unit || e2e

package builder

import (
	"time"

	"order-assembly/internal/domain/credential"
)

type CredentialBuilder struct {
	Key       string
	Name      string
	CreatedAt time.Time
	ExpiresAt *time.Time
}

func NewCredentialBuilder() *CredentialBuilder {
	return &CredentialBuilder{
		Key:       "test-key-123",
		Name:      "test client",
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		ExpiresAt: nil,
	}
}

func (b *CredentialBuilder) WithExpiry(t time.Time) *CredentialBuilder {
	b.ExpiresAt = &t
	return b
}

func (b *CredentialBuilder) BuildDomain() (credential.Credential, error) {
	return credential.NewCredential(b.Key, b.Name, b.CreatedAt, b.ExpiresAt)
}

func (b *CredentialBuilder) BuildRegistry() *credential.Registry {
	cred, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return credential.NewRegistry([]credential.Credential{cred})
}
