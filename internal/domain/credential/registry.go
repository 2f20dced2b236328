package credential

import (
	"encoding/json"
	"time"

	"order-assembly/internal/pkg/errs"
)

// Registry is the static API key table. Lookup is case-sensitive exact match,
// no normalization.
type Registry struct {
	byKey map[string]Credential
}

func NewRegistry(creds []Credential) *Registry {
	byKey := make(map[string]Credential, len(creds))
	for _, c := range creds {
		byKey[c.Key()] = c
	}
	return &Registry{byKey: byKey}
}

func (r *Registry) Authenticate(providedKey string, now time.Time) (Credential, error) {
	if providedKey == "" {
		return Credential{}, ErrMissingKey
	}
	cred, ok := r.byKey[providedKey]
	if !ok {
		return Credential{}, ErrUnknownKey
	}
	if cred.ExpiredAt(now) {
		return Credential{}, ErrExpiredKey
	}
	return cred, nil
}

func (r *Registry) Len() int {
	return len(r.byKey)
}

type credentialRecord struct {
	Key       string     `json:"key"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// ParseTable decodes the JSON credential table supplied by the credential
// source (AUTH_API_KEYS).
func ParseTable(raw []byte) ([]Credential, error) {
	var records []credentialRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errs.Wrap(err, "failed to decode credential table")
	}
	creds := make([]Credential, 0, len(records))
	for i, rec := range records {
		cred, err := NewCredential(rec.Key, rec.Name, rec.CreatedAt, rec.ExpiresAt)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid credential at index %d", i)
		}
		creds = append(creds, cred)
	}
	return creds, nil
}
