package bootstrap

import (
	"log/slog"

	"order-assembly/internal/domain/credential"
	"order-assembly/internal/pkg/config"

	"go.uber.org/fx"
)

var CredentialModule = fx.Module("credentials",
	fx.Provide(
		NewCredentialRegistry,
	),
)

// NewCredentialRegistry loads the API key table once at startup; the registry
// is read-only for the rest of the process lifetime.
func NewCredentialRegistry(cfg config.Config) (*credential.Registry, error) {
	creds, err := credential.ParseTable([]byte(cfg.Auth.APIKeys))
	if err != nil {
		return nil, err
	}
	registry := credential.NewRegistry(creds)
	slog.Info("credential registry loaded", "credentials", registry.Len())
	return registry, nil
}
