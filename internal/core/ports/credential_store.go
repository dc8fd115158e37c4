package ports

import "github.com/landmarket/landmarket-cli/internal/core/domain"

// CredentialStore is the durable key/value record that survives process
// restarts: the client-side analog of the browser's local storage.
//
// Save writes all three fields or, from the caller's perspective, none.
// Load returns found=false unless a complete record is present; partial
// records are reported absent, never partially trusted. Implementations do
// not retry; failures are returned as *domain.StorageError and the caller
// degrades to a no-op.
type CredentialStore interface {
	Save(cred domain.Credential) error
	Load() (cred domain.Credential, found bool, err error)
	Clear() error
}
