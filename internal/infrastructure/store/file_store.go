// Package store persists the credential record on the local filesystem.
// It plays the role the browser's durable key/value storage plays for the
// web client: three keys, written together, erased together.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
)

const (
	dirMode  = 0o700
	fileMode = 0o600
)

// FileStore keeps the credential record as a single JSON file. Writes go
// through a temp file and rename so readers never observe a partial
// record. There are no retries; failures come back as
// *domain.StorageError and the caller degrades to a no-op.
type FileStore struct {
	path string
	log  zerolog.Logger
}

func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

// Save writes the record atomically, as far as the filesystem allows.
func (s *FileStore) Save(cred domain.Credential) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return &domain.StorageError{Op: "save", Cause: err}
	}

	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return &domain.StorageError{Op: "save", Cause: err}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, fileMode); err != nil {
		return &domain.StorageError{Op: "save", Cause: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.StorageError{Op: "save", Cause: err}
	}

	s.log.Debug().Str("path", s.path).Msg("credentials saved")
	return nil
}

// Load returns the stored record only when all three fields are present.
// A missing file is an ordinary absent record; an unreadable or corrupt
// file is reported as a StorageError alongside found=false so callers can
// log it and proceed anonymously.
func (s *FileStore) Load() (domain.Credential, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Credential{}, false, nil
		}
		return domain.Credential{}, false, &domain.StorageError{Op: "load", Cause: err}
	}

	var cred domain.Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return domain.Credential{}, false, &domain.StorageError{Op: "load", Cause: fmt.Errorf("corrupt record: %w", err)}
	}

	if !cred.Complete() {
		// Partial records are never partially trusted.
		return domain.Credential{}, false, nil
	}
	return cred, true, nil
}

// Clear removes the record. Removing an absent record is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return &domain.StorageError{Op: "clear", Cause: err}
	}
	return nil
}
