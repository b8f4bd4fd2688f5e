package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"seal/internal/domain"
	"seal/internal/util/memzero"
)

const (
	idFile        = "identity.enc"
	recipientFile = "recipient.json" // public half, shareable without a passphrase
)

// FileStore keeps the local identity on disk: the key pair sealed
// under a passphrase, and the public half in clear for export and
// fingerprinting.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// SaveIdentity seals id under passphrase and writes both files.
func (s *FileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	time, memory, threads := argon2ParamsDefault()
	b, err := seal(passphrase, raw, time, memory, threads)
	if err != nil {
		return err
	}
	if err := writeFile(filepath.Join(s.dir, idFile), b, 0o600); err != nil {
		return err
	}
	return writeJSON(filepath.Join(s.dir, recipientFile), id.Recipient(), 0o644)
}

// LoadIdentity unseals the stored key pair.
func (s *FileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, idFile))
	if errors.Is(err, os.ErrNotExist) {
		return domain.Identity{}, fmt.Errorf("no identity in %s; run keygen first", s.dir)
	}
	if err != nil {
		return domain.Identity{}, err
	}
	raw, err := open(passphrase, b)
	if err != nil {
		return domain.Identity{}, err
	}
	defer memzero.Zero(raw)

	var id domain.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

// LoadRecipient returns the public half without needing the passphrase.
func (s *FileStore) LoadRecipient() (domain.Recipient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r domain.Recipient
	found, err := readJSON(filepath.Join(s.dir, recipientFile), &r)
	if err != nil {
		return domain.Recipient{}, err
	}
	if !found {
		return domain.Recipient{}, fmt.Errorf("no identity in %s; run keygen first", s.dir)
	}
	return r, nil
}

// HasIdentity reports whether a sealed identity exists.
func (s *FileStore) HasIdentity() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(filepath.Join(s.dir, idFile))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ReadRecipient loads a shareable recipient file from an arbitrary
// path, e.g. one produced by the export command.
func ReadRecipient(path string) (domain.Recipient, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Recipient{}, err
	}
	var r domain.Recipient
	if err := json.Unmarshal(b, &r); err != nil {
		return domain.Recipient{}, fmt.Errorf("parse recipient %s: %w", path, err)
	}
	if r.Curve == "" || len(r.Public) == 0 {
		return domain.Recipient{}, fmt.Errorf("recipient %s is missing curve or public key", path)
	}
	return r, nil
}

var _ domain.IdentityStore = (*FileStore)(nil)
