package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"anchormake/internal/domain"
)

const sessionFilename = "session.enc"

// SessionFileStore persists the login data blob under dir. The blob alone is
// enough to rebuild an authenticated client, so it is sealed under the
// user's passphrase rather than written in the clear.
type SessionFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSessionFileStore returns a SessionFileStore rooted at dir.
func NewSessionFileStore(dir string) *SessionFileStore {
	return &SessionFileStore{dir: dir}
}

// SaveLogin seals data under passphrase and writes it atomically.
func (s *SessionFileStore) SaveLogin(passphrase string, data domain.LoginData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	sealed, err := seal(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(s.dir, sessionFilename), sealed, 0o600)
}

// LoadLogin reads and opens the stored blob. A missing file is not an error;
// ok is false then.
func (s *SessionFileStore) LoadLogin(passphrase string) (domain.LoginData, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := os.ReadFile(filepath.Join(s.dir, sessionFilename))
	if errors.Is(err, os.ErrNotExist) {
		return domain.LoginData{}, false, nil
	}
	if err != nil {
		return domain.LoginData{}, false, err
	}
	raw, err := open(passphrase, sealed)
	if err != nil {
		return domain.LoginData{}, false, err
	}
	var data domain.LoginData
	if err := json.Unmarshal(raw, &data); err != nil {
		return domain.LoginData{}, false, err
	}
	return data, true, nil
}

// ClearLogin removes the stored blob if present.
func (s *SessionFileStore) ClearLogin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(filepath.Join(s.dir, sessionFilename))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// writeFileAtomic writes via a temp file then rename.
func writeFileAtomic(path string, b []byte, mode os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Compile-time assertion that SessionFileStore implements domain.SessionStore.
var _ domain.SessionStore = (*SessionFileStore)(nil)
