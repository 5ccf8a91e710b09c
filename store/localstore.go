// Package store persists the two local-only JSON blobs the application
// keeps outside the spreadsheet: the saved session user and the company
// profile. Fixed keys, one file per key, written on every mutation. Nothing
// here ever reaches the remote gateway.
package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	KeyUser        = "user"
	KeyCompanyInfo = "companyInfo"
)

// CompanyInfo is the locally-held company profile shown on letterheads and
// the settings page.
type CompanyInfo struct {
	CompanyName   string `json:"companyName"`
	LicenseNumber string `json:"licenseNumber"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
}

// LocalStore reads and writes JSON blobs under fixed keys in a data
// directory.
type LocalStore struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Get loads the blob under key into v. A missing key leaves v untouched and
// returns ok=false; that is the normal first-run state.
func (s *LocalStore) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, err
	}
	return true, nil
}

// Set writes v as the blob under key, replacing any previous value.
func (s *LocalStore) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

// Delete removes the blob under key. Deleting a missing key is a no-op.
func (s *LocalStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
