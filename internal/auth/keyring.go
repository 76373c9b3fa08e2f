package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/mkhalil/studenthub/internal/constants"
)

var (
	// ErrNoIdentity is returned when no signed-in user is stored.
	ErrNoIdentity = errors.New("no stored identity")
	// ErrKeyringUnavailable is returned when the OS keyring is not available.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// identityStore persists the signed-in user id between invocations.
type identityStore interface {
	Current() (string, error)
	Set(userID string) error
	Clear() error
}

// keyringStore keeps the identity in the OS keyring.
type keyringStore struct{}

func (keyringStore) Current() (string, error) {
	userID, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNoIdentity
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return userID, nil
}

func (keyringStore) Set(userID string) error {
	if userID == "" {
		return errors.New("user id cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, userID); err != nil {
		return fmt.Errorf("failed to store identity in keyring: %w", err)
	}
	return nil
}

func (keyringStore) Clear() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil && err != keyring.ErrNotFound {
		return fmt.Errorf("failed to delete identity from keyring: %w", err)
	}
	return nil
}

// keyringAvailable checks if the OS keyring can be used. Best effort: a
// not-found read still proves the keyring itself works.
func keyringAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}

// fileStore is the fallback when no OS keyring is available: a plain session
// file in the data directory holding the user id.
type fileStore struct {
	path string
}

func newFileStore(dataDir string) fileStore {
	return fileStore{path: filepath.Join(dataDir, constants.SessionFileName)}
}

func (s fileStore) Current() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoIdentity
		}
		return "", fmt.Errorf("failed to read session file: %w", err)
	}
	userID := strings.TrimSpace(string(data))
	if userID == "" {
		return "", ErrNoIdentity
	}
	return userID, nil
}

func (s fileStore) Set(userID string) error {
	if userID == "" {
		return errors.New("user id cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(userID+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s fileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
