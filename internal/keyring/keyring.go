// Package keyring keeps PostgreSQL connection strings in the OS keyring,
// one entry per named profile.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/fitfinder/internal/constants"
)

var (
	ErrNotFound           = errors.New("credentials not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
	ErrEmptyConnection    = errors.New("connection string cannot be empty")
	ErrInvalidProfile     = errors.New("profile names may only contain letters, digits, '-' and '_'")
)

// Entry addresses one stored connection string.
type Entry struct {
	Service string
	Account string
	Profile string
}

// ForProfile returns the entry for a named profile. The empty profile is
// the default one used by --config keyring.
func ForProfile(profile string) (Entry, error) {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return Entry{Service: constants.AppName, Account: constants.DefaultKeyringUser}, nil
	}
	for _, r := range profile {
		if !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return Entry{}, fmt.Errorf("%w: %q", ErrInvalidProfile, profile)
		}
	}
	return Entry{
		Service: constants.AppName,
		Account: constants.DefaultKeyringUser + ":" + profile,
		Profile: profile,
	}, nil
}

// Name is the profile name for display.
func (e Entry) Name() string {
	if e.Profile == "" {
		return "default"
	}
	return e.Profile
}

func (e Entry) Get() (string, error) {
	connStr, err := keyring.Get(e.Service, e.Account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

func (e Entry) Set(connStr string) error {
	connStr = strings.TrimSpace(connStr)
	if connStr == "" {
		return ErrEmptyConnection
	}
	if err := keyring.Set(e.Service, e.Account, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func (e Entry) Delete() error {
	if err := keyring.Delete(e.Service, e.Account); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// Available checks the keyring with a lookup that is expected to miss.
func Available() bool {
	_, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser+":availability-check")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
