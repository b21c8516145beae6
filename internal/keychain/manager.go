// Copyright (c) 2025 Discover Trail Races
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain stores the Airtable personal access token in the OS
// credential store so operators do not have to export it in every shell.
//
// The environment always wins: config.ResolveCredentials only consults the
// keychain when AIRTABLE_TOKEN is unset. On macOS the native `security`
// command is preferred; elsewhere the 99designs/keyring backends are used.
package keychain

import (
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// ErrNotFound is returned when no token has been stored.
var ErrNotFound = errors.New("keychain: item not found")

// Global keychain manager instance
var (
	globalManager *Manager
	mu            sync.Mutex
)

// Manager provides thread-safe access to the stored credentials.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend Backend
}

// Backend is the minimal key/value contract shared by the native
// macOS backend and the keyring adapter.
type Backend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "discovertrailraces"

// KeyAirtableToken is the item holding the Airtable personal access token.
const KeyAirtableToken = "airtable_token"

// NewManager opens the platform credential store.
func NewManager() (*Manager, error) {
	if runtime.GOOS == "darwin" {
		backend, err := newSecurityBackend()
		if err == nil {
			return &Manager{backend: backend}, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return &Manager{ring: ring}, nil
}

// NewWithBackend builds a Manager over an arbitrary backend. Used by tests
// and by callers that bring their own store.
func NewWithBackend(b Backend) *Manager {
	return &Manager{backend: b}
}

// GetManager returns the process-wide manager, creating it on first use.
// A failed initialisation is retried on the next call.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}
	m, err := NewManager()
	if err != nil {
		return nil, err
	}
	globalManager = m
	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only; there
// is no encrypted-file fallback.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		// Pass requires 'pass' utility installed: brew install pass
		allowedBackends = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	case "linux":
		allowedBackends = []keyring.BackendType{keyring.SecretServiceBackend, keyring.PassBackend}
	default:
		return nil, errors.New("secure storage not supported on this OS")
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	return keyring.Open(cfg)
}

// SaveToken stores the Airtable token.
func (m *Manager) SaveToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Set(KeyAirtableToken, token)
	}
	return m.ring.Set(keyring.Item{Key: KeyAirtableToken, Data: []byte(token), Label: "Airtable token"})
}

// LoadToken retrieves the Airtable token. An empty stored value is reported
// as ErrNotFound.
func (m *Manager) LoadToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		token, err := m.backend.Get(KeyAirtableToken)
		if err != nil {
			return "", err
		}
		if token == "" {
			return "", ErrNotFound
		}
		return token, nil
	}

	it, err := m.ring.Get(KeyAirtableToken)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if len(it.Data) == 0 {
		return "", ErrNotFound
	}
	return string(it.Data), nil
}

// ClearToken removes the stored token. Removing a missing item is not an error.
func (m *Manager) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Delete(KeyAirtableToken)
	}
	if err := m.ring.Remove(KeyAirtableToken); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
