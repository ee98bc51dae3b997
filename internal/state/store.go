// Package state provides the durable session store: a small key/value file
// holding the auth token and tenant identity across process runs, keyed per
// API origin. The token is encrypted at rest with AES-GCM; the key is derived
// from a per-user keyfile.
package state

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/pbkdf2"

	"github.com/admitly/admitctl/internal/errors"
)

// Durable keys. These are the only keys the store persists.
const (
	KeyToken      = "token"
	KeyTenantID   = "tenant_id"
	KeyTenantSlug = "tenant_slug"
)

const keyfileName = ".statekey"

// Store is the durable session store. Single writer per process; concurrent
// readers are safe. Last write wins across processes, matching the
// one-tab-at-a-time model the store is designed for.
type Store struct {
	mu sync.RWMutex

	// path is the state file for the active API origin
	path string

	// masterKey encrypts the token value at rest
	masterKey []byte

	values map[string]string
}

// Open returns the store for the given API origin, loading any persisted
// state. Each origin gets its own state file so switching deployments never
// leaks a session.
func Open(dir, origin string) (*Store, error) {
	masterKey, err := loadMasterKey(dir)
	if err != nil {
		return nil, err
	}

	sum := blake3.Sum256([]byte(origin))
	path := filepath.Join(dir, "state", fmt.Sprintf("%x.json", sum[:8]))

	s := &Store{
		path:      path,
		masterKey: masterKey,
		values:    make(map[string]string),
	}

	if _, err := os.Stat(path); err == nil {
		if err := s.load(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Get returns the stored value for key, or "" when unset.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores value under key and persists immediately.
// An empty value is equivalent to Clear.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if value == "" {
		delete(s.values, key)
	} else {
		s.values[key] = value
	}
	return s.save()
}

// Clear removes key and persists immediately.
func (s *Store) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return s.save()
}

// ClearAll removes every key. Used by logout; never partial.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = make(map[string]string)
	return s.save()
}

// Path returns the state file location.
func (s *Store) Path() string {
	return s.path
}

// save writes the state file with the token encrypted. Caller holds the lock.
func (s *Store) save() error {
	onDisk := make(map[string]string, len(s.values))
	for k, v := range s.values {
		if k == KeyToken {
			enc, err := s.encrypt(v)
			if err != nil {
				return errors.NewStateWriteError(s.path, err)
			}
			onDisk[k] = enc
			continue
		}
		onDisk[k] = v
	}

	data, err := json.MarshalIndent(onDisk, "", "  ")
	if err != nil {
		return errors.NewStateWriteError(s.path, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.NewStateWriteError(s.path, err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.NewStateWriteError(s.path, err)
	}
	return nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return errors.NewStateReadError(s.path, err)
	}

	onDisk := make(map[string]string)
	if err := json.Unmarshal(data, &onDisk); err != nil {
		return errors.NewStateReadError(s.path, err)
	}

	for k, v := range onDisk {
		if k == KeyToken {
			plain, err := s.decrypt(v)
			if err != nil {
				// An undecryptable token behaves like an absent token; the
				// bootstrapper will land in Anonymous.
				continue
			}
			s.values[k] = plain
			continue
		}
		s.values[k] = v
	}
	return nil
}

// encrypt encrypts a value using AES-GCM
func (s *Store) encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(s.masterKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// decrypt decrypts a value using AES-GCM
func (s *Store) decrypt(ciphertext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(s.masterKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertextBytes := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertextBytes, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// loadMasterKey derives the at-rest encryption key from a per-user keyfile,
// creating the keyfile with fresh random material on first use.
func loadMasterKey(dir string) ([]byte, error) {
	path := filepath.Join(dir, keyfileName)

	secret, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		secret = make([]byte, 32)
		if _, rerr := io.ReadFull(rand.Reader, secret); rerr != nil {
			return nil, errors.NewStateWriteError(path, rerr)
		}
		if merr := os.MkdirAll(dir, 0o700); merr != nil {
			return nil, errors.NewStateWriteError(path, merr)
		}
		if werr := os.WriteFile(path, secret, 0o600); werr != nil {
			return nil, errors.NewStateWriteError(path, werr)
		}
	} else if err != nil {
		return nil, errors.NewStateReadError(path, err)
	}

	salt := []byte("admitctl-session-state")
	return pbkdf2.Key(secret, salt, 100000, 32, sha256.New), nil
}
