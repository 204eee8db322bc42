// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
)

// sealedPrefix marks values produced by Seal. The version allows the format
// to change without breaking stored sessions.
const sealedPrefix = "sealed:v1:"

const saltSize = 16

var (
	// ErrKeyRequired is returned when opening a sealed value without a key.
	ErrKeyRequired = errors.New("sealed value requires a seal key")
	// ErrOpen is returned when a sealed value cannot be decrypted.
	ErrOpen = errors.New("cannot open sealed value")
)

// NewSealer returns a [Sealer] keyed by passphrase. An empty passphrase
// returns a pass-through sealer that stores tokens as is.
//
// The AES-256 key is derived from passphrase with Argon2id using the
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSealer(passphrase string) (Sealer, error) {
	if passphrase == "" {
		return plainSealer{}, nil
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate seal salt: %w", err)
	}

	return &aesSealer{
		passphrase:   []byte(passphrase),
		salt:         salt,
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}, nil
}

// aesSealer seals with AES-256-GCM. A sealed value is
// prefix ‖ base64(salt ‖ nonce ‖ ciphertext).
type aesSealer struct {
	passphrase []byte
	salt       []byte

	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	// keys caches derived keys by salt; Argon2id is deliberately slow.
	keys sync.Map
}

func (s *aesSealer) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	gcm, err := s.aead(s.salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, s.salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return sealedPrefix + base64.StdEncoding.EncodeToString(blob), nil
}

func (s *aesSealer) Open(sealed string) (string, error) {
	encoded, ok := strings.CutPrefix(sealed, sealedPrefix)
	if !ok {
		return sealed, nil
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpen, err)
	}
	if len(blob) < saltSize {
		return "", fmt.Errorf("%w: value too short", ErrOpen)
	}

	gcm, err := s.aead(blob[:saltSize])
	if err != nil {
		return "", err
	}

	rest := blob[saltSize:]
	if len(rest) < gcm.NonceSize() {
		return "", fmt.Errorf("%w: value too short", ErrOpen)
	}

	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOpen, err)
	}

	return string(plaintext), nil
}

func (s *aesSealer) aead(salt []byte) (cipher.AEAD, error) {
	key, ok := s.keys.Load(string(salt))
	if !ok {
		key, _ = s.keys.LoadOrStore(string(salt), argon2.IDKey(
			s.passphrase,
			salt,
			s.argonTime,
			s.argonMemory,
			s.argonThreads,
			s.argonKeyLen,
		))
	}

	block, err := aes.NewCipher(key.([]byte))
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}

// plainSealer is used when no seal key is configured.
type plainSealer struct{}

func (plainSealer) Seal(plaintext string) (string, error) {
	return plaintext, nil
}

func (plainSealer) Open(sealed string) (string, error) {
	if strings.HasPrefix(sealed, sealedPrefix) {
		return "", ErrKeyRequired
	}
	return sealed, nil
}
