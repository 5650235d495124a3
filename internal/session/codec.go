package session

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	saltSize = 16
	scryptN  = 32768
	scryptR  = 8
	scryptP  = 1
)

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer := lz4.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("compression failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("compression failed: %v", err)
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, lz4.NewReader(bytes.NewReader(data))); err != nil {
		return nil, fmt.Errorf("decompression failed: %v", err)
	}
	return buf.Bytes(), nil
}

func deriveKey(password string, salt []byte) ([]byte, error) {
	return scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, chacha20poly1305.KeySize)
}

// seal encrypts a record with ChaCha20-Poly1305 under a key derived from
// the password. Salt and nonce are prepended to the ciphertext.
func seal(plaintext []byte, password string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("key derivation failed: %w", err)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AEAD cipher: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	result := append(salt, nonce...)
	return append(result, aead.Seal(nil, nonce, plaintext, nil)...), nil
}

// unseal reverses seal. It fails when the password is wrong or the
// record was tampered with.
func unseal(ciphertext []byte, password string) ([]byte, error) {
	if len(ciphertext) < saltSize+chacha20poly1305.NonceSize {
		return nil, errors.New("sealed record too short")
	}

	salt := ciphertext[:saltSize]
	nonce := ciphertext[saltSize : saltSize+chacha20poly1305.NonceSize]

	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("key derivation failed: %w", err)
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AEAD cipher: %w", err)
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext[saltSize+chacha20poly1305.NonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}
	return plaintext, nil
}
