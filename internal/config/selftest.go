package config

import (
	"crypto/rand"
	"fmt"

	"github.com/suryansh-23/secretsieve/internal/validate"
)

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// SyntheticGitHubPAT returns a random ghp_ token with a valid checksum. It
// is used to check that a freshly written config still detects tokens.
func SyntheticGitHubPAT() (string, error) {
	buf := make([]byte, 30)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate synthetic token: %w", err)
	}
	for i, b := range buf {
		buf[i] = base62Alphabet[int(b)%len(base62Alphabet)]
	}
	return validate.SignCRC32Base62("ghp", string(buf)), nil
}
