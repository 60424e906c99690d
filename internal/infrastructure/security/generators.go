// Package security provides secure random generation, token signing and
// payment signature verification utilities.
package security

import (
	"crypto/rand"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// GenerateULID generates a new ULID string.
func GenerateULID() string {
	return ulid.Make().String()
}

// Access codes skip ambiguous characters (0/O, 1/I) for readability.
const accessCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateAccessCode creates a human-readable access code of the form
// ATELIER-XXXXXXXX.
func GenerateAccessCode() (string, error) {
	const codeLength = 8

	bytes := make([]byte, codeLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate access code: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("ATELIER-")
	for _, b := range bytes {
		sb.WriteByte(accessCodeAlphabet[int(b)%len(accessCodeAlphabet)])
	}
	return sb.String(), nil
}
