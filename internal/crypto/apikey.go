package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidKeyHashFormat = errors.New("invalid encoded key hash format")
	ErrIncompatibleVersion  = errors.New("incompatible argon2 version")
)

// Argon2id parameters for API key hashing. Keys are verified once per
// request, so the cost stays modest.
const (
	keyHashMemory      = 64 * 1024
	keyHashIterations  = 3
	keyHashParallelism = 2
	keyHashSaltLength  = 16
	keyHashKeyLength   = 32
)

// HashAPIKey hashes an API key with Argon2id and returns the PHC-encoded
// string suitable for the API_KEY_HASH configuration value.
func HashAPIKey(key string) (string, error) {
	salt := make([]byte, keyHashSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	hash := argon2.IDKey([]byte(key), salt, keyHashIterations, keyHashMemory, keyHashParallelism, keyHashKeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		keyHashMemory,
		keyHashIterations,
		keyHashParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

// VerifyAPIKey checks a presented key against a PHC-encoded Argon2id hash
// using a constant-time comparison.
func VerifyAPIKey(key, encodedHash string) (bool, error) {
	salt, hash, iterations, memory, parallelism, err := decodeKeyHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(key), salt, iterations, memory, parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, candidate) == 1, nil
}

func decodeKeyHash(encodedHash string) (salt, hash []byte, iterations, memory uint32, parallelism uint8, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrInvalidKeyHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidKeyHashFormat
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidKeyHashFormat
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidKeyHashFormat
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrInvalidKeyHashFormat
	}

	return salt, hash, iterations, memory, parallelism, nil
}
