package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost used for stored credentials.
const DefaultCost = 10

// PasswordHasher hashes and verifies user credentials.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
	// CompareDummy burns the same work as Compare for an unknown user and always fails.
	CompareDummy(plain string) bool
}

// BcryptHasher stores credentials as salted bcrypt hashes. Passwords are
// digested with SHA-256 first, so bcrypt's 72-byte input limit never applies.
type BcryptHasher struct {
	cost int

	dummyOnce sync.Once
	dummy     []byte
}

// Ensure BcryptHasher implements PasswordHasher
var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher with the given cost, falling back to DefaultCost when out of range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of plain.
func (h *BcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether plain matches hash. bcrypt compares in constant time.
func (h *BcryptHasher) Compare(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(plain)) == nil
}

// CompareDummy runs a comparison against a throwaway hash of the same cost.
func (h *BcryptHasher) CompareDummy(plain string) bool {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword(prehash("dummy-credential"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummy, prehash(plain))
	return false
}

// prehash returns the base64 SHA-256 digest of plain (44 bytes).
func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
