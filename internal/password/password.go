// Package password provides credential hashing and verification on top of bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher hashes and verifies user passwords with a fixed cost factor.
type Hasher struct {
	// cost is the bcrypt cost factor. Higher values slow hashing down;
	// it is bounded so a single call completes in predictable time.
	cost int
}

// NewHasher constructs a Hasher with the given bcrypt cost.
// Costs outside bcrypt's supported range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a salted one-way hash from the plaintext password.
// bcrypt embeds a random salt, so two calls on the same input
// produce different hashes that both verify.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash.
// It returns false for any mismatch, including malformed stored hashes.
// bcrypt's comparison does not leak timing correlated with partial matches.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
