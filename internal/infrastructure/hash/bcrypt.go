// Package hash provides the bcrypt-backed credential hasher.
package hash

import "golang.org/x/crypto/bcrypt"

// Bcrypt satisfies ports.PasswordHasher with a salted adaptive hash.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a hasher with the given cost. Non-positive cost falls
// back to bcrypt.DefaultCost; tests pass bcrypt.MinCost to stay fast.
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

func (b *Bcrypt) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (b *Bcrypt) Matches(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
