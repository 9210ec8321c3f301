package hash

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashAndMatch(t *testing.T) {
	hasher := NewBcrypt(bcrypt.MinCost)

	digest, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if digest == "s3cret" || !strings.HasPrefix(digest, "$2a$") {
		t.Fatalf("unexpected digest: %s", digest)
	}

	if !hasher.Matches("s3cret", digest) {
		t.Fatalf("digest does not match original password")
	}
	if hasher.Matches("wrong", digest) {
		t.Fatalf("digest matched a wrong password")
	}
}

func TestBcrypt_DistinctDigests(t *testing.T) {
	hasher := NewBcrypt(bcrypt.MinCost)

	a, err := hasher.Hash("same")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := hasher.Hash("same")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a == b {
		t.Fatalf("expected salted digests to differ")
	}
}

func TestBcrypt_DefaultCost(t *testing.T) {
	hasher := NewBcrypt(0)

	digest, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("cost inspection failed: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
