package security

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/user-service/internal/core/domain"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("StrongP@ss1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "StrongP@ss1" || !strings.HasPrefix(digest, "$2a$") {
		t.Fatalf("unexpected digest: %s", digest)
	}
	if !h.Verify("StrongP@ss1", digest) {
		t.Fatal("expected password to verify")
	}
	if h.Verify("StrongP@ss2", digest) {
		t.Fatal("wrong password must not verify")
	}
}

func TestBcryptHasher_Salted(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	a, _ := h.Hash("StrongP@ss1")
	b, _ := h.Hash("StrongP@ss1")
	if a == b {
		t.Fatal("two digests of the same password must differ")
	}
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	h := NewBcryptHasher(0)

	digest, err := h.Hash("StrongP@ss1")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("Cost returned error: %v", err)
	}
	if cost != DefaultCost {
		t.Fatalf("expected cost %d, got %d", DefaultCost, cost)
	}
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	if h.Verify("StrongP@ss1", "not-a-digest") {
		t.Fatal("malformed digest must not verify")
	}
}

func TestBcryptHasher_TooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	if _, err := h.Hash(strings.Repeat("a", 73)); !errors.Is(err, domain.ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong for passwords over 72 bytes, got %v", err)
	}
	if _, err := h.Hash(strings.Repeat("a", 72)); err != nil {
		t.Fatalf("72 bytes is within the limit, got %v", err)
	}
}
