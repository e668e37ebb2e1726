package crypto

import (
	"errors"
	"strings"
	"testing"
)

func TestHashAndCompare(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("expected PHC-formatted argon2id hash, got %s", hash)
	}
	if strings.Contains(hash, "correct horse") {
		t.Error("hash contains the plaintext password")
	}

	if err := hasher.Compare(hash, "correct horse battery staple"); err != nil {
		t.Errorf("expected matching password to verify, got %v", err)
	}

	if err := hasher.Compare(hash, "wrong password"); !errors.Is(err, ErrMismatch) {
		t.Errorf("expected ErrMismatch for wrong password, got %v", err)
	}
}

func TestHashProducesUniqueSalts(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	second, err := hasher.Hash("secret")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if first == second {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestCompareMalformedHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not argon2", "$2a$10$abcdefghijklmnopqrstuv"},
		{"truncated", "$argon2id$v=19$m=65536,t=1,p=4"},
		{"bad salt encoding", "$argon2id$v=19$m=65536,t=1,p=4$!!!$AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := hasher.Compare(tt.hash, "whatever"); err == nil {
				t.Error("expected error for malformed hash")
			}
		})
	}
}
