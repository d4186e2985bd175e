package auth

import "testing"

func TestHasherRoundTrip(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}

	if !h.Verify("correct horse battery staple", hash) {
		t.Fatal("expected correct password to verify")
	}
	if h.Verify("wrong password", hash) {
		t.Fatal("expected wrong password to fail")
	}
}

func TestHasherSaltedOutput(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatal("expected salted hashes to differ")
	}
	if !h.Verify("secret", first) || !h.Verify("secret", second) {
		t.Fatal("both hashes must verify")
	}
}

func TestHasherMalformedHash(t *testing.T) {
	h := NewHasher()

	for _, hash := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		if h.Verify("anything", hash) {
			t.Fatalf("malformed hash %q verified", hash)
		}
	}
}
