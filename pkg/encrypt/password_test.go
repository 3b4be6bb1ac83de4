package encrypt

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash := HashPassword("s3cret!")
	if hash == "" {
		t.Fatal("empty hash")
	}
	if hash == "s3cret!" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !VerifyPassword(hash, "s3cret!") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestHashIsSalted(t *testing.T) {
	if HashPassword("same") == HashPassword("same") {
		t.Error("expected different hashes for the same input")
	}
}
