package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secreto1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "secreto1" {
		t.Error("hash should not equal the plaintext")
	}

	if !Verify("secreto1", hash) {
		t.Error("correct password should verify")
	}
	if Verify("equivocada", hash) {
		t.Error("wrong password should not verify")
	}
}

func TestHashToken(t *testing.T) {
	a := HashToken("token-a")
	b := HashToken("token-b")

	if a == b {
		t.Error("different tokens should hash differently")
	}
	if a != HashToken("token-a") {
		t.Error("token hashing should be deterministic")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestValidate(t *testing.T) {
	if Validate("corto") {
		t.Error("5 chars should be rejected")
	}
	if !Validate("secreto") {
		t.Error("6+ chars should be accepted")
	}
}
