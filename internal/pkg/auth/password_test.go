package auth

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret123" {
		t.Fatal("expected password to be hashed")
	}

	if !CheckPassword(hash, "s3cret123") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
	if CheckPassword("", "s3cret123") {
		t.Error("empty hash accepted")
	}
}
