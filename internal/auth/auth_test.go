package auth

import (
	"testing"
	"time"
)

func TestJWT_RoundTrip(t *testing.T) {
	token, err := SignJWT(42, "a@b.c", "admin", "secret", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := ParseJWT(token, "secret")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "a@b.c" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := SignJWT(1, "a@b.c", "user", "secret", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseJWT(token, "other-secret"); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestJWT_Expired(t *testing.T) {
	token, err := SignJWT(1, "a@b.c", "user", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestJWT_Garbage(t *testing.T) {
	if _, err := ParseJWT("not-a-token", "secret"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2" {
		t.Fatalf("hash should not equal plaintext")
	}
	if !CheckPassword("hunter2", hash) {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword("hunter3", hash) {
		t.Fatalf("wrong password accepted")
	}
}
