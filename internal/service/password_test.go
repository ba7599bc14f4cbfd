package service

import "testing"

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "simple password", password: "secret1"},
		{name: "long password", password: "correct horse battery staple and then some"},
		{name: "unicode password", password: "пароль-密码-🔐"},
		{name: "empty password", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}
			if hash == "" {
				t.Fatal("HashPassword() returned empty hash")
			}
			if hash == tt.password {
				t.Error("hash equals plaintext")
			}
			if !CheckPassword(tt.password, hash) {
				t.Error("CheckPassword() = false for matching password")
			}
		})
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if h1 == h2 {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if CheckPassword("secret2", hash) {
		t.Error("CheckPassword() = true for wrong password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty hash", hash: ""},
		{name: "garbage hash", hash: "not-a-bcrypt-hash"},
		{name: "truncated hash", hash: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CheckPassword("secret1", tt.hash) {
				t.Error("CheckPassword() = true for malformed hash")
			}
		})
	}
}
