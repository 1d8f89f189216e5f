package vault

import (
	"strings"
	"testing"
)

const testKey = "0123456789abcdef0123456789abcdef"

func TestCipherRoundTrip(t *testing.T) {
	c, err := NewCipher(testKey)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	inputs := []string{
		"a",
		"some-oauth-access-token",
		"token with spaces and symbols !@#$%^&*()",
		"ünïcödé-トークン",
		strings.Repeat("x", 4096),
	}
	for _, in := range inputs {
		encrypted, err := c.Encrypt(in)
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", in, err)
		}
		if encrypted == in {
			t.Errorf("ciphertext equals plaintext for %q", in)
		}
		decrypted, err := c.Decrypt(encrypted)
		if err != nil {
			t.Fatalf("Decrypt(%q): %v", in, err)
		}
		if decrypted != in {
			t.Errorf("round trip mismatch: got %q, want %q", decrypted, in)
		}
	}
}

func TestCipherRandomNonce(t *testing.T) {
	c, err := NewCipher(testKey)
	if err != nil {
		t.Fatalf("NewCipher: %v", err)
	}

	first, err := c.Encrypt("same-token")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	second, err := c.Encrypt("same-token")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if first == second {
		t.Error("two encryptions of the same plaintext produced identical ciphertexts")
	}
}

func TestCipherWrongKey(t *testing.T) {
	c1, _ := NewCipher(testKey)
	c2, _ := NewCipher("fedcba9876543210fedcba9876543210")

	encrypted, err := c1.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := c2.Decrypt(encrypted); err == nil {
		t.Error("decrypt with wrong key succeeded")
	}
}

func TestCipherInvalidKey(t *testing.T) {
	if _, err := NewCipher("too-short"); err == nil {
		t.Error("expected error for short key")
	}
	if _, err := NewCipher(""); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestCipherInvalidCiphertext(t *testing.T) {
	c, _ := NewCipher(testKey)
	for _, bad := range []string{"", "not base64 %%%", "YWJj"} {
		if _, err := c.Decrypt(bad); err == nil {
			t.Errorf("Decrypt(%q) succeeded, want error", bad)
		}
	}
}
