package cipher

import (
	"strings"
	"testing"
)

func TestNew_EmptyKey(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c, err := New("test-encryption-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	plaintexts := []string{
		"secret123",
		"",
		"with spaces and symbols !@#$%^&*()",
		strings.Repeat("long", 1000),
		"юникод и 日本語",
	}
	for _, p := range plaintexts {
		ct, err := c.Encrypt(p)
		if err != nil {
			t.Fatalf("Encrypt(%q): %v", p, err)
		}
		if ct == p && p != "" {
			t.Errorf("Encrypt(%q) returned the plaintext", p)
		}
		got, err := c.Decrypt(ct)
		if err != nil {
			t.Fatalf("Decrypt(Encrypt(%q)): %v", p, err)
		}
		if got != p {
			t.Errorf("round trip = %q; want %q", got, p)
		}
	}
}

func TestEncrypt_FreshNonce(t *testing.T) {
	c, err := New("test-encryption-key")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	second, err := c.Encrypt("same plaintext")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if first == second {
		t.Error("two encryptions of the same plaintext produced identical ciphertext")
	}
}

func TestDecrypt_WrongKey(t *testing.T) {
	a, _ := New("key-a")
	b, _ := New("key-b")

	ct, err := a.Encrypt("secret123")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := b.Decrypt(ct); err == nil {
		t.Error("expected error decrypting with a different key")
	}
}

func TestDecrypt_Malformed(t *testing.T) {
	c, _ := New("test-encryption-key")

	cases := []struct {
		name string
		in   string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"too short", "YWJj"},
		{"tampered", "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := c.Decrypt(tc.in); err == nil {
				t.Errorf("Decrypt(%q) did not return error", tc.in)
			}
		})
	}
}
