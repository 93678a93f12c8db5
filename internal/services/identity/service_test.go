package identity_test

import (
	"errors"
	"path/filepath"
	"testing"

	"ltoaccount/internal/crypto"
	"ltoaccount/internal/domain"
	"ltoaccount/internal/services/identity"
	"ltoaccount/internal/store"
)

const pass = "Str0ng-Passphrase!"

func newService(t *testing.T) *identity.Service {
	t.Helper()
	dir := t.TempDir()
	return identity.New(store.NewKeyFileStore(dir, filepath.Join(dir, "acct.enc")), domain.TestNet)
}

func TestGenerateAndLoad(t *testing.T) {
	s := newService(t)
	acct, fp, err := s.GenerateAccount(pass)
	if err != nil {
		t.Fatalf("GenerateAccount: %v", err)
	}
	if err := crypto.ValidateAddress(acct.Address, domain.TestNet); err != nil {
		t.Fatalf("address: %v", err)
	}
	sign, ok := acct.Keys.Signing()
	if !ok || !sign.HasSecret() {
		t.Fatal("generated account lacks a secret sign key")
	}
	if enc, ok := acct.Keys.Encryption(); !ok || !enc.HasSecret() {
		t.Fatal("generated account lacks a secret encryption key")
	}

	loaded, err := s.LoadAccount(pass)
	if err != nil {
		t.Fatalf("LoadAccount: %v", err)
	}
	got, _ := loaded.Keys.Signing()
	if got.Public != sign.Public {
		t.Fatal("sign key changed across reload")
	}

	again, err := s.FingerprintAccount(pass)
	if err != nil {
		t.Fatalf("FingerprintAccount: %v", err)
	}
	if again != fp {
		t.Fatalf("fingerprint mismatch: %s vs %s", again, fp)
	}
}

func TestWrongPassphrase(t *testing.T) {
	s := newService(t)
	if _, _, err := s.GenerateAccount(pass); err != nil {
		t.Fatalf("GenerateAccount: %v", err)
	}
	if _, err := s.LoadAccount("Other-Passphrase-1"); !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("want ErrWrongPassphrase, got %v", err)
	}
}

func TestIsSecurePassphrase(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"Short1!", false},
		{"alllowercase12!", false},
		{"ALLUPPERCASE12!", false},
		{"NoDigitsHere!!", false},
		{"NoSymbols12345", false},
		{"Good-Passphrase1", true},
		{"Ünïcödé-Pass-42", true},
	}
	for _, tt := range tests {
		if got := identity.IsSecurePassphrase(tt.in); got != tt.want {
			t.Errorf("IsSecurePassphrase(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGenerate_WeakPassphrase(t *testing.T) {
	s := newService(t)
	if _, _, err := s.GenerateAccount("weak"); !errors.Is(err, identity.ErrWeakPassphrase) {
		t.Fatalf("want ErrWeakPassphrase, got %v", err)
	}
}
