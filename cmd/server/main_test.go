package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateHostKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(path)
	if err != nil {
		t.Fatalf("create host key: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("host key not persisted: %v", err)
	}

	second, err := loadOrCreateHostKey(path)
	if err != nil {
		t.Fatalf("load host key: %v", err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Fatal("reloaded key differs from the generated one")
	}
}

func TestLoadOrCreateHostKeyReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	signer, err := loadOrCreateHostKey(path)
	if err != nil {
		t.Fatalf("expected a fresh key, got %v", err)
	}
	if signer.PublicKey().Type() != "ssh-ed25519" {
		t.Fatalf("key type = %q, want ssh-ed25519", signer.PublicKey().Type())
	}
}
