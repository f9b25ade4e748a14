package kat

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAnnexAFixture(t *testing.T) {
	vectors, err := Load("testdata/annex_a.json")
	if err != nil {
		t.Fatalf("Load: %s", err)
	}
	if len(vectors) == 0 {
		t.Fatalf("Load: no vectors returned")
	}
	for i, v := range vectors {
		if v.Version != 1 {
			t.Errorf("Vector #%d: Version got %d, expected 1", i, v.Version)
		}
		if v.PrivateD.IsEmpty() {
			t.Errorf("Vector #%d: PrivateD should not be empty", i)
		}
		if v.K.IsEmpty() {
			t.Errorf("Vector #%d: K should not be empty", i)
		}
		if v.Plaintext.IsEmpty() {
			t.Errorf("Vector #%d: Plaintext should not be empty", i)
		}
	}
}

func TestLoadRejectsBadVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	body := `{"vectors":[{"name":"x","v":2,"d":"AQ==","k":"Ag==","m":"Aw=="}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrBadVector) {
		t.Errorf("Load: expected ErrBadVector, got %v", err)
	}
}

func TestLoadRejectsMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.json")
	body := `{"vectors":[{"name":"x","v":1,"d":"","k":"Ag==","m":"Aw=="}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %s", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrBadVector) {
		t.Errorf("Load: expected ErrBadVector, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.json"); err == nil {
		t.Errorf("Load: expected error for missing file")
	}
}
