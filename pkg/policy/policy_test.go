package policy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.MaxRestrictedOperands != 2 {
		t.Errorf("MaxRestrictedOperands wrong. expected=2, got=%d",
			p.MaxRestrictedOperands)
	}
	if !p.ExtendedTypes {
		t.Error("ExtendedTypes should default to true")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := "max_restricted_operands: 1\nextended_types: false\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.MaxRestrictedOperands != 1 {
		t.Errorf("MaxRestrictedOperands wrong. expected=1, got=%d",
			p.MaxRestrictedOperands)
	}
	if p.ExtendedTypes {
		t.Error("ExtendedTypes should be false")
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("max_restricted_operands: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.MaxRestrictedOperands != 1 {
		t.Errorf("MaxRestrictedOperands wrong. expected=1, got=%d",
			p.MaxRestrictedOperands)
	}
	if !p.ExtendedTypes {
		t.Error("ExtendedTypes should keep its default")
	}
}

func TestLoadRejectsNegativeLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	if err := os.WriteFile(path, []byte("max_restricted_operands: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative limit")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
