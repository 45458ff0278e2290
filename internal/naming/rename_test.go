package naming

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRename_Basic(t *testing.T) {
	dir := t.TempDir()
	old := touch(t, dir, "DSCF1234.RAF")

	newPath, err := Rename(old, "DSCF1234_[HDR].RAF", false)
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if newPath != filepath.Join(dir, "DSCF1234_[HDR].RAF") {
		t.Errorf("newPath = %q", newPath)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Error("old path still exists")
	}
	if _, err := os.Stat(newPath); err != nil {
		t.Errorf("new path missing: %v", err)
	}
}

func TestRename_SameNameIsNoOp(t *testing.T) {
	dir := t.TempDir()
	old := touch(t, dir, "DSCF1234.RAF")

	newPath, err := Rename(old, "DSCF1234.RAF", false)
	if err != nil {
		t.Fatalf("Rename to own name should be a no-op, got %v", err)
	}
	if newPath != old {
		t.Errorf("newPath = %q, want %q", newPath, old)
	}
}

func TestRename_TargetExists(t *testing.T) {
	dir := t.TempDir()
	old := touch(t, dir, "DSCF1234.RAF")
	touch(t, dir, "DSCF1234_[HDR].RAF")

	_, err := Rename(old, "DSCF1234_[HDR].RAF", false)
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("Rename: err = %v, want ErrTargetExists", err)
	}
	// The source must be untouched after the failure.
	if _, err := os.Stat(old); err != nil {
		t.Errorf("source was touched: %v", err)
	}
}

func TestRename_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	old := touch(t, dir, "DSCF1234.RAF")
	touch(t, dir, "DSCF1234_[HDR].RAF")

	if _, err := Rename(old, "DSCF1234_[HDR].RAF", true); err != nil {
		t.Fatalf("Rename with force: %v", err)
	}
}

func TestRename_MissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Rename(filepath.Join(dir, "nope.RAF"), "nope_[HDR].RAF", false)
	if err == nil {
		t.Fatal("Rename of missing source should fail")
	}
	if errors.Is(err, ErrTargetExists) {
		t.Error("missing source must not be classified as target-exists")
	}
}

func TestClaimTracker(t *testing.T) {
	ct := NewClaimTracker()

	if err := ct.Claim("/in/a.RAF", "/in/a_[HDR].RAF"); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	// Re-claiming one's own target is allowed.
	if err := ct.Claim("/in/a.RAF", "/in/a_[HDR].RAF"); err != nil {
		t.Fatalf("own re-claim: %v", err)
	}
	// A different input computing the same target must fail.
	err := ct.Claim("/in/b.RAF", "/in/a_[HDR].RAF")
	if !errors.Is(err, ErrTargetExists) {
		t.Fatalf("conflicting claim: err = %v, want ErrTargetExists", err)
	}
	// Other targets stay claimable.
	if err := ct.Claim("/in/b.RAF", "/in/b_[HDR].RAF"); err != nil {
		t.Fatalf("independent claim: %v", err)
	}
}
