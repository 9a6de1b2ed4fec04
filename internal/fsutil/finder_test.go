package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.fbt", "A.FBT", "c.Fbt", "d.xml", "e.fbt.bak", "fbt"} {
		touch(t, filepath.Join(dir, name))
	}
	sub := filepath.Join(dir, "nested.fbt")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(sub, "deep.fbt"))

	got, err := FindFilesByExtension(dir, ".fbt")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "A.FBT"),
		filepath.Join(dir, "b.fbt"),
		filepath.Join(dir, "c.Fbt"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestFindFilesByExtensionMissingDir(t *testing.T) {
	if _, err := FindFilesByExtension(filepath.Join(t.TempDir(), "nope"), ".fbt"); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestEmptyExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "noext"))

	files, err := FindFilesByExtension(dir, "")
	if !errors.Is(err, ErrEmptyExtension) {
		t.Errorf("FindFilesByExtension err = %v, want ErrEmptyExtension", err)
	}
	if files != nil {
		t.Errorf("FindFilesByExtension files = %v, want nil", files)
	}

	_, _, ok, err := FirstDirWithFiles([]string{dir}, "")
	if ok || !errors.Is(err, ErrEmptyExtension) {
		t.Errorf("FirstDirWithFiles = ok %v, err %v; want ErrEmptyExtension", ok, err)
	}
}

func TestFirstDirWithFiles(t *testing.T) {
	root := t.TempDir()
	empty := filepath.Join(root, "empty")
	other := filepath.Join(root, "other")
	xml := filepath.Join(root, "xml")
	later := filepath.Join(root, "later")
	for _, d := range []string{empty, other, xml, later} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	touch(t, filepath.Join(other, "x.txt"))
	touch(t, filepath.Join(xml, "E_DELAY.fbt"))
	touch(t, filepath.Join(later, "E_SPLIT.fbt"))
	notADir := filepath.Join(root, "file.fbt")
	touch(t, notADir)

	candidates := []string{filepath.Join(root, "missing"), notADir, empty, other, xml, later}
	dir, files, ok, err := FirstDirWithFiles(candidates, ".fbt")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || dir != xml {
		t.Fatalf("dir = %q, ok = %v, want %q", dir, ok, xml)
	}
	if diff := cmp.Diff([]string{filepath.Join(xml, "E_DELAY.fbt")}, files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	_, _, ok, err = FirstDirWithFiles([]string{empty, other}, ".fbt")
	if err != nil || ok {
		t.Errorf("ok = %v, err = %v, want no match", ok, err)
	}
}
