package filehandler

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func baseNames(paths []string) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	sort.Strings(names)
	return names
}

func TestCollectDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.png", "b.txt", "nested/c.png")

	got, err := Collect([]string{dir}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	names := baseNames(got)
	if len(names) != 2 || names[0] != "a.png" || names[1] != "b.txt" {
		t.Errorf("non-recursive collect = %v", names)
	}
}

func TestCollectRecursiveWithInclude(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.png", "b.txt", "nested/c.PNG", "nested/deep/d.png")

	got, err := Collect([]string{dir}, Options{Recursive: true, Include: "*.png"})
	if err != nil {
		t.Fatal(err)
	}
	names := baseNames(got)
	want := []string{"a.png", "c.PNG", "d.png"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("got %v, want %v", names, want)
			break
		}
	}
}

func TestCollectPlainFileBypassesInclude(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "report.docx")
	path := filepath.Join(dir, "report.docx")

	got, err := Collect([]string{path}, Options{Include: "*.png"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != path {
		t.Errorf("explicit file filtered out: %v", got)
	}
}

func TestCollectErrors(t *testing.T) {
	if _, err := Collect([]string{"/no/such/path"}, Options{}); err == nil {
		t.Error("expected an error for a missing path")
	}
	dir := t.TempDir()
	if _, err := Collect([]string{dir}, Options{Include: "[bad"}); err == nil {
		t.Error("expected an error for a malformed pattern")
	}
}

func TestReadCapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.bin")
	if err := os.WriteFile(path, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := ReadCapped(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Errorf("data = %q", data)
	}
}
