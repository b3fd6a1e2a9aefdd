package fakefs

import (
	"errors"
	"io/fs"
	"testing"
)

func TestReadFile_Missing(t *testing.T) {
	f := New()

	_, err := f.ReadFile("/etc/calc-average.yaml")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v, want fs.ErrNotExist", err)
	}
}

func TestReadFile_ReturnsCopy(t *testing.T) {
	f := New()
	f.AddFile("/cfg.yaml", []byte("logging:\n  level: debug\n"))

	data, err := f.ReadFile("/cfg.yaml")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	data[0] = 'X'

	again, _ := f.ReadFile("/cfg.yaml")
	if again[0] != 'l' {
		t.Errorf("stored data was mutated through returned slice: %q", again)
	}
}

func TestReadFile_CleansPath(t *testing.T) {
	f := New()
	f.AddFile("/a/b/../cfg.yaml", []byte("x"))

	if _, err := f.ReadFile("/a/cfg.yaml"); err != nil {
		t.Errorf("ReadFile(cleaned path) error = %v", err)
	}
	if got := f.Reads(); len(got) != 1 || got[0] != "/a/cfg.yaml" {
		t.Errorf("Reads() = %v, want [/a/cfg.yaml]", got)
	}
}
