package platform

import (
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "pre-commit")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Chmod(path, 0755); err != nil {
		t.Fatalf("Chmod failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0755 {
			t.Errorf("permissions = %o, want %o", perm, 0755)
		}
	}
}

func TestBinaryNames(t *testing.T) {
	tests := []struct {
		goos string
		want []string
	}{
		{"linux", []string{"eslint"}},
		{"darwin", []string{"eslint"}},
		{"windows", []string{"eslint.cmd", "eslint.exe", "eslint"}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := binaryNames(tt.goos, "eslint"); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("binaryNames(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}
