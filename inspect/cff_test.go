package inspect

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFont(t *testing.T, sig []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "probe.otf")
	data := append(append([]byte{}, sig...), make([]byte, 16)...)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsOpenTypeCFF(t *testing.T) {
	cff, err := IsOpenTypeCFF(writeTempFont(t, []byte("OTTO")))
	if err != nil {
		t.Fatal(err)
	}
	if !cff {
		t.Error("expected an OTTO-tagged file to report CFF outlines")
	}

	cff, err = IsOpenTypeCFF(writeTempFont(t, []byte{0x00, 0x01, 0x00, 0x00}))
	if err != nil {
		t.Fatal(err)
	}
	if cff {
		t.Error("expected a TrueType-tagged file to report no CFF outlines")
	}
}

func TestIsOpenTypeCFFMissingFile(t *testing.T) {
	if _, err := IsOpenTypeCFF(filepath.Join(t.TempDir(), "nope.otf")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
