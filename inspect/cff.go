package inspect

import (
	"bytes"
	"io"
	"os"
)

// otto is the sfnt version tag of OpenType fonts with CFF outlines.
var otto = []byte("OTTO")

// IsOpenTypeCFF reports whether a font file is an OpenType font with CFF
// (PostScript-flavored) outlines, decided from the leading signature
// bytes alone. Such fonts need special handling by some rasterizers, so
// the flag is exposed independently of full parsing.
func IsOpenTypeCFF(path string) (bool, error) {
	fd, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer fd.Close()

	var sig [4]byte
	if _, err := io.ReadFull(fd, sig[:]); err != nil {
		return false, err
	}
	return bytes.Equal(sig[:], otto), nil
}
