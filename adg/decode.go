package adg

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// DecodeFile opens path and inflates its single gzip member
func DecodeFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode inflates one gzip member from r and returns it as text.
// Trailing members are ignored. An empty payload is an error.
func Decode(r io.Reader) (string, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer zr.Close()
	zr.Multistream(false)

	data, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty payload", ErrDecode)
	}

	return string(data), nil
}
