package adg

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRoundTrip(t *testing.T) {
	src := document(branch(36, fileRef("/Drums/Kick.wav", 5, "")))

	got, err := Decode(bytes.NewReader(gzipBytes(t, src)))
	require.NoError(t, err)
	assert.Equal(t, src, got)
}

func TestDecodeReadsOnlyFirstMember(t *testing.T) {
	data := append(gzipBytes(t, "<A/>"), gzipBytes(t, "<B/>")...)

	got, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "<A/>", got)
}

func TestDecodeFailures(t *testing.T) {
	full := gzipBytes(t, document(branch(36, fileRef("/Kick.wav", 5, ""))))

	tests := []struct {
		name string
		data []byte
	}{
		{"not gzip", []byte("<Ableton />")},
		{"empty input", nil},
		{"truncated", full[:len(full)/2]},
		{"empty payload", gzipBytes(t, "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(bytes.NewReader(tt.data))
			assert.ErrorIs(t, err, ErrDecode)
			assert.Empty(t, got)
		})
	}
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.adg"))
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
