package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "two.gpl")
	require.NoError(t, os.WriteFile(path, []byte(`GIMP Palette
Name: Two
Columns: 2
# comment
0 0 0	Black
255 255 255	White
`), 0644))

	p, err := LoadGPL(path)
	require.NoError(t, err)
	assert.Equal(t, "Two", p.Name)
	assert.Equal(t, []RGB{{0, 0, 0}, {255, 255, 255}}, p.Colors)
	assert.Equal(t, RGB{127, 127, 127}, p.Lookup(0.5))
	assert.Equal(t, RGB{255, 255, 255}, p.Lookup(2))
}

func TestLoadOrDefault(t *testing.T) {
	assert.Equal(t, "plasma", LoadOrDefault("").Name)
	assert.Equal(t, "plasma", LoadOrDefault(filepath.Join(t.TempDir(), "missing.gpl")).Name)
}

func TestThemeColors(t *testing.T) {
	th := New(Plasma())
	assert.Equal(t, "#0d0887", string(th.Color(0)))
	assert.Equal(t, "#f0f921", string(th.Success()))
}
