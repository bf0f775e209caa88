package adg

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeADG(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, gzipBytes(t, text), 0644))
	return path
}

func touch(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0644))
	return path
}

// fileRef renders a FileRef element. Empty values omit the child.
func fileRef(relPath string, pathType int, absPath string) string {
	var b strings.Builder
	b.WriteString("<FileRef>")
	if relPath != "" {
		fmt.Fprintf(&b, `<RelativePath Value="%s" />`, relPath)
	}
	if pathType >= 0 {
		fmt.Fprintf(&b, `<RelativePathType Value="%d" />`, pathType)
	}
	if absPath != "" {
		fmt.Fprintf(&b, `<Path Value="%s" />`, absPath)
	}
	b.WriteString("</FileRef>")
	return b.String()
}

func branch(note int, ref string) string {
	return fmt.Sprintf(`
		<DrumBranchPreset Id="0">
			<Name Value="" />
			<DevicePresets>
				<AbletonDevicePreset Id="0">
					<Device>
						<OriginalSimpler Id="0">
							<Player>
								<MultiSampleMap>
									<SampleParts>
										<MultiSamplePart Id="0">
											<SampleRef>%s</SampleRef>
										</MultiSamplePart>
									</SampleParts>
								</MultiSampleMap>
							</Player>
						</OriginalSimpler>
					</Device>
				</AbletonDevicePreset>
			</DevicePresets>
			<ZoneSettings>
				<ReceivingNote Value="%d" />
				<SendingNote Value="60" />
			</ZoneSettings>
		</DrumBranchPreset>`, ref, note)
}

func document(branches ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<Ableton MajorVersion="5" MinorVersion="12.0_12049" Creator="Ableton Live 12.0">
	<GroupDevicePreset>
		<BranchPresets>` + strings.Join(branches, "") + `
		</BranchPresets>
	</GroupDevicePreset>
</Ableton>`
}

// mapFS is an in-memory FS keyed by cleaned path
type mapFS struct {
	files map[string]bool
	dirs  map[string][]string
}

func (m mapFS) IsFile(path string) bool { return m.files[filepath.Clean(path)] }

func (m mapFS) IsDir(path string) bool {
	_, ok := m.dirs[filepath.Clean(path)]
	return ok
}

func (m mapFS) ListDirs(path string) ([]string, error) {
	names, ok := m.dirs[filepath.Clean(path)]
	if !ok {
		return nil, os.ErrNotExist
	}
	return names, nil
}
