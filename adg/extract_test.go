package adg

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drumrack/debug"
	"drumrack/kit"
)

func extractFrom(t *testing.T, r *Resolver, text string) []kit.Mapping {
	t.Helper()
	root, err := ParseDocument(text)
	require.NoError(t, err)
	return Extract(root, r)
}

func notes(ms []kit.Mapping) []uint8 {
	var out []uint8
	for _, m := range ms {
		out = append(out, m.Note)
	}
	return out
}

func TestExtractKeepsDocumentOrder(t *testing.T) {
	r, _, _ := newTestResolver(t)
	got := extractFrom(t, r, document(
		branch(80, fileRef("/a/Kick.wav", 1, "")),
		branch(77, fileRef("/a/Snare.wav", 1, "")),
		branch(85, fileRef("/a/Hat.wav", 1, "")),
	))

	assert.Equal(t, []uint8{80, 77, 85}, notes(got))
	assert.Equal(t, "Kick", got[0].SampleName)
	assert.Equal(t, "/a/Kick.wav", got[0].SamplePath)
}

func TestExtractSkipsOutOfRangeNote(t *testing.T) {
	r, _, _ := newTestResolver(t)
	got := extractFrom(t, r, document(
		branch(80, fileRef("/a/Kick.wav", 1, "")),
		branch(200, fileRef("/a/Bad.wav", 1, "")),
		branch(-3, fileRef("/a/Neg.wav", 1, "")),
		branch(85, fileRef("/a/Hat.wav", 1, "")),
	))

	assert.Equal(t, []uint8{80, 85}, notes(got))
}

func TestExtractReadsFractionalNote(t *testing.T) {
	r, _, _ := newTestResolver(t)
	decimal := strings.Replace(branch(80, fileRef("/a/Kick.wav", 1, "")), `<ReceivingNote Value="80" />`, `<ReceivingNote Value="80.0" />`, 1)
	got := extractFrom(t, r, document(decimal))

	assert.Equal(t, []uint8{80}, notes(got))
}

func TestExtractSkipsIncompleteBranches(t *testing.T) {
	r, _, _ := newTestResolver(t)
	got := extractFrom(t, r, document(
		// no ZoneSettings
		`<DrumBranchPreset><SampleRef>`+fileRef("/a/x.wav", 1, "")+`</SampleRef></DrumBranchPreset>`,
		// no SampleRef
		`<DrumBranchPreset><ZoneSettings><ReceivingNote Value="81"/></ZoneSettings></DrumBranchPreset>`,
		// SampleRef without FileRef
		`<DrumBranchPreset><SampleRef/><ZoneSettings><ReceivingNote Value="82"/></ZoneSettings></DrumBranchPreset>`,
		// FileRef without any path
		branch(83, fileRef("", 5, "")),
		branch(84, fileRef("/a/Ok.wav", 1, "")),
	))

	assert.Equal(t, []uint8{84}, notes(got))
}

func TestExtractPathAttributeFallbacks(t *testing.T) {
	r, _, _ := newTestResolver(t)
	got := extractFrom(t, r, document(
		branch(80, fileRef("", 1, "/abs/FromPath.wav")),
		branch(81, `<FileRef><RelativePathType Value="0"/><Name Value="FromName.aif"/></FileRef>`),
	))

	require.Len(t, got, 2)
	assert.Equal(t, "/abs/FromPath.wav", got[0].SamplePath)
	assert.Equal(t, "FromName.aif", got[1].SamplePath)
	assert.Equal(t, "FromName", got[1].SampleName)
}

func TestExtractDefaultPathTypeIsCoreLibrary(t *testing.T) {
	r, lib, _ := newTestResolver(t)
	want := touch(t, filepath.Join(lib, "Samples", "Drums", "Kick.wav"))

	got := extractFrom(t, r, document(branch(36, fileRef("/Drums/Kick.wav", -1, ""))))
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0].SamplePath)
}

func TestExtractAbsolutePathOverride(t *testing.T) {
	r, lib, _ := newTestResolver(t)
	abs := touch(t, filepath.Join(t.TempDir(), "Elsewhere", "Kick.wav"))

	got := extractFrom(t, r, document(branch(36, fileRef("/Drums/Kick.wav", 5, abs))))
	require.Len(t, got, 1)
	assert.Equal(t, abs, got[0].SamplePath)

	// a missing absolute path does not override the best-effort result
	got = extractFrom(t, r, document(branch(36, fileRef("/Drums/Kick.wav", 5, "/missing/Kick.wav"))))
	require.Len(t, got, 1)
	assert.Equal(t, filepath.Join(lib, "Drums", "Kick.wav"), got[0].SamplePath)
}

func TestExtractResolvedPathBeatsAbsolute(t *testing.T) {
	r, lib, _ := newTestResolver(t)
	want := touch(t, filepath.Join(lib, "Drums", "Kick.wav"))
	abs := touch(t, filepath.Join(t.TempDir(), "Kick.wav"))

	got := extractFrom(t, r, document(branch(36, fileRef("/Drums/Kick.wav", 5, abs))))
	require.Len(t, got, 1)
	assert.Equal(t, want, got[0].SamplePath)
}

func TestExtractFindsSampleRefAnywhere(t *testing.T) {
	r, _, _ := newTestResolver(t)
	doc := document(`
		<DrumBranchPreset>
			<ZoneSettings><ReceivingNote Value="90"/></ZoneSettings>
			<Wrapper><Deeper><SampleRef><Meta><FileRef><RelativePath Value="/a/First.wav"/><RelativePathType Value="1"/></FileRef></Meta></SampleRef></Deeper></Wrapper>
			<SampleRef><FileRef><RelativePath Value="/a/Second.wav"/><RelativePathType Value="1"/></FileRef></SampleRef>
		</DrumBranchPreset>`)

	got := extractFrom(t, r, doc)
	require.Len(t, got, 1)
	assert.Equal(t, "First", got[0].SampleName)
}

func TestExtractWritesDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	defer debug.Disable()

	r, _, _ := newTestResolver(t)
	extractFrom(t, r, document(branch(80, fileRef("/a/Kick.wav", 1, ""))))

	assert.Contains(t, buf.String(), "branch note=80")
	assert.Contains(t, buf.String(), "exists: NO")
}
