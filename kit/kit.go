// Package kit holds the normalized drum kit produced by an import and
// the fixed pad layout it is mapped onto.
package kit

import (
	"path/filepath"
	"strings"
)

// Mapping binds one sample to a MIDI note. Before remapping the note is
// the vendor note read from the preset; afterwards it is a pad note.
type Mapping struct {
	Note       uint8  `json:"midiNote"`
	SamplePath string `json:"samplePath"`
	SampleName string `json:"sampleName"`
}

// Kit is a named set of sample mappings loaded from one preset file
type Kit struct {
	Name       string    `json:"name"`
	SourceFile string    `json:"sourceFile,omitempty"`
	Mappings   []Mapping `json:"pads"`
}

// NewMapping builds a mapping whose name is the stem of path
func NewMapping(note uint8, path string) Mapping {
	return Mapping{
		Note:       note,
		SamplePath: path,
		SampleName: Stem(path),
	}
}

// Stem returns the file name of path without its extension
func Stem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Empty reports whether the kit has no mapped samples
func (k Kit) Empty() bool {
	return len(k.Mappings) == 0
}

// Lookup returns the mapping for note, if any
func (k Kit) Lookup(note uint8) (Mapping, bool) {
	for _, m := range k.Mappings {
		if m.Note == note {
			return m, true
		}
	}
	return Mapping{}, false
}

// ByNote indexes the kit's mappings by note. Later duplicates lose.
func (k Kit) ByNote() map[uint8]Mapping {
	out := make(map[uint8]Mapping, len(k.Mappings))
	for _, m := range k.Mappings {
		if _, ok := out[m.Note]; !ok {
			out[m.Note] = m
		}
	}
	return out
}
