package kit

import "strings"

// Pad is one physical trigger zone on the target drum module
type Pad struct {
	Note     uint8
	Name     string   // e.g. "Tom1"
	Trigger  string   // e.g. "Rim"
	Keywords []string // lowercase filename tokens, matched by substring
}

// Label returns "Name Trigger" for display
func (p Pad) Label() string {
	return p.Name + " " + p.Trigger
}

type padDef struct {
	note     uint8
	name     string
	trigger  string
	keywords string
}

// Table order is claim priority: an earlier pad takes a keyword match
// before a later pad sees the same sample.
var padDefs = []padDef{
	{36, "Kick", "Head", "kick bass 808 bd"},
	{38, "Snare", "Head", "snare sd"},
	{37, "Snare", "X-Stick", "stick rim click clap snap"},
	{40, "Snare", "Rim", "snare rim"},
	{48, "Tom1", "Head", "tom high"},
	{50, "Tom1", "Rim", "tom"},
	{45, "Tom2", "Head", "tom mid"},
	{47, "Tom2", "Rim", "tom"},
	{43, "Tom3", "Head", "tom low floor"},
	{58, "Tom3", "Rim", "tom"},
	{42, "Hi-Hat", "Closed", "hihat closed hat hh"},
	{46, "Hi-Hat", "Open", "hihat open hat"},
	{23, "Hi-Hat", "Half Open", "hihat hat"},
	{44, "HH Pedal", "Chick", "pedal hat"},
	{21, "HH Pedal", "Splash", "shaker tamb perc"},
	{49, "Crash1", "Bow", "crash cymbal"},
	{55, "Crash1", "Edge", "crash"},
	{57, "Crash2", "Bow", "crash cymbal"},
	{52, "Crash2", "Edge", "crash cymbal"},
	{51, "Ride", "Bow", "ride cymbal"},
	{53, "Ride", "Bell", "ride bell cowbell"},
	{59, "Ride", "Edge", "ride"},
	{41, "EXT", "Head", "perc conga bongo wood"},
	{39, "EXT", "Rim", "perc fx synth"},
}

// Pads is the target layout, tokenized once at startup
var Pads = buildPads(padDefs)

func buildPads(defs []padDef) []Pad {
	pads := make([]Pad, len(defs))
	for i, d := range defs {
		pads[i] = Pad{
			Note:     d.note,
			Name:     d.name,
			Trigger:  d.trigger,
			Keywords: strings.Fields(strings.ToLower(d.keywords)),
		}
	}
	return pads
}

// PadNotes returns the pad notes in table order
func PadNotes() []uint8 {
	notes := make([]uint8, len(Pads))
	for i, p := range Pads {
		notes[i] = p.Note
	}
	return notes
}

// IsPadNote reports whether note belongs to the pad layout
func IsPadNote(note uint8) bool {
	_, ok := PadFor(note)
	return ok
}

// PadFor returns the pad bound to note
func PadFor(note uint8) (Pad, bool) {
	for _, p := range Pads {
		if p.Note == note {
			return p, true
		}
	}
	return Pad{}, false
}

// Matches reports whether name contains any of the pad's keywords
func (p Pad) Matches(name string) bool {
	lower := strings.ToLower(name)
	for _, w := range p.Keywords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
