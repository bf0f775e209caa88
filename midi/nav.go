package midi

import (
	gomidi "gitlab.com/gomidi/midi/v2"

	"drumrack/kit"
)

// Navigator maps control changes to preset navigation
type Navigator struct {
	Channel int // 1-16, 0 = any
	PrevCC  uint8
	NextCC  uint8
}

// DefaultNavigator listens on any channel, CC1 = previous, CC2 = next
func DefaultNavigator() Navigator {
	return Navigator{PrevCC: 1, NextCC: 2}
}

// Process returns the navigation request carried by msg. Only control
// changes with a non-zero value on the configured channel count.
func (n Navigator) Process(msg gomidi.Message) NavAction {
	var channel, cc, value uint8
	if !msg.GetControlChange(&channel, &cc, &value) {
		return NavNone
	}
	if n.Channel > 0 && int(channel)+1 != n.Channel {
		return NavNone
	}
	if value == 0 {
		return NavNone
	}

	switch cc {
	case n.PrevCC:
		return NavPrevious
	case n.NextCC:
		return NavNext
	}
	return NavNone
}

// IsDrumTrigger reports whether msg is a note-on for one of the pads
func IsDrumTrigger(msg gomidi.Message) bool {
	_, _, ok := DrumTrigger(msg)
	return ok
}

// DrumTrigger returns the note and velocity of a pad note-on
func DrumTrigger(msg gomidi.Message) (note, velocity uint8, ok bool) {
	var channel uint8
	if !msg.GetNoteOn(&channel, &note, &velocity) || velocity == 0 {
		return 0, 0, false
	}
	if !kit.IsPadNote(note) {
		return 0, 0, false
	}
	return note, velocity, true
}
