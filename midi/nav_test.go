package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
)

func TestNavigatorProcess(t *testing.T) {
	nav := DefaultNavigator()

	assert.Equal(t, NavPrevious, nav.Process(gomidi.ControlChange(0, 1, 127)))
	assert.Equal(t, NavNext, nav.Process(gomidi.ControlChange(5, 2, 64)))
	assert.Equal(t, NavNone, nav.Process(gomidi.ControlChange(0, 2, 0)), "zero value is a release")
	assert.Equal(t, NavNone, nav.Process(gomidi.ControlChange(0, 7, 127)))
	assert.Equal(t, NavNone, nav.Process(gomidi.NoteOn(0, 36, 100)))
}

func TestNavigatorChannelFilter(t *testing.T) {
	nav := Navigator{Channel: 10, PrevCC: 20, NextCC: 21}

	// channel 10 is index 9 on the wire
	assert.Equal(t, NavNext, nav.Process(gomidi.ControlChange(9, 21, 1)))
	assert.Equal(t, NavNone, nav.Process(gomidi.ControlChange(0, 21, 1)))
}

func TestDrumTrigger(t *testing.T) {
	note, vel, ok := DrumTrigger(gomidi.NoteOn(9, 38, 90))
	assert.True(t, ok)
	assert.Equal(t, uint8(38), note)
	assert.Equal(t, uint8(90), vel)

	assert.False(t, IsDrumTrigger(gomidi.NoteOn(9, 60, 90)), "not a pad note")
	assert.False(t, IsDrumTrigger(gomidi.NoteOn(9, 36, 0)), "velocity zero")
	assert.False(t, IsDrumTrigger(gomidi.NoteOff(9, 36)))
	assert.False(t, IsDrumTrigger(gomidi.ControlChange(0, 36, 100)))
}

func TestNavActionString(t *testing.T) {
	assert.Equal(t, "next", NavNext.String())
	assert.Equal(t, "previous", NavPrevious.String())
	assert.Equal(t, "none", NavNone.String())
}
