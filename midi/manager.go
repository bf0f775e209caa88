package midi

import (
	"context"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"drumrack/debug"
)

// PortLister returns the current MIDI input ports
type PortLister func() []drivers.In

// InputManager follows one MIDI input across plug/unplug and turns its
// messages into navigation and trigger events. A MIDI driver must be
// registered by the program (e.g. rtmididrv) for real ports to appear.
type InputManager struct {
	match    string
	nav      Navigator
	ports    PortLister
	mu       sync.RWMutex
	port     string
	stop     func()
	closed   bool
	events   chan Event
	pollRate time.Duration
}

// NewInputManager creates a manager for the first input whose name
// contains match (case-insensitive); an empty match takes the first input.
func NewInputManager(match string, nav Navigator) *InputManager {
	return &InputManager{
		match:    strings.ToLower(match),
		nav:      nav,
		ports:    func() []drivers.In { return gomidi.GetInPorts() },
		events:   make(chan Event, 16),
		pollRate: time.Second,
	}
}

// Events returns a channel of connect/disconnect, navigation and trigger events
func (im *InputManager) Events() <-chan Event {
	return im.events
}

// Port returns the name of the connected input, "" if none
func (im *InputManager) Port() string {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.port
}

// Run starts the polling loop (blocking - run in goroutine)
func (im *InputManager) Run(ctx context.Context) {
	ticker := time.NewTicker(im.pollRate)
	defer ticker.Stop()

	// Initial scan
	im.scan()

	for {
		select {
		case <-ctx.Done():
			im.disconnect()
			im.mu.Lock()
			im.closed = true
			close(im.events)
			im.mu.Unlock()
			return
		case <-ticker.C:
			im.scan()
		}
	}
}

func (im *InputManager) scan() {
	// Get current MIDI ports with timeout (CoreMIDI can hang)
	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- im.ports()
	}()

	var inPorts []drivers.In
	select {
	case inPorts = <-ch:
	case <-time.After(3 * time.Second):
		debug.Log("midi", "port scan timed out")
		return
	}

	current := im.Port()
	if current != "" {
		for _, in := range inPorts {
			if in.String() == current {
				return
			}
		}
		im.disconnect()
		im.emit(Event{Type: InputDisconnected, Port: current})
	}

	in := im.pick(inPorts)
	if in == nil {
		debug.LogEvery(30, "midi", "no input matching %q", im.match)
		return
	}

	stop, err := gomidi.ListenTo(in, im.handle)
	if err != nil {
		debug.Log("midi", "listen %s: %v", in.String(), err)
		return
	}

	im.mu.Lock()
	im.port = in.String()
	im.stop = stop
	im.mu.Unlock()

	debug.Log("midi", "connected %s", in.String())
	im.emit(Event{Type: InputConnected, Port: in.String()})
}

func (im *InputManager) pick(inPorts []drivers.In) drivers.In {
	for _, in := range inPorts {
		if im.match == "" || strings.Contains(strings.ToLower(in.String()), im.match) {
			return in
		}
	}
	return nil
}

func (im *InputManager) handle(msg gomidi.Message, timestampms int32) {
	port := im.Port()

	if action := im.nav.Process(msg); action != NavNone {
		im.emit(Event{Type: InputNav, Port: port, Action: action})
		return
	}
	if note, velocity, ok := DrumTrigger(msg); ok {
		im.emit(Event{Type: InputTrigger, Port: port, Note: note, Velocity: velocity})
	}
}

// emit drops the event if nobody is keeping up
func (im *InputManager) emit(e Event) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	if im.closed {
		return
	}
	select {
	case im.events <- e:
	default:
	}
}

func (im *InputManager) disconnect() {
	im.mu.Lock()
	stop := im.stop
	im.stop = nil
	im.port = ""
	im.mu.Unlock()

	// handle takes the read lock, so stop listening outside it
	if stop != nil {
		stop()
	}
}
