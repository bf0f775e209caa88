package midi

// NavAction is a preset navigation request decoded from a MIDI message
type NavAction int

const (
	NavNone NavAction = iota
	NavNext
	NavPrevious
)

func (a NavAction) String() string {
	switch a {
	case NavNext:
		return "next"
	case NavPrevious:
		return "previous"
	default:
		return "none"
	}
}

// EventType identifies what an Event carries
type EventType int

const (
	InputConnected EventType = iota
	InputDisconnected
	InputNav
	InputTrigger
)

// Event is emitted by the InputManager
type Event struct {
	Type     EventType
	Port     string
	Action   NavAction // InputNav
	Note     uint8     // InputTrigger
	Velocity uint8     // InputTrigger
}
