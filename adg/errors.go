package adg

import "errors"

// Import failures. Each is wrapped with the underlying cause.
var (
	ErrIO     = errors.New("adg: unreadable file")
	ErrDecode = errors.New("adg: bad container")
	ErrFormat = errors.New("adg: malformed document")
)
