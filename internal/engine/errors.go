package engine

import "errors"

var (
	// ErrConfiguration is returned by New when the board cannot be built.
	// The concrete reason is wrapped alongside it.
	ErrConfiguration = errors.New("engine: invalid configuration")

	// ErrBusy is returned for player commands while a resolution is running.
	ErrBusy = errors.New("engine: board is resolving")
)
