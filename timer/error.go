package timer

import "errors"

var (
	// ErrNoChips indicates a controller was created without usable chips.
	ErrNoChips = errors.New("timer: no chips")
	// ErrInvalidNumber indicates a timer number outside the controller.
	ErrInvalidNumber = errors.New("timer: invalid number")
	// ErrBusy indicates the requested timer is already acquired.
	ErrBusy = errors.New("timer: busy")
	// ErrNoFreeTimer indicates every timer is acquired.
	ErrNoFreeTimer = errors.New("timer: no free timer")
)
