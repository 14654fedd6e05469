package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"errors"
	"fmt"
	"time"

	"github.com/auroralaboratories/pulse-binding/internal/callback"
	"github.com/auroralaboratories/pulse-binding/internal/handle"
)

// ErrMainloopQuit is returned by Iterate once the loop has been asked to quit
// (or failed).
var ErrMainloopQuit = errors.New("mainloop quit")

// StandardMainloop dispatches on whichever goroutine calls Iterate or Run.
// Callbacks fire from inside those calls, so no locking is needed as long as
// a single goroutine drives the loop.
type StandardMainloop struct {
	h    *handle.Owned[C.pa_mainloop]
	once *callback.Scope
}

func NewStandardMainloop() (*StandardMainloop, error) {
	h, err := handle.FromOwned(`mainloop`, C.pa_mainloop_new(), func(m *C.pa_mainloop) {
		C.pa_mainloop_free(m)
	})

	if err != nil {
		return nil, fmt.Errorf("Failed to create PulseAudio mainloop: %w", err)
	}

	return &StandardMainloop{
		h:    h,
		once: callback.NewScope(nil),
	}, nil
}

func (self *StandardMainloop) Lock()   {}
func (self *StandardMainloop) Unlock() {}

func (self *StandardMainloop) api() *C.pa_mainloop_api {
	if m := self.h.Ptr(); m != nil {
		return C.pa_mainloop_get_api(m)
	}

	return nil
}

func (self *StandardMainloop) scope() *callback.Scope {
	return self.once
}

// Iterate runs a single iteration of the loop, optionally blocking until
// there is something to dispatch. It returns the number of dispatched sources.
func (self *StandardMainloop) Iterate(block bool) (int, error) {
	m, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	var retval C.int

	n := C.pa_mainloop_iterate(m, cbool(block), &retval)

	if n < 0 {
		return 0, fmt.Errorf("%w (status %d)", ErrMainloopQuit, int(retval))
	}

	return int(n), nil
}

// Run dispatches until Quit is called, returning the quit value.
func (self *StandardMainloop) Run() (int, error) {
	m, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	var retval C.int

	if C.pa_mainloop_run(m, &retval) < 0 {
		return int(retval), fmt.Errorf("mainloop run failed with status %d", int(retval))
	}

	return int(retval), nil
}

func (self *StandardMainloop) Quit(retval int) {
	if m := self.h.Ptr(); m != nil {
		C.pa_mainloop_quit(m, C.int(retval))
	}
}

// Wakeup interrupts a blocking Iterate or Poll.
func (self *StandardMainloop) Wakeup() {
	if m := self.h.Ptr(); m != nil {
		C.pa_mainloop_wakeup(m)
	}
}

// Prepare, Poll and Dispatch are the three stages of an iteration, for
// callers integrating the loop into their own poll cycle. A negative timeout
// blocks indefinitely.
func (self *StandardMainloop) Prepare(timeout time.Duration) error {
	m, err := self.h.Get()

	if err != nil {
		return err
	}

	usec := C.int(-1)

	if timeout >= 0 {
		usec = C.int(timeout / time.Microsecond)
	}

	if C.pa_mainloop_prepare(m, usec) < 0 {
		return fmt.Errorf("mainloop prepare failed")
	}

	return nil
}

func (self *StandardMainloop) Poll() (int, error) {
	m, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	n := C.pa_mainloop_poll(m)

	if n < 0 {
		return 0, fmt.Errorf("mainloop poll failed")
	}

	return int(n), nil
}

func (self *StandardMainloop) Dispatch() (int, error) {
	m, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	n := C.pa_mainloop_dispatch(m)

	if n < 0 {
		return 0, fmt.Errorf("mainloop dispatch failed")
	}

	return int(n), nil
}

// Once schedules fn to run once on the next iteration.
func (self *StandardMainloop) Once(fn func()) {
	mainloopOnce(self, fn)
}

func (self *StandardMainloop) Close() error {
	self.once.Close()
	return self.h.Close()
}
