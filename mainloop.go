package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/internal/callback"
	"github.com/auroralaboratories/pulse-binding/internal/handle"
	"github.com/ghetzel/go-stockutil/log"
)

type LockFunc func() error

// A Mainloop drives the event dispatch of the objects created on it.
type Mainloop interface {
	// Lock and Unlock guard native objects against the dispatch thread. They
	// are no-ops for mainloops that dispatch on the caller's goroutine.
	Lock()
	Unlock()

	api() *C.pa_mainloop_api
	scope() *callback.Scope
}

// ThreadedMainloop runs dispatch on a thread of its own. Every call into a
// context, stream or operation created on it must happen between Lock and
// Unlock, except from within callbacks, which already hold the lock.
type ThreadedMainloop struct {
	h       *handle.Owned[C.pa_threaded_mainloop]
	once    *callback.Scope
	running atomic.Bool
}

func NewThreadedMainloop() (*ThreadedMainloop, error) {
	ptr := C.pa_threaded_mainloop_new()

	h, err := handle.FromOwned(`threaded mainloop`, ptr, func(m *C.pa_threaded_mainloop) {
		C.pa_threaded_mainloop_free(m)
	})

	if err != nil {
		return nil, fmt.Errorf("Failed to create PulseAudio mainloop: %w", err)
	}

	return &ThreadedMainloop{
		h:    h,
		once: callback.NewScope(nil),
	}, nil
}

func (self *ThreadedMainloop) ptr() *C.pa_threaded_mainloop {
	return self.h.Ptr()
}

func (self *ThreadedMainloop) api() *C.pa_mainloop_api {
	if m := self.ptr(); m != nil {
		return C.pa_threaded_mainloop_get_api(m)
	}

	return nil
}

func (self *ThreadedMainloop) scope() *callback.Scope {
	return self.once
}

// Start the dispatch thread.
func (self *ThreadedMainloop) Start() error {
	m := self.ptr()

	if m == nil {
		return fmt.Errorf("Cannot operate on undefined PulseAudio mainloop")
	}

	if status := C.pa_threaded_mainloop_start(m); status < 0 {
		return fmt.Errorf("PulseAudio mainloop start failed with code %d", status)
	}

	self.running.Store(true)
	return nil
}

// Stop the dispatch thread. Must not be called with the lock held, nor from
// within a callback.
func (self *ThreadedMainloop) Stop() {
	if m := self.ptr(); m != nil && self.running.CompareAndSwap(true, false) {
		C.pa_threaded_mainloop_stop(m)
	}
}

// InThread reports whether the caller is running on the dispatch thread.
func (self *ThreadedMainloop) InThread() bool {
	if m := self.ptr(); m != nil {
		return C.pa_threaded_mainloop_in_thread(m) != 0
	}

	return false
}

// Acquire an exclusive lock on the mainloop. Callbacks already hold the lock;
// locking again from the dispatch thread would deadlock, so it is skipped.
func (self *ThreadedMainloop) Lock() {
	if m := self.ptr(); m != nil {
		if self.InThread() {
			log.Debugf("pulse: ignoring mainloop lock from the dispatch thread")
			return
		}

		C.pa_threaded_mainloop_lock(m)
	}
}

// Release an exclusive lock on the mainloop.
func (self *ThreadedMainloop) Unlock() {
	if m := self.ptr(); m != nil {
		if self.InThread() {
			return
		}

		C.pa_threaded_mainloop_unlock(m)
	}
}

// Wraps a given function call with a lock
func (self *ThreadedMainloop) LockFunc(wrapLock LockFunc) error {
	self.Lock()
	defer self.Unlock()

	return wrapLock()
}

// Wait for a Signal from the dispatch thread. The lock must be held; it is
// released while waiting.
func (self *ThreadedMainloop) Wait() {
	if m := self.ptr(); m != nil {
		C.pa_threaded_mainloop_wait(m)
	}
}

// Signal all threads blocked in Wait. With waitForAccept the caller blocks
// until a woken thread calls Accept.
func (self *ThreadedMainloop) Signal(waitForAccept bool) {
	if m := self.ptr(); m != nil {
		C.pa_threaded_mainloop_signal(m, cbool(waitForAccept))
	}
}

func (self *ThreadedMainloop) Accept() {
	if m := self.ptr(); m != nil {
		C.pa_threaded_mainloop_accept(m)
	}
}

// RetVal returns the value passed to Quit by the mainloop API.
func (self *ThreadedMainloop) RetVal() int {
	if m := self.ptr(); m != nil {
		return int(C.pa_threaded_mainloop_get_retval(m))
	}

	return 0
}

// SetName names the dispatch thread.
func (self *ThreadedMainloop) SetName(name string) {
	if m := self.ptr(); m != nil {
		cname := C.CString(name)
		defer C.free(unsafe.Pointer(cname))

		C.pa_threaded_mainloop_set_name(m, cname)
	}
}

// Once schedules fn to run once on the dispatch thread.
func (self *ThreadedMainloop) Once(fn func()) {
	mainloopOnce(self, fn)
}

// Close stops the dispatch thread and frees the mainloop. Objects created on
// it must have been closed first.
func (self *ThreadedMainloop) Close() error {
	self.Stop()
	self.once.Close()
	return self.h.Close()
}

func cbool(b bool) C.int {
	if b {
		return 1
	}

	return 0
}
