package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/internal/callback"
	"github.com/auroralaboratories/pulse-binding/internal/handle"
)

func userdata(t callback.Token) unsafe.Pointer {
	return C.pulse_userdata(C.uintptr_t(t))
}

func tokenOf(userdata unsafe.Pointer) callback.Token {
	return callback.Token(uintptr(userdata))
}

func usecOf(d time.Duration) C.pa_usec_t {
	if d < 0 {
		d = 0
	}

	return C.pa_usec_t(d / time.Microsecond)
}

// A TimeEvent fires its callback once the timer elapses, and again after
// every Restart.
type TimeEvent struct {
	h       *handle.Owned[C.pa_time_event]
	slot    *callback.MultiUse
	restart func(*C.pa_time_event, time.Duration)
}

// NewTimeEvent arms a timer on m that fires after the given delay.
func NewTimeEvent(m Mainloop, after time.Duration, fn func()) (*TimeEvent, error) {
	api := m.api()

	if api == nil {
		return nil, fmt.Errorf("time event: %w", ErrNullHandle)
	}

	slot := callback.NewMultiUse(nil)
	tok := slot.Set(fn)

	return newTimeEvent(
		C.pulse_time_new(api, usecOf(after), userdata(tok)),
		slot,
		func(e *C.pa_time_event) {
			C.pulse_time_free(api, e)
		},
		func(e *C.pa_time_event, after time.Duration) {
			C.pulse_time_restart(api, e, usecOf(after))
		},
	)
}

func newTimeEvent(ptr *C.pa_time_event, slot *callback.MultiUse, free func(*C.pa_time_event), restart func(*C.pa_time_event, time.Duration)) (*TimeEvent, error) {
	h, err := handle.FromOwned(`time event`, ptr, func(e *C.pa_time_event) {
		free(e)
		slot.Close()
	})

	if err != nil {
		slot.Close()
		return nil, err
	}

	return &TimeEvent{
		h:       h,
		slot:    slot,
		restart: restart,
	}, nil
}

// Restart re-arms the timer to fire after the given delay.
func (self *TimeEvent) Restart(after time.Duration) error {
	e, err := self.h.Get()

	if err != nil {
		return err
	}

	self.restart(e, after)
	return nil
}

// Close disarms and frees the timer.
func (self *TimeEvent) Close() error {
	return self.h.Close()
}

// A DeferEvent fires on every mainloop iteration while it is enabled.
type DeferEvent struct {
	api  *C.pa_mainloop_api
	h    *handle.Owned[C.pa_defer_event]
	slot *callback.MultiUse
}

func NewDeferEvent(m Mainloop, fn func()) (*DeferEvent, error) {
	api := m.api()

	if api == nil {
		return nil, fmt.Errorf("defer event: %w", ErrNullHandle)
	}

	slot := callback.NewMultiUse(nil)
	tok := slot.Set(fn)

	h, err := handle.FromOwned(`defer event`, C.pulse_defer_new(api, userdata(tok)), func(e *C.pa_defer_event) {
		C.pulse_defer_free(api, e)
		slot.Close()
	})

	if err != nil {
		slot.Close()
		return nil, err
	}

	return &DeferEvent{
		api:  api,
		h:    h,
		slot: slot,
	}, nil
}

func (self *DeferEvent) Enable(enabled bool) error {
	e, err := self.h.Get()

	if err != nil {
		return err
	}

	C.pulse_defer_enable(self.api, e, cbool(enabled))
	return nil
}

func (self *DeferEvent) Close() error {
	return self.h.Close()
}

// Quit asks the mainloop behind m to stop with the given return value.
func Quit(m Mainloop, retval int) {
	if api := m.api(); api != nil {
		C.pulse_api_quit(api, C.int(retval))
	}
}

func mainloopOnce(m Mainloop, fn func()) {
	api := m.api()

	if api == nil {
		return
	}

	if tok := m.scope().Once(fn); tok != 0 {
		C.pa_mainloop_api_once(
			api,
			(*[0]byte)(unsafe.Pointer(C.goMainloopOnce)),
			userdata(tok),
		)
	}
}

// RTTimeNew arms a timer on the context's mainloop using the monotonic clock.
func (self *Context) RTTimeNew(after time.Duration, fn func()) (*TimeEvent, error) {
	c, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	api := self.mainloop.api()
	slot := callback.NewMultiUse(nil)
	tok := slot.Set(fn)

	ptr := C.pa_context_rttime_new(
		c,
		C.pa_rtclock_now()+usecOf(after),
		(C.pa_time_event_cb_t)(unsafe.Pointer(C.goTimeEvent)),
		userdata(tok),
	)

	return newTimeEvent(
		ptr,
		slot,
		func(e *C.pa_time_event) {
			C.pulse_time_free(api, e)
		},
		func(e *C.pa_time_event, after time.Duration) {
			if c := self.h.Ptr(); c != nil {
				C.pa_context_rttime_restart(c, e, C.pa_rtclock_now()+usecOf(after))
			}
		},
	)
}

// Now returns the monotonic clock used by RTTimeNew.
func Now() capi.Usec {
	return capi.Usec(C.pa_rtclock_now())
}
