package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/internal/callback"
	"github.com/auroralaboratories/pulse-binding/internal/handle"
)

// An Operation tracks one asynchronous request. Its completion callback
// fires at most once; Cancel guarantees it never fires and releases it.
type Operation struct {
	h         *handle.Owned[C.pa_operation]
	scope     *callback.Scope
	token     callback.Token
	stateSlot *callback.MultiUse
}

// newOperation adopts the reference returned by a request function. When the
// request failed (nil), the callback will never run, so its box is released
// here and failure is reported as an error.
func newOperation(ptr *C.pa_operation, scope *callback.Scope, token callback.Token, failure func() error) (*Operation, error) {
	if ptr == nil {
		scope.Cancel(token)

		if err := failure(); err != nil {
			return nil, err
		}

		return nil, fmt.Errorf("operation: %w", ErrNullHandle)
	}

	op := &Operation{
		scope:     scope,
		token:     token,
		stateSlot: callback.NewMultiUse(nil),
	}

	op.h, _ = handle.FromOwned(`operation`, ptr, func(o *C.pa_operation) {
		C.pa_operation_set_state_callback(o, nil, nil)
		op.stateSlot.Close()
		C.pa_operation_unref(o)
	})

	return op, nil
}

func (self *Operation) ptr() *C.pa_operation {
	if self.h == nil {
		return nil
	}

	return self.h.Ptr()
}

// State reports whether the operation is still running, done or cancelled.
func (self *Operation) State() capi.OperationState {
	if o := self.ptr(); o != nil {
		return capi.OperationState(C.pa_operation_get_state(o))
	}

	return capi.OperationCancelled
}

// Cancel stops the operation. Its completion callback is released and will
// not be called.
func (self *Operation) Cancel() {
	if o := self.ptr(); o != nil && self.State() == capi.OperationRunning {
		C.pa_operation_cancel(o)
	}

	self.scope.Cancel(self.token)
}

// SetStateCallback registers fn to be notified of every state change.
// Passing nil removes the callback.
func (self *Operation) SetStateCallback(fn func()) {
	o := self.ptr()

	if o == nil {
		return
	}

	if fn == nil {
		C.pa_operation_set_state_callback(o, nil, nil)
		self.stateSlot.Close()
		return
	}

	tok := self.stateSlot.Set(fn)

	C.pa_operation_set_state_callback(
		o,
		(C.pa_operation_notify_cb_t)(unsafe.Pointer(C.goOperationNotify)),
		userdata(tok),
	)
}

// Close drops the reference to the operation. The request itself keeps
// running; its completion callback still fires unless cancelled.
func (self *Operation) Close() error {
	if self == nil || self.h == nil {
		return nil
	}

	return self.h.Close()
}
