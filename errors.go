package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"errors"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/internal/callback"
	"github.com/auroralaboratories/pulse-binding/internal/handle"
	"github.com/auroralaboratories/pulse-binding/version"
)

var (
	ErrNullHandle      = handle.ErrNullHandle
	ErrAlreadyReleased = handle.ErrAlreadyReleased
	ErrCallbackPanic   = callback.ErrCallbackPanic
	ErrVersionMismatch = version.ErrVersionMismatch
)

// Error is a failure reported by the PulseAudio library.
type Error struct {
	Code capi.Code
}

func (self Error) Error() string {
	return C.GoString(C.pa_strerror(C.int(self.Code)))
}

// Is matches any Error carrying the same code.
func (self Error) Is(target error) bool {
	var other Error

	if errors.As(target, &other) {
		return other.Code == self.Code
	}

	return false
}

// errorFromReturn converts a native return value into an error: zero and
// positive values are success.
func errorFromReturn(ret C.int) error {
	if ret >= 0 {
		return nil
	}

	return Error{Code: capi.CodeFromReturn(int(ret))}
}

// IsCode reports whether err is a PulseAudio error with the given code.
func IsCode(err error, code capi.Code) bool {
	return errors.Is(err, Error{Code: code})
}
