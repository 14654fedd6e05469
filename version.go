package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"fmt"

	"github.com/auroralaboratories/pulse-binding/version"
)

// Version of this binding.
const Version = `0.3.0`

// LibraryVersion returns the version of the libpulse actually loaded, e.g.
// "15.0.0".
func LibraryVersion() string {
	return goString(C.pa_get_library_version())
}

// HeaderVersion returns the libpulse version the binding was compiled
// against.
func HeaderVersion() string {
	return fmt.Sprintf("%d.%d.%d", C.PA_MAJOR, C.PA_MINOR, C.PA_MICRO)
}

// CheckLibraryVersion fails with ErrVersionMismatch when the loaded library
// is older than the compile-time target.
func CheckLibraryVersion() error {
	return version.CheckLibrary(LibraryVersion())
}
