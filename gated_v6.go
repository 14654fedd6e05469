//go:build pulse_v6 || pulse_v8 || pulse_v12 || pulse_v13 || pulse_v14 || pulse_v15

package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"github.com/auroralaboratories/pulse-binding/capi"
)

// DirectionValid asks the library whether d is a valid direction mask.
func DirectionValid(d capi.Direction) bool {
	return C.pa_direction_valid(C.pa_direction_t(d)) != 0
}

// DirectionString returns the library's name for d ("output", "input",
// "bidirectional" or "invalid").
func DirectionString(d capi.Direction) string {
	return goString(C.pa_direction_to_string(C.pa_direction_t(d)))
}
