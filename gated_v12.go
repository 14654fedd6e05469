//go:build pulse_v12 || pulse_v13 || pulse_v14 || pulse_v15

package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
)

// ParseEncoding returns the encoding named name (e.g. "pcm", "ac3-iec61937"),
// or capi.EncodingInvalid.
func ParseEncoding(name string) capi.Encoding {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return capi.Encoding(C.pa_encoding_from_string(cname))
}
