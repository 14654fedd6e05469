//go:build pulse_v15

package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"unsafe"
)

// SendMessageToObject sends message with params to the server object at path
// (e.g. "/core"). fn receives the object's reply.
func (self *Context) SendMessageToObject(path string, message string, params string, fn func(success bool, response string)) (*Operation, error) {
	c, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	cmsg := C.CString(message)
	defer C.free(unsafe.Pointer(cmsg))
	cparams := optString(params)
	defer C.free(unsafe.Pointer(cparams))

	if fn == nil {
		fn = func(bool, string) {}
	}

	tok := self.scope.Once(fn)

	ptr := C.pa_context_send_message_to_object(
		c,
		cpath,
		cmsg,
		cparams,
		(C.pa_context_string_cb_t)(unsafe.Pointer(C.goContextString)),
		userdata(tok),
	)

	return newOperation(ptr, self.scope, tok, self.Errno)
}
