package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"unsafe"
)

// The lookups below are what libpulse itself uses to fill in client
// properties such as application.process.user.

const utilBufferSize = 1024

func utilLookup(get func(*C.char, C.size_t) *C.char) (string, bool) {
	buf := make([]byte, utilBufferSize)

	if get((*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf))) == nil {
		return ``, false
	}

	return cstringFromBuf(buf), true
}

// UserName returns the name of the current user.
func UserName() (string, bool) {
	return utilLookup(func(s *C.char, l C.size_t) *C.char { return C.pa_get_user_name(s, l) })
}

func HostName() (string, bool) {
	return utilLookup(func(s *C.char, l C.size_t) *C.char { return C.pa_get_host_name(s, l) })
}

// FQDN returns the fully qualified domain name of the host, falling back to
// the host name.
func FQDN() (string, bool) {
	return utilLookup(func(s *C.char, l C.size_t) *C.char { return C.pa_get_fqdn(s, l) })
}

func HomeDir() (string, bool) {
	return utilLookup(func(s *C.char, l C.size_t) *C.char { return C.pa_get_home_dir(s, l) })
}

// BinaryName returns the file name of the running executable.
func BinaryName() (string, bool) {
	return utilLookup(func(s *C.char, l C.size_t) *C.char { return C.pa_get_binary_name(s, l) })
}

// PathFilename returns the last component of path.
func PathFilename(path string) string {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	return goString(C.pa_path_get_filename(cpath))
}
