// Package simple wraps the blocking libpulse-simple API: one stream per
// connection, no mainloop and no callbacks. It suits command line tools that
// only play or record a single stream.
package simple

// #include <stdlib.h>
// #include <pulse/simple.h>
// #include <pulse/error.h>
// #cgo pkg-config: libpulse-simple
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/internal/handle"
	"github.com/ghetzel/go-stockutil/log"
)

// Error is a failure reported by libpulse-simple.
type Error struct {
	Op   string
	Code capi.Code
}

func (self Error) Error() string {
	return fmt.Sprintf("%s: %s", self.Op, C.GoString(C.pa_strerror(C.int(self.Code))))
}

// Options describes the stream to open.
type Options struct {
	// Server is the server to connect to; empty for the default.
	Server string

	// Name identifies the application to the server.
	Name string

	Direction capi.StreamDirection

	// Device is the sink or source; empty for the default.
	Device string

	// StreamName is a description of the stream (e.g. the track title).
	StreamName string

	SampleSpec capi.SampleSpec
	ChannelMap *capi.ChannelMap
	BufferAttr *capi.BufferAttr
}

func (self Options) validate() error {
	switch self.Direction {
	case capi.StreamPlayback, capi.StreamRecord:
	default:
		return fmt.Errorf("simple: direction must be playback or record")
	}

	if !self.SampleSpec.Valid() {
		return fmt.Errorf("simple: invalid sample spec %+v", self.SampleSpec)
	}

	if self.ChannelMap != nil && !self.ChannelMap.CompatibleWith(self.SampleSpec) {
		return fmt.Errorf("simple: channel map does not match %d channels", self.SampleSpec.Channels)
	}

	return nil
}

// A Stream is a blocking connection carrying a single stream.
type Stream struct {
	h         *handle.Owned[C.pa_simple]
	direction capi.StreamDirection
	spec      capi.SampleSpec
}

func New(options Options) (*Stream, error) {
	if err := options.validate(); err != nil {
		return nil, err
	}

	cserver := optString(options.Server)
	defer C.free(unsafe.Pointer(cserver))
	cname := optString(options.Name)
	defer C.free(unsafe.Pointer(cname))
	cdev := optString(options.Device)
	defer C.free(unsafe.Pointer(cdev))
	cstream := optString(options.StreamName)
	defer C.free(unsafe.Pointer(cstream))

	var code C.int

	ptr := C.pa_simple_new(
		cserver,
		cname,
		C.pa_stream_direction_t(options.Direction),
		cdev,
		cstream,
		(*C.pa_sample_spec)(unsafe.Pointer(&options.SampleSpec)),
		(*C.pa_channel_map)(unsafe.Pointer(options.ChannelMap)),
		(*C.pa_buffer_attr)(unsafe.Pointer(options.BufferAttr)),
		&code,
	)

	if ptr == nil {
		return nil, Error{Op: `connect`, Code: capi.Code(code)}
	}

	h, err := handle.FromOwned(`simple stream`, ptr, func(s *C.pa_simple) {
		C.pa_simple_free(s)
	})

	if err != nil {
		return nil, err
	}

	log.Debugf("simple: %s stream %q open (%d Hz, %d channels)", directionName(options.Direction), options.StreamName, options.SampleSpec.Rate, options.SampleSpec.Channels)

	return &Stream{
		h:         h,
		direction: options.Direction,
		spec:      options.SampleSpec,
	}, nil
}

func (self *Stream) SampleSpec() capi.SampleSpec {
	return self.spec
}

// Write blocks until data has been queued for playback.
func (self *Stream) Write(data []byte) (int, error) {
	if self.direction != capi.StreamPlayback {
		return 0, fmt.Errorf("simple: write on a record stream")
	}

	s, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	if len(data) == 0 {
		return 0, nil
	}

	var code C.int

	if C.pa_simple_write(s, unsafe.Pointer(&data[0]), C.size_t(len(data)), &code) < 0 {
		return 0, Error{Op: `write`, Code: capi.Code(code)}
	}

	return len(data), nil
}

// Read blocks until p is completely filled with captured audio.
func (self *Stream) Read(p []byte) (int, error) {
	if self.direction != capi.StreamRecord {
		return 0, fmt.Errorf("simple: read on a playback stream")
	}

	s, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	if len(p) == 0 {
		return 0, nil
	}

	var code C.int

	if C.pa_simple_read(s, unsafe.Pointer(&p[0]), C.size_t(len(p)), &code) < 0 {
		return 0, Error{Op: `read`, Code: capi.Code(code)}
	}

	return len(p), nil
}

// Drain blocks until everything written has been played.
func (self *Stream) Drain() error {
	return self.call(`drain`, func(s *C.pa_simple, code *C.int) C.int {
		return C.pa_simple_drain(s, code)
	})
}

// Flush drops any data not yet played or read.
func (self *Stream) Flush() error {
	return self.call(`flush`, func(s *C.pa_simple, code *C.int) C.int {
		return C.pa_simple_flush(s, code)
	})
}

// Latency returns the playback or record latency.
func (self *Stream) Latency() (capi.Usec, error) {
	s, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	var code C.int

	usec := C.pa_simple_get_latency(s, &code)

	if capi.Usec(usec) == capi.UsecInvalid {
		return 0, Error{Op: `latency`, Code: capi.Code(code)}
	}

	return capi.Usec(usec), nil
}

// Close drains pending playback and releases the connection.
func (self *Stream) Close() error {
	var err error

	if self.direction == capi.StreamPlayback && !self.h.Released() {
		err = self.Drain()
	}

	if cerr := self.h.Close(); cerr != nil {
		return cerr
	}

	return err
}

func (self *Stream) call(op string, fn func(*C.pa_simple, *C.int) C.int) error {
	s, err := self.h.Get()

	if err != nil {
		return err
	}

	var code C.int

	if fn(s, &code) < 0 {
		return Error{Op: op, Code: capi.Code(code)}
	}

	return nil
}

func optString(s string) *C.char {
	if s == `` {
		return nil
	}

	return C.CString(s)
}
