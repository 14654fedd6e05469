//go:build pulse_v13 || pulse_v14 || pulse_v15

package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
)

// MakeThreadRealtime raises the calling OS thread to realtime scheduling at
// the given priority. Call runtime.LockOSThread first.
func MakeThreadRealtime(priority int) error {
	if ret := C.pa_thread_make_realtime(C.int(priority)); ret < 0 {
		return Error{Code: capi.ErrNotSupported}
	}

	return nil
}

// OnceUnlocked runs fn once on the dispatch thread without holding the
// mainloop lock, while the caller blocks until it has finished. It must be
// called with the lock held.
func (self *ThreadedMainloop) OnceUnlocked(fn func()) {
	m := self.ptr()

	if m == nil {
		return
	}

	if tok := self.once.Once(fn); tok != 0 {
		C.pa_threaded_mainloop_once_unlocked(
			m,
			(*[0]byte)(unsafe.Pointer(C.goThreadedOnce)),
			userdata(tok),
		)
	}
}

// SampleFormat reads the format.sample_format property of a PCM format.
func (self *Format) SampleFormat() (capi.SampleFormat, error) {
	f, err := self.h.Get()

	if err != nil {
		return capi.SampleInvalid, err
	}

	var v C.pa_sample_format_t

	if err := errorFromReturn(C.pa_format_info_get_sample_format(f, &v)); err != nil {
		return capi.SampleInvalid, err
	}

	return capi.SampleFormat(v), nil
}

func (self *Format) Rate() (uint32, error) {
	f, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	var v C.uint32_t

	if err := errorFromReturn(C.pa_format_info_get_rate(f, &v)); err != nil {
		return 0, err
	}

	return uint32(v), nil
}

func (self *Format) Channels() (uint8, error) {
	f, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	var v C.uint8_t

	if err := errorFromReturn(C.pa_format_info_get_channels(f, &v)); err != nil {
		return 0, err
	}

	return uint8(v), nil
}

func (self *Format) ChannelMap() (capi.ChannelMap, error) {
	var cmap capi.ChannelMap

	f, err := self.h.Get()

	if err != nil {
		return cmap, err
	}

	if err := errorFromReturn(C.pa_format_info_get_channel_map(f, channelMapPtr(&cmap))); err != nil {
		return cmap, err
	}

	return cmap, nil
}
