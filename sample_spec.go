package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
)

const (
	DEFAULT_SAMPLE_RATE  = 44100
	DEFAULT_NUM_CHANNELS = 2
)

// The capi mirrors share their layout with the C structs, so pointers to them
// are handed to the library as-is.

func sampleSpecPtr(spec *capi.SampleSpec) *C.pa_sample_spec {
	return (*C.pa_sample_spec)(unsafe.Pointer(spec))
}

func channelMapPtr(cmap *capi.ChannelMap) *C.pa_channel_map {
	return (*C.pa_channel_map)(unsafe.Pointer(cmap))
}

func cvolumePtr(cv *capi.CVolume) *C.pa_cvolume {
	return (*C.pa_cvolume)(unsafe.Pointer(cv))
}

func bufferAttrPtr(attr *capi.BufferAttr) *C.pa_buffer_attr {
	return (*C.pa_buffer_attr)(unsafe.Pointer(attr))
}

func sampleSpecOf(spec *C.pa_sample_spec) capi.SampleSpec {
	if spec == nil {
		return capi.SampleSpec{Format: capi.SampleInvalid}
	}

	return *(*capi.SampleSpec)(unsafe.Pointer(spec))
}

func channelMapOf(cmap *C.pa_channel_map) capi.ChannelMap {
	if cmap == nil {
		return capi.ChannelMap{}
	}

	return *(*capi.ChannelMap)(unsafe.Pointer(cmap))
}

func cvolumeOf(cv *C.pa_cvolume) capi.CVolume {
	if cv == nil {
		return capi.CVolume{}
	}

	return *(*capi.CVolume)(unsafe.Pointer(cv))
}

// DefaultSampleSpec is CD-quality signed 16-bit stereo.
func DefaultSampleSpec() capi.SampleSpec {
	return capi.SampleSpec{
		Format:   capi.SampleS16LE,
		Rate:     DEFAULT_SAMPLE_RATE,
		Channels: DEFAULT_NUM_CHANNELS,
	}
}

// GetSampleFormat parses a format name such as "s16le" or "float32ne" the
// way the PulseAudio tools do.
func GetSampleFormat(name string) capi.SampleFormat {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return capi.SampleFormat(C.pa_parse_sample_format(cname))
}

// SampleSpecString renders spec the way pactl prints it, e.g. "s16le 2ch 44100Hz".
func SampleSpecString(spec capi.SampleSpec) string {
	buf := make([]byte, C.PA_SAMPLE_SPEC_SNPRINT_MAX)

	C.pa_sample_spec_snprint((*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)), sampleSpecPtr(&spec))

	return cstringFromBuf(buf)
}

// DefaultChannelMap returns the standard layout for the given channel count.
func DefaultChannelMap(channels uint8) (capi.ChannelMap, bool) {
	var cmap capi.ChannelMap

	if C.pa_channel_map_init_auto(channelMapPtr(&cmap), C.uint(channels), C.PA_CHANNEL_MAP_DEFAULT) == nil {
		return cmap, false
	}

	return cmap, true
}

// ParseChannelMap parses a comma-separated list of positions or a well-known
// layout name such as "stereo" or "surround-51".
func ParseChannelMap(text string) (capi.ChannelMap, bool) {
	var cmap capi.ChannelMap

	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	if C.pa_channel_map_parse(channelMapPtr(&cmap), ctext) == nil {
		return cmap, false
	}

	return cmap, true
}

func ChannelMapString(cmap capi.ChannelMap) string {
	buf := make([]byte, C.PA_CHANNEL_MAP_SNPRINT_MAX)

	C.pa_channel_map_snprint((*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)), channelMapPtr(&cmap))

	return cstringFromBuf(buf)
}

func cstringFromBuf(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}

	return string(buf)
}
