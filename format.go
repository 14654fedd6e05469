package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/internal/handle"
)

// Format is an owned stream format: an encoding plus format properties such
// as the rate or channel count. It is what passthrough streams and sinks
// negotiate with.
type Format struct {
	h *handle.Owned[C.pa_format_info]
}

func ownFormat(ptr *C.pa_format_info) (*Format, error) {
	h, err := handle.FromOwned(`format info`, ptr, func(f *C.pa_format_info) {
		C.pa_format_info_free(f)
	})

	if err != nil {
		return nil, err
	}

	return &Format{h: h}, nil
}

// NewFormat returns a format with the given encoding and no properties.
func NewFormat(encoding capi.Encoding) (*Format, error) {
	f, err := ownFormat(C.pa_format_info_new())

	if err != nil {
		return nil, err
	}

	f.h.Ptr().encoding = C.pa_encoding_t(encoding)

	return f, nil
}

// ParseFormat reads the textual form produced by String, e.g.
// `pcm, format.rate = "44100"`.
func ParseFormat(text string) (*Format, error) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	f, err := ownFormat(C.pa_format_info_from_string(ctext))

	if err != nil {
		return nil, fmt.Errorf("cannot parse format %q: %w", text, err)
	}

	return f, nil
}

// FormatFromSampleSpec builds a PCM format from spec. cmap may be nil.
func FormatFromSampleSpec(spec capi.SampleSpec, cmap *capi.ChannelMap) (*Format, error) {
	var cm *C.pa_channel_map

	if cmap != nil {
		cm = channelMapPtr(cmap)
	}

	return ownFormat(C.pa_format_info_from_sample_spec(sampleSpecPtr(&spec), cm))
}

func (self *Format) ptr() *C.pa_format_info {
	return self.h.Ptr()
}

func (self *Format) Copy() (*Format, error) {
	f, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	return ownFormat(C.pa_format_info_copy(f))
}

func (self *Format) Encoding() capi.Encoding {
	if f := self.ptr(); f != nil {
		return capi.Encoding(f.encoding)
	}

	return capi.EncodingInvalid
}

func (self *Format) SetEncoding(encoding capi.Encoding) {
	if f := self.ptr(); f != nil {
		f.encoding = C.pa_encoding_t(encoding)
	}
}

// Properties is a view of the format's property list. It is valid until the
// format is closed.
func (self *Format) Properties() ProplistRef {
	if f := self.ptr(); f != nil {
		return weakProplist(f.plist)
	}

	return ProplistRef{}
}

// Info returns a copy of the encoding and properties.
func (self *Format) Info() FormatInfo {
	return formatInfoOf(self.ptr())
}

func (self *Format) Valid() bool {
	f := self.ptr()
	return f != nil && C.pa_format_info_valid(f) != 0
}

func (self *Format) IsPCM() bool {
	f := self.ptr()
	return f != nil && C.pa_format_info_is_pcm(f) != 0
}

// IsCompatibleWith reports whether this format can be used where other is
// expected, e.g. whether a stream format fits a sink format.
func (self *Format) IsCompatibleWith(other *Format) bool {
	f, g := self.ptr(), other.ptr()
	return f != nil && g != nil && C.pa_format_info_is_compatible(f, g) != 0
}

func (self *Format) String() string {
	f := self.ptr()

	if f == nil {
		return `(released)`
	}

	buf := make([]byte, C.PA_FORMAT_INFO_SNPRINT_MAX)
	C.pa_format_info_snprint((*C.char)(unsafe.Pointer(&buf[0])), C.size_t(len(buf)), f)

	return cstringFromBuf(buf)
}

// ToSampleSpec converts a PCM format to a sample spec and channel map.
func (self *Format) ToSampleSpec() (capi.SampleSpec, capi.ChannelMap, error) {
	var spec capi.SampleSpec
	var cmap capi.ChannelMap

	f, err := self.h.Get()

	if err != nil {
		return spec, cmap, err
	}

	if err := errorFromReturn(C.pa_format_info_to_sample_spec(f, sampleSpecPtr(&spec), channelMapPtr(&cmap))); err != nil {
		return spec, cmap, err
	}

	return spec, cmap, nil
}

// PropType returns the type of the property key, or capi.PropInvalid.
func (self *Format) PropType(key string) capi.PropType {
	f := self.ptr()

	if f == nil {
		return capi.PropInvalid
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	return capi.PropType(C.pa_format_info_get_prop_type(f, ckey))
}

func (self *Format) PropInt(key string) (int, error) {
	f, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var v C.int

	if err := errorFromReturn(C.pa_format_info_get_prop_int(f, ckey, &v)); err != nil {
		return 0, err
	}

	return int(v), nil
}

func (self *Format) PropIntRange(key string) (int, int, error) {
	f, err := self.h.Get()

	if err != nil {
		return 0, 0, err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var lo, hi C.int

	if err := errorFromReturn(C.pa_format_info_get_prop_int_range(f, ckey, &lo, &hi)); err != nil {
		return 0, 0, err
	}

	return int(lo), int(hi), nil
}

func (self *Format) PropIntArray(key string) ([]int, error) {
	f, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var values *C.int
	var n C.int

	if err := errorFromReturn(C.pa_format_info_get_prop_int_array(f, ckey, &values, &n)); err != nil {
		return nil, err
	}

	defer C.pa_xfree(unsafe.Pointer(values))

	out := make([]int, 0, int(n))

	if values != nil {
		for _, v := range unsafe.Slice(values, int(n)) {
			out = append(out, int(v))
		}
	}

	return out, nil
}

func (self *Format) PropString(key string) (string, error) {
	f, err := self.h.Get()

	if err != nil {
		return ``, err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var v *C.char

	if err := errorFromReturn(C.pa_format_info_get_prop_string(f, ckey, &v)); err != nil {
		return ``, err
	}

	defer C.pa_xfree(unsafe.Pointer(v))

	return goString(v), nil
}

func (self *Format) PropStringArray(key string) ([]string, error) {
	f, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var values **C.char
	var n C.int

	if err := errorFromReturn(C.pa_format_info_get_prop_string_array(f, ckey, &values, &n)); err != nil {
		return nil, err
	}

	defer C.pa_format_info_free_string_array(values, n)

	out := make([]string, 0, int(n))

	if values != nil {
		for _, v := range unsafe.Slice(values, int(n)) {
			out = append(out, goString(v))
		}
	}

	return out, nil
}

func (self *Format) SetPropInt(key string, value int) error {
	f, err := self.h.Get()

	if err != nil {
		return err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	C.pa_format_info_set_prop_int(f, ckey, C.int(value))

	return nil
}

func (self *Format) SetPropIntRange(key string, lo int, hi int) error {
	f, err := self.h.Get()

	if err != nil {
		return err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	C.pa_format_info_set_prop_int_range(f, ckey, C.int(lo), C.int(hi))

	return nil
}

func (self *Format) SetPropIntArray(key string, values []int) error {
	f, err := self.h.Get()

	if err != nil {
		return err
	}

	if len(values) == 0 {
		return Error{Code: capi.ErrInvalid}
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	cvalues := make([]C.int, len(values))

	for i, v := range values {
		cvalues[i] = C.int(v)
	}

	C.pa_format_info_set_prop_int_array(f, ckey, &cvalues[0], C.int(len(cvalues)))

	return nil
}

func (self *Format) SetPropString(key string, value string) error {
	f, err := self.h.Get()

	if err != nil {
		return err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))

	C.pa_format_info_set_prop_string(f, ckey, cvalue)

	return nil
}

func (self *Format) SetPropStringArray(key string, values []string) error {
	f, err := self.h.Get()

	if err != nil {
		return err
	}

	if len(values) == 0 {
		return Error{Code: capi.ErrInvalid}
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	// the array lives in C memory so no Go pointers are passed through it
	arr := (**C.char)(C.calloc(C.size_t(len(values)), C.size_t(unsafe.Sizeof((*C.char)(nil)))))
	defer C.free(unsafe.Pointer(arr))

	items := unsafe.Slice(arr, len(values))

	for i, v := range values {
		items[i] = C.CString(v)
	}

	defer func() {
		for _, item := range items {
			C.free(unsafe.Pointer(item))
		}
	}()

	C.pa_format_info_set_prop_string_array(f, ckey, arr, C.int(len(values)))

	return nil
}

func (self *Format) SetSampleFormat(format capi.SampleFormat) {
	if f := self.ptr(); f != nil {
		C.pa_format_info_set_sample_format(f, C.pa_sample_format_t(format))
	}
}

func (self *Format) SetRate(rate uint32) {
	if f := self.ptr(); f != nil {
		C.pa_format_info_set_rate(f, C.int(rate))
	}
}

func (self *Format) SetChannels(channels uint8) {
	if f := self.ptr(); f != nil {
		C.pa_format_info_set_channels(f, C.int(channels))
	}
}

func (self *Format) SetChannelMap(cmap capi.ChannelMap) {
	if f := self.ptr(); f != nil {
		C.pa_format_info_set_channel_map(f, channelMapPtr(&cmap))
	}
}

func (self *Format) Close() error {
	return self.h.Close()
}
