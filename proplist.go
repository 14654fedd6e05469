package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"fmt"
	"sort"
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/internal/handle"
)

// Proplist is an owned list of key/value properties.
type Proplist struct {
	h *handle.Owned[C.pa_proplist]
}

// ProplistRef is a read-only view of a property list owned by the library,
// such as the one handed to an event callback. It is only valid for the
// duration of that callback; use Copy to keep the data.
type ProplistRef struct {
	w handle.Weak[C.pa_proplist]
}

func NewProplist() (*Proplist, error) {
	return ownProplist(C.pa_proplist_new())
}

// NewProplistFromMap creates a property list holding the given string values.
func NewProplistFromMap(values map[string]string) (*Proplist, error) {
	p, err := NewProplist()

	if err != nil {
		return nil, err
	}

	for k, v := range values {
		if err := p.Set(k, v); err != nil {
			p.Close()
			return nil, err
		}
	}

	return p, nil
}

// ParseProplist parses the textual form produced by String, e.g.
// `media.role = "music" application.name = "x"`.
func ParseProplist(text string) (*Proplist, error) {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))

	p, err := ownProplist(C.pa_proplist_from_string(ctext))

	if err != nil {
		return nil, fmt.Errorf("cannot parse property list: %w", err)
	}

	return p, nil
}

func ownProplist(ptr *C.pa_proplist) (*Proplist, error) {
	h, err := handle.FromOwned(`proplist`, ptr, func(p *C.pa_proplist) {
		C.pa_proplist_free(p)
	})

	if err != nil {
		return nil, err
	}

	return &Proplist{h: h}, nil
}

func weakProplist(ptr *C.pa_proplist) ProplistRef {
	w, _ := handle.FromWeak(ptr)
	return ProplistRef{w: w}
}

func (self *Proplist) ptr() *C.pa_proplist {
	return self.h.Ptr()
}

// Ref returns a non-owning view of the list.
func (self *Proplist) Ref() ProplistRef {
	return ProplistRef{w: self.h.Weak()}
}

func (self *Proplist) Set(key string, value string) error {
	p, err := self.h.Get()

	if err != nil {
		return err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))
	cvalue := C.CString(value)
	defer C.free(unsafe.Pointer(cvalue))

	if C.pa_proplist_sets(p, ckey, cvalue) < 0 {
		return fmt.Errorf("invalid property %q", key)
	}

	return nil
}

// SetBytes stores an arbitrary binary value.
func (self *Proplist) SetBytes(key string, value []byte) error {
	p, err := self.h.Get()

	if err != nil {
		return err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var data unsafe.Pointer

	if len(value) > 0 {
		data = C.CBytes(value)
		defer C.free(data)
	}

	if C.pa_proplist_set(p, ckey, data, C.size_t(len(value))) < 0 {
		return fmt.Errorf("invalid property %q", key)
	}

	return nil
}

func (self *Proplist) Unset(key string) error {
	p, err := self.h.Get()

	if err != nil {
		return err
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	return errorFromReturn(C.pa_proplist_unset(p, ckey))
}

// Update merges other into this list according to mode.
func (self *Proplist) Update(mode capi.UpdateMode, other *Proplist) error {
	p, err := self.h.Get()

	if err != nil {
		return err
	}

	o, err := other.h.Get()

	if err != nil {
		return err
	}

	C.pa_proplist_update(p, C.pa_update_mode_t(mode), o)
	return nil
}

func (self *Proplist) Clear() {
	if p := self.ptr(); p != nil {
		C.pa_proplist_clear(p)
	}
}

func (self *Proplist) Get(key string) (string, bool)      { return proplistGet(self.ptr(), key) }
func (self *Proplist) GetBytes(key string) ([]byte, bool) { return proplistGetBytes(self.ptr(), key) }
func (self *Proplist) Contains(key string) bool           { return proplistContains(self.ptr(), key) }
func (self *Proplist) Keys() []string                     { return proplistKeys(self.ptr()) }
func (self *Proplist) Len() int                           { return proplistLen(self.ptr()) }
func (self *Proplist) Map() map[string]string             { return proplistMap(self.ptr()) }
func (self *Proplist) String() string                     { return proplistString(self.ptr()) }

// Copy returns an independently owned duplicate.
func (self *Proplist) Copy() (*Proplist, error) {
	p, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	return ownProplist(C.pa_proplist_copy(p))
}

// Equal reports whether both lists hold the same keys and values.
func (self *Proplist) Equal(other *Proplist) bool {
	a, b := self.ptr(), other.ptr()

	if a == nil || b == nil {
		return false
	}

	return C.pa_proplist_equal(a, b) != 0
}

func (self *Proplist) Close() error {
	return self.h.Close()
}

func (self ProplistRef) IsNil() bool                   { return self.w.IsNil() }
func (self ProplistRef) Get(key string) (string, bool) { return proplistGet(self.w.Get(), key) }
func (self ProplistRef) GetBytes(key string) ([]byte, bool) {
	return proplistGetBytes(self.w.Get(), key)
}
func (self ProplistRef) Contains(key string) bool { return proplistContains(self.w.Get(), key) }
func (self ProplistRef) Keys() []string           { return proplistKeys(self.w.Get()) }
func (self ProplistRef) Len() int                 { return proplistLen(self.w.Get()) }
func (self ProplistRef) Map() map[string]string   { return proplistMap(self.w.Get()) }
func (self ProplistRef) String() string           { return proplistString(self.w.Get()) }

// Copy returns an owned duplicate that outlives the callback.
func (self ProplistRef) Copy() (*Proplist, error) {
	if self.w.IsNil() {
		return nil, fmt.Errorf("proplist: %w", ErrNullHandle)
	}

	return ownProplist(C.pa_proplist_copy(self.w.Get()))
}

func proplistGet(p *C.pa_proplist, key string) (string, bool) {
	if p == nil {
		return ``, false
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	if v := C.pa_proplist_gets(p, ckey); v != nil {
		return C.GoString(v), true
	}

	return ``, false
}

func proplistGetBytes(p *C.pa_proplist, key string) ([]byte, bool) {
	if p == nil {
		return nil, false
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	var data unsafe.Pointer
	var nbytes C.size_t

	if C.pa_proplist_get(p, ckey, &data, &nbytes) < 0 {
		return nil, false
	}

	return C.GoBytes(data, C.int(nbytes)), true
}

func proplistContains(p *C.pa_proplist, key string) bool {
	if p == nil {
		return false
	}

	ckey := C.CString(key)
	defer C.free(unsafe.Pointer(ckey))

	return C.pa_proplist_contains(p, ckey) == 1
}

func proplistKeys(p *C.pa_proplist) []string {
	keys := make([]string, 0)

	if p == nil {
		return keys
	}

	var state unsafe.Pointer

	for {
		k := C.pulse_proplist_iterate(p, &state)

		if k == nil {
			break
		}

		keys = append(keys, C.GoString(k))
	}

	sort.Strings(keys)
	return keys
}

func proplistLen(p *C.pa_proplist) int {
	if p == nil {
		return 0
	}

	return int(C.pa_proplist_size(p))
}

// values that are not valid UTF-8 strings are skipped
func proplistMap(p *C.pa_proplist) map[string]string {
	out := make(map[string]string)

	for _, k := range proplistKeys(p) {
		if v, ok := proplistGet(p, k); ok {
			out[k] = v
		}
	}

	return out
}

func proplistString(p *C.pa_proplist) string {
	if p == nil {
		return ``
	}

	s := C.pa_proplist_to_string(p)
	defer C.pa_xfree(unsafe.Pointer(s))

	return C.GoString(s)
}
