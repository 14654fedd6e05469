package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/internal/callback"
	"github.com/auroralaboratories/pulse-binding/internal/handle"
)

// A Context is a connection to a PulseAudio server. It is the factory for
// streams and the target of every introspection and control request.
//
// With a ThreadedMainloop, every method must be called with the mainloop
// locked (or from within a callback).
type Context struct {
	h        *handle.Owned[C.pa_context]
	mainloop Mainloop

	// pending single-shot callbacks, released on Close
	scope *callback.Scope

	stateSlot     *callback.MultiUse
	eventSlot     *callback.MultiUse
	subscribeSlot *callback.MultiUse
}

// NewContext creates an unconnected context named name on m.
func NewContext(m Mainloop, name string) (*Context, error) {
	return NewContextWithProplist(m, name, nil)
}

// NewContextWithProplist is NewContext with additional client properties.
func NewContextWithProplist(m Mainloop, name string, props *Proplist) (*Context, error) {
	api := m.api()

	if api == nil {
		return nil, fmt.Errorf("context: mainloop: %w", ErrNullHandle)
	}

	cname := optString(name)
	defer C.free(unsafe.Pointer(cname))

	var ptr *C.pa_context

	if props != nil {
		p, err := props.h.Get()

		if err != nil {
			return nil, err
		}

		ptr = C.pa_context_new_with_proplist(api, cname, p)
	} else {
		ptr = C.pa_context_new(api, cname)
	}

	ctx := &Context{
		mainloop:      m,
		scope:         callback.NewScope(nil),
		stateSlot:     callback.NewMultiUse(nil),
		eventSlot:     callback.NewMultiUse(nil),
		subscribeSlot: callback.NewMultiUse(nil),
	}

	h, err := handle.FromOwned(`context`, ptr, ctx.release)

	if err != nil {
		return nil, err
	}

	ctx.h = h
	return ctx, nil
}

// release detaches every callback before dropping the last reference, so
// nothing can reach a released box afterwards.
func (self *Context) release(c *C.pa_context) {
	C.pa_context_set_state_callback(c, nil, nil)
	C.pa_context_set_event_callback(c, nil, nil)
	C.pa_context_set_subscribe_callback(c, nil, nil)

	self.stateSlot.Close()
	self.eventSlot.Close()
	self.subscribeSlot.Close()

	C.pa_context_unref(c)

	self.scope.Close()
}

func (self *Context) ptr() *C.pa_context {
	return self.h.Ptr()
}

// Mainloop returns the mainloop the context was created on.
func (self *Context) Mainloop() Mainloop {
	return self.mainloop
}

// Connect starts connecting to server (the default server when empty). The
// connection completes asynchronously; watch State from a state callback.
func (self *Context) Connect(server string, flags capi.ContextFlags) error {
	c, err := self.h.Get()

	if err != nil {
		return err
	}

	cserver := optString(server)
	defer C.free(unsafe.Pointer(cserver))

	if C.pa_context_connect(c, cserver, C.pa_context_flags_t(flags), nil) < 0 {
		return self.Errno()
	}

	return nil
}

func (self *Context) Disconnect() {
	if c := self.ptr(); c != nil {
		C.pa_context_disconnect(c)
	}
}

func (self *Context) State() capi.ContextState {
	if c := self.ptr(); c != nil {
		return capi.ContextState(C.pa_context_get_state(c))
	}

	return capi.ContextTerminated
}

// Errno returns the last error reported on this context, or nil.
func (self *Context) Errno() error {
	if c := self.ptr(); c != nil {
		if code := C.pa_context_errno(c); code != 0 {
			return Error{Code: capi.Code(code)}
		}
	}

	return nil
}

// lastError is Errno that never returns nil, for paths known to have failed.
func (self *Context) lastError() error {
	if err := self.Errno(); err != nil {
		return err
	}

	return Error{Code: capi.ErrUnknown}
}

// SetStateCallback registers fn to be called on every state change. Passing
// nil removes the callback.
func (self *Context) SetStateCallback(fn func()) {
	c := self.ptr()

	if c == nil {
		return
	}

	if fn == nil {
		C.pa_context_set_state_callback(c, nil, nil)
		self.stateSlot.Close()
		return
	}

	tok := self.stateSlot.Set(fn)

	C.pa_context_set_state_callback(
		c,
		(C.pa_context_notify_cb_t)(unsafe.Pointer(C.goContextNotify)),
		userdata(tok),
	)
}

// SetEventCallback registers fn for server-sent events. The property list is
// only valid during the call.
func (self *Context) SetEventCallback(fn func(name string, props ProplistRef)) {
	c := self.ptr()

	if c == nil {
		return
	}

	if fn == nil {
		C.pa_context_set_event_callback(c, nil, nil)
		self.eventSlot.Close()
		return
	}

	tok := self.eventSlot.Set(fn)

	C.pa_context_set_event_callback(
		c,
		(C.pa_context_event_cb_t)(unsafe.Pointer(C.goContextEvent)),
		userdata(tok),
	)
}

// SetSubscribeCallback registers fn for the events selected with Subscribe.
func (self *Context) SetSubscribeCallback(fn func(facility capi.SubscriptionEventType, operation capi.SubscriptionEventType, index uint32)) {
	c := self.ptr()

	if c == nil {
		return
	}

	if fn == nil {
		C.pa_context_set_subscribe_callback(c, nil, nil)
		self.subscribeSlot.Close()
		return
	}

	tok := self.subscribeSlot.Set(fn)

	C.pa_context_set_subscribe_callback(
		c,
		(C.pa_context_subscribe_cb_t)(unsafe.Pointer(C.goContextSubscribe)),
		userdata(tok),
	)
}

// IsPending reports whether there are requests awaiting a reply.
func (self *Context) IsPending() bool {
	if c := self.ptr(); c != nil {
		return C.pa_context_is_pending(c) > 0
	}

	return false
}

// Drain flushes outstanding requests and calls fn once done. When nothing is
// pending it returns (nil, nil) and fn is not called. A context that is not
// ready cannot be drained and yields ErrBadState.
func (self *Context) Drain(fn func()) (*Operation, error) {
	c, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	if self.State() != capi.ContextReady {
		return nil, Error{Code: capi.ErrBadState}
	}

	if !self.IsPending() {
		return nil, nil
	}

	tok := self.scope.Once(fn)
	ptr := C.pa_context_drain(c, (C.pa_context_notify_cb_t)(unsafe.Pointer(C.goContextDrain)), userdata(tok))

	return newOperation(ptr, self.scope, tok, self.lastError)
}

// ExitDaemon asks the server to terminate.
func (self *Context) ExitDaemon(fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_exit_daemon(c, cb, ud)
	})
}

func (self *Context) SetDefaultSink(name string, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_default_sink(c, cname, cb, ud)
	})
}

func (self *Context) SetDefaultSource(name string, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_default_source(c, cname, cb, ud)
	})
}

// SetName changes the client name as it appears in PulseAudio.
func (self *Context) SetName(name string, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_name(c, cname, cb, ud)
	})
}

// Subscribe selects which events reach the subscribe callback.
func (self *Context) Subscribe(mask capi.SubscriptionMask, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_subscribe(c, C.pa_subscription_mask_t(mask), cb, ud)
	})
}

// ProplistUpdate changes the client's properties on the server.
func (self *Context) ProplistUpdate(mode capi.UpdateMode, props *Proplist, fn func(success bool)) (*Operation, error) {
	p, err := props.h.Get()

	if err != nil {
		return nil, err
	}

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_proplist_update(c, C.pa_update_mode_t(mode), p, cb, ud)
	})
}

// ProplistRemove removes client properties on the server.
func (self *Context) ProplistRemove(keys []string, fn func(success bool)) (*Operation, error) {
	ckeys := cStringArray(keys)
	defer ckeys.free()

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_proplist_remove(c, ckeys.ptr(), cb, ud)
	})
}

// IsLocal reports whether the server runs on this machine.
func (self *Context) IsLocal() (bool, error) {
	c, err := self.h.Get()

	if err != nil {
		return false, err
	}

	switch C.pa_context_is_local(c) {
	case 1:
		return true, nil
	case 0:
		return false, nil
	default:
		return false, self.lastError()
	}
}

// Server returns the name of the server the context is connected to.
func (self *Context) Server() string {
	if c := self.ptr(); c != nil {
		if s := C.pa_context_get_server(c); s != nil {
			return C.GoString(s)
		}
	}

	return ``
}

// ProtocolVersion is the protocol version spoken by the library.
func (self *Context) ProtocolVersion() uint32 {
	if c := self.ptr(); c != nil {
		return uint32(C.pa_context_get_protocol_version(c))
	}

	return 0
}

// ServerProtocolVersion is the protocol version of the connected server.
func (self *Context) ServerProtocolVersion() uint32 {
	if c := self.ptr(); c != nil {
		return uint32(C.pa_context_get_server_protocol_version(c))
	}

	return capi.InvalidIndex
}

// Index returns the client index of this context on the server.
func (self *Context) Index() uint32 {
	if c := self.ptr(); c != nil {
		return uint32(C.pa_context_get_index(c))
	}

	return capi.InvalidIndex
}

// TileSize returns the optimal block size for transfers in the given format,
// or -1 if unknown.
func (self *Context) TileSize(spec capi.SampleSpec) int {
	c := self.ptr()

	if c == nil {
		return -1
	}

	return int(C.pa_context_get_tile_size(c, sampleSpecPtr(&spec)))
}

// LoadCookieFromFile loads the authentication cookie from path instead of the
// default location. Must be called before Connect.
func (self *Context) LoadCookieFromFile(path string) error {
	c, err := self.h.Get()

	if err != nil {
		return err
	}

	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	if C.pa_context_load_cookie_from_file(c, cpath) < 0 {
		return self.lastError()
	}

	return nil
}

// Pending returns the number of single-shot callbacks still outstanding.
func (self *Context) Pending() int {
	return self.scope.Pending()
}

// Close releases the context: callbacks are detached, the reference is
// dropped and pending completion callbacks are released without firing.
func (self *Context) Close() error {
	return self.h.Close()
}

type successRequest func(c *C.pa_context, cb C.pa_context_success_cb_t, userdata unsafe.Pointer) *C.pa_operation

func (self *Context) successOp(fn func(bool), request successRequest) (*Operation, error) {
	c, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	if fn == nil {
		fn = func(bool) {}
	}

	tok := self.scope.Once(fn)

	ptr := request(
		c,
		(C.pa_context_success_cb_t)(unsafe.Pointer(C.goContextSuccess)),
		userdata(tok),
	)

	return newOperation(ptr, self.scope, tok, self.Errno)
}

func optString(s string) *C.char {
	if s == `` {
		return nil
	}

	return C.CString(s)
}

// cstrings is a NULL-terminated array of C strings living in C memory.
type cstrings struct {
	arr []*C.char
}

func cStringArray(values []string) *cstrings {
	size := C.size_t(len(values)+1) * C.size_t(unsafe.Sizeof((*C.char)(nil)))
	arr := unsafe.Slice((**C.char)(C.malloc(size)), len(values)+1)

	for i, v := range values {
		arr[i] = C.CString(v)
	}

	arr[len(values)] = nil

	return &cstrings{arr: arr}
}

func (self *cstrings) ptr() **C.char {
	return &self.arr[0]
}

func (self *cstrings) free() {
	for _, s := range self.arr {
		if s != nil {
			C.free(unsafe.Pointer(s))
		}
	}

	C.free(unsafe.Pointer(&self.arr[0]))
}
