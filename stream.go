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

type streamSlot int

const (
	slotState streamSlot = iota
	slotWrite
	slotRead
	slotOverflow
	slotUnderflow
	slotStarted
	slotLatencyUpdate
	slotMoved
	slotSuspended
	slotBufferAttr
	slotEvent
	streamSlotCount
)

// A Stream carries audio between the client and a sink, a source or the
// sample cache. Like every object on a ThreadedMainloop, its methods must be
// called with the mainloop locked.
type Stream struct {
	h       *handle.Owned[C.pa_stream]
	context *Context
	scope   *callback.Scope
	slots   [streamSlotCount]*callback.MultiUse
}

// NewStream creates an unconnected stream. cmap may be nil to use the default
// mapping for spec's channel count.
func NewStream(ctx *Context, name string, spec capi.SampleSpec, cmap *capi.ChannelMap) (*Stream, error) {
	return NewStreamWithProplist(ctx, name, spec, cmap, nil)
}

func NewStreamWithProplist(ctx *Context, name string, spec capi.SampleSpec, cmap *capi.ChannelMap, props *Proplist) (*Stream, error) {
	c, err := ctx.h.Get()

	if err != nil {
		return nil, err
	}

	if !spec.Valid() {
		return nil, fmt.Errorf("stream %q: %w", name, Error{Code: capi.ErrInvalid})
	}

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var ptr *C.pa_stream

	if props != nil {
		p, err := props.h.Get()

		if err != nil {
			return nil, err
		}

		ptr = C.pa_stream_new_with_proplist(c, cname, sampleSpecPtr(&spec), channelMapPtr(cmap), p)
	} else {
		ptr = C.pa_stream_new(c, cname, sampleSpecPtr(&spec), channelMapPtr(cmap))
	}

	if ptr == nil {
		return nil, fmt.Errorf("stream %q: %w", name, ctx.lastError())
	}

	stream := &Stream{
		context: ctx,
		scope:   callback.NewScope(nil),
	}

	for i := range stream.slots {
		stream.slots[i] = callback.NewMultiUse(nil)
	}

	if stream.h, err = handle.FromOwned(`stream`, ptr, stream.release); err != nil {
		return nil, err
	}

	return stream, nil
}

func (self *Stream) release(s *C.pa_stream) {
	if capi.StreamState(C.pa_stream_get_state(s)).IsGood() {
		C.pa_stream_disconnect(s)
	}

	C.pa_stream_set_state_callback(s, nil, nil)
	C.pa_stream_set_write_callback(s, nil, nil)
	C.pa_stream_set_read_callback(s, nil, nil)
	C.pa_stream_set_overflow_callback(s, nil, nil)
	C.pa_stream_set_underflow_callback(s, nil, nil)
	C.pa_stream_set_started_callback(s, nil, nil)
	C.pa_stream_set_latency_update_callback(s, nil, nil)
	C.pa_stream_set_moved_callback(s, nil, nil)
	C.pa_stream_set_suspended_callback(s, nil, nil)
	C.pa_stream_set_buffer_attr_callback(s, nil, nil)
	C.pa_stream_set_event_callback(s, nil, nil)

	for _, slot := range self.slots {
		slot.Close()
	}

	C.pa_stream_unref(s)

	self.scope.Close()
}

func (self *Stream) Context() *Context {
	return self.context
}

// ConnectPlayback connects the stream to a sink (the default sink when
// device is empty). attr and volume may be nil.
func (self *Stream) ConnectPlayback(device string, attr *capi.BufferAttr, flags capi.StreamFlags, volume *capi.CVolume) error {
	s, err := self.h.Get()

	if err != nil {
		return err
	}

	cdev := optString(device)
	defer C.free(unsafe.Pointer(cdev))

	if C.pa_stream_connect_playback(s, cdev, bufferAttrPtr(attr), C.pa_stream_flags_t(flags), cvolumePtr(volume), nil) < 0 {
		return self.context.lastError()
	}

	return nil
}

// ConnectRecord connects the stream to a source (the default source when
// device is empty).
func (self *Stream) ConnectRecord(device string, attr *capi.BufferAttr, flags capi.StreamFlags) error {
	s, err := self.h.Get()

	if err != nil {
		return err
	}

	cdev := optString(device)
	defer C.free(unsafe.Pointer(cdev))

	if C.pa_stream_connect_record(s, cdev, bufferAttrPtr(attr), C.pa_stream_flags_t(flags)) < 0 {
		return self.context.lastError()
	}

	return nil
}

// ConnectUpload prepares the stream to upload length bytes into the sample
// cache under the stream's name.
func (self *Stream) ConnectUpload(length int) error {
	s, err := self.h.Get()

	if err != nil {
		return err
	}

	if C.pa_stream_connect_upload(s, C.size_t(length)) < 0 {
		return self.context.lastError()
	}

	return nil
}

// FinishUpload commits an upload started with ConnectUpload.
func (self *Stream) FinishUpload() error {
	s, err := self.h.Get()

	if err != nil {
		return err
	}

	if C.pa_stream_finish_upload(s) < 0 {
		return self.context.lastError()
	}

	return nil
}

func (self *Stream) Disconnect() error {
	s, err := self.h.Get()

	if err != nil {
		return err
	}

	if C.pa_stream_disconnect(s) < 0 {
		return self.context.lastError()
	}

	return nil
}

func (self *Stream) State() capi.StreamState {
	if s := self.h.Ptr(); s != nil {
		return capi.StreamState(C.pa_stream_get_state(s))
	}

	return capi.StreamTerminated
}

// Index is the server-side index of the stream (sink input or source output).
func (self *Stream) Index() uint32 {
	if s := self.h.Ptr(); s != nil {
		return uint32(C.pa_stream_get_index(s))
	}

	return capi.InvalidIndex
}

func (self *Stream) DeviceIndex() uint32 {
	if s := self.h.Ptr(); s != nil {
		return uint32(C.pa_stream_get_device_index(s))
	}

	return capi.InvalidIndex
}

func (self *Stream) DeviceName() string {
	if s := self.h.Ptr(); s != nil {
		return goString(C.pa_stream_get_device_name(s))
	}

	return ``
}

func (self *Stream) IsSuspended() (bool, error) {
	return self.tristate(func(s *C.pa_stream) C.int {
		return C.pa_stream_is_suspended(s)
	})
}

func (self *Stream) IsCorked() (bool, error) {
	return self.tristate(func(s *C.pa_stream) C.int {
		return C.pa_stream_is_corked(s)
	})
}

func (self *Stream) tristate(query func(*C.pa_stream) C.int) (bool, error) {
	s, err := self.h.Get()

	if err != nil {
		return false, err
	}

	switch ret := query(s); {
	case ret > 0:
		return true, nil
	case ret == 0:
		return false, nil
	default:
		return false, self.context.lastError()
	}
}

// Write queues data for playback. The library copies data before returning.
func (self *Stream) Write(data []byte, offset int64, seek capi.SeekMode) error {
	s, err := self.h.Get()

	if err != nil {
		return err
	}

	if len(data) == 0 {
		return nil
	}

	ret := C.pa_stream_write(
		s,
		unsafe.Pointer(&data[0]),
		C.size_t(len(data)),
		nil,
		C.int64_t(offset),
		C.pa_seek_mode_t(seek),
	)

	if ret < 0 {
		return errorFromReturn(ret)
	}

	return nil
}

// Peek returns a copy of the next fragment of recorded data. An empty buffer
// yields (nil, 0). A hole in the buffer yields (nil, size); it must still be
// discarded.
func (self *Stream) Peek() ([]byte, int, error) {
	s, err := self.h.Get()

	if err != nil {
		return nil, 0, err
	}

	var data unsafe.Pointer
	var nbytes C.size_t

	if ret := C.pa_stream_peek(s, &data, &nbytes); ret < 0 {
		return nil, 0, errorFromReturn(ret)
	}

	if data == nil {
		return nil, int(nbytes), nil
	}

	return C.GoBytes(data, C.int(nbytes)), int(nbytes), nil
}

// Discard drops the fragment returned by the last Peek.
func (self *Stream) Discard() error {
	s, err := self.h.Get()

	if err != nil {
		return err
	}

	if ret := C.pa_stream_drop(s); ret < 0 {
		return errorFromReturn(ret)
	}

	return nil
}

func (self *Stream) WritableSize() (int, error) {
	return self.sizeQuery(func(s *C.pa_stream) C.size_t {
		return C.pa_stream_writable_size(s)
	})
}

func (self *Stream) ReadableSize() (int, error) {
	return self.sizeQuery(func(s *C.pa_stream) C.size_t {
		return C.pa_stream_readable_size(s)
	})
}

func (self *Stream) sizeQuery(query func(*C.pa_stream) C.size_t) (int, error) {
	s, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	n := query(s)

	if n == ^C.size_t(0) {
		return 0, self.context.lastError()
	}

	return int(n), nil
}

type streamRequest func(s *C.pa_stream, cb C.pa_stream_success_cb_t, userdata unsafe.Pointer) *C.pa_operation

func (self *Stream) successOp(fn func(bool), request streamRequest) (*Operation, error) {
	s, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	if fn == nil {
		fn = func(bool) {}
	}

	tok := self.scope.Once(fn)

	ptr := request(
		s,
		(C.pa_stream_success_cb_t)(unsafe.Pointer(C.goStreamSuccess)),
		userdata(tok),
	)

	return newOperation(ptr, self.scope, tok, self.context.Errno)
}

// Drain waits for the playback buffer to empty.
func (self *Stream) Drain(fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(s *C.pa_stream, cb C.pa_stream_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_stream_drain(s, cb, ud)
	})
}

func (self *Stream) Flush(fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(s *C.pa_stream, cb C.pa_stream_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_stream_flush(s, cb, ud)
	})
}

// Trigger starts playback immediately, ignoring the prebuffer threshold.
func (self *Stream) Trigger(fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(s *C.pa_stream, cb C.pa_stream_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_stream_trigger(s, cb, ud)
	})
}

func (self *Stream) Prebuf(fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(s *C.pa_stream, cb C.pa_stream_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_stream_prebuf(s, cb, ud)
	})
}

// Cork pauses (true) or resumes (false) the stream.
func (self *Stream) Cork(pause bool, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(s *C.pa_stream, cb C.pa_stream_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_stream_cork(s, cbool(pause), cb, ud)
	})
}

func (self *Stream) UpdateTimingInfo(fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(s *C.pa_stream, cb C.pa_stream_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_stream_update_timing_info(s, cb, ud)
	})
}

func (self *Stream) SetName(name string, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(s *C.pa_stream, cb C.pa_stream_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_stream_set_name(s, cname, cb, ud)
	})
}

func (self *Stream) SetBufferAttr(attr capi.BufferAttr, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(s *C.pa_stream, cb C.pa_stream_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_stream_set_buffer_attr(s, bufferAttrPtr(&attr), cb, ud)
	})
}

func (self *Stream) UpdateSampleRate(rate uint32, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(s *C.pa_stream, cb C.pa_stream_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_stream_update_sample_rate(s, C.uint32_t(rate), cb, ud)
	})
}

// GetTime returns the current playback or capture time.
func (self *Stream) GetTime() (capi.Usec, error) {
	s, err := self.h.Get()

	if err != nil {
		return 0, err
	}

	var usec C.pa_usec_t

	if ret := C.pa_stream_get_time(s, &usec); ret < 0 {
		return 0, errorFromReturn(ret)
	}

	return capi.Usec(usec), nil
}

// GetLatency returns the total latency. negative is only ever true for
// record streams whose data is ahead of the source.
func (self *Stream) GetLatency() (latency capi.Usec, negative bool, err error) {
	s, err := self.h.Get()

	if err != nil {
		return 0, false, err
	}

	var usec C.pa_usec_t
	var neg C.int

	if ret := C.pa_stream_get_latency(s, &usec, &neg); ret < 0 {
		return 0, false, errorFromReturn(ret)
	}

	return capi.Usec(usec), neg != 0, nil
}

func (self *Stream) SampleSpec() (capi.SampleSpec, error) {
	s, err := self.h.Get()

	if err != nil {
		return capi.SampleSpec{}, err
	}

	return sampleSpecOf(C.pa_stream_get_sample_spec(s)), nil
}

func (self *Stream) ChannelMap() (capi.ChannelMap, error) {
	s, err := self.h.Get()

	if err != nil {
		return capi.ChannelMap{}, err
	}

	return channelMapOf(C.pa_stream_get_channel_map(s)), nil
}

// BufferAttr returns the buffer metrics negotiated with the server. Only
// valid once the stream is ready.
func (self *Stream) BufferAttr() (capi.BufferAttr, error) {
	s, err := self.h.Get()

	if err != nil {
		return capi.BufferAttr{}, err
	}

	attr := C.pa_stream_get_buffer_attr(s)

	if attr == nil {
		return capi.BufferAttr{}, self.context.lastError()
	}

	return *(*capi.BufferAttr)(unsafe.Pointer(attr)), nil
}

func (self *Stream) setNotify(slot streamSlot, fn func(), set func(*C.pa_stream, C.pa_stream_notify_cb_t, unsafe.Pointer)) {
	s := self.h.Ptr()

	if s == nil {
		return
	}

	if fn == nil {
		set(s, nil, nil)
		self.slots[slot].Close()
		return
	}

	tok := self.slots[slot].Set(fn)
	set(s, (C.pa_stream_notify_cb_t)(unsafe.Pointer(C.goStreamNotify)), userdata(tok))
}

func (self *Stream) setRequest(slot streamSlot, fn func(nbytes int), set func(*C.pa_stream, C.pa_stream_request_cb_t, unsafe.Pointer)) {
	s := self.h.Ptr()

	if s == nil {
		return
	}

	if fn == nil {
		set(s, nil, nil)
		self.slots[slot].Close()
		return
	}

	tok := self.slots[slot].Set(fn)
	set(s, (C.pa_stream_request_cb_t)(unsafe.Pointer(C.goStreamRequest)), userdata(tok))
}

func (self *Stream) SetStateCallback(fn func()) {
	self.setNotify(slotState, fn, func(s *C.pa_stream, cb C.pa_stream_notify_cb_t, ud unsafe.Pointer) {
		C.pa_stream_set_state_callback(s, cb, ud)
	})
}

// SetWriteCallback registers fn to be called whenever the server can accept
// nbytes more data.
func (self *Stream) SetWriteCallback(fn func(nbytes int)) {
	self.setRequest(slotWrite, fn, func(s *C.pa_stream, cb C.pa_stream_request_cb_t, ud unsafe.Pointer) {
		C.pa_stream_set_write_callback(s, cb, ud)
	})
}

// SetReadCallback registers fn to be called whenever nbytes of new data can
// be read with Peek.
func (self *Stream) SetReadCallback(fn func(nbytes int)) {
	self.setRequest(slotRead, fn, func(s *C.pa_stream, cb C.pa_stream_request_cb_t, ud unsafe.Pointer) {
		C.pa_stream_set_read_callback(s, cb, ud)
	})
}

func (self *Stream) SetOverflowCallback(fn func()) {
	self.setNotify(slotOverflow, fn, func(s *C.pa_stream, cb C.pa_stream_notify_cb_t, ud unsafe.Pointer) {
		C.pa_stream_set_overflow_callback(s, cb, ud)
	})
}

func (self *Stream) SetUnderflowCallback(fn func()) {
	self.setNotify(slotUnderflow, fn, func(s *C.pa_stream, cb C.pa_stream_notify_cb_t, ud unsafe.Pointer) {
		C.pa_stream_set_underflow_callback(s, cb, ud)
	})
}

func (self *Stream) SetStartedCallback(fn func()) {
	self.setNotify(slotStarted, fn, func(s *C.pa_stream, cb C.pa_stream_notify_cb_t, ud unsafe.Pointer) {
		C.pa_stream_set_started_callback(s, cb, ud)
	})
}

func (self *Stream) SetLatencyUpdateCallback(fn func()) {
	self.setNotify(slotLatencyUpdate, fn, func(s *C.pa_stream, cb C.pa_stream_notify_cb_t, ud unsafe.Pointer) {
		C.pa_stream_set_latency_update_callback(s, cb, ud)
	})
}

func (self *Stream) SetMovedCallback(fn func()) {
	self.setNotify(slotMoved, fn, func(s *C.pa_stream, cb C.pa_stream_notify_cb_t, ud unsafe.Pointer) {
		C.pa_stream_set_moved_callback(s, cb, ud)
	})
}

func (self *Stream) SetSuspendedCallback(fn func()) {
	self.setNotify(slotSuspended, fn, func(s *C.pa_stream, cb C.pa_stream_notify_cb_t, ud unsafe.Pointer) {
		C.pa_stream_set_suspended_callback(s, cb, ud)
	})
}

func (self *Stream) SetBufferAttrCallback(fn func()) {
	self.setNotify(slotBufferAttr, fn, func(s *C.pa_stream, cb C.pa_stream_notify_cb_t, ud unsafe.Pointer) {
		C.pa_stream_set_buffer_attr_callback(s, cb, ud)
	})
}

// SetEventCallback registers fn for server-sent stream events. The property
// list is only valid during the call.
func (self *Stream) SetEventCallback(fn func(name string, props ProplistRef)) {
	s := self.h.Ptr()

	if s == nil {
		return
	}

	if fn == nil {
		C.pa_stream_set_event_callback(s, nil, nil)
		self.slots[slotEvent].Close()
		return
	}

	tok := self.slots[slotEvent].Set(fn)

	C.pa_stream_set_event_callback(
		s,
		(C.pa_stream_event_cb_t)(unsafe.Pointer(C.goStreamEvent)),
		userdata(tok),
	)
}

// Pending returns the number of completion callbacks still outstanding.
func (self *Stream) Pending() int {
	return self.scope.Pending()
}

// Close disconnects the stream if needed, detaches every callback and drops
// the reference.
func (self *Stream) Close() error {
	return self.h.Close()
}
