package pulse

// #include "bridge.h"
import "C"

import (
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/internal/callback"
)

// Every exported function below is entered from a native dispatch frame. They
// resolve the closure from the token carried in userdata and run it through
// callback.Guard so a panic never unwinds into C.

func fire(name string, fn func()) {
	callback.Guard(name, fn)
}

//export goContextNotify
func goContextNotify(c *C.pa_context, ud unsafe.Pointer) {
	if fn, ok := callback.LookupAs[func()](callback.Default, tokenOf(ud)); ok {
		fire(`context state`, fn)
	}
}

//export goContextDrain
func goContextDrain(c *C.pa_context, ud unsafe.Pointer) {
	if fn, ok := callback.TakeAs[func()](callback.Default, tokenOf(ud)); ok {
		fire(`context drain`, fn)
	}
}

//export goContextSuccess
func goContextSuccess(c *C.pa_context, success C.int, ud unsafe.Pointer) {
	if fn, ok := callback.TakeAs[func(bool)](callback.Default, tokenOf(ud)); ok {
		fire(`context success`, func() {
			fn(success != 0)
		})
	}
}

//export goContextIndex
func goContextIndex(c *C.pa_context, idx C.uint32_t, ud unsafe.Pointer) {
	if fn, ok := callback.TakeAs[func(uint32)](callback.Default, tokenOf(ud)); ok {
		fire(`context index`, func() {
			fn(uint32(idx))
		})
	}
}

//export goContextEvent
func goContextEvent(c *C.pa_context, name *C.char, p *C.pa_proplist, ud unsafe.Pointer) {
	if fn, ok := callback.LookupAs[func(string, ProplistRef)](callback.Default, tokenOf(ud)); ok {
		fire(`context event`, func() {
			fn(goString(name), weakProplist(p))
		})
	}
}

//export goContextSubscribe
func goContextSubscribe(c *C.pa_context, t C.pa_subscription_event_type_t, idx C.uint32_t, ud unsafe.Pointer) {
	type subscribeFunc = func(capi.SubscriptionEventType, capi.SubscriptionEventType, uint32)

	if fn, ok := callback.LookupAs[subscribeFunc](callback.Default, tokenOf(ud)); ok {
		event := capi.SubscriptionEventType(t)

		fire(`context subscribe`, func() {
			fn(event.Facility(), event.Operation(), uint32(idx))
		})
	}
}

//export goContextString
func goContextString(c *C.pa_context, success C.int, response *C.char, ud unsafe.Pointer) {
	if fn, ok := callback.TakeAs[func(bool, string)](callback.Default, tokenOf(ud)); ok {
		fire(`context string`, func() {
			fn(success != 0, goString(response))
		})
	}
}

//export goServerInfo
func goServerInfo(c *C.pa_context, i *C.pa_server_info, ud unsafe.Pointer) {
	if fn, ok := callback.TakeAs[func(*C.pa_server_info)](callback.Default, tokenOf(ud)); ok {
		fire(`server info`, func() {
			fn(i)
		})
	}
}

func fireList[N any](name string, i *N, eol C.int, ud unsafe.Pointer) {
	if fn, ok := callback.ListAs[func(*N, C.int)](callback.Default, tokenOf(ud), int(eol)); ok {
		fire(name, func() {
			fn(i, eol)
		})
	}
}

//export goSinkInfo
func goSinkInfo(c *C.pa_context, i *C.pa_sink_info, eol C.int, ud unsafe.Pointer) {
	fireList(`sink info`, i, eol, ud)
}

//export goSourceInfo
func goSourceInfo(c *C.pa_context, i *C.pa_source_info, eol C.int, ud unsafe.Pointer) {
	fireList(`source info`, i, eol, ud)
}

//export goSinkInputInfo
func goSinkInputInfo(c *C.pa_context, i *C.pa_sink_input_info, eol C.int, ud unsafe.Pointer) {
	fireList(`sink input info`, i, eol, ud)
}

//export goSourceOutputInfo
func goSourceOutputInfo(c *C.pa_context, i *C.pa_source_output_info, eol C.int, ud unsafe.Pointer) {
	fireList(`source output info`, i, eol, ud)
}

//export goClientInfo
func goClientInfo(c *C.pa_context, i *C.pa_client_info, eol C.int, ud unsafe.Pointer) {
	fireList(`client info`, i, eol, ud)
}

//export goModuleInfo
func goModuleInfo(c *C.pa_context, i *C.pa_module_info, eol C.int, ud unsafe.Pointer) {
	fireList(`module info`, i, eol, ud)
}

//export goCardInfo
func goCardInfo(c *C.pa_context, i *C.pa_card_info, eol C.int, ud unsafe.Pointer) {
	fireList(`card info`, i, eol, ud)
}

//export goSampleInfo
func goSampleInfo(c *C.pa_context, i *C.pa_sample_info, eol C.int, ud unsafe.Pointer) {
	fireList(`sample info`, i, eol, ud)
}

//export goStatInfo
func goStatInfo(c *C.pa_context, i *C.pa_stat_info, ud unsafe.Pointer) {
	if fn, ok := callback.TakeAs[func(*C.pa_stat_info)](callback.Default, tokenOf(ud)); ok {
		fire(`stat info`, func() {
			fn(i)
		})
	}
}

//export goStreamNotify
func goStreamNotify(s *C.pa_stream, ud unsafe.Pointer) {
	if fn, ok := callback.LookupAs[func()](callback.Default, tokenOf(ud)); ok {
		fire(`stream notify`, fn)
	}
}

//export goStreamRequest
func goStreamRequest(s *C.pa_stream, nbytes C.size_t, ud unsafe.Pointer) {
	if fn, ok := callback.LookupAs[func(int)](callback.Default, tokenOf(ud)); ok {
		fire(`stream request`, func() {
			fn(int(nbytes))
		})
	}
}

//export goStreamSuccess
func goStreamSuccess(s *C.pa_stream, success C.int, ud unsafe.Pointer) {
	if fn, ok := callback.TakeAs[func(bool)](callback.Default, tokenOf(ud)); ok {
		fire(`stream success`, func() {
			fn(success != 0)
		})
	}
}

//export goStreamEvent
func goStreamEvent(s *C.pa_stream, name *C.char, p *C.pa_proplist, ud unsafe.Pointer) {
	if fn, ok := callback.LookupAs[func(string, ProplistRef)](callback.Default, tokenOf(ud)); ok {
		fire(`stream event`, func() {
			fn(goString(name), weakProplist(p))
		})
	}
}

//export goOperationNotify
func goOperationNotify(o *C.pa_operation, ud unsafe.Pointer) {
	if fn, ok := callback.LookupAs[func()](callback.Default, tokenOf(ud)); ok {
		fire(`operation state`, fn)
	}
}

//export goTimeEvent
func goTimeEvent(a *C.pa_mainloop_api, e *C.pa_time_event, tv *C.struct_timeval, ud unsafe.Pointer) {
	if fn, ok := callback.LookupAs[func()](callback.Default, tokenOf(ud)); ok {
		fire(`time event`, fn)
	}
}

//export goDeferEvent
func goDeferEvent(a *C.pa_mainloop_api, e *C.pa_defer_event, ud unsafe.Pointer) {
	if fn, ok := callback.LookupAs[func()](callback.Default, tokenOf(ud)); ok {
		fire(`defer event`, fn)
	}
}

//export goMainloopOnce
func goMainloopOnce(a *C.pa_mainloop_api, ud unsafe.Pointer) {
	if fn, ok := callback.TakeAs[func()](callback.Default, tokenOf(ud)); ok {
		fire(`mainloop once`, fn)
	}
}

//export goThreadedOnce
func goThreadedOnce(m *C.pa_threaded_mainloop, ud unsafe.Pointer) {
	if fn, ok := callback.TakeAs[func()](callback.Default, tokenOf(ud)); ok {
		fire(`threaded mainloop once`, fn)
	}
}
