package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
)

// ListState tells a list callback what the current invocation carries.
type ListState int

const (
	ListItem  ListState = iota // Item holds the next entry
	ListEnd                    // the list is complete
	ListError                  // the request failed; see Context.Errno
)

func listStateOf(eol C.int) ListState {
	switch {
	case eol == 0:
		return ListItem
	case eol > 0:
		return ListEnd
	default:
		return ListError
	}
}

// ListResult is delivered once per entry and once more at the end.
type ListResult[T any] struct {
	State ListState
	Item  *T
}

func goString(s *C.char) string {
	if s == nil {
		return ``
	}

	return C.GoString(s)
}

func serverInfoOf(i *C.pa_server_info) *ServerInfo {
	return &ServerInfo{
		UserName:          goString(i.user_name),
		HostName:          goString(i.host_name),
		ServerVersion:     goString(i.server_version),
		ServerName:        goString(i.server_name),
		SampleSpec:        sampleSpecOf(&i.sample_spec),
		DefaultSinkName:   goString(i.default_sink_name),
		DefaultSourceName: goString(i.default_source_name),
		Cookie:            uint32(i.cookie),
		ChannelMap:        channelMapOf(&i.channel_map),
	}
}

func sinkPortsOf(ports **C.pa_sink_port_info, n C.uint32_t, active *C.pa_sink_port_info) ([]PortInfo, string) {
	out := make([]PortInfo, 0, int(n))
	activeName := ``

	if ports != nil && n > 0 {
		for _, p := range unsafe.Slice(ports, int(n)) {
			if p == nil {
				continue
			}

			port := PortInfo{
				Name:        goString(p.name),
				Description: goString(p.description),
				Priority:    uint32(p.priority),
				Available:   capi.PortAvailable(p.available),
			}

			fillSinkPortExtra(&port, p)
			out = append(out, port)
		}
	}

	if active != nil {
		activeName = goString(active.name)
	}

	return out, activeName
}

func sourcePortsOf(ports **C.pa_source_port_info, n C.uint32_t, active *C.pa_source_port_info) ([]PortInfo, string) {
	out := make([]PortInfo, 0, int(n))
	activeName := ``

	if ports != nil && n > 0 {
		for _, p := range unsafe.Slice(ports, int(n)) {
			if p == nil {
				continue
			}

			port := PortInfo{
				Name:        goString(p.name),
				Description: goString(p.description),
				Priority:    uint32(p.priority),
				Available:   capi.PortAvailable(p.available),
			}

			fillSourcePortExtra(&port, p)
			out = append(out, port)
		}
	}

	if active != nil {
		activeName = goString(active.name)
	}

	return out, activeName
}

func formatInfoOf(f *C.pa_format_info) FormatInfo {
	if f == nil {
		return FormatInfo{Encoding: capi.EncodingInvalid}
	}

	return FormatInfo{
		Encoding:   capi.Encoding(f.encoding),
		Properties: proplistMap(f.plist),
	}
}

func formatsOf(formats **C.pa_format_info, n C.uint8_t) []FormatInfo {
	out := make([]FormatInfo, 0, int(n))

	if formats != nil && n > 0 {
		for _, f := range unsafe.Slice(formats, int(n)) {
			if f != nil {
				out = append(out, formatInfoOf(f))
			}
		}
	}

	return out
}

func cardProfileOf(p *C.pa_card_profile_info2) CardProfileInfo {
	return CardProfileInfo{
		Name:        goString(p.name),
		Description: goString(p.description),
		NSinks:      uint32(p.n_sinks),
		NSources:    uint32(p.n_sources),
		Priority:    uint32(p.priority),
		Available:   p.available != 0,
	}
}

func cardInfoOf(i *C.pa_card_info) *CardInfo {
	info := &CardInfo{
		Index:       uint32(i.index),
		Name:        goString(i.name),
		OwnerModule: uint32(i.owner_module),
		Driver:      goString(i.driver),
		Profiles:    make([]CardProfileInfo, 0, int(i.n_profiles)),
		Properties:  proplistMap(i.proplist),
		Ports:       make([]CardPortInfo, 0, int(i.n_ports)),
	}

	if i.profiles2 != nil && i.n_profiles > 0 {
		for _, p := range unsafe.Slice(i.profiles2, int(i.n_profiles)) {
			if p != nil {
				info.Profiles = append(info.Profiles, cardProfileOf(p))
			}
		}
	}

	if i.active_profile2 != nil {
		info.ActiveProfile = goString(i.active_profile2.name)
	}

	if i.ports != nil && i.n_ports > 0 {
		for _, p := range unsafe.Slice(i.ports, int(i.n_ports)) {
			if p == nil {
				continue
			}

			port := CardPortInfo{
				Name:          goString(p.name),
				Description:   goString(p.description),
				Priority:      uint32(p.priority),
				Available:     capi.PortAvailable(p.available),
				Direction:     capi.Direction(p.direction),
				Properties:    proplistMap(p.proplist),
				LatencyOffset: int64(p.latency_offset),
			}

			if p.profiles2 != nil && p.n_profiles > 0 {
				for _, profile := range unsafe.Slice(p.profiles2, int(p.n_profiles)) {
					if profile != nil {
						port.Profiles = append(port.Profiles, goString(profile.name))
					}
				}
			}

			fillCardPortExtra(&port, p)
			info.Ports = append(info.Ports, port)
		}
	}

	return info
}

func sampleInfoOf(i *C.pa_sample_info) *SampleInfo {
	return &SampleInfo{
		Index:      uint32(i.index),
		Name:       goString(i.name),
		Volume:     cvolumeOf(&i.volume),
		SampleSpec: sampleSpecOf(&i.sample_spec),
		ChannelMap: channelMapOf(&i.channel_map),
		Duration:   capi.Usec(i.duration),
		Bytes:      uint32(i.bytes),
		Lazy:       i.lazy != 0,
		Filename:   goString(i.filename),
		Properties: proplistMap(i.proplist),
	}
}

func sinkInfoOf(i *C.pa_sink_info) *SinkInfo {
	ports, active := sinkPortsOf(i.ports, i.n_ports, i.active_port)

	return &SinkInfo{
		Name:              goString(i.name),
		Index:             uint32(i.index),
		Description:       goString(i.description),
		SampleSpec:        sampleSpecOf(&i.sample_spec),
		ChannelMap:        channelMapOf(&i.channel_map),
		OwnerModule:       uint32(i.owner_module),
		Volume:            cvolumeOf(&i.volume),
		Mute:              i.mute != 0,
		MonitorSource:     uint32(i.monitor_source),
		MonitorSourceName: goString(i.monitor_source_name),
		Latency:           capi.Usec(i.latency),
		Driver:            goString(i.driver),
		Flags:             capi.SinkFlags(i.flags),
		Properties:        proplistMap(i.proplist),
		ConfiguredLatency: capi.Usec(i.configured_latency),
		BaseVolume:        capi.Volume(i.base_volume),
		State:             capi.SinkState(i.state),
		NVolumeSteps:      uint32(i.n_volume_steps),
		Card:              uint32(i.card),
		Ports:             ports,
		ActivePort:        active,
		Formats:           formatsOf(i.formats, i.n_formats),
	}
}

func sourceInfoOf(i *C.pa_source_info) *SourceInfo {
	ports, active := sourcePortsOf(i.ports, i.n_ports, i.active_port)

	return &SourceInfo{
		Name:              goString(i.name),
		Index:             uint32(i.index),
		Description:       goString(i.description),
		SampleSpec:        sampleSpecOf(&i.sample_spec),
		ChannelMap:        channelMapOf(&i.channel_map),
		OwnerModule:       uint32(i.owner_module),
		Volume:            cvolumeOf(&i.volume),
		Mute:              i.mute != 0,
		MonitorOfSink:     uint32(i.monitor_of_sink),
		MonitorOfSinkName: goString(i.monitor_of_sink_name),
		Latency:           capi.Usec(i.latency),
		Driver:            goString(i.driver),
		Flags:             capi.SourceFlags(i.flags),
		Properties:        proplistMap(i.proplist),
		ConfiguredLatency: capi.Usec(i.configured_latency),
		BaseVolume:        capi.Volume(i.base_volume),
		State:             capi.SourceState(i.state),
		NVolumeSteps:      uint32(i.n_volume_steps),
		Card:              uint32(i.card),
		Ports:             ports,
		ActivePort:        active,
		Formats:           formatsOf(i.formats, i.n_formats),
	}
}

func sinkInputInfoOf(i *C.pa_sink_input_info) *SinkInputInfo {
	return &SinkInputInfo{
		Index:          uint32(i.index),
		Name:           goString(i.name),
		OwnerModule:    uint32(i.owner_module),
		Client:         uint32(i.client),
		Sink:           uint32(i.sink),
		SampleSpec:     sampleSpecOf(&i.sample_spec),
		ChannelMap:     channelMapOf(&i.channel_map),
		Volume:         cvolumeOf(&i.volume),
		BufferUsec:     capi.Usec(i.buffer_usec),
		SinkUsec:       capi.Usec(i.sink_usec),
		ResampleMethod: goString(i.resample_method),
		Driver:         goString(i.driver),
		Mute:           i.mute != 0,
		Properties:     proplistMap(i.proplist),
		Corked:         i.corked != 0,
		HasVolume:      i.has_volume != 0,
		VolumeWritable: i.volume_writable != 0,
		Format:         formatInfoOf(i.format),
	}
}

func sourceOutputInfoOf(i *C.pa_source_output_info) *SourceOutputInfo {
	return &SourceOutputInfo{
		Index:          uint32(i.index),
		Name:           goString(i.name),
		OwnerModule:    uint32(i.owner_module),
		Client:         uint32(i.client),
		Source:         uint32(i.source),
		SampleSpec:     sampleSpecOf(&i.sample_spec),
		ChannelMap:     channelMapOf(&i.channel_map),
		BufferUsec:     capi.Usec(i.buffer_usec),
		SourceUsec:     capi.Usec(i.source_usec),
		ResampleMethod: goString(i.resample_method),
		Driver:         goString(i.driver),
		Properties:     proplistMap(i.proplist),
		Corked:         i.corked != 0,
		Volume:         cvolumeOf(&i.volume),
		Mute:           i.mute != 0,
		HasVolume:      i.has_volume != 0,
		VolumeWritable: i.volume_writable != 0,
		Format:         formatInfoOf(i.format),
	}
}

func clientInfoOf(i *C.pa_client_info) *ClientInfo {
	return &ClientInfo{
		Index:       uint32(i.index),
		Name:        goString(i.name),
		OwnerModule: uint32(i.owner_module),
		Driver:      goString(i.driver),
		Properties:  proplistMap(i.proplist),
	}
}

func moduleInfoOf(i *C.pa_module_info) *ModuleInfo {
	return &ModuleInfo{
		Index:      uint32(i.index),
		Name:       goString(i.name),
		Argument:   goString(i.argument),
		NUsed:      uint32(i.n_used),
		Properties: proplistMap(i.proplist),
	}
}

// listOp registers a list callback, converting each native entry with
// convert while the pointer is still valid.
func listOp[N any, T any](self *Context, fn func(ListResult[T]), convert func(*N) *T, request func(*C.pa_context, unsafe.Pointer) *C.pa_operation) (*Operation, error) {
	c, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	tok := self.scope.Once(func(info *N, eol C.int) {
		result := ListResult[T]{State: listStateOf(eol)}

		if result.State == ListItem && info != nil {
			result.Item = convert(info)
		}

		if fn != nil {
			fn(result)
		}
	})

	return newOperation(request(c, userdata(tok)), self.scope, tok, self.Errno)
}

// GetServerInfo fetches daemon information. fn receives nil on failure.
func (self *Context) GetServerInfo(fn func(*ServerInfo)) (*Operation, error) {
	c, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	tok := self.scope.Once(func(info *C.pa_server_info) {
		var out *ServerInfo

		if info != nil {
			out = serverInfoOf(info)
		}

		if fn != nil {
			fn(out)
		}
	})

	ptr := C.pa_context_get_server_info(c, (C.pa_server_info_cb_t)(unsafe.Pointer(C.goServerInfo)), userdata(tok))

	return newOperation(ptr, self.scope, tok, self.Errno)
}

func (self *Context) GetSinkInfoList(fn func(ListResult[SinkInfo])) (*Operation, error) {
	return listOp(self, fn, sinkInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_sink_info_list(c, (C.pa_sink_info_cb_t)(unsafe.Pointer(C.goSinkInfo)), ud)
	})
}

func (self *Context) GetSinkInfoByIndex(index uint32, fn func(ListResult[SinkInfo])) (*Operation, error) {
	return listOp(self, fn, sinkInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_sink_info_by_index(c, C.uint32_t(index), (C.pa_sink_info_cb_t)(unsafe.Pointer(C.goSinkInfo)), ud)
	})
}

func (self *Context) GetSinkInfoByName(name string, fn func(ListResult[SinkInfo])) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return listOp(self, fn, sinkInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_sink_info_by_name(c, cname, (C.pa_sink_info_cb_t)(unsafe.Pointer(C.goSinkInfo)), ud)
	})
}

func (self *Context) GetSourceInfoList(fn func(ListResult[SourceInfo])) (*Operation, error) {
	return listOp(self, fn, sourceInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_source_info_list(c, (C.pa_source_info_cb_t)(unsafe.Pointer(C.goSourceInfo)), ud)
	})
}

func (self *Context) GetSourceInfoByIndex(index uint32, fn func(ListResult[SourceInfo])) (*Operation, error) {
	return listOp(self, fn, sourceInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_source_info_by_index(c, C.uint32_t(index), (C.pa_source_info_cb_t)(unsafe.Pointer(C.goSourceInfo)), ud)
	})
}

func (self *Context) GetSourceInfoByName(name string, fn func(ListResult[SourceInfo])) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return listOp(self, fn, sourceInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_source_info_by_name(c, cname, (C.pa_source_info_cb_t)(unsafe.Pointer(C.goSourceInfo)), ud)
	})
}

func (self *Context) GetSinkInputInfoList(fn func(ListResult[SinkInputInfo])) (*Operation, error) {
	return listOp(self, fn, sinkInputInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_sink_input_info_list(c, (C.pa_sink_input_info_cb_t)(unsafe.Pointer(C.goSinkInputInfo)), ud)
	})
}

func (self *Context) GetSinkInputInfo(index uint32, fn func(ListResult[SinkInputInfo])) (*Operation, error) {
	return listOp(self, fn, sinkInputInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_sink_input_info(c, C.uint32_t(index), (C.pa_sink_input_info_cb_t)(unsafe.Pointer(C.goSinkInputInfo)), ud)
	})
}

func (self *Context) GetSourceOutputInfoList(fn func(ListResult[SourceOutputInfo])) (*Operation, error) {
	return listOp(self, fn, sourceOutputInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_source_output_info_list(c, (C.pa_source_output_info_cb_t)(unsafe.Pointer(C.goSourceOutputInfo)), ud)
	})
}

func (self *Context) GetClientInfoList(fn func(ListResult[ClientInfo])) (*Operation, error) {
	return listOp(self, fn, clientInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_client_info_list(c, (C.pa_client_info_cb_t)(unsafe.Pointer(C.goClientInfo)), ud)
	})
}

func (self *Context) GetClientInfo(index uint32, fn func(ListResult[ClientInfo])) (*Operation, error) {
	return listOp(self, fn, clientInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_client_info(c, C.uint32_t(index), (C.pa_client_info_cb_t)(unsafe.Pointer(C.goClientInfo)), ud)
	})
}

func (self *Context) GetModuleInfoList(fn func(ListResult[ModuleInfo])) (*Operation, error) {
	return listOp(self, fn, moduleInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_module_info_list(c, (C.pa_module_info_cb_t)(unsafe.Pointer(C.goModuleInfo)), ud)
	})
}

func (self *Context) GetModuleInfo(index uint32, fn func(ListResult[ModuleInfo])) (*Operation, error) {
	return listOp(self, fn, moduleInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_module_info(c, C.uint32_t(index), (C.pa_module_info_cb_t)(unsafe.Pointer(C.goModuleInfo)), ud)
	})
}

// LoadModule loads a server module. fn receives the new module's index, or
// capi.InvalidIndex on failure.
func (self *Context) LoadModule(name string, argument string, fn func(index uint32)) (*Operation, error) {
	c, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	carg := C.CString(argument)
	defer C.free(unsafe.Pointer(carg))

	if fn == nil {
		fn = func(uint32) {}
	}

	tok := self.scope.Once(fn)
	ptr := C.pa_context_load_module(c, cname, carg, (C.pa_context_index_cb_t)(unsafe.Pointer(C.goContextIndex)), userdata(tok))

	return newOperation(ptr, self.scope, tok, self.Errno)
}

func (self *Context) UnloadModule(index uint32, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_unload_module(c, C.uint32_t(index), cb, ud)
	})
}

func (self *Context) SetSinkVolumeByIndex(index uint32, volume capi.CVolume, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_sink_volume_by_index(c, C.uint32_t(index), cvolumePtr(&volume), cb, ud)
	})
}

func (self *Context) SetSinkMuteByIndex(index uint32, mute bool, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_sink_mute_by_index(c, C.uint32_t(index), cbool(mute), cb, ud)
	})
}

func (self *Context) SetSinkPortByIndex(index uint32, port string, fn func(success bool)) (*Operation, error) {
	cport := C.CString(port)
	defer C.free(unsafe.Pointer(cport))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_sink_port_by_index(c, C.uint32_t(index), cport, cb, ud)
	})
}

func (self *Context) SuspendSinkByIndex(index uint32, suspend bool, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_suspend_sink_by_index(c, C.uint32_t(index), cbool(suspend), cb, ud)
	})
}

func (self *Context) SetSourceVolumeByIndex(index uint32, volume capi.CVolume, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_source_volume_by_index(c, C.uint32_t(index), cvolumePtr(&volume), cb, ud)
	})
}

func (self *Context) SetSourceMuteByIndex(index uint32, mute bool, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_source_mute_by_index(c, C.uint32_t(index), cbool(mute), cb, ud)
	})
}

func (self *Context) SetSinkInputVolume(index uint32, volume capi.CVolume, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_sink_input_volume(c, C.uint32_t(index), cvolumePtr(&volume), cb, ud)
	})
}

func (self *Context) SetSinkInputMute(index uint32, mute bool, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_sink_input_mute(c, C.uint32_t(index), cbool(mute), cb, ud)
	})
}

func (self *Context) MoveSinkInputByIndex(index uint32, sink uint32, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_move_sink_input_by_index(c, C.uint32_t(index), C.uint32_t(sink), cb, ud)
	})
}

func (self *Context) KillSinkInput(index uint32, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_kill_sink_input(c, C.uint32_t(index), cb, ud)
	})
}

func (self *Context) KillClient(index uint32, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_kill_client(c, C.uint32_t(index), cb, ud)
	})
}

// PlaySample plays a sample from the server's sample cache on device (the
// default sink when empty).
func (self *Context) PlaySample(name string, device string, volume capi.Volume, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cdev := optString(device)
	defer C.free(unsafe.Pointer(cdev))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_play_sample(c, cname, cdev, C.pa_volume_t(volume), cb, ud)
	})
}

func (self *Context) RemoveSample(name string, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_remove_sample(c, cname, cb, ud)
	})
}

func (self *Context) GetSourceOutputInfo(index uint32, fn func(ListResult[SourceOutputInfo])) (*Operation, error) {
	return listOp(self, fn, sourceOutputInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_source_output_info(c, C.uint32_t(index), (C.pa_source_output_info_cb_t)(unsafe.Pointer(C.goSourceOutputInfo)), ud)
	})
}

func (self *Context) SetSourceOutputVolume(index uint32, volume capi.CVolume, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_source_output_volume(c, C.uint32_t(index), cvolumePtr(&volume), cb, ud)
	})
}

func (self *Context) SetSourceOutputMute(index uint32, mute bool, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_source_output_mute(c, C.uint32_t(index), cbool(mute), cb, ud)
	})
}

func (self *Context) MoveSourceOutputByIndex(index uint32, source uint32, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_move_source_output_by_index(c, C.uint32_t(index), C.uint32_t(source), cb, ud)
	})
}

func (self *Context) MoveSourceOutputByName(index uint32, source string, fn func(success bool)) (*Operation, error) {
	cname := C.CString(source)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_move_source_output_by_name(c, C.uint32_t(index), cname, cb, ud)
	})
}

func (self *Context) KillSourceOutput(index uint32, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_kill_source_output(c, C.uint32_t(index), cb, ud)
	})
}

func (self *Context) MoveSinkInputByName(index uint32, sink string, fn func(success bool)) (*Operation, error) {
	cname := C.CString(sink)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_move_sink_input_by_name(c, C.uint32_t(index), cname, cb, ud)
	})
}

func (self *Context) SetSinkVolumeByName(name string, volume capi.CVolume, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_sink_volume_by_name(c, cname, cvolumePtr(&volume), cb, ud)
	})
}

func (self *Context) SetSinkMuteByName(name string, mute bool, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_sink_mute_by_name(c, cname, cbool(mute), cb, ud)
	})
}

func (self *Context) SetSinkPortByName(name string, port string, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cport := C.CString(port)
	defer C.free(unsafe.Pointer(cport))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_sink_port_by_name(c, cname, cport, cb, ud)
	})
}

func (self *Context) SuspendSinkByName(name string, suspend bool, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_suspend_sink_by_name(c, cname, cbool(suspend), cb, ud)
	})
}

func (self *Context) SetSourceVolumeByName(name string, volume capi.CVolume, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_source_volume_by_name(c, cname, cvolumePtr(&volume), cb, ud)
	})
}

func (self *Context) SetSourceMuteByName(name string, mute bool, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_source_mute_by_name(c, cname, cbool(mute), cb, ud)
	})
}

func (self *Context) SetSourcePortByIndex(index uint32, port string, fn func(success bool)) (*Operation, error) {
	cport := C.CString(port)
	defer C.free(unsafe.Pointer(cport))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_source_port_by_index(c, C.uint32_t(index), cport, cb, ud)
	})
}

func (self *Context) SetSourcePortByName(name string, port string, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cport := C.CString(port)
	defer C.free(unsafe.Pointer(cport))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_source_port_by_name(c, cname, cport, cb, ud)
	})
}

func (self *Context) SuspendSourceByIndex(index uint32, suspend bool, fn func(success bool)) (*Operation, error) {
	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_suspend_source_by_index(c, C.uint32_t(index), cbool(suspend), cb, ud)
	})
}

func (self *Context) SuspendSourceByName(name string, suspend bool, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_suspend_source_by_name(c, cname, cbool(suspend), cb, ud)
	})
}

func (self *Context) GetCardInfoList(fn func(ListResult[CardInfo])) (*Operation, error) {
	return listOp(self, fn, cardInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_card_info_list(c, (C.pa_card_info_cb_t)(unsafe.Pointer(C.goCardInfo)), ud)
	})
}

func (self *Context) GetCardInfoByIndex(index uint32, fn func(ListResult[CardInfo])) (*Operation, error) {
	return listOp(self, fn, cardInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_card_info_by_index(c, C.uint32_t(index), (C.pa_card_info_cb_t)(unsafe.Pointer(C.goCardInfo)), ud)
	})
}

func (self *Context) GetCardInfoByName(name string, fn func(ListResult[CardInfo])) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return listOp(self, fn, cardInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_card_info_by_name(c, cname, (C.pa_card_info_cb_t)(unsafe.Pointer(C.goCardInfo)), ud)
	})
}

func (self *Context) SetCardProfileByIndex(index uint32, profile string, fn func(success bool)) (*Operation, error) {
	cprofile := C.CString(profile)
	defer C.free(unsafe.Pointer(cprofile))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_card_profile_by_index(c, C.uint32_t(index), cprofile, cb, ud)
	})
}

func (self *Context) SetCardProfileByName(name string, profile string, fn func(success bool)) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cprofile := C.CString(profile)
	defer C.free(unsafe.Pointer(cprofile))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_card_profile_by_name(c, cname, cprofile, cb, ud)
	})
}

// SetPortLatencyOffset sets the latency offset, in microseconds, of a port
// on the named card.
func (self *Context) SetPortLatencyOffset(card string, port string, offset int64, fn func(success bool)) (*Operation, error) {
	ccard := C.CString(card)
	defer C.free(unsafe.Pointer(ccard))
	cport := C.CString(port)
	defer C.free(unsafe.Pointer(cport))

	return self.successOp(fn, func(c *C.pa_context, cb C.pa_context_success_cb_t, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_set_port_latency_offset(c, ccard, cport, C.int64_t(offset), cb, ud)
	})
}

func (self *Context) GetSampleInfoList(fn func(ListResult[SampleInfo])) (*Operation, error) {
	return listOp(self, fn, sampleInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_sample_info_list(c, (C.pa_sample_info_cb_t)(unsafe.Pointer(C.goSampleInfo)), ud)
	})
}

func (self *Context) GetSampleInfoByIndex(index uint32, fn func(ListResult[SampleInfo])) (*Operation, error) {
	return listOp(self, fn, sampleInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_sample_info_by_index(c, C.uint32_t(index), (C.pa_sample_info_cb_t)(unsafe.Pointer(C.goSampleInfo)), ud)
	})
}

func (self *Context) GetSampleInfoByName(name string, fn func(ListResult[SampleInfo])) (*Operation, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	return listOp(self, fn, sampleInfoOf, func(c *C.pa_context, ud unsafe.Pointer) *C.pa_operation {
		return C.pa_context_get_sample_info_by_name(c, cname, (C.pa_sample_info_cb_t)(unsafe.Pointer(C.goSampleInfo)), ud)
	})
}

// Stat fetches daemon memory usage. fn receives nil on failure.
func (self *Context) Stat(fn func(*capi.StatInfo)) (*Operation, error) {
	c, err := self.h.Get()

	if err != nil {
		return nil, err
	}

	tok := self.scope.Once(func(info *C.pa_stat_info) {
		var out *capi.StatInfo

		if info != nil {
			stat := *(*capi.StatInfo)(unsafe.Pointer(info))
			out = &stat
		}

		if fn != nil {
			fn(out)
		}
	})

	ptr := C.pa_context_stat(c, (C.pa_stat_info_cb_t)(unsafe.Pointer(C.goStatInfo)), userdata(tok))

	return newOperation(ptr, self.scope, tok, self.Errno)
}
