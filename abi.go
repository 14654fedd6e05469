package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
)

type abiCheck struct {
	name   string
	mirror uint64
	native uint64
}

// abiChecks pairs every mirrored layout and a sample of discriminants with
// the values the C compiler sees in the installed headers.
func abiChecks() []abiCheck {
	return []abiCheck{
		{`sizeof(pa_sample_spec)`, uint64(unsafe.Sizeof(capi.SampleSpec{})), uint64(C.sizeof_pa_sample_spec)},
		{`sizeof(pa_channel_map)`, uint64(unsafe.Sizeof(capi.ChannelMap{})), uint64(C.sizeof_pa_channel_map)},
		{`sizeof(pa_cvolume)`, uint64(unsafe.Sizeof(capi.CVolume{})), uint64(C.sizeof_pa_cvolume)},
		{`sizeof(pa_buffer_attr)`, uint64(unsafe.Sizeof(capi.BufferAttr{})), uint64(C.sizeof_pa_buffer_attr)},
		{`sizeof(pa_stat_info)`, uint64(unsafe.Sizeof(capi.StatInfo{})), uint64(C.sizeof_pa_stat_info)},
		{`offsetof(pa_stat_info, scache_size)`, uint64(unsafe.Offsetof(capi.StatInfo{}.ScacheSize)), uint64(unsafe.Offsetof(C.pa_stat_info{}.scache_size))},
		{`offsetof(pa_sample_spec, rate)`, uint64(unsafe.Offsetof(capi.SampleSpec{}.Rate)), uint64(unsafe.Offsetof(C.pa_sample_spec{}.rate))},
		{`offsetof(pa_sample_spec, channels)`, uint64(unsafe.Offsetof(capi.SampleSpec{}.Channels)), uint64(unsafe.Offsetof(C.pa_sample_spec{}.channels))},
		{`offsetof(pa_cvolume, values)`, uint64(unsafe.Offsetof(capi.CVolume{}.Values)), uint64(unsafe.Offsetof(C.pa_cvolume{}.values))},
		{`offsetof(pa_channel_map, map)`, uint64(unsafe.Offsetof(capi.ChannelMap{}.Map)), uint64(unsafe.Offsetof(C.pa_channel_map{}._map))},
		{`PA_CHANNELS_MAX`, uint64(capi.ChannelsMax), uint64(C.PA_CHANNELS_MAX)},
		{`PA_RATE_MAX`, uint64(capi.RateMax), uint64(C.PA_RATE_MAX)},
		{`PA_INVALID_INDEX`, uint64(capi.InvalidIndex), uint64(C.PA_INVALID_INDEX)},
		{`PA_VOLUME_NORM`, uint64(capi.VolumeNorm), uint64(C.PA_VOLUME_NORM)},
		{`PA_VOLUME_MUTED`, uint64(capi.VolumeMuted), uint64(C.PA_VOLUME_MUTED)},
		{`PA_SAMPLE_S16LE`, uint64(capi.SampleS16LE), uint64(C.PA_SAMPLE_S16LE)},
		{`PA_SAMPLE_S24_32BE`, uint64(capi.SampleS24_32BE), uint64(C.PA_SAMPLE_S24_32BE)},
		{`PA_SAMPLE_MAX`, uint64(capi.SampleMax), uint64(C.PA_SAMPLE_MAX)},
		{`PA_CHANNEL_POSITION_LFE`, uint64(capi.PositionLFE), uint64(C.PA_CHANNEL_POSITION_LFE)},
		{`PA_CHANNEL_POSITION_AUX31`, uint64(capi.PositionAux31), uint64(C.PA_CHANNEL_POSITION_AUX31)},
		{`PA_CHANNEL_POSITION_MAX`, uint64(capi.PositionMax), uint64(C.PA_CHANNEL_POSITION_MAX)},
		{`PA_CONTEXT_TERMINATED`, uint64(capi.ContextTerminated), uint64(C.PA_CONTEXT_TERMINATED)},
		{`PA_CONTEXT_NOFAIL`, uint64(capi.ContextNoFail), uint64(C.PA_CONTEXT_NOFAIL)},
		{`PA_STREAM_TERMINATED`, uint64(capi.StreamTerminated), uint64(C.PA_STREAM_TERMINATED)},
		{`PA_STREAM_UPLOAD`, uint64(capi.StreamUpload), uint64(C.PA_STREAM_UPLOAD)},
		{`PA_STREAM_PASSTHROUGH`, uint64(capi.StreamPassthrough), uint64(C.PA_STREAM_PASSTHROUGH)},
		{`PA_SEEK_RELATIVE_END`, uint64(capi.SeekRelativeEnd), uint64(C.PA_SEEK_RELATIVE_END)},
		{`PA_OPERATION_CANCELLED`, uint64(capi.OperationCancelled), uint64(C.PA_OPERATION_CANCELLED)},
		{`PA_SUBSCRIPTION_MASK_ALL`, uint64(capi.SubscriptionMaskAll), uint64(C.PA_SUBSCRIPTION_MASK_ALL)},
		{`PA_SINK_SET_FORMATS`, uint64(capi.SinkSetFormats), uint64(C.PA_SINK_SET_FORMATS)},
		{`PA_SOURCE_FLAT_VOLUME`, uint64(capi.SourceFlatVolume), uint64(C.PA_SOURCE_FLAT_VOLUME)},
		{`PA_PORT_AVAILABLE_YES`, uint64(capi.PortAvailableYes), uint64(C.PA_PORT_AVAILABLE_YES)},
		{`PA_ERR_BUSY`, uint64(capi.ErrBusy), uint64(C.PA_ERR_BUSY)},
		{`PA_ERR_MAX`, uint64(capi.ErrMax), uint64(C.PA_ERR_MAX)},
		{`PA_ENCODING_MPEG2_AAC_IEC61937`, uint64(capi.EncodingMPEG2AACIEC61937), uint64(C.PA_ENCODING_MPEG2_AAC_IEC61937)},
		{`PA_PROP_TYPE_STRING_ARRAY`, uint64(capi.PropStringArray), uint64(C.PA_PROP_TYPE_STRING_ARRAY)},
		{`PA_UPDATE_REPLACE`, uint64(capi.UpdateReplace), uint64(C.PA_UPDATE_REPLACE)},
	}
}

// verifyABI returns one error per mirrored value that disagrees with the
// installed headers.
func verifyABI() []error {
	var errs []error

	for _, check := range abiChecks() {
		if check.mirror != check.native {
			errs = append(errs, fmt.Errorf("abi mismatch: %s is %d in Go, %d in C", check.name, check.mirror, check.native))
		}
	}

	return errs
}
