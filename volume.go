package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"unsafe"

	"github.com/auroralaboratories/pulse-binding/capi"
)

// VolumeFromLinear converts a linear amplitude factor to a volume on the
// cubic scale.
func VolumeFromLinear(v float64) capi.Volume {
	return capi.Volume(C.pa_sw_volume_from_linear(C.double(v)))
}

func VolumeToLinear(v capi.Volume) float64 {
	return float64(C.pa_sw_volume_to_linear(C.pa_volume_t(v)))
}

func VolumeFromDB(db float64) capi.Volume {
	return capi.Volume(C.pa_sw_volume_from_dB(C.double(db)))
}

func VolumeToDB(v capi.Volume) float64 {
	return float64(C.pa_sw_volume_to_dB(C.pa_volume_t(v)))
}

// CVolumeString renders a per-channel volume using the channel names of cmap.
func CVolumeString(cv capi.CVolume, cmap capi.ChannelMap) string {
	buf := make([]byte, C.PA_CVOLUME_SNPRINT_VERBOSE_MAX)

	C.pa_cvolume_snprint_verbose(
		(*C.char)(unsafe.Pointer(&buf[0])),
		C.size_t(len(buf)),
		cvolumePtr(&cv),
		channelMapPtr(&cmap),
		0,
	)

	return cstringFromBuf(buf)
}

// SetBalance adjusts the left/right balance of cv (-1.0 to 1.0).
func SetBalance(cv capi.CVolume, cmap capi.ChannelMap, balance float64) (capi.CVolume, bool) {
	if C.pa_cvolume_set_balance(cvolumePtr(&cv), channelMapPtr(&cmap), C.float(balance)) == nil {
		return cv, false
	}

	return cv, true
}

func Balance(cv capi.CVolume, cmap capi.ChannelMap) float64 {
	return float64(C.pa_cvolume_get_balance(cvolumePtr(&cv), channelMapPtr(&cmap)))
}
