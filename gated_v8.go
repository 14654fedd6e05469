//go:build pulse_v8 || pulse_v12 || pulse_v13 || pulse_v14 || pulse_v15

package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"fmt"

	"github.com/auroralaboratories/pulse-binding/capi"
)

// CanLFEBalance reports whether cmap has both LFE and non-LFE channels.
func CanLFEBalance(cmap capi.ChannelMap) bool {
	return C.pa_channel_map_can_lfe_balance(channelMapPtr(&cmap)) != 0
}

// LFEBalance returns the balance between the LFE and the other channels,
// from -1.0 (only non-LFE) to 1.0 (only LFE).
func LFEBalance(cv capi.CVolume, cmap capi.ChannelMap) float32 {
	return float32(C.pa_cvolume_get_lfe_balance(cvolumePtr(&cv), channelMapPtr(&cmap)))
}

// SetLFEBalance adjusts cv in place to the given LFE balance.
func SetLFEBalance(cv *capi.CVolume, cmap capi.ChannelMap, balance float32) error {
	if C.pa_cvolume_set_lfe_balance(cvolumePtr(cv), channelMapPtr(&cmap), C.float(balance)) == nil {
		return fmt.Errorf("set lfe balance %v: %w", balance, Error{Code: capi.ErrInvalid})
	}

	return nil
}
