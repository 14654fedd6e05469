//go:build pulse_v14 || pulse_v15

package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

import (
	"github.com/auroralaboratories/pulse-binding/capi"
)

func fillSinkPortExtra(port *PortInfo, p *C.pa_sink_port_info) {
	port.AvailabilityGroup = goString(p.availability_group)
	port.Type = capi.DevicePortType(p._type)
}

func fillSourcePortExtra(port *PortInfo, p *C.pa_source_port_info) {
	port.AvailabilityGroup = goString(p.availability_group)
	port.Type = capi.DevicePortType(p._type)
}

func fillCardPortExtra(port *CardPortInfo, p *C.pa_card_port_info) {
	port.AvailabilityGroup = goString(p.availability_group)
	port.Type = capi.DevicePortType(p._type)
}
