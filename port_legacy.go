//go:build !pulse_v14 && !pulse_v15

package pulse

// #include "bridge.h"
// #cgo pkg-config: libpulse
import "C"

// Servers before 14.0 report neither availability groups nor port types.

func fillSinkPortExtra(port *PortInfo, p *C.pa_sink_port_info)     {}
func fillSourcePortExtra(port *PortInfo, p *C.pa_source_port_info) {}
func fillCardPortExtra(port *CardPortInfo, p *C.pa_card_port_info) {}
