package capi

type SinkState int32

const (
	SinkInvalidState SinkState = -1
	SinkRunning      SinkState = 0
	SinkIdle         SinkState = 1
	SinkSuspended    SinkState = 2
)

func (self SinkState) IsOpened() bool {
	return self == SinkRunning || self == SinkIdle
}

func (self SinkState) String() string {
	switch self {
	case SinkRunning:
		return `running`
	case SinkIdle:
		return `idle`
	case SinkSuspended:
		return `suspended`
	default:
		return `invalid`
	}
}

// SourceState shares its values with SinkState.
type SourceState = SinkState

const (
	SourceInvalidState = SinkInvalidState
	SourceRunning      = SinkRunning
	SourceIdle         = SinkIdle
	SourceSuspended    = SinkSuspended
)

type SinkFlags uint32

const (
	SinkNoFlags        SinkFlags = 0x0
	SinkHwVolumeCtrl   SinkFlags = 0x1
	SinkLatency        SinkFlags = 0x2
	SinkHardware       SinkFlags = 0x4
	SinkNetwork        SinkFlags = 0x8
	SinkHwMuteCtrl     SinkFlags = 0x10
	SinkDecibelVolume  SinkFlags = 0x20
	SinkFlatVolume     SinkFlags = 0x40
	SinkDynamicLatency SinkFlags = 0x80
	SinkSetFormats     SinkFlags = 0x100
)

type SourceFlags uint32

const (
	SourceNoFlags        SourceFlags = 0x0
	SourceHwVolumeCtrl   SourceFlags = 0x1
	SourceLatency        SourceFlags = 0x2
	SourceHardware       SourceFlags = 0x4
	SourceNetwork        SourceFlags = 0x8
	SourceHwMuteCtrl     SourceFlags = 0x10
	SourceDecibelVolume  SourceFlags = 0x20
	SourceDynamicLatency SourceFlags = 0x40
	SourceFlatVolume     SourceFlags = 0x80
)

type PortAvailable int32

const (
	PortAvailableUnknown PortAvailable = 0
	PortAvailableNo      PortAvailable = 1
	PortAvailableYes     PortAvailable = 2
)

func (self PortAvailable) String() string {
	switch self {
	case PortAvailableNo:
		return `no`
	case PortAvailableYes:
		return `yes`
	default:
		return `unknown`
	}
}

// DevicePortType is only reported by servers of version 14 and later.
type DevicePortType int32

const (
	PortTypeUnknown DevicePortType = iota
	PortTypeAux
	PortTypeSpeaker
	PortTypeHeadphones
	PortTypeLine
	PortTypeMic
	PortTypeHeadset
	PortTypeHandset
	PortTypeEarpiece
	PortTypeSPDIF
	PortTypeHDMI
	PortTypeTV
	PortTypeRadio
	PortTypeVideo
	PortTypeUSB
	PortTypeBluetooth
	PortTypePortable
	PortTypeHandsfree
	PortTypeCar
	PortTypeHiFi
	PortTypePhone
	PortTypeNetwork
	PortTypeAnalog
)

var portTypeNames = []string{
	`unknown`, `aux`, `speaker`, `headphones`, `line`, `mic`, `headset`,
	`handset`, `earpiece`, `spdif`, `hdmi`, `tv`, `radio`, `video`, `usb`,
	`bluetooth`, `portable`, `handsfree`, `car`, `hifi`, `phone`, `network`,
	`analog`,
}

func (self DevicePortType) String() string {
	if self >= 0 && int(self) < len(portTypeNames) {
		return portTypeNames[self]
	}

	return `unknown`
}
