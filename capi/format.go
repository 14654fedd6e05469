package capi

// Encoding identifies the stream encoding of a format (PCM or a compressed
// passthrough format).
type Encoding int32

const (
	EncodingAny              Encoding = 0
	EncodingPCM              Encoding = 1
	EncodingAC3IEC61937      Encoding = 2
	EncodingEAC3IEC61937     Encoding = 3
	EncodingMPEGIEC61937     Encoding = 4
	EncodingDTSIEC61937      Encoding = 5
	EncodingMPEG2AACIEC61937 Encoding = 6
	EncodingTrueHDIEC61937   Encoding = 7 // 13.0 and later
	EncodingDTSHDIEC61937    Encoding = 8 // 13.0 and later
	EncodingInvalid          Encoding = -1
)

func (self Encoding) IsPCM() bool {
	return self == EncodingPCM
}

var encodingNames = map[Encoding]string{
	EncodingAny:              `any`,
	EncodingPCM:              `pcm`,
	EncodingAC3IEC61937:      `ac3-iec61937`,
	EncodingEAC3IEC61937:     `eac3-iec61937`,
	EncodingMPEGIEC61937:     `mpeg-iec61937`,
	EncodingDTSIEC61937:      `dts-iec61937`,
	EncodingMPEG2AACIEC61937: `mpeg2-aac-iec61937`,
	EncodingTrueHDIEC61937:   `truehd-iec61937`,
	EncodingDTSHDIEC61937:    `dtshd-iec61937`,
}

// String returns the name libpulse uses for the encoding, or "invalid".
func (self Encoding) String() string {
	if name, ok := encodingNames[self]; ok {
		return name
	}

	return `invalid`
}

// PropType is the type of a format info property value.
type PropType int32

const (
	PropInt         PropType = 0
	PropIntRange    PropType = 1
	PropIntArray    PropType = 2
	PropString      PropType = 3
	PropStringArray PropType = 4
	PropInvalid     PropType = -1
)

// StatInfo mirrors pa_stat_info: memory usage of the daemon.
type StatInfo struct {
	MemblockTotal         uint32
	MemblockTotalSize     uint32
	MemblockAllocated     uint32
	MemblockAllocatedSize uint32
	ScacheSize            uint32
}
