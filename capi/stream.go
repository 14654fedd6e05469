package capi

type StreamState int32

const (
	StreamUnconnected StreamState = iota
	StreamCreating
	StreamReady
	StreamFailed
	StreamTerminated
)

func (self StreamState) IsGood() bool {
	return self == StreamCreating || self == StreamReady
}

func (self StreamState) String() string {
	switch self {
	case StreamUnconnected:
		return `unconnected`
	case StreamCreating:
		return `creating`
	case StreamReady:
		return `ready`
	case StreamFailed:
		return `failed`
	case StreamTerminated:
		return `terminated`
	default:
		return `unknown`
	}
}

type StreamDirection int32

const (
	StreamNoDirection StreamDirection = iota
	StreamPlayback
	StreamRecord
	StreamUpload
)

type StreamFlags uint32

const (
	StreamNoFlags                StreamFlags = 0x0
	StreamStartCorked            StreamFlags = 0x1
	StreamInterpolateTiming      StreamFlags = 0x2
	StreamNotMonotonic           StreamFlags = 0x4
	StreamAutoTimingUpdate       StreamFlags = 0x8
	StreamNoRemapChannels        StreamFlags = 0x10
	StreamNoRemixChannels        StreamFlags = 0x20
	StreamFixFormat              StreamFlags = 0x40
	StreamFixRate                StreamFlags = 0x80
	StreamFixChannels            StreamFlags = 0x100
	StreamDontMove               StreamFlags = 0x200
	StreamVariableRate           StreamFlags = 0x400
	StreamPeakDetect             StreamFlags = 0x800
	StreamStartMuted             StreamFlags = 0x1000
	StreamAdjustLatency          StreamFlags = 0x2000
	StreamEarlyRequests          StreamFlags = 0x4000
	StreamDontInhibitAutoSuspend StreamFlags = 0x8000
	StreamStartUnmuted           StreamFlags = 0x10000
	StreamFailOnSuspend          StreamFlags = 0x20000
	StreamRelativeVolume         StreamFlags = 0x40000
	StreamPassthrough            StreamFlags = 0x80000
)

type SeekMode int32

const (
	SeekRelative SeekMode = iota
	SeekAbsolute
	SeekRelativeOnRead
	SeekRelativeEnd
)

// BufferAttr mirrors pa_buffer_attr. A field set to math.MaxUint32 asks the
// server for its default.
type BufferAttr struct {
	MaxLength uint32
	TLength   uint32
	Prebuf    uint32
	MinReq    uint32
	FragSize  uint32
}

// DefaultBufferAttr leaves every field up to the server.
func DefaultBufferAttr() BufferAttr {
	return BufferAttr{
		MaxLength: InvalidIndex,
		TLength:   InvalidIndex,
		Prebuf:    InvalidIndex,
		MinReq:    InvalidIndex,
		FragSize:  InvalidIndex,
	}
}
