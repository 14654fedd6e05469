package capi

const (
	ChannelsMax = 32
	RateMax     = 384000
)

type SampleFormat int32

const (
	SampleU8        SampleFormat = 0
	SampleALaw      SampleFormat = 1
	SampleULaw      SampleFormat = 2
	SampleS16LE     SampleFormat = 3
	SampleS16BE     SampleFormat = 4
	SampleFloat32LE SampleFormat = 5
	SampleFloat32BE SampleFormat = 6
	SampleS32LE     SampleFormat = 7
	SampleS32BE     SampleFormat = 8
	SampleS24LE     SampleFormat = 9
	SampleS24BE     SampleFormat = 10
	SampleS24_32LE  SampleFormat = 11
	SampleS24_32BE  SampleFormat = 12
	SampleMax       SampleFormat = 13
	SampleInvalid   SampleFormat = -1
)

var sampleNames = map[SampleFormat]string{
	SampleU8:        `u8`,
	SampleALaw:      `aLaw`,
	SampleULaw:      `uLaw`,
	SampleS16LE:     `s16le`,
	SampleS16BE:     `s16be`,
	SampleFloat32LE: `float32le`,
	SampleFloat32BE: `float32be`,
	SampleS32LE:     `s32le`,
	SampleS32BE:     `s32be`,
	SampleS24LE:     `s24le`,
	SampleS24BE:     `s24be`,
	SampleS24_32LE:  `s24-32le`,
	SampleS24_32BE:  `s24-32be`,
}

func (self SampleFormat) Valid() bool {
	return self >= SampleU8 && self < SampleMax
}

// Size returns the number of bytes a single sample occupies.
func (self SampleFormat) Size() int {
	switch self {
	case SampleU8, SampleALaw, SampleULaw:
		return 1
	case SampleS16LE, SampleS16BE:
		return 2
	case SampleS24LE, SampleS24BE:
		return 3
	case SampleFloat32LE, SampleFloat32BE, SampleS32LE, SampleS32BE, SampleS24_32LE, SampleS24_32BE:
		return 4
	default:
		return 0
	}
}

func (self SampleFormat) String() string {
	if name, ok := sampleNames[self]; ok {
		return name
	}

	return `invalid`
}

// ParseSampleFormat accepts the names used by the PulseAudio tools, e.g.
// "s16le" or "float32le".
func ParseSampleFormat(name string) SampleFormat {
	for format, n := range sampleNames {
		if n == name {
			return format
		}
	}

	switch name {
	case `s16`, `s16ne`:
		return SampleS16LE
	case `float32`, `float32ne`:
		return SampleFloat32LE
	case `s32`, `s32ne`:
		return SampleS32LE
	}

	return SampleInvalid
}

// SampleSpec mirrors pa_sample_spec.
type SampleSpec struct {
	Format   SampleFormat
	Rate     uint32
	Channels uint8
}

func (self SampleSpec) Valid() bool {
	return self.Format.Valid() &&
		self.Rate > 0 && self.Rate <= RateMax &&
		self.Channels > 0 && self.Channels <= ChannelsMax
}

// FrameSize returns the size of one frame (one sample per channel) in bytes.
func (self SampleSpec) FrameSize() int {
	return self.Format.Size() * int(self.Channels)
}

func (self SampleSpec) BytesPerSecond() int {
	return self.FrameSize() * int(self.Rate)
}

// BytesToUsec converts a byte count into the playback time it represents,
// rounding down to whole frames.
func (self SampleSpec) BytesToUsec(length uint64) Usec {
	fs := uint64(self.FrameSize())

	if fs == 0 || self.Rate == 0 {
		return 0
	}

	return Usec((length / fs) * uint64(UsecPerSec) / uint64(self.Rate))
}

// UsecToBytes converts a duration into a byte count, rounding down to whole
// frames.
func (self SampleSpec) UsecToBytes(t Usec) uint64 {
	return (uint64(t) * uint64(self.Rate) / uint64(UsecPerSec)) * uint64(self.FrameSize())
}

func (self SampleSpec) Equal(other SampleSpec) bool {
	if !self.Valid() || !other.Valid() {
		return false
	}

	return self == other
}
