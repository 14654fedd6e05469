package capi

import (
	"fmt"
	"math"
	"strings"
)

// Volume is a software volume, linear on the cubic scale used by PulseAudio.
type Volume uint32

const (
	VolumeMuted   Volume = 0
	VolumeNorm    Volume = 0x10000
	VolumeMax     Volume = math.MaxUint32 / 2
	VolumeInvalid Volume = math.MaxUint32
)

func (self Volume) Valid() bool {
	return self <= VolumeMax
}

// Factor returns the volume relative to VolumeNorm (1.0 is 100%).
func (self Volume) Factor() float64 {
	return float64(self) / float64(VolumeNorm)
}

// VolumeFromFactor is the inverse of Factor, clamped to [VolumeMuted, VolumeMax].
func VolumeFromFactor(factor float64) Volume {
	if factor <= 0 || math.IsNaN(factor) {
		return VolumeMuted
	}

	v := math.Round(factor * float64(VolumeNorm))

	if v >= float64(VolumeMax) {
		return VolumeMax
	}

	return Volume(v)
}

func (self Volume) String() string {
	if !self.Valid() {
		return `(invalid)`
	}

	return fmt.Sprintf("%d%%", int(math.Round(self.Factor()*100)))
}

// CVolume mirrors pa_cvolume: one volume per channel.
type CVolume struct {
	Channels uint8
	Values   [ChannelsMax]Volume
}

// NewCVolume sets all channels to v.
func NewCVolume(channels uint8, v Volume) CVolume {
	cv := CVolume{Channels: channels}

	if channels > ChannelsMax {
		cv.Channels = 0
		return cv
	}

	for i := 0; i < int(channels); i++ {
		cv.Values[i] = v
	}

	return cv
}

func (self CVolume) Valid() bool {
	if self.Channels == 0 || self.Channels > ChannelsMax {
		return false
	}

	for _, v := range self.Values[:self.Channels] {
		if !v.Valid() {
			return false
		}
	}

	return true
}

func (self CVolume) Avg() Volume {
	if !self.Valid() {
		return VolumeMuted
	}

	var sum uint64

	for _, v := range self.Values[:self.Channels] {
		sum += uint64(v)
	}

	return Volume(sum / uint64(self.Channels))
}

func (self CVolume) Max() Volume {
	var max Volume

	if self.Channels > ChannelsMax {
		return max
	}

	for _, v := range self.Values[:self.Channels] {
		if v > max {
			max = v
		}
	}

	return max
}

// Scale rescales every channel so the loudest one ends up at max, keeping the
// balance between channels.
func (self CVolume) Scale(max Volume) CVolume {
	current := self.Max()

	if current == VolumeMuted {
		return NewCVolume(self.Channels, max)
	}

	out := self

	for i := 0; i < int(self.Channels); i++ {
		out.Values[i] = Volume((uint64(self.Values[i]) * uint64(max)) / uint64(current))
	}

	return out
}

func (self CVolume) IsMuted() bool {
	return self.Max() == VolumeMuted
}

func (self CVolume) String() string {
	if !self.Valid() {
		return `(invalid)`
	}

	parts := make([]string, 0, self.Channels)

	for i, v := range self.Values[:self.Channels] {
		parts = append(parts, fmt.Sprintf("%d: %s", i, v))
	}

	return strings.Join(parts, ` `)
}
