package capi

import "strconv"

type ChannelPosition int32

const (
	PositionInvalid ChannelPosition = -1
	PositionMono    ChannelPosition = 0

	PositionFrontLeft   ChannelPosition = 1
	PositionFrontRight  ChannelPosition = 2
	PositionFrontCenter ChannelPosition = 3

	PositionRearCenter ChannelPosition = 4
	PositionRearLeft   ChannelPosition = 5
	PositionRearRight  ChannelPosition = 6

	PositionLFE ChannelPosition = 7

	PositionFrontLeftOfCenter  ChannelPosition = 8
	PositionFrontRightOfCenter ChannelPosition = 9

	PositionSideLeft  ChannelPosition = 10
	PositionSideRight ChannelPosition = 11

	PositionAux0  ChannelPosition = 12
	PositionAux31 ChannelPosition = 43

	PositionTopCenter      ChannelPosition = 44
	PositionTopFrontLeft   ChannelPosition = 45
	PositionTopFrontRight  ChannelPosition = 46
	PositionTopFrontCenter ChannelPosition = 47
	PositionTopRearLeft    ChannelPosition = 48
	PositionTopRearRight   ChannelPosition = 49
	PositionTopRearCenter  ChannelPosition = 50

	PositionMax ChannelPosition = 51
)

// Aux returns the n-th auxiliary channel position (0 through 31).
func Aux(n int) ChannelPosition {
	if n < 0 || n > 31 {
		return PositionInvalid
	}

	return PositionAux0 + ChannelPosition(n)
}

var positionNames = map[ChannelPosition]string{
	PositionMono:               `mono`,
	PositionFrontLeft:          `front-left`,
	PositionFrontRight:         `front-right`,
	PositionFrontCenter:        `front-center`,
	PositionRearCenter:         `rear-center`,
	PositionRearLeft:           `rear-left`,
	PositionRearRight:          `rear-right`,
	PositionLFE:                `lfe`,
	PositionFrontLeftOfCenter:  `front-left-of-center`,
	PositionFrontRightOfCenter: `front-right-of-center`,
	PositionSideLeft:           `side-left`,
	PositionSideRight:          `side-right`,
	PositionTopCenter:          `top-center`,
	PositionTopFrontLeft:       `top-front-left`,
	PositionTopFrontRight:      `top-front-right`,
	PositionTopFrontCenter:     `top-front-center`,
	PositionTopRearLeft:        `top-rear-left`,
	PositionTopRearRight:       `top-rear-right`,
	PositionTopRearCenter:      `top-rear-center`,
}

func (self ChannelPosition) String() string {
	if name, ok := positionNames[self]; ok {
		return name
	}

	if self >= PositionAux0 && self <= PositionAux31 {
		return `aux` + strconv.Itoa(int(self-PositionAux0))
	}

	return `invalid`
}

// ChannelMap mirrors pa_channel_map.
type ChannelMap struct {
	Channels uint8
	Map      [ChannelsMax]ChannelPosition
}

func (self ChannelMap) Valid() bool {
	if self.Channels == 0 || self.Channels > ChannelsMax {
		return false
	}

	for _, p := range self.Map[:self.Channels] {
		if p < PositionMono || p >= PositionMax {
			return false
		}
	}

	return true
}

// Positions returns the used part of the map.
func (self ChannelMap) Positions() []ChannelPosition {
	if self.Channels > ChannelsMax {
		return nil
	}

	return append([]ChannelPosition(nil), self.Map[:self.Channels]...)
}

// CompatibleWith reports whether the map can be used with spec.
func (self ChannelMap) CompatibleWith(spec SampleSpec) bool {
	return self.Valid() && spec.Valid() && self.Channels == spec.Channels
}

func (self ChannelMap) Has(pos ChannelPosition) bool {
	for _, p := range self.Positions() {
		if p == pos {
			return true
		}
	}

	return false
}

// ChannelMapMono returns a single-channel map.
func ChannelMapMono() ChannelMap {
	m := ChannelMap{Channels: 1}
	m.Map[0] = PositionMono
	return m
}

// ChannelMapStereo returns the usual front-left, front-right map.
func ChannelMapStereo() ChannelMap {
	m := ChannelMap{Channels: 2}
	m.Map[0] = PositionFrontLeft
	m.Map[1] = PositionFrontRight
	return m
}
