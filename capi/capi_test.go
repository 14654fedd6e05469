package capi

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestStructLayout(t *testing.T) {
	assert := require.New(t)

	assert.EqualValues(12, unsafe.Sizeof(SampleSpec{}))
	assert.EqualValues(132, unsafe.Sizeof(CVolume{}))
	assert.EqualValues(132, unsafe.Sizeof(ChannelMap{}))
	assert.EqualValues(20, unsafe.Sizeof(BufferAttr{}))
	assert.EqualValues(20, unsafe.Sizeof(StatInfo{}))

	assert.EqualValues(4, unsafe.Offsetof(SampleSpec{}.Rate))
	assert.EqualValues(8, unsafe.Offsetof(SampleSpec{}.Channels))
	assert.EqualValues(4, unsafe.Offsetof(CVolume{}.Values))
	assert.EqualValues(4, unsafe.Offsetof(ChannelMap{}.Map))
}

func TestDiscriminants(t *testing.T) {
	assert := require.New(t)

	assert.EqualValues(6, ContextTerminated)
	assert.EqualValues(4, StreamTerminated)
	assert.EqualValues(3, StreamUpload)
	assert.EqualValues(0x80000, StreamPassthrough)
	assert.EqualValues(3, SeekRelativeEnd)
	assert.EqualValues(12, SampleS24_32BE)
	assert.EqualValues(13, SampleMax)
	assert.EqualValues(43, PositionAux31)
	assert.EqualValues(51, PositionMax)
	assert.Equal(PositionAux31, Aux(31))
	assert.Equal(PositionInvalid, Aux(32))
	assert.EqualValues(22, PortTypeAnalog)
	assert.EqualValues(26, ErrBusy)
	assert.EqualValues(0x2ff, SubscriptionMaskAll)
	assert.EqualValues(uint32(0xffffffff), InvalidIndex)
	assert.EqualValues(uint32(0x7fffffff), VolumeMax)
}

func TestSampleSpec(t *testing.T) {
	assert := require.New(t)

	spec := SampleSpec{Format: SampleS16LE, Rate: 44100, Channels: 2}
	assert.True(spec.Valid())
	assert.Equal(4, spec.FrameSize())
	assert.Equal(176400, spec.BytesPerSecond())
	assert.Equal(Usec(1000000), spec.BytesToUsec(176400))
	assert.Equal(uint64(176400), spec.UsecToBytes(UsecPerSec))
	assert.Equal(uint64(0), SampleSpec{}.UsecToBytes(UsecPerSec))

	assert.False(SampleSpec{Format: SampleInvalid, Rate: 44100, Channels: 2}.Valid())
	assert.False(SampleSpec{Format: SampleU8, Rate: RateMax + 1, Channels: 2}.Valid())
	assert.False(SampleSpec{Format: SampleU8, Rate: 8000, Channels: ChannelsMax + 1}.Valid())

	assert.Equal(SampleFloat32LE, ParseSampleFormat(`float32le`))
	assert.Equal(SampleS16LE, ParseSampleFormat(`s16`))
	assert.Equal(SampleInvalid, ParseSampleFormat(`nope`))
	assert.Equal(`s24-32be`, SampleS24_32BE.String())
	assert.Equal(3, SampleS24BE.Size())
}

func TestChannelMap(t *testing.T) {
	assert := require.New(t)

	stereo := ChannelMapStereo()
	assert.True(stereo.Valid())
	assert.True(stereo.Has(PositionFrontRight))
	assert.False(stereo.Has(PositionLFE))
	assert.True(stereo.CompatibleWith(SampleSpec{Format: SampleS16LE, Rate: 48000, Channels: 2}))
	assert.False(ChannelMapMono().CompatibleWith(SampleSpec{Format: SampleS16LE, Rate: 48000, Channels: 2}))
	assert.Equal([]ChannelPosition{PositionFrontLeft, PositionFrontRight}, stereo.Positions())
	assert.Equal(`aux7`, Aux(7).String())
	assert.Equal(`lfe`, PositionLFE.String())
	assert.False(ChannelMap{}.Valid())
}

func TestVolume(t *testing.T) {
	assert := require.New(t)

	assert.Equal(VolumeNorm, VolumeFromFactor(1.0))
	assert.Equal(VolumeMuted, VolumeFromFactor(-2))
	assert.Equal(VolumeMax, VolumeFromFactor(1e12))
	assert.Equal(`50%`, VolumeFromFactor(0.5).String())
	assert.Equal(`(invalid)`, VolumeInvalid.String())

	cv := NewCVolume(2, VolumeNorm)
	assert.True(cv.Valid())
	assert.Equal(VolumeNorm, cv.Avg())

	cv.Values[1] = VolumeNorm / 2
	scaled := cv.Scale(VolumeNorm / 2)
	assert.Equal(VolumeNorm/2, scaled.Values[0])
	assert.Equal(VolumeNorm/4, scaled.Values[1])

	assert.True(NewCVolume(2, VolumeMuted).IsMuted())
	assert.Equal(VolumeNorm, NewCVolume(2, VolumeMuted).Scale(VolumeNorm).Max())
	assert.False(NewCVolume(ChannelsMax+1, VolumeNorm).Valid())
}

func TestSubscriptionEvents(t *testing.T) {
	assert := require.New(t)

	ev := EventSinkInput | EventRemove
	assert.Equal(EventSinkInput, ev.Facility())
	assert.Equal(EventRemove, ev.Operation())
	assert.Equal(SubscriptionMaskSinkInput, ev.Mask())
	assert.Equal(`remove`, ev.OperationString())
	assert.Equal(SubscriptionMaskCard, EventCard.Mask())
}

func TestErrorCodes(t *testing.T) {
	assert := require.New(t)

	assert.Equal(ErrConnectionRefused, CodeFromReturn(-6))
	assert.Equal(`no such entity`, ErrNoEntity.String())
	assert.Equal(`unknown error code`, Code(99).String())
	assert.True(ErrBusy.Valid())
	assert.False(ErrMax.Valid())
}

func TestStateHelpers(t *testing.T) {
	assert := require.New(t)

	assert.True(ContextReady.IsGood())
	assert.False(ContextFailed.IsGood())
	assert.True(StreamCreating.IsGood())
	assert.Equal(`setting-name`, ContextSettingName.String())
	assert.True(SinkIdle.IsOpened())
	assert.False(SinkSuspended.IsOpened())
	assert.Equal(`hdmi`, PortTypeHDMI.String())
	assert.True((DirectionInput | DirectionOutput).Valid())
	assert.False(Direction(4).Valid())
	assert.Equal(`cancelled`, OperationCancelled.String())
}

func TestEncodingNames(t *testing.T) {
	assert := require.New(t)

	assert.Equal(`pcm`, EncodingPCM.String())
	assert.Equal(`dtshd-iec61937`, EncodingDTSHDIEC61937.String())
	assert.Equal(`invalid`, EncodingInvalid.String())
	assert.Equal(`invalid`, Encoding(42).String())
	assert.True(EncodingPCM.IsPCM())
	assert.False(EncodingAC3IEC61937.IsPCM())
	assert.EqualValues(4, PropStringArray)
}
