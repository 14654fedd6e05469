package simple

import (
	"testing"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/stretchr/testify/require"
)

var cd = capi.SampleSpec{
	Format:   capi.SampleS16LE,
	Rate:     44100,
	Channels: 2,
}

func TestOptionsValidate(t *testing.T) {
	assert := require.New(t)

	assert.NoError(Playback(`test`, cd).validate())
	assert.NoError(Record(`test`, cd).validate())

	bad := Playback(`test`, cd)
	bad.Direction = capi.StreamUpload
	assert.Error(bad.validate())

	bad = Playback(`test`, capi.SampleSpec{Format: capi.SampleInvalid, Rate: 44100, Channels: 2})
	assert.Error(bad.validate())

	mono := capi.ChannelMapMono()
	bad = Playback(`test`, cd)
	bad.ChannelMap = &mono
	assert.Error(bad.validate())

	stereo := capi.ChannelMapStereo()
	good := Playback(`test`, cd)
	good.ChannelMap = &stereo
	assert.NoError(good.validate())
}

func TestDirectionName(t *testing.T) {
	assert := require.New(t)

	assert.Equal(`playback`, directionName(capi.StreamPlayback))
	assert.Equal(`record`, directionName(capi.StreamRecord))
	assert.Equal(`none`, directionName(capi.StreamNoDirection))
}

func TestInvalidOptionsNeverConnect(t *testing.T) {
	assert := require.New(t)

	s, err := New(Options{Direction: capi.StreamPlayback})
	assert.Error(err)
	assert.Nil(s)
}

func TestPlaybackRoundTrip(t *testing.T) {
	assert := require.New(t)

	s, err := New(Playback(`simple-test`, cd))

	if err != nil {
		t.Skipf("no PulseAudio server reachable: %v", err)
	}

	silence := make([]byte, cd.BytesPerSecond()/10)

	n, err := s.Write(silence)
	assert.NoError(err)
	assert.Equal(len(silence), n)

	_, err = s.Read(silence)
	assert.Error(err)

	_, err = s.Latency()
	assert.NoError(err)

	assert.NoError(s.Close())
	assert.NoError(s.Close())
}
