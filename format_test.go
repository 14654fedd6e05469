package pulse

import (
	"strings"
	"testing"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/stretchr/testify/require"
)

func TestFormatFromSampleSpec(t *testing.T) {
	assert := require.New(t)
	spec := capi.SampleSpec{Format: capi.SampleS16LE, Rate: 44100, Channels: 2}
	cmap, ok := DefaultChannelMap(2)
	assert.True(ok)

	f, err := FormatFromSampleSpec(spec, &cmap)
	assert.NoError(err)
	defer f.Close()

	assert.True(f.Valid())
	assert.True(f.IsPCM())
	assert.Equal(capi.EncodingPCM, f.Encoding())
	assert.True(strings.HasPrefix(f.String(), `pcm`))

	rate, err := f.PropInt(props.FormatRate)
	assert.NoError(err)
	assert.Equal(44100, rate)

	channels, err := f.PropInt(props.FormatChannels)
	assert.NoError(err)
	assert.Equal(2, channels)

	format, err := f.PropString(props.FormatSampleFormat)
	assert.NoError(err)
	assert.Equal(`s16le`, format)

	assert.Equal(capi.PropString, f.PropType(props.FormatChannelMap))
	assert.Equal(capi.PropInvalid, f.PropType(`format.not-there`))

	_, err = f.PropInt(`format.not-there`)
	assert.True(IsCode(err, capi.ErrNoEntity))

	back, backMap, err := f.ToSampleSpec()
	assert.NoError(err)
	assert.Equal(spec, back)
	assert.Equal(cmap, backMap)

	info := f.Info()
	assert.Equal(capi.EncodingPCM, info.Encoding)
	assert.Contains(info.Properties, props.FormatRate)
}

func TestFormatParseAndCompare(t *testing.T) {
	assert := require.New(t)

	f, err := FormatFromSampleSpec(capi.SampleSpec{Format: capi.SampleFloat32LE, Rate: 48000, Channels: 1}, nil)
	assert.NoError(err)
	defer f.Close()

	parsed, err := ParseFormat(f.String())
	assert.NoError(err)
	defer parsed.Close()

	assert.Equal(f.String(), parsed.String())
	assert.True(parsed.IsCompatibleWith(f))

	copied, err := parsed.Copy()
	assert.NoError(err)
	defer copied.Close()

	copied.SetEncoding(capi.EncodingAC3IEC61937)
	assert.False(copied.IsPCM())
	assert.False(copied.IsCompatibleWith(f))
	assert.True(parsed.IsPCM())

	_, err = ParseFormat(`not a format at all`)
	assert.Error(err)
}

func TestFormatProperties(t *testing.T) {
	assert := require.New(t)

	f, err := NewFormat(capi.EncodingEAC3IEC61937)
	assert.NoError(err)
	defer f.Close()

	assert.True(f.Valid())
	assert.False(f.IsPCM())

	assert.NoError(f.SetPropIntArray(props.FormatRate, []int{44100, 48000}))
	assert.Equal(capi.PropIntArray, f.PropType(props.FormatRate))

	rates, err := f.PropIntArray(props.FormatRate)
	assert.NoError(err)
	assert.Equal([]int{44100, 48000}, rates)

	assert.NoError(f.SetPropIntRange(props.FormatChannels, 1, 8))
	lo, hi, err := f.PropIntRange(props.FormatChannels)
	assert.NoError(err)
	assert.Equal(1, lo)
	assert.Equal(8, hi)

	assert.NoError(f.SetPropStringArray(`format.profiles`, []string{`a`, `b c`}))
	values, err := f.PropStringArray(`format.profiles`)
	assert.NoError(err)
	assert.Equal([]string{`a`, `b c`}, values)

	assert.NoError(f.SetPropString(`format.vendor`, `acme`))
	vendor, err := f.PropString(`format.vendor`)
	assert.NoError(err)
	assert.Equal(`acme`, vendor)

	assert.Error(f.SetPropIntArray(props.FormatRate, nil))
	assert.Equal(4, f.Properties().Len())
}

func TestFormatClosed(t *testing.T) {
	assert := require.New(t)

	f, err := NewFormat(capi.EncodingPCM)
	assert.NoError(err)
	assert.NoError(f.Close())

	assert.False(f.Valid())
	assert.Equal(capi.EncodingInvalid, f.Encoding())
	assert.True(f.Properties().IsNil())

	_, err = f.PropInt(props.FormatRate)
	assert.ErrorIs(err, ErrAlreadyReleased)
}
