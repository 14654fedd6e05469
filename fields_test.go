package pulse

import (
	"testing"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/stretchr/testify/require"
)

func testSink() *Sink {
	sink := &Sink{}

	sink.Initialize(&SinkInfo{
		Name:          `alsa_output.usb-headset.analog-stereo`,
		Index:         7,
		Description:   `USB Headset`,
		SampleSpec:    capi.SampleSpec{Format: capi.SampleS16LE, Rate: 48000, Channels: 2},
		OwnerModule:   21,
		Volume:        capi.NewCVolume(2, capi.VolumeNorm),
		MonitorSource: 8,
		Driver:        `module-alsa-card.c`,
		State:         capi.SinkIdle,
		Card:          2,
		ActivePort:    `analog-output-headphones`,
		Properties: map[string]string{
			props.DeviceDescription: `USB Headset`,
			`device.bus`:            `usb`,
		},
	})

	return sink
}

func TestSinkFieldsUseLibpulseNames(t *testing.T) {
	assert := require.New(t)
	fields := testSink().Fields()

	assert.Equal(`alsa_output.usb-headset.analog-stereo`, fields[`name`])
	assert.EqualValues(7, fields[`index`])
	assert.EqualValues(21, fields[`owner_module`])
	assert.EqualValues(8, fields[`monitor_source`])
	assert.EqualValues(2, fields[`card`])
	assert.Equal(`idle`, fields[`state`])
	assert.Equal(false, fields[`mute`])
	assert.Equal(`module-alsa-card.c`, fields[`driver`])
	assert.Equal(`usb`, fields[`device.bus`])
	assert.InDelta(1.0, fields[`volume`], 0.001)
}

func TestFilterMatchesSinkFields(t *testing.T) {
	assert := require.New(t)
	sink := testSink()

	for _, expr := range []string{
		`name~usb-headset`,
		`state=idle`,
		`device.bus=usb`,
		`index>=7; card<3`,
		`active_port=analog-output-headphones`,
	} {
		flt, err := props.Parse(expr)
		assert.NoError(err)
		assert.True(flt.IsMatch(sink), expr)
	}

	for _, expr := range []string{
		`state=running`,
		`mute=true`,
		`index>7`,
		`application.name=anything`,
	} {
		flt, err := props.Parse(expr)
		assert.NoError(err)
		assert.False(flt.IsMatch(sink), expr)
	}

	assert.Equal(map[string]interface{}{
		`name`: `alsa_output.usb-headset.analog-stereo`,
		`device`: map[string]interface{}{
			`description`: `USB Headset`,
		},
	}, props.Select(sink, `name`, props.DeviceDescription))
}

func TestFieldsWithoutServerInfo(t *testing.T) {
	assert := require.New(t)

	module := &Module{Name: `module-null-sink`, Index: capi.InvalidIndex}
	fields := module.Fields()

	assert.Equal(`module-null-sink`, fields[`name`])
	assert.Equal(false, fields[`loaded`])
	assert.Len(fields, 5)

	output := &SourceOutput{Index: 4, SourceIndex: 1}
	assert.EqualValues(1, output.Fields()[`source`])
}

func TestCardProfiles(t *testing.T) {
	assert := require.New(t)

	info := &CardInfo{
		Index: 0,
		Name:  `alsa_card.pci-0000_00_1f.3`,
		Profiles: []CardProfileInfo{
			{Name: `output:analog-stereo`, NSinks: 1, Priority: 6500, Available: true},
			{Name: `off`},
		},
		ActiveProfile: `output:analog-stereo`,
		Ports:         []CardPortInfo{{Name: `analog-output-speaker`, Direction: capi.DirectionOutput}},
	}

	profile, ok := info.Profile(`output:analog-stereo`)
	assert.True(ok)
	assert.EqualValues(1, profile.NSinks)

	_, ok = info.Profile(`input:analog-mono`)
	assert.False(ok)

	card := &Card{}
	assert.NoError(card.Initialize(info))
	assert.True(card.HasProfile(`off`))
	assert.Equal(1, card.NumPorts)
	assert.Equal(`output:analog-stereo`, card.Fields()[`active_profile`])
	assert.Equal(2, card.Fields()[`n_profiles`])

	// unknown profiles are refused before anything is sent to the server
	assert.Error(card.SetProfile(`input:analog-mono`))
	assert.Equal(`output:analog-stereo`, card.ActiveProfile)
}

func TestSampleFields(t *testing.T) {
	assert := require.New(t)
	sample := &Sample{}

	sample.Initialize(&SampleInfo{
		Index:      1,
		Name:       `bell`,
		SampleSpec: capi.SampleSpec{Format: capi.SampleS16LE, Rate: 44100, Channels: 2},
		Volume:     capi.NewCVolume(2, capi.VolumeNorm),
		Duration:   500000,
		Bytes:      88200,
		Properties: map[string]string{props.MediaName: `bell`},
	})

	fields := sample.Fields()
	assert.Equal(`bell`, fields[`name`])
	assert.EqualValues(500000, fields[`duration`])
	assert.Equal(`s16le 2ch 44100Hz`, fields[`sample_spec`])
	assert.Equal(`bell`, fields[props.MediaName])
}
