package pulse

import (
	"fmt"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// A SinkInput represents client ends of streams inside the server, i.e. they
// connect a client stream to one of the global sinks.
type SinkInput struct {
	ClientIndex  uint32
	Corked       bool
	Index        uint32
	ModuleIndex  uint32
	Muted        bool
	Name         string
	SinkIndex    uint32
	Channels     int
	VolumeFactor float64
	Properties   map[string]interface{}

	info *SinkInputInfo
	conn *Conn
}

// Populate this sink input's fields from the server's description of it.
func (self *SinkInput) Initialize(info *SinkInputInfo) error {
	self.info = info
	self.ClientIndex = info.Client
	self.Corked = info.Corked
	self.Index = info.Index
	self.ModuleIndex = info.OwnerModule
	self.Muted = info.Mute
	self.Name = info.Name
	self.SinkIndex = info.Sink
	self.Channels = int(info.SampleSpec.Channels)
	self.VolumeFactor = info.Volume.Avg().Factor()
	self.Properties = diffuseProperties(info.Properties)

	return nil
}

func (self *SinkInput) Info() *SinkInputInfo {
	return self.info
}

func (self *SinkInput) P(key string) typeutil.Variant {
	return maputil.M(self.Properties).Get(key)
}

// Decode copies the sink input's properties into target; see
// props.UnmarshalMap.
func (self *SinkInput) Decode(target interface{}) error {
	return props.UnmarshalMap(flatProperties(self.info.Properties), target)
}

// Synchronize this sink input's data with the PulseAudio daemon.
func (self *SinkInput) Refresh() error {
	infos, err := collect(self.conn, func(fn func(ListResult[SinkInputInfo])) (*Operation, error) {
		return self.conn.context.GetSinkInputInfo(self.Index, fn)
	})

	if err != nil {
		return err
	} else if l := len(infos); l != 1 {
		return fmt.Errorf("Invalid sink input response: expected 1 payload, got %d", l)
	}

	return self.Initialize(infos[0])
}

func (self *SinkInput) MoveToSink(sinkIndex uint32) error {
	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.MoveSinkInputByIndex(self.Index, sinkIndex, fn)
	}); err != nil {
		return err
	}

	return self.Refresh()
}

// Set the volume of all channels of this sink input to a factor of the
// maximum volume.
func (self *SinkInput) SetVolume(factor float64) error {
	if factor < 0 {
		factor = 0
	}

	volume := capi.NewCVolume(uint8(self.Channels), capi.VolumeFromFactor(factor))

	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetSinkInputVolume(self.Index, volume, fn)
	}); err != nil {
		return err
	}

	return self.Refresh()
}

func (self *SinkInput) SetMute(mute bool) error {
	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetSinkInputMute(self.Index, mute, fn)
	}); err != nil {
		return err
	}

	self.Muted = mute
	return nil
}

// Remove this sink input.
func (self *SinkInput) Kill() error {
	return self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.KillSinkInput(self.Index, fn)
	})
}
