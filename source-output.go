package pulse

import (
	"fmt"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// A SourceOutput is the server end of a recording stream: it connects one of
// the global sources to a client stream.
type SourceOutput struct {
	ClientIndex  uint32
	Corked       bool
	Index        uint32
	ModuleIndex  uint32
	Muted        bool
	Name         string
	SourceIndex  uint32
	Channels     int
	VolumeFactor float64
	Properties   map[string]interface{}

	info *SourceOutputInfo
	conn *Conn
}

// Populate this source output's fields from the server's description of it.
func (self *SourceOutput) Initialize(info *SourceOutputInfo) error {
	self.info = info
	self.ClientIndex = info.Client
	self.Corked = info.Corked
	self.Index = info.Index
	self.ModuleIndex = info.OwnerModule
	self.Muted = info.Mute
	self.Name = info.Name
	self.SourceIndex = info.Source
	self.Channels = int(info.SampleSpec.Channels)
	self.VolumeFactor = info.Volume.Avg().Factor()
	self.Properties = diffuseProperties(info.Properties)

	return nil
}

func (self *SourceOutput) Info() *SourceOutputInfo {
	return self.info
}

func (self *SourceOutput) P(key string) typeutil.Variant {
	return maputil.M(self.Properties).Get(key)
}

// Decode copies the source output's properties into target; see
// props.UnmarshalMap.
func (self *SourceOutput) Decode(target interface{}) error {
	return props.UnmarshalMap(flatProperties(self.info.Properties), target)
}

// Synchronize this source output's data with the PulseAudio daemon.
func (self *SourceOutput) Refresh() error {
	infos, err := collect(self.conn, func(fn func(ListResult[SourceOutputInfo])) (*Operation, error) {
		return self.conn.context.GetSourceOutputInfo(self.Index, fn)
	})

	if err != nil {
		return err
	} else if l := len(infos); l != 1 {
		return fmt.Errorf("Invalid source output response: expected 1 payload, got %d", l)
	}

	return self.Initialize(infos[0])
}

func (self *SourceOutput) MoveToSource(sourceIndex uint32) error {
	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.MoveSourceOutputByIndex(self.Index, sourceIndex, fn)
	}); err != nil {
		return err
	}

	return self.Refresh()
}

// MoveToSourceNamed moves the stream to the source with the given name.
func (self *SourceOutput) MoveToSourceNamed(source string) error {
	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.MoveSourceOutputByName(self.Index, source, fn)
	}); err != nil {
		return err
	}

	return self.Refresh()
}

// Set the volume of all channels of this source output to a factor of the
// maximum volume.
func (self *SourceOutput) SetVolume(factor float64) error {
	if factor < 0 {
		factor = 0
	}

	volume := capi.NewCVolume(uint8(self.Channels), capi.VolumeFromFactor(factor))

	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetSourceOutputVolume(self.Index, volume, fn)
	}); err != nil {
		return err
	}

	return self.Refresh()
}

func (self *SourceOutput) SetMute(mute bool) error {
	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetSourceOutputMute(self.Index, mute, fn)
	}); err != nil {
		return err
	}

	self.Muted = mute
	return nil
}

// Remove this source output.
func (self *SourceOutput) Kill() error {
	return self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.KillSourceOutput(self.Index, fn)
	})
}

// Retrieve all source outputs (recording streams) from PulseAudio.
func (self *Conn) GetSourceOutputs(filters ...string) ([]*SourceOutput, error) {
	flt, err := props.Parse(filters)

	if err != nil {
		return nil, err
	}

	infos, err := collect(self, self.context.GetSourceOutputInfoList)

	if err != nil {
		return nil, err
	}

	outputs := make([]*SourceOutput, 0, len(infos))

	for _, info := range infos {
		output := &SourceOutput{
			conn: self,
		}

		output.Initialize(info)

		if flt.IsMatch(output) {
			outputs = append(outputs, output)
		}
	}

	return outputs, nil
}

// SourceOutput returns a handle to the source output with the given index
// without querying the server.
func (self *Conn) SourceOutput(index uint32) *SourceOutput {
	return &SourceOutput{
		conn:  self,
		Index: index,
	}
}
