package pulse

import (
	"fmt"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// A Source represents a logical audio input source
type Source struct {
	BaseVolume         capi.Volume
	CardIndex          uint32
	Channels           int
	Description        string
	DriverName         string
	Index              uint32
	ModuleIndex        uint32
	MonitorOfSinkIndex uint32
	MonitorOfSinkName  string
	Muted              bool
	Name               string
	NumPorts           int
	NumVolumeSteps     int
	ActivePort         string
	State              capi.SourceState
	VolumeFactor       float64
	Properties         map[string]interface{}

	info *SourceInfo
	conn *Conn
}

// Populate this source's fields from the server's description of it.
func (self *Source) Initialize(info *SourceInfo) error {
	self.info = info
	self.BaseVolume = info.BaseVolume
	self.CardIndex = info.Card
	self.Channels = int(info.SampleSpec.Channels)
	self.Description = info.Description
	self.DriverName = info.Driver
	self.Index = info.Index
	self.ModuleIndex = info.OwnerModule
	self.MonitorOfSinkIndex = info.MonitorOfSink
	self.MonitorOfSinkName = info.MonitorOfSinkName
	self.Muted = info.Mute
	self.Name = info.Name
	self.NumPorts = len(info.Ports)
	self.NumVolumeSteps = int(info.NVolumeSteps)
	self.ActivePort = info.ActivePort
	self.State = info.State
	self.VolumeFactor = info.Volume.Avg().Factor()
	self.Properties = diffuseProperties(info.Properties)

	return nil
}

func (self *Source) Info() *SourceInfo {
	return self.info
}

// IsMonitor reports whether this source monitors a sink.
func (self *Source) IsMonitor() bool {
	return self.MonitorOfSinkIndex != capi.InvalidIndex
}

func (self *Source) P(key string) typeutil.Variant {
	return maputil.M(self.Properties).Get(key)
}

// Decode copies the source's properties into target; see props.UnmarshalMap.
func (self *Source) Decode(target interface{}) error {
	return props.UnmarshalMap(flatProperties(self.info.Properties), target)
}

// Synchronize this source's data with the PulseAudio daemon.
func (self *Source) Refresh() error {
	infos, err := collect(self.conn, func(fn func(ListResult[SourceInfo])) (*Operation, error) {
		return self.conn.context.GetSourceInfoByIndex(self.Index, fn)
	})

	if err != nil {
		return err
	} else if l := len(infos); l != 1 {
		return fmt.Errorf("Invalid source response: expected 1 payload, got %d", l)
	}

	return self.Initialize(infos[0])
}

// Set the volume of all channels of this source to a factor of the maximum
// volume (0.0 <= v <= 1.0).  Factors greater than 1.0 will be accepted, but
// clipping or distortion may occur beyond that value.
func (self *Source) SetVolume(factor float64) error {
	if self.Channels == 0 {
		return fmt.Errorf("Cannot set volume on source %d, no channels defined", self.Index)
	}

	if factor < 0 {
		factor = 0
	}

	volume := capi.NewCVolume(uint8(self.Channels), capi.VolumeFromFactor(factor))

	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetSourceVolumeByIndex(self.Index, volume, fn)
	}); err != nil {
		return err
	}

	return self.Refresh()
}

// Add the given factor to the current source volume
func (self *Source) IncreaseVolume(factor float64) error {
	if err := self.Refresh(); err == nil {
		newFactor := (self.VolumeFactor + factor)
		return self.SetVolume(newFactor)
	} else {
		return err
	}
}

// Remove the given factor from the current source volume, or
// set to a minimum of 0.0.
func (self *Source) DecreaseVolume(factor float64) error {
	if err := self.Refresh(); err == nil {
		newFactor := (self.VolumeFactor - factor)

		if newFactor < 0.0 {
			return self.SetVolume(0.0)
		} else {
			return self.SetVolume(newFactor)
		}
	} else {
		return err
	}
}

// Explicitly set the muted or unmuted state of the source.
func (self *Source) SetMute(mute bool) error {
	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetSourceMuteByIndex(self.Index, mute, fn)
	}); err != nil {
		return err
	}

	return self.Refresh()
}

// Explicitly mute the source.
func (self *Source) Mute() error {
	return self.SetMute(true)
}

// Explicitly unmute the source.
func (self *Source) Unmute() error {
	return self.SetMute(false)
}

// Mute or unmute the source, depending on whether it is currently
// unmuted or muted (respectively).
func (self *Source) ToggleMute() error {
	if err := self.Refresh(); err == nil {
		return self.SetMute(!self.Muted)
	} else {
		return err
	}
}

// Make this source the server's default.
func (self *Source) SetDefault() error {
	return self.conn.SetDefaultSource(self.Name)
}
