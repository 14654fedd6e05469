package pulse

import (
	"fmt"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// A Sink represents a logical audio output device
type Sink struct {
	CardIndex          uint32
	Channels           int
	Description        string
	DriverName         string
	Index              uint32
	ModuleIndex        uint32
	MonitorSourceIndex uint32
	MonitorSourceName  string
	Muted              bool
	Name               string
	NumPorts           int
	NumVolumeSteps     int
	ActivePort         string
	State              capi.SinkState
	VolumeFactor       float64
	Properties         map[string]interface{}

	info *SinkInfo
	conn *Conn
}

// Populate this sink's fields from the server's description of it.
func (self *Sink) Initialize(info *SinkInfo) error {
	self.info = info
	self.CardIndex = info.Card
	self.Channels = int(info.SampleSpec.Channels)
	self.Description = info.Description
	self.DriverName = info.Driver
	self.Index = info.Index
	self.ModuleIndex = info.OwnerModule
	self.MonitorSourceIndex = info.MonitorSource
	self.MonitorSourceName = info.MonitorSourceName
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

// Info returns the full description last received from the server.
func (self *Sink) Info() *SinkInfo {
	return self.info
}

func (self *Sink) P(key string) typeutil.Variant {
	return maputil.M(self.Properties).Get(key)
}

// Decode copies the sink's properties into target; see props.UnmarshalMap.
func (self *Sink) Decode(target interface{}) error {
	return props.UnmarshalMap(flatProperties(self.info.Properties), target)
}

// Synchronize this sink's data with the PulseAudio daemon.
func (self *Sink) Refresh() error {
	infos, err := collect(self.conn, func(fn func(ListResult[SinkInfo])) (*Operation, error) {
		return self.conn.context.GetSinkInfoByIndex(self.Index, fn)
	})

	if err != nil {
		return err
	} else if l := len(infos); l != 1 {
		return fmt.Errorf("Invalid sink response: expected 1 payload, got %d", l)
	}

	return self.Initialize(infos[0])
}

// Set the volume of all channels of this sink to a factor of the maximum
// volume (0.0 <= v <= 1.0).  Factors greater than 1.0 will be accepted, but
// clipping or distortion may occur beyond that value.
func (self *Sink) SetVolume(factor float64) error {
	if factor < 0 {
		factor = 0
	}

	volume := capi.NewCVolume(uint8(self.Channels), capi.VolumeFromFactor(factor))

	err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetSinkVolumeByIndex(self.Index, volume, fn)
	})

	if err == nil {
		self.VolumeFactor = volume.Avg().Factor()
	}

	return err
}

// Add the given factor to the current sink volume
func (self *Sink) IncreaseVolume(factor float64) error {
	if err := self.Refresh(); err == nil {
		newFactor := (self.VolumeFactor + factor)
		return self.SetVolume(newFactor)
	} else {
		return err
	}
}

// Remove the given factor from the current sink volume, or
// set to a minimum of 0.0.
func (self *Sink) DecreaseVolume(factor float64) error {
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

// Explicitly mute the sink.
func (self *Sink) Mute() error {
	return self.setMute(true)
}

// Explicitly unmute the sink.
func (self *Sink) Unmute() error {
	return self.setMute(false)
}

func (self *Sink) setMute(mute bool) error {
	err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetSinkMuteByIndex(self.Index, mute, fn)
	})

	if err == nil {
		self.Muted = mute
	}

	return err
}

// Mute or unmute the sink, depending on whether it is currently
// unmuted or muted (respectively).
func (self *Sink) ToggleMute() error {
	if err := self.Refresh(); err == nil {
		if self.Muted {
			return self.Unmute()
		} else {
			return self.Mute()
		}
	} else {
		return err
	}
}

// Switch the sink to the named port.
func (self *Sink) SetPort(port string) error {
	err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetSinkPortByIndex(self.Index, port, fn)
	})

	if err == nil {
		self.ActivePort = port
	}

	return err
}

// Suspend or resume the sink.
func (self *Sink) Suspend(suspend bool) error {
	return self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SuspendSinkByIndex(self.Index, suspend, fn)
	})
}

// Make this sink the server's default.
func (self *Sink) SetDefault() error {
	return self.conn.SetDefaultSink(self.Name)
}

func diffuseProperties(flat map[string]string) map[string]interface{} {
	out, err := maputil.DiffuseMap(flatProperties(flat), `.`)

	if err != nil {
		return flatProperties(flat)
	}

	return out
}

func flatProperties(flat map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(flat))

	for k, v := range flat {
		out[k] = v
	}

	return out
}
