package pulse

import (
	"github.com/auroralaboratories/pulse-binding/capi"
)

// The *Info types are Go copies of what the server reports for each object.
// They stay valid after the callback that produced them returns.

type ServerInfo struct {
	// ServerString and the protocol versions are filled in by Conn, not by
	// the server info request itself.
	ServerString           string
	ProtocolVersion        uint32
	LibraryProtocolVersion uint32

	UserName          string
	HostName          string
	ServerVersion     string
	ServerName        string
	SampleSpec        capi.SampleSpec
	DefaultSinkName   string
	DefaultSourceName string
	Cookie            uint32
	ChannelMap        capi.ChannelMap
}

// FormatInfo is a copy of a format the server reports for a device or stream.
// Use Format for an owned native format that can be queried and edited.
type FormatInfo struct {
	Encoding   capi.Encoding
	Properties map[string]string
}

type PortInfo struct {
	Name              string
	Description       string
	Priority          uint32
	Available         capi.PortAvailable
	AvailabilityGroup string              // set by servers 14.0 and later
	Type              capi.DevicePortType // set by servers 14.0 and later
}

type SinkInfo struct {
	Name              string
	Index             uint32
	Description       string
	SampleSpec        capi.SampleSpec
	ChannelMap        capi.ChannelMap
	OwnerModule       uint32
	Volume            capi.CVolume
	Mute              bool
	MonitorSource     uint32
	MonitorSourceName string
	Latency           capi.Usec
	Driver            string
	Flags             capi.SinkFlags
	Properties        map[string]string
	ConfiguredLatency capi.Usec
	BaseVolume        capi.Volume
	State             capi.SinkState
	NVolumeSteps      uint32
	Card              uint32
	Ports             []PortInfo
	ActivePort        string
	Formats           []FormatInfo
}

type SourceInfo struct {
	Name              string
	Index             uint32
	Description       string
	SampleSpec        capi.SampleSpec
	ChannelMap        capi.ChannelMap
	OwnerModule       uint32
	Volume            capi.CVolume
	Mute              bool
	MonitorOfSink     uint32
	MonitorOfSinkName string
	Latency           capi.Usec
	Driver            string
	Flags             capi.SourceFlags
	Properties        map[string]string
	ConfiguredLatency capi.Usec
	BaseVolume        capi.Volume
	State             capi.SourceState
	NVolumeSteps      uint32
	Card              uint32
	Ports             []PortInfo
	ActivePort        string
	Formats           []FormatInfo
}

type SinkInputInfo struct {
	Index          uint32
	Name           string
	OwnerModule    uint32
	Client         uint32
	Sink           uint32
	SampleSpec     capi.SampleSpec
	ChannelMap     capi.ChannelMap
	Volume         capi.CVolume
	BufferUsec     capi.Usec
	SinkUsec       capi.Usec
	ResampleMethod string
	Driver         string
	Mute           bool
	Properties     map[string]string
	Corked         bool
	HasVolume      bool
	VolumeWritable bool
	Format         FormatInfo
}

type SourceOutputInfo struct {
	Index          uint32
	Name           string
	OwnerModule    uint32
	Client         uint32
	Source         uint32
	SampleSpec     capi.SampleSpec
	ChannelMap     capi.ChannelMap
	BufferUsec     capi.Usec
	SourceUsec     capi.Usec
	ResampleMethod string
	Driver         string
	Properties     map[string]string
	Corked         bool
	Volume         capi.CVolume
	Mute           bool
	HasVolume      bool
	VolumeWritable bool
	Format         FormatInfo
}

type ClientInfo struct {
	Index       uint32
	Name        string
	OwnerModule uint32
	Driver      string
	Properties  map[string]string
}

type ModuleInfo struct {
	Index      uint32
	Name       string
	Argument   string
	NUsed      uint32
	Properties map[string]string
}

type CardProfileInfo struct {
	Name        string
	Description string
	NSinks      uint32
	NSources    uint32
	Priority    uint32
	Available   bool
}

type CardPortInfo struct {
	Name              string
	Description       string
	Priority          uint32
	Available         capi.PortAvailable
	Direction         capi.Direction
	Properties        map[string]string
	LatencyOffset     int64
	Profiles          []string            // profile names
	AvailabilityGroup string              // set by servers 14.0 and later
	Type              capi.DevicePortType // set by servers 14.0 and later
}

type CardInfo struct {
	Index         uint32
	Name          string
	OwnerModule   uint32
	Driver        string
	Profiles      []CardProfileInfo
	ActiveProfile string
	Properties    map[string]string
	Ports         []CardPortInfo
}

// Profile returns the named profile.
func (self *CardInfo) Profile(name string) (CardProfileInfo, bool) {
	for _, profile := range self.Profiles {
		if profile.Name == name {
			return profile, true
		}
	}

	return CardProfileInfo{}, false
}

// SampleInfo describes an entry of the server's sample cache.
type SampleInfo struct {
	Index      uint32
	Name       string
	Volume     capi.CVolume
	SampleSpec capi.SampleSpec
	ChannelMap capi.ChannelMap
	Duration   capi.Usec
	Bytes      uint32
	Lazy       bool
	Filename   string
	Properties map[string]string
}
