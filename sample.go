package pulse

import (
	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// A Sample is an entry of the server's sample cache, uploaded with
// NewUploadStream and played back by name.
type Sample struct {
	Index        uint32
	Name         string
	SampleSpec   capi.SampleSpec
	Channels     int
	Duration     capi.Usec
	Bytes        uint32
	Lazy         bool
	Filename     string
	VolumeFactor float64
	Properties   map[string]interface{}

	info *SampleInfo
	conn *Conn
}

// Populate this sample's fields from the server's description of it.
func (self *Sample) Initialize(info *SampleInfo) error {
	self.info = info
	self.Index = info.Index
	self.Name = info.Name
	self.SampleSpec = info.SampleSpec
	self.Channels = int(info.SampleSpec.Channels)
	self.Duration = info.Duration
	self.Bytes = info.Bytes
	self.Lazy = info.Lazy
	self.Filename = info.Filename
	self.VolumeFactor = info.Volume.Avg().Factor()
	self.Properties = diffuseProperties(info.Properties)

	return nil
}

func (self *Sample) Info() *SampleInfo {
	return self.info
}

func (self *Sample) P(key string) typeutil.Variant {
	return maputil.M(self.Properties).Get(key)
}

// Play the sample on device (the default sink when empty).
func (self *Sample) Play(device string, factor float64) error {
	return self.conn.PlaySample(self.Name, device, factor)
}

// Remove the sample from the cache.
func (self *Sample) Remove() error {
	return self.conn.RemoveSample(self.Name)
}

// Retrieve the entries of the server's sample cache.
func (self *Conn) GetSamples(filters ...string) ([]*Sample, error) {
	flt, err := props.Parse(filters)

	if err != nil {
		return nil, err
	}

	infos, err := collect(self, self.context.GetSampleInfoList)

	if err != nil {
		return nil, err
	}

	samples := make([]*Sample, 0, len(infos))

	for _, info := range infos {
		sample := &Sample{
			conn: self,
		}

		sample.Initialize(info)

		if flt.IsMatch(sample) {
			samples = append(samples, sample)
		}
	}

	return samples, nil
}

// Stat reports the daemon's memory usage.
func (self *Conn) Stat() (capi.StatInfo, error) {
	var stat capi.StatInfo

	err := self.do(func(done func(error)) (*Operation, error) {
		return self.context.Stat(func(i *capi.StatInfo) {
			if i == nil {
				done(self.context.lastError())
				return
			}

			stat = *i
			done(nil)
		})
	})

	return stat, err
}
