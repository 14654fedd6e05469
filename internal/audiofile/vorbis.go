package audiofile

import (
	"io"
	"math"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/jfreymuth/oggvorbis"
)

type vorbisReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// vorbisSource converts the decoder's float samples to S16LE on demand.
type vorbisSource struct {
	dec      vorbisReader
	channels int
	samples  []float32
	pending  []byte
}

func decodeVorbis(r io.ReadSeeker) (io.Reader, capi.SampleSpec, error) {
	dec, err := oggvorbis.NewReader(r)

	if err != nil {
		return nil, capi.SampleSpec{}, err
	}

	return newVorbisSource(dec)
}

func newVorbisSource(dec vorbisReader) (io.Reader, capi.SampleSpec, error) {
	spec, err := s16Spec(dec.SampleRate(), dec.Channels())

	if err != nil {
		return nil, spec, err
	}

	return &vorbisSource{
		dec:      dec,
		channels: dec.Channels(),
		samples:  make([]float32, 4096*dec.Channels()),
	}, spec, nil
}

func (self *vorbisSource) Read(p []byte) (int, error) {
	for len(self.pending) == 0 {
		n, err := self.dec.Read(self.samples)

		if n > 0 {
			self.pending = make([]byte, 2*n)

			for i, f := range self.samples[:n] {
				putS16(self.pending[2*i:], floatToS16(f))
			}

			break
		}

		if err != nil {
			return 0, err
		}
	}

	n := copy(p, self.pending)
	self.pending = self.pending[n:]

	return n, nil
}

func floatToS16(f float32) int16 {
	switch {
	case f >= 1:
		return math.MaxInt16
	case f <= -1:
		return math.MinInt16
	default:
		return int16(f * math.MaxInt16)
	}
}
