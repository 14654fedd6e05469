// Package audiofile decodes WAV, MP3 and Ogg Vorbis files into interleaved
// signed 16-bit little-endian PCM, and encodes recordings back into WAV.
package audiofile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/ghetzel/go-stockutil/log"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// A Source is decoded PCM ready to be written to a playback stream.
type Source struct {
	io.Reader
	Spec   capi.SampleSpec
	closer io.Closer
}

func (self *Source) Close() error {
	if self.closer != nil {
		return self.closer.Close()
	}

	return nil
}

type decodeFunc func(r io.ReadSeeker) (io.Reader, capi.SampleSpec, error)

var decoders = map[string]decodeFunc{
	`.wav`:  decodeWAV,
	`.wave`: decodeWAV,
	`.mp3`:  decodeMP3,
	`.ogg`:  decodeVorbis,
	`.oga`:  decodeVorbis,
}

// Supported reports whether the file extension of path can be decoded.
func Supported(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Open decodes the file at path, choosing the codec by extension.
func Open(path string) (*Source, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]

	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	file, err := os.Open(path)

	if err != nil {
		return nil, err
	}

	reader, spec, err := decode(file)

	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debugf("audiofile: %s decoded as %s %d Hz, %d channels", path, spec.Format, spec.Rate, spec.Channels)

	return &Source{
		Reader: reader,
		Spec:   spec,
		closer: file,
	}, nil
}

func s16Spec(rate int, channels int) (capi.SampleSpec, error) {
	spec := capi.SampleSpec{
		Format:   capi.SampleS16LE,
		Rate:     uint32(rate),
		Channels: uint8(channels),
	}

	if channels <= 0 || channels > capi.ChannelsMax || !spec.Valid() {
		return spec, fmt.Errorf("unusable stream parameters (%d Hz, %d channels)", rate, channels)
	}

	return spec, nil
}

func putS16(dst []byte, v int16) {
	dst[0] = byte(v)
	dst[1] = byte(uint16(v) >> 8)
}
