package audiofile

import (
	"io"

	"github.com/auroralaboratories/pulse-binding/capi"
	gomp3 "github.com/hajimehoshi/go-mp3"
)

// go-mp3 always produces 16-bit little-endian stereo, so the decoder is
// streamed as-is.
func decodeMP3(r io.ReadSeeker) (io.Reader, capi.SampleSpec, error) {
	dec, err := gomp3.NewDecoder(r)

	if err != nil {
		return nil, capi.SampleSpec{}, err
	}

	spec, err := s16Spec(dec.SampleRate(), 2)

	if err != nil {
		return nil, spec, err
	}

	return dec, spec, nil
}
