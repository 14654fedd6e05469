package audiofile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/auroralaboratories/pulse-binding/capi"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func decodeWAV(r io.ReadSeeker) (io.Reader, capi.SampleSpec, error) {
	decoder := wav.NewDecoder(r)

	if !decoder.IsValidFile() {
		return nil, capi.SampleSpec{}, fmt.Errorf("invalid WAV file")
	}

	spec, err := s16Spec(int(decoder.SampleRate), int(decoder.NumChans))

	if err != nil {
		return nil, spec, err
	}

	buf, err := decoder.FullPCMBuffer()

	if err != nil {
		return nil, spec, err
	}

	depth := int(decoder.BitDepth)
	out := make([]byte, 2*len(buf.Data))

	for i, v := range buf.Data {
		putS16(out[2*i:], toS16(v, depth))
	}

	return bytes.NewReader(out), spec, nil
}

// toS16 scales a sample of the given bit depth to 16 bits. 8-bit WAV data is
// unsigned.
func toS16(v int, depth int) int16 {
	switch {
	case depth == 8:
		return int16((v - 128) << 8)
	case depth > 16:
		return int16(v >> (depth - 16))
	default:
		return int16(v)
	}
}

// A Recorder writes S16LE PCM into a WAV file.
type Recorder struct {
	encoder *wav.Encoder
	format  *goaudio.Format
	pending []byte
}

// NewRecorder encodes WAV in the format of spec into out. Only S16LE is
// accepted.
func NewRecorder(out io.WriteSeeker, spec capi.SampleSpec) (*Recorder, error) {
	if spec.Format != capi.SampleS16LE || !spec.Valid() {
		return nil, fmt.Errorf("recorder: %w: %s", ErrUnsupportedFormat, spec.Format)
	}

	return &Recorder{
		encoder: wav.NewEncoder(out, int(spec.Rate), 16, int(spec.Channels), 1),
		format: &goaudio.Format{
			SampleRate:  int(spec.Rate),
			NumChannels: int(spec.Channels),
		},
	}, nil
}

// Write appends little-endian 16-bit samples. Bytes short of a whole frame
// are held until the next call.
func (self *Recorder) Write(p []byte) (int, error) {
	data := append(self.pending, p...)
	frame := 2 * self.format.NumChannels
	whole := len(data) - len(data)%frame
	n := whole / 2

	buf := &goaudio.IntBuffer{
		Format:         self.format,
		Data:           make([]int, n),
		SourceBitDepth: 16,
	}

	for i := 0; i < n; i++ {
		buf.Data[i] = int(int16(uint16(data[2*i]) | uint16(data[2*i+1])<<8))
	}

	self.pending = append([]byte(nil), data[whole:]...)

	if n > 0 {
		if err := self.encoder.Write(buf); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}

// Close finalizes the WAV header. The underlying writer is left open.
func (self *Recorder) Close() error {
	return self.encoder.Close()
}
