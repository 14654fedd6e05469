package audiofile

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/stretchr/testify/require"
)

func TestUnsupportedExtension(t *testing.T) {
	assert := require.New(t)

	assert.False(Supported(`notes.txt`))
	assert.True(Supported(`track.MP3`))
	assert.True(Supported(`take.wav`))

	_, err := Open(`notes.txt`)
	assert.ErrorIs(err, ErrUnsupportedFormat)
}

func TestWAVRoundTrip(t *testing.T) {
	assert := require.New(t)
	path := filepath.Join(t.TempDir(), `take.wav`)

	spec := capi.SampleSpec{
		Format:   capi.SampleS16LE,
		Rate:     8000,
		Channels: 2,
	}

	file, err := os.Create(path)
	assert.NoError(err)

	rec, err := NewRecorder(file, spec)
	assert.NoError(err)

	pcm := []byte{0x01, 0x00, 0xff, 0xff, 0x00, 0x80, 0xff, 0x7f}

	// split mid-frame to exercise the pending bytes
	n, err := rec.Write(pcm[:3])
	assert.NoError(err)
	assert.Equal(3, n)
	_, err = rec.Write(pcm[3:])
	assert.NoError(err)

	assert.NoError(rec.Close())
	assert.NoError(file.Close())

	src, err := Open(path)
	assert.NoError(err)
	defer src.Close()

	assert.Equal(spec, src.Spec)

	data, err := io.ReadAll(src)
	assert.NoError(err)
	assert.Equal(pcm, data)
}

func TestRecorderRejectsFloat(t *testing.T) {
	assert := require.New(t)

	_, err := NewRecorder(nil, capi.SampleSpec{Format: capi.SampleFloat32LE, Rate: 44100, Channels: 2})
	assert.ErrorIs(err, ErrUnsupportedFormat)
}

func TestSampleScaling(t *testing.T) {
	assert := require.New(t)

	assert.Equal(int16(0), toS16(128, 8))
	assert.Equal(int16(-32768), toS16(0, 8))
	assert.Equal(int16(1000), toS16(1000, 16))
	assert.Equal(int16(1), toS16(256, 24))

	assert.Equal(int16(32767), floatToS16(1.5))
	assert.Equal(int16(-32768), floatToS16(-2))
	assert.Equal(int16(0), floatToS16(0))
}

type fakeVorbis struct {
	chunks [][]float32
}

func (self *fakeVorbis) SampleRate() int { return 22050 }
func (self *fakeVorbis) Channels() int   { return 1 }

func (self *fakeVorbis) Read(p []float32) (int, error) {
	if len(self.chunks) == 0 {
		return 0, io.EOF
	}

	n := copy(p, self.chunks[0])
	self.chunks = self.chunks[1:]

	return n, nil
}

func TestVorbisSource(t *testing.T) {
	assert := require.New(t)

	src, spec, err := newVorbisSource(&fakeVorbis{
		chunks: [][]float32{{0, 1}, {}, {-1}},
	})

	assert.NoError(err)
	assert.EqualValues(22050, spec.Rate)
	assert.EqualValues(1, spec.Channels)

	data, err := io.ReadAll(src)
	assert.NoError(err)
	assert.Equal([]byte{0x00, 0x00, 0xff, 0x7f, 0x00, 0x80}, data)
}
