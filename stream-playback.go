package pulse

import (
	"io"
	"sync"

	"github.com/auroralaboratories/pulse-binding/capi"
)

// A PlaybackStream sends audio written to it to a sink.
type PlaybackStream struct {
	conn   *Conn
	stream *Stream
	spec   capi.SampleSpec
	mu     sync.Mutex
	closed bool
}

// NewPlaybackStream connects a playback stream and waits until it is ready.
func (self *Conn) NewPlaybackStream(options StreamOptions) (*PlaybackStream, error) {
	self.mainloop.Lock()
	defer self.mainloop.Unlock()

	stream, err := self.newStream(options)

	if err != nil {
		return nil, err
	}

	if err := stream.ConnectPlayback(options.Device, options.BufferAttr, options.Flags, nil); err != nil {
		stream.Close()
		return nil, err
	}

	if err := self.waitState(stream, capi.StreamReady); err != nil {
		stream.Close()
		return nil, err
	}

	return &PlaybackStream{
		conn:   self,
		stream: stream,
		spec:   options.sampleSpec(),
	}, nil
}

func (self *PlaybackStream) SampleSpec() capi.SampleSpec {
	return self.spec
}

// Stream returns the underlying stream. Lock the connection around any call
// made on it.
func (self *PlaybackStream) Stream() *Stream {
	return self.stream
}

// Index returns the sink input index of this stream on the server.
func (self *PlaybackStream) Index() uint32 {
	self.conn.mainloop.Lock()
	defer self.conn.mainloop.Unlock()

	return self.stream.Index()
}

// Write blocks until all of data has been handed to the server.
func (self *PlaybackStream) Write(data []byte) (int, error) {
	self.mu.Lock()
	defer self.mu.Unlock()

	if self.closed {
		return 0, io.ErrClosedPipe
	}

	ml := self.conn.mainloop
	ml.Lock()
	defer ml.Unlock()

	written := 0

	for written < len(data) {
		if state := self.stream.State(); state != capi.StreamReady {
			return written, io.ErrUnexpectedEOF
		}

		n, err := self.stream.WritableSize()

		if err != nil {
			return written, err
		}

		if n == 0 {
			ml.Wait()
			continue
		}

		if remaining := len(data) - written; n > remaining {
			n = remaining
		}

		if err := self.stream.Write(data[written:written+n], 0, capi.SeekRelative); err != nil {
			return written, err
		}

		written += n
	}

	return written, nil
}

// ReadFrom copies r into the stream until EOF.
func (self *PlaybackStream) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, DEFAULT_ASYNC_BUFFER_SIZE)
	var total int64

	for {
		n, err := r.Read(buf)

		if n > 0 {
			wn, werr := self.Write(buf[:n])
			total += int64(wn)

			if werr != nil {
				return total, werr
			}
		}

		if err == io.EOF {
			return total, nil
		} else if err != nil {
			return total, err
		}
	}
}

// Pause (cork) or resume the stream.
func (self *PlaybackStream) Pause(pause bool) error {
	return self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.stream.Cork(pause, fn)
	})
}

// Block until the stream's buffer has fully played
func (self *PlaybackStream) Drain() error {
	return self.conn.drainStream(self.stream)
}

// Close drains the stream and disconnects it.
func (self *PlaybackStream) Close() error {
	self.mu.Lock()
	defer self.mu.Unlock()

	if self.closed {
		return nil
	}

	self.closed = true
	err := self.conn.drainStream(self.stream)

	self.conn.mainloop.Lock()
	self.stream.Close()
	self.conn.mainloop.Unlock()

	return err
}
