package pulse

import (
	"io"
	"sync"

	"github.com/auroralaboratories/pulse-binding/capi"
)

// A RecordStream reads audio captured from a source.
type RecordStream struct {
	conn    *Conn
	stream  *Stream
	spec    capi.SampleSpec
	pending []byte
	readMu  sync.Mutex
	closed  bool // guarded by the mainloop lock
}

// NewRecordStream connects a record stream and waits until it is ready.
func (self *Conn) NewRecordStream(options StreamOptions) (*RecordStream, error) {
	self.mainloop.Lock()
	defer self.mainloop.Unlock()

	stream, err := self.newStream(options)

	if err != nil {
		return nil, err
	}

	if err := stream.ConnectRecord(options.Device, options.BufferAttr, options.Flags); err != nil {
		stream.Close()
		return nil, err
	}

	if err := self.waitState(stream, capi.StreamReady); err != nil {
		stream.Close()
		return nil, err
	}

	return &RecordStream{
		conn:   self,
		stream: stream,
		spec:   options.sampleSpec(),
	}, nil
}

func (self *RecordStream) SampleSpec() capi.SampleSpec {
	return self.spec
}

func (self *RecordStream) Stream() *Stream {
	return self.stream
}

// Read blocks until some captured audio is available. Holes in the capture
// buffer are skipped. A concurrent Close makes a blocked Read return io.EOF.
func (self *RecordStream) Read(p []byte) (int, error) {
	self.readMu.Lock()
	defer self.readMu.Unlock()

	if len(self.pending) > 0 {
		n := copy(p, self.pending)
		self.pending = self.pending[n:]
		return n, nil
	}

	ml := self.conn.mainloop
	ml.Lock()
	defer ml.Unlock()

	for {
		if self.closed || self.stream.State() != capi.StreamReady {
			return 0, io.EOF
		}

		data, size, err := self.stream.Peek()

		if err != nil {
			return 0, err
		}

		if size == 0 {
			ml.Wait()
			continue
		}

		if err := self.stream.Discard(); err != nil {
			return 0, err
		}

		if data == nil {
			continue
		}

		n := copy(p, data)
		self.pending = data[n:]

		return n, nil
	}
}

// Close disconnects the stream. Buffered data not yet read is dropped.
func (self *RecordStream) Close() error {
	ml := self.conn.mainloop
	ml.Lock()
	defer ml.Unlock()

	if self.closed {
		return nil
	}

	self.closed = true
	err := self.stream.Close()
	ml.Signal(false)

	return err
}
