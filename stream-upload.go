package pulse

import (
	"bytes"
	"fmt"
	"io"

	"github.com/auroralaboratories/pulse-binding/capi"
)

// An UploadStream fills a sample cache entry named after the stream.
type UploadStream struct {
	conn      *Conn
	stream    *Stream
	remaining int
}

// NewUploadStream prepares an upload of exactly length bytes.
func (self *Conn) NewUploadStream(options StreamOptions, length int) (*UploadStream, error) {
	if length <= 0 {
		return nil, fmt.Errorf("upload %q: %w", options.Name, Error{Code: capi.ErrInvalid})
	}

	self.mainloop.Lock()
	defer self.mainloop.Unlock()

	stream, err := self.newStream(options)

	if err != nil {
		return nil, err
	}

	if err := stream.ConnectUpload(length); err != nil {
		stream.Close()
		return nil, err
	}

	if err := self.waitState(stream, capi.StreamReady); err != nil {
		stream.Close()
		return nil, err
	}

	return &UploadStream{
		conn:      self,
		stream:    stream,
		remaining: length,
	}, nil
}

// Write appends data to the sample. Writing past the announced length fails.
func (self *UploadStream) Write(data []byte) (int, error) {
	if len(data) > self.remaining {
		return 0, fmt.Errorf("upload overflows announced length by %d bytes", len(data)-self.remaining)
	}

	ml := self.conn.mainloop
	ml.Lock()
	defer ml.Unlock()

	written := 0

	for written < len(data) {
		if self.stream.State() != capi.StreamReady {
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

		if rest := len(data) - written; n > rest {
			n = rest
		}

		if err := self.stream.Write(data[written:written+n], 0, capi.SeekRelative); err != nil {
			return written, err
		}

		written += n
		self.remaining -= n
	}

	return written, nil
}

// Finish commits the sample to the cache and waits for the server to accept
// it.
func (self *UploadStream) Finish() error {
	ml := self.conn.mainloop
	ml.Lock()
	defer ml.Unlock()

	defer self.stream.Close()

	if self.remaining > 0 {
		return fmt.Errorf("upload is missing %d bytes", self.remaining)
	}

	if err := self.stream.FinishUpload(); err != nil {
		return err
	}

	// a finished upload ends in the terminated state
	for {
		switch self.stream.State() {
		case capi.StreamTerminated:
			return nil
		case capi.StreamFailed:
			return self.conn.context.lastError()
		default:
			ml.Wait()
		}
	}
}

// UploadSample stores data in the server's sample cache under name.
func (self *Conn) UploadSample(name string, spec capi.SampleSpec, data []byte) error {
	upload, err := self.NewUploadStream(StreamOptions{
		Name:       name,
		SampleSpec: spec,
	}, len(data))

	if err != nil {
		return err
	}

	if _, err := io.Copy(upload, bytes.NewReader(data)); err != nil {
		self.mainloop.Lock()
		upload.stream.Close()
		self.mainloop.Unlock()

		return err
	}

	return upload.Finish()
}
