package pulse

import (
	"fmt"

	"github.com/auroralaboratories/pulse-binding/capi"
)

const (
	DEFAULT_ASYNC_BUFFER_SIZE = 32768
)

// StreamOptions describes a stream opened through a Conn.
type StreamOptions struct {
	Name string

	// Device is the sink or source to connect to; empty for the default.
	Device string

	// SampleSpec defaults to DefaultSampleSpec() when left zero.
	SampleSpec capi.SampleSpec
	ChannelMap *capi.ChannelMap
	BufferAttr *capi.BufferAttr
	Flags      capi.StreamFlags

	// Properties are attached to the stream (e.g. media.name).
	Properties map[string]string
}

func (self StreamOptions) sampleSpec() capi.SampleSpec {
	if self.SampleSpec == (capi.SampleSpec{}) {
		return DefaultSampleSpec()
	}

	return self.SampleSpec
}

// newStream creates a stream whose state, write and read notifications wake
// goroutines blocked in ThreadedMainloop.Wait. The mainloop must be locked.
func (self *Conn) newStream(options StreamOptions) (*Stream, error) {
	var proplist *Proplist

	if len(options.Properties) > 0 {
		if p, err := NewProplistFromMap(options.Properties); err == nil {
			proplist = p
			defer proplist.Close()
		} else {
			return nil, err
		}
	}

	stream, err := NewStreamWithProplist(self.context, options.Name, options.sampleSpec(), options.ChannelMap, proplist)

	if err != nil {
		return nil, err
	}

	signal := func() {
		self.mainloop.Signal(false)
	}

	stream.SetStateCallback(signal)
	stream.SetWriteCallback(func(int) { signal() })
	stream.SetReadCallback(func(int) { signal() })

	return stream, nil
}

// waitState blocks until the stream reaches want, or fails. The mainloop must
// be locked.
func (self *Conn) waitState(stream *Stream, want capi.StreamState) error {
	for {
		switch state := stream.State(); state {
		case want:
			return nil
		case capi.StreamFailed:
			return fmt.Errorf("stream failed: %w", self.context.lastError())
		case capi.StreamTerminated:
			return fmt.Errorf("stream terminated")
		default:
			if !self.context.State().IsGood() {
				return fmt.Errorf("connection lost: %w", self.context.lastError())
			}

			self.mainloop.Wait()
		}
	}
}

// drainStream waits for queued playback to finish.
func (self *Conn) drainStream(stream *Stream) error {
	return self.success(func(fn func(bool)) (*Operation, error) {
		return stream.Drain(fn)
	})
}
