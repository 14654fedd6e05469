// Package pulse is a Go binding for the PulseAudio client library.
//
// The low-level API (Context, Stream, Operation, the mainloops) follows the C
// API closely and is asynchronous. Conn wraps it in a synchronous API for the
// common cases: querying and controlling sinks, sources, clients and modules,
// subscribing to server events and moving audio through streams.
package pulse

import (
	"fmt"
	"time"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/ghetzel/go-stockutil/log"
	"github.com/ghetzel/go-stockutil/stringutil"
)

const (
	DEFAULT_OPERATION_TIMEOUT_MSEC = 5000
)

// Options configures how a Conn connects.
type Options struct {
	// Server to connect to; empty for the default server.
	Server string

	Flags capi.ContextFlags

	// OperationTimeout bounds every synchronous request.
	OperationTimeout time.Duration

	// RequireLibraryVersion refuses to connect when the loaded libpulse is
	// older than the version the binding was compiled for.
	RequireLibraryVersion bool

	// Properties are sent to the server as client properties.
	Properties map[string]string
}

// A PulseAudio Conn represents a connection to a PulseAudio daemon (either locally or
// on a remote host). A Conn is the primary entry point for working with PulseAudio
// objects and data.
type Conn struct {
	ID               string
	Name             string
	Server           string
	OperationTimeout time.Duration
	mainloop         *ThreadedMainloop
	context          *Context
	events           *subscription
}

func New(name string) (*Conn, error) {
	return NewWithOptions(name, Options{})
}

func NewWithOptions(name string, options Options) (*Conn, error) {
	if options.RequireLibraryVersion {
		if err := CheckLibraryVersion(); err != nil {
			return nil, err
		}
	}

	if options.OperationTimeout <= 0 {
		options.OperationTimeout = time.Duration(DEFAULT_OPERATION_TIMEOUT_MSEC) * time.Millisecond
	}

	rv := &Conn{
		ID:               stringutil.UUID().String(),
		Name:             name,
		OperationTimeout: options.OperationTimeout,
	}

	if ml, err := NewThreadedMainloop(); err == nil {
		rv.mainloop = ml
	} else {
		return nil, err
	}

	var proplist *Proplist

	if len(options.Properties) > 0 {
		if p, err := NewProplistFromMap(options.Properties); err == nil {
			proplist = p
			defer proplist.Close()
		} else {
			rv.mainloop.Close()
			return nil, err
		}
	}

	if ctx, err := NewContextWithProplist(rv.mainloop, name, proplist); err == nil {
		rv.context = ctx
	} else {
		rv.mainloop.Close()
		return nil, err
	}

	if err := rv.connect(options.Server, options.Flags); err != nil {
		rv.Close()
		return nil, err
	}

	rv.Server = rv.context.Server()
	log.Debugf("pulse: connection %s to %q ready", rv.ID, rv.Server)

	return rv, nil
}

func (self *Conn) connect(server string, flags capi.ContextFlags) error {
	// lock the mainloop until the context is ready
	self.mainloop.Lock()
	defer self.mainloop.Unlock()

	self.context.SetStateCallback(func() {
		self.mainloop.Signal(false)
	})

	if err := self.context.Connect(server, flags); err != nil {
		return err
	}

	if err := self.mainloop.Start(); err != nil {
		return err
	}

	// wait for context to be ready
	for {
		switch state := self.context.State(); state {
		case capi.ContextUnconnected, capi.ContextConnecting, capi.ContextAuthorizing, capi.ContextSettingName:
			self.mainloop.Wait()
		case capi.ContextFailed:
			return self.context.lastError()
		case capi.ContextTerminated:
			return fmt.Errorf("PulseAudio connection was terminated during setup")
		case capi.ContextReady:
			return nil
		default:
			return fmt.Errorf("Encountered unknown connection state %d during setup", state)
		}
	}
}

// Context returns the underlying context. Lock the connection around any
// call made on it.
func (self *Conn) Context() *Context {
	return self.context
}

func (self *Conn) Mainloop() *ThreadedMainloop {
	return self.mainloop
}

// Acquire an exclusive lock on the mainloop
func (self *Conn) Lock() {
	self.mainloop.Lock()
}

// Release an exclusive lock on the mainloop
func (self *Conn) Unlock() {
	self.mainloop.Unlock()
}

// Wraps a given function call with a lock
func (self *Conn) LockFunc(wrapLock LockFunc) error {
	return self.mainloop.LockFunc(wrapLock)
}

// Retrieve the last error reported on the connection, or nil.
func (self *Conn) GetLastError() error {
	var err error

	self.mainloop.Lock()
	err = self.context.Errno()
	self.mainloop.Unlock()

	return err
}

// Change the name of the client as it appears in PulseAudio.
func (self *Conn) SetName(name string) error {
	err := self.success(func(fn func(bool)) (*Operation, error) {
		return self.context.SetName(name, fn)
	})

	if err == nil {
		self.Name = name
	}

	return err
}

// Retrieve information about the connected PulseAudio daemon
func (self *Conn) GetServerInfo() (ServerInfo, error) {
	var info ServerInfo

	err := self.do(func(done func(error)) (*Operation, error) {
		return self.context.GetServerInfo(func(i *ServerInfo) {
			if i == nil {
				done(self.context.lastError())
				return
			}

			info = *i
			info.ServerString = self.context.Server()
			info.ProtocolVersion = self.context.ServerProtocolVersion()
			info.LibraryProtocolVersion = self.context.ProtocolVersion()
			done(nil)
		})
	})

	return info, err
}

// Retrieve all available sinks from PulseAudio
func (self *Conn) GetSinks(filters ...string) ([]*Sink, error) {
	flt, err := props.Parse(filters)

	if err != nil {
		return nil, err
	}

	infos, err := collect(self, self.context.GetSinkInfoList)

	if err != nil {
		return nil, err
	}

	sinks := make([]*Sink, 0, len(infos))

	for _, info := range infos {
		sink := &Sink{
			conn: self,
		}

		sink.Initialize(info)

		if flt.IsMatch(sink) {
			sinks = append(sinks, sink)
		}
	}

	return sinks, nil
}

// Retrieve a single sink by name.
func (self *Conn) GetSink(name string) (*Sink, error) {
	infos, err := collect(self, func(fn func(ListResult[SinkInfo])) (*Operation, error) {
		return self.context.GetSinkInfoByName(name, fn)
	})

	if err != nil {
		return nil, err
	} else if len(infos) == 0 {
		return nil, fmt.Errorf("no such sink %q", name)
	}

	sink := &Sink{
		conn: self,
	}

	sink.Initialize(infos[0])
	return sink, nil
}

// Retrieve all available sources from PulseAudio.
func (self *Conn) GetSources(filters ...string) ([]*Source, error) {
	flt, err := props.Parse(filters)

	if err != nil {
		return nil, err
	}

	infos, err := collect(self, self.context.GetSourceInfoList)

	if err != nil {
		return nil, err
	}

	sources := make([]*Source, 0, len(infos))

	for _, info := range infos {
		source := &Source{
			conn: self,
		}

		source.Initialize(info)

		if flt.IsMatch(source) {
			sources = append(sources, source)
		}
	}

	return sources, nil
}

// Retrieve a single source by name.
func (self *Conn) GetSource(name string) (*Source, error) {
	infos, err := collect(self, func(fn func(ListResult[SourceInfo])) (*Operation, error) {
		return self.context.GetSourceInfoByName(name, fn)
	})

	if err != nil {
		return nil, err
	} else if len(infos) == 0 {
		return nil, fmt.Errorf("no such source %q", name)
	}

	source := &Source{
		conn: self,
	}

	source.Initialize(infos[0])
	return source, nil
}

// Retrieve all sink inputs from PulseAudio.
func (self *Conn) GetSinkInputs(filters ...string) ([]*SinkInput, error) {
	flt, err := props.Parse(filters)

	if err != nil {
		return nil, err
	}

	infos, err := collect(self, self.context.GetSinkInputInfoList)

	if err != nil {
		return nil, err
	}

	sinkInputs := make([]*SinkInput, 0, len(infos))

	for _, info := range infos {
		sinkInput := &SinkInput{
			conn: self,
		}

		sinkInput.Initialize(info)

		if flt.IsMatch(sinkInput) {
			sinkInputs = append(sinkInputs, sinkInput)
		}
	}

	return sinkInputs, nil
}

// Retrieve all available modules from PulseAudio.
func (self *Conn) GetModules(filters ...string) ([]*Module, error) {
	flt, err := props.Parse(filters)

	if err != nil {
		return nil, err
	}

	infos, err := collect(self, self.context.GetModuleInfoList)

	if err != nil {
		return nil, err
	}

	modules := make([]*Module, 0, len(infos))

	for _, info := range infos {
		module := &Module{
			conn: self,
		}

		module.Initialize(info)

		if flt.IsMatch(module) {
			modules = append(modules, module)
		}
	}

	return modules, nil
}

// Retrieve all clients connected to PulseAudio.
func (self *Conn) GetClients(filters ...string) ([]*Client, error) {
	flt, err := props.Parse(filters)

	if err != nil {
		return nil, err
	}

	infos, err := collect(self, self.context.GetClientInfoList)

	if err != nil {
		return nil, err
	}

	clients := make([]*Client, 0, len(infos))

	for _, info := range infos {
		client := &Client{
			conn: self,
		}

		client.Initialize(info)

		if flt.IsMatch(client) {
			clients = append(clients, client)
		}
	}

	return clients, nil
}

// Load a module by name, optionally supplying it with the given arguments.
func (self *Conn) LoadModule(name string, arguments string) (*Module, error) {
	module := &Module{
		conn:     self,
		Name:     name,
		Argument: arguments,
		Index:    capi.InvalidIndex,
	}

	if err := module.Load(); err != nil {
		return nil, err
	}

	return module, nil
}

// Set the default sink.
func (self *Conn) SetDefaultSink(name string) error {
	return self.success(func(fn func(bool)) (*Operation, error) {
		return self.context.SetDefaultSink(name, fn)
	})
}

// Set the default source.
func (self *Conn) SetDefaultSource(name string) error {
	return self.success(func(fn func(bool)) (*Operation, error) {
		return self.context.SetDefaultSource(name, fn)
	})
}

// Play a sample previously uploaded to the sample cache. An empty device
// plays on the default sink.
func (self *Conn) PlaySample(name string, device string, factor float64) error {
	return self.success(func(fn func(bool)) (*Operation, error) {
		return self.context.PlaySample(name, device, capi.VolumeFromFactor(factor), fn)
	})
}

// Remove a sample from the sample cache.
func (self *Conn) RemoveSample(name string) error {
	return self.success(func(fn func(bool)) (*Operation, error) {
		return self.context.RemoveSample(name, fn)
	})
}

// Close disconnects from the server and releases the context and mainloop.
func (self *Conn) Close() error {
	if self.events != nil {
		self.events.stop()
	}

	if self.context != nil && !self.context.h.Released() {
		self.mainloop.Lock()
		self.context.SetStateCallback(nil)
		self.context.Disconnect()
		self.mainloop.Unlock()
	}

	self.mainloop.Stop()

	if self.context != nil {
		if n := self.context.Pending(); n > 0 {
			log.Debugf("pulse: connection %s closing with %d callbacks pending", self.ID, n)
		}

		self.context.Close()
	}

	return self.mainloop.Close()
}

// do issues a request with the mainloop locked, then blocks until the request
// reports completion through done or the operation timeout elapses. On
// timeout the operation is cancelled so its callback can never fire.
func (self *Conn) do(issue func(done func(error)) (*Operation, error)) error {
	result := make(chan error, 1)

	done := func(err error) {
		select {
		case result <- err:
		default:
		}
	}

	self.mainloop.Lock()
	op, err := issue(done)
	self.mainloop.Unlock()

	if err != nil {
		return err
	}

	select {
	case err := <-result:
		self.mainloop.Lock()
		op.Close()
		self.mainloop.Unlock()

		return err

	case <-time.After(self.OperationTimeout):
		self.mainloop.Lock()
		op.Cancel()
		op.Close()
		self.mainloop.Unlock()

		return fmt.Errorf("Timed out waiting for operation to complete (timeout: %s): %w", self.OperationTimeout, Error{Code: capi.ErrTimeout})
	}
}

// success is do for requests acknowledged with a success flag.
func (self *Conn) success(issue func(fn func(bool)) (*Operation, error)) error {
	return self.do(func(done func(error)) (*Operation, error) {
		return issue(func(ok bool) {
			if ok {
				done(nil)
			} else {
				done(self.context.lastError())
			}
		})
	})
}

// collect runs a list request and gathers every entry.
func collect[T any](self *Conn, issue func(fn func(ListResult[T])) (*Operation, error)) ([]*T, error) {
	var items []*T

	err := self.do(func(done func(error)) (*Operation, error) {
		return issue(func(r ListResult[T]) {
			switch r.State {
			case ListItem:
				items = append(items, r.Item)
			case ListEnd:
				done(nil)
			default:
				if err := self.context.Errno(); err != nil && !IsCode(err, capi.ErrNoEntity) {
					done(err)
				} else {
					done(nil)
				}
			}
		})
	})

	return items, err
}
