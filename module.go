package pulse

import (
	"errors"
	"fmt"

	"github.com/auroralaboratories/pulse-binding/capi"
	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

var NoSuchModuleErr = errors.New("no such module")

func IsNoSuchModuleErr(err error) bool {
	return errors.Is(err, NoSuchModuleErr)
}

// A Module represents PulseAudio drivers, configuration, and functionality
type Module struct {
	Argument   string
	Index      uint32
	Name       string
	NumUsed    uint32
	Properties map[string]interface{}

	info *ModuleInfo
	conn *Conn
}

// Populate this module's fields from the server's description of it.
func (self *Module) Initialize(info *ModuleInfo) error {
	self.info = info
	self.Argument = info.Argument
	self.Index = info.Index
	self.Name = info.Name
	self.NumUsed = info.NUsed
	self.Properties = diffuseProperties(info.Properties)

	return nil
}

func (self *Module) P(key string) typeutil.Variant {
	return maputil.M(self.Properties).Get(key)
}

// Synchronize this module's data with the PulseAudio daemon.
func (self *Module) Refresh() error {
	if !self.IsLoaded() {
		return NoSuchModuleErr
	}

	infos, err := collect(self.conn, func(fn func(ListResult[ModuleInfo])) (*Operation, error) {
		return self.conn.context.GetModuleInfo(self.Index, fn)
	})

	if err != nil {
		return err
	} else if len(infos) == 0 {
		return fmt.Errorf("module %d: %w", self.Index, NoSuchModuleErr)
	}

	return self.Initialize(infos[0])
}

// Return whether the module is currently loaded or not
func (self *Module) IsLoaded() bool {
	return (self.Index != capi.InvalidIndex)
}

// Load the module if it is not currently loaded
func (self *Module) Load() error {
	if self.IsLoaded() {
		return nil
	}

	var index uint32

	err := self.conn.do(func(done func(error)) (*Operation, error) {
		return self.conn.context.LoadModule(self.Name, self.Argument, func(i uint32) {
			if index = i; i == capi.InvalidIndex {
				done(fmt.Errorf("module %s: %w", self.Name, self.conn.context.lastError()))
			} else {
				done(nil)
			}
		})
	})

	if err != nil {
		return err
	}

	self.Index = index
	return self.Refresh()
}

// Unload the module if it is currently loaded
func (self *Module) Unload() error {
	if !self.IsLoaded() {
		return fmt.Errorf("The '%s' module is already unloaded", self.Name)
	}

	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.UnloadModule(self.Index, fn)
	}); err != nil {
		if IsCode(err, capi.ErrNoEntity) {
			return fmt.Errorf("module %d: %w", self.Index, NoSuchModuleErr)
		}

		return err
	}

	self.Index = capi.InvalidIndex
	return nil
}

// UnloadModule unloads the module with the given index.
func (self *Conn) UnloadModule(index uint32) error {
	module := &Module{
		conn:  self,
		Index: index,
	}

	return module.Unload()
}
