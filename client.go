package pulse

import (
	"fmt"

	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// A Client represents a program connected to the PulseAudio daemon.
type Client struct {
	Index            uint32
	Name             string
	OwnerModuleIndex uint32
	Driver           string
	Properties       map[string]interface{}

	info *ClientInfo
	conn *Conn
}

// Populate this client's fields from the server's description of it.
func (self *Client) Initialize(info *ClientInfo) error {
	self.info = info
	self.Index = info.Index
	self.Name = info.Name
	self.OwnerModuleIndex = info.OwnerModule
	self.Driver = info.Driver
	self.Properties = diffuseProperties(info.Properties)

	return nil
}

func (self *Client) P(key string) typeutil.Variant {
	return maputil.M(self.Properties).Get(key)
}

// Decode copies the client's properties into target; see props.UnmarshalMap.
func (self *Client) Decode(target interface{}) error {
	return props.UnmarshalMap(flatProperties(self.info.Properties), target)
}

// Synchronize this client's data with the PulseAudio daemon.
func (self *Client) Refresh() error {
	infos, err := collect(self.conn, func(fn func(ListResult[ClientInfo])) (*Operation, error) {
		return self.conn.context.GetClientInfo(self.Index, fn)
	})

	if err != nil {
		return err
	} else if l := len(infos); l != 1 {
		return fmt.Errorf("Invalid client response: expected 1 payload, got %d", l)
	}

	return self.Initialize(infos[0])
}

// Disconnect this client from the server.
func (self *Client) Kill() error {
	return self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.KillClient(self.Index, fn)
	})
}
