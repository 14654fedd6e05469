package pulse

import (
	"fmt"

	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/ghetzel/go-stockutil/maputil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// A Card is a physical or virtual sound device. Its active profile decides
// which sinks and sources it provides.
type Card struct {
	Index         uint32
	Name          string
	ModuleIndex   uint32
	Driver        string
	ActiveProfile string
	Profiles      []CardProfileInfo
	NumPorts      int
	Properties    map[string]interface{}

	info *CardInfo
	conn *Conn
}

// Populate this card's fields from the server's description of it.
func (self *Card) Initialize(info *CardInfo) error {
	self.info = info
	self.Index = info.Index
	self.Name = info.Name
	self.ModuleIndex = info.OwnerModule
	self.Driver = info.Driver
	self.ActiveProfile = info.ActiveProfile
	self.Profiles = info.Profiles
	self.NumPorts = len(info.Ports)
	self.Properties = diffuseProperties(info.Properties)

	return nil
}

func (self *Card) Info() *CardInfo {
	return self.info
}

func (self *Card) P(key string) typeutil.Variant {
	return maputil.M(self.Properties).Get(key)
}

// Decode copies the card's properties into target; see props.UnmarshalMap.
func (self *Card) Decode(target interface{}) error {
	return props.UnmarshalMap(flatProperties(self.info.Properties), target)
}

func (self *Card) HasProfile(name string) bool {
	for _, profile := range self.Profiles {
		if profile.Name == name {
			return true
		}
	}

	return false
}

// Synchronize this card's data with the PulseAudio daemon.
func (self *Card) Refresh() error {
	infos, err := collect(self.conn, func(fn func(ListResult[CardInfo])) (*Operation, error) {
		return self.conn.context.GetCardInfoByIndex(self.Index, fn)
	})

	if err != nil {
		return err
	} else if l := len(infos); l != 1 {
		return fmt.Errorf("Invalid card response: expected 1 payload, got %d", l)
	}

	return self.Initialize(infos[0])
}

// Switch the card to the named profile, e.g. "output:hdmi-stereo" or "off".
func (self *Card) SetProfile(profile string) error {
	if len(self.Profiles) > 0 && !self.HasProfile(profile) {
		return fmt.Errorf("card %s has no profile %q", self.Name, profile)
	}

	if err := self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetCardProfileByIndex(self.Index, profile, fn)
	}); err != nil {
		return err
	}

	self.ActiveProfile = profile
	return nil
}

// SetPortLatencyOffset sets the latency offset, in microseconds, of one of
// the card's ports.
func (self *Card) SetPortLatencyOffset(port string, offset int64) error {
	return self.conn.success(func(fn func(bool)) (*Operation, error) {
		return self.conn.context.SetPortLatencyOffset(self.Name, port, offset, fn)
	})
}

// Retrieve all sound cards known to PulseAudio.
func (self *Conn) GetCards(filters ...string) ([]*Card, error) {
	flt, err := props.Parse(filters)

	if err != nil {
		return nil, err
	}

	infos, err := collect(self, self.context.GetCardInfoList)

	if err != nil {
		return nil, err
	}

	cards := make([]*Card, 0, len(infos))

	for _, info := range infos {
		card := &Card{
			conn: self,
		}

		card.Initialize(info)

		if flt.IsMatch(card) {
			cards = append(cards, card)
		}
	}

	return cards, nil
}

// Retrieve a single card by name.
func (self *Conn) GetCard(name string) (*Card, error) {
	infos, err := collect(self, func(fn func(ListResult[CardInfo])) (*Operation, error) {
		return self.context.GetCardInfoByName(name, fn)
	})

	if err != nil {
		return nil, err
	} else if len(infos) == 0 {
		return nil, fmt.Errorf("no such card %q", name)
	}

	card := &Card{
		conn: self,
	}

	card.Initialize(infos[0])
	return card, nil
}
