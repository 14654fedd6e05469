package capi

// SubscriptionMask selects which facilities to receive events for.
type SubscriptionMask uint32

const (
	SubscriptionMaskNull         SubscriptionMask = 0x0
	SubscriptionMaskSink         SubscriptionMask = 0x1
	SubscriptionMaskSource       SubscriptionMask = 0x2
	SubscriptionMaskSinkInput    SubscriptionMask = 0x4
	SubscriptionMaskSourceOutput SubscriptionMask = 0x8
	SubscriptionMaskModule       SubscriptionMask = 0x10
	SubscriptionMaskClient       SubscriptionMask = 0x20
	SubscriptionMaskSampleCache  SubscriptionMask = 0x40
	SubscriptionMaskServer       SubscriptionMask = 0x80
	SubscriptionMaskCard         SubscriptionMask = 0x200
	SubscriptionMaskAll          SubscriptionMask = 0x2ff
)

// SubscriptionEventType packs a facility and an operation into one value.
type SubscriptionEventType uint32

const (
	EventSink         SubscriptionEventType = 0x0
	EventSource       SubscriptionEventType = 0x1
	EventSinkInput    SubscriptionEventType = 0x2
	EventSourceOutput SubscriptionEventType = 0x3
	EventModule       SubscriptionEventType = 0x4
	EventClient       SubscriptionEventType = 0x5
	EventSampleCache  SubscriptionEventType = 0x6
	EventServer       SubscriptionEventType = 0x7
	EventCard         SubscriptionEventType = 0x9

	EventFacilityMask SubscriptionEventType = 0xf

	EventNew    SubscriptionEventType = 0x0
	EventChange SubscriptionEventType = 0x10
	EventRemove SubscriptionEventType = 0x20

	EventTypeMask SubscriptionEventType = 0x30
)

func (self SubscriptionEventType) Facility() SubscriptionEventType {
	return self & EventFacilityMask
}

func (self SubscriptionEventType) Operation() SubscriptionEventType {
	return self & EventTypeMask
}

// Mask returns the subscription mask bit matching the event's facility.
func (self SubscriptionEventType) Mask() SubscriptionMask {
	return SubscriptionMask(1) << uint(self.Facility())
}

// OperationString names the operation part of the event.
func (self SubscriptionEventType) OperationString() string {
	switch self.Operation() {
	case EventNew:
		return `new`
	case EventChange:
		return `change`
	case EventRemove:
		return `remove`
	default:
		return `unknown`
	}
}
