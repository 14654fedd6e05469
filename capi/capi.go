// Package capi mirrors the enumerations, flag sets and plain-data structures
// of the PulseAudio client C API in pure Go. Every discriminant and every
// struct layout here is bit-for-bit identical to the C headers, so values can
// be handed across the cgo boundary without translation. The root package
// verifies this against the real headers in its tests.
package capi

import "math"

// InvalidIndex is the index value meaning "no such object".
const InvalidIndex uint32 = math.MaxUint32

// Usec is a time span in microseconds, as used throughout the C API.
type Usec uint64

const UsecInvalid Usec = math.MaxUint64

const (
	UsecPerMsec Usec = 1000
	UsecPerSec  Usec = 1000000
)

// UpdateMode controls how property lists are combined.
type UpdateMode int32

const (
	UpdateSet     UpdateMode = 0 // replace the entire list
	UpdateMerge   UpdateMode = 1 // add new keys, keep existing ones
	UpdateReplace UpdateMode = 2 // add new keys, overwrite existing ones
)

// Direction is a stream direction bitmask.
type Direction int32

const (
	DirectionOutput Direction = 0x1
	DirectionInput  Direction = 0x2
)

func (self Direction) Valid() bool {
	return self == DirectionOutput || self == DirectionInput || self == (DirectionOutput|DirectionInput)
}

func (self Direction) String() string {
	switch self {
	case DirectionOutput:
		return `output`
	case DirectionInput:
		return `input`
	case DirectionOutput | DirectionInput:
		return `bidirectional`
	default:
		return `invalid`
	}
}
