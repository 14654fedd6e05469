package simple

import (
	"github.com/auroralaboratories/pulse-binding/capi"
)

func directionName(d capi.StreamDirection) string {
	switch d {
	case capi.StreamPlayback:
		return `playback`
	case capi.StreamRecord:
		return `record`
	case capi.StreamUpload:
		return `upload`
	default:
		return `none`
	}
}

// Playback returns options for a playback stream in the given format.
func Playback(name string, spec capi.SampleSpec) Options {
	return Options{
		Name:       name,
		StreamName: name,
		Direction:  capi.StreamPlayback,
		SampleSpec: spec,
	}
}

// Record returns options for a record stream in the given format.
func Record(name string, spec capi.SampleSpec) Options {
	return Options{
		Name:       name,
		StreamName: name,
		Direction:  capi.StreamRecord,
		SampleSpec: spec,
	}
}
