package version

// A Feature is an API addition that only exists from a given level onwards.
type Feature string

const (
	CookieFromFile     Feature = `context-load-cookie-from-file`
	DirectionHelpers   Feature = `direction-valid-and-to-string`
	LFEBalance         Feature = `lfe-balance`
	EncodingFromString Feature = `encoding-from-string`
	ThreadRealtime     Feature = `thread-make-realtime-and-once-unlocked`
	PortAvailability   Feature = `port-availability-group-and-type`
	ObjectMessages     Feature = `context-send-message-to-object`
)

var features = map[Feature]Level{
	CookieFromFile:     V5Plus,
	DirectionHelpers:   V6Plus,
	LFEBalance:         V8Plus,
	EncodingFromString: V12Plus,
	ThreadRealtime:     V13Plus,
	PortAvailability:   V14Plus,
	ObjectMessages:     V15Plus,
}

// Features returns every gated feature together with the level introducing it.
func Features() map[Feature]Level {
	out := make(map[Feature]Level, len(features))

	for f, l := range features {
		out[f] = l
	}

	return out
}

// Since returns the level that introduced feature.
func Since(feature Feature) (Level, bool) {
	l, ok := features[feature]
	return l, ok
}
