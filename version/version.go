// Package version describes which revision of the PulseAudio client API the
// binding targets. The target is chosen at build time with one of the
// pulse_v6, pulse_v8, pulse_v12, pulse_v13, pulse_v14 or pulse_v15 build tags;
// without any of them the oldest supported revision (5.0) is assumed. Raising
// the target exposes everything gated at lower levels.
package version

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

var ErrVersionMismatch = errors.New("PulseAudio library is older than the compiled target")

// The client API revision number, unchanged across every supported level.
const APIVersion = 12

// Level is a compatibility level. Levels are ordered: a higher level
// includes every feature of the levels below it.
type Level int

const (
	V5Plus Level = iota
	V6Plus
	V8Plus
	V12Plus
	V13Plus
	V14Plus
	V15Plus
)

var Levels = []Level{V5Plus, V6Plus, V8Plus, V12Plus, V13Plus, V14Plus, V15Plus}

var levelInfo = map[Level]struct {
	version  string
	major    int
	minor    int
	protocol uint32
	tag      string
}{
	V5Plus:  {`5.0.0`, 5, 0, 29, `pulse_v5`},
	V6Plus:  {`6.0.0`, 6, 0, 30, `pulse_v6`},
	V8Plus:  {`8.0.0`, 8, 0, 30, `pulse_v8`},
	V12Plus: {`12.0.0`, 12, 0, 32, `pulse_v12`},
	V13Plus: {`13.0.0`, 13, 0, 33, `pulse_v13`},
	V14Plus: {`14.0.0`, 14, 0, 34, `pulse_v14`},
	V15Plus: {`15.0.0`, 15, 0, 35, `pulse_v15`},
}

// String returns the minimum library version of the level, e.g. "8.0.0".
func (self Level) String() string {
	if info, ok := levelInfo[self]; ok {
		return info.version
	}

	return `unknown`
}

// Tag returns the build tag selecting this level.
func (self Level) Tag() string {
	return levelInfo[self].tag
}

// Version returns the major and minor library version of the level.
func (self Level) Version() (int, int) {
	info := levelInfo[self]
	return info.major, info.minor
}

// Protocol returns the native protocol version spoken at this level.
func (self Level) Protocol() uint32 {
	return levelInfo[self].protocol
}

// Supports reports whether feature is available when targeting this level.
func (self Level) Supports(feature Feature) bool {
	if since, ok := features[feature]; ok {
		return self >= since
	}

	return false
}

// Target is the level selected at build time.
const Target = target

// TargetVersionString is the minimum library version the build requires.
var TargetVersionString = Target.String()

// ProtocolVersion is the protocol version of the build target.
var ProtocolVersion = Target.Protocol()

// Available reports whether feature was compiled in.
func Available(feature Feature) bool {
	return Target.Supports(feature)
}

// CheckLibrary compares the version string reported by the running library
// against the build target. It returns an error wrapping ErrVersionMismatch
// when the library is too old, since calls into newer symbols would then fail
// at run time. The check is advisory; nothing in the binding performs it
// implicitly.
func CheckLibrary(actual string) error {
	return CheckLibraryAgainst(Target, actual)
}

// CheckLibraryAgainst is CheckLibrary for an arbitrary level.
func CheckLibraryAgainst(level Level, actual string) error {
	have := canonical(actual)

	if !semver.IsValid(have) {
		return fmt.Errorf("cannot parse PulseAudio library version %q", actual)
	}

	if semver.Compare(have, canonical(level.String())) < 0 {
		return fmt.Errorf("%w: have %s, need %s", ErrVersionMismatch, actual, level)
	}

	return nil
}

// library versions look like "15.99.1", "16.1" or "13.0-rc1"; only the
// numeric prefix takes part in the comparison
func canonical(v string) string {
	v = strings.TrimPrefix(strings.TrimSpace(v), `v`)

	if i := strings.IndexFunc(v, func(r rune) bool {
		return r != '.' && (r < '0' || r > '9')
	}); i >= 0 {
		v = v[:i]
	}

	return `v` + v
}
