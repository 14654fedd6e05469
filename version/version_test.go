package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelsAreOrdered(t *testing.T) {
	assert := require.New(t)

	for i := 1; i < len(Levels); i++ {
		assert.Less(int(Levels[i-1]), int(Levels[i]))

		maj0, _ := Levels[i-1].Version()
		maj1, _ := Levels[i].Version()
		assert.Less(maj0, maj1)
		assert.LessOrEqual(Levels[i-1].Protocol(), Levels[i].Protocol())
	}

	assert.Equal(`5.0.0`, V5Plus.String())
	assert.Equal(`15.0.0`, V15Plus.String())
	assert.Equal(`pulse_v13`, V13Plus.Tag())
	assert.Equal(uint32(29), V5Plus.Protocol())
	assert.Equal(uint32(35), V15Plus.Protocol())
	assert.Equal(`unknown`, Level(99).String())
}

func TestFeatureChainIsMonotonic(t *testing.T) {
	assert := require.New(t)

	for _, level := range Levels {
		for feature, since := range Features() {
			assert.Equal(level >= since, level.Supports(feature), "%s at %s", feature, level)
		}
	}

	// everything is on at the top level, only the base feature at the bottom
	for feature := range Features() {
		assert.True(V15Plus.Supports(feature))
	}

	assert.True(V5Plus.Supports(CookieFromFile))
	assert.False(V5Plus.Supports(DirectionHelpers))
	assert.False(V12Plus.Supports(ThreadRealtime))
	assert.True(V13Plus.Supports(ThreadRealtime))
	assert.False(V15Plus.Supports(Feature(`nonexistent`)))
}

func TestTargetIsConsistent(t *testing.T) {
	assert := require.New(t)

	assert.Equal(Target.String(), TargetVersionString)
	assert.Equal(Target.Protocol(), ProtocolVersion)
	assert.True(Available(CookieFromFile))

	since, ok := Since(ObjectMessages)
	assert.True(ok)
	assert.Equal(Target >= since, Available(ObjectMessages))
}

func TestCheckLibrary(t *testing.T) {
	assert := require.New(t)

	assert.NoError(CheckLibraryAgainst(V8Plus, `8.0`))
	assert.NoError(CheckLibraryAgainst(V8Plus, `15.99.1`))
	assert.NoError(CheckLibraryAgainst(V13Plus, `13.0-rc1`))
	assert.NoError(CheckLibraryAgainst(V5Plus, `v5.0.0`))

	err := CheckLibraryAgainst(V14Plus, `13.99.2`)
	assert.Error(err)
	assert.True(errors.Is(err, ErrVersionMismatch))

	err = CheckLibraryAgainst(V5Plus, `garbage`)
	assert.Error(err)
	assert.False(errors.Is(err, ErrVersionMismatch))

	assert.NoError(CheckLibrary(`99.0`))
}
