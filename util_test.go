package pulse

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUtilLookups(t *testing.T) {
	assert := require.New(t)

	user, ok := UserName()
	assert.True(ok)
	assert.NotEmpty(user)

	host, ok := HostName()
	assert.True(ok)

	if name, err := os.Hostname(); err == nil {
		assert.Equal(name, host)
	}

	_, ok = HomeDir()
	assert.True(ok)

	bin, ok := BinaryName()
	assert.True(ok)
	assert.NotEmpty(bin)

	assert.Equal(`ding.wav`, PathFilename(`/usr/share/sounds/ding.wav`))
	assert.Equal(`ding.wav`, PathFilename(`ding.wav`))
}
