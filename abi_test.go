package pulse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestABIMatchesHeaders(t *testing.T) {
	assert := require.New(t)

	assert.NotEmpty(abiChecks())
	assert.Empty(verifyABI())
}
