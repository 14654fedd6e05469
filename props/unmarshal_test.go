package props

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type serverInfo struct {
	Channels       int
	Cookie         int
	DaemonHostname string
	ServerString   string
}

type tagged struct {
	Name    string `key:"name,omitempty"`
	Count   int    `key:"count"`
	Enabled bool   `key:"enabled"`
	Ignored string `key:"-"`
	Other   string
}

func TestUnmarshalMap(t *testing.T) {
	assert := require.New(t)
	v := serverInfo{}
	my := tagged{Name: `keep`}

	assert.NoError(UnmarshalMap(map[string]interface{}{
		`ServerString`:      `test/server:string`,
		`Cookie`:            121723128374,
		`nonexistent-field`: false,
	}, &v))

	assert.Equal(`test/server:string`, v.ServerString)
	assert.Equal(121723128374, v.Cookie)

	assert.Error(UnmarshalMap(map[string]interface{}{
		`Channels`: `wrong-data-type`,
	}, &v))

	assert.Error(UnmarshalMap(map[string]interface{}{
		`DaemonHostname`: []string{`what`, `u`, `say`, `?`},
	}, &v))

	assert.NoError(UnmarshalMap(map[string]interface{}{
		`name`:    ``,
		`count`:   `54`,
		`enabled`: `true`,
		`Ignored`: `nope`,
		`Other`:   `Should be here`,
	}, &my))

	assert.Equal(`keep`, my.Name)
	assert.Equal(54, my.Count)
	assert.True(my.Enabled)
	assert.Empty(my.Ignored)
	assert.Equal(`Should be here`, my.Other)

	assert.NoError(UnmarshalMap(map[string]interface{}{
		`count`: uint32(7),
		`Other`: 12,
	}, &my))

	assert.Equal(7, my.Count)
	assert.Equal(`12`, my.Other)
}

func TestUnmarshalMapTargets(t *testing.T) {
	assert := require.New(t)
	var s string

	assert.Error(UnmarshalMap(nil, nil))
	assert.Error(UnmarshalMap(nil, tagged{}))
	assert.Error(UnmarshalMap(nil, &s))
	assert.NoError(UnmarshalMap(nil, &tagged{}))
}
