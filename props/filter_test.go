package props

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fields map[string]interface{}

func (self fields) Fields() map[string]interface{} {
	return self
}

var speakers = fields{
	`index`:            uint32(3),
	`name`:             `alsa_output.pci-0000_00_1f.3.analog-stereo`,
	`mute`:             false,
	`volume`:           0.75,
	`state`:            `running`,
	ApplicationName:    `Firefox`,
	`device.bus`:       `pci`,
	DeviceDescription:  `Built-in Audio`,
	`device.api`:       `alsa`,
	`alsa.card`:        `0`,
	`device.icon_name`: `audio-card-pci`,
}

func TestParseExpr(t *testing.T) {
	assert := require.New(t)

	expr, err := ParseExpr(`name=alsa_output`)
	assert.NoError(err)
	assert.Equal(Expr{Field: `name`, Op: Equal, Value: `alsa_output`}, expr)

	expr, err = ParseExpr(`mute != true`)
	assert.NoError(err)
	assert.Equal(`mute`, expr.Field)
	assert.Equal(NotEqual, expr.Op)
	assert.Equal(`true`, expr.Value)

	expr, err = ParseExpr(`index>=3`)
	assert.NoError(err)
	assert.Equal(GreaterEqual, expr.Op)
	assert.Equal(`index>=3`, expr.String())

	expr, err = ParseExpr(`index<=3`)
	assert.NoError(err)
	assert.Equal(LessEqual, expr.Op)

	_, err = ParseExpr(`name`)
	assert.Error(err)

	_, err = ParseExpr(`=value`)
	assert.Error(err)

	_, err = ParseExpr(`Name/this-sink`)
	assert.Error(err)

	_, err = ParseExpr(`volume>loud`)
	assert.Error(err)
}

func TestParseSplitsExpressions(t *testing.T) {
	assert := require.New(t)

	flt, err := Parse([]string{`name~alsa; mute=false`, `index>1`})
	assert.NoError(err)
	assert.Len(flt, 3)
	assert.Equal(`name~alsa;mute=false;index>1`, flt.String())

	flt, err = Parse(`state=running`)
	assert.NoError(err)
	assert.Len(flt, 1)

	flt, err = Parse(nil)
	assert.NoError(err)
	assert.Empty(flt)

	_, err = Parse([]string{`name=x`, `broken`})
	assert.Error(err)
}

func TestFilterIsMatch(t *testing.T) {
	assert := require.New(t)

	match := func(exprs ...string) bool {
		flt, err := Parse(exprs)
		assert.NoError(err)
		return flt.IsMatch(speakers)
	}

	assert.True(match())
	assert.True(match(`name~analog-stereo`))
	assert.True(match(`application.name=Firefox`))
	assert.False(match(`application.name=firefox`))
	assert.True(match(`mute=false`))
	assert.True(match(`state!=suspended`))
	assert.True(match(`index=3`, `device.bus=pci`))

	// every expression must hold
	assert.False(match(`index=3`, `device.bus=usb`))

	assert.True(match(`index>=3`))
	assert.False(match(`index>3`))
	assert.True(match(`volume<0.8`))
	assert.True(match(`volume>=0.75`))
	assert.False(match(`volume<=0.5`))

	// non-numeric values never satisfy an ordering
	assert.False(match(`name>1`))

	// missing fields never match, even on inequality
	assert.False(match(`media.role=music`))
	assert.False(match(`media.role!=music`))
}

func TestSelect(t *testing.T) {
	assert := require.New(t)

	assert.Equal(map[string]interface{}{
		`index`: uint32(3),
		`application`: map[string]interface{}{
			`name`: `Firefox`,
		},
	}, Select(speakers, `index`, ApplicationName, `not.there`))

	all := Select(speakers)
	assert.Equal(`Firefox`, all[`application`].(map[string]interface{})[`name`])
	assert.Equal(`running`, all[`state`])
	assert.Contains(all, `device`)
}
