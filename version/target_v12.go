//go:build pulse_v12 && !pulse_v13 && !pulse_v14 && !pulse_v15

package version

const target = V12Plus
