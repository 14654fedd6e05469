//go:build pulse_v6 && !pulse_v8 && !pulse_v12 && !pulse_v13 && !pulse_v14 && !pulse_v15

package version

const target = V6Plus
