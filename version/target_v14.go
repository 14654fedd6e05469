//go:build pulse_v14 && !pulse_v15

package version

const target = V14Plus
