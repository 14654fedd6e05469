//go:build pulse_v15

package version

const target = V15Plus
