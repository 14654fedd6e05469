package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/auroralaboratories/pulse-binding"
	"github.com/auroralaboratories/pulse-binding/props"
	"github.com/ghetzel/cli"
	"github.com/ghetzel/go-stockutil/log"
	"github.com/spf13/viper"
)

// loadConfig reads pulse.yml from the user's config directory (or the working
// directory) and the PULSE_BINDING_* environment. Global flags given on the
// command line take precedence.
func loadConfig(c *cli.Context) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(`pulse`)
	v.SetConfigType(`yaml`)

	if dir := os.Getenv(`XDG_CONFIG_HOME`); dir != `` {
		v.AddConfigPath(filepath.Join(dir, `pulse-binding`))
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, `.config`, `pulse-binding`))
	}

	v.AddConfigPath(`.`)

	v.SetEnvPrefix(`PULSE_BINDING`)
	v.AutomaticEnv()

	v.SetDefault(`server`, ``)
	v.SetDefault(`name`, `pulse`)
	v.SetDefault(`timeout`, time.Duration(pulse.DEFAULT_OPERATION_TIMEOUT_MSEC)*time.Millisecond)
	v.SetDefault(`require_library_version`, true)
	v.SetDefault(`format`, `json`)
	v.SetDefault(`fields`, ``)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError

		if !errors.As(err, &notFound) {
			return nil, err
		}
	} else {
		log.Debugf("loaded config from %s", v.ConfigFileUsed())
	}

	for _, flag := range []string{`server`, `timeout`, `format`, `fields`} {
		if c.GlobalIsSet(flag) {
			v.Set(flag, c.GlobalString(flag))
		}
	}

	return v, nil
}

func connOptions(v *viper.Viper) pulse.Options {
	properties := v.GetStringMapString(`properties`)

	if properties == nil {
		properties = make(map[string]string)
	}

	if _, ok := properties[props.ApplicationID]; !ok {
		properties[props.ApplicationID] = `org.auroralaboratories.pulse`
	}

	if _, ok := properties[props.ApplicationVersion]; !ok {
		properties[props.ApplicationVersion] = pulse.Version
	}

	return pulse.Options{
		Server:                v.GetString(`server`),
		OperationTimeout:      v.GetDuration(`timeout`),
		RequireLibraryVersion: v.GetBool(`require_library_version`),
		Properties:            properties,
	}
}
