package parser

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ConfigValidator checks the raw content of a config file after
// environment variables have been substituted.
type ConfigValidator func(content []byte) error

type opts struct {
	configFile            string
	defaultConfigFileName string
	configLookupDirs      []string
	envPrefix             string
	overrides             map[string]any
	decodeHooks           []mapstructure.DecodeHookFunc
	validate              ConfigValidator
}

var defaultOptions = opts{} //nolint:gochecknoglobals

type Option func(*opts)

func WithConfigFile(file string) Option {
	return func(o *opts) {
		configFile := strings.TrimSpace(file)
		if len(configFile) != 0 {
			o.configFile = configFile
		}
	}
}

func WithDefaultConfigFilename(name string) Option {
	return func(o *opts) {
		fileName := strings.TrimSpace(name)
		if len(fileName) != 0 {
			o.defaultConfigFileName = fileName
		}
	}
}

func WithDecodeHookFunc(hook mapstructure.DecodeHookFunc) Option {
	return func(o *opts) {
		if hook != nil {
			o.decodeHooks = append(o.decodeHooks, hook)
		}
	}
}

func WithConfigLookupDir(file string) Option {
	return func(o *opts) {
		dir := strings.TrimSpace(file)
		if len(dir) != 0 {
			o.configLookupDirs = append(o.configLookupDirs, dir)
		}
	}
}

func WithEnvPrefix(prefix string) Option {
	return func(o *opts) {
		if len(prefix) != 0 {
			o.envPrefix = prefix
		}
	}
}

// WithOverride sets a value for the given dotted key which takes
// precedence over the config file and the environment.
func WithOverride(key string, value any) Option {
	return func(o *opts) {
		if len(key) == 0 {
			return
		}

		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}

		o.overrides[key] = value
	}
}

func WithConfigValidator(validator ConfigValidator) Option {
	return func(o *opts) {
		if validator != nil {
			o.validate = validator
		}
	}
}
