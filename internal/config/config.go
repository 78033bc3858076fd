// Package config loads the settings of the collect command from flags,
// COLLECT_* environment variables and an optional config file.
package config

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-typed-collections/collections"
	"github.com/hasbyte1/go-typed-collections/internal/logging"
)

const EnvPrefix = "COLLECT"

// Config holds every setting collect reads. Keys match the flag names.
type Config struct {
	// Input is the JSON document to read; empty or "-" reads stdin.
	Input       string     `mapstructure:"input"`
	// Path is a dot separated path into the document, e.g. "users.0.tags".
	Path        string     `mapstructure:"path"`
	Pretty      bool       `mapstructure:"pretty"`
	Indent      int        `mapstructure:"indent"`
	ForceObject bool       `mapstructure:"force-object"`
	EscapeHTML  bool       `mapstructure:"escape-html"`
	Seed        uint64     `mapstructure:"seed"`
	LogLevel    slog.Level `mapstructure:"log-level"`
	LogJSON     bool       `mapstructure:"log-json"`
}

// NewConfig returns the defaults.
func NewConfig() Config {
	return Config{
		Indent:   4,
		LogLevel: logging.DefaultLogLevel,
	}
}

// JSONOptions returns the output options selected by c.
func (c Config) JSONOptions() collections.JSONOptions {
	return collections.JSONOptions{
		Pretty:      c.Pretty,
		Indent:      c.Indent,
		ForceObject: c.ForceObject,
		EscapeHTML:  c.EscapeHTML,
	}
}

// RegisterFlags adds one flag per Config key to flags, with the defaults of
// NewConfig.
func RegisterFlags(flags *pflag.FlagSet) {
	def := NewConfig()
	flags.StringP("input", "i", def.Input, "JSON document to read, '-' or empty for stdin")
	flags.StringP("path", "p", def.Path, "Dot separated path to the array or object to load")
	flags.Bool("pretty", def.Pretty, "Indent the JSON output")
	flags.Int("indent", def.Indent, "Spaces per level with --pretty")
	flags.Bool("force-object", def.ForceObject, "Always print collections as JSON objects")
	flags.Bool("escape-html", def.EscapeHTML, "Escape <, > and & in strings")
	flags.Uint64("seed", def.Seed, "Seed for shuffle, 0 for a random order")
	flags.String("log-level", def.LogLevel.String(), "Log level: debug, info, warn or error")
	flags.Bool("log-json", def.LogJSON, "Print logs in JSON format")
}

// Load reads the configuration into a Config. Precedence, highest first:
// flags set on the command line, COLLECT_* environment variables, the config
// file (when file is not empty), flag defaults.
func Load(v *viper.Viper, flags *pflag.FlagSet, file string) (Config, error) {
	conf := NewConfig()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return conf, errors.Wrap(err, "failed to bind flags")
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return conf, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}

	if err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		logLevelHook(),
		mapstructure.StringToTimeDurationHookFunc(), // default hook
		mapstructure.StringToSliceHookFunc(","),     // default hook
	))); err != nil {
		return conf, errors.Wrap(err, "failed to load config")
	}
	return conf, nil
}

// logLevelHook decodes level names with logging.ParseLogLevel.
func logLevelHook() mapstructure.DecodeHookFuncType {
	levelType := reflect.TypeOf(slog.Level(0))
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != levelType || f.Kind() != reflect.String {
			return data, nil
		}
		return logging.ParseLogLevel(data.(string))
	}
}
