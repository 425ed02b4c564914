// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// EnvIgnoreCase is the environment variable enabling case-insensitive search.
	// Presence alone enables it; the value is ignored.
	EnvIgnoreCase = "IGNORE_CASE"
)

// Argument resolution errors. Both wrap ErrMissingArgument so callers can
// treat them as one kind at the boundary.
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrMissingQuery    = fmt.Errorf("%w: no query string provided", ErrMissingArgument)
	ErrMissingFilePath = fmt.Errorf("%w: no file path provided", ErrMissingArgument)
)

// configSchema constrains the optional JSON config file. Unknown keys are
// rejected so typos surface instead of being silently ignored.
const configSchema = `{
    "type": "object",
    "additionalProperties": false,
    "properties": {
        "ignoreCase":  { "type": "boolean" },
        "lineNumbers": { "type": "boolean" },
        "color":       { "type": "boolean" },
        "debug":       { "type": "boolean" },
        "logFile":     { "type": "string" }
    }
}`

// Config represents a fully resolved invocation. Query and FilePath come
// from the command line; the remaining fields come from the config file,
// flags, and the environment. The value is built once per invocation and
// never mutated afterwards.
type Config struct {
	Query       string `json:"-"`
	FilePath    string `json:"-"`
	IgnoreCase  bool   `json:"ignoreCase"`
	LineNumbers bool   `json:"lineNumbers"`
	Color       bool   `json:"color"`
	Debug       bool   `json:"debug"`
	LogFile     string `json:"logFile,omitempty"`
	ConfigPath  string `json:"-"`
}

// LogFilePath returns the configured log file path, or empty when logging
// to a file is disabled.
func (c Config) LogFilePath() string {
	return strings.TrimSpace(c.LogFile)
}

// Resolve builds a Config from raw process arguments and an environment
// lookup. The first argument is discarded as the program invocation name;
// the next two are the query and the file path, in that order. Extra
// arguments are ignored. Case-insensitive search is enabled when the
// IGNORE_CASE variable is present in the environment, whatever its value.
// Resolve performs no I/O and has no side effects.
func Resolve(args []string, lookupEnv func(string) (string, bool)) (Config, error) {
	if len(args) > 0 {
		args = args[1:]
	}
	if len(args) < 1 {
		return Config{}, ErrMissingQuery
	}
	if len(args) < 2 {
		return Config{}, ErrMissingFilePath
	}

	return Config{
		Query:      args[0],
		FilePath:   args[1],
		IgnoreCase: IgnoreCaseFromEnv(lookupEnv),
	}, nil
}

// IgnoreCaseFromEnv reports whether the IGNORE_CASE variable is present in
// the environment, whatever its value. All env-driven case folding goes
// through this one check so the policy is captured at configuration-build
// time and nowhere else.
func IgnoreCaseFromEnv(lookupEnv func(string) (string, bool)) bool {
	_, present := lookupEnv(EnvIgnoreCase)
	return present
}

// Load reads the optional JSON config file at path, validating it against
// the embedded schema before decoding. A missing file at the default path
// yields a zero Config without error; a missing file at an explicitly
// requested path is an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if path == DefaultConfigPath {
				return Config{}, nil
			}
			return Config{}, fmt.Errorf("no configuration file found at %q", path)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if err := validate(data); err != nil {
		return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("could not parse config file %q: %w", path, err)
	}
	config.ConfigPath = path
	return config, nil
}

// validate checks raw config JSON against configSchema.
func validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(configSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return errors.New(strings.Join(problems, "; "))
}
