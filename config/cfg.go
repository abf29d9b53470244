package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

// Names of breakpoint sets which always exist and could not be redefined.
var BuiltinBreakpointSets = []string{"custom", "hedron"}

type (
	BreakpointConfig struct {
		Label string `yaml:"label" validate:"required,excludesall= {}();"`
		Width int    `yaml:"width" validate:"gt=0"`
	}

	BreakpointSetConfig struct {
		Name        string             `yaml:"name" validate:"required"`
		Breakpoints []BreakpointConfig `yaml:"breakpoints" validate:"required,min=1,unique=Label,dive"`
	}

	RenderConfig struct {
		Verify         bool                  `yaml:"verify"`
		Extension      string                `yaml:"extension" validate:"required,startswith=."`
		Transliterate  bool                  `yaml:"transliterate"`
		BreakpointSets []BreakpointSetConfig `yaml:"breakpoint_sets" validate:"unique=Name,dive"`
		Variables      map[string]any        `yaml:"variables"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Render    RenderConfig   `yaml:"render"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// checkBreakpointSets makes sure configuration does not shadow built-in sets.
func checkBreakpointSets(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	for i, set := range cfg.Render.BreakpointSets {
		if slices.Contains(BuiltinBreakpointSets, set.Name) {
			sl.ReportError(set.Name, fmt.Sprintf("Render.BreakpointSets[%d].Name", i), "Name", "notbuiltin", "")
		}
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkBreakpointSets)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
