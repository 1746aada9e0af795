package bmi

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"datumsync/crs"
)

// Names of the parameter variables every instance exposes.
const (
	VarCRSInput  = "crs_in"
	VarCRSOutput = "crs_out"
	VarZWarn     = "z_warn"
)

// Default names of the coordinate variables. A config may remap them to
// match the column vocabulary of the coupling framework.
const (
	DefaultVarX      = "longitude"
	DefaultVarY      = "latitude"
	DefaultVarZ      = "elevation"
	DefaultVarOutput = "coordinates__output"
)

// VariableNames maps the model's coordinate roles to the names exposed on
// the BMI surface.
type VariableNames struct {
	X      string `koanf:"x"`
	Y      string `koanf:"y"`
	Z      string `koanf:"z"`
	Output string `koanf:"output"`
}

type Config struct {
	CRSInput  int           `koanf:"crs_input"`  // EPSG code of incoming coordinates
	CRSOutput int           `koanf:"crs_output"` // EPSG code of outgoing coordinates
	ZWarn     bool          `koanf:"z_warn"`     // advise when z should change but does not
	Tolerance float64       `koanf:"tolerance"`  // elevation comparison epsilon
	Driver    string        `koanf:"driver"`     // transform driver name (default proj)
	Network   bool          `koanf:"network"`    // allow PROJ grid downloads
	Variables VariableNames `koanf:"variables"`
}

// ---------------------------------------------------------------------------
// Loader
// ---------------------------------------------------------------------------

// LoadConfig merges the YAML model config with env-vars
// (prefix `DATUMSYNC__`, delimiter `__`). An empty path loads env only.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, &ConfigError{Err: err}
		}
	}
	_ = k.Load(env.Provider("DATUMSYNC__", "__", nil), nil)

	cfg := Config{
		ZWarn:     true,
		Tolerance: crs.DefaultTolerance,
		Driver:    "proj",
		Network:   true,
		Variables: VariableNames{
			X:      DefaultVarX,
			Y:      DefaultVarY,
			Z:      DefaultVarZ,
			Output: DefaultVarOutput,
		},
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, &ConfigError{Err: err}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.CRSInput <= 0 {
		return &ConfigError{Err: errors.New("crs_input must be a positive EPSG code")}
	}
	if c.CRSOutput <= 0 {
		return &ConfigError{Err: errors.New("crs_output must be a positive EPSG code")}
	}
	if c.Tolerance < 0 {
		return &ConfigError{Err: errors.New("tolerance must not be negative")}
	}
	names := []string{c.Variables.X, c.Variables.Y, c.Variables.Z, c.Variables.Output}
	seen := map[string]bool{VarCRSInput: true, VarCRSOutput: true, VarZWarn: true}
	for _, n := range names {
		if n == "" {
			return &ConfigError{Err: errors.New("variable names must not be empty")}
		}
		if seen[n] {
			return &ConfigError{Err: fmt.Errorf("variable name %q is taken twice", n)}
		}
		seen[n] = true
	}
	return nil
}
