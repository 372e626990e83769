package engine

import (
	"io"
	"os"

	"github.com/PacifiK2460/python-plotter/pkg/sample"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all parameters for a plot request.
type Config struct {
	Expression string `yaml:"expression"`
	Min        string `yaml:"min"`
	Max        string `yaml:"max"`
	Symbol     string `yaml:"symbol"`
	MaxPoints  int64  `yaml:"max_points"`

	Format  string  `yaml:"format"` // see output.Names
	Output  string  `yaml:"output"` // "" or "-" = stdout
	Width   float64 `yaml:"width"`  // inches
	Height  float64 `yaml:"height"` // inches
	Verbose bool    `yaml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults. Expression and
// bounds are left blank.
func DefaultConfig() Config {
	return Config{
		Symbol:    sample.DefaultSymbol,
		MaxPoints: 100000,
		Format:    "text",
		Width:     8,
		Height:    6,
	}
}

// LoadConfig overlays the YAML file at path onto cfg. Unknown keys are an
// error; an empty file leaves cfg unchanged.
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrapf(err, "parsing config %s", path)
	}
	return nil
}
