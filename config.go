package apriori

import (
	"os"

	"github.com/projectdiscovery/apriori/mining"
	"gopkg.in/yaml.v3"
)

// Config is a reusable mining profile
type Config struct {
	MinSupport   float64 `yaml:"min-support"`
	Separator    string  `yaml:"separator"`
	Counter      string  `yaml:"counter"`
	MaxLevel     int     `yaml:"max-level"`
	DisablePrune bool    `yaml:"disable-prune"`
	Format       string  `yaml:"format"`
	Template     string  `yaml:"template,omitempty"`
}

// DefaultConfig is used for every option left empty
var DefaultConfig = Config{
	MinSupport: 0.05,
	Separator:  DefaultSeparator,
	Counter:    mining.CounterTidset,
	Format:     FormatText,
}

// NewConfig reads config from file
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(bin, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GenerateSample creates a sample yaml file with default values
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

// Apply copies every non empty config value into opts
// where opts does not already define it
func (c *Config) Apply(opts *Options) {
	if opts.MinSupport == 0 {
		opts.MinSupport = c.MinSupport
	}
	if opts.Separator == "" {
		opts.Separator = c.Separator
	}
	if opts.Counter == "" {
		opts.Counter = c.Counter
	}
	if opts.MaxLevel == 0 {
		opts.MaxLevel = c.MaxLevel
	}
	if !opts.DisablePrune {
		opts.DisablePrune = c.DisablePrune
	}
	if opts.Format == "" {
		opts.Format = c.Format
	}
	if opts.Template == "" {
		opts.Template = c.Template
	}
}
