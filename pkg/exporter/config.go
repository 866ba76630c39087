package exporter

import (
	"regexp"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/meterkit/meterkit/pkg/meter"
	"github.com/meterkit/meterkit/pkg/meter/binders"
	"github.com/meterkit/meterkit/pkg/utils"
)

const (
	// DefaultMetricsPort is the port the exposition endpoint listens on
	// if the configuration does not specify one.
	DefaultMetricsPort uint16 = 9090

	// DefaultRegistryName is the registry name used if the
	// configuration does not specify one.
	DefaultRegistryName = "exporter"
)

var tagKeyPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config is the configuration of the exporter daemon.
type Config struct {
	// MetricsPort is the TCP port the exposition endpoint listens on.
	MetricsPort uint16 `yaml:"metricsPort"`

	// RegistryName names the exporter's registry in log output.
	RegistryName string `yaml:"registryName"`

	// CommonTags are stamped on every metric of the exporter's
	// registry.
	CommonTags map[string]string `yaml:"commonTags"`

	// NamePrefix is prepended to the name of every metric of the
	// exporter's registry.
	NamePrefix string `yaml:"namePrefix"`

	// Binders enables or disables the built-in metric binders.
	// All binders are enabled by default.
	Binders BindersConfig `yaml:"binders"`

	// AddToGlobalRegistry controls whether the exporter's registry is
	// added to the process-wide global registry.
	AddToGlobalRegistry bool `yaml:"addToGlobalRegistry"`
}

// BindersConfig toggles the built-in metric binders.
type BindersConfig struct {
	Process   bool `yaml:"process"`
	Runtime   bool `yaml:"runtime"`
	BuildInfo bool `yaml:"buildInfo"`
	Uptime    bool `yaml:"uptime"`
}

// LoadConfig parses the given yaml document into a Config. Absent
// values keep their defaults. A nil or empty document yields the
// default configuration.
func LoadConfig(data []byte) (*Config, error) {
	config := &Config{
		MetricsPort:  DefaultMetricsPort,
		RegistryName: DefaultRegistryName,
		Binders: BindersConfig{
			Process:   true,
			Runtime:   true,
			BuildInfo: true,
			Uptime:    true,
		},
		AddToGlobalRegistry: true,
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrap(err, "invalid configuration")
		}
	}

	if err := config.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.MetricsPort == 0 {
		return errors.New("metricsPort must not be 0")
	}
	if c.RegistryName == "" {
		return errors.New("registryName must not be empty")
	}
	for key := range c.CommonTags {
		if !tagKeyPattern.MatchString(key) {
			return errors.Errorf("invalid common tag key %q", key)
		}
	}
	if c.NamePrefix != "" && !tagKeyPattern.MatchString(c.NamePrefix) {
		return errors.Errorf("invalid name prefix %q", c.NamePrefix)
	}
	return nil
}

func (c *Config) customizers() []meter.Customizer {
	customizers := []meter.Customizer{}
	if len(c.CommonTags) > 0 {
		customizers = append(customizers,
			meter.CommonTags(utils.SortedKVPairs(c.CommonTags)...))
	}
	if c.NamePrefix != "" {
		customizers = append(customizers, meter.NamePrefix(c.NamePrefix))
	}
	return customizers
}

func (c *Config) binders() []meter.Binder {
	list := []meter.Binder{}
	if c.Binders.Process {
		list = append(list, binders.Process())
	}
	if c.Binders.Runtime {
		list = append(list, binders.Runtime())
	}
	if c.Binders.BuildInfo {
		list = append(list, binders.BuildInfo())
	}
	if c.Binders.Uptime {
		list = append(list, binders.Uptime())
	}
	return list
}

// enabledBinderNames returns the names of all enabled binders for log
// output.
func (c *Config) enabledBinderNames() []string {
	names := []string{}
	for _, binder := range c.binders() {
		if named, ok := binder.(meter.Named); ok {
			_, names = utils.AddStringIfMissing(names, named.Name())
		}
	}
	return names
}
