package classify

import (
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v4"
)

// ErrConfig is returned for invalid classifier configurations.
var ErrConfig = errors.New("classifier configuration error")

// Config configures a classifier. The zero value selects the default policy
// without additional keys.
//
// Additional keys extend (or change) the policy's table of well-known keys.
// A key must not be listed for more than one behavior.
//
//     policy: legacy
//     elements: [article, section]
//     styleFields: [flexGrow]
//     passThrough: [href]
//
type Config struct {
	Policy           Policy   `yaml:"policy"`
	Elements         []string `yaml:"elements"`         // keys which set the element kind
	StyleFields      []string `yaml:"styleFields"`      // keys which are style properties
	PassThrough      []string `yaml:"passThrough"`      // keys which pass through unchanged
	PassThroughClass []string `yaml:"passThroughClass"` // keys which pass through and become a class
	ClassNames       []string `yaml:"classNames"`       // keys whose value is a class name
	Ignore           []string `yaml:"ignore"`           // keys to drop
}

// LoadConfig reads a classifier configuration in YAML format.
// An empty document results in the default configuration.
func LoadConfig(r io.Reader) (Config, error) {
	var conf Config
	data, err := io.ReadAll(r)
	if err != nil {
		return conf, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		if errors.Is(err, ErrConfig) {
			return conf, err
		}
		return conf, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return conf, nil
}

// table creates the table of well-known keys for a configuration.
func (conf Config) table() (table, error) {
	base := conf.Policy.baseTable()
	extra := []struct {
		keys []string
		b    Behavior
	}{
		{conf.Elements, ElementName},
		{conf.StyleFields, StyleField},
		{conf.PassThrough, Prop},
		{conf.PassThroughClass, PropAndClassName},
		{conf.ClassNames, ClassName},
		{conf.Ignore, Ignore},
	}
	n := 0
	for _, e := range extra {
		n += len(e.keys)
	}
	if n == 0 {
		return base, nil
	}
	t := base.clone()
	seen := make(map[string]Behavior, n)
	for _, e := range extra {
		for _, key := range e.keys {
			if key == "" {
				return nil, fmt.Errorf("%w: empty key for behavior %s", ErrConfig, e.b)
			}
			if b, ok := seen[key]; ok && b != e.b {
				return nil, fmt.Errorf("%w: key %q configured as %s and %s", ErrConfig, key, b, e.b)
			}
			seen[key] = e.b
			t[key] = e.b
		}
	}
	return t, nil
}
