package classify

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Policy selects one of the rule sets for classification.
type Policy uint8

const (
	// Current is the default rule set. Style fields and grid switch between
	// class name (for value true) and style (other truthy values), unknown
	// keys with non-boolean values pass through as attributes.
	Current Policy = iota
	// Legacy is the earlier rule set. Event handlers and data-* attributes
	// pass through, every other truthy unknown key becomes a class name.
	Legacy
)

func (p Policy) String() string {
	switch p {
	case Current:
		return "current"
	case Legacy:
		return "legacy"
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// ParsePolicy returns the policy for its name. The empty string denotes
// the default policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "current":
		return Current, nil
	case "legacy":
		return Legacy, nil
	}
	return Current, fmt.Errorf("%w: unknown policy %q", ErrConfig, name)
}

// UnmarshalYAML reads a policy by name.
func (p *Policy) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return fmt.Errorf("%w: policy: %v", ErrConfig, err)
	}
	pol, err := ParsePolicy(name)
	if err != nil {
		return err
	}
	*p = pol
	return nil
}

func (p Policy) baseTable() table {
	if p == Legacy {
		return legacyTable
	}
	return currentTable
}
