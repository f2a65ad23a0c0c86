package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// choiceValue is a string flag restricted to a fixed set of lowercase
// values.
type choiceValue struct {
	target  *string
	choices []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(target *string, choices ...string) *choiceValue {
	return &choiceValue{target: target, choices: choices}
}

func (c *choiceValue) String() string {
	if c.target == nil {
		return ""
	}
	return *c.target
}

func (c *choiceValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(c.choices, s) {
		return fmt.Errorf("must be one of %s", strings.Join(c.choices, ", "))
	}
	*c.target = s
	return nil
}

func (c *choiceValue) Type() string {
	return "string"
}
