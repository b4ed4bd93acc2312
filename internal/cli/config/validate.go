package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/leaprange/internal/literal"
	"github.com/leapstack-labs/leaprange/pkg/core"
)

// OutputModes lists the accepted values of the output key.
var OutputModes = []string{"auto", "text", "table", "markdown", "json", "yaml"}

// Validate checks every key and reports all problems at once. The error
// wraps core.ErrInvalidArgument.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(OutputModes, strings.ToLower(c.Output)) {
		errs = append(errs, fmt.Errorf("output must be one of %s, got %q", strings.Join(OutputModes, "|"), c.Output))
	}
	if _, ok := literal.ParseKind(c.Domain); !ok {
		errs = append(errs, fmt.Errorf("domain must be one of auto|int|float|string, got %q", c.Domain))
	}
	if c.Limit < 0 {
		errs = append(errs, fmt.Errorf("limit must not be negative, got %d", c.Limit))
	}
	if c.Check.MaxBound < 0 || c.Check.MaxBound > 100 {
		errs = append(errs, fmt.Errorf("check.max_bound must be between 0 and 100, got %d", c.Check.MaxBound))
	}
	if c.Check.Workers < 0 {
		errs = append(errs, fmt.Errorf("check.workers must not be negative, got %d", c.Check.Workers))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: invalid configuration: %w", core.ErrInvalidArgument, errors.Join(errs...))
}

// Kind returns the configured literal kind. Validate must have passed.
func (c *Config) Kind() literal.Kind {
	k, _ := literal.ParseKind(c.Domain)
	return k
}
