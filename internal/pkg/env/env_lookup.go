package env

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Load fills cfg from the process environment using its envconfig tags.
// Fields without a matching variable keep their `default` tag value.
func Load(cfg any) error {
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to load configuration from environment: %w", err)
	}

	return nil
}
