package config

import (
	"bytes"
	"errors"
	"field-schedule-service/internal/services"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadCostPolicy reads cost knobs from a YAML file on top of the defaults.
// Keys absent from the file keep their default value; an empty path
// returns the defaults unchanged.
//
//	wait_multiplier: 0.5
//	window_miss_penalty: 60
//	rain_penalty: 30
//	irradiance_reference: 500
//	irradiance_coefficient: 0.05
//	priority_bonus: 5
func LoadCostPolicy(path string) (services.CostPolicy, error) {
	policy := services.DefaultCostPolicy()

	if strings.TrimSpace(path) == "" {
		return policy, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return services.CostPolicy{}, fmt.Errorf("load cost policy: read %q: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&policy); err != nil && !errors.Is(err, io.EOF) {
		return services.CostPolicy{}, fmt.Errorf("load cost policy: parse %q: %w", path, err)
	}

	if err := policy.Validate(); err != nil {
		return services.CostPolicy{}, fmt.Errorf("load cost policy: %w", err)
	}

	return policy, nil
}
