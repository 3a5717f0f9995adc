package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a reusable run description, loadable from a YAML file.
// Fields absent from the file keep DefaultSimulationConfig values.
// A nil Seed means "not set in YAML"; it does not override the CLI seed.
type Scenario struct {
	Seed       *int64           `yaml:"seed"`
	Model      QueueModel       `yaml:"model"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// LoadScenario reads, strictly parses, and validates a YAML scenario file.
// Unknown keys are errors so that typos cannot silently fall back to defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	sc := Scenario{Simulation: DefaultSimulationConfig()}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// Validate checks the model name and the resolved simulation parameters.
func (sc *Scenario) Validate() error {
	_, err := sc.Config()
	return err
}

// Config returns the simulation parameters with the model preset applied.
func (sc *Scenario) Config() (SimulationConfig, error) {
	cfg, err := ApplyModel(sc.Simulation, sc.Model)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
