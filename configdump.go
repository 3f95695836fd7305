package tasksim

import (
	"gopkg.in/yaml.v3"
)

// DumpConfig renders config as YAML for debugging. It backs the
// --dump-config CLI flag and round-trips through ParseConfig.
func DumpConfig(config *ExperimentConfig) ([]byte, error) {
	return yaml.Marshal(config)
}

// ParseConfig is the inverse of DumpConfig, used by the round-trip test to
// check that a dumped configuration parses back to an equivalent value.
func ParseConfig(data []byte) (*ExperimentConfig, error) {
	var config ExperimentConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}
