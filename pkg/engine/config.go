package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/payload"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/stego"
)

// Config bundles the tunable thresholds of every analysis stage. Stages
// without tunables are not represented here.
type Config struct {
	Stego   stego.Thresholds   `yaml:"stego"`
	Payload payload.Thresholds `yaml:"payload"`
}

// DefaultConfig returns the stock thresholds for all stages.
func DefaultConfig() Config {
	return Config{
		Stego:   stego.DefaultThresholds(),
		Payload: payload.DefaultThresholds(),
	}
}

// LoadConfig reads a YAML threshold file over the defaults, so a partial
// file only overrides the keys it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
