package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed roadmap_phases.yaml
var roadmapPhasesYAML []byte

// PhaseTemplate is the fixed definition of one journey phase: its key and the
// checklist a RoadmapProgress row is seeded from on first interaction.
type PhaseTemplate struct {
	Phase     string   `yaml:"phase"`
	Title     string   `yaml:"title"`
	Checklist []string `yaml:"checklist"`
}

// RoadmapConfig holds the ordered phase templates, loaded once at startup and
// passed explicitly into the roadmap service.
type RoadmapConfig struct {
	Phases []PhaseTemplate `yaml:"phases"`
}

func LoadRoadmapConfig() (*RoadmapConfig, error) {
	var cfg RoadmapConfig
	if err := yaml.Unmarshal(roadmapPhasesYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse roadmap phases: %w", err)
	}
	if len(cfg.Phases) == 0 {
		return nil, fmt.Errorf("roadmap phases config is empty")
	}
	seen := make(map[string]struct{}, len(cfg.Phases))
	for _, p := range cfg.Phases {
		if p.Phase == "" {
			return nil, fmt.Errorf("roadmap phase with empty key")
		}
		if _, dup := seen[p.Phase]; dup {
			return nil, fmt.Errorf("duplicate roadmap phase %q", p.Phase)
		}
		seen[p.Phase] = struct{}{}
		if len(p.Checklist) == 0 {
			return nil, fmt.Errorf("roadmap phase %q has no checklist items", p.Phase)
		}
	}
	return &cfg, nil
}

// Template returns the phase template for key, or nil when the phase is not a
// known journey phase.
func (c *RoadmapConfig) Template(phase string) *PhaseTemplate {
	for i := range c.Phases {
		if c.Phases[i].Phase == phase {
			return &c.Phases[i]
		}
	}
	return nil
}
