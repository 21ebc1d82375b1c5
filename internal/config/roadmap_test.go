package config

import "testing"

func TestLoadRoadmapConfig(t *testing.T) {
	cfg, err := LoadRoadmapConfig()
	if err != nil {
		t.Fatalf("LoadRoadmapConfig: %v", err)
	}

	want := []string{
		"research",
		"profile_building",
		"essay_writing",
		"applications",
		"financial_aid",
		"interviews",
		"visa_prep",
	}
	if len(cfg.Phases) != len(want) {
		t.Fatalf("expected %d phases, got %d", len(want), len(cfg.Phases))
	}
	for i, key := range want {
		if cfg.Phases[i].Phase != key {
			t.Fatalf("phase %d: expected %q, got %q", i, key, cfg.Phases[i].Phase)
		}
		if len(cfg.Phases[i].Checklist) == 0 {
			t.Fatalf("phase %q has an empty checklist", key)
		}
	}
}

func TestRoadmapConfigTemplate(t *testing.T) {
	cfg, err := LoadRoadmapConfig()
	if err != nil {
		t.Fatalf("LoadRoadmapConfig: %v", err)
	}

	if tpl := cfg.Template("essay_writing"); tpl == nil || tpl.Phase != "essay_writing" {
		t.Fatalf("Template(essay_writing) = %+v", tpl)
	}
	if tpl := cfg.Template("unknown_phase"); tpl != nil {
		t.Fatalf("expected nil for unknown phase, got %+v", tpl)
	}
}
