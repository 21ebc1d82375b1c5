package services

import (
	"testing"

	"github.com/somapath/somapath-backend/internal/config"
	"github.com/somapath/somapath-backend/internal/types"
)

func TestSeedChecklist_AllUnchecked(t *testing.T) {
	tpl := &config.PhaseTemplate{
		Phase:     "research",
		Title:     "Research Universities",
		Checklist: []string{"Shortlist 10 schools", "Compare tuition"},
	}
	items := SeedChecklist(tpl)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Completed {
			t.Fatalf("seeded item %q should start unchecked", item.Item)
		}
	}
	if items[0].Item != "Shortlist 10 schools" {
		t.Fatalf("template order not preserved: %q", items[0].Item)
	}
}

func TestApplyChecklist_OverlaysByItemText(t *testing.T) {
	current := []types.ChecklistItem{
		{Item: "a", Completed: false},
		{Item: "b", Completed: true},
		{Item: "c", Completed: false},
	}
	out := ApplyChecklist(current, []types.ChecklistItem{
		{Item: "a", Completed: true},
		{Item: "b", Completed: false},
		{Item: "not-in-phase", Completed: true},
	})
	if !out[0].Completed {
		t.Fatalf("item a should be toggled on")
	}
	if out[1].Completed {
		t.Fatalf("item b should be toggled off")
	}
	if out[2].Completed {
		t.Fatalf("untouched item c should keep its state")
	}
	if len(out) != 3 {
		t.Fatalf("unknown items must not be added, got %d entries", len(out))
	}
	// input slice stays untouched
	if current[0].Completed {
		t.Fatalf("ApplyChecklist mutated its input")
	}
}

func TestApplyChecklist_EmptyIncomingKeepsCurrent(t *testing.T) {
	current := []types.ChecklistItem{{Item: "a", Completed: true}}
	out := ApplyChecklist(current, nil)
	if len(out) != 1 || !out[0].Completed {
		t.Fatalf("expected current checklist back, got %v", out)
	}
}

func TestAllCompleted(t *testing.T) {
	if AllCompleted(nil) {
		t.Fatalf("empty checklist must not count as completed")
	}
	if AllCompleted([]types.ChecklistItem{{Item: "a", Completed: true}, {Item: "b"}}) {
		t.Fatalf("one unchecked item should keep phase incomplete")
	}
	if !AllCompleted([]types.ChecklistItem{{Item: "a", Completed: true}, {Item: "b", Completed: true}}) {
		t.Fatalf("all-checked checklist should complete the phase")
	}
}
