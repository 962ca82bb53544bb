package scoring

import (
	"errors"
	"testing"

	"GridironOracle/internal/model"
)

func TestParse_RecognizedAndUnrecognized(t *testing.T) {
	raw := []byte(`{
		"Passing Yards": {"value": 0.04},
		"Quantum Entanglements": {"value": 99}
	}`)

	system, err := NewParser(UnitOffense).Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(system) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(system))
	}
	rule, ok := system[model.StatPassingYards]
	if !ok {
		t.Fatal("expected passing_yards rule")
	}
	if rule.Points != 0.04 {
		t.Errorf("expected 0.04 points, got %v", rule.Points)
	}
}

func TestParse_MalformedDocument(t *testing.T) {
	for _, raw := range []string{`not json`, `[1,2,3]`, `"just a string"`} {
		_, err := NewParser(UnitOffense).Parse([]byte(raw))
		if err == nil {
			t.Errorf("expected error for %q", raw)
			continue
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("expected *ParseError for %q, got %T", raw, err)
		}
	}
}

func TestParse_MalformedEntrySkipped(t *testing.T) {
	raw := []byte(`{
		"Passing Yards": {"value": "not a number"},
		"Passing Touchdowns": {"value": 4}
	}`)

	system, err := NewParser(UnitOffense).Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := system[model.StatPassingYards]; ok {
		t.Error("malformed entry should be skipped")
	}
	if _, ok := system[model.StatPassingTDs]; !ok {
		t.Error("valid entry should survive a malformed sibling")
	}
}

func TestParse_TiersInSuppliedOrder(t *testing.T) {
	raw := []byte(`{
		"Rushing Yards": {"value": 0, "tiers": [
			{"min": 100, "max": 199, "value": 0.15},
			{"min": 0, "max": 99, "value": 0.1},
			{"min": 200, "value": 0.2}
		]}
	}`)

	system, err := NewParser(UnitOffense).Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rule := system[model.StatRushingYards]
	if len(rule.Tiers) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(rule.Tiers))
	}
	if rule.Tiers[0].Min != 100 || rule.Tiers[1].Min != 0 || rule.Tiers[2].Min != 200 {
		t.Errorf("tiers out of supplied order: %+v", rule.Tiers)
	}
	// Open-ended tier gets an infinite max.
	if rule.Tiers[2].Max <= 1e18 {
		t.Errorf("expected open-ended max, got %v", rule.Tiers[2].Max)
	}
}

func TestParse_InterceptionsByUnit(t *testing.T) {
	raw := []byte(`{"Interceptions": {"value": -2}}`)

	offense, err := NewParser(UnitOffense).Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := offense[model.StatPassingInts]; !ok {
		t.Error("offense unit should map Interceptions to passing_ints")
	}

	defense, err := NewParser(UnitDefense).Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := defense[model.StatDefensiveInts]; !ok {
		t.Error("defense unit should map Interceptions to defensive_ints")
	}
}
