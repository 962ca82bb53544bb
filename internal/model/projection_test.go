package model

import (
	"reflect"
	"testing"
)

// Scale is written as an explicit per-field struct literal; this test walks
// the struct by reflection so a new stat field that Scale forgets to multiply
// fails here instead of silently passing through unscaled.
func TestProjectionOutput_ScaleCoversEveryField(t *testing.T) {
	var p ProjectionOutput
	v := reflect.ValueOf(&p).Elem()
	for i := 0; i < v.NumField(); i++ {
		v.Field(i).SetFloat(float64(i + 1))
	}

	scaled := p.Scale(2)
	sv := reflect.ValueOf(scaled)
	pt := reflect.TypeOf(p)
	for i := 0; i < sv.NumField(); i++ {
		name := pt.Field(i).Name
		got := sv.Field(i).Float()
		want := float64(i+1) * 2
		if name == "Confidence" {
			want = float64(i + 1)
		}
		if got != want {
			t.Errorf("field %s: got %v, want %v", name, got, want)
		}
	}
}

func TestProjectionOutput_ScaleZeroAndIdentity(t *testing.T) {
	p := ProjectionOutput{PassingYards: 250, PassingTDs: 2, Confidence: 0.5}

	if got := p.Scale(1); got != p {
		t.Errorf("identity scale changed output: %+v", got)
	}

	zeroed := p.Scale(0)
	if zeroed.PassingYards != 0 || zeroed.PassingTDs != 0 {
		t.Errorf("expected zeroed stats, got %+v", zeroed)
	}
	if zeroed.Confidence != 0.5 {
		t.Errorf("scale must not touch confidence, got %v", zeroed.Confidence)
	}
}

func TestProjectionOutput_BundleMatchesFields(t *testing.T) {
	p := ProjectionOutput{
		PassingYards:   300,
		RushingYards:   12,
		ReceivingYards: 0,
		Confidence:     0.9,
	}

	b := p.Bundle()
	if b[string(StatPassingYards)] != 300 || b[string(StatRushingYards)] != 12 {
		t.Errorf("bundle mismatch: %v", b)
	}
	if _, ok := b["confidence"]; ok {
		t.Error("confidence must not appear in the stat bundle")
	}

	// Every bundle key is a known canonical stat.
	for key := range b {
		if !StatType(key).Known() {
			t.Errorf("bundle key %q is not a canonical stat", key)
		}
	}
}
