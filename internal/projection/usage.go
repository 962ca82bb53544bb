package projection

import "GridironOracle/internal/model"

// injuryMultipliers is the fixed lookup for injury-report statuses.
var injuryMultipliers = map[string]float64{
	"Out":          0.0,
	"IR":           0.0,
	"PUP":          0.0,
	"Doubtful":     0.1,
	"Questionable": 0.3,
	"Probable":     0.7,
	"Full":         1.0,
}

// UsageFactor blends depth-chart order and snap share into a 0-1
// opportunity multiplier. The depth floor keeps deep bench players from
// zeroing out entirely.
func UsageFactor(depthOrder int, snapShare float64) float64 {
	depthFactor := 0.1
	if depthOrder > 0 {
		if f := 1.0 / float64(depthOrder); f > depthFactor {
			depthFactor = f
		}
	}

	snapFactor := snapShare / 100.0
	if snapFactor > 1.0 {
		snapFactor = 1.0
	}

	return 0.6*depthFactor + 0.4*snapFactor
}

// InjuryMultiplier returns the scaling for an injury-report status. An
// empty or unrecognized status assumes a healthy player.
func InjuryMultiplier(status string) float64 {
	if m, ok := injuryMultipliers[status]; ok {
		return m
	}
	return 1.0
}

// ApplyInjury scales every counting-stat field and the confidence by the
// injury multiplier: a shaky report shrinks both the line and the model's
// certainty in it, rather than silently returning a full-value projection.
func ApplyInjury(p model.ProjectionOutput, status string) model.ProjectionOutput {
	m := InjuryMultiplier(status)
	if m == 1.0 {
		return p
	}
	out := p.Scale(m)
	out.Confidence = p.Confidence * m
	return out
}
