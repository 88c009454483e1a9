// Package refiner holds the rule set that drives zone refinement: a
// predictor that picks exactly one corrective action for a zone, and an
// applier that performs that action's text transform.
package refiner

import "github.com/valpere/zonerefine/internal/zone"

// Action names a single defect-correction operation.
type Action string

const (
	AddPeriod             Action = "add period"
	FixSpacing            Action = "fix spacing"
	FixContractions       Action = "fix contractions"
	CapitalizeFirst       Action = "capitalize first"
	CapitalizeName        Action = "capitalize name"
	AddCompoundComma      Action = "add compound comma"
	CapitalizeAfterPeriod Action = "capitalize after period"
	NoChange              Action = "no change"
)

// Refiner predicts and applies corrective actions on zones.
type Refiner interface {
	// Predict returns the single action the zone needs next. It must not
	// mutate the zone.
	Predict(z *zone.Zone) Action
	// Apply performs action on the zone and reports whether its text
	// changed.
	Apply(z *zone.Zone, action Action) bool
}

// RuleSet is the fixed, priority-ordered rule set.
type RuleSet struct{}

// Default returns the standard rule set.
func Default() RuleSet { return RuleSet{} }

func (RuleSet) Predict(z *zone.Zone) Action { return Predict(z) }

func (RuleSet) Apply(z *zone.Zone, action Action) bool { return Apply(z, action) }
