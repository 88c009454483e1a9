// Package orchestrator drives the zone refinement loop: it partitions the
// input, then repeatedly predicts, applies and polishes on the zones that
// still need work until they are all refined or the cycle budget runs out.
package orchestrator

import (
	"strings"

	"go.uber.org/zap"

	"github.com/valpere/zonerefine/internal/metrics"
	"github.com/valpere/zonerefine/internal/placeholder"
	"github.com/valpere/zonerefine/internal/postprocess"
	"github.com/valpere/zonerefine/internal/refiner"
	"github.com/valpere/zonerefine/internal/zone"
)

// DefaultMaxCycles bounds the number of sweeps over the working set.
const DefaultMaxCycles = 10

type OrchestratorConfig struct {
	// MaxCycles caps the number of sweeps; values ≤ 0 mean DefaultMaxCycles.
	MaxCycles int
	// ProtectMarkup hides code, URLs and e-mail addresses from the rules.
	ProtectMarkup bool
}

// DefaultConfig returns the configuration used by Refine.
func DefaultConfig() OrchestratorConfig {
	return OrchestratorConfig{MaxCycles: DefaultMaxCycles}
}

// Result is everything a run produces.
type Result struct {
	Events    []Event
	FinalText string
	Metrics   metrics.Metrics
	Zones     []zone.Detail
	Cycles    int
}

type Orchestrator struct {
	refiner refiner.Refiner
	config  OrchestratorConfig
	logger  *zap.Logger
}

// New creates an Orchestrator. A nil refiner selects refiner.Default and a
// nil logger discards log output.
func New(r refiner.Refiner, config OrchestratorConfig, logger *zap.Logger) *Orchestrator {
	if r == nil {
		r = refiner.Default()
	}
	if config.MaxCycles <= 0 {
		config.MaxCycles = DefaultMaxCycles
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		refiner: r,
		config:  config,
		logger:  logger,
	}
}

// Refine runs the default rule set with the default configuration.
func Refine(text string) *Result {
	return New(nil, DefaultConfig(), nil).Run(text)
}

// Run refines text and returns the traversal log, the reassembled text,
// per-zone details and metrics. Empty input produces an empty result with
// zero metrics.
func (o *Orchestrator) Run(text string) *Result {
	var markers []string
	if o.config.ProtectMarkup {
		text, markers = placeholder.Protect(text)
	}

	manager := zone.NewManager()
	manager.Partition(text)

	result := &Result{Events: make([]Event, 0)}

	working := append([]*zone.Zone(nil), manager.Zones()...)
	for len(working) > 0 && result.Cycles < o.config.MaxCycles && !manager.AllRefined() {
		result.Cycles++

		remaining := make([]*zone.Zone, 0, len(working))
		for _, z := range working {
			result.Events = append(result.Events, Event{Kind: EventVisit, Zone: z.ID, Refined: z.IsRefined})
			if z.IsRefined {
				continue
			}
			if o.pass(z, result) {
				continue
			}
			remaining = append(remaining, z)
		}
		working = remaining
	}

	result.Metrics = metrics.Calculate(manager.Zones())
	result.Zones = manager.Details()
	result.FinalText = manager.CombinedText()

	if len(markers) > 0 {
		if missing := placeholder.Validate(result.FinalText, markers); len(missing) > 0 {
			o.logger.Warn("protected spans lost during refinement", zap.Ints("markers", missing))
		}
		result.FinalText = placeholder.Restore(result.FinalText, markers)
		for i := range result.Zones {
			result.Zones[i].Text = placeholder.Restore(result.Zones[i].Text, markers)
		}
	}

	o.logger.Info("refinement complete",
		zap.Int("zones", result.Metrics.Zones),
		zap.Int("cycles", result.Cycles),
		zap.Int("passes", result.Metrics.TotalPasses),
		zap.Float64("efficiency_gain", result.Metrics.EfficiencyGain),
	)
	return result
}

// pass runs one predict → apply → polish step on z and reports whether the
// zone settled. A zone settles as soon as its text ends in terminal
// punctuation and the refiner has nothing left to do; the refined event is
// emitted in the same iteration.
func (o *Orchestrator) pass(z *zone.Zone, result *Result) bool {
	action := o.refiner.Predict(z)

	if action == refiner.NoChange {
		if z.HasTerminalPunctuation() {
			o.settle(z, result)
			return true
		}
		z.Text = strings.TrimSpace(z.Text) + "."
		z.MarkChange()
		z.IncrementPass()
		o.logger.Debug("forced terminal period",
			zap.Int("cycle", result.Cycles),
			zap.Int("zone", z.ID),
		)
	} else {
		z.IncrementPass()
		changed := o.refiner.Apply(z, action)
		polished := postprocess.PolishZone(z)
		o.logger.Debug("zone pass",
			zap.Int("cycle", result.Cycles),
			zap.Int("zone", z.ID),
			zap.String("action", string(action)),
			zap.Bool("changed", changed),
			zap.Bool("polished", polished),
		)
	}

	if z.HasTerminalPunctuation() && o.refiner.Predict(z) == refiner.NoChange {
		o.settle(z, result)
		return true
	}
	return false
}

func (o *Orchestrator) settle(z *zone.Zone, result *Result) {
	z.IsRefined = true
	result.Events = append(result.Events, Event{Kind: EventRefined, Zone: z.ID})
}
