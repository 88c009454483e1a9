// Package metrics compares the zonal refinement strategy with a naive
// strategy that re-scans the whole document on every global pass.
package metrics

import (
	"math"

	"github.com/valpere/zonerefine/internal/zone"
)

// Metrics summarises one refinement run.
type Metrics struct {
	Zones             int     `json:"zones" yaml:"zones"`
	TotalChanges      int     `json:"total_changes" yaml:"total_changes"`
	TotalPasses       int     `json:"total_passes" yaml:"total_passes"`
	TokensTraditional int     `json:"tokens_traditional" yaml:"tokens_traditional"`
	TokensActual      int     `json:"tokens_actual" yaml:"tokens_actual"`
	EfficiencyGain    float64 `json:"efficiency_gain" yaml:"efficiency_gain"`
}

// Calculate aggregates the zones' counters.
//
// The traditional estimate multiplies the document's token count by the
// largest pass count of any zone (at least 1 when there is any zone); the
// actual count weights each zone's tokens by its own passes. The efficiency
// gain is the relative saving in percent, rounded to one decimal, and 0
// when the traditional estimate is 0.
func Calculate(zones []*zone.Zone) Metrics {
	m := Metrics{Zones: len(zones)}
	if len(zones) == 0 {
		return m
	}

	totalTokens := 0
	maxPasses := 1
	for _, z := range zones {
		tokens := z.CountTokens()
		totalTokens += tokens
		m.TotalChanges += z.ChangesMade
		m.TotalPasses += z.RefinementPasses
		m.TokensActual += tokens * z.RefinementPasses
		if z.RefinementPasses > maxPasses {
			maxPasses = z.RefinementPasses
		}
	}
	m.TokensTraditional = totalTokens * maxPasses

	if m.TokensTraditional > 0 {
		gain := float64(m.TokensTraditional-m.TokensActual) / float64(m.TokensTraditional) * 100
		m.EfficiencyGain = math.Round(gain*10) / 10
	}
	return m
}
