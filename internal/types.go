package internal

import (
	"time"

	"github.com/valpere/zonerefine/internal/metrics"
	"github.com/valpere/zonerefine/internal/orchestrator"
	"github.com/valpere/zonerefine/internal/zone"
)

// RunReport is the machine-readable record of one refinement run.
type RunReport struct {
	ID        string               `json:"id" yaml:"id"`
	Source    string               `json:"source" yaml:"source"`
	Timestamp time.Time            `json:"timestamp" yaml:"timestamp"`
	Cycles    int                  `json:"cycles" yaml:"cycles"`
	FinalText string               `json:"final_text" yaml:"final_text"`
	Metrics   metrics.Metrics      `json:"metrics" yaml:"metrics"`
	Zones     []zone.Detail        `json:"zones" yaml:"zones"`
	Events    []orchestrator.Event `json:"events,omitempty" yaml:"events,omitempty"`
}
