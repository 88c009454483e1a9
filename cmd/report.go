/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/valpere/zonerefine/internal"
	"github.com/valpere/zonerefine/internal/chunker"
	"github.com/valpere/zonerefine/internal/orchestrator"
)

const maxHeat = 5

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	gainStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderText writes the human-readable report: zone table, metrics, the
// refined text and, when present, the traversal log.
func renderText(w io.Writer, report internal.RunReport) error {
	var b strings.Builder

	b.WriteString(headingStyle.Render("ZONE REFINEMENT") + "\n")
	fmt.Fprintf(&b, "Source: %s  Zones: %d  Cycles: %d\n\n", report.Source, report.Metrics.Zones, report.Cycles)

	if len(report.Zones) > 0 {
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ZONE\tTYPE\tPASSES\tCHANGES\tSTATUS\tHEAT\tPREVIEW")
		for _, d := range report.Zones {
			status := "⚡ pending"
			if d.Refined {
				status = "✓ refined"
			}
			fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\t%s\t%s\n",
				d.ID, d.Type, d.Passes, d.Changes, status, heat(d.Changes), chunker.Preview(d.Text, chunker.DefaultPreviewWords))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		b.WriteString("\n")
	}

	m := report.Metrics
	b.WriteString(headingStyle.Render("METRICS") + "\n")
	fmt.Fprintf(&b, "Total changes:        %d\n", m.TotalChanges)
	fmt.Fprintf(&b, "Total passes:         %d\n", m.TotalPasses)
	fmt.Fprintf(&b, "Tokens (traditional): %d\n", m.TokensTraditional)
	fmt.Fprintf(&b, "Tokens (zonal):       %d\n", m.TokensActual)
	fmt.Fprintf(&b, "Efficiency gain:      %s\n\n", gainStyle.Render(fmt.Sprintf("%.1f%%", m.EfficiencyGain)))

	b.WriteString(headingStyle.Render("REFINED TEXT") + "\n")
	b.WriteString(report.FinalText + "\n")

	if len(report.Events) > 0 {
		b.WriteString("\n" + headingStyle.Render("TRAVERSAL") + "\n")
		for _, e := range report.Events {
			b.WriteString(formatEvent(e) + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatEvent(e orchestrator.Event) string {
	if e.Kind == orchestrator.EventRefined {
		return fmt.Sprintf("✓ zone %d refined", e.Zone)
	}
	line := fmt.Sprintf("→ visit zone %d", e.Zone)
	if !e.Refined {
		line += mutedStyle.Render(" (needs work)")
	}
	return line
}

// heat draws one flame per change, capped at maxHeat.
func heat(changes int) string {
	return strings.Repeat("🔥", min(changes, maxHeat))
}
