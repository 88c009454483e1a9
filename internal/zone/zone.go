// Package zone models a document as an ordered, circularly traversed
// sequence of zones. A zone is a contiguous run of sentences together with
// the bookkeeping the refinement loop needs to decide whether it still
// requires work.
package zone

import (
	"fmt"
	"strings"

	"github.com/valpere/zonerefine/internal/chunker"
)

// Type classifies a zone by its position in the document.
type Type string

const (
	Intro      Type = "intro"
	Body       Type = "body"
	Conclusion Type = "conclusion"
)

// Zone is one segment of the document.
type Zone struct {
	ID               int
	Text             string
	OriginalText     string
	Type             Type
	RefinementPasses int
	ChangesMade      int
	IsRefined        bool
	TokensProcessed  int
}

// New creates a zone with its original-text snapshot taken from text.
func New(id int, text string, t Type) *Zone {
	return &Zone{
		ID:           id,
		Text:         text,
		OriginalText: text,
		Type:         t,
	}
}

// MarkChange records that a pass mutated the zone's text.
func (z *Zone) MarkChange() { z.ChangesMade++ }

// IncrementPass records one predict/apply pass.
func (z *Zone) IncrementPass() { z.RefinementPasses++ }

// CountTokens returns the number of whitespace-delimited words in Text.
func (z *Zone) CountTokens() int {
	return len(strings.Fields(z.Text))
}

// HasTerminalPunctuation reports whether the trimmed text ends with
// '.', '!' or '?'.
func (z *Zone) HasTerminalPunctuation() bool {
	return EndsTerminal(z.Text)
}

func (z *Zone) String() string {
	return fmt.Sprintf("Zone %d (%s): %d chars, %d passes", z.ID, z.Type, len(z.Text), z.RefinementPasses)
}

// EndsTerminal reports whether text, once trimmed, ends in sentence-final
// punctuation. Empty text never does.
func EndsTerminal(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	switch t[len(t)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// Detail is the per-zone diagnostic view handed to presentation code.
type Detail struct {
	ID      int    `json:"zone_id" yaml:"zone_id"`
	Type    Type   `json:"type" yaml:"type"`
	Passes  int    `json:"passes" yaml:"passes"`
	Changes int    `json:"changes" yaml:"changes"`
	Tokens  int    `json:"tokens" yaml:"tokens"`
	Refined bool   `json:"refined" yaml:"refined"`
	Text    string `json:"text" yaml:"text"`
}

// Manager owns the zones of one document. The zones form a logical cycle
// in ascending ID order; Next gives the successor of any position.
type Manager struct {
	zones []*Zone
}

// NewManager returns an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Partition replaces the current zone set with zones built from text and
// returns the new zone count. Whitespace-only text yields zero zones.
func (m *Manager) Partition(text string) int {
	groups := chunker.Group(chunker.Sentences(text))

	m.zones = make([]*Zone, 0, len(groups))
	for i, g := range groups {
		m.zones = append(m.zones, New(i+1, g, typeFor(i, len(groups))))
	}
	return len(m.zones)
}

// typeFor assigns a zone type by position. The first-zone rule wins, so a
// lone zone is an intro.
func typeFor(i, n int) Type {
	switch {
	case i == 0:
		return Intro
	case i == n-1:
		return Conclusion
	default:
		return Body
	}
}

// Zones returns the zones in traversal order. The slice is shared with the
// manager; callers may mutate the zones but must not reorder the slice.
func (m *Manager) Zones() []*Zone {
	return m.zones
}

// Len returns the number of zones.
func (m *Manager) Len() int {
	return len(m.zones)
}

// Head returns the first zone, or nil when there are none.
func (m *Manager) Head() *Zone {
	if len(m.zones) == 0 {
		return nil
	}
	return m.zones[0]
}

// Next returns the zone after position i, wrapping from the last zone back
// to the first. It returns nil when the manager holds no zones.
func (m *Manager) Next(i int) *Zone {
	n := len(m.zones)
	if n == 0 {
		return nil
	}
	return m.zones[((i+1)%n+n)%n]
}

// CombinedText joins every zone's current text with single spaces.
func (m *Manager) CombinedText() string {
	parts := make([]string, len(m.zones))
	for i, z := range m.zones {
		parts[i] = z.Text
	}
	return strings.Join(parts, " ")
}

// AllRefined reports whether every zone has been marked refined. It is
// false for an empty manager.
func (m *Manager) AllRefined() bool {
	if len(m.zones) == 0 {
		return false
	}
	for _, z := range m.zones {
		if !z.IsRefined {
			return false
		}
	}
	return true
}

// Details returns a diagnostic snapshot of every zone.
func (m *Manager) Details() []Detail {
	details := make([]Detail, 0, len(m.zones))
	for _, z := range m.zones {
		details = append(details, Detail{
			ID:      z.ID,
			Type:    z.Type,
			Passes:  z.RefinementPasses,
			Changes: z.ChangesMade,
			Tokens:  z.CountTokens(),
			Refined: z.IsRefined,
			Text:    z.Text,
		})
	}
	return details
}
