package orchestrator

import "encoding/json"

// EventKind tags a traversal event.
type EventKind string

const (
	// EventVisit is emitted each time the loop reaches a zone in its
	// working set.
	EventVisit EventKind = "visit"
	// EventRefined is emitted once, when a zone is marked refined.
	EventRefined EventKind = "refined"
)

// Event is one record of the traversal log. Refined is only meaningful for
// visit events and is left out of their encoded form otherwise.
type Event struct {
	Kind    EventKind
	Zone    int
	Refined bool
}

type visitRecord struct {
	Event   EventKind `json:"event" yaml:"event"`
	Zone    int       `json:"zone" yaml:"zone"`
	Refined bool      `json:"refined" yaml:"refined"`
}

type refinedRecord struct {
	Event EventKind `json:"event" yaml:"event"`
	Zone  int       `json:"zone" yaml:"zone"`
}

func (e Event) record() interface{} {
	if e.Kind == EventVisit {
		return visitRecord{Event: e.Kind, Zone: e.Zone, Refined: e.Refined}
	}
	return refinedRecord{Event: e.Kind, Zone: e.Zone}
}

// MarshalJSON encodes the event as {"event","zone","refined"} for visits
// and {"event","zone"} for refinements.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.record())
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (e Event) MarshalYAML() (interface{}, error) {
	return e.record(), nil
}
