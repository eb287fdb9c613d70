package domain

import "time"

type OccurrenceKind string

const (
	KindClass    OccurrenceKind = "class"
	KindEvent    OccurrenceKind = "event"
	KindWorkshop OccurrenceKind = "workshop"
)

// Occurrence is one concrete calendar instance: a dated event or
// workshop as-is, or one week-expansion of a recurring class. Start and
// End are naive local wall-clock times; exactly one of the back
// references is set, matching Kind.
type Occurrence struct {
	ID       string         `json:"id"`
	Kind     OccurrenceKind `json:"kind"`
	Title    string         `json:"title"`
	Start    time.Time      `json:"start"`
	End      time.Time      `json:"end"`
	Location string         `json:"location"`

	Class    *Class    `json:"class,omitempty"`
	Event    *Event    `json:"event,omitempty"`
	Workshop *Workshop `json:"workshop,omitempty"`
}
