package calendar

import (
	"fmt"

	ics "github.com/arran4/golang-ical"

	"dancestudio/internal/domain"
)

// ToICS renders the expanded occurrences as an iCalendar feed so owners
// can subscribe from an external calendar app. Recurring classes are
// emitted as the already-expanded instances, not as RRULEs, to keep the
// feed byte-for-byte consistent with the dashboard view.
func ToICS(occurrences []domain.Occurrence, studioName string) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//dancestudio//calendar//EN")
	if studioName != "" {
		cal.SetXWRCalName(studioName)
	}

	for _, occ := range occurrences {
		ev := cal.AddEvent(fmt.Sprintf("%s-%s@dancestudio", occ.Kind, occ.ID))
		ev.SetStartAt(occ.Start)
		ev.SetEndAt(occ.End)
		ev.SetSummary(occ.Title)
		if occ.Location != "" {
			ev.SetLocation(occ.Location)
		}
		switch {
		case occ.Class != nil && occ.Class.Instructor != "":
			ev.SetDescription("Instructor: " + occ.Class.Instructor)
		case occ.Workshop != nil && occ.Workshop.Instructor != "":
			ev.SetDescription("Instructor: " + occ.Workshop.Instructor)
		case occ.Event != nil && occ.Event.Description != "":
			ev.SetDescription(occ.Event.Description)
		}
	}

	return cal.Serialize()
}
