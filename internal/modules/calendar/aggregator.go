package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"dancestudio/internal/domain"
)

const (
	// HorizonWeeks bounds the forward expansion of weekly classes.
	HorizonWeeks = 12

	eventLength    = 60 * time.Minute
	workshopLength = 120 * time.Minute
	defaultLength  = 60 * time.Minute

	isoDate = "2006-01-02"
)

var weekdayIndex = map[string]int{
	"Sunday":    0,
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
}

var (
	time24Re  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	time12Re  = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
	hoursRe   = regexp.MustCompile(`(?i)(\d+)\s*hour`)
	minutesRe = regexp.MustCompile(`(?i)(\d+)\s*min`)
)

// Expand merges the owner's three collections into one flat list of
// calendar occurrences. Events and workshops map to a single occurrence
// each; every active class is unrolled into one occurrence per week over
// the next HorizonWeeks weeks, starting from the first matching weekday
// at or after now's date.
//
// Pure function: no I/O, no error path. Malformed times fall back to
// midnight, malformed durations to one hour, and a class with an
// unrecognized weekday contributes nothing. Timestamps are naive local
// wall-clock values; the consumer does its own date bucketing, so no
// sorting happens here.
func Expand(classes []domain.Class, events []domain.Event, workshops []domain.Workshop, now time.Time) []domain.Occurrence {
	occurrences := make([]domain.Occurrence, 0, len(events)+len(workshops)+len(classes)*HorizonWeeks)

	for i := range events {
		e := &events[i]
		day, ok := parseISODate(e.Date, now.Location())
		if !ok {
			continue
		}
		start := at(day, parseTimeOfDay(e.Time))
		occurrences = append(occurrences, domain.Occurrence{
			ID:       strconv.FormatInt(e.ID, 10),
			Kind:     domain.KindEvent,
			Title:    e.Title,
			Start:    start,
			End:      start.Add(eventLength),
			Location: e.Location,
			Event:    e,
		})
	}

	for i := range workshops {
		w := &workshops[i]
		day, ok := parseISODate(w.Date, now.Location())
		if !ok {
			continue
		}
		// Workshops always get the fixed two-hour block; the stored
		// duration string is not consulted.
		start := at(day, parseTimeOfDay(w.Time))
		occurrences = append(occurrences, domain.Occurrence{
			ID:       strconv.FormatInt(w.ID, 10),
			Kind:     domain.KindWorkshop,
			Title:    w.Title,
			Start:    start,
			End:      start.Add(workshopLength),
			Location: w.Location,
			Workshop: w,
		})
	}

	for i := range classes {
		c := &classes[i]
		occurrences = append(occurrences, expandClass(c, now)...)
	}

	return occurrences
}

func expandClass(c *domain.Class, now time.Time) []domain.Occurrence {
	dayIdx, ok := weekdayIndex[c.Day]
	if !ok {
		return nil
	}

	tod := parseTimeOfDay(c.Time)
	length := parseDuration(c.Duration)

	// First instance lands on the next (or current) matching weekday.
	offset := (dayIdx - int(now.Weekday()) + 7) % 7
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	first := at(today.AddDate(0, 0, offset), tod)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.WEEKLY,
		Count:   HorizonWeeks,
		Dtstart: first,
	})
	if err != nil {
		return nil
	}

	starts := rule.All()
	out := make([]domain.Occurrence, 0, len(starts))
	for week, start := range starts {
		out = append(out, domain.Occurrence{
			ID:       fmt.Sprintf("%d-%d", c.ID, week),
			Kind:     domain.KindClass,
			Title:    c.Name,
			Start:    start,
			End:      start.Add(length),
			Location: c.Location,
			Class:    c,
		})
	}
	return out
}

type timeOfDay struct {
	hours   int
	minutes int
}

// parseTimeOfDay accepts "HH:MM" and "H:MM AM/PM"; anything else means
// midnight rather than an error.
func parseTimeOfDay(s string) timeOfDay {
	s = strings.TrimSpace(s)

	if m := time24Re.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		return timeOfDay{hours: h, minutes: min}
	}

	if m := time12Re.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		switch strings.ToUpper(m[3]) {
		case "PM":
			if h != 12 {
				h += 12
			}
		case "AM":
			if h == 12 {
				h = 0
			}
		}
		return timeOfDay{hours: h, minutes: min}
	}

	return timeOfDay{}
}

// parseDuration understands "<n> hour(s)" and "<n> min(utes)"; anything
// else defaults to one hour.
func parseDuration(s string) time.Duration {
	if m := hoursRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return time.Duration(n) * time.Hour
	}
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return time.Duration(n) * time.Minute
	}
	return defaultLength
}

func parseISODate(s string, loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation(isoDate, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func at(day time.Time, tod timeOfDay) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), tod.hours, tod.minutes, 0, 0, day.Location())
}
