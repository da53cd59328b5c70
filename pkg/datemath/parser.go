package datemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date phrases to absolute dates.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse converts a relative phrase ("today", "tomorrow", "yesterday",
// "in N days|weeks|months", "next <weekday>") to the start of that day,
// using baseTime as the reference point. ok is false for anything else.
func (p *Parser) Parse(relative string, baseTime time.Time) (t time.Time, ok bool) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today":
		return p.startOfDay(baseTime), true
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), true
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), true
	}

	if m := inDurationRe.FindStringSubmatch(relative); m != nil {
		return p.parseInDuration(m[1], m[2], baseTime)
	}
	if dayName, found := strings.CutPrefix(relative, "next "); found {
		return p.parseNextWeekday(dayName, baseTime)
	}
	return time.Time{}, false
}

// ResolveDate returns expr as a YYYY-MM-DD date when it is a relative
// phrase, and expr unchanged otherwise.
func (p *Parser) ResolveDate(expr string, baseTime time.Time) string {
	t, ok := p.Parse(expr, baseTime)
	if !ok {
		return expr
	}
	return t.Format(DateLayout)
}

func (p *Parser) parseInDuration(amountText, unit string, baseTime time.Time) (time.Time, bool) {
	amount, err := strconv.Atoi(amountText)
	if err != nil {
		return time.Time{}, false
	}

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), true
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), true
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), true
	}
	return time.Time{}, false
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// parseNextWeekday returns the first dayName strictly after baseTime.
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, bool) {
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, false
	}

	base := baseTime.In(p.location)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.startOfDay(base.AddDate(0, 0, daysUntil)), true
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
