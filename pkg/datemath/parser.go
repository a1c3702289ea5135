package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire and storage layout of calendar dates.
const DateLayout = "2006-01-02"

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

// Parser resolves calendar dates relative to a fixed IANA time zone.
//
// Calendar dates are represented as midnight UTC of the given day so that
// values read back from storage compare equal regardless of server zone.
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

// Today returns the calendar date of now in the parser's time zone.
func (p *Parser) Today(now time.Time) time.Time {
	return DateOf(now.In(p.location))
}

// Parse converts an absolute (YYYY-MM-DD) or relative date expression to a
// calendar date. The baseTime is the reference point (usually time.Now()).
func (p *Parser) Parse(expr string, baseTime time.Time) (time.Time, error) {
	expr = strings.ToLower(strings.TrimSpace(expr))
	today := p.Today(baseTime)

	switch expr {
	case "":
		return time.Time{}, fmt.Errorf("empty date expression")
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if strings.HasPrefix(expr, "in ") {
		return p.parseInDuration(expr, today)
	}
	if strings.HasPrefix(expr, "next ") {
		return p.parseNextWeekday(expr, today)
	}

	d, err := ParseDate(expr)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognised date expression %q", expr)
	}
	return d, nil
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(expr string, today time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(expr)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", expr)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return today.AddDate(0, 0, amount), nil
	case strings.HasPrefix(unit, "week"):
		return today.AddDate(0, 0, amount*7), nil
	default:
		return today.AddDate(0, amount, 0), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(expr string, today time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(expr, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(targetWeekday - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return today.AddDate(0, 0, daysUntil), nil
}

// DateOf returns midnight UTC of t's calendar day in t's own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// DaysBetween returns the number of calendar days from -> to (negative when
// to is before from). Both arguments are reduced to their calendar day first.
func DaysBetween(from, to time.Time) int {
	a, b := DateOf(from), DateOf(to)
	return int(b.Sub(a).Hours() / 24)
}
