package calendar

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// WeekWindow is the closed range [Start, End] a business week covers.
// Start is Monday 00:00:00.000 and End is Sunday 23:59:59.999.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// Span is a closed time range such as a normalized reservation period.
type Span struct {
	Start time.Time
	End   time.Time
}

// ResolveWeek returns the week window the anchor date belongs to.
//
// The anchor is rolled back to Monday by (weekday-1) days. Sunday has weekday 0,
// so a Sunday anchor rolls forward to the following Monday.
func ResolveWeek(anchor time.Time) WeekWindow {
	dow := int(anchor.Weekday())
	monday := DayStart(anchor).AddDate(0, 0, -(dow - 1))
	return WeekWindow{
		Start: monday,
		End:   DayEnd(monday.AddDate(0, 0, 6)),
	}
}

func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func DayEnd(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func NewSpan(start, end time.Time) Span {
	return Span{Start: DayStart(start), End: DayEnd(end)}
}

// ParseDate parses a YYYY-MM-DD string in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

func (w WeekWindow) StartDate() string { return DateKey(w.Start) }
func (w WeekWindow) EndDate() string   { return DateKey(w.End) }

// ContainsDate compares on date keys, so the time of day of t is ignored.
func (w WeekWindow) ContainsDate(t time.Time) bool {
	key := DateKey(t)
	return key >= w.StartDate() && key <= w.EndDate()
}

// Overlaps is inclusive on both ends.
func (w WeekWindow) Overlaps(s Span) bool {
	return !s.Start.After(w.End) && !s.End.Before(w.Start)
}

func (s Span) Overlaps(w WeekWindow) bool {
	return !w.Start.After(s.End) && !w.End.Before(s.Start)
}

func (w WeekWindow) String() string {
	return w.StartDate() + ".." + w.EndDate()
}
