package api

import (
	"strings"
	"time"

	"rental-inventory/internal/domain/calendar"
	"rental-inventory/internal/pkg/clock"
	"rental-inventory/internal/pkg/errs"
)

// dateParam resolves ?date= in the business timezone. An absent date means today.
type dateParam struct {
	clock clock.Clock
	loc   *time.Location
}

func newDateParam(c clock.Clock, loc *time.Location) dateParam {
	if loc == nil {
		loc = time.UTC
	}
	return dateParam{clock: c, loc: loc}
}

func (p dateParam) orToday(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return clock.Today(p.clock, p.loc), nil
	}
	return p.parse(raw)
}

// optional returns nil for an absent date.
func (p dateParam) optional(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := p.parse(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (p dateParam) parse(raw string) (time.Time, error) {
	t, err := calendar.ParseDate(raw, p.loc)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "date %q", raw), errs.ErrInvalidDate)
	}
	return t, nil
}
