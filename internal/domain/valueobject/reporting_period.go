package valueobject

import (
	"fmt"
	"time"
)

// ReportingPeriod is a closed [start, end] date range for a trial balance
// run. Boundaries are day-granular: time-of-day on either bound is
// discarded.
type ReportingPeriod struct {
	start time.Time
	end   time.Time
}

func NewReportingPeriod(start, end time.Time) (ReportingPeriod, error) {
	if start.IsZero() {
		return ReportingPeriod{}, fmt.Errorf("period start is required")
	}
	if end.IsZero() {
		return ReportingPeriod{}, fmt.Errorf("period end is required")
	}
	startDay, endDay := dateOf(start), dateOf(end)
	if endDay.Before(startDay) {
		return ReportingPeriod{}, fmt.Errorf("period end %s is before period start %s",
			endDay.Format("2006-01-02"), startDay.Format("2006-01-02"))
	}
	return ReportingPeriod{start: startDay, end: endDay}, nil
}

func (p ReportingPeriod) Start() time.Time { return p.start }
func (p ReportingPeriod) End() time.Time   { return p.end }
func (p ReportingPeriod) IsZero() bool     { return p.start.IsZero() }

func (p ReportingPeriod) String() string {
	return fmt.Sprintf("%s..%s", p.start.Format("2006-01-02"), p.end.Format("2006-01-02"))
}

// OnOrBeforeEnd reports whether t falls on or before the period end date.
// An entry dated any time on the end date is included; the next calendar
// day is not. The period start deliberately plays no part here: trial
// balance aggregation is cumulative as of the end date.
func (p ReportingPeriod) OnOrBeforeEnd(t time.Time) bool {
	return !dateOf(t).After(p.end)
}

func dateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
