package entity

import (
	"fmt"
	"time"

	"github.com/diillson/aws-costbot-go/internal/shared/types"
)

// DateLayout é o formato de data aceito pelo Cost Explorer.
const DateLayout = "2006-01-02"

// TimeWindow represents the half-open interval [Start, End) sent to the billing API.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow truncates both bounds to calendar dates and requires Start < End.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	w := TimeWindow{Start: toDate(start), End: toDate(end)}
	if !w.Start.Before(w.End) {
		return TimeWindow{}, fmt.Errorf("%w: start %s must be before end %s",
			types.ErrInvalidWindow, w.StartString(), w.EndString())
	}
	return w, nil
}

// ResolveTimeWindow deriva a janela a partir de datas opcionais (YYYY-MM-DD).
// Sem start, a janela termina em end (ou hoje) e começa durationDays antes;
// com start e sem end, termina durationDays depois de start.
func ResolveTimeWindow(start, end string, durationDays int, now time.Time) (TimeWindow, error) {
	if durationDays <= 0 {
		durationDays = 1
	}

	var startDate, endDate time.Time
	var err error
	if end != "" {
		if endDate, err = ParseDate(end); err != nil {
			return TimeWindow{}, err
		}
	}

	if start != "" {
		if startDate, err = ParseDate(start); err != nil {
			return TimeWindow{}, err
		}
		if end == "" {
			endDate = startDate.AddDate(0, 0, durationDays)
		}
	} else {
		if end == "" {
			endDate = toDate(now)
		}
		startDate = endDate.AddDate(0, 0, -durationDays)
	}

	return NewTimeWindow(startDate, endDate)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", types.ErrInvalidWindow, s)
	}
	return t, nil
}

// SpanDays returns End - Start in whole days.
func (w TimeWindow) SpanDays() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

func (w TimeWindow) StartString() string { return w.Start.Format(DateLayout) }

func (w TimeWindow) EndString() string { return w.End.Format(DateLayout) }

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
