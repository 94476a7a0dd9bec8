package service

import (
	"fmt"
	"strings"

	"github.com/diillson/aws-costbot-go/internal/domain/entity"
)

// Title builds "{prefix} {start} - {end} {costType}" for multi-day windows and
// "{prefix} {start} ({weekday}) {costType}" for a single day.
func Title(prefix string, w entity.TimeWindow, costType string) string {
	var title string
	if w.SpanDays() > 1 {
		title = fmt.Sprintf("%s %s - %s %s", prefix, w.StartString(), w.EndString(), costType)
	} else {
		title = fmt.Sprintf("%s %s (%s) %s", prefix, w.StartString(), w.Start.Weekday(), costType)
	}
	return strings.TrimSpace(title)
}
