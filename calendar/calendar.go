// Package calendar exports a day's event units as an iCalendar document.
package calendar

import (
	"fmt"
	"log"
	"time"

	ics "github.com/arran4/golang-ical"

	"olysched/digest"
	"olysched/model"
)

// Build serializes units into an ICS calendar. Units whose start time
// cannot be parsed are skipped with a warning. An end time that is
// missing or unparseable falls back to the start time.
func Build(units []model.EventUnit, loc *time.Location) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//olysched//schedule//EN")

	for i, u := range units {
		start, err := digest.ParseEventTime(u.StartDate, loc)
		if err != nil {
			log.Printf("Skipping calendar entry for %s: %s: %v", u.DisciplineName, u.EventUnitName, err)
			continue
		}
		end := start
		if u.EndDate != "" {
			if t, err := digest.ParseEventTime(u.EndDate, loc); err == nil {
				end = t
			}
		}

		summary := fmt.Sprintf("%s: %s", u.DisciplineName, u.EventUnitName)
		if u.MedalFlag == 1 {
			summary = digest.MedalGlyph + " " + summary
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d@olysched", start.Format("20060102"), i))
		event.SetDtStampTime(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(summary)
	}

	return cal.Serialize()
}
