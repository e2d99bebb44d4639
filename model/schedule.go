package model

import "github.com/tidwall/gjson"

// Competitor is a single participant in an event unit. Name may be an
// individual, a team name, or a "/"-joined pair for doubles.
type Competitor struct {
	Code string `json:"code"`
	NOC  string `json:"noc"` // 3-letter National Olympic Committee code
	Name string `json:"name"`
}

// EventUnit is one schedulable session of competition (a heat, final or
// match). Only the fields the digest reads are modelled.
type EventUnit struct {
	DisciplineName string       `json:"disciplineName"`
	EventUnitName  string       `json:"eventUnitName"`
	StartDate      string       `json:"startDate"`
	EndDate        string       `json:"endDate"`
	MedalFlag      int64        `json:"medalFlag"` // 1 = medal event
	Competitors    []Competitor `json:"competitors"`
}

// Schedule holds all event units for a single day.
type Schedule struct {
	Units []EventUnit `json:"units"`
}

const placeholder = "TBD"

// ParseSchedule builds a typed Schedule from the raw day-schedule payload.
// The API omits fields freely: a missing or empty "units" array yields an
// empty schedule, a unit without "competitors" has zero competitors.
// Placeholder competitors (code or name "TBD") are dropped here so no
// downstream stage ever sees them.
func ParseSchedule(data []byte) Schedule {
	var schedule Schedule

	units := gjson.GetBytes(data, "units")
	if !units.IsArray() {
		return schedule
	}

	units.ForEach(func(_, raw gjson.Result) bool {
		unit := EventUnit{
			DisciplineName: raw.Get("disciplineName").String(),
			EventUnitName:  raw.Get("eventUnitName").String(),
			StartDate:      raw.Get("startDate").String(),
			EndDate:        raw.Get("endDate").String(),
			MedalFlag:      raw.Get("medalFlag").Int(),
		}

		raw.Get("competitors").ForEach(func(_, comp gjson.Result) bool {
			c := Competitor{
				Code: comp.Get("code").String(),
				NOC:  comp.Get("noc").String(),
				Name: comp.Get("name").String(),
			}
			if c.Code != placeholder && c.Name != placeholder {
				unit.Competitors = append(unit.Competitors, c)
			}
			return true
		})

		schedule.Units = append(schedule.Units, unit)
		return true
	})

	return schedule
}

// HasCompetitorFrom reports whether any competitor in the unit carries the
// given NOC code.
func (u EventUnit) HasCompetitorFrom(noc string) bool {
	for _, c := range u.Competitors {
		if c.NOC == noc {
			return true
		}
	}
	return false
}
