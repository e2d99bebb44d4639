package digest

import (
	"regexp"

	"olysched/model"
)

// The literal space before the hyphen matters: "100m Freestyle - Race 3"
// strips to "100m Freestyle".
var (
	raceSuffixPattern = regexp.MustCompile(` - Race \d+`)
	raceNumberPattern = regexp.MustCompile(`Race (\d+)`)
)

// GroupKey identifies an event group: a discipline plus the event name
// with any per-race suffix removed.
type GroupKey struct {
	Discipline string
	Event      string
}

// Group is an ordered run of event units sharing a key.
type Group struct {
	Key   GroupKey
	Units []model.EventUnit
}

// GroupUnits collects units into groups keyed by (discipline, race-suffix-
// stripped event name). Grouping is stable: units keep their relative
// order within a group, and groups appear in the order their first unit
// was encountered. Nothing is filtered here.
func GroupUnits(units []model.EventUnit) []Group {
	index := make(map[GroupKey]int)
	var groups []Group

	for _, u := range units {
		key := GroupKey{
			Discipline: u.DisciplineName,
			Event:      raceSuffixPattern.ReplaceAllString(u.EventUnitName, ""),
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Units = append(groups[i].Units, u)
	}

	return groups
}

// raceNumber extracts the digits following "Race " in a unit name.
func raceNumber(unitName string) (string, bool) {
	m := raceNumberPattern.FindStringSubmatch(unitName)
	if m == nil {
		return "", false
	}
	return m[1], true
}
