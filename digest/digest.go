package digest

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"olysched/model"
)

// MedalGlyph prefixes titles of groups that award a medal.
const MedalGlyph = "🏅"

// NoDataMessage is returned verbatim when a day has no schedule data.
const NoDataMessage = "No schedule data available."

// Builder renders one day's event units into a markdown digest for a
// single national team.
type Builder struct {
	NOC      string         // target team code, e.g. "AUS"
	TeamName string         // formatted name meaning the team itself, e.g. "Australia"
	Flag     string         // flag glyph for the report title
	Loc      *time.Location // display timezone
}

// NewBuilder wires a Builder for the given team and display timezone.
func NewBuilder(noc, teamName, flag string, loc *time.Location) *Builder {
	return &Builder{NOC: noc, TeamName: teamName, Flag: flag, Loc: loc}
}

// RelevantUnits filters units to those with at least one competitor from
// the given NOC.
func RelevantUnits(units []model.EventUnit, noc string) []model.EventUnit {
	var out []model.EventUnit
	for _, u := range units {
		if u.HasCompetitorFrom(noc) {
			out = append(out, u)
		}
	}
	return out
}

// Build assembles the markdown digest for day. An empty unit list yields
// NoDataMessage. A group whose timestamps cannot be parsed is skipped
// with a warning; other groups are unaffected.
func (b *Builder) Build(units []model.EventUnit, day time.Time) string {
	if len(units) == 0 {
		return NoDataMessage
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s Olympic Events\n\n## %d %s\n\n", b.Flag, day.Day(), day.Month())

	for _, group := range GroupUnits(RelevantUnits(units, b.NOC)) {
		b.renderGroup(&sb, group)
	}

	return sb.String()
}

func (b *Builder) renderGroup(sb *strings.Builder, group Group) {
	var teamCompetitors []model.Competitor
	for _, u := range group.Units {
		for _, c := range u.Competitors {
			if c.NOC == b.NOC {
				teamCompetitors = append(teamCompetitors, c)
			}
		}
	}
	// Should not happen after RelevantUnits, but tolerate it.
	if len(teamCompetitors) == 0 {
		return
	}

	teamUnits := RelevantUnits(group.Units, b.NOC)

	start, err := ParseEventTime(group.Units[0].StartDate, b.Loc)
	if err != nil {
		log.Printf("Skipping group %s: %s: %v", group.Key.Discipline, group.Key.Event, err)
		return
	}

	title := fmt.Sprintf("%s: %s", group.Key.Discipline, group.Key.Event)
	for _, u := range group.Units {
		if u.MedalFlag == 1 {
			title = MedalGlyph + " " + title
			break
		}
	}

	if len(teamUnits) > 1 {
		end, err := ParseEventTime(group.Units[len(group.Units)-1].StartDate, b.Loc)
		if err != nil {
			log.Printf("Skipping group %s: %s: %v", group.Key.Discipline, group.Key.Event, err)
			return
		}
		fmt.Fprintf(sb, "### %s - %s - %s\n", start.Format("15:04"), end.Format("15:04"), title)

		var races []string
		for _, u := range group.Units {
			if n, ok := raceNumber(u.EventUnitName); ok {
				races = append(races, n)
			}
		}
		fmt.Fprintf(sb, "#### Races: %s\n", strings.Join(races, ", "))
	} else {
		fmt.Fprintf(sb, "### %s - %s\n", start.Format("15:04"), title)
	}

	// Head-to-head needs exactly one team competitor and exactly two
	// competitors in the group's first unit; anything else gets the
	// bullet-per-name rendering.
	first := group.Units[0]
	if len(teamCompetitors) == 1 && len(first.Competitors) == 2 {
		var opponent model.Competitor
		for _, c := range first.Competitors {
			if c.NOC != b.NOC {
				opponent = c
				break
			}
		}
		teamName := FormatName(teamCompetitors[0].Name)
		if teamName == b.TeamName {
			fmt.Fprintf(sb, "* %s vs %s\n", b.NOC, opponent.NOC)
		} else {
			fmt.Fprintf(sb, "* %s (%s) vs %s (%s)\n", teamName, b.NOC, FormatName(opponent.Name), opponent.NOC)
		}
	} else {
		seen := make(map[string]bool)
		var names []string
		for _, c := range teamCompetitors {
			name := FormatName(c.Name)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(sb, "* %s\n", name)
		}
	}

	sb.WriteString("\n")
}
