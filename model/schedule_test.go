package model

import "testing"

const samplePayload = `{
  "units": [
    {
      "disciplineName": "Swimming",
      "eventUnitName": "100m Freestyle - Race 1",
      "startDate": "2024-07-27T10:00:00Z",
      "endDate": "2024-07-27T11:00:00Z",
      "medalFlag": 1,
      "competitors": [
        {"code": "SMITHJ", "noc": "AUS", "name": "jane smith"},
        {"code": "TBD", "noc": "USA", "name": "TBD"}
      ]
    },
    {
      "disciplineName": "Hockey",
      "eventUnitName": "Pool B Match"
    }
  ]
}`

func TestParseSchedule(t *testing.T) {
	schedule := ParseSchedule([]byte(samplePayload))

	if len(schedule.Units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(schedule.Units))
	}

	first := schedule.Units[0]
	if first.DisciplineName != "Swimming" {
		t.Fatalf("expected Swimming, got %q", first.DisciplineName)
	}
	if first.EventUnitName != "100m Freestyle - Race 1" {
		t.Fatalf("unexpected unit name %q", first.EventUnitName)
	}
	if first.StartDate != "2024-07-27T10:00:00Z" {
		t.Fatalf("unexpected start date %q", first.StartDate)
	}
	if first.MedalFlag != 1 {
		t.Fatalf("expected medal flag 1, got %d", first.MedalFlag)
	}

	if len(first.Competitors) != 1 {
		t.Fatalf("expected TBD competitor to be dropped, got %d competitors", len(first.Competitors))
	}
	if first.Competitors[0].NOC != "AUS" || first.Competitors[0].Name != "jane smith" {
		t.Fatalf("unexpected competitor %+v", first.Competitors[0])
	}
}

func TestParseSchedule_MissingOptionalStructure(t *testing.T) {
	schedule := ParseSchedule([]byte(samplePayload))

	// Unit without competitors or dates parses as zero-valued, not an error.
	second := schedule.Units[1]
	if len(second.Competitors) != 0 {
		t.Fatalf("expected no competitors, got %d", len(second.Competitors))
	}
	if second.MedalFlag != 0 {
		t.Fatalf("expected medal flag 0, got %d", second.MedalFlag)
	}
	if second.StartDate != "" {
		t.Fatalf("expected empty start date, got %q", second.StartDate)
	}
}

func TestParseSchedule_NoUnits(t *testing.T) {
	for _, payload := range []string{`{}`, `{"units": []}`, ``, `not json`} {
		schedule := ParseSchedule([]byte(payload))
		if len(schedule.Units) != 0 {
			t.Fatalf("payload %q: expected empty schedule, got %d units", payload, len(schedule.Units))
		}
	}
}

func TestParseSchedule_TBDFilterEitherField(t *testing.T) {
	payload := `{"units": [{"competitors": [
	  {"code": "TBD", "noc": "AUS", "name": "jane smith"},
	  {"code": "SMITHJ", "noc": "AUS", "name": "TBD"},
	  {"code": "ROEJ", "noc": "AUS", "name": "jon roe"}
	]}]}`

	schedule := ParseSchedule([]byte(payload))
	if len(schedule.Units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(schedule.Units))
	}
	comps := schedule.Units[0].Competitors
	if len(comps) != 1 || comps[0].Name != "jon roe" {
		t.Fatalf("expected only the real competitor to survive, got %+v", comps)
	}
}

func TestHasCompetitorFrom(t *testing.T) {
	unit := EventUnit{Competitors: []Competitor{{NOC: "USA"}, {NOC: "AUS"}}}
	if !unit.HasCompetitorFrom("AUS") {
		t.Fatal("expected AUS competitor to be found")
	}
	if unit.HasCompetitorFrom("NZL") {
		t.Fatal("did not expect NZL competitor")
	}
	if (EventUnit{}).HasCompetitorFrom("AUS") {
		t.Fatal("empty unit should have no competitors")
	}
}
