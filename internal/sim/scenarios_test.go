package sim

import (
	"testing"

	"clubsim/internal/domain"
)

func TestRandomScenarioReturnsCatalogueEntry(t *testing.T) {
	src := NewSource(50)
	for i := 0; i < 30; i++ {
		s := RandomScenario(src)
		if _, ok := ScenarioByID(s.ID); !ok {
			t.Fatalf("random scenario %q not in catalogue", s.ID)
		}
		if len(s.Options) < 2 {
			t.Fatalf("scenario %q has %d options, want at least 2", s.ID, len(s.Options))
		}
	}
}

func TestResolveScenarioCalmAlwaysSucceeds(t *testing.T) {
	var team domain.Team
	for seed := int64(0); seed < 20; seed++ {
		res := ResolveScenario(NewSource(seed), team, "MEDIA_INTERVIEW", "CALM")
		if !res.Success {
			t.Fatalf("seed %d: calm statement failed", seed)
		}
		if res.Changes.MoraleDelta != 5 {
			t.Fatalf("seed %d: morale delta %d, want 5", seed, res.Changes.MoraleDelta)
		}
	}
}

func TestResolveScenarioRejectingSponsorIsSafe(t *testing.T) {
	var team domain.Team
	for seed := int64(0); seed < 20; seed++ {
		res := ResolveScenario(NewSource(seed), team, "SPONSOR_DEAL", "REJECT")
		if !res.Success {
			t.Fatalf("seed %d: rejecting the sponsor should never fail", seed)
		}
		if res.Changes != (Changes{}) {
			t.Fatalf("seed %d: rejecting the sponsor carries changes %+v", seed, res.Changes)
		}
	}
}

func TestResolveScenarioArrogantOutcomes(t *testing.T) {
	var team domain.Team
	wins, losses := 0, 0
	for seed := int64(0); seed < 200; seed++ {
		res := ResolveScenario(NewSource(seed), team, "MEDIA_INTERVIEW", "ARROGANT")
		if res.Success {
			if res.Changes.MoraleDelta != 15 {
				t.Fatalf("success morale delta %d, want 15", res.Changes.MoraleDelta)
			}
			wins++
		} else {
			if res.Changes.MoraleDelta != -10 {
				t.Fatalf("failure morale delta %d, want -10", res.Changes.MoraleDelta)
			}
			losses++
		}
	}
	if wins == 0 || losses == 0 {
		t.Fatalf("expected both outcomes over 200 rolls, got %d wins %d losses", wins, losses)
	}
}

func TestResolveScenarioDefaultSafeOptions(t *testing.T) {
	var team domain.Team
	for _, tc := range []struct{ scenario, option string }{
		{"CHARITY_EVENT", "ACCEPT"},
		{"FACILITY_ISSUE", "FIX_NOW"},
		{"FAN_PROTEST", "DISCOUNT"},
	} {
		for seed := int64(0); seed < 10; seed++ {
			res := ResolveScenario(NewSource(seed), team, tc.scenario, tc.option)
			if !res.Success {
				t.Fatalf("%s/%s failed at seed %d", tc.scenario, tc.option, seed)
			}
		}
	}
}

func TestResolveScenarioUnknownID(t *testing.T) {
	var team domain.Team
	res := ResolveScenario(NewSource(0), team, "NO_SUCH_SCENARIO", "ACCEPT")
	if res.Success {
		t.Fatal("unknown scenario resolved successfully")
	}
}

func TestApplyScenarioChangesMoraleClamp(t *testing.T) {
	team := domain.Team{Players: []domain.Player{
		{ID: "p1", Rating: 70, Morale: 95},
		{ID: "p2", Rating: 60, Morale: 3},
	}}

	up := ApplyScenarioChanges(team, Changes{MoraleDelta: 10})
	if up.Players[0].Morale != 100 {
		t.Fatalf("morale %d, want clamped to 100", up.Players[0].Morale)
	}

	down := ApplyScenarioChanges(team, Changes{MoraleDelta: -10})
	if down.Players[1].Morale != 0 {
		t.Fatalf("morale %d, want clamped to 0", down.Players[1].Morale)
	}
}

func TestApplyScenarioChangesInjuresHighestRated(t *testing.T) {
	team := domain.Team{Budget: 10, Players: []domain.Player{
		{ID: "p1", Rating: 70},
		{ID: "p2", Rating: 88},
		{ID: "p3", Rating: 81},
	}}

	got := ApplyScenarioChanges(team, Changes{InjureStarWeeks: 4, BudgetDelta: -2})
	if got.Budget != 8 {
		t.Fatalf("budget %.1f, want 8.0", got.Budget)
	}
	for _, p := range got.Players {
		want := 0
		if p.ID == "p2" {
			want = 4
		}
		if p.InjuryWeeks != want {
			t.Fatalf("player %s injury weeks %d, want %d", p.ID, p.InjuryWeeks, want)
		}
	}
	// Original team is untouched.
	if team.Players[1].InjuryWeeks != 0 {
		t.Fatal("ApplyScenarioChanges mutated the input team")
	}
}

func TestApplyScenarioChangesHealFloorsAtZero(t *testing.T) {
	team := domain.Team{Players: []domain.Player{
		{ID: "p1", InjuryWeeks: 3},
		{ID: "p2", InjuryWeeks: 0},
	}}

	got := ApplyScenarioChanges(team, Changes{HealWeeks: 1})
	if got.Players[0].InjuryWeeks != 2 {
		t.Fatalf("injury weeks %d, want 2", got.Players[0].InjuryWeeks)
	}
	if got.Players[1].InjuryWeeks != 0 {
		t.Fatalf("healthy player injury weeks %d, want 0", got.Players[1].InjuryWeeks)
	}
}
