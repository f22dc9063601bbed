package sim

import (
	"testing"

	"clubsim/internal/domain"
)

func twoTeams(t *testing.T, seed int64) (domain.Team, domain.Team) {
	t.Helper()
	teams := InitializeLeague(NewSource(seed), 2)
	return teams[0], teams[1]
}

func TestSimulateMatchScores(t *testing.T) {
	home, away := twoTeams(t, 20)
	match := domain.Match{ID: "m1", Week: 1, HomeTeamID: home.ID, AwayTeamID: away.ID}

	src := NewSource(21)
	for i := 0; i < 100; i++ {
		out := SimulateMatch(src, match, home, away)
		if out.Match.HomeScore == nil || out.Match.AwayScore == nil {
			t.Fatal("simulated match missing scores")
		}
		if *out.Match.HomeScore < 0 || *out.Match.AwayScore < 0 {
			t.Fatalf("negative score: %d-%d", *out.Match.HomeScore, *out.Match.AwayScore)
		}
		if !out.Match.Played {
			t.Fatal("simulated match not marked played")
		}
	}
}

func TestSimulateMatchDeterministicForSeed(t *testing.T) {
	home, away := twoTeams(t, 22)
	match := domain.Match{ID: "m1", Week: 1, HomeTeamID: home.ID, AwayTeamID: away.ID}

	a := SimulateMatch(NewSource(33), match, home, away)
	b := SimulateMatch(NewSource(33), match, home, away)
	if *a.Match.HomeScore != *b.Match.HomeScore || *a.Match.AwayScore != *b.Match.AwayScore {
		t.Fatalf("identical seeds produced %d-%d and %d-%d",
			*a.Match.HomeScore, *a.Match.AwayScore, *b.Match.HomeScore, *b.Match.AwayScore)
	}
}

func TestBuildRecordUpdate(t *testing.T) {
	team := domain.Team{Points: 4, Wins: 1, Draws: 1, Losses: 1, GoalsFor: 3, GoalsAgainst: 2,
		Form: []string{domain.FormWin, domain.FormDraw, domain.FormLoss}}

	tests := []struct {
		name       string
		my, opp    int
		wantPoints int
		wantForm   string
	}{
		{"win", 2, 0, 7, domain.FormWin},
		{"draw", 1, 1, 5, domain.FormDraw},
		{"loss", 0, 3, 4, domain.FormLoss},
	}
	for _, tc := range tests {
		upd := BuildRecordUpdate(team, tc.my, tc.opp)
		if upd.Points != tc.wantPoints {
			t.Fatalf("%s: points %d, want %d", tc.name, upd.Points, tc.wantPoints)
		}
		if got := upd.Form[len(upd.Form)-1]; got != tc.wantForm {
			t.Fatalf("%s: last form letter %q, want %q", tc.name, got, tc.wantForm)
		}
		if len(upd.Form) > 5 {
			t.Fatalf("%s: form longer than 5: %v", tc.name, upd.Form)
		}
	}
}

func TestWeeklyFinancesAwayMatchSkipsStadiumIncome(t *testing.T) {
	team, _ := twoTeams(t, 25)

	homeCtx := &MatchContext{IsHome: true, Result: domain.FormDraw}
	awayCtx := &MatchContext{IsHome: false, Result: domain.FormDraw}

	homeReport := CalculateWeeklyFinances(NewSource(1), team, homeCtx)
	awayReport := CalculateWeeklyFinances(NewSource(1), team, awayCtx)

	if homeReport.Income.Stadium <= 0 {
		t.Fatalf("home fixture produced no stadium income")
	}
	if awayReport.Income.Stadium != 0 {
		t.Fatalf("away fixture produced stadium income %.2f", awayReport.Income.Stadium)
	}
	if awayReport.Income.Hospitality != 0 {
		t.Fatalf("away fixture produced hospitality income %.2f", awayReport.Income.Hospitality)
	}
	// Store income flows regardless of venue.
	if awayReport.Income.Store <= 0 {
		t.Fatalf("away fixture lost store income")
	}
}

func TestWeeklyFinancesWinBonus(t *testing.T) {
	team, _ := twoTeams(t, 26)

	win := CalculateWeeklyFinances(NewSource(2), team, &MatchContext{IsHome: true, Result: domain.FormWin})
	draw := CalculateWeeklyFinances(NewSource(2), team, &MatchContext{IsHome: true, Result: domain.FormDraw})
	loss := CalculateWeeklyFinances(NewSource(2), team, &MatchContext{IsHome: true, Result: domain.FormLoss})

	if win.Income.MatchBonus != 0.35 {
		t.Fatalf("win bonus %.2f, want 0.35", win.Income.MatchBonus)
	}
	if draw.Income.MatchBonus != 0.10 {
		t.Fatalf("draw bonus %.2f, want 0.10", draw.Income.MatchBonus)
	}
	if loss.Income.MatchBonus != 0 {
		t.Fatalf("loss bonus %.2f, want 0", loss.Income.MatchBonus)
	}
}

func TestWeeklyFinancesProjectionAssumesHomeFixture(t *testing.T) {
	team, _ := twoTeams(t, 27)
	report := CalculateWeeklyFinances(NewSource(3), team, nil)
	if report.Income.Stadium <= 0 {
		t.Fatal("projection should include stadium income")
	}
	if report.Income.MatchBonus != 0 {
		t.Fatalf("projection includes match bonus %.2f", report.Income.MatchBonus)
	}
	if report.Expenses.Wages <= 0 {
		t.Fatal("projection missing wage bill")
	}
}

func TestProcessWeeklyUpdatesInjuryAndGrowth(t *testing.T) {
	team, _ := twoTeams(t, 28)
	team.Players[0].InjuryWeeks = 3

	grower := &team.Players[1]
	grower.Age = 19
	grower.Rating = 70
	grower.Potential = 71

	src := NewSource(29)
	for week := 0; week < 200; week++ {
		team = ProcessWeeklyUpdates(src, team)
	}

	if team.Players[0].InjuryWeeks != 0 {
		t.Fatalf("injury weeks %d after 200 weeks, want 0", team.Players[0].InjuryWeeks)
	}
	if got := team.Players[1].Rating; got > 71 {
		t.Fatalf("growth exceeded potential: rating %d, potential 71", got)
	}
	if got := team.Players[1].Rating; got != 71 {
		t.Fatalf("rating %d after 200 growth chances, want to reach potential 71", got)
	}
}

func TestStartNewSeasonCrownsAndResets(t *testing.T) {
	teams := InitializeLeague(NewSource(31), 4)
	userID := teams[0].ID

	teams[2].Points = 60
	teams[2].GoalsFor = 50
	teams[2].GoalsAgainst = 10
	teams[1].Points = 40
	champName := teams[2].Name
	runnerUp := teams[1].Name

	agesBefore := make(map[string]int)
	for _, p := range teams[0].Players {
		agesBefore[p.ID] = p.Age
	}

	rollover := StartNewSeason(NewSource(32), teams, 1, userID)
	if rollover.GameOver {
		t.Fatal("unexpected game over")
	}
	if rollover.History.ChampionName != champName {
		t.Fatalf("champion %q, want %q", rollover.History.ChampionName, champName)
	}
	if rollover.History.RunnerUpName != runnerUp {
		t.Fatalf("runner-up %q, want %q", rollover.History.RunnerUpName, runnerUp)
	}

	for _, tm := range rollover.UpdatedTeams {
		if tm.Points != 0 || tm.Wins != 0 || tm.GoalsFor != 0 {
			t.Fatalf("team %s records not reset: %+v", tm.Name, tm)
		}
		for _, p := range tm.Players {
			if p.Goals != 0 || p.Assists != 0 || p.MatchesPlayed != 0 {
				t.Fatalf("player %s season counters not reset", p.Name)
			}
			if before, ok := agesBefore[p.ID]; ok && p.Age != before+1 {
				t.Fatalf("player %s age %d, want %d", p.Name, p.Age, before+1)
			}
		}
	}
}

func TestStartNewSeasonRetiresVeterans(t *testing.T) {
	teams := InitializeLeague(NewSource(33), 2)
	userID := teams[0].ID

	teams[0].Players[0].Age = 40 // retirement is certain at 40+
	veteranID := teams[0].Players[0].ID

	rollover := StartNewSeason(NewSource(34), teams, 1, userID)

	found := false
	for _, p := range rollover.RetiredPlayers {
		if p.ID == veteranID {
			found = true
		}
	}
	if !found {
		t.Fatal("40-year-old did not retire")
	}
	for _, p := range rollover.UpdatedTeams[0].Players {
		if p.ID == veteranID {
			t.Fatal("retired player still in squad")
		}
	}
}

func TestStartNewSeasonGameOverAfterThreeNegativeSeasons(t *testing.T) {
	teams := InitializeLeague(NewSource(35), 2)
	userID := teams[0].ID
	teams[0].Budget = -5
	teams[0].ConsecutiveNegativeSeasons = domain.GameOverThreshold - 1

	rollover := StartNewSeason(NewSource(36), teams, 3, userID)
	if !rollover.GameOver {
		t.Fatal("expected game over on third consecutive negative season")
	}
}

func TestAutoFixLineupTopsUpFromBench(t *testing.T) {
	team, _ := twoTeams(t, 37)
	team.Lineup = team.Lineup[:5] // simulate a broken lineup

	fixed := AutoFixLineup(team)
	if len(fixed.Lineup) != domain.LineupSize {
		t.Fatalf("lineup size %d after fix, want %d", len(fixed.Lineup), domain.LineupSize)
	}
	seen := make(map[string]bool)
	for _, id := range fixed.Lineup {
		if seen[id] {
			t.Fatalf("duplicate player %s in fixed lineup", id)
		}
		seen[id] = true
		if fixed.PlayerByID(id) == nil {
			t.Fatalf("lineup references unknown player %s", id)
		}
	}
}
