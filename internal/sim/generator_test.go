package sim

import (
	"fmt"
	"testing"

	"clubsim/internal/domain"
)

func TestGeneratePlayerBounds(t *testing.T) {
	src := NewSource(1)
	positions := []string{domain.PosGK, domain.PosCB, domain.PosCM, domain.PosLW, domain.PosST}

	for i := 0; i < 500; i++ {
		pos := positions[i%len(positions)]
		p := GeneratePlayer(src, pos, src.Between(18, 34), src.Between(45, 80), 1, false, "")

		if p.Rating < 1 || p.Rating > 99 {
			t.Fatalf("rating %d out of range for %s", p.Rating, p.Name)
		}
		if p.Potential < p.Rating {
			t.Fatalf("potential %d below rating %d at creation", p.Potential, p.Rating)
		}
		if p.Potential > 99 {
			t.Fatalf("potential %d above cap", p.Potential)
		}
		if p.Wage <= 0 {
			t.Fatalf("non-positive wage %.2f", p.Wage)
		}
		if p.Value <= 0 {
			t.Fatalf("non-positive value %.2f", p.Value)
		}
		if p.Position != pos {
			t.Fatalf("position %q, want %q", p.Position, pos)
		}
		if p.ID == "" || p.Name == "" || p.Nationality == "" {
			t.Fatalf("player generated with missing identity: %+v", p)
		}
	}
}

func TestGeneratePlayerYouthSpawnAge(t *testing.T) {
	src := NewSource(2)
	for i := 0; i < 200; i++ {
		p := GeneratePlayer(src, domain.PosCM, 25, 50, 5, true, "")
		if p.Age < 14 || p.Age > 17 {
			t.Fatalf("youth spawn aged %d, want 14..17", p.Age)
		}
	}
}

func TestEliteWageFloor(t *testing.T) {
	if w := calculateWage(85, 27, 85, domain.PosCM); w < 100 {
		t.Fatalf("rating 85 wage %.1f, want at least 100", w)
	}
	if w := calculateWage(60, 27, 60, domain.PosCM); w < 0.5 {
		t.Fatalf("wage %.1f below global floor", w)
	}
}

func TestGenerateTeamSquadShape(t *testing.T) {
	src := NewSource(3)
	team := GenerateTeam(src, "Test United", "#ff0000", true)

	if len(team.Players) != 15 {
		t.Fatalf("expected 15 players, got %d", len(team.Players))
	}
	if len(team.Lineup) != domain.LineupSize {
		t.Fatalf("expected %d lineup slots, got %d", domain.LineupSize, len(team.Lineup))
	}
	if team.Budget != domain.StartingBudget {
		t.Fatalf("budget %.1f, want %.1f", team.Budget, domain.StartingBudget)
	}
	if team.ManagerName != "You" {
		t.Fatalf("user team manager %q", team.ManagerName)
	}
	if team.LogoCode != "TE" {
		t.Fatalf("logo code %q, want the uppercased name prefix TE", team.LogoCode)
	}

	// Lineup holds the strongest eleven.
	worstStarter := 100
	for _, id := range team.Lineup {
		p := team.PlayerByID(id)
		if p == nil {
			t.Fatalf("lineup references unknown player %s", id)
		}
		if p.Rating < worstStarter {
			worstStarter = p.Rating
		}
	}
	for _, p := range team.Players {
		if team.InLineup(p.ID) {
			continue
		}
		if p.Rating > worstStarter {
			t.Fatalf("bench player %s (%d) outrates starter floor %d", p.Name, p.Rating, worstStarter)
		}
	}
}

func TestInitializeLeagueFirstTeamIsUser(t *testing.T) {
	teams := InitializeLeague(NewSource(4), 8)
	if len(teams) != 8 {
		t.Fatalf("expected 8 teams, got %d", len(teams))
	}
	if teams[0].ManagerName != "You" {
		t.Fatalf("first team manager %q, want the user", teams[0].ManagerName)
	}
	for _, tm := range teams[1:] {
		if tm.ManagerName != "CPU" {
			t.Fatalf("cpu team %s has manager %q", tm.Name, tm.ManagerName)
		}
	}
	ids := make(map[string]bool)
	for _, tm := range teams {
		if ids[tm.ID] {
			t.Fatalf("duplicate team id %s", tm.ID)
		}
		ids[tm.ID] = true
	}
}

func TestGenerateAcademySpawnsScaleWithLevel(t *testing.T) {
	cases := []struct {
		level string
		lvl   int
		want  int
	}{
		{"level 1", 1, 1},
		{"level 5", 5, 2},
		{"level 8", 8, 3},
		{"level 10", 10, 5},
	}
	for _, tc := range cases {
		src := NewSource(6)
		batch := GenerateAcademySpawns(src, tc.lvl)
		if len(batch) != tc.want {
			t.Fatalf("%s: got %d spawns, want %d", tc.level, len(batch), tc.want)
		}
		for _, p := range batch {
			if p.Age > 17 {
				t.Fatalf("%s: academy spawn aged %d", tc.level, p.Age)
			}
		}
	}
}

func reportRange(t *testing.T, r domain.ScoutReport) (int, int) {
	t.Helper()
	var lo, hi int
	if _, err := fmt.Sscanf(r.PotentialRange, "%d-%d", &lo, &hi); err != nil {
		t.Fatalf("malformed potential range %q: %v", r.PotentialRange, err)
	}
	return lo, hi
}

func TestScoutReportAccuracyImprovesWithStars(t *testing.T) {
	src := NewSource(8)
	player := GeneratePlayer(src, domain.PosST, 25, 60, 5, true, "")

	width := func(stars int) int {
		total := 0
		for i := 0; i < 200; i++ {
			scout := domain.Scout{ID: "s", Name: "Scout", Stars: stars, Speciality: domain.SpecialityGeneral}
			r := GenerateScoutReport(src, player, scout)
			lo, hi := reportRange(t, r)
			if lo > player.Potential || hi < player.Potential {
				t.Fatalf("true potential %d outside report range [%d,%d]", player.Potential, lo, hi)
			}
			total += hi - lo
		}
		return total
	}

	if w1, w5 := width(1), width(5); w5 >= w1 {
		t.Fatalf("5-star reports no tighter than 1-star: %d vs %d", w5, w1)
	}
}

func TestScoutReportRecommendations(t *testing.T) {
	src := NewSource(9)
	scout := domain.Scout{ID: "s", Name: "Scout", Stars: 5, Speciality: domain.SpecialityYouth}

	star := GeneratePlayer(src, domain.PosST, 25, 60, 10, true, "")
	star.Potential = 95
	if r := GenerateScoutReport(src, star, scout); r.Recommendation != domain.RecommendSign {
		t.Fatalf("95-potential prospect recommended %s, want SIGN", r.Recommendation)
	}

	dud := GeneratePlayer(src, domain.PosCB, 25, 40, 1, true, "")
	dud.Rating = 40
	dud.Potential = 45
	if r := GenerateScoutReport(src, dud, scout); r.Recommendation != domain.RecommendPass {
		t.Fatalf("45-potential prospect recommended %s, want PASS", r.Recommendation)
	}
}
