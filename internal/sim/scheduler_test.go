package sim

import (
	"testing"

	"clubsim/internal/domain"
)

func leagueForTest(t *testing.T, seed int64, count int) []domain.Team {
	t.Helper()
	return InitializeLeague(NewSource(seed), count)
}

func TestGenerateFixturesDoubleRoundRobin(t *testing.T) {
	teams := leagueForTest(t, 7, 8)
	fixtures := GenerateFixtures(NewSource(7), teams)

	n := len(teams)
	wantMatches := n * (n - 1)
	if len(fixtures) != wantMatches {
		t.Fatalf("expected %d fixtures, got %d", wantMatches, len(fixtures))
	}

	wantWeeks := 2 * (n - 1)
	for _, m := range fixtures {
		if m.Week < 1 || m.Week > wantWeeks {
			t.Fatalf("fixture %s scheduled in week %d, want 1..%d", m.ID, m.Week, wantWeeks)
		}
		if m.Played {
			t.Fatalf("fixture %s created already played", m.ID)
		}
	}

	// Each team appears exactly once per week.
	perWeek := make(map[int]map[string]int)
	for _, m := range fixtures {
		if perWeek[m.Week] == nil {
			perWeek[m.Week] = make(map[string]int)
		}
		perWeek[m.Week][m.HomeTeamID]++
		perWeek[m.Week][m.AwayTeamID]++
	}
	for week, counts := range perWeek {
		for id, c := range counts {
			if c != 1 {
				t.Fatalf("team %s appears %d times in week %d", id, c, week)
			}
		}
	}

	// Each ordered pairing occurs exactly once, so every pair meets home
	// and away.
	pairs := make(map[[2]string]int)
	for _, m := range fixtures {
		pairs[[2]string{m.HomeTeamID, m.AwayTeamID}]++
	}
	for pair, c := range pairs {
		if c != 1 {
			t.Fatalf("pairing %v scheduled %d times", pair, c)
		}
		reversed := [2]string{pair[1], pair[0]}
		if pairs[reversed] != 1 {
			t.Fatalf("pairing %v has no return fixture", pair)
		}
	}
}

func TestGenerateFixturesOddTeamCountUsesBye(t *testing.T) {
	teams := leagueForTest(t, 11, 7)
	fixtures := GenerateFixtures(NewSource(11), teams)

	// With a bye slot, 7 clubs still meet each other twice.
	want := 7 * 6
	if len(fixtures) != want {
		t.Fatalf("expected %d fixtures, got %d", want, len(fixtures))
	}

	perWeek := make(map[int]map[string]bool)
	for _, m := range fixtures {
		if perWeek[m.Week] == nil {
			perWeek[m.Week] = make(map[string]bool)
		}
		if perWeek[m.Week][m.HomeTeamID] || perWeek[m.Week][m.AwayTeamID] {
			t.Fatalf("a team plays twice in week %d", m.Week)
		}
		perWeek[m.Week][m.HomeTeamID] = true
		perWeek[m.Week][m.AwayTeamID] = true
	}
}

func TestGenerateFixturesDeterministicForSeed(t *testing.T) {
	teams := leagueForTest(t, 3, 6)
	a := GenerateFixtures(NewSource(99), teams)
	b := GenerateFixtures(NewSource(99), teams)
	if len(a) != len(b) {
		t.Fatalf("fixture counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Week != b[i].Week || a[i].Weather != b[i].Weather {
			t.Fatalf("fixture %d differs between identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestRollWeatherProducesKnownConditions(t *testing.T) {
	src := NewSource(5)
	valid := map[string]bool{
		domain.WeatherSunny: true,
		domain.WeatherHeat:  true,
		domain.WeatherRain:  true,
		domain.WeatherSnow:  true,
	}
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		w := RollWeather(src)
		if !valid[w] {
			t.Fatalf("unknown weather %q", w)
		}
		seen[w] = true
	}
	if !seen[domain.WeatherSunny] {
		t.Fatal("sunny weather never rolled in 1000 samples")
	}
}
