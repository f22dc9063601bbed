package sim

import (
	"fmt"
	"sort"

	"clubsim/internal/domain"
)

const byeSlot = "bye"

// RollWeather tags a fixture with match-day conditions.
func RollWeather(src *Source) string {
	r := src.Float()
	switch {
	case r < 0.6:
		return domain.WeatherSunny
	case r < 0.8:
		return domain.WeatherHeat
	case r < 0.9:
		return domain.WeatherRain
	default:
		return domain.WeatherSnow
	}
}

// GenerateFixtures produces a double round-robin calendar using the circle
// method: the first slot is fixed while the rest rotate each round, pairing
// teams at symmetric ends of the rotation. Odd team counts get a bye slot.
// The second half mirrors home/away with weeks offset by one full round set.
func GenerateFixtures(src *Source, teams []domain.Team) []domain.Match {
	slots := make([]string, 0, len(teams)+1)
	for i := range teams {
		slots = append(slots, teams[i].ID)
	}
	if len(slots)%2 != 0 {
		slots = append(slots, byeSlot)
	}

	numTeams := len(slots)
	numRounds := numTeams - 1

	var firstHalf []domain.Match
	for round := 0; round < numRounds; round++ {
		for i := 0; i < numTeams/2; i++ {
			t1 := slots[i]
			t2 := slots[numTeams-1-i]
			if t1 == byeSlot || t2 == byeSlot {
				continue
			}
			home, away := t1, t2
			if round%2 != 0 {
				home, away = t2, t1
			}
			firstHalf = append(firstHalf, domain.Match{
				ID:         fmt.Sprintf("match-%d-%s-%s", round+1, home, away),
				Week:       round + 1,
				HomeTeamID: home,
				AwayTeamID: away,
				Weather:    RollWeather(src),
			})
		}
		// rotate: last slot moves to position 1, slot 0 stays fixed
		last := slots[numTeams-1]
		copy(slots[2:], slots[1:numTeams-1])
		slots[1] = last
	}

	matches := make([]domain.Match, 0, len(firstHalf)*2)
	matches = append(matches, firstHalf...)
	for _, m := range firstHalf {
		matches = append(matches, domain.Match{
			ID:         m.ID + "-rev",
			Week:       m.Week + numRounds,
			HomeTeamID: m.AwayTeamID,
			AwayTeamID: m.HomeTeamID,
			Weather:    RollWeather(src),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Week < matches[j].Week })
	return matches
}
