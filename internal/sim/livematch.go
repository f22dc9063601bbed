package sim

import (
	"fmt"
	"math"
	"sort"

	"clubsim/internal/domain"
)

// teamStrength is the resolved matchday shape of one side.
type teamStrength struct {
	avgRating float64
	attack    float64
	defense   float64
	players   []domain.Player // starting eleven, lineup order
}

// resolveLineup returns the starting eleven, falling back to the top eleven
// by rating when the stored lineup is stale or incomplete.
func resolveLineup(team domain.Team) []domain.Player {
	var players []domain.Player
	if len(team.Lineup) == domain.LineupSize {
		for _, id := range team.Lineup {
			if p := team.PlayerByID(id); p != nil {
				players = append(players, *p)
			}
		}
	}
	if len(players) != domain.LineupSize {
		players = make([]domain.Player, len(team.Players))
		copy(players, team.Players)
		sort.SliceStable(players, func(i, j int) bool { return players[i].Rating > players[j].Rating })
		if len(players) > domain.LineupSize {
			players = players[:domain.LineupSize]
		}
	}
	return players
}

func calculateStrength(team domain.Team) teamStrength {
	lineup := resolveLineup(team)
	var sum float64
	for _, p := range lineup {
		sum += float64(p.Rating)
	}
	var avg float64
	if len(lineup) > 0 {
		avg = sum / float64(len(lineup))
	}

	// Event picks index fixed positional ranges, so a squad that has shrunk
	// below eleven repeats players to fill the remaining slots.
	if n := len(lineup); n > 0 && n < domain.LineupSize {
		for i := 0; len(lineup) < domain.LineupSize; i++ {
			lineup = append(lineup, lineup[i%n])
		}
	}

	var attackBonus, defenseBonus float64
	switch team.TacticStyle {
	case domain.TacticAttacking:
		attackBonus += 5
	case domain.TacticHighPress:
		attackBonus += 3
	case domain.TacticDefensive:
		defenseBonus += 5
	case domain.TacticPossession:
		attackBonus += 2
	case domain.TacticCounter:
		attackBonus += 4
	}
	if team.AttackFocus == domain.FocusWings {
		attackBonus += 2
	}
	if team.PassingStyle == domain.PassingShort {
		defenseBonus += 2 // control
	}
	if team.PassingStyle == domain.PassingLong {
		attackBonus += 3 // direct
	}

	return teamStrength{
		avgRating: avg,
		attack:    avg + attackBonus,
		defense:   avg + defenseBonus,
		players:   lineup,
	}
}

// setPieceTaker returns the first designated taker for the category who is
// currently in the lineup, else nil (the event stays unattributed).
func setPieceTaker(team domain.Team, takers []string) *domain.Player {
	for _, id := range takers {
		if team.InLineup(id) {
			return team.PlayerByID(id)
		}
	}
	return nil
}

// TimelineParams drives one (re)generation of a live match timeline.
// StartMinute/initial scores support mid-match re-entry after a tactics
// change: the caller keeps the already-played prefix and concatenates the
// fresh continuation.
type TimelineParams struct {
	Home             domain.Team
	Away             domain.Team
	StartMinute      int
	InitialHomeScore int
	InitialAwayScore int
	Seed             int64
}

// MatchSimulationResult is everything the live match view needs.
type MatchSimulationResult struct {
	Timeline       []domain.MatchEvent   `json:"timeline"`
	FinalHomeScore int                   `json:"final_home_score"`
	FinalAwayScore int                   `json:"final_away_score"`
	Stats          domain.LiveMatchStats `json:"stats"`
	Scorers        []domain.Goalscorer   `json:"scorers"`
	Seed           int64                 `json:"seed"`
}

// GenerateMatchTimeline simulates minute StartMinute+1 through 90 and
// returns the event timeline with running statistics. Each minute draws from
// a sub-generator keyed on (seed, minute), so resuming from minute M with
// the same seed and unchanged team state reproduces exactly the continuation
// an uninterrupted run would have produced. Past events are never recomputed.
func GenerateMatchTimeline(p TimelineParams) MatchSimulationResult {
	home := calculateStrength(p.Home)
	away := calculateStrength(p.Away)

	homeScore := p.InitialHomeScore
	awayScore := p.InitialAwayScore
	var stats domain.LiveMatchStats
	var scorers []domain.Goalscorer
	var timeline []domain.MatchEvent

	// Possession split from the rating ratio, clamped to [20,80] before and
	// after the tactical adjustments.
	posSrc := minuteSource(p.Seed, -1)
	total := home.avgRating + away.avgRating
	possession := int(math.Round(home.avgRating/total*100 + (posSrc.Float()*10 - 5)))
	possession = clamp(possession, 20, 80)
	if p.Home.TacticStyle == domain.TacticPossession {
		possession += 5
	}
	if p.Away.TacticStyle == domain.TacticPossession {
		possession -= 5
	}
	if p.Home.PassingStyle == domain.PassingShort {
		possession += 3
	}
	possession = clamp(possession, 20, 80)
	stats.HomePossession = possession
	stats.AwayPossession = 100 - possession

	if p.StartMinute == 0 {
		timeline = append(timeline, domain.MatchEvent{
			Minute: 0, Type: domain.EventKickoff,
			Text:   "Kick-off! The referee blows the whistle.",
			TeamID: p.Home.ID,
		})
	} else {
		timeline = append(timeline, domain.MatchEvent{
			Minute: p.StartMinute, Type: domain.EventNormal,
			Text: "Play resumes after the tactical changes.",
		})
	}

	goal := func(minute int, player domain.Player, teamID, text string) {
		if teamID == p.Home.ID {
			homeScore++
			stats.HomeOnTarget++
		} else {
			awayScore++
			stats.AwayOnTarget++
		}
		timeline = append(timeline, domain.MatchEvent{Minute: minute, Type: domain.EventGoal, Text: text, TeamID: teamID, PlayerID: player.ID})
		scorers = append(scorers, domain.Goalscorer{PlayerID: player.ID, PlayerName: player.Name, TeamID: teamID, Minute: minute})
	}

	for minute := p.StartMinute + 1; minute <= domain.MatchMinutes; minute++ {
		src := minuteSource(p.Seed, minute)

		// 8% of minutes carry a significant event; the rest keep the
		// timeline sparse.
		if src.Float() > 0.08 {
			if minute == domain.HalfTimeMinute {
				timeline = append(timeline, domain.MatchEvent{Minute: minute, Type: domain.EventHalfTime, Text: "Half Time."})
			}
			continue
		}

		isHomeEvent := src.Float() < float64(possession)/100
		attacking, defending := p.Away, p.Home
		attackerStats, defenderStats := away, home
		if isHomeEvent {
			attacking, defending = p.Home, p.Away
			attackerStats, defenderStats = home, away
		}

		eventRoll := src.Float()
		switch {
		case eventRoll < 0.25:
			texts := []string{
				fmt.Sprintf("%s are building an attack.", attacking.Name),
				fmt.Sprintf("Patient passing in the midfield from %s.", attacking.Name),
				fmt.Sprintf("%s are closing down the spaces well.", defending.Name),
				fmt.Sprintf("Throw-in for %s.", attacking.Name),
				fmt.Sprintf("The ball is with %s's defense.", attacking.Name),
			}
			timeline = append(timeline, domain.MatchEvent{Minute: minute, Type: domain.EventNormal, Text: Pick(src, texts), TeamID: attacking.ID})

		case eventRoll < 0.55:
			// Chance for a midfielder or attacker.
			player := attackerStats.players[src.Intn(6)+5]

			shotQuality := float64(player.Attributes.Finishing+player.Attributes.ShotPower) / 2
			defenseQuality := defenderStats.avgRating

			goalChance := shotQuality / (shotQuality + defenseQuality) * 0.4
			if attacking.TacticStyle == domain.TacticAttacking {
				goalChance *= 1.2
			}
			if defending.TacticStyle == domain.TacticDefensive {
				goalChance *= 0.8
			}

			if isHomeEvent {
				stats.HomeShots++
			} else {
				stats.AwayShots++
			}

			if src.Chance(goalChance) {
				texts := []string{
					fmt.Sprintf("GOOOOAL! %s scores a fantastic goal!", player.Name),
					fmt.Sprintf("Goal! %s puts the ball in the back of the net!", player.Name),
					fmt.Sprintf("What a finish! %s finds the net.", player.Name),
				}
				goal(minute, player, attacking.ID, Pick(src, texts))
			} else if src.Chance(0.5) {
				if isHomeEvent {
					stats.HomeOnTarget++
				} else {
					stats.AwayOnTarget++
				}
				timeline = append(timeline, domain.MatchEvent{
					Minute: minute, Type: domain.EventSave,
					Text:   fmt.Sprintf("A powerful shot from %s but the keeper makes the save!", player.Name),
					TeamID: attacking.ID,
				})
			} else {
				timeline = append(timeline, domain.MatchEvent{
					Minute: minute, Type: domain.EventMiss,
					Text:   fmt.Sprintf("%s shoots but the ball goes just wide of the post.", player.Name),
					TeamID: attacking.ID,
				})
			}

		case eventRoll < 0.65:
			if isHomeEvent {
				stats.HomeCorners++
			} else {
				stats.AwayCorners++
			}
			takers := attacking.SetPieceTakers.LeftCorner
			if src.Chance(0.5) {
				takers = attacking.SetPieceTakers.RightCorner
			}
			takerName := "A player"
			if taker := setPieceTaker(attacking, takers); taker != nil {
				takerName = taker.Name
			}
			timeline = append(timeline, domain.MatchEvent{
				Minute: minute, Type: domain.EventNormal,
				Text:   fmt.Sprintf("Corner kick for %s, taken by %s.", attacking.Name, takerName),
				TeamID: attacking.ID,
			})

		case eventRoll < 0.70:
			defPlayer := defenderStats.players[src.Intn(5)]
			cardChance := 0.2
			if defending.TacticStyle == domain.TacticHighPress {
				cardChance = 0.35
			}

			if src.Chance(cardChance) {
				timeline = append(timeline, domain.MatchEvent{
					Minute: minute, Type: domain.EventYellowCard,
					Text:   fmt.Sprintf("Yellow card for %s after a hard tackle.", defPlayer.Name),
					TeamID: defending.ID, PlayerID: defPlayer.ID,
				})
			} else if taker := setPieceTaker(attacking, attacking.SetPieceTakers.FreeKick); taker != nil && src.Chance(0.1) {
				goal(minute, *taker, attacking.ID, fmt.Sprintf("Unbelievable! %s scores from a direct free kick!", taker.Name))
			} else {
				timeline = append(timeline, domain.MatchEvent{
					Minute: minute, Type: domain.EventNormal,
					Text:   fmt.Sprintf("Foul for %s in the midfield.", attacking.Name),
					TeamID: attacking.ID,
				})
			}

		case eventRoll < 0.72:
			player := defenderStats.players[src.Intn(domain.LineupSize)]
			timeline = append(timeline, domain.MatchEvent{
				Minute: minute, Type: domain.EventInjury,
				Text:   fmt.Sprintf("Injury for %s! He seems to be in pain but signals to the coach that he wants to continue.", player.Name),
				TeamID: defending.ID, PlayerID: player.ID,
			})
		}

		if minute == domain.HalfTimeMinute {
			timeline = append(timeline, domain.MatchEvent{Minute: minute, Type: domain.EventHalfTime, Text: "Half Time."})
		}
	}

	timeline = append(timeline, domain.MatchEvent{Minute: domain.MatchMinutes, Type: domain.EventFullTime, Text: "Full Time!"})

	return MatchSimulationResult{
		Timeline:       timeline,
		FinalHomeScore: homeScore,
		FinalAwayScore: awayScore,
		Stats:          stats,
		Scorers:        scorers,
		Seed:           p.Seed,
	}
}
