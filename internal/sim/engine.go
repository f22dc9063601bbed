package sim

import (
	"fmt"
	"math"
	"sort"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"clubsim/internal/domain"
)

// AutoFixLineup coerces the starting lineup to exactly eleven valid player
// ids, topping up from the bench sorted by rating. Structural repair instead
// of rejection: an incomplete lineup is never an error.
func AutoFixLineup(team domain.Team) domain.Team {
	valid := make([]string, 0, domain.LineupSize)
	for _, id := range team.Lineup {
		if team.PlayerByID(id) != nil && len(valid) < domain.LineupSize {
			valid = append(valid, id)
		}
	}

	needed := domain.LineupSize - len(valid)
	if needed > 0 {
		inLineup := make(map[string]bool, len(valid))
		for _, id := range valid {
			inLineup[id] = true
		}
		bench := make([]domain.Player, 0, len(team.Players))
		for _, p := range team.Players {
			if !inLineup[p.ID] {
				bench = append(bench, p)
			}
		}
		sort.SliceStable(bench, func(i, j int) bool { return bench[i].Rating > bench[j].Rating })
		for i := 0; i < needed && i < len(bench); i++ {
			valid = append(valid, bench[i].ID)
		}
	}

	team.Lineup = valid
	return team
}

func lineupPlayers(team domain.Team) []domain.Player {
	players := make([]domain.Player, 0, domain.LineupSize)
	for _, id := range team.Lineup {
		if p := team.PlayerByID(id); p != nil {
			players = append(players, *p)
		}
	}
	return players
}

func teamAttack(team domain.Team) float64 {
	lineup := lineupPlayers(team)
	if len(lineup) == 0 {
		return 50
	}
	var sum float64
	for _, p := range lineup {
		sum += float64(p.Rating)
	}
	score := sum / float64(len(lineup))
	if team.TacticStyle == domain.TacticAttacking {
		score += 5
	}
	return score
}

func teamDefense(team domain.Team) float64 {
	lineup := lineupPlayers(team)
	if len(lineup) == 0 {
		return 50
	}
	var sum float64
	for _, p := range lineup {
		sum += float64(p.Rating)
	}
	score := sum / float64(len(lineup))
	if team.TacticStyle == domain.TacticDefensive {
		score += 5
	}
	return score
}

// RecordUpdate carries a team's new cumulative league record after a result.
type RecordUpdate struct {
	GoalsFor     int
	GoalsAgainst int
	Wins         int
	Draws        int
	Losses       int
	Points       int
	Form         []string
}

// BuildRecordUpdate folds one result into a team's running record; the form
// array keeps only the last five letters.
func BuildRecordUpdate(team domain.Team, myScore, oppScore int) RecordUpdate {
	upd := RecordUpdate{
		GoalsFor:     team.GoalsFor + myScore,
		GoalsAgainst: team.GoalsAgainst + oppScore,
		Wins:         team.Wins,
		Draws:        team.Draws,
		Losses:       team.Losses,
		Points:       team.Points,
	}

	var letter string
	switch {
	case myScore > oppScore:
		upd.Wins++
		upd.Points += 3
		letter = domain.FormWin
	case myScore == oppScore:
		upd.Draws++
		upd.Points++
		letter = domain.FormDraw
	default:
		upd.Losses++
		letter = domain.FormLoss
	}

	form := append(append([]string{}, team.Form...), letter)
	if len(form) > 5 {
		form = form[len(form)-5:]
	}
	upd.Form = form
	return upd
}

// ApplyRecordUpdate writes the new record onto a team copy.
func ApplyRecordUpdate(team domain.Team, upd RecordUpdate) domain.Team {
	team.GoalsFor = upd.GoalsFor
	team.GoalsAgainst = upd.GoalsAgainst
	team.Wins = upd.Wins
	team.Draws = upd.Draws
	team.Losses = upd.Losses
	team.Points = upd.Points
	team.Form = upd.Form
	return team
}

// SimulationOutcome is the instant-resolution result for one fixture.
type SimulationOutcome struct {
	Match       domain.Match
	HomeUpdates RecordUpdate
	AwayUpdates RecordUpdate
}

// SimulateMatch resolves a fixture without a timeline: each side's score is
// a noisy linear function of the attack/defense differential, floored at 0.
// Used for bulk week advancement when the user is not watching.
func SimulateMatch(src *Source, match domain.Match, home, away domain.Team) SimulationOutcome {
	home = AutoFixLineup(home)
	away = AutoFixLineup(away)

	homeAtt := teamAttack(home)
	homeDef := teamDefense(home)
	awayAtt := teamAttack(away)
	awayDef := teamDefense(away)

	homeScore := int(math.Max(0, (homeAtt-awayDef+float64(src.Between(0, 20)))/15))
	awayScore := int(math.Max(0, (awayAtt-homeDef+float64(src.Between(0, 20)))/15))

	match.HomeScore = &homeScore
	match.AwayScore = &awayScore
	match.Played = true

	return SimulationOutcome{
		Match:       match,
		HomeUpdates: BuildRecordUpdate(home, homeScore, awayScore),
		AwayUpdates: BuildRecordUpdate(away, awayScore, homeScore),
	}
}

// MatchContext describes the fixture a team just played, if any.
type MatchContext struct {
	IsHome bool
	Result string // W / D / L
}

type IncomeBreakdown struct {
	Total       float64 `json:"total"`
	Sponsor     float64 `json:"sponsor"`
	Stadium     float64 `json:"stadium"`
	Hospitality float64 `json:"hospitality"`
	Store       float64 `json:"store"`
	MatchBonus  float64 `json:"match_bonus"`
}

type ExpenseBreakdown struct {
	Total       float64 `json:"total"`
	Wages       float64 `json:"wages"`
	Maintenance float64 `json:"maintenance"`
	Staff       float64 `json:"staff"`
}

type FinanceMeta struct {
	Attendance  int `json:"attendance"`
	Capacity    int `json:"capacity"`
	TicketPrice int `json:"ticket_price"`
}

type FinanceReport struct {
	Income    IncomeBreakdown  `json:"income"`
	Expenses  ExpenseBreakdown `json:"expenses"`
	NetProfit float64          `json:"net_profit"`
	Meta      FinanceMeta      `json:"meta"`
}

// CalculateWeeklyFinances computes one week's income/expense breakdown.
// With a nil context it is a forward projection that assumes a home fixture
// (stadium and hospitality income included, match bonus excluded). Wages are
// stored in thousands while the budget runs in millions, hence the /1000.
func CalculateWeeklyFinances(src *Source, team domain.Team, ctx *MatchContext) FinanceReport {
	var sponsorIncome float64
	if team.Sponsor != nil {
		sponsorIncome = team.Sponsor.WeeklyIncome
	}

	ticketPrice := 15 + (team.Facilities.Stadium.SeatsLevel+team.Facilities.Stadium.ToiletsLevel+team.Facilities.Stadium.ParkingLevel)*2

	var ratingSum float64
	for _, p := range team.Players {
		ratingSum += float64(p.Rating)
	}
	fanBase := float64(team.Wins)*500 + ratingSum/2
	capacity := team.Facilities.Stadium.SeatsLevel * 10000
	attendance := min(capacity, int(5000+fanBase)+src.Between(-1000, 1000))

	var stadiumIncome, hospitalityIncome float64
	if ctx == nil || ctx.IsHome {
		stadiumIncome = float64(attendance*ticketPrice) / 1e6
		hospitalityIncome = float64(team.Facilities.Hospitality.RestaurantLevel)*0.1 +
			float64(team.Facilities.Hospitality.FoodTrucksLevel)*0.05
	}

	storeIncome := float64(team.Facilities.Store.ShirtSalesLevel)*0.05 +
		float64(team.Facilities.Store.SouvenirsLevel)*0.02

	var matchBonus float64
	if ctx != nil {
		switch ctx.Result {
		case domain.FormWin:
			matchBonus = 0.35
		case domain.FormDraw:
			matchBonus = 0.10
		}
	}

	totalIncome := sponsorIncome + stadiumIncome + hospitalityIncome + storeIncome + matchBonus

	var wageSum float64
	for _, p := range team.Players {
		wageSum += p.Wage
	}
	wages := wageSum / 1000

	maintenance := float64(team.Facilities.Stadium.PitchLevel)*0.05 +
		float64(team.Facilities.Stadium.LightingLevel)*0.02 +
		float64(team.Facilities.AcademyLevel)*0.1 +
		float64(team.Facilities.ScoutingNetworkLevel)*0.05

	const staff = 0.2
	totalExpenses := wages + maintenance + staff

	return FinanceReport{
		Income:    IncomeBreakdown{Total: totalIncome, Sponsor: sponsorIncome, Stadium: stadiumIncome, Hospitality: hospitalityIncome, Store: storeIncome, MatchBonus: matchBonus},
		Expenses:  ExpenseBreakdown{Total: totalExpenses, Wages: wages, Maintenance: maintenance, Staff: staff},
		NetProfit: totalIncome - totalExpenses,
		Meta:      FinanceMeta{Attendance: attendance, Capacity: capacity, TicketPrice: ticketPrice},
	}
}

// ProcessWeeklyUpdates ticks injuries down and rolls incremental growth:
// players under 24 still short of their potential gain a point 10% of weeks.
// Growth is clamped at potential so a player can never grow past his ceiling.
func ProcessWeeklyUpdates(src *Source, team domain.Team) domain.Team {
	players := make([]domain.Player, len(team.Players))
	copy(players, team.Players)

	for i := range players {
		players[i].InjuryWeeks = max(0, players[i].InjuryWeeks-1)
		if players[i].Age < 24 && players[i].Potential > players[i].Rating && src.Chance(0.1) {
			players[i].Rating = min(players[i].Rating+1, players[i].Potential)
		}
	}

	team.Players = players
	return team
}

// SeasonRollover is the outcome of closing out a season.
type SeasonRollover struct {
	UpdatedTeams   []domain.Team
	History        domain.SeasonHistory
	GameOver       bool
	RetiredPlayers []domain.Player
}

type rankedPlayer struct {
	domain.Player
	teamID   string
	teamName string
}

// StartNewSeason closes the season: crowns the champion, hands out awards,
// pays sponsor objective bonuses, runs the retirement and aging pass, and
// zeroes every seasonal counter. The user's club additionally tracks
// consecutive negative-budget seasons; three in a row ends the campaign.
func StartNewSeason(src *Source, teams []domain.Team, seasonNumber int, userTeamID string) SeasonRollover {
	ranked := make([]domain.Team, len(teams))
	copy(ranked, teams)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		if ranked[i].GoalDifference() != ranked[j].GoalDifference() {
			return ranked[i].GoalDifference() > ranked[j].GoalDifference()
		}
		return ranked[i].GoalsFor > ranked[j].GoalsFor
	})

	var all []rankedPlayer
	for _, t := range teams {
		for _, p := range t.Players {
			all = append(all, rankedPlayer{Player: p, teamID: t.ID, teamName: t.Name})
		}
	}

	topScorers := topN(all, 3, func(a, b rankedPlayer) bool { return a.Goals > b.Goals })
	topAssisters := topN(all, 3, func(a, b rankedPlayer) bool { return a.Assists > b.Assists })

	var rated []rankedPlayer
	for _, p := range all {
		if p.MatchesPlayed > 5 {
			rated = append(rated, p)
		}
	}
	bestPlayers := topN(rated, 3, func(a, b rankedPlayer) bool { return a.AverageRating > b.AverageRating })

	history := domain.SeasonHistory{
		SeasonNumber: seasonNumber,
		ChampionName: ranked[0].Name,
	}
	if len(ranked) > 1 {
		history.RunnerUpName = ranked[1].Name
	}
	if len(topScorers) > 0 {
		history.TopScorer = topScorers[0].Name
		history.TopScorerGoals = topScorers[0].Goals
		history.TopScorerTeam = topScorers[0].teamName
	}
	if len(topAssisters) > 0 {
		history.TopAssister = topAssisters[0].Name
		history.TopAssists = topAssisters[0].Assists
		history.TopAssisterTeam = topAssisters[0].teamName
	}
	if len(bestPlayers) > 0 {
		history.BestPlayer = bestPlayers[0].Name
		history.BestRating = bestPlayers[0].AverageRating
		history.BestPlayerTeam = bestPlayers[0].teamName
	}

	// Awards are attached permanently to the underlying player objects.
	awards := map[string][]domain.PlayerAward{}
	collect := func(list []rankedPlayer, category, titleBase string) {
		tiers := []string{domain.AwardGold, domain.AwardSilver, domain.AwardBronze}
		for i, p := range list {
			if i >= len(tiers) {
				break
			}
			awards[p.ID] = append(awards[p.ID], domain.PlayerAward{
				ID:       gonanoid.Must(10),
				Season:   seasonNumber,
				Type:     tiers[i],
				Category: category,
				Title:    fmt.Sprintf("%s (%s)", titleBase, tiers[i]),
			})
		}
	}
	collect(topScorers, domain.AwardCategoryScorer, "Top Scorer")
	collect(topAssisters, domain.AwardCategoryAssist, "Top Playmaker")
	collect(bestPlayers, domain.AwardCategoryRating, "Player of the Season")

	// Sponsor objective bonuses by final position.
	bonuses := map[string]float64{}
	for i, t := range ranked {
		if t.Sponsor == nil {
			continue
		}
		position := i + 1
		achieved := false
		switch t.Sponsor.Objective {
		case domain.ObjectiveWinLeague:
			achieved = position == 1
		case domain.ObjectiveTop4:
			achieved = position <= 4
		case domain.ObjectiveTop8:
			achieved = position <= 8
		case domain.ObjectiveAvoidRelegation:
			achieved = position <= 13
		}
		if achieved {
			bonuses[t.ID] = t.Sponsor.EndSeasonBonus
		}
	}

	var retired []domain.Player
	gameOver := false

	updated := make([]domain.Team, 0, len(teams))
	for _, t := range teams {
		consecutiveNegative := t.ConsecutiveNegativeSeasons
		if userTeamID != "" && t.ID == userTeamID {
			if t.Budget < 0 {
				consecutiveNegative++
			} else {
				consecutiveNegative = 0
			}
			if consecutiveNegative >= domain.GameOverThreshold {
				gameOver = true
			}
		}

		var surviving []domain.Player
		for _, p := range t.Players {
			if src.Chance(retirementChance(p.Age + 1)) {
				if userTeamID != "" && t.ID == userTeamID {
					retired = append(retired, p)
				}
				continue
			}
			surviving = append(surviving, p)
		}

		for i := range surviving {
			surviving[i].Age++
			surviving[i].MatchesPlayed = 0
			surviving[i].Goals = 0
			surviving[i].Assists = 0
			surviving[i].YellowCards = 0
			surviving[i].RedCards = 0
			surviving[i].AverageRating = 0
			surviving[i].Awards = append(surviving[i].Awards, awards[surviving[i].ID]...)
		}

		var youth []domain.Player
		for _, p := range t.YouthPlayers {
			p.Age++
			if p.Age <= domain.MaxYouthAge {
				youth = append(youth, p)
			}
		}

		t.Wins = 0
		t.Draws = 0
		t.Losses = 0
		t.GoalsFor = 0
		t.GoalsAgainst = 0
		t.Points = 0
		t.Form = []string{}
		t.Budget += bonuses[t.ID]
		t.ConsecutiveNegativeSeasons = consecutiveNegative
		t.Players = surviving
		t.YouthPlayers = youth
		updated = append(updated, t)
	}

	return SeasonRollover{UpdatedTeams: updated, History: history, GameOver: gameOver, RetiredPlayers: retired}
}

// retirementChance climbs sharply once a player passes 33.
func retirementChance(age int) float64 {
	switch {
	case age <= 33:
		return 0
	case age <= 35:
		return 0.05
	case age == 36:
		return 0.30
	case age <= 38:
		return 0.70
	case age == 39:
		return 0.90
	default:
		return 1.00
	}
}

func topN(players []rankedPlayer, n int, less func(a, b rankedPlayer) bool) []rankedPlayer {
	sorted := make([]rankedPlayer, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
