package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"clubsim/internal/domain"
	"clubsim/internal/sim"
)

// Toast levels surfaced to the client.
const (
	ToastSuccess = "success"
	ToastError   = "error"
	ToastInfo    = "info"
	ToastWarning = "warning"
)

var (
	ErrNoCampaign       = errors.New("no campaign in progress")
	ErrGameOver         = errors.New("the campaign has ended")
	ErrTeamNotFound     = errors.New("team not found")
	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchPlayed      = errors.New("match already played")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrScoutNotFound    = errors.New("scout not found")
	ErrSponsorNotFound  = errors.New("sponsor not found")
	ErrNoActiveScenario = errors.New("no active scenario")
	ErrNoLiveSession    = errors.New("no live session for this match")
	ErrMatchNotDue      = errors.New("match is not scheduled for the upcoming week")
)

// Notifier receives dashboard toasts. Implementations must not block.
type Notifier interface {
	Push(message, level string)
}

// Saver persists campaign snapshots. SaveAsync must return immediately;
// persistence failures are logged by the implementation, never surfaced to
// gameplay.
type Saver interface {
	SaveAsync(snapshot []byte)
}

// NewGameSetup carries the user's choices from the new-campaign screen.
type NewGameSetup struct {
	ManagerName string `json:"manager_name"`
	TeamName    string `json:"team_name"`
	Color       string `json:"color"`
	LeagueSize  int    `json:"league_size,omitempty"`
}

// ManualResult overrides one fixture's simulated score during week
// advancement, used when the user played that fixture live.
type ManualResult struct {
	MatchID   string
	HomeScore int
	AwayScore int
	Scorers   []domain.Goalscorer
}

// AdvanceOutcome summarizes what a single week advancement did.
type AdvanceOutcome struct {
	Week          int           `json:"week"`
	Season        int           `json:"season"`
	SeasonStarted bool          `json:"season_started"`
	GameOver      bool          `json:"game_over"`
	Scenario      *sim.Scenario `json:"scenario,omitempty"`
	RetiredNames  []string      `json:"retired_names,omitempty"`
}

// Campaign owns all mutable game state and serializes access to it. Every
// public method takes the lock; sim functions stay pure underneath.
type Campaign struct {
	mu  sync.RWMutex
	log zerolog.Logger
	rng *sim.Source

	saver    Saver
	notifier Notifier

	initialized bool
	gameOver    bool

	teams             []domain.Team
	matches           []domain.Match
	userTeamID        string
	currentWeek       int
	season            int
	history           []domain.SeasonHistory
	news              []domain.NewsItem
	availableSponsors []domain.Sponsor
	availableScouts   []domain.Scout
	campaignStart     time.Time
	godMode           bool

	activeScenario *sim.Scenario
	liveSeeds      map[string]int64                    // match id -> timeline seed
	liveResults    map[string]sim.MatchSimulationResult // match id -> latest generated timeline
	leagueSize     int
}

// New builds an empty campaign shell. Call InitializeNewGame or Restore
// before anything else.
func New(log zerolog.Logger, rng *sim.Source, leagueSize int, saver Saver, notifier Notifier) *Campaign {
	// A 16-club double round robin is exactly the 30-week season.
	if leagueSize < 2 {
		leagueSize = 16
	}
	return &Campaign{
		log:         log.With().Str("component", "campaign").Logger(),
		rng:         rng,
		saver:       saver,
		notifier:    notifier,
		leagueSize:  leagueSize,
		liveSeeds:   make(map[string]int64),
		liveResults: make(map[string]sim.MatchSimulationResult),
	}
}

func (c *Campaign) toast(message, level string) {
	if c.notifier != nil {
		c.notifier.Push(message, level)
	}
}

// persist marshals the current state and hands it to the saver. Callers must
// hold the write lock.
func (c *Campaign) persist() {
	if c.saver == nil || !c.initialized {
		return
	}
	snapshot, err := json.Marshal(c.saveStateLocked())
	if err != nil {
		c.log.Error().Err(err).Msg("failed to marshal campaign snapshot")
		return
	}
	c.saver.SaveAsync(snapshot)
}

func (c *Campaign) saveStateLocked() domain.SaveState {
	return domain.SaveState{
		CampaignStartTime: c.campaignStart.UnixMilli(),
		Teams:             c.teams,
		Matches:           c.matches,
		CurrentWeek:       c.currentWeek,
		UserTeamID:        c.userTeamID,
		AvailableSponsors: c.availableSponsors,
		AvailableScouts:   c.availableScouts,
		News:              c.news,
		Season:            c.season,
		History:           c.history,
		GodMode:           c.godMode,
	}
}

// Snapshot returns the full campaign state as JSON.
func (c *Campaign) Snapshot() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return nil, ErrNoCampaign
	}
	return json.Marshal(c.saveStateLocked())
}

// Restore rehydrates a campaign from a persisted snapshot.
func (c *Campaign) Restore(snapshot []byte) error {
	var st domain.SaveState
	if err := json.Unmarshal(snapshot, &st); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.teams = st.Teams
	c.matches = st.Matches
	c.userTeamID = st.UserTeamID
	c.currentWeek = st.CurrentWeek
	c.season = st.Season
	c.history = st.History
	c.news = st.News
	c.availableSponsors = st.AvailableSponsors
	c.availableScouts = st.AvailableScouts
	c.campaignStart = time.UnixMilli(st.CampaignStartTime)
	c.godMode = st.GodMode
	c.gameOver = false
	c.initialized = true
	c.liveSeeds = make(map[string]int64)
	c.liveResults = make(map[string]sim.MatchSimulationResult)

	c.log.Info().
		Int("season", c.season).
		Int("week", c.currentWeek).
		Int("teams", len(c.teams)).
		Msg("campaign restored from snapshot")
	return nil
}

// InitializeNewGame wipes any existing campaign and starts season 1.
func (c *Campaign) InitializeNewGame(setup NewGameSetup) error {
	if strings.TrimSpace(setup.TeamName) == "" {
		return errors.New("team name is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	size := setup.LeagueSize
	if size < 2 {
		size = c.leagueSize
	}

	teams := sim.InitializeLeague(c.rng, size)

	user := &teams[0]
	user.Name = setup.TeamName
	user.ManagerName = setup.ManagerName
	if setup.Color != "" {
		user.Color = setup.Color
	}
	user.LogoCode = strings.ToUpper(setup.TeamName)
	if len(user.LogoCode) > 2 {
		user.LogoCode = user.LogoCode[:2]
	}
	user.Budget = domain.StartingBudget

	c.teams = teams
	c.userTeamID = user.ID
	c.matches = sim.GenerateFixtures(c.rng, teams)
	c.availableSponsors = sim.GenerateSponsors()
	c.availableScouts = sim.GenerateScouts(c.rng, 5, 1)
	c.campaignStart = time.Now()
	c.currentWeek = 0
	c.season = 1
	c.history = nil
	c.news = nil
	c.godMode = false
	c.gameOver = false
	c.activeScenario = nil
	c.liveSeeds = make(map[string]int64)
	c.liveResults = make(map[string]sim.MatchSimulationResult)
	c.initialized = true

	c.log.Info().
		Str("user_team", user.Name).
		Int("league_size", size).
		Int("fixtures", len(c.matches)).
		Msg("new campaign initialized")
	c.persist()
	return nil
}

// GameOver reports whether the board has fired the manager.
func (c *Campaign) GameOver() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gameOver
}

// SetGodMode toggles the sandbox mode that waives all costs.
func (c *Campaign) SetGodMode(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.godMode = on
	c.persist()
}

func (c *Campaign) teamIndex(id string) int {
	for i := range c.teams {
		if c.teams[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Campaign) userTeamLocked() (*domain.Team, error) {
	if !c.initialized {
		return nil, ErrNoCampaign
	}
	idx := c.teamIndex(c.userTeamID)
	if idx < 0 {
		return nil, ErrTeamNotFound
	}
	return &c.teams[idx], nil
}

func (c *Campaign) pushNews(item domain.NewsItem) {
	c.news = append([]domain.NewsItem{item}, c.news...)
	if len(c.news) > 100 {
		c.news = c.news[:100]
	}
}

// AdvanceWeek plays out the next week: simulates every fixture, settles
// finances and training for all clubs, refreshes markets on their cadence
// and possibly triggers a scenario. When the season is already over it rolls
// into the next one instead.
func (c *Campaign) AdvanceWeek(manual *ManualResult) (AdvanceOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advanceWeekLocked(manual)
}

func (c *Campaign) advanceWeekLocked(manual *ManualResult) (AdvanceOutcome, error) {
	if !c.initialized {
		return AdvanceOutcome{}, ErrNoCampaign
	}
	if c.gameOver {
		return AdvanceOutcome{}, ErrGameOver
	}

	// Smaller leagues exhaust their fixture list before week 30; either way
	// the season is over.
	nextWeek := c.currentWeek + 1
	if nextWeek > domain.SeasonWeeks || !c.hasFixturesLocked(nextWeek) {
		return c.rolloverSeasonLocked()
	}

	var weekMatches []int
	for i := range c.matches {
		if c.matches[i].Week == nextWeek && !c.matches[i].Played {
			weekMatches = append(weekMatches, i)
		}
	}
	if len(weekMatches) == 0 {
		c.toast("No matches this week or the season has ended.", ToastWarning)
		return AdvanceOutcome{}, errors.New("no unplayed fixtures for week " + fmt.Sprint(nextWeek))
	}

	for _, mi := range weekMatches {
		m := c.matches[mi]
		hi := c.teamIndex(m.HomeTeamID)
		ai := c.teamIndex(m.AwayTeamID)
		if hi < 0 || ai < 0 {
			continue
		}
		out := sim.SimulateMatch(c.rng, m, c.teams[hi], c.teams[ai])

		if manual != nil && m.ID == manual.MatchID {
			hs, as := manual.HomeScore, manual.AwayScore
			out.Match.HomeScore = &hs
			out.Match.AwayScore = &as
			out.HomeUpdates = sim.BuildRecordUpdate(c.teams[hi], hs, as)
			out.AwayUpdates = sim.BuildRecordUpdate(c.teams[ai], as, hs)
			c.creditScorersLocked(hi, ai, manual.Scorers)
		}

		c.teams[hi] = sim.ApplyRecordUpdate(c.teams[hi], out.HomeUpdates)
		c.teams[ai] = sim.ApplyRecordUpdate(c.teams[ai], out.AwayUpdates)
		c.matches[mi] = out.Match
	}

	for i := range c.teams {
		t := c.teams[i]

		var ctx *sim.MatchContext
		for _, mi := range weekMatches {
			m := c.matches[mi]
			if !m.Played || (m.HomeTeamID != t.ID && m.AwayTeamID != t.ID) {
				continue
			}
			isHome := m.HomeTeamID == t.ID
			my, opp := *m.HomeScore, *m.AwayScore
			if !isHome {
				my, opp = opp, my
			}
			result := domain.FormDraw
			if my > opp {
				result = domain.FormWin
			} else if my < opp {
				result = domain.FormLoss
			}
			ctx = &sim.MatchContext{IsHome: isHome, Result: result}
			break
		}

		finances := sim.CalculateWeeklyFinances(c.rng, t, ctx)
		t.Budget += finances.NetProfit
		t.WeeklyIncome = finances.Income.Total
		t.WeeklyExpenses = finances.Expenses.Total
		t = sim.ProcessWeeklyUpdates(c.rng, t)
		t.ValueHistory = append(t.ValueHistory, t.SquadValue())
		c.teams[i] = t
	}

	if nextWeek%2 == 0 {
		c.pushNews(sim.GenerateRandomNews(c.rng, nextWeek, c.teams))
	}
	if nextWeek%4 == 0 {
		c.availableScouts = sim.GenerateScouts(c.rng, 5, 5)
		id, _ := gonanoid.New()
		c.pushNews(domain.NewsItem{
			ID:      id,
			Week:    nextWeek,
			Message: "A new batch of scouts has arrived on the market.",
			Type:    domain.NewsGeneral,
		})
	}

	c.currentWeek = nextWeek
	if manual == nil {
		c.toast(fmt.Sprintf("Matches for week %d have concluded", nextWeek), ToastInfo)
	}

	outcome := AdvanceOutcome{Week: c.currentWeek, Season: c.season}
	if c.activeScenario == nil && c.rng.Chance(0.20) {
		scenario := sim.RandomScenario(c.rng)
		c.activeScenario = &scenario
		outcome.Scenario = &scenario
	}

	c.log.Info().Int("week", nextWeek).Int("season", c.season).Msg("week advanced")
	c.persist()
	return outcome, nil
}

func (c *Campaign) hasFixturesLocked(week int) bool {
	for i := range c.matches {
		if c.matches[i].Week >= week {
			return true
		}
	}
	return false
}

func (c *Campaign) rolloverSeasonLocked() (AdvanceOutcome, error) {
	rollover := sim.StartNewSeason(c.rng, c.teams, c.season, c.userTeamID)
	if rollover.GameOver {
		c.gameOver = true
		c.log.Warn().Int("season", c.season).Msg("campaign over: three consecutive negative-budget seasons")
		c.persist()
		return AdvanceOutcome{Season: c.season, GameOver: true}, nil
	}

	outcome := AdvanceOutcome{SeasonStarted: true}
	if len(rollover.RetiredPlayers) > 0 {
		names := make([]string, len(rollover.RetiredPlayers))
		for i, p := range rollover.RetiredPlayers {
			names[i] = p.Name
		}
		outcome.RetiredNames = names
		c.toast("Retired Players: "+strings.Join(names, ", "), ToastInfo)
		id, _ := gonanoid.New()
		c.pushNews(domain.NewsItem{
			ID:      id,
			Week:    0,
			Message: "The following players have announced their retirement from professional football: " + strings.Join(names, ", "),
			Type:    domain.NewsGeneral,
		})
	}

	c.teams = rollover.UpdatedTeams
	c.history = append(c.history, rollover.History)
	c.matches = sim.GenerateFixtures(c.rng, c.teams)
	c.currentWeek = 0
	c.season++
	c.liveSeeds = make(map[string]int64)
	c.liveResults = make(map[string]sim.MatchSimulationResult)
	outcome.Week = 0
	outcome.Season = c.season

	c.toast("A new season has begun! Records have been updated and champions crowned.", ToastSuccess)
	c.log.Info().Int("season", c.season).Msg("season rolled over")
	c.persist()
	return outcome, nil
}

func (c *Campaign) creditScorersLocked(homeIdx, awayIdx int, scorers []domain.Goalscorer) {
	for _, s := range scorers {
		for _, ti := range []int{homeIdx, awayIdx} {
			if c.teams[ti].ID != s.TeamID {
				continue
			}
			if p := c.teams[ti].PlayerByID(s.PlayerID); p != nil {
				p.Goals++
				p.CareerGoals++
			}
		}
	}
	for _, ti := range []int{homeIdx, awayIdx} {
		for _, id := range c.teams[ti].Lineup {
			if p := c.teams[ti].PlayerByID(id); p != nil {
				p.MatchesPlayed++
				p.CareerMatches++
			}
		}
	}
}

// StartLiveMatch opens a minute-by-minute session for an unplayed fixture in
// the upcoming week and returns the full timeline along with the seed that
// reproduces it.
func (c *Campaign) StartLiveMatch(matchID string) (sim.MatchSimulationResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return sim.MatchSimulationResult{}, ErrNoCampaign
	}

	match, home, away, err := c.liveFixtureLocked(matchID)
	if err != nil {
		return sim.MatchSimulationResult{}, err
	}
	if match.Played {
		return sim.MatchSimulationResult{}, ErrMatchPlayed
	}
	// Completion advances exactly one week, so only fixtures from the
	// upcoming round can be watched live.
	if match.Week != c.currentWeek+1 {
		return sim.MatchSimulationResult{}, ErrMatchNotDue
	}

	seed := c.rng.Int64()
	c.liveSeeds[matchID] = seed

	result := sim.GenerateMatchTimeline(sim.TimelineParams{
		Home: home,
		Away: away,
		Seed: seed,
	})
	c.liveResults[matchID] = result
	c.log.Info().Str("match_id", matchID).Int64("seed", seed).Msg("live match started")
	return result, nil
}

// ResumeLiveMatch re-simulates an open session from the given minute with
// the current team state. Tactic or lineup changes made since the session
// started therefore shape every minute after fromMinute, while the played
// prefix stays untouched. The score at fromMinute comes from the session's
// own timeline; clients never supply it.
func (c *Campaign) ResumeLiveMatch(matchID string, fromMinute int) (sim.MatchSimulationResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return sim.MatchSimulationResult{}, ErrNoCampaign
	}

	seed, ok := c.liveSeeds[matchID]
	if !ok {
		return sim.MatchSimulationResult{}, ErrNoLiveSession
	}
	prev, ok := c.liveResults[matchID]
	if !ok {
		return sim.MatchSimulationResult{}, ErrNoLiveSession
	}
	_, home, away, err := c.liveFixtureLocked(matchID)
	if err != nil {
		return sim.MatchSimulationResult{}, err
	}
	if fromMinute < 0 || fromMinute >= domain.MatchMinutes {
		return sim.MatchSimulationResult{}, fmt.Errorf("resume minute %d out of range", fromMinute)
	}

	// Roll the stored final score back to fromMinute by discounting the
	// goals the re-simulation is about to replace.
	homeScore, awayScore := prev.FinalHomeScore, prev.FinalAwayScore
	for _, e := range prev.Timeline {
		if e.Type != domain.EventGoal || e.Minute <= fromMinute {
			continue
		}
		if e.TeamID == home.ID {
			homeScore--
		} else {
			awayScore--
		}
	}

	result := sim.GenerateMatchTimeline(sim.TimelineParams{
		Home:             home,
		Away:             away,
		StartMinute:      fromMinute,
		InitialHomeScore: homeScore,
		InitialAwayScore: awayScore,
		Seed:             seed,
	})

	// Carry the already-played prefix goals so completion credits every
	// scorer, not just those from the continuation.
	var scorers []domain.Goalscorer
	for _, s := range prev.Scorers {
		if s.Minute <= fromMinute {
			scorers = append(scorers, s)
		}
	}
	result.Scorers = append(scorers, result.Scorers...)
	c.liveResults[matchID] = result
	c.log.Info().Str("match_id", matchID).Int("from_minute", fromMinute).Msg("live match resumed")
	return result, nil
}

func (c *Campaign) liveFixtureLocked(matchID string) (domain.Match, domain.Team, domain.Team, error) {
	for i := range c.matches {
		if c.matches[i].ID != matchID {
			continue
		}
		m := c.matches[i]
		hi := c.teamIndex(m.HomeTeamID)
		ai := c.teamIndex(m.AwayTeamID)
		if hi < 0 || ai < 0 {
			return domain.Match{}, domain.Team{}, domain.Team{}, ErrTeamNotFound
		}
		return m, c.teams[hi], c.teams[ai], nil
	}
	return domain.Match{}, domain.Team{}, domain.Team{}, ErrMatchNotFound
}

// CompleteLiveMatch commits a finished live session: the week advances with
// the watched score instead of a fresh simulation, and scorers are credited.
// The score comes from the session's latest generated timeline, never from
// the client.
func (c *Campaign) CompleteLiveMatch(matchID string) (AdvanceOutcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.liveResults[matchID]
	if !ok {
		return AdvanceOutcome{}, ErrNoLiveSession
	}
	delete(c.liveSeeds, matchID)
	delete(c.liveResults, matchID)

	outcome, err := c.advanceWeekLocked(&ManualResult{
		MatchID:   matchID,
		HomeScore: result.FinalHomeScore,
		AwayScore: result.FinalAwayScore,
		Scorers:   result.Scorers,
	})
	if err != nil {
		return outcome, err
	}
	c.toast("Match finished! The table and results have been updated.", ToastSuccess)
	return outcome, nil
}

// TableRow is one standings line.
type TableRow struct {
	Position     int      `json:"position"`
	TeamID       string   `json:"team_id"`
	Name         string   `json:"name"`
	Played       int      `json:"played"`
	Wins         int      `json:"wins"`
	Draws        int      `json:"draws"`
	Losses       int      `json:"losses"`
	GoalsFor     int      `json:"goals_for"`
	GoalsAgainst int      `json:"goals_against"`
	GoalDiff     int      `json:"goal_diff"`
	Points       int      `json:"points"`
	Form         []string `json:"form"`
}

// Table returns current standings ordered by points, then goal difference,
// then goals scored.
func (c *Campaign) Table() ([]TableRow, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return nil, ErrNoCampaign
	}

	rows := make([]TableRow, len(c.teams))
	for i, t := range c.teams {
		rows[i] = TableRow{
			TeamID:       t.ID,
			Name:         t.Name,
			Played:       t.Wins + t.Draws + t.Losses,
			Wins:         t.Wins,
			Draws:        t.Draws,
			Losses:       t.Losses,
			GoalsFor:     t.GoalsFor,
			GoalsAgainst: t.GoalsAgainst,
			GoalDiff:     t.GoalDifference(),
			Points:       t.Points,
			Form:         append([]string{}, t.Form...),
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDiff != rows[j].GoalDiff {
			return rows[i].GoalDiff > rows[j].GoalDiff
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
	return rows, nil
}

// FinanceProjection returns next week's projected income and expenses for
// the user's club, assuming a home fixture.
func (c *Campaign) FinanceProjection() (sim.FinanceReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	user, err := c.userTeamLocked()
	if err != nil {
		return sim.FinanceReport{}, err
	}
	return sim.CalculateWeeklyFinances(c.rng, *user, nil), nil
}

// ClockInfo describes where the real-time campaign clock stands.
type ClockInfo struct {
	CurrentWeek   int       `json:"current_week"`
	TargetWeek    int       `json:"target_week"`
	NextMatchTime time.Time `json:"next_match_time"`
	WeeksBehind   int       `json:"weeks_behind"`
}

// Clock reports the real-time pacing state: which week the wall clock says
// the campaign should be in, and when the next fixture unlocks.
func (c *Campaign) Clock(now time.Time) (ClockInfo, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return ClockInfo{}, ErrNoCampaign
	}
	target := TargetWeek(c.campaignStart, now)
	behind := target - c.currentWeek
	if behind < 0 {
		behind = 0
	}
	return ClockInfo{
		CurrentWeek:   c.currentWeek,
		TargetWeek:    target,
		NextMatchTime: NextMatchTime(c.campaignStart, c.currentWeek+1),
		WeeksBehind:   behind,
	}, nil
}
