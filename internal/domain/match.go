package domain

// Match is created by the fixture scheduler and resolved exactly once.
type Match struct {
	ID         string `json:"id"`
	Week       int    `json:"week"`
	HomeTeamID string `json:"home_team_id"`
	AwayTeamID string `json:"away_team_id"`
	HomeScore  *int   `json:"home_score"`
	AwayScore  *int   `json:"away_score"`
	Played     bool   `json:"played"`
	Weather    string `json:"weather,omitempty"`
}

type MatchEvent struct {
	Minute   int    `json:"minute"`
	Type     string `json:"type"`
	Text     string `json:"text"`
	TeamID   string `json:"team_id,omitempty"`
	PlayerID string `json:"player_id,omitempty"`
}

type LiveMatchStats struct {
	HomePossession int `json:"home_possession"`
	AwayPossession int `json:"away_possession"`
	HomeShots      int `json:"home_shots"`
	AwayShots      int `json:"away_shots"`
	HomeOnTarget   int `json:"home_on_target"`
	AwayOnTarget   int `json:"away_on_target"`
	HomeCorners    int `json:"home_corners"`
	AwayCorners    int `json:"away_corners"`
}

type Goalscorer struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id"`
	Minute     int    `json:"minute"`
}

type NewsItem struct {
	ID      string `json:"id"`
	Week    int    `json:"week"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SeasonHistory is written once per season rollover.
type SeasonHistory struct {
	SeasonNumber    int     `json:"season_number"`
	ChampionName    string  `json:"champion_name"`
	RunnerUpName    string  `json:"runner_up_name"`
	TopScorer       string  `json:"top_scorer"`
	TopScorerGoals  int     `json:"top_scorer_goals"`
	TopScorerTeam   string  `json:"top_scorer_team"`
	TopAssister     string  `json:"top_assister"`
	TopAssists      int     `json:"top_assists"`
	TopAssisterTeam string  `json:"top_assister_team"`
	BestPlayer      string  `json:"best_player"`
	BestRating      float64 `json:"best_rating"`
	BestPlayerTeam  string  `json:"best_player_team"`
}

// SaveState is the opaque campaign snapshot handed to the persistence layer.
type SaveState struct {
	CampaignStartTime int64           `json:"campaign_start_time"` // unix millis
	Teams             []Team          `json:"teams"`
	Matches           []Match         `json:"matches"`
	CurrentWeek       int             `json:"current_week"`
	UserTeamID        string          `json:"user_team_id"`
	AvailableSponsors []Sponsor       `json:"available_sponsors"`
	AvailableScouts   []Scout         `json:"available_scouts"`
	News              []NewsItem      `json:"news"`
	Season            int             `json:"season"`
	History           []SeasonHistory `json:"history"`
	GodMode           bool            `json:"god_mode,omitempty"`
}
