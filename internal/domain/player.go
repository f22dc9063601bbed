package domain

// PlayerAttributes is the full sub-attribute bundle. The overall rating is
// the floored mean of every field, so adding a field changes the rating scale.
type PlayerAttributes struct {
	// Physical
	Acceleration int `json:"acceleration"`
	SprintSpeed  int `json:"sprint_speed"`
	Agility      int `json:"agility"`
	Balance      int `json:"balance"`
	Strength     int `json:"strength"`
	Stamina      int `json:"stamina"`
	Jumping      int `json:"jumping"`

	// Technical
	BallControl      int `json:"ball_control"`
	Dribbling        int `json:"dribbling"`
	ShortPassing     int `json:"short_passing"`
	LongPassing      int `json:"long_passing"`
	Finishing        int `json:"finishing"`
	LongShots        int `json:"long_shots"`
	ShotPower        int `json:"shot_power"`
	HeadingAccuracy  int `json:"heading_accuracy"`
	StandingTackle   int `json:"standing_tackle"`
	SlidingTackle    int `json:"sliding_tackle"`
	FreeKickAccuracy int `json:"free_kick_accuracy"`
	Penalties        int `json:"penalties"`

	// Mental / Defensive
	Interceptions      int `json:"interceptions"`
	DefensiveAwareness int `json:"defensive_awareness"`
	Reactions          int `json:"reactions"`
	Vision             int `json:"vision"`

	// Goalkeeping
	GKReflexes    int `json:"gk_reflexes"`
	GKPositioning int `json:"gk_positioning"`
	GKHandling    int `json:"gk_handling"`
	GKKicking     int `json:"gk_kicking"`
}

// All returns every sub-attribute in a fixed order.
func (a PlayerAttributes) All() []int {
	return []int{
		a.Acceleration, a.SprintSpeed, a.Agility, a.Balance, a.Strength, a.Stamina, a.Jumping,
		a.BallControl, a.Dribbling, a.ShortPassing, a.LongPassing, a.Finishing, a.LongShots,
		a.ShotPower, a.HeadingAccuracy, a.StandingTackle, a.SlidingTackle, a.FreeKickAccuracy,
		a.Penalties, a.Interceptions, a.DefensiveAwareness, a.Reactions, a.Vision,
		a.GKReflexes, a.GKPositioning, a.GKHandling, a.GKKicking,
	}
}

type PlayerTraits struct {
	Leadership     bool `json:"leadership"`
	Flair          bool `json:"flair"`
	VisionPlus     bool `json:"vision_plus"`
	Clinical       bool `json:"clinical"`
	Clutch         bool `json:"clutch"`
	DecisionMaking bool `json:"decision_making"`
	Positioning    bool `json:"positioning"`
}

// ScoutReport is immutable once attached to a player.
type ScoutReport struct {
	Date           int64  `json:"date"` // unix millis
	ScoutName      string `json:"scout_name"`
	Text           string `json:"text"`
	RatingGiven    int    `json:"rating_given"`    // 1-10
	PotentialRange string `json:"potential_range"` // e.g. "85-92"
	Recommendation string `json:"recommendation"`
}

type PlayerAward struct {
	ID       string `json:"id"`
	Season   int    `json:"season"`
	Type     string `json:"type"`     // GOLD / SILVER / BRONZE
	Category string `json:"category"` // SCORER / ASSIST / RATING / YOUTH
	Title    string `json:"title"`
}

type Player struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Age                int      `json:"age"`
	Height             int      `json:"height"` // cm
	Weight             int      `json:"weight"` // kg
	Position           string   `json:"position"`
	SecondaryPositions []string `json:"secondary_positions"`
	Nationality        string   `json:"nationality"`
	Rating             int      `json:"rating"`    // 1-99
	Potential          int      `json:"potential"` // 1-99
	IsWonderkid        bool     `json:"is_wonderkid,omitempty"`
	IsTransferListed   bool     `json:"is_transfer_listed,omitempty"`
	InjuryWeeks        int      `json:"injury_weeks"` // 0 = fit

	// Scouting fog of war: when false only EstimatedPotential is shown.
	IsScouted          bool          `json:"is_scouted"`
	EstimatedPotential string        `json:"estimated_potential"`
	ScoutedBy          string        `json:"scouted_by,omitempty"`
	Reports            []ScoutReport `json:"reports"`

	Attributes PlayerAttributes `json:"attributes"`
	Traits     PlayerTraits     `json:"traits"`

	Value float64 `json:"value"` // millions
	Wage  float64 `json:"wage"`  // thousands per week

	Morale int `json:"morale"` // 0-100

	// Season counters
	MatchesPlayed  int     `json:"matches_played"`
	Goals          int     `json:"goals"`
	Assists        int     `json:"assists"`
	YellowCards    int     `json:"yellow_cards"`
	RedCards       int     `json:"red_cards"`
	AverageRating  float64 `json:"average_rating"` // 0.0-10.0
	GrowthProgress float64 `json:"growth_progress,omitempty"`
	IsSuspended    bool    `json:"is_suspended,omitempty"`

	// Career counters
	CareerMatches int `json:"career_matches"`
	CareerGoals   int `json:"career_goals"`
	CareerAssists int `json:"career_assists"`

	Awards []PlayerAward `json:"awards"`
}

// IsGoalkeeper reports whether the player's primary position is in goal.
func (p *Player) IsGoalkeeper() bool {
	return p.Position == PosGK
}
