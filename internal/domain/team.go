package domain

type StadiumDetails struct {
	SeatsLevel    int `json:"seats_level"`
	ParkingLevel  int `json:"parking_level"`
	LightingLevel int `json:"lighting_level"`
	PitchLevel    int `json:"pitch_level"`
	ToiletsLevel  int `json:"toilets_level"`
}

type StoreDetails struct {
	ShirtSalesLevel int `json:"shirt_sales_level"`
	SouvenirsLevel  int `json:"souvenirs_level"`
}

type HospitalityDetails struct {
	RestaurantLevel int `json:"restaurant_level"`
	FoodTrucksLevel int `json:"food_trucks_level"`
	CoffeeShopLevel int `json:"coffee_shop_level"`
}

type Facilities struct {
	Stadium              StadiumDetails     `json:"stadium"`
	Store                StoreDetails       `json:"store"`
	Hospitality          HospitalityDetails `json:"hospitality"`
	AcademyLevel         int                `json:"academy_level"`
	ScoutingNetworkLevel int                `json:"scouting_network_level"`
}

type Scout struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Stars         int     `json:"stars"` // 1-5, drives report accuracy
	Cost          float64 `json:"cost"`
	Salary        float64 `json:"salary"`
	Speciality    string  `json:"speciality"`
	IsBusy        bool    `json:"is_busy"`
	BusyUntilWeek int     `json:"busy_until_week,omitempty"`
}

type SponsorRequirements struct {
	MinSeatsLevel       int `json:"min_seats_level"`
	MinParkingLevel     int `json:"min_parking_level"`
	MinToiletsLevel     int `json:"min_toilets_level"`
	MinStoreLevel       int `json:"min_store_level"`
	MinHospitalityLevel int `json:"min_hospitality_level"`
}

type Sponsor struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Type           string              `json:"type"`
	WeeklyIncome   float64             `json:"weekly_income"`
	SigningBonus   float64             `json:"signing_bonus"`
	Description    string              `json:"description"`
	Objective      string              `json:"objective"`
	EndSeasonBonus float64             `json:"end_season_bonus"`
	Requirements   SponsorRequirements `json:"requirements"`
}

// SetPieceTakers holds player ids in priority order per set-piece category.
type SetPieceTakers struct {
	Penalty     []string `json:"penalty"`
	FreeKick    []string `json:"free_kick"`
	LeftCorner  []string `json:"left_corner"`
	RightCorner []string `json:"right_corner"`
}

type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ManagerName string `json:"manager_name,omitempty"`
	Color       string `json:"color"`
	LogoCode    string `json:"logo_code"`

	Players      []Player `json:"players"`
	YouthPlayers []Player `json:"youth_players"`

	Wins         int      `json:"wins"`
	Draws        int      `json:"draws"`
	Losses       int      `json:"losses"`
	GoalsFor     int      `json:"goals_for"`
	GoalsAgainst int      `json:"goals_against"`
	Points       int      `json:"points"`
	Form         []string `json:"form"` // last 5 result letters

	Budget                     float64 `json:"budget"` // millions, may go negative
	ConsecutiveNegativeSeasons int     `json:"consecutive_negative_seasons"`
	WeeklyIncome               float64 `json:"weekly_income"`
	WeeklyExpenses             float64 `json:"weekly_expenses"`

	Facilities           Facilities `json:"facilities"`
	LastAcademySpawnWeek int        `json:"last_academy_spawn_week"`

	TrainingAssignments map[string]string `json:"training_assignments"` // player id -> drill
	UnlockedDrills      []string          `json:"unlocked_drills"`

	Scouts  []Scout  `json:"scouts"`
	Sponsor *Sponsor `json:"sponsor"`

	Formation    string `json:"formation"`
	TacticStyle  string `json:"tactic_style"`
	AttackFocus  string `json:"attack_focus"`
	PassingStyle string `json:"passing_style"`

	SetPieceTakers SetPieceTakers `json:"set_piece_takers"`

	Lineup       []string  `json:"lineup"` // exactly 11 player ids once normalized
	ValueHistory []float64 `json:"value_history"`
}

// PlayerByID returns the squad player with the given id, or nil.
func (t *Team) PlayerByID(id string) *Player {
	for i := range t.Players {
		if t.Players[i].ID == id {
			return &t.Players[i]
		}
	}
	return nil
}

// YouthPlayerByID returns the academy player with the given id, or nil.
func (t *Team) YouthPlayerByID(id string) *Player {
	for i := range t.YouthPlayers {
		if t.YouthPlayers[i].ID == id {
			return &t.YouthPlayers[i]
		}
	}
	return nil
}

// InLineup reports whether the player id is in the starting lineup.
func (t *Team) InLineup(id string) bool {
	for _, lid := range t.Lineup {
		if lid == id {
			return true
		}
	}
	return false
}

// SquadValue sums the market value of the senior squad.
func (t *Team) SquadValue() float64 {
	var total float64
	for i := range t.Players {
		total += t.Players[i].Value
	}
	return total
}

// GoalDifference for league table tie-breaking.
func (t *Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}
