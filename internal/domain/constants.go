package domain

// Positions
const (
	PosGK  = "GK"
	PosRB  = "RB"
	PosLB  = "LB"
	PosCB  = "CB"
	PosCDM = "CDM"
	PosCM  = "CM"
	PosCAM = "CAM"
	PosRM  = "RM"
	PosLM  = "LM"
	PosRW  = "RW"
	PosLW  = "LW"
	PosCF  = "CF"
	PosST  = "ST"
)

// Tactic styles
const (
	TacticBalanced   = "Balanced"
	TacticAttacking  = "Attacking"
	TacticDefensive  = "Defensive"
	TacticPossession = "Possession"
	TacticCounter    = "Counter Attack"
	TacticHighPress  = "High Press"
)

// Attack focus instructions
const (
	FocusMixed  = "MIXED"
	FocusCenter = "CENTER"
	FocusWings  = "WINGS"
)

// Passing style instructions
const (
	PassingMixed = "MIXED"
	PassingShort = "SHORT"
	PassingLong  = "LONG"
)

// Formations
const (
	Formation442  = "4-4-2"
	Formation433  = "4-3-3"
	Formation352  = "3-5-2"
	Formation532  = "5-3-2"
	Formation4231 = "4-2-3-1"
	Formation343  = "3-4-3"
	Formation4141 = "4-1-4-1"
	Formation451  = "4-5-1"
	Formation541  = "5-4-1"
	Formation4222 = "4-2-2-2"
)

// Weather conditions
const (
	WeatherSunny = "SUNNY"
	WeatherHeat  = "HEAT"
	WeatherRain  = "RAIN"
	WeatherSnow  = "SNOW"
)

// Form results
const (
	FormWin  = "W"
	FormDraw = "D"
	FormLoss = "L"
)

// Match event types
const (
	EventKickoff      = "KICKOFF"
	EventGoal         = "GOAL"
	EventMiss         = "MISS"
	EventSave         = "SAVE"
	EventYellowCard   = "YELLOW_CARD"
	EventRedCard      = "RED_CARD"
	EventSubstitution = "SUBSTITUTION"
	EventHalfTime     = "HALF_TIME"
	EventFullTime     = "FULL_TIME"
	EventNormal       = "NORMAL"
	EventInjury       = "INJURY"
)

// Sponsor objectives
const (
	ObjectiveWinLeague       = "WIN_LEAGUE"
	ObjectiveTop4            = "TOP_4"
	ObjectiveTop8            = "TOP_8"
	ObjectiveAvoidRelegation = "AVOID_RELEGATION"
)

// Scout specialities
const (
	SpecialityGeneral = "GENERAL"
	SpecialityAttack  = "ATTACK"
	SpecialityDefense = "DEFENSE"
	SpecialityYouth   = "YOUTH"
)

// Scout report recommendations
const (
	RecommendSign  = "SIGN"
	RecommendWatch = "WATCH"
	RecommendPass  = "PASS"
)

// Award tiers and categories
const (
	AwardGold   = "GOLD"
	AwardSilver = "SILVER"
	AwardBronze = "BRONZE"

	AwardCategoryScorer = "SCORER"
	AwardCategoryAssist = "ASSIST"
	AwardCategoryRating = "RATING"
	AwardCategoryYouth  = "YOUTH"
)

// News item types
const (
	NewsTransfer = "transfer"
	NewsInjury   = "injury"
	NewsMatch    = "match"
	NewsGeneral  = "general"
	NewsRumor    = "rumor"
)

// Training drills
const (
	DrillFitnessPower     = "FITNESS_POWER"
	DrillFitnessMovement  = "FITNESS_MOVEMENT"
	DrillTechnicalControl = "TECHNICAL_CONTROL"
	DrillTechnicalPassing = "TECHNICAL_PASSING"
	DrillDefending        = "DEFENDING"
	DrillAttacking        = "ATTACKING"
	DrillSetPieces        = "SET_PIECES"
	DrillGK               = "GK"
)

// Game constants
const (
	MatchMinutes      = 90
	HalfTimeMinute    = 45
	SeasonWeeks       = 30
	LineupSize        = 11
	MinSquadSize      = 15
	MaxYouthAge       = 18
	GameOverThreshold = 3 // consecutive negative-budget seasons
	StartingBudget    = 50.0
)

var (
	Formations = []string{
		Formation442, Formation433, Formation352, Formation532, Formation4231,
		Formation343, Formation4141, Formation451, Formation541, Formation4222,
	}

	TacticStyles = []string{
		TacticBalanced, TacticAttacking, TacticDefensive,
		TacticPossession, TacticCounter, TacticHighPress,
	}

	AttackFocuses = []string{FocusMixed, FocusCenter, FocusWings}

	PassingStyles = []string{PassingMixed, PassingShort, PassingLong}

	Drills = []string{
		DrillFitnessPower, DrillFitnessMovement, DrillTechnicalControl,
		DrillTechnicalPassing, DrillDefending, DrillAttacking,
		DrillSetPieces, DrillGK,
	}

	// FormationRoles maps a formation to its eleven slot roles, goalkeeper first.
	FormationRoles = map[string][]string{
		Formation442:  {PosGK, PosLB, PosCB, PosCB, PosRB, PosLM, PosCM, PosCM, PosRM, PosST, PosST},
		Formation433:  {PosGK, PosLB, PosCB, PosCB, PosRB, PosCDM, PosCM, PosCM, PosLW, PosST, PosRW},
		Formation4231: {PosGK, PosLB, PosCB, PosCB, PosRB, PosCDM, PosCDM, PosCAM, PosLM, PosRM, PosST},
		Formation352:  {PosGK, PosCB, PosCB, PosCB, PosCDM, PosCDM, PosLM, PosRM, PosCAM, PosST, PosST},
		Formation532:  {PosGK, PosLB, PosCB, PosCB, PosCB, PosRB, PosCM, PosCM, PosCM, PosST, PosST},
		Formation343:  {PosGK, PosCB, PosCB, PosCB, PosLM, PosCM, PosCM, PosRM, PosLW, PosST, PosRW},
		Formation4141: {PosGK, PosLB, PosCB, PosCB, PosRB, PosCDM, PosLM, PosCM, PosCM, PosRM, PosST},
		Formation451:  {PosGK, PosLB, PosCB, PosCB, PosRB, PosCDM, PosLM, PosCM, PosRM, PosCM, PosST},
		Formation541:  {PosGK, PosLB, PosCB, PosCB, PosCB, PosRB, PosLM, PosCM, PosCM, PosRM, PosST},
		Formation4222: {PosGK, PosLB, PosCB, PosCB, PosRB, PosCDM, PosCDM, PosCAM, PosCAM, PosST, PosST},
	}
)
