package sim

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"clubsim/internal/domain"
)

var firstNames = []string{
	"John", "Michael", "David", "Chris", "James", "Robert", "Daniel", "Paul", "Mark", "Kevin",
	"Steven", "George", "Brian", "Edward", "Ronald", "Anthony", "Jason", "Matthew", "Gary", "Timothy",
	"Peter", "Ryan", "Eric", "Scott", "Andrew",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var nations = []string{
	"England", "Spain", "Germany", "France", "Italy", "Brazil", "Argentina",
	"Portugal", "Netherlands", "Belgium", "Saudi Arabia", "Egypt", "Morocco",
}

var teamNames = []string{
	"Capital Falcons", "United Glory", "Kingdom Knights", "Unity FC",
	"Riyadh Elite", "Desert Storm", "Jeddah Heat", "Eastern Waves",
	"Abha Summit", "Dammam Gold", "Challenge FC", "Southern Victory",
	"Coastal Crescent", "Future Youth", "Mountain Hawks", "Northern Eagles",
}

var teamColors = []string{
	"#2563eb", "#eab308", "#facc15", "#16a34a",
	"#0f172a", "#ca8a04", "#dc2626", "#10b981",
	"#f97316", "#ef4444", "#b91c1c", "#60a5fa",
	"#64748b", "#fde047", "#991b1b", "#f87171",
}

func generateName(src *Source) string {
	return Pick(src, firstNames) + " " + Pick(src, lastNames)
}

// secondaryPositions returns the realistic positional adjacency set for a
// primary position. Goalkeepers retrain as nothing else.
func secondaryPositions(pos string) []string {
	switch pos {
	case domain.PosGK:
		return nil
	case domain.PosLB:
		return []string{domain.PosRB, domain.PosLM}
	case domain.PosRB:
		return []string{domain.PosLB, domain.PosRM}
	case domain.PosCB:
		return []string{domain.PosCDM, domain.PosRB, domain.PosLB}
	case domain.PosCDM:
		return []string{domain.PosCM, domain.PosCB}
	case domain.PosCM:
		return []string{domain.PosCDM, domain.PosCAM, domain.PosLM, domain.PosRM}
	case domain.PosCAM:
		return []string{domain.PosCM, domain.PosCF, domain.PosLW, domain.PosRW}
	case domain.PosLM:
		return []string{domain.PosLW, domain.PosRM, domain.PosCM, domain.PosLB}
	case domain.PosRM:
		return []string{domain.PosRW, domain.PosLM, domain.PosCM, domain.PosRB}
	case domain.PosLW:
		return []string{domain.PosRW, domain.PosLM, domain.PosCAM, domain.PosCF}
	case domain.PosRW:
		return []string{domain.PosLW, domain.PosRM, domain.PosCAM, domain.PosCF}
	case domain.PosCF:
		return []string{domain.PosST, domain.PosCAM, domain.PosLW, domain.PosRW}
	case domain.PosST:
		return []string{domain.PosCF, domain.PosLW, domain.PosRW}
	default:
		return nil
	}
}

// calculateWage prices a weekly wage (in thousands) from rating, age,
// potential and position premium. Exponential in rating so elite players
// dominate the wage bill.
func calculateWage(rating, age, potential int, position string) float64 {
	wage := math.Pow(1.8, float64(rating-50)/2.5)
	switch position {
	case domain.PosST, domain.PosCF:
		wage *= 1.4
	case domain.PosGK, domain.PosCB:
		wage *= 1.2
	}
	if age < 24 && potential > rating+10 {
		wage *= 1.3
	}
	if age > 30 {
		wage *= 0.85
	}
	if rating >= 85 {
		wage = math.Max(wage, 100)
	}
	wage = math.Max(0.5, wage)
	return round1(wage)
}

func calculateValue(rating int) float64 {
	return round1(math.Pow(1.9, float64(rating-40)/3.5))
}

// GeneratePlayer builds a full player entity. Youth spawns override the age
// to 14-17, start unscouted with only an estimated potential range, and may
// roll as wonderkids depending on academy level.
func GeneratePlayer(src *Source, position string, age, baseRating, academyLevel int, isYouthSpawn bool, forcedNationality string) domain.Player {
	nationality := forcedNationality
	if nationality == "" {
		nationality = Pick(src, nations)
	}

	isGK := position == domain.PosGK

	spawnAge := age
	if isYouthSpawn {
		spawnAge = src.Between(14, 17)
	}

	isWonderkid := false
	if academyLevel >= 8 && spawnAge <= 17 {
		isWonderkid = src.Chance(0.10)
	} else if academyLevel >= 5 && spawnAge <= 17 {
		isWonderkid = src.Chance(0.02)
	}

	potential := baseRating + src.Between(5, 15)
	if spawnAge < 21 {
		potential += src.Between(10, 20)
	}
	if isWonderkid {
		potential = max(potential, src.Between(90, 99))
	}
	potential = min(99, potential)

	attr := func(base int) int {
		return clamp(base+src.Between(-5, 5), 1, 99)
	}
	outfield := func(gkBase int) int {
		if isGK {
			return attr(gkBase)
		}
		return attr(baseRating)
	}
	keeper := func() int {
		if isGK {
			return attr(baseRating)
		}
		return attr(10)
	}

	attributes := domain.PlayerAttributes{
		Acceleration:       outfield(40),
		SprintSpeed:        outfield(40),
		Agility:            outfield(50),
		Balance:            outfield(50),
		Strength:           attr(baseRating),
		Stamina:            outfield(40),
		Jumping:            outfield(60),
		BallControl:        outfield(20),
		Dribbling:          outfield(20),
		ShortPassing:       outfield(30),
		LongPassing:        outfield(40),
		Finishing:          outfield(10),
		LongShots:          outfield(10),
		ShotPower:          attr(baseRating),
		HeadingAccuracy:    outfield(10),
		StandingTackle:     outfield(10),
		SlidingTackle:      outfield(10),
		FreeKickAccuracy:   outfield(10),
		Penalties:          outfield(10),
		Interceptions:      outfield(10),
		DefensiveAwareness: outfield(10),
		Reactions:          attr(baseRating),
		Vision:             outfield(30),
		GKReflexes:         keeper(),
		GKPositioning:      keeper(),
		GKHandling:         keeper(),
		GKKicking:          keeper(),
	}

	traits := domain.PlayerTraits{
		Leadership:     src.Chance(0.1),
		Flair:          src.Chance(0.2),
		VisionPlus:     src.Chance(0.1),
		Clinical:       src.Chance(0.15),
		Clutch:         src.Chance(0.05),
		DecisionMaking: src.Chance(0.2),
		Positioning:    src.Chance(0.15),
	}

	all := attributes.All()
	sum := 0
	for _, v := range all {
		sum += v
	}
	rating := sum / len(all)
	if potential < rating {
		potential = rating
	}

	estimated := fmt.Sprintf("%d", potential)
	if isYouthSpawn {
		estimated = fmt.Sprintf("%d-%d", potential-10, potential+5)
	}

	careerMatches := 0
	if spawnAge > 18 {
		careerMatches = (spawnAge - 18) * 30
	}

	return domain.Player{
		ID:                 uuid.NewString(),
		Name:               generateName(src),
		Age:                spawnAge,
		Height:             src.Between(165, 200),
		Weight:             src.Between(60, 95),
		Position:           position,
		SecondaryPositions: secondaryPositions(position),
		Nationality:        nationality,
		Rating:             rating,
		Potential:          potential,
		IsWonderkid:        isWonderkid,
		InjuryWeeks:        0,
		IsScouted:          !isYouthSpawn,
		EstimatedPotential: estimated,
		Reports:            []domain.ScoutReport{},
		Attributes:         attributes,
		Traits:             traits,
		Value:              calculateValue(rating),
		Wage:               calculateWage(rating, spawnAge, potential, position),
		Morale:             src.Between(60, 90),
		CareerMatches:      careerMatches,
		Awards:             []domain.PlayerAward{},
	}
}

// GenerateTeam builds a club with a 15-man squad: a full starting eleven by
// position plus four weaker bench players.
func GenerateTeam(src *Source, name, color string, isUser bool) domain.Team {
	starterPositions := []string{
		domain.PosGK, domain.PosLB, domain.PosRB, domain.PosCB, domain.PosCB,
		domain.PosCDM, domain.PosCM, domain.PosCAM, domain.PosLW, domain.PosRW, domain.PosST,
	}
	benchPositions := []string{domain.PosGK, domain.PosCB, domain.PosCM, domain.PosST}

	players := make([]domain.Player, 0, len(starterPositions)+len(benchPositions))
	for _, pos := range starterPositions {
		players = append(players, GeneratePlayer(src, pos, src.Between(18, 32), src.Between(60, 75), 1, false, ""))
	}
	for _, pos := range benchPositions {
		players = append(players, GeneratePlayer(src, pos, src.Between(18, 32), src.Between(50, 65), 1, false, ""))
	}

	sort.SliceStable(players, func(i, j int) bool { return players[i].Rating > players[j].Rating })

	lineup := make([]string, 0, domain.LineupSize)
	for i := 0; i < domain.LineupSize; i++ {
		lineup = append(lineup, players[i].ID)
	}

	manager := "CPU"
	if isUser {
		manager = "You"
	}

	var squadValue float64
	for i := range players {
		squadValue += players[i].Value
	}

	logoCode := name
	if len(logoCode) > 2 {
		logoCode = logoCode[:2]
	}
	logoCode = strings.ToUpper(logoCode)

	return domain.Team{
		ID:                   uuid.NewString(),
		Name:                 name,
		ManagerName:          manager,
		Color:                color,
		LogoCode:             logoCode,
		Players:              players,
		YouthPlayers:         []domain.Player{},
		Form:                 []string{},
		Budget:               domain.StartingBudget,
		WeeklyIncome:         1.5,
		WeeklyExpenses:       1.2,
		Facilities: domain.Facilities{
			Stadium:              domain.StadiumDetails{SeatsLevel: 1, ParkingLevel: 1, LightingLevel: 1, PitchLevel: 1, ToiletsLevel: 1},
			Store:                domain.StoreDetails{ShirtSalesLevel: 1, SouvenirsLevel: 1},
			Hospitality:          domain.HospitalityDetails{RestaurantLevel: 1, FoodTrucksLevel: 1, CoffeeShopLevel: 1},
			AcademyLevel:         1,
			ScoutingNetworkLevel: 1,
		},
		LastAcademySpawnWeek: -1,
		TrainingAssignments:  map[string]string{},
		UnlockedDrills:       []string{domain.DrillGK, domain.DrillDefending, domain.DrillAttacking},
		Scouts:               []domain.Scout{},
		Formation:            domain.Formation433,
		TacticStyle:          domain.TacticBalanced,
		AttackFocus:          domain.FocusMixed,
		PassingStyle:         domain.PassingMixed,
		SetPieceTakers:       domain.SetPieceTakers{Penalty: []string{}, FreeKick: []string{}, LeftCorner: []string{}, RightCorner: []string{}},
		Lineup:               lineup,
		ValueHistory:         []float64{squadValue},
	}
}

// InitializeLeague builds count teams; the first is the user's club.
func InitializeLeague(src *Source, count int) []domain.Team {
	teams := make([]domain.Team, 0, count)
	for i := 0; i < count; i++ {
		name := teamNames[i%len(teamNames)]
		color := teamColors[i%len(teamColors)]
		teams = append(teams, GenerateTeam(src, name, color, i == 0))
	}
	return teams
}

// GenerateSponsors returns the fixed sponsor pool, richest first. Facility
// requirements gate eligibility.
func GenerateSponsors() []domain.Sponsor {
	return []domain.Sponsor{
		{
			ID: "sp-1", Name: "Global Oil Co", Type: "Main Sponsor",
			WeeklyIncome: 1.8, SigningBonus: 10, EndSeasonBonus: 25,
			Description: "A massive energy corporation with global reach, demanding consistent top-tier performance.",
			Objective:   domain.ObjectiveWinLeague,
			Requirements: domain.SponsorRequirements{MinSeatsLevel: 8, MinParkingLevel: 7, MinToiletsLevel: 6, MinStoreLevel: 8, MinHospitalityLevel: 7},
		},
		{
			ID: "sp-2", Name: "Royal Bank", Type: "Financial Partner",
			WeeklyIncome: 1.2, SigningBonus: 5, EndSeasonBonus: 15,
			Description: "A prestigious financial institution that values stability and a place among the elite.",
			Objective:   domain.ObjectiveTop4,
			Requirements: domain.SponsorRequirements{MinSeatsLevel: 5, MinParkingLevel: 4, MinToiletsLevel: 4, MinStoreLevel: 5, MinHospitalityLevel: 5},
		},
		{
			ID: "sp-3", Name: "Sky Airlines", Type: "Official Carrier",
			WeeklyIncome: 0.8, SigningBonus: 2, EndSeasonBonus: 8,
			Description: "A fast-growing airline looking to associate with a respectable and competitive team.",
			Objective:   domain.ObjectiveTop8,
			Requirements: domain.SponsorRequirements{MinSeatsLevel: 3, MinParkingLevel: 2, MinToiletsLevel: 2, MinStoreLevel: 3, MinHospitalityLevel: 2},
		},
		{
			ID: "sp-4", Name: "Build It Construction", Type: "Local Partner",
			WeeklyIncome: 0.5, SigningBonus: 1, EndSeasonBonus: 3,
			Description: "A local construction firm that prides itself on stability and community, supporting teams that avoid relegation.",
			Objective:   domain.ObjectiveAvoidRelegation,
			Requirements: domain.SponsorRequirements{MinSeatsLevel: 1, MinParkingLevel: 1, MinToiletsLevel: 1, MinStoreLevel: 1, MinHospitalityLevel: 1},
		},
	}
}

// GenerateRandomNews produces a rumor-mill item referencing real squad names.
func GenerateRandomNews(src *Source, week int, teams []domain.Team) domain.NewsItem {
	t1 := Pick(src, teams)
	t2 := t1
	for t2.ID == t1.ID {
		t2 = Pick(src, teams)
	}
	player := Pick(src, t1.Players)

	templates := []string{
		fmt.Sprintf("Rumors are swirling about a potential transfer of %s to %s.", player.Name, t2.Name),
		fmt.Sprintf("%s expressed confidence in his team ahead of their clash with %s.", t1.ManagerName, t2.Name),
		fmt.Sprintf("%s picked up a minor knock in training and is a doubt for the next game.", player.Name),
		fmt.Sprintf("Pundits are praising %s's recent form, calling them title contenders.", t1.Name),
		fmt.Sprintf("Sources say %s are looking to strengthen their defense in the transfer window.", t2.Name),
	}

	return domain.NewsItem{
		ID:      gonanoid.Must(10),
		Week:    week,
		Message: Pick(src, templates),
		Type:    domain.NewsRumor,
	}
}

// GenerateAcademySpawns produces the weekly youth intake; volume and base
// quality both scale with academy level.
func GenerateAcademySpawns(src *Source, academyLevel int) []domain.Player {
	numToSpawn := 1
	switch {
	case academyLevel >= 10:
		numToSpawn = 5
	case academyLevel >= 8:
		numToSpawn = 3
	case academyLevel >= 5:
		numToSpawn = 2
	}

	positions := []string{
		domain.PosGK, domain.PosCB, domain.PosRB, domain.PosLB, domain.PosCDM,
		domain.PosCM, domain.PosCAM, domain.PosRW, domain.PosLW, domain.PosST,
	}

	players := make([]domain.Player, 0, numToSpawn)
	for i := 0; i < numToSpawn; i++ {
		baseRating := 40 + academyLevel*2 + src.Between(-5, 5)
		players = append(players, GeneratePlayer(src, Pick(src, positions), src.Between(14, 17), baseRating, academyLevel, true, ""))
	}
	return players
}

// GenerateScouts refreshes the scout market around an average star level.
func GenerateScouts(src *Source, count, avgStars int) []domain.Scout {
	specialities := []string{domain.SpecialityGeneral, domain.SpecialityAttack, domain.SpecialityDefense, domain.SpecialityYouth}

	scouts := make([]domain.Scout, 0, count)
	for i := 0; i < count; i++ {
		stars := clamp(avgStars+src.Between(-1, 1), 1, 5)
		scouts = append(scouts, domain.Scout{
			ID:         uuid.NewString(),
			Name:       generateName(src),
			Age:        src.Between(40, 65),
			Stars:      stars,
			Cost:       round1(float64(stars)*1.5 + float64(src.Between(-5, 5))/10),
			Salary:     round1(float64(stars)*5 + float64(src.Between(-20, 20))/10),
			Speciality: Pick(src, specialities),
		})
	}
	return scouts
}

// GenerateScoutReport writes a narrative report. Accuracy improves with star
// level and a matching speciality tightens the estimated potential range.
func GenerateScoutReport(src *Source, player domain.Player, scout domain.Scout) domain.ScoutReport {
	accuracyBonus := 0
	isAttacker := player.Position == domain.PosST || player.Position == domain.PosCF ||
		player.Position == domain.PosLW || player.Position == domain.PosRW
	isDefender := player.Position == domain.PosCB || player.Position == domain.PosLB || player.Position == domain.PosRB

	if scout.Speciality == domain.SpecialityAttack && isAttacker {
		accuracyBonus = 5
	}
	if scout.Speciality == domain.SpecialityDefense && isDefender {
		accuracyBonus = 5
	}
	if scout.Speciality == domain.SpecialityYouth && player.Age <= 18 {
		accuracyBonus = 5
	}

	baseInaccuracy := 12 - scout.Stars*2 // 5 stars = 2, 1 star = 10
	finalInaccuracy := max(1, baseInaccuracy-accuracyBonus)

	potentialMin := max(player.Rating, player.Potential-src.Between(0, finalInaccuracy))
	potentialMax := min(99, player.Potential+src.Between(0, finalInaccuracy))

	recommendation := domain.RecommendWatch
	if potentialMax >= 85 {
		recommendation = domain.RecommendSign
	}
	if potentialMax < 70 {
		recommendation = domain.RecommendPass
	}

	intros := []string{"After observing the player, I believe", "My analysis indicates that", "The player shows promise, and my report suggests"}
	strengths := []string{"excellent physical attributes", "great technical skill on the ball", "a high football IQ and vision", "solid defensive fundamentals"}
	weaknesses := []string{"needs to improve their decision-making under pressure", "lacks the top-end speed required at the highest level", "could work on their weaker foot", "sometimes loses focus defensively"}
	adjectives := []string{"world-class", "a solid first-team", "a decent squad player", "a future star"}
	conclusions := map[string]string{
		domain.RecommendSign:  "I recommend signing him immediately.",
		domain.RecommendWatch: "We should keep a close eye on his development.",
		domain.RecommendPass:  "I don't believe he has what it takes for our club.",
	}

	text := fmt.Sprintf("%s he has %s. However, he %s. His potential is to become %s. %s",
		Pick(src, intros), Pick(src, strengths), Pick(src, weaknesses), Pick(src, adjectives), conclusions[recommendation])

	return domain.ScoutReport{
		Date:           time.Now().UnixMilli(),
		ScoutName:      scout.Name,
		Text:           text,
		RatingGiven:    clamp(scout.Stars*2+src.Between(-1, 1), 1, 10),
		PotentialRange: fmt.Sprintf("%d-%d", potentialMin, potentialMax),
		Recommendation: recommendation,
	}
}
