package game

import (
	"errors"
	"fmt"
	"slices"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"clubsim/internal/domain"
	"clubsim/internal/sim"
)

// Facility upgrade categories.
const (
	FacilityStadium     = "stadium"
	FacilityStore       = "store"
	FacilityHospitality = "hospitality"
	FacilityAcademy     = "academy"
	FacilityScouting    = "scouting"
)

var (
	ErrInsufficientBudget = errors.New("insufficient budget")
	ErrScoutLimitReached  = errors.New("scout capacity reached, upgrade the scouting network first")
	ErrSpawnCooldown      = errors.New("the academy already produced players this week")
	ErrRequirementsNotMet = errors.New("club facilities do not meet the sponsor's requirements")
	ErrDrillLocked        = errors.New("drill is not unlocked")
	ErrNoUnlockPoints     = errors.New("no drill unlock points available, upgrade the academy")
)

// UpdateTactics applies a new tactical setup to the user's club. Empty
// attack focus or passing style keeps the current instruction.
func (c *Campaign) UpdateTactics(formation, style, attackFocus, passingStyle string) error {
	if !slices.Contains(domain.Formations, formation) {
		return fmt.Errorf("unknown formation %q", formation)
	}
	if !slices.Contains(domain.TacticStyles, style) {
		return fmt.Errorf("unknown tactic style %q", style)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}
	team.Formation = formation
	team.TacticStyle = style
	if attackFocus != "" {
		if !slices.Contains(domain.AttackFocuses, attackFocus) {
			return fmt.Errorf("unknown attack focus %q", attackFocus)
		}
		team.AttackFocus = attackFocus
	}
	if passingStyle != "" {
		if !slices.Contains(domain.PassingStyles, passingStyle) {
			return fmt.Errorf("unknown passing style %q", passingStyle)
		}
		team.PassingStyle = passingStyle
	}
	c.toast("Tactical instructions have been updated", ToastSuccess)
	c.persist()
	return nil
}

// UpdateLineup replaces the starting eleven. Ids must belong to the squad;
// injured or missing slots are filled automatically at kickoff.
func (c *Campaign) UpdateLineup(playerIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}
	for _, id := range playerIDs {
		if team.PlayerByID(id) == nil {
			return fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
		}
	}
	if len(playerIDs) > domain.LineupSize {
		playerIDs = playerIDs[:domain.LineupSize]
	}
	team.Lineup = append([]string{}, playerIDs...)
	c.persist()
	return nil
}

// UpdateSetPieceTakers replaces the set-piece priority lists.
func (c *Campaign) UpdateSetPieceTakers(takers domain.SetPieceTakers) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}
	team.SetPieceTakers = takers
	c.toast("Set piece specialists updated", ToastSuccess)
	c.persist()
	return nil
}

// AssignDrill points the given players at a training drill. The drill must
// already be unlocked.
func (c *Campaign) AssignDrill(drill string, playerIDs []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}
	if !slices.Contains(team.UnlockedDrills, drill) {
		return ErrDrillLocked
	}
	if team.TrainingAssignments == nil {
		team.TrainingAssignments = make(map[string]string)
	}
	for _, id := range playerIDs {
		if team.PlayerByID(id) == nil {
			return fmt.Errorf("%w: %s", ErrPlayerNotFound, id)
		}
		team.TrainingAssignments[id] = drill
	}
	c.toast(fmt.Sprintf("Training updated for %d players", len(playerIDs)), ToastSuccess)
	c.persist()
	return nil
}

// UnlockDrill spends one academy unlock point on a new drill. The academy
// grants 3 base slots plus 2 per level above 1.
func (c *Campaign) UnlockDrill(drill string) error {
	if !slices.Contains(domain.Drills, drill) {
		return fmt.Errorf("unknown drill %q", drill)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}
	if slices.Contains(team.UnlockedDrills, drill) {
		return nil
	}
	maxUnlockable := 3 + (team.Facilities.AcademyLevel-1)*2
	if len(team.UnlockedDrills) >= maxUnlockable {
		return ErrNoUnlockPoints
	}
	team.UnlockedDrills = append(team.UnlockedDrills, drill)
	c.toast("New drill unlocked successfully!", ToastSuccess)
	c.persist()
	return nil
}

// UpgradeFacility raises one facility level for the given cost. subType
// names the concrete installation for stadium, store and hospitality
// upgrades; academy and scouting levels upgrade directly.
func (c *Campaign) UpgradeFacility(category, subType string, cost float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}
	if team.Budget < cost && !c.godMode {
		c.toast("You don't have enough budget for this upgrade!", ToastError)
		return ErrInsufficientBudget
	}

	f := &team.Facilities
	switch category {
	case FacilityAcademy:
		f.AcademyLevel++
	case FacilityScouting:
		f.ScoutingNetworkLevel++
	case FacilityStadium:
		switch subType {
		case "seats":
			f.Stadium.SeatsLevel++
		case "parking":
			f.Stadium.ParkingLevel++
		case "lighting":
			f.Stadium.LightingLevel++
		case "pitch":
			f.Stadium.PitchLevel++
		case "toilets":
			f.Stadium.ToiletsLevel++
		default:
			return fmt.Errorf("unknown stadium installation %q", subType)
		}
	case FacilityStore:
		switch subType {
		case "shirt_sales":
			f.Store.ShirtSalesLevel++
		case "souvenirs":
			f.Store.SouvenirsLevel++
		default:
			return fmt.Errorf("unknown store installation %q", subType)
		}
	case FacilityHospitality:
		switch subType {
		case "restaurant":
			f.Hospitality.RestaurantLevel++
		case "food_trucks":
			f.Hospitality.FoodTrucksLevel++
		case "coffee_shop":
			f.Hospitality.CoffeeShopLevel++
		default:
			return fmt.Errorf("unknown hospitality installation %q", subType)
		}
	default:
		return fmt.Errorf("unknown facility category %q", category)
	}

	if !c.godMode {
		team.Budget -= cost
	}
	c.toast("Facility upgraded successfully!", ToastSuccess)
	c.log.Info().Str("category", category).Str("sub_type", subType).Float64("cost", cost).Msg("facility upgraded")
	c.persist()
	return nil
}

func meetsSponsorRequirements(team *domain.Team, r domain.SponsorRequirements) bool {
	f := team.Facilities
	return f.Stadium.SeatsLevel >= r.MinSeatsLevel &&
		f.Stadium.ParkingLevel >= r.MinParkingLevel &&
		f.Stadium.ToiletsLevel >= r.MinToiletsLevel &&
		f.Store.ShirtSalesLevel >= r.MinStoreLevel &&
		f.Hospitality.RestaurantLevel >= r.MinHospitalityLevel
}

// SignSponsor signs an available sponsor, pays the signing bonus and takes
// the sponsor off the market. Facility requirements gate the deal.
func (c *Campaign) SignSponsor(sponsorID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(c.availableSponsors, func(s domain.Sponsor) bool { return s.ID == sponsorID })
	if idx < 0 {
		return ErrSponsorNotFound
	}
	sponsor := c.availableSponsors[idx]
	if !meetsSponsorRequirements(team, sponsor.Requirements) {
		return ErrRequirementsNotMet
	}

	team.Sponsor = &sponsor
	team.Budget += sponsor.SigningBonus
	c.availableSponsors = slices.Delete(c.availableSponsors, idx, idx+1)

	c.toast(fmt.Sprintf("Successfully signed a contract with %s!", sponsor.Name), ToastSuccess)
	c.log.Info().Str("sponsor", sponsor.Name).Float64("bonus", sponsor.SigningBonus).Msg("sponsor signed")
	c.persist()
	return nil
}

func maxScoutsForLevel(level int) int {
	switch {
	case level >= 10:
		return 5
	case level >= 8:
		return 3
	case level >= 4:
		return 2
	default:
		return 1
	}
}

// HireScout moves a scout from the market onto the user's payroll, subject
// to the scouting network's capacity.
func (c *Campaign) HireScout(scoutID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}

	if len(team.Scouts) >= maxScoutsForLevel(team.Facilities.ScoutingNetworkLevel) {
		c.toast("You can't hire more scouts, upgrade your network first!", ToastError)
		return ErrScoutLimitReached
	}
	idx := slices.IndexFunc(c.availableScouts, func(s domain.Scout) bool { return s.ID == scoutID })
	if idx < 0 {
		return ErrScoutNotFound
	}
	scout := c.availableScouts[idx]
	if team.Budget < scout.Cost && !c.godMode {
		c.toast("Not enough budget to hire this scout", ToastError)
		return ErrInsufficientBudget
	}

	team.Scouts = append(team.Scouts, scout)
	if !c.godMode {
		team.Budget -= scout.Cost
	}
	c.availableScouts = slices.Delete(c.availableScouts, idx, idx+1)

	c.toast(fmt.Sprintf("Scout %s has been hired", scout.Name), ToastSuccess)
	c.persist()
	return nil
}

// FireScout removes a scout from the payroll.
func (c *Campaign) FireScout(scoutID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(team.Scouts, func(s domain.Scout) bool { return s.ID == scoutID })
	if idx < 0 {
		return ErrScoutNotFound
	}
	team.Scouts = slices.Delete(team.Scouts, idx, idx+1)
	c.toast("The scout has been fired.", ToastInfo)
	c.persist()
	return nil
}

// AssignScout sends one of the club's scouts to assess an academy player
// and attaches the resulting report. Report accuracy depends on the scout's
// stars and speciality.
func (c *Campaign) AssignScout(playerID, scoutID string) (domain.ScoutReport, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return domain.ScoutReport{}, err
	}

	si := slices.IndexFunc(team.Scouts, func(s domain.Scout) bool { return s.ID == scoutID })
	if si < 0 {
		return domain.ScoutReport{}, ErrScoutNotFound
	}
	player := team.YouthPlayerByID(playerID)
	if player == nil {
		return domain.ScoutReport{}, ErrPlayerNotFound
	}

	report := sim.GenerateScoutReport(c.rng, *player, team.Scouts[si])
	player.IsScouted = true
	player.EstimatedPotential = fmt.Sprint(player.Potential)
	player.ScoutedBy = scoutID
	player.Reports = append(player.Reports, report)

	c.toast("Scout report received", ToastInfo)
	c.persist()
	return report, nil
}

// SpawnYouth runs an academy intake. At most one intake per week; batch
// size and quality scale with the academy level.
func (c *Campaign) SpawnYouth() ([]domain.Player, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return nil, err
	}
	if team.LastAcademySpawnWeek >= c.currentWeek {
		return nil, ErrSpawnCooldown
	}

	batch := sim.GenerateAcademySpawns(c.rng, team.Facilities.AcademyLevel)
	team.YouthPlayers = append(team.YouthPlayers, batch...)
	team.LastAcademySpawnWeek = c.currentWeek

	c.toast("A new batch of players has joined the academy!", ToastSuccess)
	c.persist()
	return batch, nil
}

// PromoteYouth moves an academy player into the first team squad.
func (c *Campaign) PromoteYouth(playerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(team.YouthPlayers, func(p domain.Player) bool { return p.ID == playerID })
	if idx < 0 {
		return ErrPlayerNotFound
	}

	promoted := team.YouthPlayers[idx]
	team.YouthPlayers = slices.Delete(team.YouthPlayers, idx, idx+1)
	team.Players = append(team.Players, promoted)

	c.toast(fmt.Sprintf("%s has been promoted to the first team!", promoted.Name), ToastSuccess)
	c.persist()
	return nil
}

// NegotiateTransfer submits a bid for another club's player. Rejections and
// counter offers come back as data, not errors; an accepted bid executes
// immediately.
func (c *Campaign) NegotiateTransfer(sellerTeamID, playerID string, offer float64) (sim.NegotiationResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return sim.NegotiationResult{}, ErrNoCampaign
	}

	bi := c.teamIndex(c.userTeamID)
	si := c.teamIndex(sellerTeamID)
	if bi < 0 || si < 0 {
		return sim.NegotiationResult{}, ErrTeamNotFound
	}
	player := c.teams[si].PlayerByID(playerID)
	if player == nil {
		return sim.NegotiationResult{}, ErrPlayerNotFound
	}

	result := sim.EvaluateOffer(c.teams[bi], c.teams[si], *player, offer, c.godMode)
	if result.Status != sim.OfferAccepted {
		return result, nil
	}

	buyer, seller, moved := sim.ExecuteTransfer(c.teams[bi], c.teams[si], playerID, offer, c.godMode)
	if moved == nil {
		return sim.NegotiationResult{}, ErrPlayerNotFound
	}
	c.teams[bi] = buyer
	c.teams[si] = seller

	id, _ := gonanoid.New()
	c.pushNews(domain.NewsItem{
		ID:      id,
		Week:    c.currentWeek,
		Message: fmt.Sprintf("Official: %s has transferred from %s to %s for %.1fM", moved.Name, seller.Name, buyer.Name, offer),
		Type:    domain.NewsTransfer,
	})
	c.toast(fmt.Sprintf("Player %s signed successfully!", moved.Name), ToastSuccess)
	c.log.Info().
		Str("player", moved.Name).
		Str("from", seller.Name).
		Str("to", buyer.Name).
		Float64("fee", offer).
		Msg("transfer completed")
	c.persist()
	return result, nil
}

// SetTransferListed toggles the transfer listing flag on a squad player.
func (c *Campaign) SetTransferListed(playerID string, listed bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}
	player := team.PlayerByID(playerID)
	if player == nil {
		return ErrPlayerNotFound
	}
	player.IsTransferListed = listed
	c.persist()
	return nil
}

// ActiveScenario returns the pending scenario, if one is waiting for a
// decision.
func (c *Campaign) ActiveScenario() *sim.Scenario {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.activeScenario == nil {
		return nil
	}
	s := *c.activeScenario
	return &s
}

// DecideScenario resolves the pending scenario with the chosen option and
// folds the outcome into the user's club. A failed roll is a valid result.
func (c *Campaign) DecideScenario(optionID string) (sim.ScenarioResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeScenario == nil {
		return sim.ScenarioResult{}, ErrNoActiveScenario
	}
	team, err := c.userTeamLocked()
	if err != nil {
		return sim.ScenarioResult{}, err
	}

	result := sim.ResolveScenario(c.rng, *team, c.activeScenario.ID, optionID)
	*team = sim.ApplyScenarioChanges(*team, result.Changes)

	level := ToastSuccess
	if !result.Success {
		level = ToastWarning
	}
	c.toast(result.Message, level)
	c.log.Info().
		Str("scenario", c.activeScenario.ID).
		Str("option", optionID).
		Bool("success", result.Success).
		Msg("scenario resolved")
	c.activeScenario = nil
	c.persist()
	return result, nil
}

// DismissScenario drops the pending scenario without applying anything.
func (c *Campaign) DismissScenario() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeScenario = nil
}

// UpdateTeamInfo renames the club and manager.
func (c *Campaign) UpdateTeamInfo(name, manager string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	team, err := c.userTeamLocked()
	if err != nil {
		return err
	}
	if name != "" {
		team.Name = name
	}
	if manager != "" {
		team.ManagerName = manager
	}
	c.toast("Team information updated", ToastSuccess)
	c.persist()
	return nil
}

// Teams returns a copy of every club.
func (c *Campaign) Teams() ([]domain.Team, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return nil, ErrNoCampaign
	}
	return append([]domain.Team{}, c.teams...), nil
}

// Team returns one club by id.
func (c *Campaign) Team(id string) (domain.Team, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return domain.Team{}, ErrNoCampaign
	}
	idx := c.teamIndex(id)
	if idx < 0 {
		return domain.Team{}, ErrTeamNotFound
	}
	return c.teams[idx], nil
}

// Fixtures returns a copy of the season's match list.
func (c *Campaign) Fixtures() ([]domain.Match, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return nil, ErrNoCampaign
	}
	return append([]domain.Match{}, c.matches...), nil
}

// News returns the news feed, newest first.
func (c *Campaign) News() ([]domain.NewsItem, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return nil, ErrNoCampaign
	}
	return append([]domain.NewsItem{}, c.news...), nil
}

// History returns completed season summaries.
func (c *Campaign) History() ([]domain.SeasonHistory, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return nil, ErrNoCampaign
	}
	return append([]domain.SeasonHistory{}, c.history...), nil
}

// Market returns what's currently available to sign.
func (c *Campaign) Market() ([]domain.Sponsor, []domain.Scout, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.initialized {
		return nil, nil, ErrNoCampaign
	}
	sponsors := append([]domain.Sponsor{}, c.availableSponsors...)
	scouts := append([]domain.Scout{}, c.availableScouts...)
	return sponsors, scouts, nil
}
