package sim

import (
	"clubsim/internal/domain"
)

// Scenario categories
const (
	ScenarioMedia      = "MEDIA"
	ScenarioDiscipline = "DISCIPLINE"
	ScenarioFinance    = "FINANCE"
	ScenarioMedical    = "MEDICAL"
	ScenarioFans       = "FANS"
	ScenarioTactical   = "TACTICAL"
)

// Risk levels
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

type ScenarioOption struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	RiskLevel   string `json:"risk_level"`
	Description string `json:"description,omitempty"`
}

// Scenario is a narrative manager decision surfaced between weeks.
type Scenario struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Options     []ScenarioOption `json:"options"`
}

// ScenarioResult reports the outcome as data; failure is never an error.
type ScenarioResult struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Changes Changes `json:"changes"`
}

// Changes is the bundle of team-level mutations a scenario outcome carries.
type Changes struct {
	BudgetDelta     float64 `json:"budget_delta,omitempty"`
	MoraleDelta     int     `json:"morale_delta,omitempty"` // applied to every squad player
	InjureStarWeeks int     `json:"injure_star_weeks,omitempty"`
	HealWeeks       int     `json:"heal_weeks,omitempty"`
}

// Scenarios is the hand-authored catalogue.
var Scenarios = []Scenario{
	{
		ID: "MEDIA_INTERVIEW", Category: ScenarioMedia,
		Title:       "Heated Press Conference",
		Description: "A famous journalist has requested an exclusive interview with you before the upcoming derby. The fans are waiting for your statements.",
		Options: []ScenarioOption{
			{ID: "CALM", Label: "Give a calm, diplomatic statement", RiskLevel: RiskLow, Description: "Respect the opponent and ask for the fans' support."},
			{ID: "ARROGANT", Label: "Promise a crushing victory", RiskLevel: RiskHigh, Description: "Fire up the fans and promise to defeat the opponent."},
		},
	},
	{
		ID: "PLAYER_PARTY", Category: ScenarioDiscipline,
		Title:       "Late Night Party",
		Description: "You've received photos of one of your key players partying late just two days before a crucial match.",
		Options: []ScenarioOption{
			{ID: "FINE", Label: "Issue a fine and a warning", RiskLevel: RiskMedium, Description: "Enforce discipline strictly."},
			{ID: "IGNORE", Label: "Ignore it and talk to the player privately", RiskLevel: RiskLow, Description: "Maintain a good relationship with him."},
		},
	},
	{
		ID: "SPONSOR_DEAL", Category: ScenarioFinance,
		Title:       "Risky Investment Opportunity",
		Description: "A new cryptocurrency company has offered a huge sum to sponsor the training kits, but their reputation is unstable.",
		Options: []ScenarioOption{
			{ID: "ACCEPT", Label: "Accept the offer", RiskLevel: RiskHigh, Description: "Risk the club's reputation for the money."},
			{ID: "REJECT", Label: "Reject the offer", RiskLevel: RiskLow, Description: "Protect the club's image."},
		},
	},
	{
		ID: "FAN_PROTEST", Category: ScenarioFans,
		Title:       "Fan Outrage",
		Description: "The fan association is angry about ticket prices and is demanding a reduction for the next match.",
		Options: []ScenarioOption{
			{ID: "DISCOUNT", Label: "Reduce prices by 50%", RiskLevel: RiskLow, Description: "Lose money but win over the fans."},
			{ID: "IGNORE", Label: "Keep the prices as they are", RiskLevel: RiskMedium, Description: "Maintain income and ignore the demands."},
		},
	},
	{
		ID: "MEDICAL_RISK", Category: ScenarioMedical,
		Title:       "Return of the Injured Star",
		Description: "Your star player wants to play in the next match even though he is not 100% fit. The doctor has warned against it.",
		Options: []ScenarioOption{
			{ID: "PLAY", Label: "Take the risk and play him", RiskLevel: RiskHigh, Description: "He might shine or his injury could worsen."},
			{ID: "REST", Label: "Rest him completely", RiskLevel: RiskLow, Description: "Play without him to ensure his safety."},
		},
	},
	{
		ID: "YOUTH_DEMAND", Category: ScenarioDiscipline,
		Title:       "Youth Talent Rebellion",
		Description: "One of your promising academy players is threatening to leave for a rival club if he is not promoted to the first team immediately.",
		Options: []ScenarioOption{
			{ID: "PROMOTE", Label: "Promote him immediately", RiskLevel: RiskMedium, Description: "He might not be technically ready."},
			{ID: "REJECT", Label: "Refuse and ask him to wait", RiskLevel: RiskHigh, Description: "We might lose the player forever."},
		},
	},
	{
		ID: "TACTICAL_LEAK", Category: ScenarioTactical,
		Title:       "Tactics Leaked",
		Description: "It seems the plan for the next match has been leaked to the press. Do you change tactics at the last minute?",
		Options: []ScenarioOption{
			{ID: "CHANGE", Label: "Change the plan completely", RiskLevel: RiskMedium, Description: "Confuse the opponent, but the players are not used to it."},
			{ID: "KEEP", Label: "Stick to the plan", RiskLevel: RiskHigh, Description: "The opponent knows how we will play."},
		},
	},
	{
		ID: "CHARITY_EVENT", Category: ScenarioMedia,
		Title:       "Charity Match",
		Description: "An invitation to participate in a charity exhibition match mid-week.",
		Options: []ScenarioOption{
			{ID: "ACCEPT", Label: "Participate", RiskLevel: RiskMedium, Description: "Improve reputation but fatigue the players."},
			{ID: "REJECT", Label: "Decline", RiskLevel: RiskLow, Description: "Focus on the league."},
		},
	},
	{
		ID: "FACILITY_ISSUE", Category: ScenarioFinance,
		Title:       "Stadium Malfunction",
		Description: "The stadium's irrigation system has broken down and needs immediate, costly maintenance.",
		Options: []ScenarioOption{
			{ID: "FIX_NOW", Label: "Fix immediately (high cost)", RiskLevel: RiskLow, Description: "Pay a large sum to maintain pitch quality."},
			{ID: "DELAY", Label: "Postpone the fix", RiskLevel: RiskHigh, Description: "Save money but risk more injuries."},
		},
	},
	{
		ID: "SCOUT_TIP", Category: ScenarioTactical,
		Title:       "Scout's Tip",
		Description: "The chief scout insists he has found a flaw in the next opponent's defense and recommends an all-out attack.",
		Options: []ScenarioOption{
			{ID: "TRUST", Label: "Change tactics to attacking", RiskLevel: RiskMedium, Description: "Trust the report."},
			{ID: "IGNORE", Label: "Stick to your balanced plan", RiskLevel: RiskLow, Description: "Don't take the risk."},
		},
	},
}

// RandomScenario picks from the catalogue.
func RandomScenario(src *Source) Scenario {
	return Pick(src, Scenarios)
}

// ScenarioByID looks up a catalogue entry.
func ScenarioByID(id string) (Scenario, bool) {
	for _, s := range Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// ResolveScenario rolls the outcome for a scenario decision. Each
// scenario/option pair keeps its hand-authored success probability and
// effect magnitudes.
func ResolveScenario(src *Source, team domain.Team, scenarioID, optionID string) ScenarioResult {
	if _, ok := ScenarioByID(scenarioID); !ok {
		return ScenarioResult{Success: false, Message: "An error occurred"}
	}

	switch scenarioID {
	case "MEDIA_INTERVIEW":
		if optionID == "CALM" {
			return ScenarioResult{
				Success: true,
				Message: "Your balanced statements were respected by everyone and increased the players' focus.",
				Changes: Changes{MoraleDelta: 5},
			}
		}
		if src.Chance(0.40) {
			return ScenarioResult{
				Success: true,
				Message: "The mind games worked! The players are very motivated to prove you right.",
				Changes: Changes{MoraleDelta: 15},
			}
		}
		return ScenarioResult{
			Success: false,
			Message: "The plan backfired. The statements put immense pressure on the team.",
			Changes: Changes{MoraleDelta: -10},
		}

	case "PLAYER_PARTY":
		if optionID == "FINE" {
			return ScenarioResult{
				Success: true,
				Message: "Strictness is necessary. The team appreciates the fairness, and the player remained silent.",
				Changes: Changes{BudgetDelta: 0.5, MoraleDelta: 2},
			}
		}
		if src.Chance(0.50) {
			return ScenarioResult{
				Success: true,
				Message: "The player appreciated your stance and promised to make it up on the field.",
				Changes: Changes{MoraleDelta: 2},
			}
		}
		return ScenarioResult{
			Success: false,
			Message: "Your leniency led to chaos in the dressing room. Other players are demanding the same treatment.",
			Changes: Changes{MoraleDelta: -5},
		}

	case "SPONSOR_DEAL":
		if optionID == "ACCEPT" {
			if src.Chance(0.30) {
				return ScenarioResult{
					Success: true,
					Message: "A winning gamble! The company is legitimate and you've received a huge financial boost.",
					Changes: Changes{BudgetDelta: 15},
				}
			}
			return ScenarioResult{
				Success: false,
				Message: "Disaster! The company declared bankruptcy and didn't pay, and the club faced harsh criticism.",
				Changes: Changes{MoraleDelta: -5},
			}
		}
		return ScenarioResult{
			Success: true,
			Message: "A wise decision. It was later revealed that the company was facing legal issues.",
		}

	case "FAN_PROTEST":
		if optionID == "DISCOUNT" {
			return ScenarioResult{
				Success: true,
				Message: "The fans are thrilled with your decision! Morale is sky-high.",
				Changes: Changes{BudgetDelta: -2, MoraleDelta: 10},
			}
		}
		return ScenarioResult{
			Success: false,
			Message: "The fans are furious and have decided to protest by staying silent for the first 15 minutes.",
			Changes: Changes{MoraleDelta: -5},
		}

	case "MEDICAL_RISK":
		if optionID == "PLAY" {
			if src.Chance(0.30) {
				return ScenarioResult{
					Success: true,
					Message: "A successful gamble! The player delivered a legendary performance and boosted team morale.",
					Changes: Changes{MoraleDelta: 10},
				}
			}
			return ScenarioResult{
				Success: false,
				Message: "What we feared has happened. The injury has been aggravated, and the player will be out for longer.",
				Changes: Changes{InjureStarWeeks: 4},
			}
		}
		return ScenarioResult{
			Success: true,
			Message: "The player understood the situation. The rest will allow him to come back stronger in the upcoming matches.",
			Changes: Changes{HealWeeks: 1},
		}

	default:
		if optionID == "ACCEPT" || optionID == "FIX_NOW" || optionID == "DISCOUNT" {
			return ScenarioResult{Success: true, Message: "The decision has been executed successfully."}
		}
		if src.Chance(0.50) {
			return ScenarioResult{Success: true, Message: "The decision was the right one and saved the team from potential trouble."}
		}
		return ScenarioResult{Success: false, Message: "The decision wasn't ideal, but the team will overcome it."}
	}
}

// ApplyScenarioChanges folds a scenario outcome into a team copy. Morale is
// clamped to [0,100]; the star-injury effect lands on the highest rated
// player.
func ApplyScenarioChanges(team domain.Team, changes Changes) domain.Team {
	team.Budget += changes.BudgetDelta

	players := make([]domain.Player, len(team.Players))
	copy(players, team.Players)

	if changes.MoraleDelta != 0 {
		for i := range players {
			players[i].Morale = clamp(players[i].Morale+changes.MoraleDelta, 0, 100)
		}
	}
	if changes.HealWeeks > 0 {
		for i := range players {
			players[i].InjuryWeeks = max(0, players[i].InjuryWeeks-changes.HealWeeks)
		}
	}
	if changes.InjureStarWeeks > 0 && len(players) > 0 {
		star := 0
		for i := range players {
			if players[i].Rating > players[star].Rating {
				star = i
			}
		}
		players[star].InjuryWeeks += changes.InjureStarWeeks
	}

	team.Players = players
	return team
}
