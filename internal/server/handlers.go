package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"clubsim/internal/domain"
	"clubsim/internal/game"
)

// negotiationDelay makes the selling club appear to deliberate.
const negotiationDelay = 1500 * time.Millisecond

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.campaign.Snapshot()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(snapshot)
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var setup game.NewGameSetup
	if !s.decode(w, r, &setup) {
		return
	}
	if err := s.campaign.InitializeNewGame(setup); err != nil {
		s.writeError(w, err)
		return
	}
	snapshot, err := s.campaign.Snapshot()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, _ = w.Write(snapshot)
}

func (s *Server) handleDeleteSave(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.campaign.AdvanceWeek(nil)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleClock(w http.ResponseWriter, r *http.Request) {
	info, err := s.campaign.Clock(time.Now())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleGodMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	s.campaign.SetGodMode(req.Enabled)
	s.writeJSON(w, http.StatusOK, map[string]any{"god_mode": req.Enabled})
}

func (s *Server) handleToasts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"toasts": s.toasts.Drain()})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	rows, err := s.campaign.Table()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"table": rows, "count": len(rows)})
}

func (s *Server) handleFixtures(w http.ResponseWriter, r *http.Request) {
	fixtures, err := s.campaign.Fixtures()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"fixtures": fixtures, "count": len(fixtures)})
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.campaign.Teams()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"teams": teams, "count": len(teams)})
}

func (s *Server) handleTeam(w http.ResponseWriter, r *http.Request) {
	team, err := s.campaign.Team(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, team)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	news, err := s.campaign.News()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"news": news, "count": len(news)})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := s.campaign.History()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"history": history, "count": len(history)})
}

func (s *Server) handleFinanceProjection(w http.ResponseWriter, r *http.Request) {
	report, err := s.campaign.FinanceProjection()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	sponsors, scouts, err := s.campaign.Market()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"sponsors": sponsors, "scouts": scouts})
}

func (s *Server) handleStartLive(w http.ResponseWriter, r *http.Request) {
	result, err := s.campaign.StartLiveMatch(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleResumeLive(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FromMinute int `json:"from_minute"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	result, err := s.campaign.ResumeLiveMatch(mux.Vars(r)["id"], req.FromMinute)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCompleteLive(w http.ResponseWriter, r *http.Request) {
	outcome, err := s.campaign.CompleteLiveMatch(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, outcome)
}

func (s *Server) handleTactics(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Formation    string `json:"formation"`
		TacticStyle  string `json:"tactic_style"`
		AttackFocus  string `json:"attack_focus"`
		PassingStyle string `json:"passing_style"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.UpdateTactics(req.Formation, req.TacticStyle, req.AttackFocus, req.PassingStyle); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

func (s *Server) handleLineup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerIDs []string `json:"player_ids"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.UpdateLineup(req.PlayerIDs); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

func (s *Server) handleSetPieces(w http.ResponseWriter, r *http.Request) {
	var req domain.SetPieceTakers
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.UpdateSetPieceTakers(req); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

func (s *Server) handleTraining(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Drill     string   `json:"drill"`
		PlayerIDs []string `json:"player_ids"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.AssignDrill(req.Drill, req.PlayerIDs); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

func (s *Server) handleUnlockDrill(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Drill string `json:"drill"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.UnlockDrill(req.Drill); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"unlocked": true})
}

func (s *Server) handleUpgradeFacility(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Category string  `json:"category"`
		SubType  string  `json:"sub_type"`
		Cost     float64 `json:"cost"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.UpgradeFacility(req.Category, req.SubType, req.Cost); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"upgraded": true})
}

func (s *Server) handleSignSponsor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SponsorID string `json:"sponsor_id"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.SignSponsor(req.SponsorID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"signed": true})
}

func (s *Server) handleTeamInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name    string `json:"name"`
		Manager string `json:"manager"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.UpdateTeamInfo(req.Name, req.Manager); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

func (s *Server) handleHireScout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ScoutID string `json:"scout_id"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.HireScout(req.ScoutID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"hired": true})
}

func (s *Server) handleFireScout(w http.ResponseWriter, r *http.Request) {
	if err := s.campaign.FireScout(mux.Vars(r)["id"]); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"fired": true})
}

func (s *Server) handleAssignScout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"player_id"`
		ScoutID  string `json:"scout_id"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	report, err := s.campaign.AssignScout(req.PlayerID, req.ScoutID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleSpawnYouth(w http.ResponseWriter, r *http.Request) {
	batch, err := s.campaign.SpawnYouth()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"players": batch, "count": len(batch)})
}

func (s *Server) handlePromoteYouth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string `json:"player_id"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.PromoteYouth(req.PlayerID); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"promoted": true})
}

func (s *Server) handleTransferOffer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TeamID   string  `json:"team_id"`
		PlayerID string  `json:"player_id"`
		Amount   float64 `json:"amount"`
	}
	if !s.decode(w, r, &req) {
		return
	}

	// The selling club "thinks it over" before answering.
	select {
	case <-time.After(negotiationDelay):
	case <-r.Context().Done():
		return
	}

	result, err := s.campaign.NegotiateTransfer(req.TeamID, req.PlayerID, req.Amount)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleTransferList(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Listed bool `json:"listed"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.campaign.SetTransferListed(mux.Vars(r)["id"], req.Listed); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"listed": req.Listed})
}

func (s *Server) handleScenario(w http.ResponseWriter, r *http.Request) {
	scenario := s.campaign.ActiveScenario()
	if scenario == nil {
		s.writeJSON(w, http.StatusOK, map[string]any{"scenario": nil})
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"scenario": scenario})
}

func (s *Server) handleScenarioDecision(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OptionID string `json:"option_id"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	result, err := s.campaign.DecideScenario(req.OptionID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDismissScenario(w http.ResponseWriter, r *http.Request) {
	s.campaign.DismissScenario()
	s.writeJSON(w, http.StatusOK, map[string]any{"dismissed": true})
}
