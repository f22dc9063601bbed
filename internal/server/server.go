package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"clubsim/internal/config"
	"clubsim/internal/game"
	"clubsim/internal/store"
)

// Server exposes the campaign over HTTP and WebSocket.
type Server struct {
	cfg      *config.Config
	log      zerolog.Logger
	campaign *game.Campaign
	store    *store.SnapshotStore
	toasts   *ToastBuffer
	upgrader websocket.Upgrader
}

func NewServer(cfg *config.Config, logger zerolog.Logger, campaign *game.Campaign, snapshots *store.SnapshotStore, toasts *ToastBuffer) *Server {
	return &Server{
		cfg:      cfg,
		log:      logger.With().Str("component", "server").Logger(),
		campaign: campaign,
		store:    snapshots,
		toasts:   toasts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Router builds the full route table.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(RequestID(s.log))

	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Campaign lifecycle
	api.HandleFunc("/state", s.handleState).Methods("GET")
	api.HandleFunc("/new-game", s.handleNewGame).Methods("POST")
	api.HandleFunc("/save", s.handleDeleteSave).Methods("DELETE")
	api.HandleFunc("/advance", s.handleAdvance).Methods("POST")
	api.HandleFunc("/clock", s.handleClock).Methods("GET")
	api.HandleFunc("/god-mode", s.handleGodMode).Methods("POST")
	api.HandleFunc("/toasts", s.handleToasts).Methods("GET")

	// League views
	api.HandleFunc("/table", s.handleTable).Methods("GET")
	api.HandleFunc("/fixtures", s.handleFixtures).Methods("GET")
	api.HandleFunc("/teams", s.handleTeams).Methods("GET")
	api.HandleFunc("/teams/{id}", s.handleTeam).Methods("GET")
	api.HandleFunc("/news", s.handleNews).Methods("GET")
	api.HandleFunc("/history", s.handleHistory).Methods("GET")
	api.HandleFunc("/finances/projection", s.handleFinanceProjection).Methods("GET")
	api.HandleFunc("/market", s.handleMarket).Methods("GET")

	// Live matches
	api.HandleFunc("/matches/{id}/live", s.handleStartLive).Methods("POST")
	api.HandleFunc("/matches/{id}/resume", s.handleResumeLive).Methods("POST")
	api.HandleFunc("/matches/{id}/complete", s.handleCompleteLive).Methods("POST")
	api.HandleFunc("/matches/{id}/watch", s.handleWatch)

	// Club management
	api.HandleFunc("/team/tactics", s.handleTactics).Methods("POST")
	api.HandleFunc("/team/lineup", s.handleLineup).Methods("POST")
	api.HandleFunc("/team/set-pieces", s.handleSetPieces).Methods("POST")
	api.HandleFunc("/team/training", s.handleTraining).Methods("POST")
	api.HandleFunc("/team/drills/unlock", s.handleUnlockDrill).Methods("POST")
	api.HandleFunc("/team/facilities/upgrade", s.handleUpgradeFacility).Methods("POST")
	api.HandleFunc("/team/sponsor", s.handleSignSponsor).Methods("POST")
	api.HandleFunc("/team/info", s.handleTeamInfo).Methods("POST")

	// Scouting and academy
	api.HandleFunc("/team/scouts/hire", s.handleHireScout).Methods("POST")
	api.HandleFunc("/team/scouts/{id}", s.handleFireScout).Methods("DELETE")
	api.HandleFunc("/team/scouts/assign", s.handleAssignScout).Methods("POST")
	api.HandleFunc("/team/academy/spawn", s.handleSpawnYouth).Methods("POST")
	api.HandleFunc("/team/academy/promote", s.handlePromoteYouth).Methods("POST")

	// Transfers
	api.HandleFunc("/transfers/offer", s.handleTransferOffer).Methods("POST")
	api.HandleFunc("/team/players/{id}/transfer-list", s.handleTransferList).Methods("POST")

	// Scenarios
	api.HandleFunc("/scenario", s.handleScenario).Methods("GET")
	api.HandleFunc("/scenario/decision", s.handleScenarioDecision).Methods("POST")
	api.HandleFunc("/scenario", s.handleDismissScenario).Methods("DELETE")

	return router
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps campaign errors onto HTTP statuses. Gameplay failures
// that are modeled as data never reach this path.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrNoCampaign):
		status = http.StatusConflict
	case errors.Is(err, game.ErrGameOver):
		status = http.StatusConflict
	case errors.Is(err, game.ErrTeamNotFound),
		errors.Is(err, game.ErrMatchNotFound),
		errors.Is(err, game.ErrPlayerNotFound),
		errors.Is(err, game.ErrScoutNotFound),
		errors.Is(err, game.ErrSponsorNotFound),
		errors.Is(err, game.ErrNoLiveSession),
		errors.Is(err, game.ErrNoActiveScenario):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrInsufficientBudget),
		errors.Is(err, game.ErrScoutLimitReached),
		errors.Is(err, game.ErrSpawnCooldown),
		errors.Is(err, game.ErrRequirementsNotMet),
		errors.Is(err, game.ErrDrillLocked),
		errors.Is(err, game.ErrNoUnlockPoints),
		errors.Is(err, game.ErrMatchPlayed),
		errors.Is(err, game.ErrMatchNotDue):
		status = http.StatusUnprocessableEntity
	}
	s.writeJSON(w, status, map[string]any{"error": err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return false
	}
	return true
}
