package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"clubsim/internal/domain"
	"clubsim/internal/sim"
)

// One simulated minute takes this long at 1x playback.
const minutePlaybackInterval = 800 * time.Millisecond

type watchFrame struct {
	Type   string                     `json:"type"` // "event" or "result"
	Event  *domain.MatchEvent         `json:"event,omitempty"`
	Result *sim.MatchSimulationResult `json:"result,omitempty"`
}

// handleWatch streams a live match timeline over a WebSocket, one event at
// a time, paced by the simulated minute gaps. Query parameters:
//
//	speed  playback multiplier, default 1
//	from   resume minute; re-simulates the remainder with current tactics
//
// Without "from" a fresh session is started. The score at the resume point
// comes from the stored session, never the client. The connection closes
// after the result frame; completing the fixture stays a separate REST call
// so the client can review the final whistle first.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["id"]
	q := r.URL.Query()

	speed, _ := strconv.ParseFloat(q.Get("speed"), 64)
	if speed < 1 || speed > 100 {
		speed = 1
	}

	var result sim.MatchSimulationResult
	var err error
	if fromStr := q.Get("from"); fromStr != "" {
		from, _ := strconv.Atoi(fromStr)
		result, err = s.campaign.ResumeLiveMatch(matchID, from)
	} else {
		result, err = s.campaign.StartLiveMatch(matchID)
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Discard client frames but notice a closed connection.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	interval := time.Duration(float64(minutePlaybackInterval) / speed)
	lastMinute := -1
	for i := range result.Timeline {
		ev := result.Timeline[i]
		if lastMinute >= 0 && ev.Minute > lastMinute {
			gap := time.Duration(ev.Minute-lastMinute) * interval
			select {
			case <-time.After(gap):
			case <-closed:
				return
			case <-r.Context().Done():
				return
			}
		}
		lastMinute = ev.Minute

		if err := conn.WriteJSON(watchFrame{Type: "event", Event: &ev}); err != nil {
			s.log.Debug().Err(err).Str("match_id", matchID).Msg("watch stream closed by client")
			return
		}
	}

	if err := conn.WriteJSON(watchFrame{Type: "result", Result: &result}); err != nil {
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "full time"))
}
