// internal/httpserver/server.go
//
// Read-only diagnostics endpoint for a running text-games process.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - "/" and "/health" for liveness.
//   - "/debug/world": the loaded adventure map (rooms, coordinates, exits).
//   - "/debug/scores": best scores recorded during this process.
//
// Notes:
//   - Nothing here changes game state; games are only played on the terminal.
//   - Only started when DIAG_ADDR is set.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/text-games/apps/go-cli/internal/store"
	"github.com/robalobadob/text-games/apps/go-cli/internal/world"
)

// ScoreKeys lists the scoreboard entries reported by /debug/scores.
var ScoreKeys = []string{"guess"}

// Server bundles the router with the state it reports on.
type Server struct {
	r      *chi.Mux
	m      *world.Map
	start  world.Room
	scores store.Scoreboard
}

// New constructs a Server, installs middleware, and registers routes.
func New(m *world.Map, start world.Room, scores store.Scoreboard) *Server {
	s := &Server{r: chi.NewRouter(), m: m, start: start, scores: scores}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                // add X-Request-ID
	s.r.Use(chimw.Recoverer)                // recover from panics
	s.r.Use(chimw.Timeout(5 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"text-games","endpoints":["/health","/debug/world","/debug/scores"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/world", s.handleWorld)
	s.r.Get("/debug/scores", s.handleScores)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// roomView is one room in the /debug/world payload.
type roomView struct {
	Name        string   `json:"name"`
	X           int      `json:"x"`
	Y           int      `json:"y"`
	Description string   `json:"description"`
	Exits       []string `json:"exits"`
}

type worldView struct {
	Start string     `json:"start"`
	Rooms []roomView `json:"rooms"`
}

func (s *Server) handleWorld(w http.ResponseWriter, r *http.Request) {
	out := worldView{Start: s.start.Name()}
	for _, room := range s.m.Rooms() {
		exits := []string{}
		for _, n := range s.m.Neighbours(room) {
			exits = append(exits, n.Name())
		}
		out.Rooms = append(out.Rooms, roomView{
			Name:        room.Name(),
			X:           room.Coord().X,
			Y:           room.Coord().Y,
			Description: room.Description(),
			Exits:       exits,
		})
	}
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	out := make(map[string]int, len(ScoreKeys))
	for _, k := range ScoreKeys {
		best, ok, err := s.scores.Best(r.Context(), k)
		if err != nil {
			log.Error().Err(err).Str("game", k).Msg("read best score")
			http.Error(w, `{"error":"scores_unavailable"}`, http.StatusInternalServerError)
			return
		}
		if ok {
			out[k] = best
		}
	}
	_ = json.NewEncoder(w).Encode(out)
}
