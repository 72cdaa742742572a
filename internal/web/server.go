package web

import (
	"log/slog"
	"net/http"

	"github.com/emberlore/codex/internal/fetch"
	"github.com/emberlore/codex/internal/service"
	"github.com/emberlore/codex/internal/session"
)

// Server holds the handlers' shared dependencies.
type Server struct {
	log      *slog.Logger
	data     *service.DataService
	worlds   *service.WorldService
	places   *service.PlaceService
	monsters *service.MonsterService
	items    *service.ItemService
	auth     *service.AuthService
	sessions *session.Store
}

// Deps bundles the constructor arguments for New.
type Deps struct {
	Log      *slog.Logger
	Data     *service.DataService
	Worlds   *service.WorldService
	Places   *service.PlaceService
	Monsters *service.MonsterService
	Items    *service.ItemService
	Auth     *service.AuthService
	Sessions *session.Store
}

// New creates a web server.
func New(d Deps) *Server {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	return &Server{
		log:      d.Log,
		data:     d.Data,
		worlds:   d.Worlds,
		places:   d.Places,
		monsters: d.Monsters,
		items:    d.Items,
		auth:     d.Auth,
		sessions: d.Sessions,
	}
}

// Routes registers all page routes on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /explore", s.handleExplore)
	mux.HandleFunc("GET /explore/{worldId}", s.handleWorld)
	mux.HandleFunc("GET /places/{placeId}", s.handlePlace)
	mux.HandleFunc("GET /monsters", s.handleMonsters)
	mux.HandleFunc("GET /monsters/{monsterId}", s.handleMonster)
	mux.HandleFunc("GET /inventory", s.handleInventory)

	mux.HandleFunc("GET /login", s.handleLoginForm)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /register", s.handleRegisterForm)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /logout", s.handleLogout)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// currentUser resolves the session to a username for the nav bar. No
// session means the lookup is skipped entirely; an invalid or expired
// token reads as anonymous.
func (s *Server) currentUser(r *http.Request) string {
	me := fetch.Me(s.auth).Load(r.Context(), s.sessions.Token(r))
	if me.Err != "" {
		s.log.Debug("session token rejected", slog.String("error", me.Err))
	}
	if me.Data == nil {
		return ""
	}
	return me.Data.Username
}
