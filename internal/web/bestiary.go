package web

import (
	"net/http"

	"github.com/emberlore/codex/internal/fetch"
)

// handleMonsters renders the bestiary index.
func (s *Server) handleMonsters(w http.ResponseWriter, r *http.Request) {
	st := fetch.Monsters(s.monsters).Load(r.Context())
	s.render(w, r, "monsters.html", "Bestiary", st)
}

// handleMonster renders one bestiary entry.
func (s *Server) handleMonster(w http.ResponseWriter, r *http.Request) {
	st := fetch.Monster(s.monsters).Load(r.Context(), routeID(r, "monsterId"))

	title := "Monster"
	if st.Data != nil {
		title = st.Data.Attributes.Name
	}
	s.render(w, r, "monster.html", title, st)
}
