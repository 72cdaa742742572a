package web

import (
	"net/http"
	"strconv"

	"github.com/emberlore/codex/internal/fetch"
	"github.com/emberlore/codex/internal/model"
)

// handleHome renders the home feed. The bundle is fail-open, so the
// page always renders even when the backend is down.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	st := fetch.HomeData(s.data).Load(r.Context())
	s.render(w, r, "home.html", "Emberlore Codex", st)
}

// handleExplore renders the world explorer.
func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	st := fetch.ExploreData(s.data).Load(r.Context())
	s.render(w, r, "explore.html", "Explore", st)
}

// worldPage combines a world with the places filtered to it.
type worldPage struct {
	World  fetch.State[model.World]
	Places fetch.State[[]model.Place]
}

// handleWorld renders one world with its places. An unparseable or
// non-positive id behaves like an unset route parameter: both sections
// render in the loading state without touching the backend.
func (s *Server) handleWorld(w http.ResponseWriter, r *http.Request) {
	id := routeID(r, "worldId")

	pg := worldPage{
		World:  fetch.World(s.worlds).Load(r.Context(), id),
		Places: fetch.PlacesByWorld(s.places).Load(r.Context(), id),
	}

	title := "World"
	if pg.World.Data != nil {
		title = pg.World.Data.Attributes.Name
	}
	s.render(w, r, "world.html", title, pg)
}

// handlePlace renders one place.
func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	st := fetch.Place(s.places).Load(r.Context(), routeID(r, "placeId"))

	title := "Place"
	if st.Data != nil {
		title = st.Data.Attributes.Name
	}
	s.render(w, r, "place.html", title, st)
}

// routeID parses a numeric path value. Garbage and non-positive values
// collapse to zero, the keyed resources' skip sentinel.
func routeID(r *http.Request, name string) int {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil || id < 0 {
		return 0
	}
	return id
}
