package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/emberlore/codex/internal/codex"
	"github.com/emberlore/codex/internal/model"
)

// DataService assembles page-level bundles from multiple entity fetches.
// It is fail-open: a constituent failure is logged and replaced with an
// empty collection, so the bundle itself always resolves and pages always
// render.
type DataService struct {
	worlds   *WorldService
	places   *PlaceService
	monsters *MonsterService
	log      *slog.Logger
}

// NewDataService creates a new aggregate data service.
func NewDataService(worlds *WorldService, places *PlaceService, monsters *MonsterService, log *slog.Logger) *DataService {
	if log == nil {
		log = slog.Default()
	}
	return &DataService{worlds: worlds, places: places, monsters: monsters, log: log}
}

// HomeData is the bundle behind the home feed.
type HomeData struct {
	Monsters []model.Monster
	Worlds   []model.World
	Places   []model.Place
}

// ExploreData is the bundle behind the world explorer.
type ExploreData struct {
	Worlds []model.World
}

// HomeData fetches monsters, worlds, and places concurrently with full
// population. The bundle is assembled only after all three fetches
// settle; failed constituents contribute empty collections.
func (s *DataService) HomeData(ctx context.Context) HomeData {
	full := codex.Query{Populate: []string{codex.PopulateAll}}

	var bundle HomeData
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		resp, err := s.monsters.All(ctx, full)
		if err != nil {
			s.log.Error("home bundle: monsters unavailable", slog.String("error", err.Error()))
			return
		}
		bundle.Monsters = resp.Data
	}()
	go func() {
		defer wg.Done()
		resp, err := s.worlds.All(ctx, full)
		if err != nil {
			s.log.Error("home bundle: worlds unavailable", slog.String("error", err.Error()))
			return
		}
		bundle.Worlds = resp.Data
	}()
	go func() {
		defer wg.Done()
		resp, err := s.places.All(ctx, full)
		if err != nil {
			s.log.Error("home bundle: places unavailable", slog.String("error", err.Error()))
			return
		}
		bundle.Places = resp.Data
	}()

	wg.Wait()

	if bundle.Monsters == nil {
		bundle.Monsters = []model.Monster{}
	}
	if bundle.Worlds == nil {
		bundle.Worlds = []model.World{}
	}
	if bundle.Places == nil {
		bundle.Places = []model.Place{}
	}
	return bundle
}

// ExploreData fetches worlds with full population, sorted by name
// ascending, with the same fail-open contract as HomeData.
func (s *DataService) ExploreData(ctx context.Context) ExploreData {
	resp, err := s.worlds.All(ctx, codex.Query{
		Populate: []string{codex.PopulateAll},
		Sort:     []string{"Name:asc"},
	})
	if err != nil {
		s.log.Error("explore bundle: worlds unavailable", slog.String("error", err.Error()))
		return ExploreData{Worlds: []model.World{}}
	}
	worlds := resp.Data
	if worlds == nil {
		worlds = []model.World{}
	}
	return ExploreData{Worlds: worlds}
}
