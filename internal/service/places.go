package service

import (
	"context"
	"fmt"

	"github.com/emberlore/codex/internal/codex"
	"github.com/emberlore/codex/internal/model"
)

// PlaceService reads and writes place entities.
type PlaceService struct {
	client *codex.Client
}

// NewPlaceService creates a new place service.
func NewPlaceService(client *codex.Client) *PlaceService {
	return &PlaceService{client: client}
}

// All fetches a collection page of places.
func (s *PlaceService) All(ctx context.Context, q codex.Query) (*model.Response[[]model.Place], error) {
	var out model.Response[[]model.Place]
	if err := s.client.Get(ctx, "/places", q, &out); err != nil {
		return nil, fmt.Errorf("fetching places: %w", err)
	}
	return &out, nil
}

// ByID fetches one place.
func (s *PlaceService) ByID(ctx context.Context, id int, q codex.Query) (*model.Response[model.Place], error) {
	if id <= 0 {
		return nil, fmt.Errorf("fetching place %d: %w", id, ErrInvalidID)
	}
	var out model.Response[model.Place]
	if err := s.client.Get(ctx, fmt.Sprintf("/places/%d", id), q, &out); err != nil {
		return nil, fmt.Errorf("fetching place %d: %w", id, err)
	}
	return &out, nil
}

// ByWorld fetches the places of one world. The world filter is injected
// positionally ahead of any caller-supplied filters, so a caller filter
// on "world" is duplicated, not overridden.
func (s *PlaceService) ByWorld(ctx context.Context, worldID int, q codex.Query) (*model.Response[[]model.Place], error) {
	if worldID <= 0 {
		return nil, fmt.Errorf("fetching places for world %d: %w", worldID, ErrInvalidID)
	}
	raw := fmt.Sprintf("filters[world]=%d", worldID)
	if qs := q.Encode(); qs != "" {
		raw += "&" + qs
	}
	var out model.Response[[]model.Place]
	if err := s.client.Get(ctx, "/places", codex.RawQuery(raw), &out); err != nil {
		return nil, fmt.Errorf("fetching places for world %d: %w", worldID, err)
	}
	return &out, nil
}

// Create creates a place from the given attributes.
func (s *PlaceService) Create(ctx context.Context, attrs model.PlaceAttributes) (*model.Response[model.Place], error) {
	var out model.Response[model.Place]
	if err := s.client.Post(ctx, "/places", model.WriteRequest[model.PlaceAttributes]{Data: attrs}, &out); err != nil {
		return nil, fmt.Errorf("creating place: %w", err)
	}
	return &out, nil
}

// Update replaces the attributes of an existing place.
func (s *PlaceService) Update(ctx context.Context, id int, attrs model.PlaceAttributes) (*model.Response[model.Place], error) {
	if id <= 0 {
		return nil, fmt.Errorf("updating place %d: %w", id, ErrInvalidID)
	}
	var out model.Response[model.Place]
	if err := s.client.Put(ctx, fmt.Sprintf("/places/%d", id), model.WriteRequest[model.PlaceAttributes]{Data: attrs}, &out); err != nil {
		return nil, fmt.Errorf("updating place %d: %w", id, err)
	}
	return &out, nil
}

// Delete removes a place.
func (s *PlaceService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("deleting place %d: %w", id, ErrInvalidID)
	}
	if err := s.client.Delete(ctx, fmt.Sprintf("/places/%d", id)); err != nil {
		return fmt.Errorf("deleting place %d: %w", id, err)
	}
	return nil
}
