package service

import (
	"context"
	"fmt"

	"github.com/emberlore/codex/internal/codex"
	"github.com/emberlore/codex/internal/model"
)

// WorldService reads and writes world entities.
type WorldService struct {
	client *codex.Client
}

// NewWorldService creates a new world service.
func NewWorldService(client *codex.Client) *WorldService {
	return &WorldService{client: client}
}

// All fetches a collection page of worlds.
func (s *WorldService) All(ctx context.Context, q codex.Query) (*model.Response[[]model.World], error) {
	var out model.Response[[]model.World]
	if err := s.client.Get(ctx, "/worlds", q, &out); err != nil {
		return nil, fmt.Errorf("fetching worlds: %w", err)
	}
	return &out, nil
}

// ByID fetches one world.
func (s *WorldService) ByID(ctx context.Context, id int, q codex.Query) (*model.Response[model.World], error) {
	if id <= 0 {
		return nil, fmt.Errorf("fetching world %d: %w", id, ErrInvalidID)
	}
	var out model.Response[model.World]
	if err := s.client.Get(ctx, fmt.Sprintf("/worlds/%d", id), q, &out); err != nil {
		return nil, fmt.Errorf("fetching world %d: %w", id, err)
	}
	return &out, nil
}

// Create creates a world from the given attributes.
func (s *WorldService) Create(ctx context.Context, attrs model.WorldAttributes) (*model.Response[model.World], error) {
	var out model.Response[model.World]
	if err := s.client.Post(ctx, "/worlds", model.WriteRequest[model.WorldAttributes]{Data: attrs}, &out); err != nil {
		return nil, fmt.Errorf("creating world: %w", err)
	}
	return &out, nil
}

// Update replaces the attributes of an existing world.
func (s *WorldService) Update(ctx context.Context, id int, attrs model.WorldAttributes) (*model.Response[model.World], error) {
	if id <= 0 {
		return nil, fmt.Errorf("updating world %d: %w", id, ErrInvalidID)
	}
	var out model.Response[model.World]
	if err := s.client.Put(ctx, fmt.Sprintf("/worlds/%d", id), model.WriteRequest[model.WorldAttributes]{Data: attrs}, &out); err != nil {
		return nil, fmt.Errorf("updating world %d: %w", id, err)
	}
	return &out, nil
}

// Delete removes a world.
func (s *WorldService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("deleting world %d: %w", id, ErrInvalidID)
	}
	if err := s.client.Delete(ctx, fmt.Sprintf("/worlds/%d", id)); err != nil {
		return fmt.Errorf("deleting world %d: %w", id, err)
	}
	return nil
}
