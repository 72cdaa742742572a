package service

import (
	"context"
	"fmt"

	"github.com/emberlore/codex/internal/codex"
	"github.com/emberlore/codex/internal/model"
)

// MonsterService reads and writes bestiary entries.
type MonsterService struct {
	client *codex.Client
}

// NewMonsterService creates a new monster service.
func NewMonsterService(client *codex.Client) *MonsterService {
	return &MonsterService{client: client}
}

// All fetches a collection page of monsters.
func (s *MonsterService) All(ctx context.Context, q codex.Query) (*model.Response[[]model.Monster], error) {
	var out model.Response[[]model.Monster]
	if err := s.client.Get(ctx, "/monsters", q, &out); err != nil {
		return nil, fmt.Errorf("fetching monsters: %w", err)
	}
	return &out, nil
}

// ByID fetches one monster.
func (s *MonsterService) ByID(ctx context.Context, id int, q codex.Query) (*model.Response[model.Monster], error) {
	if id <= 0 {
		return nil, fmt.Errorf("fetching monster %d: %w", id, ErrInvalidID)
	}
	var out model.Response[model.Monster]
	if err := s.client.Get(ctx, fmt.Sprintf("/monsters/%d", id), q, &out); err != nil {
		return nil, fmt.Errorf("fetching monster %d: %w", id, err)
	}
	return &out, nil
}

// Create creates a monster from the given attributes.
func (s *MonsterService) Create(ctx context.Context, attrs model.MonsterAttributes) (*model.Response[model.Monster], error) {
	var out model.Response[model.Monster]
	if err := s.client.Post(ctx, "/monsters", model.WriteRequest[model.MonsterAttributes]{Data: attrs}, &out); err != nil {
		return nil, fmt.Errorf("creating monster: %w", err)
	}
	return &out, nil
}

// Update replaces the attributes of an existing monster.
func (s *MonsterService) Update(ctx context.Context, id int, attrs model.MonsterAttributes) (*model.Response[model.Monster], error) {
	if id <= 0 {
		return nil, fmt.Errorf("updating monster %d: %w", id, ErrInvalidID)
	}
	var out model.Response[model.Monster]
	if err := s.client.Put(ctx, fmt.Sprintf("/monsters/%d", id), model.WriteRequest[model.MonsterAttributes]{Data: attrs}, &out); err != nil {
		return nil, fmt.Errorf("updating monster %d: %w", id, err)
	}
	return &out, nil
}

// Delete removes a monster.
func (s *MonsterService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("deleting monster %d: %w", id, ErrInvalidID)
	}
	if err := s.client.Delete(ctx, fmt.Sprintf("/monsters/%d", id)); err != nil {
		return fmt.Errorf("deleting monster %d: %w", id, err)
	}
	return nil
}
