package service

import (
	"context"
	"fmt"

	"github.com/emberlore/codex/internal/codex"
	"github.com/emberlore/codex/internal/model"
)

// ItemService reads and writes inventory items.
type ItemService struct {
	client *codex.Client
}

// NewItemService creates a new item service.
func NewItemService(client *codex.Client) *ItemService {
	return &ItemService{client: client}
}

// All fetches a collection page of items.
func (s *ItemService) All(ctx context.Context, q codex.Query) (*model.Response[[]model.Item], error) {
	var out model.Response[[]model.Item]
	if err := s.client.Get(ctx, "/items", q, &out); err != nil {
		return nil, fmt.Errorf("fetching items: %w", err)
	}
	return &out, nil
}

// ByID fetches one item.
func (s *ItemService) ByID(ctx context.Context, id int, q codex.Query) (*model.Response[model.Item], error) {
	if id <= 0 {
		return nil, fmt.Errorf("fetching item %d: %w", id, ErrInvalidID)
	}
	var out model.Response[model.Item]
	if err := s.client.Get(ctx, fmt.Sprintf("/items/%d", id), q, &out); err != nil {
		return nil, fmt.Errorf("fetching item %d: %w", id, err)
	}
	return &out, nil
}

// ByType fetches items of one type. Like PlaceService.ByWorld, the type
// filter is injected ahead of caller-supplied filters.
func (s *ItemService) ByType(ctx context.Context, itemType model.ItemType, q codex.Query) (*model.Response[[]model.Item], error) {
	if itemType == "" {
		return nil, fmt.Errorf("fetching items by type: %w", ErrMissingKey)
	}
	return s.filtered(ctx, "Type", string(itemType), q, fmt.Sprintf("fetching items of type %s", itemType))
}

// ByRarity fetches items of one rarity tier.
func (s *ItemService) ByRarity(ctx context.Context, rarity model.ItemRarity, q codex.Query) (*model.Response[[]model.Item], error) {
	if rarity == "" {
		return nil, fmt.Errorf("fetching items by rarity: %w", ErrMissingKey)
	}
	return s.filtered(ctx, "Rarity", string(rarity), q, fmt.Sprintf("fetching items of rarity %s", rarity))
}

func (s *ItemService) filtered(ctx context.Context, field, value string, q codex.Query, opDesc string) (*model.Response[[]model.Item], error) {
	raw := codex.Query{Filters: map[string]string{field: value}}.Encode()
	if qs := q.Encode(); qs != "" {
		raw += "&" + qs
	}
	var out model.Response[[]model.Item]
	if err := s.client.Get(ctx, "/items", codex.RawQuery(raw), &out); err != nil {
		return nil, fmt.Errorf("%s: %w", opDesc, err)
	}
	return &out, nil
}

// Create creates an item from the given attributes.
func (s *ItemService) Create(ctx context.Context, attrs model.ItemAttributes) (*model.Response[model.Item], error) {
	var out model.Response[model.Item]
	if err := s.client.Post(ctx, "/items", model.WriteRequest[model.ItemAttributes]{Data: attrs}, &out); err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	return &out, nil
}

// Update replaces the attributes of an existing item.
func (s *ItemService) Update(ctx context.Context, id int, attrs model.ItemAttributes) (*model.Response[model.Item], error) {
	if id <= 0 {
		return nil, fmt.Errorf("updating item %d: %w", id, ErrInvalidID)
	}
	var out model.Response[model.Item]
	if err := s.client.Put(ctx, fmt.Sprintf("/items/%d", id), model.WriteRequest[model.ItemAttributes]{Data: attrs}, &out); err != nil {
		return nil, fmt.Errorf("updating item %d: %w", id, err)
	}
	return &out, nil
}

// Delete removes an item.
func (s *ItemService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return fmt.Errorf("deleting item %d: %w", id, ErrInvalidID)
	}
	if err := s.client.Delete(ctx, fmt.Sprintf("/items/%d", id)); err != nil {
		return fmt.Errorf("deleting item %d: %w", id, err)
	}
	return nil
}
