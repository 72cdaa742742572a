package fetch

import (
	"context"

	"github.com/emberlore/codex/internal/codex"
	"github.com/emberlore/codex/internal/model"
	"github.com/emberlore/codex/internal/service"
)

// The constructors below bind resources to the service layer with the
// population and sorting each page wants. Handlers create one per
// request, Load it, and hand the snapshot to a template.

func fullyPopulated() codex.Query {
	return codex.Query{Populate: []string{codex.PopulateAll}}
}

// HomeData tracks the home feed bundle.
func HomeData(ds *service.DataService) *Resource[service.HomeData] {
	return NewResource(func(ctx context.Context) (*service.HomeData, error) {
		bundle := ds.HomeData(ctx)
		return &bundle, nil
	})
}

// ExploreData tracks the world explorer bundle.
func ExploreData(ds *service.DataService) *Resource[service.ExploreData] {
	return NewResource(func(ctx context.Context) (*service.ExploreData, error) {
		bundle := ds.ExploreData(ctx)
		return &bundle, nil
	})
}

// Worlds tracks the full world collection.
func Worlds(svc *service.WorldService) *Resource[[]model.World] {
	return NewResource(func(ctx context.Context) (*[]model.World, error) {
		resp, err := svc.All(ctx, fullyPopulated())
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
}

// World tracks one world by id.
func World(svc *service.WorldService) *Keyed[int, model.World] {
	return NewKeyed(func(ctx context.Context, id int) (*model.World, error) {
		resp, err := svc.ByID(ctx, id, fullyPopulated())
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
}

// Places tracks the full place collection.
func Places(svc *service.PlaceService) *Resource[[]model.Place] {
	return NewResource(func(ctx context.Context) (*[]model.Place, error) {
		resp, err := svc.All(ctx, fullyPopulated())
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
}

// Place tracks one place by id.
func Place(svc *service.PlaceService) *Keyed[int, model.Place] {
	return NewKeyed(func(ctx context.Context, id int) (*model.Place, error) {
		resp, err := svc.ByID(ctx, id, fullyPopulated())
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
}

// PlacesByWorld tracks the places of one world, keyed by world id.
func PlacesByWorld(svc *service.PlaceService) *Keyed[int, []model.Place] {
	return NewKeyed(func(ctx context.Context, worldID int) (*[]model.Place, error) {
		resp, err := svc.ByWorld(ctx, worldID, fullyPopulated())
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
}

// Monsters tracks the full bestiary.
func Monsters(svc *service.MonsterService) *Resource[[]model.Monster] {
	return NewResource(func(ctx context.Context) (*[]model.Monster, error) {
		resp, err := svc.All(ctx, fullyPopulated())
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
}

// Monster tracks one monster by id.
func Monster(svc *service.MonsterService) *Keyed[int, model.Monster] {
	return NewKeyed(func(ctx context.Context, id int) (*model.Monster, error) {
		resp, err := svc.ByID(ctx, id, fullyPopulated())
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
}

// Items tracks the full item collection.
func Items(svc *service.ItemService) *Resource[[]model.Item] {
	return NewResource(func(ctx context.Context) (*[]model.Item, error) {
		resp, err := svc.All(ctx, fullyPopulated())
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
}

// ItemsByType tracks items filtered to one type. An empty type skips
// the fetch.
func ItemsByType(svc *service.ItemService) *Keyed[model.ItemType, []model.Item] {
	return NewKeyed(func(ctx context.Context, t model.ItemType) (*[]model.Item, error) {
		resp, err := svc.ByType(ctx, t, fullyPopulated())
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
}

// ItemsByRarity tracks items filtered to one rarity tier.
func ItemsByRarity(svc *service.ItemService) *Keyed[model.ItemRarity, []model.Item] {
	return NewKeyed(func(ctx context.Context, r model.ItemRarity) (*[]model.Item, error) {
		resp, err := svc.ByRarity(ctx, r, fullyPopulated())
		if err != nil {
			return nil, err
		}
		return &resp.Data, nil
	})
}

// Login wraps the credential exchange.
func Login(svc *service.AuthService) *Action[model.Credentials, model.AuthResponse] {
	return NewAction(func(ctx context.Context, creds model.Credentials) (*model.AuthResponse, error) {
		return svc.Login(ctx, creds)
	})
}

// Register wraps account creation.
func Register(svc *service.AuthService) *Action[model.Registration, model.AuthResponse] {
	return NewAction(func(ctx context.Context, reg model.Registration) (*model.AuthResponse, error) {
		return svc.Register(ctx, reg)
	})
}

// Me tracks the current user, keyed by bearer token. Without a token
// the resource never fetches, so anonymous pages render loading state
// instead of a guaranteed 401.
func Me(svc *service.AuthService) *Keyed[string, model.AuthUser] {
	return NewKeyed(func(ctx context.Context, token string) (*model.AuthUser, error) {
		return svc.Me(ctx, token)
	})
}
