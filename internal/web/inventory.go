package web

import (
	"net/http"

	"github.com/emberlore/codex/internal/fetch"
	"github.com/emberlore/codex/internal/model"
)

// inventoryPage carries the filtered item list plus the active filters
// so the template can mark them selected.
type inventoryPage struct {
	Items  fetch.State[[]model.Item]
	Type   model.ItemType
	Rarity model.ItemRarity

	Types    []model.ItemType
	Rarities []model.ItemRarity
}

// handleInventory renders the item catalog, optionally narrowed by
// ?type= and ?rarity= query parameters. Unknown filter values are
// ignored rather than forwarded to the backend.
func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	pg := inventoryPage{
		Types: []model.ItemType{
			model.ItemTypeWeapon, model.ItemTypeArmor, model.ItemTypeConsumable,
			model.ItemTypeKey, model.ItemTypeMisc,
		},
		Rarities: []model.ItemRarity{
			model.ItemRarityCommon, model.ItemRarityUncommon, model.ItemRarityRare,
			model.ItemRarityEpic, model.ItemRarityLegendary,
		},
	}

	if t := model.ItemType(r.URL.Query().Get("type")); t.IsKnown() {
		pg.Type = t
	}
	if rar := model.ItemRarity(r.URL.Query().Get("rarity")); rar.IsKnown() {
		pg.Rarity = rar
	}

	ctx := r.Context()
	switch {
	case pg.Type != "":
		pg.Items = fetch.ItemsByType(s.items).Load(ctx, pg.Type)
	case pg.Rarity != "":
		pg.Items = fetch.ItemsByRarity(s.items).Load(ctx, pg.Rarity)
	default:
		pg.Items = fetch.Items(s.items).Load(ctx)
	}

	s.render(w, r, "inventory.html", "Inventory", pg)
}
