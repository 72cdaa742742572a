package model

// ItemType classifies inventory items.
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeKey        ItemType = "key"
	ItemTypeMisc       ItemType = "misc"
)

// IsKnown reports whether the type is one of the documented literals.
func (t ItemType) IsKnown() bool {
	switch t {
	case ItemTypeWeapon, ItemTypeArmor, ItemTypeConsumable, ItemTypeKey, ItemTypeMisc:
		return true
	}
	return false
}

// ItemRarity is the rarity tier of an item.
type ItemRarity string

const (
	ItemRarityCommon    ItemRarity = "common"
	ItemRarityUncommon  ItemRarity = "uncommon"
	ItemRarityRare      ItemRarity = "rare"
	ItemRarityEpic      ItemRarity = "epic"
	ItemRarityLegendary ItemRarity = "legendary"
)

// IsKnown reports whether the rarity is one of the documented tiers.
func (r ItemRarity) IsKnown() bool {
	switch r {
	case ItemRarityCommon, ItemRarityUncommon, ItemRarityRare, ItemRarityEpic, ItemRarityLegendary:
		return true
	}
	return false
}

// Item is an inventory entity.
type Item struct {
	ID         int            `json:"id"`
	Attributes ItemAttributes `json:"attributes"`
}

// ItemAttributes are the content fields of an item.
type ItemAttributes struct {
	Name        string     `json:"Name"`
	Description *string    `json:"Description"`
	Image       *Image     `json:"Image"`
	Type        ItemType   `json:"Type"`
	Rarity      ItemRarity `json:"Rarity"`
	Value       float64    `json:"Value"`
	Weight      float64    `json:"Weight"`
	Stackable   bool       `json:"Stackable"`
	MaxStack    int        `json:"MaxStack"`
	Usable      bool       `json:"Usable"`
	Cooldown    float64    `json:"Cooldown"`
	Timestamps
}
