package model

// PlaceCategory classifies what a place offers.
type PlaceCategory string

const (
	PlaceCategoryShop        PlaceCategory = "shop"
	PlaceCategoryGame        PlaceCategory = "game"
	PlaceCategoryInformation PlaceCategory = "information"
)

// IsKnown reports whether the category is one of the documented literals.
// Unknown values are a display concern, never a hard failure.
func (c PlaceCategory) IsKnown() bool {
	switch c {
	case PlaceCategoryShop, PlaceCategoryGame, PlaceCategoryInformation:
		return true
	}
	return false
}

// Label returns a human-readable name for the category. Unrecognized
// values fall back to their literal text.
func (c PlaceCategory) Label() string {
	switch c {
	case PlaceCategoryShop:
		return "Shop"
	case PlaceCategoryGame:
		return "Game"
	case PlaceCategoryInformation:
		return "Information"
	}
	return string(c)
}

// Place is a location entity. Each place belongs to exactly one world.
type Place struct {
	ID         int             `json:"id"`
	Attributes PlaceAttributes `json:"attributes"`
}

// PlaceAttributes are the content fields of a place.
type PlaceAttributes struct {
	Name        string        `json:"Name"`
	Description *string       `json:"Description"`
	Banner      *Image        `json:"Banner"`
	Type        PlaceCategory `json:"Type"`
	Timestamps
}
