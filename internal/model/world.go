package model

// World is a realm entity. The world side of the world/place relation is
// authoritative: a world carries its ordered places, places do not
// navigate back.
type World struct {
	ID         int             `json:"id"`
	Attributes WorldAttributes `json:"attributes"`
}

// WorldAttributes are the content fields of a world.
type WorldAttributes struct {
	Name        string          `json:"Name"`
	Description *string         `json:"Description"`
	Image       *Image          `json:"Image"`
	Places      PlaceCollection `json:"places"`
	Timestamps
}

// PlaceCollection is the populated relation wrapper around a world's
// places. Data is empty when the relation was not populated.
type PlaceCollection struct {
	Data []Place `json:"data"`
}
