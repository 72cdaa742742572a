package model

// Monster is a bestiary entity.
type Monster struct {
	ID         int               `json:"id"`
	Attributes MonsterAttributes `json:"attributes"`
}

// MonsterAttributes are the content fields of a monster. Everything but
// the name is optional.
type MonsterAttributes struct {
	Name          string   `json:"Name"`
	Image         *Image   `json:"Image"`
	Nature        *string  `json:"Nature"`
	Origin        *string  `json:"Origin"`
	AverageHeight *float64 `json:"AverageHeight"`
	AverageWeight *float64 `json:"AverageWeight"`
	InnateAbility *string  `json:"InnateAbility"`
	Timestamps
}
