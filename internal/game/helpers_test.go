package game

import (
	"fmt"

	"github.com/socialinept/princessplatelets-server-go/internal/catalog"
)

// soldierType mirrors the first built-in archetype: a plain power-1,
// requirement-1 card with a plus-shaped pawn footprint.
func soldierType() *catalog.CardType {
	return &catalog.CardType{
		Key: "soldier", Name: "Soldier", Power: 1, PawnRequirement: 1,
		Areas: []catalog.Area{
			{Col: 2, Row: 1, Kind: catalog.AreaPawn},
			{Col: 1, Row: 2, Kind: catalog.AreaPawn},
			{Col: 3, Row: 2, Kind: catalog.AreaPawn},
			{Col: 2, Row: 3, Kind: catalog.AreaPawn},
		},
	}
}

// uniformCatalog builds n distinct archetypes sharing the same stats, so deck
// composition is predictable regardless of shuffle order.
func uniformCatalog(n, power, pawnRequirement int, effect *catalog.Effect) []*catalog.CardType {
	types := make([]*catalog.CardType, n)
	for i := range types {
		types[i] = &catalog.CardType{
			Key:             fmt.Sprintf("test-%d", i),
			Name:            fmt.Sprintf("Test %d", i),
			Power:           power,
			PawnRequirement: pawnRequirement,
			Areas: []catalog.Area{
				{Col: 2, Row: 1, Kind: catalog.AreaPawn},
				{Col: 3, Row: 2, Kind: catalog.AreaPawn},
			},
			Effect: effect,
		}
	}
	return types
}
