package catalog

import "fmt"

// EffectTarget selects which occupants an effect may land on.
type EffectTarget string

const (
	TargetAll   EffectTarget = "all"
	TargetAlly  EffectTarget = "ally"
	TargetEnemy EffectTarget = "enemy"
)

// AreaKind is the role of one footprint cell.
type AreaKind string

const (
	// AreaPawn adds a pawn to the cell and transfers its ownership.
	AreaPawn AreaKind = "pawn"
	// AreaAffect projects the card's declared effect onto the cell.
	AreaAffect AreaKind = "affect"
)

// Effect is the modifier a played card projects onto neighboring slots.
type Effect struct {
	Target   EffectTarget `json:"target,omitempty"`
	Power    int          `json:"power,omitempty"`
	AddCards []string     `json:"addCards,omitempty"`
}

// Area is one cell of a card's footprint, expressed in a 5x5 local grid
// centered at (2,2) on the played cell.
type Area struct {
	Col  int      `json:"col"`
	Row  int      `json:"row"`
	Kind AreaKind `json:"kind"`
}

// CardType is a card archetype. Immutable after load.
type CardType struct {
	Key             string  `json:"key"`
	Name            string  `json:"name"`
	Power           int     `json:"power"`
	PawnRequirement int     `json:"pawnRequirement"`
	Areas           []Area  `json:"areas"`
	Effect          *Effect `json:"effect,omitempty"`
}

// MirroredAreas returns the footprint, mirrored across the vertical axis when
// invertX is set so second-player cards project toward column 0.
func (ct *CardType) MirroredAreas(invertX bool) []Area {
	if !invertX {
		return ct.Areas
	}
	out := make([]Area, len(ct.Areas))
	for i, a := range ct.Areas {
		out[i] = Area{Col: 4 - a.Col, Row: a.Row, Kind: a.Kind}
	}
	return out
}

// Validate checks a card type against the catalog constraints.
func (ct *CardType) Validate() error {
	if ct.Name == "" {
		return fmt.Errorf("card type %q: missing name", ct.Key)
	}
	if ct.Power < 0 {
		return fmt.Errorf("card type %q: negative power %d", ct.Key, ct.Power)
	}
	if ct.PawnRequirement < 1 {
		return fmt.Errorf("card type %q: pawn requirement %d below 1", ct.Key, ct.PawnRequirement)
	}
	for _, a := range ct.Areas {
		if a.Col < 0 || a.Col > 4 || a.Row < 0 || a.Row > 4 {
			return fmt.Errorf("card type %q: area (%d,%d) outside the 5x5 local grid", ct.Key, a.Col, a.Row)
		}
		if a.Kind != AreaPawn && a.Kind != AreaAffect {
			return fmt.Errorf("card type %q: unknown area kind %q", ct.Key, a.Kind)
		}
	}
	if ct.Effect != nil {
		switch ct.Effect.Target {
		case TargetAll, TargetAlly, TargetEnemy, "":
		default:
			return fmt.Errorf("card type %q: unknown effect target %q", ct.Key, ct.Effect.Target)
		}
	}
	return nil
}
