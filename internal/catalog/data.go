package catalog

// BuiltIn returns the default card table. Used when neither the database nor
// the remote endpoint supplies a catalog.
func BuiltIn() []*CardType {
	return []*CardType{
		{
			Key: "soldier", Name: "Soldier", Power: 1, PawnRequirement: 1,
			Areas: []Area{
				{Col: 2, Row: 1, Kind: AreaPawn},
				{Col: 1, Row: 2, Kind: AreaPawn},
				{Col: 3, Row: 2, Kind: AreaPawn},
				{Col: 2, Row: 3, Kind: AreaPawn},
			},
		},
		{
			Key: "guard", Name: "Guard", Power: 3, PawnRequirement: 2,
			Areas: []Area{
				{Col: 2, Row: 0, Kind: AreaPawn},
				{Col: 2, Row: 1, Kind: AreaPawn},
				{Col: 3, Row: 2, Kind: AreaPawn},
				{Col: 2, Row: 3, Kind: AreaPawn},
				{Col: 2, Row: 4, Kind: AreaPawn},
			},
		},
		{
			Key: "ranger", Name: "Ranger", Power: 1, PawnRequirement: 2,
			Areas: []Area{
				{Col: 4, Row: 2, Kind: AreaAffect},
			},
			Effect: &Effect{Target: TargetEnemy, Power: -4},
		},
		{
			Key: "tank", Name: "Tank", Power: 2, PawnRequirement: 2,
			Areas: []Area{
				{Col: 2, Row: 1, Kind: AreaPawn},
				{Col: 3, Row: 1, Kind: AreaPawn},
				{Col: 2, Row: 3, Kind: AreaPawn},
				{Col: 3, Row: 3, Kind: AreaPawn},
			},
		},
		{
			Key: "stringer", Name: "Stinger", Power: 1, PawnRequirement: 1,
			Areas: []Area{
				{Col: 2, Row: 0, Kind: AreaPawn},
				{Col: 2, Row: 4, Kind: AreaPawn},
			},
		},
		{
			Key: "vermin", Name: "Vermin", Power: 2, PawnRequirement: 2,
			Areas: []Area{
				{Col: 2, Row: 3, Kind: AreaPawn},
				{Col: 3, Row: 3, Kind: AreaPawn},
				{Col: 3, Row: 3, Kind: AreaAffect},
			},
			Effect: &Effect{Target: TargetAll, Power: -3},
		},
		{
			Key: "ostrich", Name: "Ostrich", Power: 2, PawnRequirement: 1,
			Areas: []Area{
				{Col: 3, Row: 2, Kind: AreaPawn},
				{Col: 2, Row: 3, Kind: AreaPawn},
			},
		},
		{
			Key: "wolf", Name: "Wolf", Power: 2, PawnRequirement: 1,
			Areas: []Area{
				{Col: 2, Row: 1, Kind: AreaPawn},
				{Col: 3, Row: 2, Kind: AreaPawn},
			},
		},
		{
			Key: "chipmunk", Name: "Chipmunk", Power: 1, PawnRequirement: 2,
			Areas: []Area{
				{Col: 3, Row: 1, Kind: AreaPawn},
				{Col: 3, Row: 2, Kind: AreaPawn},
				{Col: 2, Row: 3, Kind: AreaAffect},
			},
			Effect: &Effect{Target: TargetAlly, Power: 1},
		},
		{
			Key: "parslemon", Name: "Parslemon", Power: 1, PawnRequirement: 1,
			Areas: []Area{
				{Col: 2, Row: 3, Kind: AreaPawn},
				{Col: 3, Row: 2, Kind: AreaPawn},
			},
			Effect: &Effect{AddCards: []string{"Parslemon Seedling"}},
		},
		{
			Key: "eletrunky", Name: "Eletrunky", Power: 4, PawnRequirement: 2,
			Areas: []Area{
				{Col: 2, Row: 1, Kind: AreaPawn},
				{Col: 1, Row: 2, Kind: AreaPawn},
				{Col: 2, Row: 3, Kind: AreaPawn},
			},
		},
		{
			Key: "spiny", Name: "Spiny", Power: 1, PawnRequirement: 1,
			Areas: []Area{
				{Col: 3, Row: 2, Kind: AreaPawn},
				{Col: 2, Row: 3, Kind: AreaPawn},
				{Col: 3, Row: 4, Kind: AreaAffect},
			},
		},
		{
			Key: "crab", Name: "Crab", Power: 1, PawnRequirement: 1,
			Areas: []Area{
				{Col: 1, Row: 2, Kind: AreaPawn},
				{Col: 2, Row: 1, Kind: AreaPawn},
				{Col: 3, Row: 2, Kind: AreaPawn},
				{Col: 2, Row: 1, Kind: AreaAffect},
			},
			Effect: &Effect{Target: TargetAlly, Power: 2},
		},
		{
			Key: "q", Name: "Q", Power: 3, PawnRequirement: 2,
			Areas: []Area{
				{Col: 2, Row: 0, Kind: AreaPawn},
				{Col: 3, Row: 1, Kind: AreaPawn},
				{Col: 3, Row: 3, Kind: AreaPawn},
				{Col: 2, Row: 4, Kind: AreaPawn},
			},
		},
		{
			Key: "zu", Name: "Zu", Power: 2, PawnRequirement: 2,
			Areas: []Area{
				{Col: 1, Row: 1, Kind: AreaPawn},
				{Col: 3, Row: 1, Kind: AreaPawn},
				{Col: 1, Row: 3, Kind: AreaPawn},
				{Col: 3, Row: 3, Kind: AreaPawn},
			},
		},
		{
			Key: "biker", Name: "Biker", Power: 4, PawnRequirement: 2,
			Areas: []Area{
				{Col: 0, Row: 1, Kind: AreaPawn},
				{Col: 0, Row: 2, Kind: AreaPawn},
				{Col: 1, Row: 2, Kind: AreaPawn},
				{Col: 0, Row: 3, Kind: AreaPawn},
			},
		},
		{
			Key: "shouter", Name: "Shouter", Power: 1, PawnRequirement: 3,
			Areas: []Area{
				{Col: 1, Row: 1, Kind: AreaPawn},
				{Col: 1, Row: 2, Kind: AreaPawn},
				{Col: 1, Row: 3, Kind: AreaPawn},
				{Col: 2, Row: 1, Kind: AreaPawn},
				{Col: 2, Row: 3, Kind: AreaPawn},
				{Col: 3, Row: 1, Kind: AreaPawn},
				{Col: 3, Row: 2, Kind: AreaPawn},
				{Col: 3, Row: 3, Kind: AreaPawn},
			},
		},
		{
			Key: "flan", Name: "Flan", Power: 2, PawnRequirement: 1,
			Areas: []Area{
				{Col: 1, Row: 1, Kind: AreaPawn},
				{Col: 1, Row: 2, Kind: AreaPawn},
				{Col: 1, Row: 3, Kind: AreaPawn},
			},
		},
		{
			Key: "floorer", Name: "Floorer", Power: 2, PawnRequirement: 1,
			Areas: []Area{
				{Col: 1, Row: 1, Kind: AreaPawn},
				{Col: 2, Row: 1, Kind: AreaPawn},
				{Col: 1, Row: 3, Kind: AreaPawn},
				{Col: 2, Row: 3, Kind: AreaPawn},
			},
		},
	}
}
