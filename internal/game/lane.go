package game

// LaneScore accumulates one player's card power in one board row. Modifier is
// reserved for future scaling effects.
type LaneScore struct {
	playerID string
	row      int
	points   int
	modifier int
	bus      *EventBus
}

// NewLaneScore creates a zeroed lane score for (playerID, row).
func NewLaneScore(playerID string, row int, bus *EventBus) *LaneScore {
	return &LaneScore{playerID: playerID, row: row, bus: bus}
}

// PlayerID returns the scored player's id.
func (l *LaneScore) PlayerID() string { return l.playerID }

// Row returns the scored board row.
func (l *LaneScore) Row() int { return l.row }

// Points returns the accumulated points.
func (l *LaneScore) Points() int { return l.points }

// Modifier returns the applied modifier.
func (l *LaneScore) Modifier() int { return l.modifier }

// AddPoints adds to the accumulated points.
func (l *LaneScore) AddPoints(delta int) {
	l.points += delta
	l.publishChanged()
}

// SetModifier replaces the modifier.
func (l *LaneScore) SetModifier(modifier int) {
	l.modifier = modifier
	l.publishChanged()
}

func (l *LaneScore) publishChanged() {
	if l.bus != nil {
		l.bus.Publish(Event{
			Type:     EventLaneChanged,
			PlayerID: l.playerID,
			Row:      l.row,
			Lane:     l,
		})
	}
}
