package game

import "github.com/socialinept/princessplatelets-server-go/internal/catalog"

// SlotEffect is one row of a slot's effect relation: an effect some card has
// projected onto the slot, with its provenance.
type SlotEffect struct {
	SourcePlayer string
	SourceCardID string
	Effect       catalog.Effect
}

// Slot is one board cell. It owns a pawn count, an owning player (empty when
// unowned), an optional placed card, and every effect other cards have
// projected onto it. Recorded effects are never baked in: they are re-applied
// to whatever card occupies the slot each time the card, owner, or effect set
// changes.
type Slot struct {
	row       int
	col       int
	pawnCount int
	owner     string
	card      *Card
	effects   []SlotEffect
	bus       *EventBus
}

// NewSlot creates a slot at a fixed board position.
func NewSlot(row, col, pawnCount int, owner string, bus *EventBus) *Slot {
	return &Slot{
		row:       row,
		col:       col,
		pawnCount: pawnCount,
		owner:     owner,
		bus:       bus,
	}
}

// Row returns the slot's board row.
func (s *Slot) Row() int { return s.row }

// Col returns the slot's board column.
func (s *Slot) Col() int { return s.col }

// PawnCount returns the current pawn count.
func (s *Slot) PawnCount() int { return s.pawnCount }

// Owner returns the owning player id, empty when unowned.
func (s *Slot) Owner() string { return s.owner }

// Card returns the placed card, nil when the slot is empty.
func (s *Slot) Card() *Card { return s.card }

// Change adds pawnDelta to the pawn count and unconditionally reassigns
// ownership to playerID. The placed card is left untouched. This is how a
// pawn projection captures an enemy-owned slot.
func (s *Slot) Change(pawnDelta int, playerID string) {
	s.pawnCount += pawnDelta
	s.owner = playerID
	s.applyEffectsToCard()
	s.publishChanged()
}

// SetCard behaves like Change but also replaces the placed card. A nil card
// clears the slot.
func (s *Slot) SetCard(pawnDelta int, playerID string, card *Card) {
	s.pawnCount += pawnDelta
	s.owner = playerID
	s.card = card
	s.applyEffectsToCard()
	s.publishChanged()
}

// AddEffects appends effects contributed by one (player, card) source, then
// re-applies the recorded set to the current occupant.
func (s *Slot) AddEffects(sourcePlayerID, sourceCardID string, effects []catalog.Effect) {
	for _, e := range effects {
		s.effects = append(s.effects, SlotEffect{
			SourcePlayer: sourcePlayerID,
			SourceCardID: sourceCardID,
			Effect:       e,
		})
	}
	s.applyEffectsToCard()
	s.publishChanged()
}

// AddEffectsFromCard records the card's declared effect, if it has one.
func (s *Slot) AddEffectsFromCard(sourcePlayerID string, card *Card) {
	if card.Type().Effect == nil {
		return
	}
	s.AddEffects(sourcePlayerID, card.ID(), []catalog.Effect{*card.Type().Effect})
}

// Effects flattens the recorded effects, optionally scoped to one
// contributing player. Pass the empty string for all players.
func (s *Slot) Effects(playerID string) []catalog.Effect {
	var out []catalog.Effect
	for _, se := range s.effects {
		if playerID != "" && se.SourcePlayer != playerID {
			continue
		}
		out = append(out, se.Effect)
	}
	return out
}

// applicableEffects derives, per contributing card, the effects that land on
// an occupant given the slot's current owner. An enemy-targeted effect is
// suppressed while its contributor owns the slot; ally and all-targeted
// effects always land.
func (s *Slot) applicableEffects(owner string) map[string][]catalog.Effect {
	bySource := make(map[string][]catalog.Effect)
	for _, se := range s.effects {
		effects := bySource[se.SourceCardID]
		if effects == nil {
			// Every known source gets an entry, even if all of its effects
			// end up suppressed, so a stale contribution is replaced.
			effects = []catalog.Effect{}
		}
		if se.Effect.Target == catalog.TargetEnemy && se.SourcePlayer == owner {
			bySource[se.SourceCardID] = effects
			continue
		}
		bySource[se.SourceCardID] = append(effects, se.Effect)
	}
	return bySource
}

func (s *Slot) applyEffectsToCard() {
	if s.card == nil {
		return
	}
	for sourceCardID, effects := range s.applicableEffects(s.owner) {
		s.card.SetEffects(sourceCardID, effects)
	}
}

func (s *Slot) publishChanged() {
	if s.bus != nil {
		s.bus.Publish(Event{
			Type: EventSlotChanged,
			Row:  s.row,
			Col:  s.col,
			Slot: s,
		})
	}
}
