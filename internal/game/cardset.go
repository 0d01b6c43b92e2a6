package game

import "math/rand/v2"

// CardSet is an ordered, mutable collection of cards (a deck or a hand).
// Order matters for deck draw order. Card ids are unique within one set.
type CardSet struct {
	cards []*Card
	bus   *EventBus
}

// NewCardSet creates an empty card set.
func NewCardSet(bus *EventBus) *CardSet {
	return &CardSet{bus: bus}
}

// Cards returns the cards in order. The returned slice is a copy.
func (cs *CardSet) Cards() []*Card {
	out := make([]*Card, len(cs.cards))
	copy(out, cs.cards)
	return out
}

// Len returns the number of cards in the set.
func (cs *CardSet) Len() int { return len(cs.cards) }

// CardByID finds a card by id, nil when absent.
func (cs *CardSet) CardByID(id string) *Card {
	for _, c := range cs.cards {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// Pop removes and returns the first n cards in draw order.
func (cs *CardSet) Pop(n int) []*Card {
	if n > len(cs.cards) {
		n = len(cs.cards)
	}
	out := make([]*Card, n)
	copy(out, cs.cards[:n])
	cs.cards = cs.cards[n:]
	cs.publishChanged(nil, out)
	return out
}

// Append adds cards to the end of the set.
func (cs *CardSet) Append(cards []*Card) {
	cs.cards = append(cs.cards, cards...)
	cs.publishChanged(cards, nil)
}

// Remove removes a card by identity. Unknown cards are ignored.
func (cs *CardSet) Remove(card *Card) {
	for i, c := range cs.cards {
		if c == card {
			cs.cards = append(cs.cards[:i], cs.cards[i+1:]...)
			cs.publishChanged(nil, []*Card{card})
			return
		}
	}
}

// AddDelete applies an add and a drop in one pass, emitting a single combined
// change event, so a reroll is observed as one atomic update. Cards already
// present are not added twice.
func (cs *CardSet) AddDelete(add, drop []*Card) {
	added := make([]*Card, 0, len(add))
	for _, card := range add {
		if cs.CardByID(card.ID()) == nil {
			added = append(added, card)
		}
	}
	kept := cs.cards[:0]
	for _, c := range cs.cards {
		dropped := false
		for _, d := range drop {
			if c.ID() == d.ID() {
				dropped = true
				break
			}
		}
		if !dropped {
			kept = append(kept, c)
		}
	}
	cs.cards = append(kept, added...)
	cs.publishChanged(added, drop)
}

// Shuffle permutes the set uniformly in place.
func (cs *CardSet) Shuffle() {
	rand.Shuffle(len(cs.cards), func(i, j int) {
		cs.cards[i], cs.cards[j] = cs.cards[j], cs.cards[i]
	})
}

func (cs *CardSet) publishChanged(added, removed []*Card) {
	if cs.bus != nil {
		cs.bus.Publish(Event{
			Type:    EventSetChanged,
			Set:     cs,
			Added:   added,
			Removed: removed,
		})
	}
}
