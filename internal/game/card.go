package game

import (
	"github.com/google/uuid"

	"github.com/socialinept/princessplatelets-server-go/internal/catalog"
)

// Card is a catalog archetype in play. It tracks the effects other cards have
// applied to it, keyed by the contributing card's id, and derives its
// effective power from them. A card never pushes effects anywhere itself;
// slots do that.
type Card struct {
	id       string
	cardType *catalog.CardType
	invertX  bool
	effects  map[string][]catalog.Effect
	bus      *EventBus
}

// NewCard creates a card instance of the given archetype. Cards built for
// player 2 set invertX so their footprint projects toward column 0.
func NewCard(cardType *catalog.CardType, invertX bool, bus *EventBus) *Card {
	return &Card{
		id:       uuid.NewString(),
		cardType: cardType,
		invertX:  invertX,
		effects:  make(map[string][]catalog.Effect),
		bus:      bus,
	}
}

// ID returns the unique card instance id.
func (c *Card) ID() string { return c.id }

// Type returns the card's archetype.
func (c *Card) Type() *catalog.CardType { return c.cardType }

// InvertX reports whether the footprint is mirrored for this card.
func (c *Card) InvertX() bool { return c.invertX }

// Areas returns the card's footprint, already mirrored when needed.
func (c *Card) Areas() []catalog.Area {
	return c.cardType.MirroredAreas(c.invertX)
}

// PowerBase is the archetype's printed power.
func (c *Card) PowerBase() int { return c.cardType.Power }

// PowerAugment is the sum of all active effect powers across sources.
func (c *Card) PowerAugment() int {
	sum := 0
	for _, effects := range c.effects {
		for _, e := range effects {
			sum += e.Power
		}
	}
	return sum
}

// Power is the effective power: base plus augment.
func (c *Card) Power() int { return c.PowerBase() + c.PowerAugment() }

// SetEffects replaces the effect list attributed to one source card and
// publishes a card-changed event. Calling it twice with the same source
// replaces, never accumulates, that source's contribution.
func (c *Card) SetEffects(sourceCardID string, effects []catalog.Effect) {
	c.effects[sourceCardID] = effects
	if c.bus != nil {
		c.bus.Publish(Event{
			Type:   EventCardChanged,
			CardID: c.id,
			Card:   c,
		})
	}
}
