package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/socialinept/princessplatelets-server-go/internal/catalog"
)

func TestCardPowerWithoutEffects(t *testing.T) {
	card := NewCard(soldierType(), false, nil)

	assert.Equal(t, 1, card.Power())
	assert.Equal(t, 1, card.PowerBase())
	assert.Equal(t, 0, card.PowerAugment())
}

func TestCardSetEffectsChangesPower(t *testing.T) {
	card := NewCard(soldierType(), false, nil)

	card.SetEffects("2", []catalog.Effect{{Power: 3}})

	assert.Equal(t, 4, card.Power())
	assert.Equal(t, 1, card.PowerBase())
	assert.Equal(t, 3, card.PowerAugment())
}

func TestCardSetEffectsReplacesPerSource(t *testing.T) {
	card := NewCard(soldierType(), false, nil)

	card.SetEffects("src", []catalog.Effect{{Power: 3}})
	card.SetEffects("src", []catalog.Effect{{Power: 3}})
	assert.Equal(t, 3, card.PowerAugment())

	// A second source accumulates independently.
	card.SetEffects("other", []catalog.Effect{{Power: -1}})
	assert.Equal(t, 2, card.PowerAugment())

	// Replacing with an empty list clears the contribution.
	card.SetEffects("src", nil)
	assert.Equal(t, -1, card.PowerAugment())
}

func TestCardSetEffectsPublishesChange(t *testing.T) {
	bus := NewEventBus()
	card := NewCard(soldierType(), false, bus)

	var changed int
	bus.SubscribeTyped(EventCardChanged, func(event Event) {
		changed++
		assert.Equal(t, card.ID(), event.CardID)
	})

	card.SetEffects("src", []catalog.Effect{{Power: 1}})
	assert.Equal(t, 1, changed)
}

func TestCardAreasMirrored(t *testing.T) {
	normal := NewCard(soldierType(), false, nil)
	inverted := NewCard(soldierType(), true, nil)

	assert.Equal(t, 2, normal.Areas()[0].Col)
	assert.Equal(t, 2, inverted.Areas()[0].Col)
	assert.Equal(t, 1, normal.Areas()[1].Col)
	assert.Equal(t, 3, inverted.Areas()[1].Col)
}

func TestCardIDsUnique(t *testing.T) {
	a := NewCard(soldierType(), false, nil)
	b := NewCard(soldierType(), false, nil)
	assert.NotEqual(t, a.ID(), b.ID())
}
