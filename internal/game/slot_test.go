package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialinept/princessplatelets-server-go/internal/catalog"
)

func TestSlotEffectsApplyToPlacedCard(t *testing.T) {
	card := NewCard(soldierType(), false, nil)
	slot := NewSlot(1, 1, 0, "", nil)

	slot.AddEffects("1", "sourceCard", []catalog.Effect{{Power: -3}})
	slot.SetCard(0, "2", card)

	assert.Equal(t, -2, card.Power())
	assert.Equal(t, 1, card.PowerBase())
	assert.Equal(t, -3, card.PowerAugment())
}

func TestSlotEffectsApplyToExistingCard(t *testing.T) {
	card := NewCard(soldierType(), false, nil)
	slot := NewSlot(1, 1, 0, "", nil)

	slot.SetCard(0, "2", card)
	slot.AddEffects("1", "sourceCard", []catalog.Effect{{Power: -3}})

	assert.Equal(t, -2, card.Power())
	assert.Equal(t, 1, card.PowerBase())
	assert.Equal(t, -3, card.PowerAugment())
}

func TestSlotEnemyEffectLandsOnEnemyCard(t *testing.T) {
	card := NewCard(soldierType(), false, nil)
	slot := NewSlot(1, 1, 0, "", nil)

	slot.AddEffects("1", "sourceCard", []catalog.Effect{{Target: catalog.TargetEnemy, Power: -3}})
	slot.SetCard(0, "2", card)

	assert.Equal(t, -2, card.Power())
}

func TestSlotEnemyEffectSuppressedOnOwnCard(t *testing.T) {
	card := NewCard(soldierType(), false, nil)
	slot := NewSlot(1, 1, 0, "", nil)

	slot.AddEffects("1", "sourceCard", []catalog.Effect{{Target: catalog.TargetEnemy, Power: -3}})
	slot.SetCard(0, "1", card)

	// The contributor owns the slot, so the enemy-targeted effect must not
	// land.
	assert.Equal(t, 1, card.Power())
	assert.Equal(t, 0, card.PowerAugment())
}

func TestSlotEnemyEffectTracksOwnershipChanges(t *testing.T) {
	card := NewCard(soldierType(), false, nil)
	slot := NewSlot(1, 1, 0, "", nil)

	slot.AddEffects("1", "sourceCard", []catalog.Effect{{Target: catalog.TargetEnemy, Power: -3}})
	slot.SetCard(0, "2", card)
	require.Equal(t, -2, card.Power())

	// Ownership capture by the contributing player suppresses the effect
	// again; effects are a live function of the current owner.
	slot.Change(1, "1")
	assert.Equal(t, 1, card.Power())

	slot.Change(0, "2")
	assert.Equal(t, -2, card.Power())
}

func TestSlotAllyAndAllEffectsNeverSuppressed(t *testing.T) {
	card := NewCard(soldierType(), false, nil)
	slot := NewSlot(0, 2, 0, "", nil)

	slot.AddEffects("1", "allySource", []catalog.Effect{{Target: catalog.TargetAlly, Power: 2}})
	slot.AddEffects("1", "allSource", []catalog.Effect{{Target: catalog.TargetAll, Power: -3}})
	slot.SetCard(0, "1", card)

	assert.Equal(t, 0, card.Power())
}

func TestSlotChangeAdjustsPawnsAndOwnership(t *testing.T) {
	slot := NewSlot(2, 3, 1, "1", nil)

	slot.Change(1, "2")

	assert.Equal(t, 2, slot.PawnCount())
	assert.Equal(t, "2", slot.Owner())
	assert.Nil(t, slot.Card())
}

func TestSlotAddEffectsFromCard(t *testing.T) {
	ranger := &catalog.CardType{
		Key: "ranger", Name: "Ranger", Power: 1, PawnRequirement: 2,
		Areas:  []catalog.Area{{Col: 4, Row: 2, Kind: catalog.AreaAffect}},
		Effect: &catalog.Effect{Target: catalog.TargetEnemy, Power: -4},
	}
	source := NewCard(ranger, false, nil)
	plain := NewCard(soldierType(), false, nil)
	slot := NewSlot(0, 0, 0, "", nil)

	// A card without a declared effect records nothing.
	slot.AddEffectsFromCard("1", plain)
	assert.Empty(t, slot.Effects(""))

	slot.AddEffectsFromCard("1", source)
	effects := slot.Effects("")
	require.Len(t, effects, 1)
	assert.Equal(t, -4, effects[0].Power)

	// Scoped lookup by contributing player.
	assert.Len(t, slot.Effects("1"), 1)
	assert.Empty(t, slot.Effects("2"))
}

func TestSlotChangePublishes(t *testing.T) {
	bus := NewEventBus()
	slot := NewSlot(1, 2, 0, "", bus)

	var events int
	bus.SubscribeTyped(EventSlotChanged, func(event Event) {
		events++
		assert.Equal(t, 1, event.Row)
		assert.Equal(t, 2, event.Col)
	})

	slot.Change(1, "1")
	slot.AddEffects("1", "x", []catalog.Effect{{Power: 1}})
	assert.Equal(t, 2, events)
}
