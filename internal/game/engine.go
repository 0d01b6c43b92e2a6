package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/socialinept/princessplatelets-server-go/internal/catalog"
)

// Board dimensions and opening hand size.
const (
	BoardRows = 3
	BoardCols = 5
	HandSize  = 5
)

// Game is the rules engine for one match: the 3x5 slot grid, a deck and hand
// per player, per-lane scores, the action log, the phase state machine, and
// the action-processing pipeline.
//
// All operations are synchronous and single-threaded. Observers must not call
// Act from inside an event callback; they enqueue follow-up actions instead,
// and the engine drains the queue once the triggering action has fully
// applied.
type Game struct {
	id        string
	logger    *zap.Logger
	bus       *EventBus
	cardTypes []*catalog.CardType

	cards map[string]*Card
	deck1 *CardSet
	hand1 *CardSet
	deck2 *CardSet
	hand2 *CardSet
	slots [BoardRows][BoardCols]*Slot
	lanes map[string][]*LaneScore
	log   *ActionLog

	actions      []Action
	phase        Phase
	actingPlayer string

	queue    []pendingAction
	draining bool
}

type pendingAction struct {
	action   Action
	onResult func(ActionResult)
}

// NewGame creates and resets a match using the injected card catalog.
func NewGame(cardTypes []*catalog.CardType, logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		id:        uuid.NewString(),
		logger:    logger,
		bus:       NewEventBus(),
		cardTypes: cardTypes,
	}
	g.Reset()
	return g
}

// Reset reinitializes the match: fresh decks (shuffled independently), 5-card
// hands, the starting board (column 0 owned by player 1 with one pawn, column
// 4 by player 2), zeroed lanes, an empty log and history, phase REROLL, and
// player 1 acting.
func (g *Game) Reset() {
	g.cards = make(map[string]*Card)
	g.deck1 = NewCardSet(g.bus)
	g.deck2 = NewCardSet(g.bus)
	g.hand1 = NewCardSet(g.bus)
	g.hand2 = NewCardSet(g.bus)

	var deck1Cards, deck2Cards []*Card
	for _, ct := range g.cardTypes {
		c1 := NewCard(ct, false, g.bus)
		c2 := NewCard(ct, true, g.bus)
		deck1Cards = append(deck1Cards, c1)
		deck2Cards = append(deck2Cards, c2)
		g.cards[c1.ID()] = c1
		g.cards[c2.ID()] = c2
	}
	g.deck1.Append(deck1Cards)
	g.deck2.Append(deck2Cards)
	g.deck1.Shuffle()
	g.deck2.Shuffle()
	g.hand1.Append(g.deck1.Pop(HandSize))
	g.hand2.Append(g.deck2.Pop(HandSize))

	for row := 0; row < BoardRows; row++ {
		g.slots[row][0] = NewSlot(row, 0, 1, Player1, g.bus)
		for col := 1; col < BoardCols-1; col++ {
			g.slots[row][col] = NewSlot(row, col, 0, "", g.bus)
		}
		g.slots[row][BoardCols-1] = NewSlot(row, BoardCols-1, 1, Player2, g.bus)
	}

	g.lanes = make(map[string][]*LaneScore)
	for _, playerID := range []string{Player1, Player2} {
		for row := 0; row < BoardRows; row++ {
			g.lanes[playerID] = append(g.lanes[playerID], NewLaneScore(playerID, row, g.bus))
		}
	}

	g.log = NewActionLog(g.bus)
	g.actions = nil
	g.queue = nil
	g.actingPlayer = Player1
	g.setPhase(PhaseReroll)
}

// ID returns the match id.
func (g *Game) ID() string { return g.id }

// Bus returns the engine's event bus.
func (g *Game) Bus() *EventBus { return g.bus }

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// ActingPlayer returns the player currently permitted to play or pass.
func (g *Game) ActingPlayer() string { return g.actingPlayer }

// CardTypes returns the catalog the match was built from.
func (g *Game) CardTypes() []*catalog.CardType { return g.cardTypes }

// Slot returns the slot at (row, col), nil when out of bounds.
func (g *Game) Slot(row, col int) *Slot {
	if row < 0 || row >= BoardRows || col < 0 || col >= BoardCols {
		return nil
	}
	return g.slots[row][col]
}

// Slots returns all slots in row-major order.
func (g *Game) Slots() []*Slot {
	out := make([]*Slot, 0, BoardRows*BoardCols)
	for row := 0; row < BoardRows; row++ {
		for col := 0; col < BoardCols; col++ {
			out = append(out, g.slots[row][col])
		}
	}
	return out
}

// CardByID finds a card anywhere in the card universe, nil when unknown.
func (g *Game) CardByID(id string) *Card { return g.cards[id] }

// Lane returns the lane score for (playerID, row), nil when unknown.
func (g *Game) Lane(playerID string, row int) *LaneScore {
	lanes := g.lanes[playerID]
	if row < 0 || row >= len(lanes) {
		return nil
	}
	return lanes[row]
}

// Hand returns the player's hand.
func (g *Game) Hand(playerID string) *CardSet {
	if playerID == Player2 {
		return g.hand2
	}
	return g.hand1
}

// Deck returns the player's deck.
func (g *Game) Deck(playerID string) *CardSet {
	if playerID == Player2 {
		return g.deck2
	}
	return g.deck1
}

// Log returns the match's action log.
func (g *Game) Log() *ActionLog { return g.log }

// Actions returns the submitted action history in order.
func (g *Game) Actions() []Action {
	out := make([]Action, len(g.actions))
	copy(out, g.actions)
	return out
}

// DestroyableCards returns every placed card whose effective power is below 1.
// The "power < 1 destroys" rule itself is an extension point; nothing in the
// pipeline invokes it.
func (g *Game) DestroyableCards() []*Card {
	var out []*Card
	for _, slot := range g.Slots() {
		if card := slot.Card(); card != nil && card.Power() < 1 {
			out = append(out, card)
		}
	}
	return out
}

// Enqueue schedules an action to be processed after the current one has fully
// applied. Safe to call from event listeners.
func (g *Game) Enqueue(action Action) {
	g.EnqueueFunc(action, nil)
}

// EnqueueFunc schedules an action with a callback that receives its result.
func (g *Game) EnqueueFunc(action Action, onResult func(ActionResult)) {
	g.queue = append(g.queue, pendingAction{action: action, onResult: onResult})
}

// Act validates and applies one action, then drains any follow-up actions
// observers enqueued while it was being applied. The action either fully
// applies or is fully rejected; the engine is always left in a consistent
// state.
func (g *Game) Act(action Action) ActionResult {
	result := g.process(action)
	g.drain()
	return result
}

func (g *Game) drain() {
	if g.draining {
		return
	}
	g.draining = true
	defer func() { g.draining = false }()
	for len(g.queue) > 0 {
		pending := g.queue[0]
		g.queue = g.queue[1:]
		result := g.process(pending.action)
		if pending.onResult != nil {
			pending.onResult(result)
		}
	}
}

func (g *Game) process(action Action) ActionResult {
	switch a := action.(type) {
	case RerollAction:
		return g.processReroll(a)
	case PassAction:
		return g.processPass(a)
	case PlayCardAction:
		return g.processPlayCard(a)
	default:
		return resultErr(ErrUnknownAction)
	}
}

// processReroll swaps the requested cards out of player 1's opening hand,
// drawing replacements from the deck in one atomic update, and starts player
// 1's turn. Card ids not found in the hand are silently ignored.
func (g *Game) processReroll(action RerollAction) ActionResult {
	if action.PlayerID != Player1 {
		return resultErr(ErrNotActivePlayer)
	}
	var removeCards []*Card
	for _, cardID := range action.CardIDs {
		if card := g.hand1.CardByID(cardID); card != nil {
			removeCards = append(removeCards, card)
		}
	}
	g.hand1.AddDelete(g.deck1.Pop(len(removeCards)), removeCards)
	g.setPhase(PhasePlayer1Turn)
	g.logger.Debug("hand rerolled",
		zap.String("game_id", g.id),
		zap.Int("swapped", len(removeCards)),
	)
	g.actions = append(g.actions, action)
	g.publishAction(action)
	return resultOK()
}

// processPass flips the acting player. Two passes back to back with no
// intervening play finalize the game.
func (g *Game) processPass(action PassAction) ActionResult {
	g.flipActingPlayer(action.PlayerID)
	g.actions = append(g.actions, action)
	g.log.Append(LogEntry{Message: "Player pass"})
	if g.lastTwoActionsArePasses() {
		g.finalize()
		return resultOK()
	}
	g.publishAction(action)
	return resultOK()
}

func (g *Game) lastTwoActionsArePasses() bool {
	n := len(g.actions)
	if n < 2 {
		return false
	}
	_, ok1 := g.actions[n-1].(PassAction)
	_, ok2 := g.actions[n-2].(PassAction)
	return ok1 && ok2
}

func (g *Game) finalize() {
	g.setPhase(PhaseComplete)
	g.log.Append(LogEntry{Message: "Game Complete"})
	g.logger.Info("game complete", zap.String("game_id", g.id))
}

// processPlayCard runs the placement pipeline as a single all-or-nothing
// transaction: validation fully precedes mutation.
func (g *Game) processPlayCard(action PlayCardAction) ActionResult {
	card, ok := g.cards[action.CardID]
	if !ok {
		return resultErr(ErrUnknownAction)
	}
	if code := g.placeCard(action.Row, action.Col, card, action.PlayerID); code != "" {
		return resultErr(code)
	}
	g.actions = append(g.actions, action)
	g.log.Append(LogEntry{Message: "Player card played"})
	g.publishAction(action)
	return resultOK()
}

// placeCard validates the placement and, when legal, projects the card's
// footprint, places the card, and scores the lane. Returns the empty string
// on success.
func (g *Game) placeCard(row, col int, card *Card, playerID string) ErrorCode {
	slot := g.Slot(row, col)
	if slot == nil {
		return ErrUnknownAction
	}
	if playerID != g.actingPlayer {
		return ErrNotActivePlayer
	}
	if slot.Card() != nil {
		return ErrSlotOccupied
	}
	if slot.Owner() != playerID {
		return ErrNotPlayerControlled
	}
	if slot.PawnCount() < card.Type().PawnRequirement {
		return ErrInsufficientPawns
	}

	for _, area := range card.Areas() {
		target := g.Slot(row+area.Row-2, col+area.Col-2)
		if target == nil {
			continue
		}
		switch area.Kind {
		case catalog.AreaPawn:
			target.Change(1, playerID)
		case catalog.AreaAffect:
			target.AddEffectsFromCard(playerID, card)
		}
	}

	slot.SetCard(0, playerID, card)
	g.Lane(playerID, row).AddPoints(card.PowerBase())

	g.bus.Publish(Event{
		Type:     EventCardPlayed,
		GameID:   g.id,
		PlayerID: playerID,
		CardID:   card.ID(),
		Row:      row,
		Col:      col,
		Card:     card,
	})
	g.logger.Debug("card played",
		zap.String("game_id", g.id),
		zap.String("player_id", playerID),
		zap.String("card", card.Type().Name),
		zap.Int("row", row),
		zap.Int("col", col),
	)

	hand, deck := g.Hand(playerID), g.Deck(playerID)
	hand.Remove(card)
	hand.Append(deck.Pop(1))

	g.flipActingPlayer(playerID)
	return ""
}

func (g *Game) flipActingPlayer(playerID string) {
	g.actingPlayer = Opponent(playerID)
	if g.phase == PhasePlayer1Turn || g.phase == PhasePlayer2Turn {
		if g.actingPlayer == Player1 {
			g.setPhase(PhasePlayer1Turn)
		} else {
			g.setPhase(PhasePlayer2Turn)
		}
	}
}

func (g *Game) setPhase(phase Phase) {
	if g.phase == phase {
		return
	}
	g.phase = phase
	g.bus.Publish(Event{
		Type:   EventPhaseChanged,
		GameID: g.id,
		Phase:  phase,
	})
}

func (g *Game) publishAction(action Action) {
	g.bus.Publish(Event{
		Type:     EventAction,
		GameID:   g.id,
		PlayerID: action.Player(),
		Action:   action,
	})
}
