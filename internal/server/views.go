package server

import (
	"github.com/socialinept/princessplatelets-server-go/internal/game"
)

// CardView is the wire representation of a card instance.
type CardView struct {
	ID              string `json:"id"`
	Key             string `json:"key"`
	Name            string `json:"name"`
	Power           int    `json:"power"`
	PowerBase       int    `json:"powerBase"`
	PowerAugment    int    `json:"powerAugment"`
	PawnRequirement int    `json:"pawnRequirement"`
	InvertX         bool   `json:"invertX"`
}

// SlotView is the wire representation of a board cell.
type SlotView struct {
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	PawnCount int       `json:"pawnCount"`
	PlayerID  string    `json:"playerId,omitempty"`
	Card      *CardView `json:"card,omitempty"`
}

// LaneView is the wire representation of one lane score.
type LaneView struct {
	PlayerID string `json:"playerId"`
	Row      int    `json:"row"`
	Points   int    `json:"points"`
	Modifier int    `json:"modifier"`
}

// GameView is the full state snapshot returned by the API.
type GameView struct {
	ID               string     `json:"id"`
	Phase            string     `json:"phase"`
	ActingPlayerID   string     `json:"actingPlayerId"`
	Slots            []SlotView `json:"slots"`
	Lanes            []LaneView `json:"lanes"`
	Hand1            []CardView `json:"hand1"`
	Hand2Count       int        `json:"hand2Count"`
	Deck1Count       int        `json:"deck1Count"`
	Deck2Count       int        `json:"deck2Count"`
	Log              []string   `json:"log"`
	DestroyableCards []CardView `json:"destroyableCards"`
}

func newCardView(c *game.Card) CardView {
	return CardView{
		ID:              c.ID(),
		Key:             c.Type().Key,
		Name:            c.Type().Name,
		Power:           c.Power(),
		PowerBase:       c.PowerBase(),
		PowerAugment:    c.PowerAugment(),
		PawnRequirement: c.Type().PawnRequirement,
		InvertX:         c.InvertX(),
	}
}

func newCardViews(cards []*game.Card) []CardView {
	out := make([]CardView, 0, len(cards))
	for _, c := range cards {
		out = append(out, newCardView(c))
	}
	return out
}

func newGameView(g *game.Game) GameView {
	view := GameView{
		ID:               g.ID(),
		Phase:            string(g.Phase()),
		ActingPlayerID:   g.ActingPlayer(),
		Hand1:            newCardViews(g.Hand(game.Player1).Cards()),
		Hand2Count:       g.Hand(game.Player2).Len(),
		Deck1Count:       g.Deck(game.Player1).Len(),
		Deck2Count:       g.Deck(game.Player2).Len(),
		DestroyableCards: newCardViews(g.DestroyableCards()),
	}
	for _, slot := range g.Slots() {
		sv := SlotView{
			Row:       slot.Row(),
			Col:       slot.Col(),
			PawnCount: slot.PawnCount(),
			PlayerID:  slot.Owner(),
		}
		if card := slot.Card(); card != nil {
			cv := newCardView(card)
			sv.Card = &cv
		}
		view.Slots = append(view.Slots, sv)
	}
	for _, playerID := range []string{game.Player1, game.Player2} {
		for row := 0; row < game.BoardRows; row++ {
			lane := g.Lane(playerID, row)
			view.Lanes = append(view.Lanes, LaneView{
				PlayerID: playerID,
				Row:      row,
				Points:   lane.Points(),
				Modifier: lane.Modifier(),
			})
		}
	}
	for _, entry := range g.Log().Entries() {
		view.Log = append(view.Log, entry.Message)
	}
	return view
}

// EventView is the wire representation of one engine event.
type EventView struct {
	Type     string    `json:"type"`
	PlayerID string    `json:"playerId,omitempty"`
	CardID   string    `json:"cardId,omitempty"`
	Row      *int      `json:"row,omitempty"`
	Col      *int      `json:"col,omitempty"`
	Phase    string    `json:"phase,omitempty"`
	Message  string    `json:"message,omitempty"`
	Kind     string    `json:"kind,omitempty"`
	Card     *CardView `json:"card,omitempty"`
}

func newEventView(event game.Event) EventView {
	view := EventView{
		Type:     string(event.Type),
		PlayerID: event.PlayerID,
		CardID:   event.CardID,
		Phase:    string(event.Phase),
		Message:  event.Message,
	}
	switch event.Type {
	case game.EventCardPlayed, game.EventSlotChanged, game.EventLaneChanged:
		row, col := event.Row, event.Col
		view.Row = &row
		view.Col = &col
	}
	if event.Action != nil {
		view.Kind = string(event.Action.Kind())
	}
	if event.Card != nil {
		cv := newCardView(event.Card)
		view.Card = &cv
	}
	return view
}
