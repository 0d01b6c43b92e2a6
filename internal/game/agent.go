package game

import "go.uber.org/zap"

// Agent is the scripted opponent. It watches the engine's action stream and
// answers any play or pass by the other player with the first legal move it
// finds, or a pass when none qualifies. No lookahead, no scoring heuristic.
type Agent struct {
	game     *Game
	playerID string
	logger   *zap.Logger
	handle   int
}

// NewAgent attaches a scripted opponent for playerID to the game's event bus.
func NewAgent(g *Game, playerID string, logger *zap.Logger) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	agent := &Agent{
		game:     g,
		playerID: playerID,
		logger:   logger,
	}
	agent.handle = g.Bus().SubscribeTyped(EventAction, agent.onAction)
	return agent
}

// Detach unsubscribes the agent from the game.
func (a *Agent) Detach() {
	a.game.Bus().Unsubscribe(a.handle)
}

func (a *Agent) onAction(event Event) {
	action := event.Action
	if action == nil {
		return
	}
	switch action.Kind() {
	case ActionKindPlayCard, ActionKindPass:
	default:
		return
	}
	if action.Player() == a.playerID {
		return
	}

	play, ok := a.pickMove()
	if !ok {
		a.game.Enqueue(PassAction{PlayerID: a.playerID})
		return
	}
	a.game.EnqueueFunc(play, func(result ActionResult) {
		if result.Success {
			return
		}
		a.logger.Debug("agent move rejected, passing",
			zap.String("player_id", a.playerID),
			zap.String("error_code", string(result.ErrorCode)),
		)
		a.game.Enqueue(PassAction{PlayerID: a.playerID})
	})
}

// pickMove scans the agent's hand for the first card whose pawn requirement
// is met by some unoccupied slot the agent owns.
func (a *Agent) pickMove() (PlayCardAction, bool) {
	for _, card := range a.game.Hand(a.playerID).Cards() {
		for _, slot := range a.game.Slots() {
			if slot.Owner() != a.playerID || slot.Card() != nil {
				continue
			}
			if slot.PawnCount() < card.Type().PawnRequirement {
				continue
			}
			return PlayCardAction{
				Row:      slot.Row(),
				Col:      slot.Col(),
				PlayerID: a.playerID,
				CardID:   card.ID(),
			}, true
		}
	}
	return PlayCardAction{}, false
}
