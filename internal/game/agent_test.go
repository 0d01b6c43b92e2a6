package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAgentAnswersPlayWithPlay(t *testing.T) {
	g := NewGame(uniformCatalog(8, 1, 1, nil), zap.NewNop())
	NewAgent(g, Player2, zap.NewNop())

	card := g.Hand(Player1).Cards()[0]
	require.True(t, g.Act(PlayCardAction{Row: 0, Col: 0, PlayerID: Player1, CardID: card.ID()}).Success)

	// The agent's move was drained inside the same Act call: it placed a
	// card in its own column and the turn came back to player 1.
	assert.Equal(t, Player1, g.ActingPlayer())
	require.Len(t, g.Actions(), 2)
	played, ok := g.Actions()[1].(PlayCardAction)
	require.True(t, ok)
	assert.Equal(t, Player2, played.PlayerID)

	occupied := 0
	for row := 0; row < BoardRows; row++ {
		if g.Slot(row, BoardCols-1).Card() != nil {
			occupied++
		}
	}
	assert.Equal(t, 1, occupied)
}

func TestAgentPassesWhenNoLegalMove(t *testing.T) {
	// Requirement 3 can never be met on a single starting pawn.
	g := NewGame(uniformCatalog(8, 1, 3, nil), zap.NewNop())
	NewAgent(g, Player2, zap.NewNop())

	require.True(t, g.Act(PassAction{PlayerID: Player1}).Success)

	// Agent had no legal move, answered with a pass, and the back-to-back
	// passes ended the game.
	assert.Equal(t, PhaseComplete, g.Phase())
	require.Len(t, g.Actions(), 2)
	_, ok := g.Actions()[1].(PassAction)
	assert.True(t, ok)
}

func TestAgentIgnoresReroll(t *testing.T) {
	g := NewGame(uniformCatalog(12, 1, 1, nil), zap.NewNop())
	NewAgent(g, Player2, zap.NewNop())

	require.True(t, g.Act(RerollAction{PlayerID: Player1}).Success)

	assert.Len(t, g.Actions(), 1)
	assert.Equal(t, Player1, g.ActingPlayer())
}

func TestAgentIgnoresOwnActions(t *testing.T) {
	g := NewGame(uniformCatalog(8, 1, 1, nil), zap.NewNop())
	NewAgent(g, Player2, zap.NewNop())

	card := g.Hand(Player1).Cards()[0]
	require.True(t, g.Act(PlayCardAction{Row: 0, Col: 0, PlayerID: Player1, CardID: card.ID()}).Success)

	// Exactly one reaction: the agent must not have chained off its own
	// play event.
	assert.Len(t, g.Actions(), 2)
}

func TestAgentDetach(t *testing.T) {
	g := NewGame(uniformCatalog(8, 1, 1, nil), zap.NewNop())
	agent := NewAgent(g, Player2, zap.NewNop())
	agent.Detach()

	card := g.Hand(Player1).Cards()[0]
	require.True(t, g.Act(PlayCardAction{Row: 0, Col: 0, PlayerID: Player1, CardID: card.ID()}).Success)

	assert.Len(t, g.Actions(), 1)
	assert.Equal(t, Player2, g.ActingPlayer())
}
