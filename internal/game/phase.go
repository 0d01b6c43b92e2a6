package game

// Phase represents the turn/phase state machine:
// REROLL -> {PLAYER_1_TURN <-> PLAYER_2_TURN} -> COMPLETE.
type Phase string

const (
	PhaseReroll      Phase = "REROLL"
	PhasePlayer1Turn Phase = "PLAYER_1_TURN"
	PhasePlayer2Turn Phase = "PLAYER_2_TURN"
	PhaseComplete    Phase = "COMPLETE"
)

// Player identifiers. The board's column 0 belongs to Player1, column 4 to
// Player2.
const (
	Player1 = "1"
	Player2 = "2"
)

// Opponent returns the other player's id.
func Opponent(playerID string) string {
	if playerID == Player1 {
		return Player2
	}
	return Player1
}
