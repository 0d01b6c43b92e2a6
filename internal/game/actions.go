package game

// ErrorCode is the closed set of rule-violation codes returned by Act.
type ErrorCode string

const (
	ErrUnknownAction       ErrorCode = "unknown_action"
	ErrNotActivePlayer     ErrorCode = "not_active_player"
	ErrNotPlayerControlled ErrorCode = "not_player_controlled"
	ErrSlotOccupied        ErrorCode = "slot_occupied"
	ErrInsufficientPawns   ErrorCode = "insufficient_pawns"
)

// ActionKind discriminates the action union.
type ActionKind string

const (
	ActionKindReroll   ActionKind = "reroll"
	ActionKindPass     ActionKind = "pass"
	ActionKindPlayCard ActionKind = "play_card"
)

// Action is one submitted game action. Concrete types carry the payload;
// Kind is the explicit discriminant used for dispatch.
type Action interface {
	Kind() ActionKind
	Player() string
}

// RerollAction swaps cards out of player 1's opening hand during REROLL.
type RerollAction struct {
	PlayerID string
	CardIDs  []string
}

func (a RerollAction) Kind() ActionKind { return ActionKindReroll }
func (a RerollAction) Player() string   { return a.PlayerID }

// PassAction yields the turn. Two consecutive passes end the game.
type PassAction struct {
	PlayerID string
}

func (a PassAction) Kind() ActionKind { return ActionKindPass }
func (a PassAction) Player() string   { return a.PlayerID }

// PlayCardAction places a card from the acting player's hand onto the board.
type PlayCardAction struct {
	Row      int
	Col      int
	PlayerID string
	CardID   string
}

func (a PlayCardAction) Kind() ActionKind { return ActionKindPlayCard }
func (a PlayCardAction) Player() string   { return a.PlayerID }

// ActionResult reports whether an action applied, and why not if it didn't.
type ActionResult struct {
	Success   bool
	ErrorCode ErrorCode
}

func resultOK() ActionResult {
	return ActionResult{Success: true}
}

func resultErr(code ErrorCode) ActionResult {
	return ActionResult{Success: false, ErrorCode: code}
}
