package game

import "bela-game/internal/shared"

// EventType names an event on the spectator wire and in logs.
type EventType string

const (
	EventTrumpCall    EventType = "trump_call"
	EventDeclarations EventType = "declarations"
	EventBela         EventType = "bela"
	EventCardPlayed   EventType = "card_played"
	EventTrickDone    EventType = "trick_end"
	EventRoundScored  EventType = "round_end"
)

// Event describes something that happened in the round.
type Event interface {
	Type() EventType
}

// CardPlayed is emitted after every play.
type CardPlayed struct {
	Seat int
	Card shared.Card
}

// TrumpCalled is emitted for every pass (Trump is nil) and for the final call.
type TrumpCalled struct {
	Seat  int
	Trump *shared.Trump
}

// DeclarationsCalled carries the declarations a team keeps.
type DeclarationsCalled struct {
	Declarations []shared.SeatDeclaration
}

// BelaDeclared is emitted once, when a seat confirms bela.
type BelaDeclared struct {
	Seat int
}

// TrickDone carries the summary of a completed trick.
type TrickDone struct {
	Item TrickHistoryItem
}

// RoundScored carries the final result.
type RoundScored struct {
	Result ScoreResult
}

func (CardPlayed) Type() EventType         { return EventCardPlayed }
func (TrumpCalled) Type() EventType        { return EventTrumpCall }
func (DeclarationsCalled) Type() EventType { return EventDeclarations }
func (BelaDeclared) Type() EventType       { return EventBela }
func (TrickDone) Type() EventType          { return EventTrickDone }
func (RoundScored) Type() EventType        { return EventRoundScored }
