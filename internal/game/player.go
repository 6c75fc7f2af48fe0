package game

import "bela-game/internal/shared"

// RoundPlayer makes the decisions for every seat. One instance serves all four
// seats; the seat is passed explicitly. Calls may block for as long as they need.
// The View is only valid for the duration of a call.
type RoundPlayer interface {
	// TryCallTrump is asked of the first three seats. A nil suit passes.
	TryCallTrump(v View, seat int) (*shared.Suit, error)
	// MustCallTrump is asked of the dealer once everybody else passed.
	MustCallTrump(v View, seat int) (shared.Suit, error)
	// PlayCard must return one of legal.
	PlayCard(v View, seat int, legal []shared.Card) (shared.Card, error)
	CallDeclaration(v View, seat int, d shared.Declaration) (bool, error)
	WillDeclareBela(v View, seat int) (bool, error)
	OnUpdate(v View, ev Event)
}
