package game

import (
	"fmt"

	"bela-game/internal/shared"

	"github.com/sirupsen/logrus"
)

// callTrump asks the three seats after the dealer in turn; the first suit named
// ends the phase. If all of them pass the dealer must call.
func (r *Round) callTrump() error {
	if err := r.players.SetTurn(r.firstLead()); err != nil {
		return err
	}
	for range shared.NumberOfPlayers - 1 {
		seat := r.players.Turn()
		suit, err := r.player.TryCallTrump(r.viewFor(seat), seat)
		if err != nil {
			return fmt.Errorf("seat %d trump call: %w", seat, err)
		}
		if suit != nil {
			return r.setTrump(seat, *suit)
		}
		r.log.WithField("seat", seat).Debug("Trump call passed")
		r.notify(TrumpCalled{Seat: seat})
		r.players.IncrementTurn()
	}

	seat := r.players.Turn()
	suit, err := r.player.MustCallTrump(r.viewFor(seat), seat)
	if err != nil {
		return fmt.Errorf("seat %d forced trump call: %w", seat, err)
	}
	return r.setTrump(seat, suit)
}

func (r *Round) setTrump(seat int, suit shared.Suit) error {
	if !suit.Valid() {
		return fmt.Errorf("%w: seat %d called unsupported suit %d", shared.ErrIllegalMove, seat, int(suit))
	}
	r.trump = &shared.Trump{Seat: seat, Suit: suit}
	r.log.WithFields(logrus.Fields{"seat": seat, "trump": suit.String()}).Info("Trump called")

	trump := *r.trump
	r.notify(TrumpCalled{Seat: seat, Trump: &trump})
	return nil
}
