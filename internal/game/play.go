package game

import (
	"fmt"
	"slices"

	"bela-game/internal/shared"

	"github.com/sirupsen/logrus"
)

// TricksPerRound is the number of tricks, and of cards per hand.
const TricksPerRound = 8

// TrickHistoryItem is a completed trick with its outcome.
type TrickHistoryItem struct {
	Trick      shared.Trick
	Trump      shared.Trump
	Winner     int
	WinnerTeam shared.Team
	Points     int
}

// Clone returns a copy that shares no cards with the item.
func (item TrickHistoryItem) Clone() TrickHistoryItem {
	item.Trick = item.Trick.Clone()
	return item
}

func newTrickHistoryItem(trick *shared.Trick, trump shared.Trump) (TrickHistoryItem, error) {
	winner, err := trick.Winner(trump.Suit)
	if err != nil {
		return TrickHistoryItem{}, err
	}
	return TrickHistoryItem{
		Trick:      trick.Clone(),
		Trump:      trump,
		Winner:     winner,
		WinnerTeam: shared.TeamOfSeat(winner),
		Points:     trick.Points(trump.Suit),
	}, nil
}

// playTricks plays tricks until every hand is empty. The seat after the dealer
// leads the first trick, the winner of each trick leads the next.
func (r *Round) playTricks() error {
	if err := r.checkCardsInPlay(); err != nil {
		return err
	}
	lead := r.firstLead()
	for r.players.HaveCards() {
		if len(r.history) == TricksPerRound {
			return fmt.Errorf("%w: cards left after %d tricks", shared.ErrInvariantViolation, TricksPerRound)
		}
		r.currentTrick = shared.NewTrick(lead)
		for !r.currentTrick.IsDone() {
			if err := r.playTurn(); err != nil {
				return err
			}
		}

		item, err := newTrickHistoryItem(r.currentTrick, *r.trump)
		if err != nil {
			return err
		}
		r.history = append(r.history, item)
		r.points.Add(item.WinnerTeam, item.Points)
		r.log.WithFields(logrus.Fields{
			"trick":  len(r.history),
			"seat":   item.Winner,
			"team":   item.WinnerTeam.String(),
			"points": item.Points,
		}).Debug("Trick won")
		r.notify(TrickDone{Item: item.Clone()})
		lead = item.Winner
	}
	if len(r.history) != TricksPerRound {
		return fmt.Errorf("%w: round ended after %d tricks", shared.ErrInvariantViolation, len(r.history))
	}
	return nil
}

// playTurn asks the seat on turn for a card and applies it.
func (r *Round) playTurn() error {
	seat := r.currentTrick.Turn
	p, err := r.players.Get(seat)
	if err != nil {
		return err
	}
	if p.Hand.Empty() {
		return fmt.Errorf("%w: seat %d has no card to play", shared.ErrInvariantViolation, seat)
	}

	legal := r.currentTrick.LegalCards(p.Hand, r.trump.Suit)
	card, err := r.player.PlayCard(r.viewFor(seat), seat, slices.Clone(legal))
	if err != nil {
		return fmt.Errorf("seat %d play: %w", seat, err)
	}
	if !slices.Contains(legal, card) {
		return fmt.Errorf("%w: seat %d played %s, legal cards are %v", shared.ErrIllegalMove, seat, card, legal)
	}

	if err := r.checkBela(p, card); err != nil {
		return err
	}
	if err := p.RemoveCard(card); err != nil {
		return err
	}
	if err := r.currentTrick.Play(card); err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{"seat": seat, "card": card.String()}).Debug("Card played")
	r.notify(CardPlayed{Seat: seat, Card: card})
	return nil
}

// checkBela offers bela when a seat plays the trump Queen or King while holding
// both. Only the first confirmation of the round counts.
func (r *Round) checkBela(p *shared.Player, card shared.Card) error {
	if r.belaTeam != nil || !card.IsBelaCard(*r.trump) || !p.Hand.HasBela(*r.trump) {
		return nil
	}
	ok, err := r.player.WillDeclareBela(r.viewFor(p.Index), p.Index)
	if err != nil {
		return fmt.Errorf("seat %d bela: %w", p.Index, err)
	}
	if !ok {
		return nil
	}
	team := p.Team()
	r.belaTeam = &team
	r.log.WithFields(logrus.Fields{"seat": p.Index, "team": team.String()}).Info("Bela declared")
	r.notify(BelaDeclared{Seat: p.Index})
	return nil
}
