package shared

import "fmt"

// PlayedCard stores a card along with the seat that played it.
type PlayedCard struct {
	Card Card `json:"card"`
	Seat int  `json:"seat"`
}

// Trick represents one exchange of four cards.
type Trick struct {
	Lead  int          `json:"lead"`  // Seat that led the trick
	Turn  int          `json:"turn"`  // Seat to act next
	Cards []PlayedCard `json:"cards"` // Cards played so far, in play order
}

// NewTrick creates an empty trick led by seat.
func NewTrick(lead int) *Trick {
	return &Trick{
		Lead:  lead,
		Turn:  lead,
		Cards: make([]PlayedCard, 0, NumberOfPlayers),
	}
}

// IsDone reports whether every seat has played.
func (t *Trick) IsDone() bool {
	return len(t.Cards) == NumberOfPlayers
}

// Play adds a card for the seat whose turn it is and passes the turn on.
func (t *Trick) Play(card Card) error {
	if t.IsDone() {
		return fmt.Errorf("%w: trick already has %d cards", ErrInvariantViolation, len(t.Cards))
	}
	t.Cards = append(t.Cards, PlayedCard{Card: card, Seat: t.Turn})
	t.Turn = NextSeat(t.Turn)
	return nil
}

// OnTable returns the bare cards in play order.
func (t *Trick) OnTable() []Card {
	out := make([]Card, len(t.Cards))
	for i, pc := range t.Cards {
		out[i] = pc.Card
	}
	return out
}

// LeadSuit returns the suit of the first card, if one was played.
func (t *Trick) LeadSuit() (Suit, bool) {
	if len(t.Cards) == 0 {
		return 0, false
	}
	return t.Cards[0].Card.Suit, true
}

// LegalCards returns the cards of hand that may be played to the trick.
func (t *Trick) LegalCards(hand Hand, trump Suit) []Card {
	if len(t.Cards) == 0 {
		return hand.Clone()
	}
	table := t.OnTable()
	lead := table[0].Suit
	bestTrump, trumpPlayed := BestTrump(table, trump)

	if lead != trump && hand.HasSuit(lead) {
		following := hand.OfSuit(lead)
		if trumpPlayed {
			return following
		}
		bestLead, _ := BestNormal(table)
		return overtakeIfAble(following, func(c Card) bool { return BetterThanNormal(c, bestLead) })
	}

	if hand.HasSuit(trump) {
		trumps := hand.OfSuit(trump)
		if !trumpPlayed {
			return trumps
		}
		return overtakeIfAble(trumps, func(c Card) bool { return BetterThanTrump(c, bestTrump) })
	}

	return hand.Clone()
}

// overtakeIfAble narrows cards to those that beat, unless none does.
func overtakeIfAble(cards []Card, beats func(Card) bool) []Card {
	var higher []Card
	for _, c := range cards {
		if beats(c) {
			higher = append(higher, c)
		}
	}
	if len(higher) == 0 {
		return cards
	}
	return higher
}

// Winner determines the seat that takes the trick.
func (t *Trick) Winner(trump Suit) (int, error) {
	if !t.IsDone() {
		return -1, fmt.Errorf("%w: trick winner asked with %d cards on table", ErrInvariantViolation, len(t.Cards))
	}
	suit, better := t.Cards[0].Card.Suit, BetterThanNormal
	for _, pc := range t.Cards {
		if pc.Card.Suit == trump {
			suit, better = trump, BetterThanTrump
			break
		}
	}

	winner := -1
	var best Card
	for _, pc := range t.Cards {
		if pc.Card.Suit != suit {
			continue
		}
		if winner == -1 || better(pc.Card, best) {
			best = pc.Card
			winner = pc.Seat
		}
	}
	return winner, nil
}

// Points sums the trick's card values on the scale of each card's suit.
func (t *Trick) Points(trump Suit) int {
	points := 0
	for _, pc := range t.Cards {
		points += CardPoints(pc.Card, trump)
	}
	return points
}

// Clone returns a deep copy of the trick.
func (t *Trick) Clone() Trick {
	c := *t
	c.Cards = append([]PlayedCard(nil), t.Cards...)
	return c
}
