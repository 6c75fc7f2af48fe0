package shared

import (
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a Bela deck.
const DeckSize = 32

// Deck represents the undealt cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates the 32-card deck, suit by suit.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}
	return &Deck{Cards: cards}
}

// DeckFromHands collects every card currently held by the players.
func DeckFromHands(players *Players) *Deck {
	d := &Deck{}
	for _, p := range players.Seats {
		d.Cards = append(d.Cards, p.Hand...)
	}
	return d
}

func (d *Deck) Len() int {
	return len(d.Cards)
}

// Draw removes a uniformly random card from the deck.
func (d *Deck) Draw(rng *rand.Rand) (Card, bool) {
	n := len(d.Cards)
	if n == 0 {
		return Card{}, false
	}
	i := rng.IntN(n)
	card := d.Cards[i]
	d.Cards[i] = d.Cards[n-1]
	d.Cards = d.Cards[:n-1]
	return card, true
}

// ShuffleDeal draws every card and hands them out one at a time, starting at the
// seat under the players' turn pointer.
func (d *Deck) ShuffleDeal(players *Players, rng *rand.Rand) {
	for {
		card, ok := d.Draw(rng)
		if !ok {
			return
		}
		players.GiveCardToNext(card)
	}
}

// Validate checks that the deck holds the full set of 32 distinct cards.
func (d *Deck) Validate() error {
	if len(d.Cards) != DeckSize {
		return fmt.Errorf("%w: expected %d cards in play, got %d", ErrInvariantViolation, DeckSize, len(d.Cards))
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range d.Cards {
		if !c.Suit.Valid() || !c.Rank.Valid() {
			return fmt.Errorf("%w: invalid card %v", ErrInvariantViolation, c)
		}
		if seen[c] {
			return fmt.Errorf("%w: duplicate card %s", ErrInvariantViolation, c)
		}
		seen[c] = true
	}
	return nil
}
