package shared

import (
	"fmt"
	"slices"
)

// NumberOfPlayers is the fixed number of seats at the table.
const NumberOfPlayers = 4

// Hand is the ordered collection of cards a player holds.
type Hand []Card

// Add adds a card to the hand.
func (h *Hand) Add(card Card) {
	*h = append(*h, card)
}

// Remove removes a card from the hand.
func (h *Hand) Remove(card Card) error {
	i := slices.Index(*h, card)
	if i < 0 {
		return fmt.Errorf("%w: card %s not in hand", ErrInvariantViolation, card)
	}
	*h = slices.Delete(*h, i, i+1)
	return nil
}

func (h Hand) Contains(card Card) bool {
	return slices.Contains(h, card)
}

// HasSuit reports whether any held card is of the suit.
func (h Hand) HasSuit(suit Suit) bool {
	for _, card := range h {
		if card.Suit == suit {
			return true
		}
	}
	return false
}

// OfSuit returns the held cards of the suit, in hand order.
func (h Hand) OfSuit(suit Suit) []Card {
	var out []Card
	for _, card := range h {
		if card.Suit == suit {
			out = append(out, card)
		}
	}
	return out
}

// Sort orders the hand by suit, then rank.
func (h Hand) Sort() {
	slices.SortFunc(h, Card.Compare)
}

func (h Hand) Empty() bool {
	return len(h) == 0
}

// HasBela reports whether both Queen and King of trump are held.
func (h Hand) HasBela(trump Trump) bool {
	return h.Contains(Card{Suit: trump.Suit, Rank: Queen}) && h.Contains(Card{Suit: trump.Suit, Rank: King})
}

func (h Hand) Clone() Hand {
	return slices.Clone(h)
}

// Player represents a seat at the table.
type Player struct {
	Index int    // Seat index, 0-3
	Name  string // Display name
	Hand  Hand   // Cards currently held by the player
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(index int, name string) *Player {
	return &Player{
		Index: index,
		Name:  name,
		Hand:  Hand{},
	}
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand.Add(card)
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) error {
	if err := p.Hand.Remove(card); err != nil {
		return fmt.Errorf("player %d (%s): %w", p.Index, p.Name, err)
	}
	return nil
}

func (p *Player) Team() Team {
	return TeamOfSeat(p.Index)
}

func (p *Player) HasCards() bool {
	return !p.Hand.Empty()
}

// Players holds the four seats and a clockwise turn pointer used while dealing.
type Players struct {
	turn  int
	Seats [NumberOfPlayers]*Player
}

// NewPlayers seats the named players at indices 0-3.
func NewPlayers(names [NumberOfPlayers]string) *Players {
	ps := &Players{}
	for i, name := range names {
		ps.Seats[i] = NewPlayer(i, name)
	}
	return ps
}

// ValidSeat reports whether seat is inside 0-3.
func ValidSeat(seat int) bool {
	return seat >= 0 && seat < NumberOfPlayers
}

// NextSeat returns the seat clockwise of seat.
func NextSeat(seat int) int {
	return (seat + 1) % NumberOfPlayers
}

// Get returns the player at seat.
func (ps *Players) Get(seat int) (*Player, error) {
	if !ValidSeat(seat) {
		return nil, fmt.Errorf("%w: seat %d out of range", ErrInvariantViolation, seat)
	}
	return ps.Seats[seat], nil
}

// SetTurn moves the turn pointer.
func (ps *Players) SetTurn(seat int) error {
	if !ValidSeat(seat) {
		return fmt.Errorf("%w: turn seat %d out of range", ErrInvariantViolation, seat)
	}
	ps.turn = seat
	return nil
}

func (ps *Players) Turn() int {
	return ps.turn
}

func (ps *Players) IncrementTurn() {
	ps.turn = NextSeat(ps.turn)
}

// GiveCardToNext deals a card to the seat under the turn pointer and advances it.
func (ps *Players) GiveCardToNext(card Card) {
	ps.Seats[ps.turn].AddCard(card)
	ps.IncrementTurn()
}

func (ps *Players) SortHands() {
	for _, p := range ps.Seats {
		p.Hand.Sort()
	}
}

// HaveCards reports whether any seat still holds a card.
func (ps *Players) HaveCards() bool {
	for _, p := range ps.Seats {
		if p.HasCards() {
			return true
		}
	}
	return false
}
