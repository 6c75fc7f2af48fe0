package shared

import (
	"cmp"
	"fmt"
	"strings"
)

// Suit represents the suit of a card (Leaf, Pumpkin, Herz, Acorn).
type Suit int

const (
	Leaf Suit = iota
	Pumpkin
	Herz
	Acorn
)

// Suits lists every suit in iteration order.
var Suits = [...]Suit{Leaf, Pumpkin, Herz, Acorn}

var suitNames = [...]string{"Leaf", "Pumpkin", "Herz", "Acorn"}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Leaf && s <= Acorn
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

func (s Suit) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: unknown suit %d", ErrIllegalMove, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(text []byte) error {
	parsed, err := ParseSuit(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSuit maps a suit name (case-insensitive) to a Suit.
func ParseSuit(name string) (Suit, error) {
	for i, n := range suitNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unsupported suit %q", ErrIllegalMove, name)
}

// Rank represents the rank of a card. Ordinal order only matters for runs.
type Rank int

const (
	VII Rank = iota
	VIII
	IX
	X
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in ordinal order.
var Ranks = [...]Rank{VII, VIII, IX, X, Jack, Queen, King, Ace}

var rankNames = [...]string{"VII", "VIII", "IX", "X", "Jack", "Queen", "King", "Ace"}

func (r Rank) Valid() bool {
	return r >= VII && r <= Ace
}

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: unknown rank %d", ErrIllegalMove, int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(text []byte) error {
	for i, n := range rankNames {
		if strings.EqualFold(n, string(text)) {
			*r = Rank(i)
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported rank %q", ErrIllegalMove, string(text))
}

// Card represents a single card of the 32-card deck.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

func (c Card) String() string {
	return c.Suit.String() + " " + c.Rank.String()
}

// Compare orders cards by suit, then rank.
func (c Card) Compare(o Card) int {
	if s := cmp.Compare(c.Suit, o.Suit); s != 0 {
		return s
	}
	return cmp.Compare(c.Rank, o.Rank)
}

func (c Card) Less(o Card) bool {
	return c.Compare(o) < 0
}

func (c Card) IsTrump(trump Suit) bool {
	return c.Suit == trump
}

// IsBelaCard reports whether the card is the Queen or King of the trump suit.
func (c Card) IsBelaCard(trump Trump) bool {
	return c.Suit == trump.Suit && (c.Rank == Queen || c.Rank == King)
}
