package shared

var normalPoints = map[Rank]int{
	VII:   0,
	VIII:  0,
	IX:    0,
	X:     10,
	Jack:  2,
	Queen: 3,
	King:  4,
	Ace:   11,
}

var trumpPoints = map[Rank]int{
	VII:   0,
	VIII:  0,
	IX:    14,
	X:     10,
	Jack:  20,
	Queen: 3,
	King:  4,
	Ace:   11,
}

// NormalPoints is the value of a rank outside the trump suit.
func NormalPoints(r Rank) int {
	return normalPoints[r]
}

// TrumpPoints is the value of a rank inside the trump suit.
func TrumpPoints(r Rank) int {
	return trumpPoints[r]
}

// CardPoints values a card on the scale its suit calls for.
func CardPoints(c Card, trump Suit) int {
	if c.Suit == trump {
		return TrumpPoints(c.Rank)
	}
	return NormalPoints(c.Rank)
}

// BetterThanNormal compares two cards of the same suit on the normal scale.
// Equal points fall back to rank order.
func BetterThanNormal(a, b Card) bool {
	ap, bp := NormalPoints(a.Rank), NormalPoints(b.Rank)
	if ap == bp {
		return a.Rank > b.Rank
	}
	return ap > bp
}

// BetterThanTrump compares two trump cards on the trump scale.
func BetterThanTrump(a, b Card) bool {
	ap, bp := TrumpPoints(a.Rank), TrumpPoints(b.Rank)
	if ap == bp {
		return a.Rank > b.Rank
	}
	return ap > bp
}

// BestNormal returns the best card of the first card's suit.
func BestNormal(cards []Card) (Card, bool) {
	if len(cards) == 0 {
		return Card{}, false
	}
	best := cards[0]
	for _, c := range cards[1:] {
		if c.Suit == best.Suit && BetterThanNormal(c, best) {
			best = c
		}
	}
	return best, true
}

// BestTrump returns the best card of the trump suit, if any was played.
func BestTrump(cards []Card, trump Suit) (Card, bool) {
	var best Card
	found := false
	for _, c := range cards {
		if c.Suit != trump {
			continue
		}
		if !found || BetterThanTrump(c, best) {
			best = c
			found = true
		}
	}
	return best, found
}
