package shared

// Trump is the suit called for the round together with the seat that called it.
type Trump struct {
	Seat int  `json:"seat"`
	Suit Suit `json:"suit"`
}

// CallerTeam is the team that has to make the call succeed.
func (t Trump) CallerTeam() Team {
	return TeamOfSeat(t.Seat)
}
