package database

// RoundResult is the outcome of one completed round.
type RoundResult struct {
	ID         string `json:"id" db:"id"`
	CreatedAt  string `json:"created_at" db:"created_at"`
	Player1    string `json:"player1" db:"player1"`
	Player2    string `json:"player2" db:"player2"`
	Player3    string `json:"player3" db:"player3"`
	Player4    string `json:"player4" db:"player4"`
	TrumpSeat  int    `json:"trump_seat" db:"trump_seat"`
	TrumpSuit  string `json:"trump_suit" db:"trump_suit"`
	Team1Score int    `json:"team1_score" db:"team1_score"`
	Team2Score int    `json:"team2_score" db:"team2_score"`
	FailedCall bool   `json:"failed_call" db:"failed_call"`
}
