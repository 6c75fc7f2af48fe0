package protocol

import (
	"encoding/json"
	"fmt"

	"bela-game/internal/game"
	"bela-game/internal/shared"
)

// Message represents a generic WebSocket message structure.
type Message struct {
	Type    string          `json:"type"`              // Type of the message (e.g., "card_played", "trick_end")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

const (
	TypeRoundStart = "round_start"
	TypeError      = "error"
	TypePing       = "ping"
	TypePong       = "pong"
)

// --- Server -> Client Payload Structs ---

type PlayerInfo struct {
	Name     string      `json:"name"`
	Position int         `json:"position"` // Seat at the table (0-3)
	Team     shared.Team `json:"team"`
}

type RoundStartPayload struct {
	RoundID string       `json:"round_id"`
	Dealer  int          `json:"dealer"`
	Players []PlayerInfo `json:"players"`
}

type TrumpCallPayload struct {
	RoundID string       `json:"round_id"`
	Seat    int          `json:"seat"`
	Suit    *shared.Suit `json:"suit"` // nil for a pass
}

type DeclarationsPayload struct {
	RoundID      string                   `json:"round_id"`
	Declarations []shared.SeatDeclaration `json:"declarations"`
}

type BelaPayload struct {
	RoundID string `json:"round_id"`
	Seat    int    `json:"seat"`
}

type CardPlayedPayload struct {
	RoundID string      `json:"round_id"`
	Seat    int         `json:"seat"`
	Card    shared.Card `json:"card"`
}

type TrickEndPayload struct {
	RoundID    string              `json:"round_id"`
	WinnerSeat int                 `json:"winner_seat"`
	WinnerTeam shared.Team         `json:"winner_team"`
	Cards      []shared.PlayedCard `json:"cards"`
	Points     int                 `json:"points"`
}

type RoundEndPayload struct {
	RoundID    string       `json:"round_id"`
	Team1Score int          `json:"team1_score"`
	Team2Score int          `json:"team2_score"`
	FailedCall bool         `json:"failed_call"`
	Stigl      *shared.Team `json:"stigl,omitempty"`
	Bela       *shared.Team `json:"bela,omitempty"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	if payload == nil {
		return json.Marshal(Message{Type: msgType})
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}

// RoundStart announces a freshly dealt round.
func RoundStart(r *game.Round) ([]byte, error) {
	names := r.Names()
	players := make([]PlayerInfo, len(names))
	for i, name := range names {
		players[i] = PlayerInfo{Name: name, Position: i, Team: shared.TeamOfSeat(i)}
	}
	return NewMessage(TypeRoundStart, RoundStartPayload{RoundID: r.ID(), Dealer: r.Dealer(), Players: players})
}

// FromEvent encodes a round event for spectators.
func FromEvent(roundID string, ev game.Event) ([]byte, error) {
	var payload interface{}
	switch e := ev.(type) {
	case game.TrumpCalled:
		p := TrumpCallPayload{RoundID: roundID, Seat: e.Seat}
		if e.Trump != nil {
			suit := e.Trump.Suit
			p.Suit = &suit
		}
		payload = p
	case game.DeclarationsCalled:
		payload = DeclarationsPayload{RoundID: roundID, Declarations: e.Declarations}
	case game.BelaDeclared:
		payload = BelaPayload{RoundID: roundID, Seat: e.Seat}
	case game.CardPlayed:
		payload = CardPlayedPayload{RoundID: roundID, Seat: e.Seat, Card: e.Card}
	case game.TrickDone:
		payload = TrickEndPayload{
			RoundID:    roundID,
			WinnerSeat: e.Item.Winner,
			WinnerTeam: e.Item.WinnerTeam,
			Cards:      e.Item.Trick.Cards,
			Points:     e.Item.Points,
		}
	case game.RoundScored:
		payload = RoundEndPayload{
			RoundID:    roundID,
			Team1Score: e.Result.Final.Get(shared.TeamA),
			Team2Score: e.Result.Final.Get(shared.TeamB),
			FailedCall: e.Result.FailedCall,
			Stigl:      e.Result.Stigl,
			Bela:       e.Result.Bela,
		}
	default:
		return nil, fmt.Errorf("unknown event %T", ev)
	}
	return NewMessage(string(ev.Type()), payload)
}
