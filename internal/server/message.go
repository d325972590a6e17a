package server

import (
	"encoding/json"
	"time"

	"github.com/lox/pokerhands/poker"
)

// MessageType identifies a websocket message
type MessageType string

// Client → Server
const (
	MessageTypeRound MessageType = "round"
	MessageTypeReset MessageType = "reset"
	MessageTypeScore MessageType = "score"
)

// Server → Client
const (
	MessageTypeOutcome MessageType = "outcome"
	MessageTypeTally   MessageType = "tally"
	MessageTypeError   MessageType = "error"
)

// Error codes
const (
	ErrorCodeInvalidMessage = "invalid_message"
	ErrorCodeInvalidRound   = "invalid_round"
	ErrorCodeUnknownType    = "unknown_message_type"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message stamped with the given time
func NewMessage(messageType MessageType, data any, now time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: now,
	}, nil
}

// RoundData asks the server to evaluate a round. Either Line holds all ten
// cards, or Player1 and Player2 hold five each.
type RoundData struct {
	Line    string `json:"line,omitempty"`
	Player1 string `json:"player1,omitempty"`
	Player2 string `json:"player2,omitempty"`
}

// HandData describes one evaluated hand
type HandData struct {
	Cards    string `json:"cards"`
	Category string `json:"category"`
}

// OutcomeData is the reply to a round
type OutcomeData struct {
	Player1     HandData    `json:"player1"`
	Player2     HandData    `json:"player2"`
	Outcome     string      `json:"outcome"`
	Explanation string      `json:"explanation"`
	Score       poker.Score `json:"score"`
}

// TallyData reports the session's running score
type TallyData struct {
	Rules string      `json:"rules"`
	Score poker.Score `json:"score"`
}

// ErrorData describes a rejected message
type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func outcomeData(res poker.Result, score poker.Score) OutcomeData {
	return OutcomeData{
		Player1:     HandData{Cards: res.Round.Player1.String(), Category: res.Category1.String()},
		Player2:     HandData{Cards: res.Round.Player2.String(), Category: res.Category2.String()},
		Outcome:     res.Outcome.String(),
		Explanation: res.Explain(),
		Score:       score,
	}
}
