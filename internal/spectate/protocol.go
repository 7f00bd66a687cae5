// Package spectate streams live game state to WebSocket spectators.
// Every message is a JSON envelope {"t": type, "p": payload}.
package spectate

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Message types.
const (
	MsgHello = "hello"
	MsgState = "state"
	MsgEvent = "event"
)

// ProtocolVersion is sent in the hello message.
const ProtocolVersion = 1

// Envelope wraps every message on the wire.
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

// Hello greets a newly connected spectator.
type Hello struct {
	V      int    `json:"v"`
	Game   string `json:"game"`
	TickHz int    `json:"tickHz"`
}

// Event reports a one-shot game notification.
type Event struct {
	Kind      string `json:"kind"` // start, score, record or game_over
	Score     int    `json:"score,omitempty"`
	MaxScore  int    `json:"maxScore,omitempty"`
	NewRecord bool   `json:"newRecord,omitempty"`
}

// Encode marshals payload inside an envelope of type t.
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, errors.New("spectate: empty message type")
	}
	if payload == nil {
		return nil, fmt.Errorf("spectate: nil payload for %q", t)
	}
	pb, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("spectate: encode %q: %w", t, err)
	}
	return json.Marshal(Envelope{T: t, P: pb})
}

// DecodeEnvelope parses an envelope without touching its payload.
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, errors.New("spectate: empty message")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("spectate: decode envelope: %w", err)
	}
	return e, nil
}

// DecodePayload parses the payload of env into a T.
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("spectate: empty payload for %q", env.T)
	}
	err := json.Unmarshal(env.P, &out)
	return out, err
}
