package server

import (
	"encoding/json"

	"summitgen/internal/level"
)

// Message types exchanged with clients.
const (
	MessageTypeList      = "list"
	MessageTypeLoad      = "load"
	MessageTypeLevelList = "level_list"
	MessageTypeLevel     = "level"
	MessageTypeError     = "error"
)

// BaseMessage is the envelope for every message on the wire.
type BaseMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// LoadRequest asks for a single level by id.
type LoadRequest struct {
	ID string `json:"id"`
}

// LevelListMessage answers a list request.
type LevelListMessage struct {
	Levels []string `json:"levels"`
}

// LevelMessage answers a load request with the full definition.
type LevelMessage struct {
	Level *level.LevelDefinition `json:"level"`
}

// ErrorMessage reports a failed request.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes sent to clients.
const (
	ErrCodeUnknownType = "UNKNOWN_MESSAGE_TYPE"
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeNotFound    = "LEVEL_NOT_FOUND"
	ErrCodeLoadFailed  = "LOAD_FAILED"
	ErrCodeListFailed  = "LIST_FAILED"
)

func envelope(msgType string, payload interface{}) (BaseMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return BaseMessage{}, err
	}
	return BaseMessage{Type: msgType, Payload: data}, nil
}
