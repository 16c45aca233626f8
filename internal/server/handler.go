package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"summitgen/internal/level"
	"summitgen/internal/store"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// LevelHandler answers level list and load requests over WebSocket.
type LevelHandler struct {
	store store.Store
}

// NewLevelHandler creates a handler backed by the given store.
func NewLevelHandler(s store.Store) *LevelHandler {
	return &LevelHandler{store: s}
}

// ServeHTTP upgrades the request and runs the connection pumps. The read
// pump runs on the request goroutine; the write pump gets its own.
func (h *LevelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade: %v", err)
		return
	}

	conn := NewConnection(ws)
	go conn.WritePump()
	conn.ReadPump(h)
}

// HandleMessage dispatches one client message.
func (h *LevelHandler) HandleMessage(conn *Connection, message []byte) {
	var msg BaseMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		h.sendError(conn, ErrCodeBadRequest, "malformed message")
		return
	}

	switch msg.Type {
	case MessageTypeList:
		h.handleList(conn)
	case MessageTypeLoad:
		h.handleLoad(conn, msg.Payload)
	default:
		h.sendError(conn, ErrCodeUnknownType, "unknown message type "+msg.Type)
	}
}

func (h *LevelHandler) handleList(conn *Connection) {
	ids, err := h.store.ListLevels()
	if err != nil {
		log.Printf("list levels: %v", err)
		h.sendError(conn, ErrCodeListFailed, "failed to list levels")
		return
	}
	h.send(conn, MessageTypeLevelList, LevelListMessage{Levels: ids})
}

func (h *LevelHandler) handleLoad(conn *Connection, payload json.RawMessage) {
	var req LoadRequest
	if err := json.Unmarshal(payload, &req); err != nil || req.ID == "" {
		h.sendError(conn, ErrCodeBadRequest, "load requires a level id")
		return
	}

	lvl, err := h.store.LoadLevel(req.ID)
	if err != nil {
		if errors.Is(err, level.ErrNotFound) {
			h.sendError(conn, ErrCodeNotFound, "no level "+req.ID)
			return
		}
		log.Printf("load level %s: %v", req.ID, err)
		h.sendError(conn, ErrCodeLoadFailed, "failed to load level "+req.ID)
		return
	}
	h.send(conn, MessageTypeLevel, LevelMessage{Level: lvl})
}

func (h *LevelHandler) send(conn *Connection, msgType string, payload interface{}) {
	msg, err := envelope(msgType, payload)
	if err != nil {
		log.Printf("marshal %s payload: %v", msgType, err)
		return
	}
	conn.SendMessage(msg)
}

func (h *LevelHandler) sendError(conn *Connection, code, detail string) {
	h.send(conn, MessageTypeError, ErrorMessage{Code: code, Message: detail})
}
