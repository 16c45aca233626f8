package server

import (
	"encoding/json"
	"fmt"
	"testing"

	"summitgen/internal/level"
)

// fakeStore serves canned levels without touching disk.
type fakeStore struct {
	levels map[string]*level.LevelDefinition
}

func newFakeStore() *fakeStore {
	tutorial := level.TutorialLevel()
	return &fakeStore{levels: map[string]*level.LevelDefinition{tutorial.ID: tutorial}}
}

func (f *fakeStore) SaveLevel(lvl *level.LevelDefinition) error {
	f.levels[lvl.ID] = lvl
	return nil
}

func (f *fakeStore) LoadLevel(id string) (*level.LevelDefinition, error) {
	lvl, ok := f.levels[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", level.ErrNotFound, id)
	}
	return lvl, nil
}

func (f *fakeStore) ListLevels() ([]string, error) {
	ids := make([]string, 0, len(f.levels))
	for id := range f.levels {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeStore) Close() error { return nil }

// queuedReply pops the next message the handler queued for delivery.
func queuedReply(t *testing.T, conn *Connection) BaseMessage {
	t.Helper()
	select {
	case data := <-conn.send:
		var msg BaseMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("queued reply not valid JSON: %v", err)
		}
		return msg
	default:
		t.Fatal("no reply queued")
	}
	return BaseMessage{}
}

func TestHandleListMessage(t *testing.T) {
	h := NewLevelHandler(newFakeStore())
	conn := NewConnection(nil)

	h.HandleMessage(conn, []byte(`{"type":"list"}`))

	reply := queuedReply(t, conn)
	if reply.Type != MessageTypeLevelList {
		t.Fatalf("reply type = %q, want %q", reply.Type, MessageTypeLevelList)
	}
	var payload LevelListMessage
	if err := json.Unmarshal(reply.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if len(payload.Levels) != 1 || payload.Levels[0] != "tutorial_01" {
		t.Fatalf("levels = %v", payload.Levels)
	}
}

func TestHandleLoadMessage(t *testing.T) {
	h := NewLevelHandler(newFakeStore())
	conn := NewConnection(nil)

	h.HandleMessage(conn, []byte(`{"type":"load","payload":{"id":"tutorial_01"}}`))

	reply := queuedReply(t, conn)
	if reply.Type != MessageTypeLevel {
		t.Fatalf("reply type = %q, want %q", reply.Type, MessageTypeLevel)
	}
	var payload LevelMessage
	if err := json.Unmarshal(reply.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Level == nil || payload.Level.ID != "tutorial_01" {
		t.Fatalf("level payload = %+v", payload.Level)
	}
}

func TestHandleLoadUnknownLevel(t *testing.T) {
	h := NewLevelHandler(newFakeStore())
	conn := NewConnection(nil)

	h.HandleMessage(conn, []byte(`{"type":"load","payload":{"id":"nope"}}`))

	reply := queuedReply(t, conn)
	if reply.Type != MessageTypeError {
		t.Fatalf("reply type = %q, want error", reply.Type)
	}
	var payload ErrorMessage
	if err := json.Unmarshal(reply.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Code != ErrCodeNotFound {
		t.Fatalf("error code = %q, want %q", payload.Code, ErrCodeNotFound)
	}
}

func TestHandleLoadWithoutID(t *testing.T) {
	h := NewLevelHandler(newFakeStore())
	conn := NewConnection(nil)

	h.HandleMessage(conn, []byte(`{"type":"load","payload":{}}`))

	reply := queuedReply(t, conn)
	var payload ErrorMessage
	if err := json.Unmarshal(reply.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Code != ErrCodeBadRequest {
		t.Fatalf("error code = %q, want %q", payload.Code, ErrCodeBadRequest)
	}
}

func TestHandleUnknownMessageType(t *testing.T) {
	h := NewLevelHandler(newFakeStore())
	conn := NewConnection(nil)

	h.HandleMessage(conn, []byte(`{"type":"teleport"}`))

	reply := queuedReply(t, conn)
	var payload ErrorMessage
	if err := json.Unmarshal(reply.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Code != ErrCodeUnknownType {
		t.Fatalf("error code = %q, want %q", payload.Code, ErrCodeUnknownType)
	}
}

func TestHandleMalformedMessage(t *testing.T) {
	h := NewLevelHandler(newFakeStore())
	conn := NewConnection(nil)

	h.HandleMessage(conn, []byte(`{broken`))

	reply := queuedReply(t, conn)
	if reply.Type != MessageTypeError {
		t.Fatalf("reply type = %q, want error", reply.Type)
	}
}
