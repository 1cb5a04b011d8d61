package queue

import (
	"encoding/json"
	"testing"
)

// Consumers in other services parse these payloads by key, so the wire
// shape is a contract: snake_case keys, stable names.
func TestUserRegisteredEventWireShape(t *testing.T) {
	t.Parallel()

	ev := UserRegisteredEvent{
		UserID:       7,
		Username:     "alice",
		Email:        "alice@x.com",
		RegisteredAt: "2026-09-01T10:00:00Z",
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var keys map[string]any
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}
	for _, k := range []string{"user_id", "username", "email", "registered_at"} {
		if _, ok := keys[k]; !ok {
			t.Fatalf("payload missing key %q: %s", k, raw)
		}
	}
	if len(keys) != 4 {
		t.Fatalf("payload has unexpected keys: %s", raw)
	}

	var back UserRegisteredEvent
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != ev {
		t.Fatalf("round trip changed event: %+v != %+v", back, ev)
	}
}

func TestBookSavedEventWireShape(t *testing.T) {
	t.Parallel()

	ev := BookSavedEvent{
		UserID:   7,
		Username: "alice",
		BookID:   "vol-1",
		Title:    "Dune",
		Authors:  []string{"Frank Herbert"},
		SavedAt:  "2026-09-01T10:00:00Z",
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var keys map[string]any
	if err := json.Unmarshal(raw, &keys); err != nil {
		t.Fatalf("unmarshal into map: %v", err)
	}
	for _, k := range []string{"user_id", "username", "book_id", "title", "authors", "saved_at"} {
		if _, ok := keys[k]; !ok {
			t.Fatalf("payload missing key %q: %s", k, raw)
		}
	}

	var back BookSavedEvent
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.BookID != ev.BookID || len(back.Authors) != 1 || back.Authors[0] != "Frank Herbert" {
		t.Fatalf("round trip changed event: %+v", back)
	}
}
