package ops

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"guesschar/internal/game"
)

func TestHealth(t *testing.T) {
	r := New(game.NewManager(), "test")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("unexpected health body: %s", w.Body.String())
	}
}

func TestSessionsView(t *testing.T) {
	games := game.NewManager()
	games.StartGame(5, 1, "alice")
	games.StartGame(7, 2, "bob")
	r := New(games, "test")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sessions", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Count    int `json:"count"`
		Sessions []struct {
			ID     string `json:"id"`
			ChatID int64  `json:"chatId"`
			State  string `json:"state"`
		} `json:"sessions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("sessions view should be valid JSON: %v", err)
	}
	if body.Count != 2 {
		t.Fatalf("expected 2 sessions, got %d", body.Count)
	}
	if body.Sessions[0].ChatID != 5 {
		t.Fatalf("sessions should list in creation order, got chat %d first", body.Sessions[0].ChatID)
	}
	if strings.Contains(w.Body.String(), "subject") {
		t.Fatal("subjects must not leak through the ops surface")
	}
}
