package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/brickbreaker/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestStore(t *testing.T, scores ...int) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, s := range scores {
		if _, err := store.SaveScore("tui", s); err != nil {
			t.Fatalf("SaveScore(%d) error = %v", s, err)
		}
	}
	return store
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestHealth(t *testing.T) {
	router := NewRouter(newTestStore(t), nil)

	rec := get(t, router, "/api/v1/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, expected 200", rec.Code)
	}

	var body map[string]string
	decode(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("status field = %q, expected ok", body["status"])
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header missing")
	}
}

func TestTopScores(t *testing.T) {
	router := NewRouter(newTestStore(t, 300, 900, 100, 500), nil)

	tests := []struct {
		name     string
		path     string
		code     int
		expected []int
	}{
		{"default limit", "/api/v1/scores", http.StatusOK, []int{900, 500, 300, 100}},
		{"limited", "/api/v1/scores?limit=2", http.StatusOK, []int{900, 500}},
		{"zero limit", "/api/v1/scores?limit=0", http.StatusBadRequest, nil},
		{"bad limit", "/api/v1/scores?limit=abc", http.StatusBadRequest, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, router, tc.path)
			if rec.Code != tc.code {
				t.Fatalf("status = %d, expected %d", rec.Code, tc.code)
			}
			if tc.code != http.StatusOK {
				return
			}

			var body struct {
				Scores []storage.ScoreEntry `json:"scores"`
				Count  int                  `json:"count"`
			}
			decode(t, rec, &body)
			if body.Count != len(tc.expected) {
				t.Fatalf("count = %d, expected %d", body.Count, len(tc.expected))
			}
			for i, want := range tc.expected {
				if body.Scores[i].Score != want {
					t.Errorf("scores[%d] = %d, expected %d", i, body.Scores[i].Score, want)
				}
			}
		})
	}
}

func TestTopScoresEmpty(t *testing.T) {
	router := NewRouter(newTestStore(t), nil)

	rec := get(t, router, "/api/v1/scores")
	var body map[string]json.RawMessage
	decode(t, rec, &body)
	if string(body["scores"]) != "[]" {
		t.Errorf("scores = %s, expected []", body["scores"])
	}
}

func TestBestScoreAndStats(t *testing.T) {
	router := NewRouter(newTestStore(t, 200, 600), nil)

	var best struct {
		Score int `json:"score"`
	}
	decode(t, get(t, router, "/api/v1/scores/best"), &best)
	if best.Score != 600 {
		t.Errorf("best = %d, expected 600", best.Score)
	}

	var stats storage.Stats
	decode(t, get(t, router, "/api/v1/stats"), &stats)
	if stats.GamesCount != 2 || stats.HighScore != 600 || stats.TotalScore != 800 {
		t.Errorf("stats = %+v, expected 2 games, high 600, total 800", stats)
	}
}

type failingStore struct{}

var errBroken = errors.New("database is locked")

func (failingStore) TopScores(int) ([]storage.ScoreEntry, error) { return nil, errBroken }
func (failingStore) HighScore() (int, error)                     { return 0, errBroken }
func (failingStore) GetStats() (*storage.Stats, error)           { return nil, errBroken }

func TestStoreErrors(t *testing.T) {
	router := NewRouter(failingStore{}, log.New(io.Discard))

	for _, path := range []string{"/api/v1/scores", "/api/v1/scores/best", "/api/v1/stats"} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, router, path)
			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, expected 500", rec.Code)
			}
		})
	}
}

func TestPreflight(t *testing.T) {
	router := NewRouter(failingStore{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/scores", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, expected 204", rec.Code)
	}
}
