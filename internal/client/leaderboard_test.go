package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/keoko/mots/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLeaderboard keeps scores per topic the way the real server does.
type fakeLeaderboard struct {
	mu     sync.Mutex
	scores map[string][]models.ScoreEntry
}

func newFakeLeaderboard(t *testing.T) *httptest.Server {
	t.Helper()

	f := &fakeLeaderboard{scores: map[string][]models.ScoreEntry{
		"animals": {{PlayerName: "pau", Score: 700, Time: 40}},
	}}

	r := chi.NewRouter()
	r.Get("/api/leaderboard/{topicId}", f.list)
	r.Post("/api/leaderboard/{topicId}", f.submit)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeLeaderboard) list(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "topicId")
	if topicID == "broken" {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	writeJSON(w, http.StatusOK, models.LeaderboardResponse{TopicID: topicID, Scores: f.scores[topicID], Limit: 10})
}

func (f *fakeLeaderboard) submit(w http.ResponseWriter, r *http.Request) {
	topicID := chi.URLParam(r, "topicId")

	var sub models.ScoreSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid body"})
		return
	}
	if sub.PlayerName == "" || len(sub.PlayerName) > 8 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Player name must be 1-8 characters"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	list := append(f.scores[topicID], models.ScoreEntry{PlayerName: sub.PlayerName, Score: sub.Score, Time: sub.Time})
	sort.SliceStable(list, func(i, j int) bool { return list[i].Score > list[j].Score })
	f.scores[topicID] = list

	rank := 0
	for i, e := range list {
		if e.PlayerName == sub.PlayerName && e.Score == sub.Score {
			rank = i + 1
			break
		}
	}

	writeJSON(w, http.StatusCreated, models.SubmitResult{ID: int64(len(list)), Rank: rank, MadeTopTen: rank <= 10, TopScores: list})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLeaderboardAPI_TopScores(t *testing.T) {
	t.Parallel()

	srv := newFakeLeaderboard(t)

	tests := []struct {
		name    string
		topicID string
		want    int
		wantErr bool
	}{
		{
			name:    "success",
			topicID: "animals",
			want:    1,
		},
		{
			name:    "empty topic",
			topicID: "food",
			want:    0,
		},
		{
			name:    "server error",
			topicID: "broken",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := NewLeaderboardAPI(srv.URL+"/", srv.Client())

			got, err := api.TopScores(context.Background(), tt.topicID)
			if tt.wantErr {
				require.Error(t, err)
				var lbErr *models.LeaderboardError
				assert.False(t, errors.As(err, &lbErr))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.topicID, got.TopicID)
			assert.Len(t, got.Scores, tt.want)
		})
	}
}

func TestLeaderboardAPI_SubmitScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		submission models.ScoreSubmission
		wantRank   int
		wantStatus int
	}{
		{
			name:       "success",
			submission: models.ScoreSubmission{PlayerID: "p1", PlayerName: "anna", Score: 900, Time: 30},
			wantRank:   1,
		},
		{
			name:       "name too long",
			submission: models.ScoreSubmission{PlayerID: "p1", PlayerName: "annabelle", Score: 900},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newFakeLeaderboard(t)
			api := NewLeaderboardAPI(srv.URL, srv.Client())

			got, err := api.SubmitScore(context.Background(), "animals", tt.submission)
			if tt.wantStatus != 0 {
				var lbErr *models.LeaderboardError
				require.True(t, errors.As(err, &lbErr))
				assert.Equal(t, tt.wantStatus, lbErr.StatusCode)
				assert.Equal(t, "Player name must be 1-8 characters", lbErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRank, got.Rank)
			assert.True(t, got.MadeTopTen)
			assert.Len(t, got.TopScores, 2)
		})
	}
}

func TestLeaderboardAPI_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	api := NewLeaderboardAPI(url, nil)

	_, err := api.SubmitScore(context.Background(), "animals", models.ScoreSubmission{PlayerName: "anna"})
	require.Error(t, err)

	var lbErr *models.LeaderboardError
	assert.False(t, errors.As(err, &lbErr))
}

func TestInitClients(t *testing.T) {
	t.Parallel()

	c := InitClients("http://localhost:3000/", 0)
	require.NotNil(t, c.LeaderboardAPI)
	assert.Equal(t, "http://localhost:3000/api/leaderboard/a%20b", c.endpoint("a b"))
}
