package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/keoko/mots/internal/models"
)

type LeaderboardAPI struct {
	baseURL string
	http    *http.Client
}

func NewLeaderboardAPI(baseURL string, httpClient *http.Client) *LeaderboardAPI {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &LeaderboardAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (l *LeaderboardAPI) endpoint(topicID string) string {
	return fmt.Sprintf("%s/api/leaderboard/%s", l.baseURL, url.PathEscape(topicID))
}

func (l *LeaderboardAPI) TopScores(ctx context.Context, topicID string) (models.LeaderboardResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint(topicID), nil)
	if err != nil {
		return models.LeaderboardResponse{}, err
	}

	var data models.LeaderboardResponse
	if err := l.do(req, &data); err != nil {
		return models.LeaderboardResponse{}, err
	}

	return data, nil
}

func (l *LeaderboardAPI) SubmitScore(ctx context.Context, topicID string, submission models.ScoreSubmission) (models.SubmitResult, error) {
	body, err := json.Marshal(submission)
	if err != nil {
		return models.SubmitResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.endpoint(topicID), bytes.NewReader(body))
	if err != nil {
		return models.SubmitResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var data models.SubmitResult
	if err := l.do(req, &data); err != nil {
		return models.SubmitResult{}, err
	}

	return data, nil
}

type errorBody struct {
	Error string `json:"error"`
}

// do decodes a 2xx body into dest. 4xx answers become *models.LeaderboardError,
// anything else is treated as the server being unavailable.
func (l *LeaderboardAPI) do(req *http.Request, dest any) error {
	resp, err := l.http.Do(req)
	if err != nil {
		return fmt.Errorf("leaderboard request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("failed to decode leaderboard response: %w", err)
		}
		return nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var data errorBody
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || data.Error == "" {
			data.Error = http.StatusText(resp.StatusCode)
		}
		return &models.LeaderboardError{StatusCode: resp.StatusCode, Message: data.Error}

	default:
		return fmt.Errorf("leaderboard unavailable: status %d", resp.StatusCode)
	}
}
