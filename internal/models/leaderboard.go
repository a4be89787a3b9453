package models

import (
	"fmt"
	"time"
)

type ScoreEntry struct {
	PlayerName  string    `json:"playerName"`
	Score       int       `json:"score"`
	WordsWon    int       `json:"wordsWon"`
	WordsLost   int       `json:"wordsLost"`
	SuccessRate int       `json:"successRate"`
	Time        int       `json:"time"`
	Date        time.Time `json:"date"`
}

type LeaderboardResponse struct {
	TopicID string       `json:"topicId"`
	Scores  []ScoreEntry `json:"scores"`
	Limit   int          `json:"limit"`
}

type ScoreSubmission struct {
	PlayerID    string `json:"playerId" validate:"required"`
	PlayerName  string `json:"playerName" validate:"required,max=8"`
	Score       int    `json:"score" validate:"min=0"`
	WordsWon    int    `json:"wordsWon" validate:"min=0"`
	WordsLost   int    `json:"wordsLost" validate:"min=0"`
	SuccessRate int    `json:"successRate" validate:"min=0,max=100"`
	Time        int    `json:"time" validate:"min=0"`
}

type SubmitResult struct {
	ID         int64        `json:"id"`
	Rank       int          `json:"rank"`
	MadeTopTen bool         `json:"madeTopTen"`
	TopScores  []ScoreEntry `json:"topScores"`
}

type PendingSubmission struct {
	SessionID  string          `json:"sessionId"`
	TopicID    string          `json:"topicId"`
	Submission ScoreSubmission `json:"submission"`
	Attempts   int             `json:"attempts"`
	QueuedAt   time.Time       `json:"queuedAt"`
}

type LeaderboardCache struct {
	Scores    []ScoreEntry `json:"scores"`
	FetchedAt time.Time    `json:"fetchedAt"`
}

// LocalOwner owns the data of the terminal player.
const LocalOwner = "local"

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"max=8"`
}

// LeaderboardError is a 4xx answer from the leaderboard server.
type LeaderboardError struct {
	StatusCode int
	Message    string
}

func (e *LeaderboardError) Error() string {
	return fmt.Sprintf("leaderboard rejected submission (%d): %s", e.StatusCode, e.Message)
}
