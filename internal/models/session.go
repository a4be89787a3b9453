package models

import (
	"math"
	"time"
)

type SyncStatus string

const (
	SyncLocal    SyncStatus = ""
	SyncPending  SyncStatus = "pending"
	SyncSynced   SyncStatus = "synced"
	SyncRejected SyncStatus = "rejected"
	SyncFailed   SyncStatus = "failed"
)

const MaxSessions = 100

type SessionRecord struct {
	ID          string     `json:"id"`
	Date        time.Time  `json:"date"`
	TopicID     string     `json:"topicId"`
	TopicName   string     `json:"topicName"`
	Mode        string     `json:"mode"`
	Score       int        `json:"score"`
	Time        int        `json:"time"`
	WordsWon    int        `json:"wordsWon"`
	WordsLost   int        `json:"wordsLost"`
	SuccessRate int        `json:"successRate"`
	PlayerName  string     `json:"playerName,omitempty"`
	SyncStatus  SyncStatus `json:"syncStatus,omitempty"`
	Rank        int        `json:"rank,omitempty"`
}

type TopicStatistics struct {
	TopicID     string
	Sessions    int
	Won         int
	Lost        int
	BestScore   int
	SuccessRate int
}

type Statistics struct {
	Sessions    int
	TotalWon    int
	TotalLost   int
	TotalScore  int
	TotalTime   int64
	SuccessRate int
	FailedWords int
	Best        *SessionRecord
	Topics      []TopicStatistics
}

// SuccessRate is the rounded won percentage, 0 when nothing was attempted.
func SuccessRate(won, lost int) int {
	total := won + lost
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(won) / float64(total) * 100))
}
