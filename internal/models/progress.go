package models

import "time"

type WordOutcome struct {
	Word    string `json:"word"`
	Source  string `json:"source"`
	TopicID string `json:"topicId,omitempty"`
	Won     bool   `json:"won"`
	TimeMs  int64  `json:"timeMs"`
	Score   int    `json:"score"`
}

type SessionStats struct {
	TotalWon   int           `json:"totalWon"`
	TotalLost  int           `json:"totalLost"`
	TotalScore int           `json:"totalScore"`
	TotalTime  int64         `json:"totalTime"`
	Words      []WordOutcome `json:"words"`
}

type WordStatAgg struct {
	Attempts     int       `json:"attempts"`
	Won          int       `json:"won"`
	Lost         int       `json:"lost"`
	TotalTime    int64     `json:"totalTime"`
	BestTime     int64     `json:"bestTime"`
	FirstAttempt time.Time `json:"firstAttempt"`
	LastAttempt  time.Time `json:"lastAttempt"`
}

type TopicProgress struct {
	TotalWon      int                    `json:"totalWon"`
	TotalLost     int                    `json:"totalLost"`
	TotalAttempts int                    `json:"totalAttempts"`
	TotalScore    int                    `json:"totalScore"`
	TotalTime     int64                  `json:"totalTime"`
	Sessions      int                    `json:"sessions"`
	WordStats     map[string]WordStatAgg `json:"wordStats"`
	FirstPlayed   time.Time              `json:"firstPlayed"`
	LastPlayed    time.Time              `json:"lastPlayed"`
}

type FailedWordEntry struct {
	Source      string    `json:"source"`
	Target      string    `json:"target"`
	FailedCount int       `json:"failedCount"`
	FirstFailed time.Time `json:"firstFailed"`
	LastFailed  time.Time `json:"lastFailed"`
}
