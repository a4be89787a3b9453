package game

import (
	"math"
	"time"
)

const baseWordScore = 100

// TimeBonus is full under ten seconds, then loses 1% per second down to half.
func TimeBonus(elapsed time.Duration) float64 {
	seconds := elapsed.Seconds()
	if seconds < 10 {
		return 1.0
	}
	return math.Max(0.5, 1-(seconds-10)/100)
}

// StreakBonus adds 10% per consecutive win, capped at 50%.
func StreakBonus(streak int) float64 {
	return 1 + math.Min(0.5, float64(streak)*0.1)
}

// WordScore expects the streak already updated for this answer.
func WordScore(correct bool, elapsed time.Duration, streak int) int {
	if !correct {
		return 0
	}
	return int(math.Round(baseWordScore * TimeBonus(elapsed) * StreakBonus(streak)))
}
