package quiz

import "math"

// TimePerQuestion is the per-question countdown in seconds.
const TimePerQuestion = 20

const (
	basePoints      = 100
	pointsPerSecond = 5
)

// Points returns the reward for an answer submitted with secondsRemaining left
// on the countdown: round(100 + 5*s) when correct, 0 otherwise.
func Points(correct bool, secondsRemaining float64) int {
	if !correct {
		return 0
	}
	s := math.Max(0, math.Min(secondsRemaining, TimePerQuestion))
	return int(math.Round(basePoints + pointsPerSecond*s))
}

// MaxPoints is the best possible score for n questions.
func MaxPoints(n int) int {
	return n * Points(true, TimePerQuestion)
}
