package session

import "time"

// Summary holds the data displayed on the results screen.
type Summary struct {
	Score          int
	TotalQuestions int
	Answered       int
	Correct        int
	Accuracy       float64
	Duration       time.Duration
}

// Summary builds a Summary from the current game. Duration runs from the
// last start to Finish, or to now while the game is still running.
func (g *Game) Summary() Summary {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var d time.Duration
	if !g.startedAt.IsZero() {
		end := g.finishedAt
		if end.IsZero() {
			end = g.now()
		}
		d = end.Sub(g.startedAt)
	}

	return Summary{
		Score:          g.score,
		TotalQuestions: g.totalQuestions,
		Answered:       g.progress.Answered,
		Correct:        g.progress.Correct,
		Accuracy:       g.progress.Accuracy,
		Duration:       d,
	}
}
