// Package leaderboard merges the local player's result into a fetched
// ranking.
package leaderboard

import (
	"fmt"
	"sort"

	"github.com/abhisek/bilim/internal/quiz"
)

// TopN is the number of entries shown on the results screen.
const TopN = 5

// Board is an assembled leaderboard.
type Board struct {
	// Entries holds at most TopN players, highest score first.
	Entries []quiz.Player

	// Rank is the local player's 1-based position in the full ranking.
	Rank int
}

// Assemble inserts local into others, ranks everyone by descending score
// with ties kept in fetch order, and returns the top TopN plus the local
// player's rank. local.ID is forced to quiz.LocalPlayerID; others are not
// modified. The rank follows the local entry itself, so a fetched player
// that happens to share its id does not affect it.
func Assemble(others []quiz.Player, local quiz.Player) Board {
	local.ID = quiz.LocalPlayerID

	all := make([]quiz.Player, 0, len(others)+1)
	all = append(all, others...)
	all = append(all, local)

	order := make([]int, len(all))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return all[order[i]].Score > all[order[j]].Score
	})

	var b Board
	for pos, idx := range order {
		if idx == len(others) {
			b.Rank = pos + 1
		}
		if pos < TopN {
			b.Entries = append(b.Entries, all[idx])
		}
	}
	return b
}

// IsLocal reports whether Entries[i] is the local player.
func (b Board) IsLocal(i int) bool {
	return i == b.Rank-1
}

// SortByScore orders players by descending score. Equal scores keep their
// relative order.
func SortByScore(players []quiz.Player) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})
}

// Medal returns the podium glyph for rank 1-3 and "#n" otherwise.
func Medal(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("#%d", rank)
	}
}

// pointsPerCorrect approximates the value of one correct answer when only
// the total score is known.
const pointsPerCorrect = 150

// EstimateCorrect guesses how many of total questions were answered
// correctly from score alone.
func EstimateCorrect(score, total int) int {
	if score <= 0 || total <= 0 {
		return 0
	}
	return min(total, score/pointsPerCorrect)
}
