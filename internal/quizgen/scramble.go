package quizgen

import (
	"math/rand/v2"

	"github.com/abhisek/bilim/internal/quiz"
)

// finalize renumbers questions 1..n in order and scrambles each question's
// options. Models tend to put the answer first regardless of instructions.
func finalize(qs []quiz.Question, r *rand.Rand) []quiz.Question {
	out := make([]quiz.Question, len(qs))
	for i, q := range qs {
		q = Scramble(q, r)
		q.ID = i + 1
		out[i] = q
	}
	return out
}

// Scramble returns a copy of q with its options permuted and CorrectIndex
// pointing at the same option text.
func Scramble(q quiz.Question, r *rand.Rand) quiz.Question {
	var perm []int
	if r != nil {
		perm = r.Perm(len(q.Options))
	} else {
		perm = rand.Perm(len(q.Options))
	}

	correct := q.CorrectIndex
	opts := make([]string, len(q.Options))
	for newPos, oldPos := range perm {
		opts[newPos] = q.Options[oldPos]
		if oldPos == correct {
			q.CorrectIndex = newPos
		}
	}
	q.Options = opts
	return q
}
