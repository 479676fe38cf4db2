package bank

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBank(t *testing.T) {
	b := Default()
	assert.Equal(t, 10, b.Size())
	assert.Len(t, b.Avatars(), 16)
	assert.Len(t, b.Colors(), 8)
	assert.Len(t, b.Leaderboard(), 5)
	assert.Len(t, b.Roster(), 4)
	assert.Equal(t, Stats{GamesPlayed: 24, AverageScore: 78, TotalXP: 4580, Rank: "Шәкірт"}, b.Stats())
	assert.Equal(t, "#4f46e5", b.Colors()[0])
	assert.Equal(t, "😊", b.Avatars()[0])

	first := b.Questions()[0]
	assert.Equal(t, "«Абай жолы» романының авторы кім?", first.Text)
	assert.Equal(t, "М. Әуезов", first.Options[first.CorrectIndex])
}

func TestShuffled_CountAndDistinct(t *testing.T) {
	b := Default()
	r := rand.New(rand.NewPCG(7, 7))

	for count := 0; count <= b.Size(); count++ {
		qs := b.Shuffled(count, r)
		require.Len(t, qs, count)

		seen := make(map[int]bool)
		for _, q := range qs {
			require.NoError(t, q.Valid())
			require.False(t, seen[q.ID], "duplicate question %d", q.ID)
			seen[q.ID] = true
		}
	}
}

func TestShuffled_TruncatesToBankSize(t *testing.T) {
	b := Default()
	assert.Len(t, b.Shuffled(20, nil), b.Size())
	assert.Empty(t, b.Shuffled(-1, nil))
}

func TestShuffled_ReturnsCopies(t *testing.T) {
	b := Default()
	qs := b.Shuffled(b.Size(), nil)
	qs[0].Options[0] = "mutated"
	for _, q := range b.Questions() {
		assert.NotEqual(t, "mutated", q.Options[0])
	}
}

func TestShuffled_OrderVaries(t *testing.T) {
	b := Default()
	r := rand.New(rand.NewPCG(42, 1))
	firsts := make(map[int]bool)
	for i := 0; i < 200; i++ {
		firsts[b.Shuffled(b.Size(), r)[0].ID] = true
	}
	// Every question should lead at least once in 200 shuffles of 10.
	assert.Len(t, firsts, b.Size())
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"not yaml":     "questions: [",
		"no questions": "avatars: [a]\ncolors: [b]\n",
		"three options": `questions:
  - {id: 1, question: "Q", options: [a, b, c], correctIndex: 0}
avatars: [a]
colors: [b]
`,
		"duplicate ids": `questions:
  - {id: 1, question: "Q", options: [a, b, c, d], correctIndex: 0}
  - {id: 1, question: "R", options: [a, b, c, d], correctIndex: 1}
avatars: [a]
colors: [b]
`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(doc))
			assert.Error(t, err)
		})
	}
}
