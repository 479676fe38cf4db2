// Package bank holds the static quiz content and mock data used when no
// live backend is available.
package bank

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/bilim/internal/quiz"
)

//go:embed bank.yaml
var defaultDoc []byte

// Stats are the aggregate profile statistics shown on the profile screen.
type Stats struct {
	GamesPlayed  int    `yaml:"gamesPlayed" json:"gamesPlayed"`
	AverageScore int    `yaml:"averageScore" json:"averageScore"`
	TotalXP      int    `yaml:"totalXP" json:"totalXP"`
	Rank         string `yaml:"rank" json:"rank"`
}

// SessionSummary is a past or running lobby listed on the teacher dashboard.
type SessionSummary struct {
	ID       string `yaml:"id"`
	Topic    string `yaml:"topic"`
	Students int    `yaml:"students"`
	When     string `yaml:"when"`
	Status   string `yaml:"status"`
}

// Active reports whether the session is still running.
func (s SessionSummary) Active() bool { return s.Status == "active" }

// Bank is an immutable set of content. All accessors return copies.
type Bank struct {
	questions   []quiz.Question
	avatars     []string
	colors      []string
	leaderboard []quiz.Player
	roster      []quiz.Player
	stats       Stats
	sessions    []SessionSummary
}

type document struct {
	Questions   []quiz.Question  `yaml:"questions"`
	Avatars     []string         `yaml:"avatars"`
	Colors      []string         `yaml:"colors"`
	Leaderboard []quiz.Player    `yaml:"leaderboard"`
	Roster      []quiz.Player    `yaml:"roster"`
	Stats       Stats            `yaml:"stats"`
	Sessions    []SessionSummary `yaml:"sessions"`
}

// Load parses a bank document and validates every question in it.
func Load(data []byte) (*Bank, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}
	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("bank has no questions")
	}

	seen := make(map[int]bool, len(doc.Questions))
	for _, q := range doc.Questions {
		if err := q.Valid(); err != nil {
			return nil, fmt.Errorf("bank: %w", err)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("bank: duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
	}
	if len(doc.Avatars) == 0 {
		return nil, fmt.Errorf("bank has no avatars")
	}
	if len(doc.Colors) == 0 {
		return nil, fmt.Errorf("bank has no colors")
	}

	return &Bank{
		questions:   doc.Questions,
		avatars:     doc.Avatars,
		colors:      doc.Colors,
		leaderboard: doc.Leaderboard,
		roster:      doc.Roster,
		stats:       doc.Stats,
		sessions:    doc.Sessions,
	}, nil
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the embedded bank. It panics if the embedded document is
// malformed, which is a build defect.
func Default() *Bank {
	defaultOnce.Do(func() {
		b, err := Load(defaultDoc)
		if err != nil {
			panic(err)
		}
		defaultBank = b
	})
	return defaultBank
}

// Size returns the number of questions in the bank.
func (b *Bank) Size() int { return len(b.questions) }

// Questions returns all questions in bank order.
func (b *Bank) Questions() []quiz.Question {
	return cloneQuestions(b.questions)
}

// Shuffled returns min(count, Size()) distinct questions in uniformly random
// order. A nil r uses the global source.
func (b *Bank) Shuffled(count int, r *rand.Rand) []quiz.Question {
	qs := cloneQuestions(b.questions)
	shuffle := rand.Shuffle
	if r != nil {
		shuffle = r.Shuffle
	}
	shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
	if count < 0 {
		count = 0
	}
	return qs[:min(count, len(qs))]
}

// Avatars returns the selectable avatar glyphs.
func (b *Bank) Avatars() []string { return append([]string(nil), b.avatars...) }

// Colors returns the selectable avatar background colors.
func (b *Bank) Colors() []string { return append([]string(nil), b.colors...) }

// Leaderboard returns the mock ranked players in document order.
func (b *Bank) Leaderboard() []quiz.Player { return append([]quiz.Player(nil), b.leaderboard...) }

// Roster returns the players a teacher sees joining a lobby.
func (b *Bank) Roster() []quiz.Player { return append([]quiz.Player(nil), b.roster...) }

// Stats returns the mock profile statistics.
func (b *Bank) Stats() Stats { return b.stats }

// Sessions returns the mock teacher session history.
func (b *Bank) Sessions() []SessionSummary { return append([]SessionSummary(nil), b.sessions...) }

func cloneQuestions(qs []quiz.Question) []quiz.Question {
	out := make([]quiz.Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}
