package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bilim/internal/bank"
	"github.com/abhisek/bilim/internal/llm"
	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/quizgen"
)

// stubGenerator returns canned results and counts calls.
type stubGenerator struct {
	questions []quiz.Question
	err       error
	calls     int
}

func (g *stubGenerator) Generate(context.Context, quizgen.GenerateInput) ([]quiz.Question, error) {
	g.calls++
	return g.questions, g.err
}

// answerKey is a map-backed AnswerKey.
type answerKey map[int]quiz.Question

func (k answerKey) Question(id int) (quiz.Question, bool) {
	q, ok := k[id]
	return q, ok
}

func testConfig(logs *bytes.Buffer) Config {
	cfg := DefaultConfig().WithoutDelays()
	cfg.Rand = rand.New(rand.NewPCG(1, 2))
	if logs != nil {
		cfg.Logger = slog.New(slog.NewTextHandler(logs, nil))
	}
	return cfg
}

func newService(t *testing.T, gen quizgen.Generator, logs *bytes.Buffer) *Service {
	t.Helper()
	return New(bank.Default(), gen, testConfig(logs))
}

func aiQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			ID:           i + 1,
			Text:         fmt.Sprintf("AI сұрақ %d", i+1),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % quiz.OptionCount,
		}
	}
	return qs
}

func settings(count int) quiz.Settings {
	s := quiz.DefaultSettings()
	s.QuestionCount = count
	return s
}

func TestGetQuestions(t *testing.T) {
	svc := newService(t, nil, nil)
	ctx := context.Background()

	for _, count := range []int{1, 5, 10} {
		qs, err := svc.GetQuestions(ctx, count)
		require.NoError(t, err)
		require.Len(t, qs, count)

		seen := map[int]bool{}
		for _, q := range qs {
			require.NoError(t, q.Valid())
			assert.False(t, seen[q.ID], "duplicate question %d", q.ID)
			seen[q.ID] = true
		}
	}

	qs, err := svc.GetQuestions(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, qs, svc.Bank().Size())

	_, err = svc.GetQuestions(ctx, 0)
	assert.ErrorIs(t, err, quiz.ErrInvalidSettings)
}

func TestCreateLobby_AI(t *testing.T) {
	gen := &stubGenerator{questions: aiQuestions(5)}
	svc := newService(t, gen, nil)

	lobby, err := svc.CreateLobby(context.Background(), "  Абай ", settings(5))
	require.NoError(t, err)

	assert.Equal(t, SourceAI, lobby.Source)
	assert.Equal(t, "Абай", lobby.Topic)
	assert.Len(t, lobby.Questions, 5)
	_, err = quiz.ValidateCode(lobby.Code)
	assert.NoError(t, err)
}

func TestCreateLobby_IrrelevantTopicIsNotMasked(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("parse: %w", quiz.ErrIrrelevantTopic)}
	svc := newService(t, gen, nil)

	lobby, err := svc.CreateLobby(context.Background(), "Marvel superheroes", settings(5))
	assert.ErrorIs(t, err, quiz.ErrIrrelevantTopic)
	assert.Empty(t, lobby.Questions)
	assert.Empty(t, lobby.Code)
}

func TestCreateLobby_FallbackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		gen  quizgen.Generator
	}{
		{"transport failure", &stubGenerator{err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}}},
		{"malformed reply", &stubGenerator{err: &llm.ErrInvalidResponse{Err: errors.New("not json")}}},
		{"validation failure", &stubGenerator{err: &quizgen.ValidationError{Validator: "count", Message: "short"}}},
		{"empty result", &stubGenerator{}},
		{"no credentials", quizgen.New(llm.NewUnavailableProvider("no AI provider configured"), quizgen.DefaultConfig())},
		{"no generator", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			svc := newService(t, tt.gen, &logs)

			lobby, err := svc.CreateLobby(context.Background(), "Қазақ хандығы", settings(5))
			require.NoError(t, err)
			assert.Equal(t, SourceBank, lobby.Source)
			assert.Len(t, lobby.Questions, 5)
			for _, q := range lobby.Questions {
				assert.NoError(t, q.Valid())
			}
			if tt.gen != nil {
				assert.Contains(t, logs.String(), "using question bank")
			}
		})
	}
}

func TestCreateLobby_InputValidation(t *testing.T) {
	gen := &stubGenerator{questions: aiQuestions(5)}
	svc := newService(t, gen, nil)
	ctx := context.Background()

	_, err := svc.CreateLobby(ctx, "   ", settings(5))
	assert.ErrorIs(t, err, quiz.ErrEmptyTopic)

	bad := settings(5)
	bad.Grade = 12
	_, err = svc.CreateLobby(ctx, "Абай", bad)
	assert.ErrorIs(t, err, quiz.ErrInvalidSettings)

	assert.Zero(t, gen.calls, "validation must happen before generation")
}

func TestCreateLobby_Canceled(t *testing.T) {
	cfg := DefaultConfig()
	svc := New(bank.Default(), &stubGenerator{err: errors.New("down")}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateLobby(ctx, "Абай", settings(5))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestJoinLobby(t *testing.T) {
	svc := newService(t, nil, nil)
	ctx := context.Background()

	p, err := svc.JoinLobby(ctx, " ab12cd ", "  Дана ", "💎", "#ec4899")
	require.NoError(t, err)
	assert.Equal(t, "Дана", p.Name)
	assert.Equal(t, "💎", p.Avatar)
	assert.Equal(t, "#ec4899", p.AvatarColor)
	assert.Zero(t, p.Score)
	_, err = uuid.Parse(p.ID)
	assert.NoError(t, err)

	p2, err := svc.JoinLobby(ctx, "AB12CD", "Дана", "💎", "")
	require.NoError(t, err)
	assert.NotEqual(t, p.ID, p2.ID)

	_, err = svc.JoinLobby(ctx, "AB1", "Дана", "💎", "")
	assert.ErrorIs(t, err, quiz.ErrInvalidCode)

	_, err = svc.JoinLobby(ctx, "AB12CD", " ", "💎", "")
	assert.ErrorIs(t, err, quiz.ErrEmptyName)
}

func TestSubmitAnswer(t *testing.T) {
	svc := newService(t, nil, nil)
	ctx := context.Background()
	key := answerKey{7: {ID: 7, Text: "?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2}}

	tests := []struct {
		name    string
		answer  int
		seconds float64
		want    Result
	}{
		{"correct full time", 2, 20, Result{Correct: true, Points: 200, CorrectIndex: 2}},
		{"correct no time", 2, 0, Result{Correct: true, Points: 100, CorrectIndex: 2}},
		{"correct half time", 2, 12.5, Result{Correct: true, Points: 163, CorrectIndex: 2}},
		{"wrong", 0, 18, Result{Correct: false, Points: 0, CorrectIndex: 2}},
		{"timeout", -1, 0, Result{Correct: false, Points: 0, CorrectIndex: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SubmitAnswer(ctx, key, 7, tt.answer, tt.seconds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := svc.SubmitAnswer(ctx, key, 1, 0, 10)
	assert.ErrorIs(t, err, quiz.ErrQuestionNotFound)

	_, err = svc.SubmitAnswer(ctx, key, 7, 4, 10)
	assert.ErrorIs(t, err, quiz.ErrInvalidAnswer)
}

func TestGetLeaderboard(t *testing.T) {
	svc := newService(t, nil, nil)

	players, err := svc.GetLeaderboard(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, players)
	for i := 1; i < len(players); i++ {
		assert.GreaterOrEqual(t, players[i-1].Score, players[i].Score)
	}
}

func TestGetUserStats(t *testing.T) {
	svc := newService(t, nil, nil)

	stats, err := svc.GetUserStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 24, stats.GamesPlayed)
	assert.Equal(t, "Шәкірт", stats.Rank)
}

func TestOverview(t *testing.T) {
	svc := newService(t, nil, nil)

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, svc.Bank().Stats(), ov.Stats)
	assert.Len(t, ov.Leaderboard, len(svc.Bank().Leaderboard()))
}

func TestOverview_RespectsDeadline(t *testing.T) {
	svc := New(bank.Default(), nil, DefaultConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Overview(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSimulatedRosterAndSessions(t *testing.T) {
	svc := newService(t, nil, nil)

	roster := svc.SimulatedRoster()
	require.Len(t, roster, 4)
	for _, p := range roster {
		assert.NotEmpty(t, strings.TrimSpace(p.Name))
	}
	assert.Len(t, svc.RecentSessions(), 3)
}
