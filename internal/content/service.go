// Package content is the quiz content provider: it hands out bank
// questions, creates lobbies backed by AI generation with a bank fallback,
// checks answers and serves the mock leaderboard and profile statistics.
package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/bilim/internal/bank"
	"github.com/abhisek/bilim/internal/leaderboard"
	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/quizgen"
)

// Config holds the simulated latencies of each operation and the
// collaborators used for logging and randomness.
type Config struct {
	QuestionDelay    time.Duration
	FallbackDelay    time.Duration
	JoinDelay        time.Duration
	AnswerDelay      time.Duration
	LeaderboardDelay time.Duration
	StatsDelay       time.Duration

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Rand drives lobby codes and bank shuffles. Nil uses the global source.
	Rand *rand.Rand
}

// DefaultConfig returns the latencies the mobile client was tuned with.
func DefaultConfig() Config {
	return Config{
		QuestionDelay:    1500 * time.Millisecond,
		FallbackDelay:    2 * time.Second,
		JoinDelay:        time.Second,
		AnswerDelay:      300 * time.Millisecond,
		LeaderboardDelay: 500 * time.Millisecond,
		StatsDelay:       800 * time.Millisecond,
	}
}

// WithoutDelays returns c with every latency set to zero.
func (c Config) WithoutDelays() Config {
	c.QuestionDelay = 0
	c.FallbackDelay = 0
	c.JoinDelay = 0
	c.AnswerDelay = 0
	c.LeaderboardDelay = 0
	c.StatsDelay = 0
	return c
}

// Source records where a lobby's questions came from.
type Source string

const (
	SourceAI   Source = "ai"
	SourceBank Source = "bank"
)

// Lobby is the result of CreateLobby.
type Lobby struct {
	Code      string
	Topic     string
	Settings  quiz.Settings
	Questions []quiz.Question
	Source    Source
}

// AnswerKey resolves a question id to the authoritative question. The
// session that presented the question implements it.
type AnswerKey interface {
	Question(id int) (quiz.Question, bool)
}

// Result is the outcome of a submitted answer.
type Result struct {
	Correct      bool
	Points       int
	CorrectIndex int
}

// Overview bundles the data shown on the profile screen.
type Overview struct {
	Stats       bank.Stats
	Leaderboard []quiz.Player
}

// Service implements the quiz content provider.
type Service struct {
	bank   *bank.Bank
	gen    quizgen.Generator
	cfg    Config
	logger *slog.Logger

	mu sync.Mutex // guards cfg.Rand
}

// New creates a Service. gen may be nil, in which case every lobby is
// filled from the bank.
func New(b *bank.Bank, gen quizgen.Generator, cfg Config) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{bank: b, gen: gen, cfg: cfg, logger: logger}
}

// Bank returns the static content backing the service.
func (s *Service) Bank() *bank.Bank { return s.bank }

// GetQuestions returns min(count, bank size) distinct bank questions in
// random order.
func (s *Service) GetQuestions(ctx context.Context, count int) ([]quiz.Question, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: question count must be positive, got %d", quiz.ErrInvalidSettings, count)
	}
	if err := sleep(ctx, s.cfg.QuestionDelay); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bank.Shuffled(count, s.cfg.Rand), nil
}

// CreateLobby generates a lobby code and a quiz on topic. AI generation is
// tried first; an irrelevant topic is returned as quiz.ErrIrrelevantTopic,
// while any other generation failure falls back to bank questions.
func (s *Service) CreateLobby(ctx context.Context, topic string, settings quiz.Settings) (Lobby, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Lobby{}, quiz.ErrEmptyTopic
	}
	if err := settings.Validate(); err != nil {
		return Lobby{}, err
	}

	lobby := Lobby{
		Code:     s.lobbyCode(),
		Topic:    topic,
		Settings: settings,
	}

	if s.gen != nil {
		questions, err := s.gen.Generate(ctx, quizgen.NewInput(topic, settings))
		switch {
		case err == nil && len(questions) > 0:
			lobby.Questions = questions
			lobby.Source = SourceAI
			return lobby, nil
		case errors.Is(err, quiz.ErrIrrelevantTopic):
			return Lobby{}, err
		case ctx.Err() != nil:
			return Lobby{}, ctx.Err()
		case err == nil:
			err = errors.New("generator returned no questions")
			fallthrough
		default:
			s.logger.WarnContext(ctx, "AI generation failed, using question bank", "topic", topic, "error", err)
		}
	}

	if err := sleep(ctx, s.cfg.FallbackDelay); err != nil {
		return Lobby{}, err
	}
	questions, err := s.GetQuestions(ctx, settings.QuestionCount)
	if err != nil {
		return Lobby{}, err
	}
	lobby.Questions = questions
	lobby.Source = SourceBank
	return lobby, nil
}

// JoinLobby validates the code and name and returns the new player.
func (s *Service) JoinLobby(ctx context.Context, code, name, avatar, color string) (quiz.Player, error) {
	if _, err := quiz.ValidateCode(code); err != nil {
		return quiz.Player{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return quiz.Player{}, quiz.ErrEmptyName
	}
	if err := sleep(ctx, s.cfg.JoinDelay); err != nil {
		return quiz.Player{}, err
	}

	return quiz.Player{
		ID:          uuid.NewString(),
		Name:        name,
		Avatar:      avatar,
		AvatarColor: color,
	}, nil
}

// SubmitAnswer checks answerIndex against the question held by key.
// answerIndex -1 records a timeout.
func (s *Service) SubmitAnswer(ctx context.Context, key AnswerKey, questionID, answerIndex int, secondsRemaining float64) (Result, error) {
	if answerIndex < -1 || answerIndex >= quiz.OptionCount {
		return Result{}, fmt.Errorf("%w: %d", quiz.ErrInvalidAnswer, answerIndex)
	}
	q, ok := key.Question(questionID)
	if !ok {
		return Result{}, fmt.Errorf("%w: id %d", quiz.ErrQuestionNotFound, questionID)
	}
	if err := sleep(ctx, s.cfg.AnswerDelay); err != nil {
		return Result{}, err
	}

	correct := answerIndex == q.CorrectIndex
	return Result{
		Correct:      correct,
		Points:       quiz.Points(correct, secondsRemaining),
		CorrectIndex: q.CorrectIndex,
	}, nil
}

// GetLeaderboard returns the other players, highest score first.
func (s *Service) GetLeaderboard(ctx context.Context) ([]quiz.Player, error) {
	if err := sleep(ctx, s.cfg.LeaderboardDelay); err != nil {
		return nil, err
	}
	players := s.bank.Leaderboard()
	leaderboard.SortByScore(players)
	return players, nil
}

// GetUserStats returns the local user's aggregate statistics.
func (s *Service) GetUserStats(ctx context.Context) (bank.Stats, error) {
	if err := sleep(ctx, s.cfg.StatsDelay); err != nil {
		return bank.Stats{}, err
	}
	return s.bank.Stats(), nil
}

// Overview fetches stats and leaderboard concurrently.
func (s *Service) Overview(ctx context.Context) (Overview, error) {
	var ov Overview
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.GetUserStats(ctx)
		ov.Stats = stats
		return err
	})
	g.Go(func() error {
		players, err := s.GetLeaderboard(ctx)
		ov.Leaderboard = players
		return err
	})
	if err := g.Wait(); err != nil {
		return Overview{}, err
	}
	return ov, nil
}

// SimulatedRoster returns the students the teacher's monitor shows
// arriving in the lobby.
func (s *Service) SimulatedRoster() []quiz.Player {
	return s.bank.Roster()
}

// RecentSessions returns the mock session history on the teacher dashboard.
func (s *Service) RecentSessions() []bank.SessionSummary {
	return s.bank.Sessions()
}

func (s *Service) lobbyCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return quiz.GenerateLobbyCode(s.cfg.Rand)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
