// Package play runs the timed question loop: countdown, answer, feedback,
// next question, and finally the results screen.
package play

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/content"
	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/router"
	"github.com/abhisek/bilim/internal/screen"
	"github.com/abhisek/bilim/internal/ui/components"
	"github.com/abhisek/bilim/internal/ui/layout"
	"github.com/abhisek/bilim/internal/ui/theme"
)

const (
	tickInterval = time.Second

	// CorrectFeedback is how long a correct answer or a timeout is shown.
	CorrectFeedback = 1500 * time.Millisecond

	// WrongFeedback leaves time to read the correct answer.
	WrongFeedback = 3500 * time.Millisecond

	timeoutAnswer = -1
)

type stage int

const (
	stageAnswering stage = iota
	stageSubmitting
	stageFeedback
)

// Every timed message carries the sequence number of the question it
// belongs to. Messages from an earlier question are dropped.
type (
	tickMsg struct{ seq int }

	answeredMsg struct {
		seq    int
		index  int
		result content.Result
		err    error
	}

	advanceMsg struct{ seq int }
)

// PlayScreen presents the questions of the current game one at a time.
type PlayScreen struct {
	env *screen.Env

	seq       int
	question  quiz.Question
	ok        bool
	stage     stage
	countdown components.Countdown
	answers   components.AnswerGrid

	result   content.Result
	timedOut bool
	errMsg   string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen positioned at the game's current question.
func New(env *screen.Env) *PlayScreen {
	s := &PlayScreen{env: env}
	s.load()
	return s
}

// load resets the per-question state for the game's current question.
func (s *PlayScreen) load() {
	s.question, s.ok = s.env.Game.CurrentQuestion()
	s.stage = stageAnswering
	s.countdown = components.NewCountdown(s.env.Game.TimePerQuestion(), 0)
	s.answers = components.NewAnswerGrid(s.question.Options)
	s.result = content.Result{}
	s.timedOut = false
	s.errMsg = ""
}

func (s *PlayScreen) Init() tea.Cmd {
	if !s.ok {
		return nil
	}
	return s.tick()
}

func (s *PlayScreen) tick() tea.Cmd {
	seq := s.seq
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}

func (s *PlayScreen) Title() string {
	return s.env.Td("Question", map[string]any{
		"Number": s.env.Game.Index() + 1,
		"Total":  len(s.env.Game.Snapshot().Questions),
	})
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-4", Description: s.env.T("KeyAnswer")},
		{Key: "↑/↓", Description: s.env.T("KeyMove")},
		{Key: "Enter", Description: s.env.T("KeySelect")},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.seq != s.seq || s.stage != stageAnswering {
			return s, nil
		}
		s.countdown.Remaining--
		if s.countdown.Remaining > 0 {
			return s, s.tick()
		}
		s.countdown.Remaining = 0
		s.timedOut = true
		s.answers.Lock()
		return s, s.submit(timeoutAnswer)

	case components.AnswerChosenMsg:
		if s.stage != stageAnswering {
			return s, nil
		}
		return s, s.submit(msg.Index)

	case answeredMsg:
		if msg.seq != s.seq || s.stage != stageSubmitting {
			return s, nil
		}
		return s, s.handleAnswered(msg)

	case advanceMsg:
		if msg.seq != s.seq || s.stage != stageFeedback {
			return s, nil
		}
		return s, s.advance()

	case tea.KeyPressMsg:
		if s.stage != stageAnswering || !s.ok {
			return s, nil
		}
		var cmd tea.Cmd
		s.answers, cmd = s.answers.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit checks index against the game's copy of the question.
func (s *PlayScreen) submit(index int) tea.Cmd {
	s.stage = stageSubmitting

	env, seq, id := s.env, s.seq, s.question.ID
	remaining := float64(s.countdown.Remaining)
	return func() tea.Msg {
		res, err := env.Content.SubmitAnswer(env.Ctx, env.Game, id, index, remaining)
		return answeredMsg{seq: seq, index: index, result: res, err: err}
	}
}

func (s *PlayScreen) handleAnswered(msg answeredMsg) tea.Cmd {
	s.stage = stageFeedback
	g := s.env.Game

	if msg.err != nil {
		slog.Error("submit answer failed", "question", s.question.ID, "error", msg.err)
		s.errMsg = s.env.T("ErrorGeneric")
		g.RecordAnswer(false)
		s.answers.Reveal(s.question.CorrectIndex)
		return s.after(WrongFeedback)
	}

	s.result = msg.result
	if msg.result.Correct {
		if err := g.AddScore(msg.result.Points); err != nil {
			slog.Warn("score not added", "points", msg.result.Points, "error", err)
		}
	}
	g.RecordAnswer(msg.result.Correct)
	s.answers.Reveal(msg.result.CorrectIndex)

	slog.Debug("answer checked",
		"question", s.question.ID,
		"index", msg.index,
		"correct", msg.result.Correct,
		"points", msg.result.Points)

	if msg.result.Correct || s.timedOut {
		return s.after(CorrectFeedback)
	}
	return s.after(WrongFeedback)
}

func (s *PlayScreen) after(d time.Duration) tea.Cmd {
	seq := s.seq
	return tea.Tick(d, func(time.Time) tea.Msg { return advanceMsg{seq: seq} })
}

func (s *PlayScreen) advance() tea.Cmd {
	g := s.env.Game
	if g.IsLast() {
		g.Finish()
		slog.Info("quiz finished", "score", g.Score())
		return router.Replace(s.env.Routes.Results())
	}
	if err := g.NextQuestion(); err != nil {
		slog.Error("next question", "error", err)
		g.Finish()
		return router.Replace(s.env.Routes.Results())
	}
	s.seq++
	s.load()
	return s.tick()
}

func (s *PlayScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if !s.ok {
		return components.Center(theme.Hint.Render(s.env.T("Loading")), width, height)
	}

	g := s.env.Game
	total := len(g.Snapshot().Questions)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(cw/2).Render(theme.Subtitle.Render(s.Title())),
		lipgloss.NewStyle().Width(cw-cw/2).Align(lipgloss.Right).
			Render(theme.Body.Render(fmt.Sprintf("⭐ %s: %d", s.env.T("Score"), g.Score()))),
	)

	s.countdown.Width = cw
	sections := []string{
		header,
		progressBar(g.Index()+1, total, cw),
		"",
		s.countdown.View(),
		"",
		components.Card(theme.Body.Bold(true).Render(s.question.Text), cw),
		"",
		s.answers.View(cw - 2),
	}
	if s.stage == stageFeedback {
		sections = append(sections, "", s.feedback(cw))
	}

	return components.Center(lipgloss.JoinVertical(lipgloss.Left, sections...), width, height)
}

func (s *PlayScreen) feedback(cw int) string {
	var lines []string
	border := theme.Error

	switch {
	case s.errMsg != "":
		lines = append(lines, theme.ErrorText.Render(s.errMsg))
	case s.result.Correct:
		border = theme.Success
		lines = append(lines,
			theme.Correct.Render("✓ "+s.env.T("Correct")),
			theme.Body.Render(s.env.Td("PointsEarned", map[string]any{"Points": s.result.Points})))
	case s.timedOut:
		lines = append(lines, theme.Incorrect.Render("⏰ "+s.env.T("TimeUp")))
	default:
		lines = append(lines, theme.Incorrect.Render("✗ "+s.env.T("Incorrect")))
	}

	if !s.result.Correct {
		idx := s.answers.Correct
		if idx >= 0 && idx < len(s.question.Options) {
			lines = append(lines, theme.Hint.Render(s.env.T("CorrectAnswerIs"))+" "+
				theme.Correct.Render(s.question.Options[idx]))
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cw - 2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// progressBar shows how far through the quiz the player is.
func progressBar(n, total, w int) string {
	if total <= 0 {
		return ""
	}
	filled := w * n / total
	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", w-filled))
}
