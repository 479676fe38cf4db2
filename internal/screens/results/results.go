// Package results shows the final score and where the player landed on the
// leaderboard.
package results

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/leaderboard"
	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/router"
	"github.com/abhisek/bilim/internal/screen"
	"github.com/abhisek/bilim/internal/session"
	"github.com/abhisek/bilim/internal/ui/components"
	"github.com/abhisek/bilim/internal/ui/layout"
	"github.com/abhisek/bilim/internal/ui/theme"
)

// leaderboardMsg carries the fetched ranking.
type leaderboardMsg struct {
	Players []quiz.Player
	Err     error
}

// ResultsScreen shows the outcome of a finished game.
type ResultsScreen struct {
	env     *screen.Env
	summary session.Summary
	board   leaderboard.Board
	loaded  bool
	spinner components.Spinner
	errMsg  string
	menu    components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the game in env.
func New(env *screen.Env) *ResultsScreen {
	s := &ResultsScreen{
		env:     env,
		summary: env.Game.Summary(),
	}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "🔄 " + env.T("PlayAgain"), Action: s.playAgain},
		{Label: "🚪 " + env.T("Exit"), Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	env := s.env
	fetch := func() tea.Msg {
		players, err := env.Content.GetLeaderboard(env.Ctx)
		return leaderboardMsg{Players: players, Err: err}
	}
	return tea.Batch(fetch, s.spinner.Tick())
}

func (s *ResultsScreen) Title() string {
	return s.env.T("Leaderboard")
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: s.env.T("KeyMove")},
		{Key: "Enter", Description: s.env.T("KeySelect")},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case leaderboardMsg:
		s.loaded = true
		local := s.env.Profile.Profile().Player()
		local.Score = s.summary.Score
		others := msg.Players
		if msg.Err != nil {
			slog.Error("leaderboard unavailable", "error", msg.Err)
			s.errMsg = s.env.T("ErrorGeneric")
			others = nil
		}
		s.board = leaderboard.Assemble(others, local)
		return s, nil

	case components.SpinnerTickMsg:
		if s.loaded {
			return s, nil
		}
		s.spinner.Advance()
		return s, s.spinner.Tick()

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResultsScreen) playAgain() tea.Cmd {
	s.env.Game.ResetGame()
	return router.Root(s.env.Home())
}

// correct is the number of correct answers, estimated from the score when
// nothing was recorded.
func (s *ResultsScreen) correct() int {
	if s.summary.Answered > 0 {
		return s.summary.Correct
	}
	return leaderboard.EstimateCorrect(s.summary.Score, s.summary.TotalQuestions)
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var rank string
	if s.loaded {
		rank = theme.Title.Render(fmt.Sprintf("🏆  %s  %s", s.env.T("Place"), leaderboard.Medal(s.board.Rank)))
	} else {
		rank = s.spinner.View(s.env.T("Loading"))
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		statRow("⭐ "+s.env.T("TotalScore"), fmt.Sprint(s.summary.Score), cw-4),
		statRow("✅ "+s.env.T("CorrectAnswers"), fmt.Sprintf("%d/%d", s.correct(), s.summary.TotalQuestions), cw-4),
		statRow("✨ "+s.env.T("XPEarned"), fmt.Sprintf("+%d", s.summary.Score), cw-4),
	)

	sections := []string{
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, rank),
		"",
		components.Card(stats, cw),
	}
	if s.loaded {
		sections = append(sections, "",
			theme.Body.Bold(true).Render(s.env.T("Leaderboard")),
			components.Card(s.boardView(cw-4), cw))
	}
	if s.errMsg != "" {
		sections = append(sections, components.ErrorLine(s.errMsg))
	}
	sections = append(sections, "", s.menu.View(cw))

	return components.Center(lipgloss.JoinVertical(lipgloss.Left, sections...), width, height)
}

func (s *ResultsScreen) boardView(w int) string {
	rows := make([]string, 0, len(s.board.Entries))
	for i, p := range s.board.Entries {
		name := p.Name
		style := theme.Body
		if s.board.IsLocal(i) {
			name += " (" + s.env.T("You") + ")"
			style = theme.Selected
		}
		left := fmt.Sprintf("%-3s ", leaderboard.Medal(i+1)) + components.Avatar(p.Avatar, p.AvatarColor) + " " + style.Render(name)
		right := theme.Body.Render(fmt.Sprint(p.Score))
		gap := max(1, w-lipgloss.Width(left)-lipgloss.Width(right))
		rows = append(rows, left+strings.Repeat(" ", gap)+right)
	}
	return strings.Join(rows, "\n")
}

func statRow(label, value string, w int) string {
	l := theme.Hint.Render(label)
	v := theme.Body.Bold(true).Render(value)
	gap := max(1, w-lipgloss.Width(l)-lipgloss.Width(v))
	return l + strings.Repeat(" ", gap) + v
}
