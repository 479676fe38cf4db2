// Package join is the student's entry point: enter a lobby code, join, and
// wait for the teacher to start.
package join

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/router"
	"github.com/abhisek/bilim/internal/screen"
	"github.com/abhisek/bilim/internal/ui/components"
	"github.com/abhisek/bilim/internal/ui/layout"
	"github.com/abhisek/bilim/internal/ui/theme"
)

// StartDelay is how long a student waits in the lobby before the game
// starts.
const StartDelay = 3 * time.Second

// joinedMsg carries the result of joining a lobby and loading questions.
type joinedMsg struct {
	Code      string
	Player    quiz.Player
	Questions []quiz.Question
	Err       error
}

// gameStartedMsg fires once StartDelay has passed.
type gameStartedMsg struct{}

// JoinScreen asks for a lobby code.
type JoinScreen struct {
	env     *screen.Env
	code    components.TextInput
	loading bool
	waiting bool
	spinner components.Spinner
	errMsg  string
}

var _ screen.Screen = (*JoinScreen)(nil)
var _ screen.KeyHintProvider = (*JoinScreen)(nil)

// New creates a JoinScreen.
func New(env *screen.Env) *JoinScreen {
	code := components.NewTextInput(env.T("CodeLabel"), "ABC123", quiz.CodeLength)
	code.Upper = true
	return &JoinScreen{env: env, code: code}
}

func (s *JoinScreen) Init() tea.Cmd {
	s.env.Game.BeginJoin()
	return s.code.Init()
}

func (s *JoinScreen) Title() string {
	if s.waiting {
		return s.env.T("WaitingTitle")
	}
	return s.env.T("JoinTitle")
}

func (s *JoinScreen) KeyHints() []layout.KeyHint {
	if s.waiting {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: s.env.T("KeyQuit")}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: s.env.T("JoinButton")},
		{Key: "Ctrl+P", Description: s.env.T("KeyProfile")},
		{Key: "Ctrl+X", Description: s.env.T("KeyLogout")},
	}
}

func (s *JoinScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case joinedMsg:
		return s.handleJoined(msg)

	case gameStartedMsg:
		if !s.waiting {
			return s, nil
		}
		s.env.Game.StartGame()
		return s, router.Replace(s.env.Routes.Quiz())

	case components.SpinnerTickMsg:
		if !s.loading && !s.waiting {
			return s, nil
		}
		s.spinner.Advance()
		return s, s.spinner.Tick()

	case tea.KeyPressMsg:
		if s.loading || s.waiting {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.submit()
		case "ctrl+p":
			return s, router.Push(s.env.Routes.Profile())
		case "ctrl+x":
			if err := s.env.Profile.Logout(s.env.Ctx); err != nil {
				s.errMsg = s.env.T("ErrorGeneric")
				return s, nil
			}
			return s, router.Root(s.env.Routes.Welcome())
		}
		s.errMsg = ""
	}

	if s.loading || s.waiting {
		return s, nil
	}
	var cmd tea.Cmd
	s.code, cmd = s.code.Update(msg)
	return s, cmd
}

func (s *JoinScreen) submit() tea.Cmd {
	code := quiz.NormalizeCode(s.code.Value())
	if len(code) < quiz.MinCodeInput {
		s.errMsg = s.env.T("ErrorShortCode")
		return nil
	}

	s.loading = true
	s.errMsg = ""
	env := s.env
	p := env.Profile.Profile()

	join := func() tea.Msg {
		return joinLobby(env.Ctx, env, code, p.Name, p.Avatar, p.AvatarColor)
	}
	return tea.Batch(join, s.spinner.Tick())
}

func joinLobby(ctx context.Context, env *screen.Env, code, name, avatar, color string) joinedMsg {
	player, err := env.Content.JoinLobby(ctx, code, name, avatar, color)
	if err != nil {
		return joinedMsg{Code: code, Err: err}
	}
	qs, err := env.Content.GetQuestions(ctx, quiz.DefaultQuestionCount)
	if err != nil {
		return joinedMsg{Code: code, Err: err}
	}
	return joinedMsg{Code: code, Player: player, Questions: qs}
}

func (s *JoinScreen) handleJoined(msg joinedMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, quiz.ErrInvalidCode):
			s.errMsg = s.env.T("ErrorInvalidCode")
		case errors.Is(msg.Err, quiz.ErrEmptyName):
			s.errMsg = s.env.T("ErrorName")
		default:
			slog.Error("join lobby failed", "code", msg.Code, "error", msg.Err)
			s.errMsg = s.env.T("ErrorGeneric")
		}
		return s, nil
	}

	g := s.env.Game
	g.ResetGame()
	g.ClearPlayers()
	if err := g.SetLobbyCode(msg.Code); err != nil {
		s.errMsg = s.env.T("ErrorInvalidCode")
		return s, nil
	}
	g.SetQuestions(msg.Questions)
	g.AddPlayer(msg.Player)
	g.BeginWaiting()
	s.waiting = true

	slog.Info("joined lobby", "code", msg.Code, "questions", len(msg.Questions))

	wait := tea.Tick(StartDelay, func(time.Time) tea.Msg { return gameStartedMsg{} })
	return s, tea.Batch(wait, s.spinner.Tick())
}

func (s *JoinScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.waiting {
		return components.Center(s.waitingView(cw), width, height)
	}

	p := s.env.Profile.Profile()
	who := components.Avatar(p.Avatar, p.AvatarColor) + " " + theme.Body.Render(p.Name)

	sections := []string{
		who,
		"",
		components.Heading("🎮 "+s.env.T("JoinTitle"), cw),
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, theme.Subtitle.Render(s.env.T("JoinSubtitle"))),
		"",
		s.code.View(),
	}
	if s.errMsg != "" {
		sections = append(sections, components.ErrorLine(s.errMsg))
	}
	sections = append(sections, "")
	if s.loading {
		sections = append(sections, s.spinner.View(s.env.T("Loading")))
	} else {
		sections = append(sections, theme.ButtonActive.Render("▸ "+s.env.T("JoinButton")))
	}

	return components.Center(lipgloss.JoinVertical(lipgloss.Left, sections...), width, height)
}

func (s *JoinScreen) waitingView(cw int) string {
	p := s.env.Profile.Profile()
	card := lipgloss.JoinVertical(lipgloss.Center,
		components.Avatar(p.Avatar, p.AvatarColor),
		theme.Hint.Render(s.env.T("Greeting")),
		theme.Title.Render(p.Name),
		"",
		theme.Correct.Render(s.env.T("Ready")+" ✓"),
	)
	return lipgloss.JoinVertical(lipgloss.Center,
		components.Heading("🎉 "+s.env.T("WaitingTitle"), cw),
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, theme.Subtitle.Render(s.env.T("WaitingDesc"))),
		"",
		components.Card(lipgloss.PlaceHorizontal(cw-6, lipgloss.Center, card), cw),
		"",
		s.spinner.View(s.env.T("LobbyCode")+" "+s.env.Game.LobbyCode()),
	)
}
