// Package lobbyconfig is the teacher's quiz setup form: topic, question
// count, grade and difficulty.
package lobbyconfig

import (
	"errors"
	"log/slog"
	"strconv"

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

const topicLimit = 120

type field int

const (
	fieldTopic field = iota
	fieldCount
	fieldGrade
	fieldDifficulty
	numFields
)

// lobbyCreatedMsg carries the result of CreateLobby.
type lobbyCreatedMsg struct {
	Lobby content.Lobby
	Err   error
}

// LobbyConfigScreen collects quiz settings and creates the lobby.
type LobbyConfigScreen struct {
	env        *screen.Env
	topic      components.TextInput
	count      components.Picker
	grade      components.Picker
	difficulty components.Picker
	focus      field

	loading    bool
	spinner    components.Spinner
	errMsg     string
	irrelevant bool
}

var _ screen.Screen = (*LobbyConfigScreen)(nil)
var _ screen.KeyHintProvider = (*LobbyConfigScreen)(nil)

// New creates a LobbyConfigScreen preset to quiz.DefaultSettings.
func New(env *screen.Env) *LobbyConfigScreen {
	def := quiz.DefaultSettings()

	counts := make([]string, len(quiz.QuestionCounts))
	countSel := 0
	for i, n := range quiz.QuestionCounts {
		counts[i] = strconv.Itoa(n)
		if n == def.QuestionCount {
			countSel = i
		}
	}

	grades := make([]string, 0, quiz.MaxGrade-quiz.MinGrade+1)
	for g := quiz.MinGrade; g <= quiz.MaxGrade; g++ {
		grades = append(grades, strconv.Itoa(g))
	}

	diffs := make([]string, len(quiz.Difficulties))
	diffSel := 0
	for i, d := range quiz.Difficulties {
		diffs[i] = difficultyLabel(env, d)
		if d == def.Difficulty {
			diffSel = i
		}
	}

	return &LobbyConfigScreen{
		env:        env,
		topic:      components.NewTextInput(env.T("TopicLabel"), env.T("TopicPlaceholder"), topicLimit),
		count:      components.NewPicker(env.T("QuestionCount"), counts, countSel),
		grade:      components.NewPicker(env.T("Grade"), grades, def.Grade-quiz.MinGrade),
		difficulty: components.NewPicker(env.T("Difficulty"), diffs, diffSel),
	}
}

func difficultyLabel(env *screen.Env, d quiz.Difficulty) string {
	switch d {
	case quiz.DifficultyEasy:
		return "🌱 " + env.T("DiffEasy")
	case quiz.DifficultyHard:
		return "🔥 " + env.T("DiffHard")
	default:
		return "🌿 " + env.T("DiffMedium")
	}
}

func (s *LobbyConfigScreen) Init() tea.Cmd {
	return s.topic.Init()
}

func (s *LobbyConfigScreen) Title() string {
	return s.env.T("CreateSession")
}

func (s *LobbyConfigScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: s.env.T("KeyNext")},
		{Key: "←→", Description: s.env.T("KeyChange")},
		{Key: "Enter", Description: s.env.T("CreateLobby")},
		{Key: "Esc", Description: s.env.T("KeyBack")},
	}
}

// Settings returns the settings currently selected on the form.
func (s *LobbyConfigScreen) Settings() quiz.Settings {
	return quiz.Settings{
		QuestionCount: quiz.QuestionCounts[s.count.Selected],
		Grade:         quiz.MinGrade + s.grade.Selected,
		Difficulty:    quiz.Difficulties[s.difficulty.Selected],
	}
}

func (s *LobbyConfigScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lobbyCreatedMsg:
		return s, s.handleCreated(msg)

	case components.SpinnerTickMsg:
		if !s.loading {
			return s, nil
		}
		s.spinner.Advance()
		return s, s.spinner.Tick()

	case tea.KeyPressMsg:
		if s.loading {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.submit()
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % numFields)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + numFields - 1) % numFields)
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldTopic:
		s.topic, cmd = s.topic.Update(msg)
	case fieldCount:
		s.count, cmd = s.count.Update(msg)
	case fieldGrade:
		s.grade, cmd = s.grade.Update(msg)
	case fieldDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	}
	return s, cmd
}

func (s *LobbyConfigScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	s.count.Focused = f == fieldCount
	s.grade.Focused = f == fieldGrade
	s.difficulty.Focused = f == fieldDifficulty
	if f == fieldTopic {
		return s.topic.Focus()
	}
	s.topic.Blur()
	return nil
}

func (s *LobbyConfigScreen) submit() tea.Cmd {
	topic := s.topic.Value()
	if topic == "" {
		s.errMsg = s.env.T("ErrorTopic")
		s.irrelevant = false
		return s.setFocus(fieldTopic)
	}

	s.loading = true
	s.errMsg = ""
	s.irrelevant = false

	env := s.env
	settings := s.Settings()
	create := func() tea.Msg {
		lobby, err := env.Content.CreateLobby(env.Ctx, topic, settings)
		return lobbyCreatedMsg{Lobby: lobby, Err: err}
	}
	return tea.Batch(create, s.spinner.Tick())
}

func (s *LobbyConfigScreen) handleCreated(msg lobbyCreatedMsg) tea.Cmd {
	s.loading = false

	switch {
	case errors.Is(msg.Err, quiz.ErrIrrelevantTopic):
		s.errMsg = s.env.T("ErrorIrrelevant")
		s.irrelevant = true
		return nil
	case errors.Is(msg.Err, quiz.ErrEmptyTopic):
		s.errMsg = s.env.T("ErrorTopic")
		return nil
	case msg.Err != nil:
		slog.Error("create lobby failed", "error", msg.Err)
		s.errMsg = s.env.T("ErrorGeneric")
		return nil
	}

	game := s.env.Game
	game.ResetGame()
	if err := game.SetLobbyCode(msg.Lobby.Code); err != nil {
		slog.Error("invalid lobby code", "code", msg.Lobby.Code, "error", err)
		s.errMsg = s.env.T("ErrorGeneric")
		return nil
	}
	game.SetQuestions(msg.Lobby.Questions)
	game.ClearPlayers()
	game.BeginWaiting()

	slog.Info("lobby created",
		"code", msg.Lobby.Code,
		"source", msg.Lobby.Source,
		"questions", len(msg.Lobby.Questions),
	)
	return router.Push(s.env.Routes.Monitor())
}

func (s *LobbyConfigScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, s.topic.View(), "")
	sections = append(sections, s.count.View(), "")
	sections = append(sections, s.grade.View(), "")
	sections = append(sections, s.difficulty.View())

	if s.errMsg != "" {
		sections = append(sections, "")
		if s.irrelevant {
			sections = append(sections, lipgloss.NewStyle().
				Width(cw-6).
				Foreground(theme.Error).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.Error).
				Padding(0, 1).
				Render("⚠ "+s.errMsg))
		} else {
			sections = append(sections, components.ErrorLine(s.errMsg))
		}
	}

	sections = append(sections, "")
	if s.loading {
		sections = append(sections, s.spinner.View(s.env.T("Generating")))
	} else {
		sections = append(sections, components.NewButton("✨ "+s.env.T("CreateLobby"), nil).View())
	}

	form := components.Card(lipgloss.JoinVertical(lipgloss.Left, sections...), cw)
	return components.Center(form, width, height)
}
