// Package monitor is the teacher's lobby view: the lobby code, the students
// arriving and the controls to start the game or try it locally.
package monitor

import (
	"strings"
	"sync/atomic"
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

// ArrivalInterval is the gap between simulated students joining.
const ArrivalInterval = 1500 * time.Millisecond

// playerArrivedMsg adds the index-th simulated student to the roster of the
// monitor it was scheduled by.
type playerArrivedMsg struct {
	monitor uint64
	index   int
}

// monitors numbers MonitorScreen instances so that arrivals scheduled by a
// closed monitor are not applied to the next lobby.
var monitors atomic.Uint64

// MonitorScreen shows the lobby while students join.
type MonitorScreen struct {
	env      *screen.Env
	id       uint64
	arrivals []quiz.Player
	start    components.Button
	spinner  components.Spinner
	errMsg   string
}

var _ screen.Screen = (*MonitorScreen)(nil)
var _ screen.KeyHintProvider = (*MonitorScreen)(nil)

// New creates a MonitorScreen for the lobby held by env.Game.
func New(env *screen.Env) *MonitorScreen {
	m := &MonitorScreen{
		env:      env,
		id:       monitors.Add(1),
		arrivals: env.Content.SimulatedRoster(),
	}
	m.start = components.NewButton("▶ "+env.T("StartGame"), m.startGame)
	m.start.Disabled = len(env.Game.Players()) == 0
	return m
}

func (m *MonitorScreen) Init() tea.Cmd {
	if len(m.arrivals) == 0 {
		return nil
	}
	return tea.Batch(m.arrive(0), m.spinner.Tick())
}

func (m *MonitorScreen) arrive(index int) tea.Cmd {
	id := m.id
	return tea.Tick(ArrivalInterval, func(time.Time) tea.Msg {
		return playerArrivedMsg{monitor: id, index: index}
	})
}

func (m *MonitorScreen) Title() string {
	return m.env.T("SessionTitle")
}

func (m *MonitorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: m.env.T("KeyStart")},
		{Key: "T", Description: m.env.T("KeyTest")},
		{Key: "Esc", Description: m.env.T("KeyBack")},
	}
}

func (m *MonitorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case playerArrivedMsg:
		if msg.monitor != m.id || msg.index >= len(m.arrivals) {
			return m, nil
		}
		m.env.Game.AddPlayer(m.arrivals[msg.index])
		m.start.Disabled = false
		m.errMsg = ""
		if msg.index+1 < len(m.arrivals) {
			return m, m.arrive(msg.index + 1)
		}
		return m, nil

	case components.SpinnerTickMsg:
		if len(m.env.Game.Players()) >= len(m.arrivals) {
			return m, nil
		}
		m.spinner.Advance()
		return m, m.spinner.Tick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "t", "T":
			m.env.Game.StartTestMode()
			return m, router.Push(m.env.Routes.Quiz())
		case "enter", "s", "S":
			if m.start.Disabled {
				m.errMsg = m.env.T("ErrorNoPlayers")
				return m, nil
			}
			var cmd tea.Cmd
			m.start, cmd = m.start.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			return m, cmd
		}
	}
	return m, nil
}

func (m *MonitorScreen) startGame() tea.Cmd {
	m.env.Game.StartGame()
	return router.Root(m.env.Routes.Dashboard())
}

func (m *MonitorScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	st := m.env.Game.Snapshot()

	code := lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render(m.env.T("LobbyCode")),
		theme.Code.Render(spaced(st.LobbyCode)),
	)

	info := theme.Body.Render("🏆 "+m.env.Tp("QuestionsCount", len(st.Questions))) +
		"     " +
		theme.Body.Render("👥 "+m.env.Tp("PlayersJoined", len(st.Players)))

	var roster string
	if len(st.Players) == 0 {
		roster = m.spinner.View(m.env.T("WaitingForPlayers"))
	} else {
		rows := make([]string, 0, len(st.Players))
		for _, p := range st.Players {
			rows = append(rows, components.Avatar(p.Avatar, p.AvatarColor)+" "+
				theme.Body.Render(p.Name)+"  "+
				theme.Correct.Render(m.env.T("Ready")+" ✓"))
		}
		roster = strings.Join(rows, "\n")
	}

	sections := []string{
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, code),
		"",
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, info),
		"",
		theme.Body.Bold(true).Render(m.env.T("ConnectedStudents")),
		components.Card(roster, cw),
		"",
		m.start.View() + "   " + theme.Hint.Render("T · "+m.env.T("TestQuiz")),
	}
	if m.errMsg != "" {
		sections = append(sections, "", components.ErrorLine(m.errMsg))
	}

	return components.Center(lipgloss.JoinVertical(lipgloss.Left, sections...), width, height)
}

// spaced separates the characters of a code for legibility.
func spaced(code string) string {
	return strings.Join(strings.Split(code, ""), " ")
}
