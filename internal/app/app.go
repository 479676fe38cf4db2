package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/router"
	"github.com/abhisek/bilim/internal/screen"
	"github.com/abhisek/bilim/internal/screens/dashboard"
	"github.com/abhisek/bilim/internal/screens/join"
	"github.com/abhisek/bilim/internal/screens/lobbyconfig"
	"github.com/abhisek/bilim/internal/screens/login"
	"github.com/abhisek/bilim/internal/screens/monitor"
	"github.com/abhisek/bilim/internal/screens/play"
	"github.com/abhisek/bilim/internal/screens/profile"
	"github.com/abhisek/bilim/internal/screens/results"
	"github.com/abhisek/bilim/internal/screens/welcome"
	"github.com/abhisek/bilim/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// Wire fills env.Routes with the application's screens.
func Wire(env *screen.Env) {
	env.Routes = screen.Routes{
		Welcome:     func() screen.Screen { return welcome.New(env) },
		Login:       func(role quiz.Role) screen.Screen { return login.New(env, role) },
		Dashboard:   func() screen.Screen { return dashboard.New(env) },
		LobbyConfig: func() screen.Screen { return lobbyconfig.New(env) },
		Monitor:     func() screen.Screen { return monitor.New(env) },
		Join:        func() screen.Screen { return join.New(env) },
		Quiz:        func() screen.Screen { return play.New(env) },
		Results:     func() screen.Screen { return results.New(env) },
		Profile:     func() screen.Screen { return profile.New(env) },
	}
}

// New creates an AppModel starting at the profile's home screen. env.Routes
// must be filled, usually by Wire.
func New(env *screen.Env) AppModel {
	return AppModel{
		env:    env,
		router: router.New(env.Home()),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the frame around the active screen.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.badge(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) badge() layout.Badge {
	b := layout.Badge{Lang: string(m.env.I18n.Language())}
	if p := m.env.Profile.Profile(); p.Authenticated {
		b.Avatar = p.Avatar
		b.Name = p.Name
		b.Color = p.AvatarColor
	}
	return b
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: m.env.T("KeyMove")},
			{Key: "Enter", Description: m.env.T("KeySelect")},
		}
		if m.router.Depth() > 1 {
			hints = append(hints, layout.KeyHint{Key: "Esc", Description: m.env.T("KeyBack")})
		}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: m.env.T("KeyQuit")})
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(env *screen.Env) error {
	Wire(env)
	p := tea.NewProgram(New(env))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
