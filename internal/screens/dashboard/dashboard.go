// Package dashboard is the teacher's home screen.
package dashboard

import (
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/bank"
	"github.com/abhisek/bilim/internal/router"
	"github.com/abhisek/bilim/internal/screen"
	"github.com/abhisek/bilim/internal/ui/components"
	"github.com/abhisek/bilim/internal/ui/layout"
	"github.com/abhisek/bilim/internal/ui/theme"
)

// DashboardScreen offers lobby creation and lists recent sessions.
type DashboardScreen struct {
	env      *screen.Env
	menu     components.Menu
	sessions []bank.SessionSummary
	errMsg   string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen.
func New(env *screen.Env) *DashboardScreen {
	d := &DashboardScreen{
		env:      env,
		sessions: env.Content.RecentSessions(),
	}
	d.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "＋ " + env.T("CreateSession"),
			Detail: env.T("CreateDesc"),
			Action: func() tea.Cmd { return router.Push(env.Routes.LobbyConfig()) },
		},
		{
			Label:  env.T("Profile"),
			Action: func() tea.Cmd { return router.Push(env.Routes.Profile()) },
		},
		{
			Label:  env.T("Logout"),
			Action: d.logout,
		},
	})
	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return d.env.T("DashboardTitle")
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: d.env.T("KeyMove")},
		{Key: "Enter", Description: d.env.T("KeySelect")},
		{Key: "P", Description: d.env.T("KeyProfile")},
		{Key: "Ctrl+C", Description: d.env.T("KeyQuit")},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "p", "P":
			return d, router.Push(d.env.Routes.Profile())
		case "n", "N":
			return d, router.Push(d.env.Routes.LobbyConfig())
		}
	}

	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) logout() tea.Cmd {
	if err := d.env.Profile.Logout(d.env.Ctx); err != nil {
		slog.Error("logout failed", "error", err)
		d.errMsg = d.env.T("ErrorGeneric")
		return nil
	}
	return router.Root(d.env.Routes.Welcome())
}

func (d *DashboardScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := d.env.Profile.Profile()

	var sections []string
	greeting := d.env.Td("DashboardGreeting", map[string]any{"Name": p.Name}) + " 👋"
	sections = append(sections, lipgloss.NewStyle().Bold(true).Foreground(theme.Text).Render(greeting))
	sections = append(sections, "")
	sections = append(sections, d.menu.View(cw))

	if d.errMsg != "" {
		sections = append(sections, "", components.ErrorLine(d.errMsg))
	}

	if len(d.sessions) > 0 {
		sections = append(sections, "", theme.Body.Bold(true).Render(d.env.T("History")))
		sections = append(sections, components.Card(d.renderSessions(), cw))
	}

	return components.Center(lipgloss.JoinVertical(lipgloss.Left, sections...), width, height)
}

func (d *DashboardScreen) renderSessions() string {
	rows := make([]string, 0, len(d.sessions))
	for _, s := range d.sessions {
		row := d.env.Td("SessionRow", map[string]any{
			"Topic":    s.Topic,
			"Students": s.Students,
			"When":     s.When,
		})
		if s.Active() {
			row = theme.Correct.Render("● ") + row + theme.Hint.Render("  "+d.env.T("SessionActive"))
		} else {
			row = theme.Hint.Render("○ ") + row
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}
