// Package welcome is the first screen for a signed-out user: pick a role
// and, optionally, the interface language.
package welcome

import (
	"log/slog"
	"strings"
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

const tickInterval = 400 * time.Millisecond

// sparkle frames cycle beside the banner
var sparkleFrames = []string{"✦", "★", "✧"}

type tickMsg time.Time

// WelcomeScreen lets the user choose between the teacher and student flows.
type WelcomeScreen struct {
	env       *screen.Env
	menu      components.Menu
	tickCount int
	errMsg    string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New(env *screen.Env) *WelcomeScreen {
	w := &WelcomeScreen{env: env}
	w.buildMenu()
	return w
}

func (w *WelcomeScreen) buildMenu() {
	selected := w.menu.Selected
	w.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "📚 " + w.env.T("IAmTeacher"),
			Detail: w.env.T("TeacherDesc"),
			Action: func() tea.Cmd { return w.choose(quiz.RoleTeacher) },
		},
		{
			Label:  "🎒 " + w.env.T("IAmStudent"),
			Detail: w.env.T("StudentDesc"),
			Action: func() tea.Cmd { return w.choose(quiz.RoleStudent) },
		},
	})
	w.menu.Selected = selected
}

func (w *WelcomeScreen) choose(role quiz.Role) tea.Cmd {
	if err := w.env.Profile.SetRole(w.env.Ctx, role); err != nil {
		w.errMsg = w.env.T("ErrorGeneric")
		return nil
	}
	return router.Push(w.env.Routes.Login(role))
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: w.env.T("KeyMove")},
		{Key: "Enter", Description: w.env.T("KeySelect")},
		{Key: "L", Description: w.env.T("KeyLanguage")},
		{Key: "Ctrl+C", Description: w.env.T("KeyQuit")},
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "l", "L":
			return w, w.switchLanguage()
		}
		var cmd tea.Cmd
		w.menu, cmd = w.menu.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *WelcomeScreen) switchLanguage() tea.Cmd {
	next := w.env.I18n.Language().Next()
	if err := w.env.I18n.SetLanguage(w.env.Ctx, next); err != nil {
		slog.Warn("switch language", "language", next, "error", err)
		w.errMsg = w.env.T("ErrorGeneric")
		return nil
	}
	w.errMsg = ""
	w.buildMenu()
	return nil
}

func (w *WelcomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	sparkle := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(sparkleFrames[w.tickCount%len(sparkleFrames)])

	sections = append(sections, RenderBanner(width))
	sections = append(sections, sparkle+"  "+theme.Subtitle.Render(w.env.T("WelcomeSubtitle"))+"  "+sparkle)
	sections = append(sections, "")
	sections = append(sections, theme.Body.Bold(true).Render(w.env.T("ChooseRole")))
	sections = append(sections, "")
	sections = append(sections, w.menu.View(min(cw, 44)))

	if w.errMsg != "" {
		sections = append(sections, "", components.ErrorLine(w.errMsg))
	}

	lang := w.env.I18n.Language()
	sections = append(sections, "", theme.Hint.Render("🌐 "+w.env.T("Language")+": "+lang.Name()))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}
