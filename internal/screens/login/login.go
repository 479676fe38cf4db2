// Package login collects the user's name, avatar and avatar color and signs
// them in with the role chosen on the welcome screen.
package login

import (
	"errors"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bilim/internal/profile"
	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/router"
	"github.com/abhisek/bilim/internal/screen"
	"github.com/abhisek/bilim/internal/ui/components"
	"github.com/abhisek/bilim/internal/ui/layout"
	"github.com/abhisek/bilim/internal/ui/theme"
)

const nameLimit = 40

type field int

const (
	fieldName field = iota
	fieldAvatar
	fieldColor
	fieldCount
)

// LoginScreen is the sign-in form.
type LoginScreen struct {
	env    *screen.Env
	role   quiz.Role
	name   components.TextInput
	avatar components.Picker
	color  components.Picker
	focus  field
	errMsg string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen for role.
func New(env *screen.Env, role quiz.Role) *LoginScreen {
	b := env.Content.Bank()

	placeholder := env.T("StudentNamePlaceholder")
	if role == quiz.RoleTeacher {
		placeholder = env.T("TeacherNamePlaceholder")
	}

	avatars := b.Avatars()
	colors := b.Colors()

	s := &LoginScreen{
		env:    env,
		role:   role,
		name:   components.NewTextInput(env.T("EnterName"), placeholder, nameLimit),
		avatar: components.NewPicker(env.T("ChooseAvatar"), avatars, indexOf(avatars, profile.DefaultAvatar)),
		color:  components.NewPicker(env.T("ChooseColor"), colors, indexOf(colors, profile.DefaultColor)),
	}
	s.avatar.Wrap = true
	s.color.Wrap = true
	return s
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if strings.EqualFold(v, x) {
			return i
		}
	}
	return 0
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.name.Init()
}

func (s *LoginScreen) Title() string {
	if s.role == quiz.RoleTeacher {
		return s.env.T("TeacherLogin")
	}
	return s.env.T("StudentLogin")
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: s.env.T("KeyNext")},
		{Key: "←→", Description: s.env.T("KeyChange")},
		{Key: "Enter", Description: s.env.T("Continue")},
		{Key: "Esc", Description: s.env.T("KeyBack")},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.focus == fieldName {
			var cmd tea.Cmd
			s.name, cmd = s.name.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s, s.submit()
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldAvatar:
		s.avatar, cmd = s.avatar.Update(msg)
	case fieldColor:
		s.color, cmd = s.color.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) setFocus(f field) tea.Cmd {
	s.focus = f
	s.avatar.Focused = f == fieldAvatar
	s.color.Focused = f == fieldColor
	if f == fieldName {
		return s.name.Focus()
	}
	s.name.Blur()
	return nil
}

func (s *LoginScreen) submit() tea.Cmd {
	name := s.name.Value()
	if name == "" {
		s.errMsg = s.env.T("ErrorName")
		return s.setFocus(fieldName)
	}

	err := s.env.Profile.Login(s.env.Ctx, name, s.role, s.avatar.Value(), s.color.Value())
	switch {
	case errors.Is(err, quiz.ErrEmptyName):
		s.errMsg = s.env.T("ErrorName")
		return nil
	case err != nil:
		slog.Error("login failed", "role", s.role, "error", err)
		s.errMsg = s.env.T("ErrorGeneric")
		return nil
	}

	s.errMsg = ""
	return router.Root(s.env.Home())
}

func (s *LoginScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var sections []string

	preview := components.Avatar(s.avatar.Value(), s.color.Value())
	sections = append(sections, lipgloss.NewStyle().Bold(true).Render(preview+"  "+s.name.Value()))
	sections = append(sections, "")
	sections = append(sections, s.name.View())
	sections = append(sections, "")
	sections = append(sections, s.avatarRows(cw))
	sections = append(sections, "")
	sections = append(sections, s.swatches())

	if s.errMsg != "" {
		sections = append(sections, "", components.ErrorLine(s.errMsg))
	}

	form := components.Card(lipgloss.JoinVertical(lipgloss.Left, sections...), cw)
	title := components.Heading(s.Title(), cw)
	return components.Center(lipgloss.JoinVertical(lipgloss.Center, title, "", form), width, height)
}

// avatarRows renders the avatar picker wrapped to fit cw.
func (s *LoginScreen) avatarRows(cw int) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.avatar.Focused {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}

	perRow := max(1, (cw-4)/5)
	var rows []string
	var row strings.Builder
	for i, a := range s.avatar.Options {
		cell := " " + a + "  "
		if i == s.avatar.Selected {
			cell = lipgloss.NewStyle().Background(theme.Primary).Render(" " + a + " ") + " "
		}
		row.WriteString(cell)
		if (i+1)%perRow == 0 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return labelStyle.Render(s.avatar.Label) + "\n" + strings.Join(rows, "\n")
}

// swatches renders the color picker as colored blocks.
func (s *LoginScreen) swatches() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.color.Focused {
		labelStyle = labelStyle.Foreground(theme.Primary).Bold(true)
	}

	var b strings.Builder
	for i, c := range s.color.Options {
		block := lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("    ")
		if i == s.color.Selected {
			block = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("[") + block +
				lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("]")
		} else {
			block = " " + block + " "
		}
		b.WriteString(block)
	}
	return labelStyle.Render(s.color.Label) + "\n" + b.String()
}
