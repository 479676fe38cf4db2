// Package profile shows the local player's card, stats and settings.
package profile

import (
	"fmt"
	"log/slog"
	"strings"

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

type overviewMsg struct {
	Overview content.Overview
	Err      error
}

// ProfileScreen displays the profile and usage stats.
type ProfileScreen struct {
	env      *screen.Env
	overview content.Overview
	loaded   bool
	failed   bool
	spinner  components.Spinner
	errMsg   string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen.
func New(env *screen.Env) *ProfileScreen {
	return &ProfileScreen{env: env}
}

func (s *ProfileScreen) Init() tea.Cmd {
	env := s.env
	fetch := func() tea.Msg {
		ov, err := env.Content.Overview(env.Ctx)
		return overviewMsg{Overview: ov, Err: err}
	}
	return tea.Batch(fetch, s.spinner.Tick())
}

func (s *ProfileScreen) Title() string {
	return s.env.T("Profile")
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "L", Description: s.env.T("KeyLanguage")},
		{Key: "O", Description: s.env.T("KeyLogout")},
		{Key: "Esc", Description: s.env.T("KeyBack")},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case overviewMsg:
		s.loaded = true
		if msg.Err != nil {
			slog.Error("stats unavailable", "error", msg.Err)
			s.failed = true
			return s, nil
		}
		s.overview = msg.Overview
		return s, nil

	case components.SpinnerTickMsg:
		if s.loaded {
			return s, nil
		}
		s.spinner.Advance()
		return s, s.spinner.Tick()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "l", "L":
			next := s.env.I18n.Language().Next()
			if err := s.env.I18n.SetLanguage(s.env.Ctx, next); err != nil {
				slog.Error("language not saved", "lang", next, "error", err)
				s.errMsg = s.env.T("ErrorGeneric")
			}
			return s, nil
		case "o", "O":
			if err := s.env.Profile.Logout(s.env.Ctx); err != nil {
				slog.Error("logout failed", "error", err)
				s.errMsg = s.env.T("ErrorGeneric")
				return s, nil
			}
			s.env.Game.ResetGame()
			return s, router.Root(s.env.Routes.Welcome())
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := s.env.Profile.Profile()

	badge := "🏅 " + s.env.T("Student")
	if p.Role == quiz.RoleTeacher {
		badge = "📚 " + s.env.T("Teacher")
	} else if s.loaded && s.overview.Stats.Rank != "" {
		badge = "🏅 " + s.overview.Stats.Rank
	}

	card := lipgloss.JoinVertical(lipgloss.Center,
		components.Avatar(p.Avatar, p.AvatarColor),
		theme.Title.Render(p.Name),
		theme.Subtitle.Render(badge),
	)

	var stats string
	switch {
	case !s.loaded:
		stats = s.spinner.View(s.env.T("Loading"))
	case s.failed:
		stats = components.ErrorLine(s.env.T("ErrorGeneric"))
	default:
		st := s.overview.Stats
		w := cw - 4
		stats = strings.Join([]string{
			row("🎮 "+s.env.T("GamesPlayed"), fmt.Sprint(st.GamesPlayed), w),
			row("📈 "+s.env.T("AvgScore"), fmt.Sprintf("%d%%", st.AverageScore), w),
			row("⭐ "+s.env.T("TotalXP"), fmt.Sprint(st.TotalXP), w),
			row("🏆 "+s.env.T("Rank"), st.Rank, w),
		}, "\n")
	}

	lang := row("🌐 "+s.env.T("Language"), s.env.I18n.Language().Name(), cw-4)

	sections := []string{
		lipgloss.PlaceHorizontal(cw, lipgloss.Center, card),
		"",
		theme.Body.Bold(true).Render(s.env.T("Stats")),
		components.Card(stats, cw),
		"",
		components.Card(lang, cw),
	}
	if s.errMsg != "" {
		sections = append(sections, components.ErrorLine(s.errMsg))
	}

	return components.Center(lipgloss.JoinVertical(lipgloss.Left, sections...), width, height)
}

func row(label, value string, w int) string {
	l := theme.Hint.Render(label)
	v := theme.Body.Bold(true).Render(value)
	gap := max(1, w-lipgloss.Width(l)-lipgloss.Width(v))
	return l + strings.Repeat(" ", gap) + v
}
