// Package screentest builds screen environments for screen tests.
package screentest

import (
	"context"
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bilim/internal/bank"
	"github.com/abhisek/bilim/internal/content"
	"github.com/abhisek/bilim/internal/i18n"
	"github.com/abhisek/bilim/internal/profile"
	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/quizgen"
	"github.com/abhisek/bilim/internal/router"
	"github.com/abhisek/bilim/internal/screen"
	"github.com/abhisek/bilim/internal/session"
	"github.com/abhisek/bilim/internal/store"
)

// Stub stands in for a routed screen.
type Stub struct {
	Name string
	Role quiz.Role
}

func (s *Stub) Init() tea.Cmd                           { return nil }
func (s *Stub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *Stub) View(int, int) string                    { return s.Name }
func (s *Stub) Title() string                           { return s.Name }

// NewEnv returns an Env over in-memory stores, the default bank and a
// content service without delays. gen may be nil. Every route returns a
// *Stub named after the route. The language is English.
func NewEnv(t testing.TB, gen quizgen.Generator) *screen.Env {
	t.Helper()

	kv := store.NewMemory()
	tr, err := i18n.New(kv)
	if err != nil {
		t.Fatalf("i18n: %v", err)
	}
	if err := tr.Use(i18n.English); err != nil {
		t.Fatalf("i18n: %v", err)
	}

	cfg := content.DefaultConfig().WithoutDelays()
	cfg.Rand = rand.New(rand.NewPCG(1, 2))

	return &screen.Env{
		Ctx:     context.Background(),
		Content: content.New(bank.Default(), gen, cfg),
		Game:    session.NewGame(),
		Profile: profile.NewStore(kv),
		I18n:    tr,
		Routes: screen.Routes{
			Welcome:     stub("welcome"),
			Login:       func(role quiz.Role) screen.Screen { return &Stub{Name: "login", Role: role} },
			Dashboard:   stub("dashboard"),
			LobbyConfig: stub("lobbyconfig"),
			Monitor:     stub("monitor"),
			Join:        stub("join"),
			Quiz:        stub("quiz"),
			Results:     stub("results"),
			Profile:     stub("profile"),
		},
	}
}

func stub(name string) func() screen.Screen {
	return func() screen.Screen { return &Stub{Name: name} }
}

// Login signs the env's profile in.
func Login(t testing.TB, env *screen.Env, name string, role quiz.Role) {
	t.Helper()
	if err := env.Profile.Login(env.Ctx, name, role, "🦊", "#3b82f6"); err != nil {
		t.Fatalf("login: %v", err)
	}
}

// Key builds a key press for a key name such as "enter", "tab" or "a".
func Key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

// Run executes cmd and returns its message, or nil for a nil cmd.
func Run(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Routed runs cmd and returns the stub screen carried by the resulting
// router message, or nil when cmd does not navigate.
func Routed(cmd tea.Cmd) *Stub {
	var s screen.Screen
	switch m := Run(cmd).(type) {
	case router.PushScreenMsg:
		s = m.Screen
	case router.ReplaceScreenMsg:
		s = m.Screen
	case router.RootScreenMsg:
		s = m.Screen
	}
	stub, _ := s.(*Stub)
	return stub
}

// Drain runs cmd and every command nested in a batch, returning the
// resulting messages in order. Tick commands block for their interval.
func Drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Drain(c)...)
	}
	return out
}

// Find returns the first message of type T produced by cmd.
func Find[T tea.Msg](cmd tea.Cmd) (T, bool) {
	for _, msg := range Drain(cmd) {
		if m, ok := msg.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}
