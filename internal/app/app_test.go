package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/screens/dashboard"
	"github.com/abhisek/bilim/internal/screens/join"
	"github.com/abhisek/bilim/internal/screens/screentest"
	"github.com/abhisek/bilim/internal/screens/welcome"
)

func TestStartsAtHome(t *testing.T) {
	tests := []struct {
		name string
		role quiz.Role
		want string
	}{
		{"signed out", quiz.RoleNone, "welcome"},
		{"teacher", quiz.RoleTeacher, "dashboard"},
		{"student", quiz.RoleStudent, "join"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := screentest.NewEnv(t, nil)
			if tt.role != quiz.RoleNone {
				screentest.Login(t, env, "Арман", tt.role)
			}
			Wire(env)
			m := New(env)

			var got string
			switch m.router.Active().(type) {
			case *welcome.WelcomeScreen:
				got = "welcome"
			case *dashboard.DashboardScreen:
				got = "dashboard"
			case *join.JoinScreen:
				got = "join"
			}
			if got != tt.want {
				t.Errorf("home = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscPopsOnlyAboveRoot(t *testing.T) {
	env := screentest.NewEnv(t, nil)
	Wire(env)
	m := New(env)

	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape}); cmd != nil {
		t.Error("esc at the root should do nothing")
	}

	m.router.Push(env.Routes.Profile())
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should pop")
	}
	m.Update(cmd())
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestCtrlCQuits(t *testing.T) {
	env := screentest.NewEnv(t, nil)
	Wire(env)
	m := New(env)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}

func TestViewShowsBadge(t *testing.T) {
	env := screentest.NewEnv(t, nil)
	screentest.Login(t, env, "Арман", quiz.RoleStudent)
	Wire(env)

	model, _ := New(env).Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	content := model.(AppModel).render()
	for _, want := range []string{"Bilim", "Арман", "EN", "quit"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestTooSmall(t *testing.T) {
	env := screentest.NewEnv(t, nil)
	Wire(env)
	model, _ := New(env).Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if model.(AppModel).render() == "" {
		t.Error("expected a size message")
	}
}
