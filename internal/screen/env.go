package screen

import (
	"context"

	"github.com/abhisek/bilim/internal/content"
	"github.com/abhisek/bilim/internal/i18n"
	"github.com/abhisek/bilim/internal/profile"
	"github.com/abhisek/bilim/internal/quiz"
	"github.com/abhisek/bilim/internal/session"
)

// Env is shared by every screen of one program run.
type Env struct {
	Ctx     context.Context
	Content *content.Service
	Game    *session.Game
	Profile *profile.Store
	I18n    *i18n.Store
	Routes  Routes
}

// Routes builds screens so that screens can navigate to each other without
// importing each other. The app fills every field.
type Routes struct {
	Welcome     func() Screen
	Login       func(role quiz.Role) Screen
	Dashboard   func() Screen
	LobbyConfig func() Screen
	Monitor     func() Screen
	Join        func() Screen
	Quiz        func() Screen
	Results     func() Screen
	Profile     func() Screen
}

// Home returns the landing screen for the current profile: the dashboard
// for teachers, the join form for students and the welcome screen when
// nobody is signed in.
func (e *Env) Home() Screen {
	p := e.Profile.Profile()
	if !p.Authenticated {
		return e.Routes.Welcome()
	}
	if p.Role == quiz.RoleTeacher {
		return e.Routes.Dashboard()
	}
	return e.Routes.Join()
}

// T translates msgID in the active language.
func (e *Env) T(msgID string) string { return e.I18n.T(msgID) }

// Td translates msgID with template data.
func (e *Env) Td(msgID string, data map[string]any) string { return e.I18n.Td(msgID, data) }

// Tp translates a pluralized msgID.
func (e *Env) Tp(msgID string, count int) string { return e.I18n.Tp(msgID, count) }
