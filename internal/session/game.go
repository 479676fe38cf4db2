// Package session holds the in-memory quiz session: lobby code, question
// list, position, score and roster.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/abhisek/bilim/internal/quiz"
)

// Defaults applied by NewGame and kept across resets.
const (
	DefaultTotalQuestions  = quiz.DefaultQuestionCount
	DefaultTimePerQuestion = quiz.TimePerQuestion
)

// Game is the session state machine. All methods are safe for concurrent
// use and each is atomic with respect to the others.
type Game struct {
	mu sync.RWMutex

	lobbyCode       string
	questions       []quiz.Question
	current         int
	score           int
	totalQuestions  int
	timePerQuestion int
	players         []quiz.Player
	active          bool
	phase           Phase
	progress        Progress

	startedAt  time.Time
	finishedAt time.Time
	now        func() time.Time
}

// NewGame returns an idle game with empty defaults.
func NewGame() *Game {
	return &Game{
		totalQuestions:  DefaultTotalQuestions,
		timePerQuestion: DefaultTimePerQuestion,
		now:             time.Now,
	}
}

// State is a point-in-time copy of a Game.
type State struct {
	LobbyCode            string
	Questions            []quiz.Question
	CurrentQuestionIndex int
	Score                int
	TotalQuestions       int
	TimePerQuestion      int
	Players              []quiz.Player
	Active               bool
	Phase                Phase
	Progress             Progress
}

// Snapshot returns a deep copy of the game state.
func (g *Game) Snapshot() State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return State{
		LobbyCode:            g.lobbyCode,
		Questions:            cloneQuestions(g.questions),
		CurrentQuestionIndex: g.current,
		Score:                g.score,
		TotalQuestions:       g.totalQuestions,
		TimePerQuestion:      g.timePerQuestion,
		Players:              append([]quiz.Player(nil), g.players...),
		Active:               g.active,
		Phase:                g.phase,
		Progress:             g.progress,
	}
}

// SetLobbyCode records the lobby code. The code is normalized and must be
// a valid six-character code; an invalid code leaves the game unchanged.
func (g *Game) SetLobbyCode(code string) error {
	normalized, err := quiz.ValidateCode(code)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.lobbyCode = normalized
	return nil
}

// LobbyCode returns the current lobby code, or "" if none was set.
func (g *Game) LobbyCode() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.lobbyCode
}

// SetQuestions replaces the question list and the question total. The
// position is left as is; call ResetGame first when reusing a game.
func (g *Game) SetQuestions(qs []quiz.Question) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.questions = cloneQuestions(qs)
	g.totalQuestions = len(qs)
}

// NextQuestion advances to the next question. At the last question it
// returns quiz.ErrNoMoreQuestions and leaves the position unchanged.
func (g *Game) NextQuestion() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current+1 >= len(g.questions) {
		return fmt.Errorf("%w: at %d of %d", quiz.ErrNoMoreQuestions, g.current+1, len(g.questions))
	}
	g.current++
	return nil
}

// CurrentQuestion returns the question at the current position.
func (g *Game) CurrentQuestion() (quiz.Question, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.current >= len(g.questions) {
		return quiz.Question{}, false
	}
	return g.questions[g.current].Clone(), true
}

// Index returns the 0-based current position.
func (g *Game) Index() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current
}

// IsLast reports whether the current question is the final one.
func (g *Game) IsLast() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current >= len(g.questions)-1
}

// Question looks up a question of this game by id.
func (g *Game) Question(id int) (quiz.Question, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, q := range g.questions {
		if q.ID == id {
			return q.Clone(), true
		}
	}
	return quiz.Question{}, false
}

// AddScore adds points to the score. Negative points are rejected.
func (g *Game) AddScore(points int) error {
	if points < 0 {
		return fmt.Errorf("%w: %d", quiz.ErrInvalidScore, points)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.score += points
	return nil
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.score
}

// RecordAnswer counts an answer towards the game's progress.
func (g *Game) RecordAnswer(correct bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.progress.Record(correct)
}

// ResetGame clears position, score, questions and progress and returns to
// PhaseIdle. The lobby code and roster are kept: a new lobby replaces the
// code through SetLobbyCode and the roster through ClearPlayers.
func (g *Game) ResetGame() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.current = 0
	g.score = 0
	g.questions = nil
	g.active = false
	g.progress = Progress{}
	g.phase = PhaseIdle
	g.startedAt = time.Time{}
	g.finishedAt = time.Time{}
}

// AddPlayer appends p to the roster. Ids are not deduplicated.
func (g *Game) AddPlayer(p quiz.Player) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.players = append(g.players, p)
}

// RemovePlayer removes every roster entry with the given id.
func (g *Game) RemovePlayer(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	kept := g.players[:0:0]
	for _, p := range g.players {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	g.players = kept
}

// UpdatePlayerScore sets the score of the players with the given id. It is
// a no-op when id is not on the roster.
func (g *Game) UpdatePlayerScore(id string, score int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.players {
		if g.players[i].ID == id {
			g.players[i].Score = score
		}
	}
}

// ClearPlayers empties the roster.
func (g *Game) ClearPlayers() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.players = nil
}

// Players returns a copy of the roster in join order.
func (g *Game) Players() []quiz.Player {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]quiz.Player(nil), g.players...)
}

// BeginLobby marks the teacher's lobby configuration as started.
func (g *Game) BeginLobby() { g.setPhase(PhaseLobby) }

// BeginJoin marks a student entering a lobby code.
func (g *Game) BeginJoin() { g.setPhase(PhaseJoining) }

// BeginWaiting marks the roster as assembling.
func (g *Game) BeginWaiting() { g.setPhase(PhaseWaiting) }

// StartGame activates the game and starts serving questions.
func (g *Game) StartGame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.start()
}

// StartTestMode activates the game for a teacher preview: position, score
// and progress go back to zero while the question list is kept.
func (g *Game) StartTestMode() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.current = 0
	g.score = 0
	g.progress = Progress{}
	g.start()
}

func (g *Game) start() {
	g.active = true
	g.phase = PhaseInProgress
	g.startedAt = g.now()
	g.finishedAt = time.Time{}
}

// EndGame deactivates the game.
func (g *Game) EndGame() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
}

// Finish deactivates the game and moves it to PhaseFinished.
func (g *Game) Finish() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.active = false
	g.phase = PhaseFinished
	g.finishedAt = g.now()
}

// Active reports whether a game is running.
func (g *Game) Active() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.active
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.phase
}

// TimePerQuestion returns the per-question countdown in seconds.
func (g *Game) TimePerQuestion() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.timePerQuestion
}

func (g *Game) setPhase(p Phase) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.phase = p
}

func cloneQuestions(qs []quiz.Question) []quiz.Question {
	if qs == nil {
		return nil
	}
	out := make([]quiz.Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}
