package app

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"trivia-cli/internal/domain"
)

// QuestionProvider fetches normalized questions for a configuration
// (HTTP-backed in production, stubbed in tests).
type QuestionProvider interface {
	FetchQuestions(ctx context.Context, cfg domain.QuizConfig) ([]domain.Question, error)
}

// Phase is the machine's current screen-level state.
type Phase int

const (
	PhaseLoggedOut Phase = iota
	PhaseConfiguring
	PhaseActive
	PhaseFinished
)

// Machine owns the authoritative QuizState and drives the
// LoggedOut -> Configuring -> Active -> Finished lifecycle. It is not safe
// for concurrent use; all mutation is serialized onto one owner (the TUI
// event loop).
type Machine struct {
	phase     Phase
	state     *domain.QuizState
	provider  QuestionProvider
	snapshots *Snapshots
	now       func() time.Time
}

func NewMachine(provider QuestionProvider, snapshots *Snapshots) *Machine {
	return NewMachineWithClock(provider, snapshots, time.Now)
}

// NewMachineWithClock allows deterministic timestamps in tests.
func NewMachineWithClock(provider QuestionProvider, snapshots *Snapshots, now func() time.Time) *Machine {
	return &Machine{
		phase:     PhaseLoggedOut,
		provider:  provider,
		snapshots: snapshots,
		now:       now,
	}
}

// Phase reports the machine's current phase.
func (m *Machine) Phase() Phase { return m.phase }

// State returns a read reference to the live session, or nil outside one.
// Callers must not mutate it.
func (m *Machine) State() *domain.QuizState { return m.state }

// Login validates the player name and moves to the configuration phase.
// On validation failure the machine is left unchanged.
func (m *Machine) Login(name string) error {
	trimmed := strings.TrimSpace(name)
	if n := utf8.RuneCountInString(trimmed); n < domain.MinNameLength || n > domain.MaxNameLength {
		return domain.ErrInvalidName
	}
	m.state = &domain.QuizState{UserName: trimmed}
	m.phase = PhaseConfiguring
	return nil
}

// Start validates the configuration, fetches questions, and begins a fresh
// session. On any failure the machine stays in the configuration phase. If
// the provider returns fewer questions than requested the session proceeds
// with the shorter list, but an empty result is an error.
func (m *Machine) Start(ctx context.Context, cfg domain.QuizConfig) error {
	if m.phase != PhaseConfiguring {
		return domain.ErrNoActiveQuiz
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	questions, err := m.provider.FetchQuestions(ctx, cfg)
	if err != nil {
		return err
	}
	if len(questions) == 0 {
		return domain.ErrNoQuestions
	}

	m.state = &domain.QuizState{
		UserName:         m.state.UserName,
		Config:           cfg,
		Questions:        questions,
		CurrentIndex:     0,
		Answers:          make([]*string, len(questions)),
		StartedAt:        m.now(),
		RemainingSeconds: cfg.TimerSeconds,
		IsFinished:       false,
	}
	m.snapshots.Save(ctx, *m.state)
	m.phase = PhaseActive
	return nil
}

// Resume adopts a persisted unfinished session, skipping login and
// configuration. It reports whether anything was resumed. A snapshot that
// parses but is internally inconsistent is treated the same as an absent
// one, so a corrupt slot never blocks starting a fresh quiz.
func (m *Machine) Resume(ctx context.Context) bool {
	state, ok := m.snapshots.Load(ctx)
	if !ok || !resumable(state) {
		return false
	}
	m.state = &state
	m.phase = PhaseActive
	return true
}

func resumable(state domain.QuizState) bool {
	if state.IsFinished || len(state.Questions) == 0 {
		return false
	}
	if state.CurrentIndex < 0 || state.CurrentIndex >= len(state.Questions) {
		return false
	}
	if len(state.Answers) != len(state.Questions) {
		return false
	}
	for _, q := range state.Questions {
		if len(q.PresentedAnswers) == 0 {
			return false
		}
	}
	return true
}

// SubmitAnswer records the answer for the current question. A repeat call
// for the same index before advancing is ignored. The updated snapshot is
// persisted before the phase transition so a crash mid-transition never
// loses an answer.
func (m *Machine) SubmitAnswer(ctx context.Context, answer string) error {
	if m.phase != PhaseActive {
		return domain.ErrNoActiveQuiz
	}
	if m.state.Answers[m.state.CurrentIndex] != nil {
		return nil
	}

	a := answer
	m.state.Answers[m.state.CurrentIndex] = &a

	last := m.state.CurrentIndex == len(m.state.Questions)-1
	if last {
		m.state.IsFinished = true
	} else {
		m.state.CurrentIndex++
	}
	m.snapshots.Save(ctx, *m.state)
	if last {
		m.phase = PhaseFinished
	}
	return nil
}

// Tick advances session time by deltaSeconds, flooring at zero. Reaching
// zero is a hard cutoff: the session finishes immediately and unanswered
// questions stay unanswered. Intermediate ticks persist on a throttled
// cadence only.
func (m *Machine) Tick(ctx context.Context, deltaSeconds int) {
	if m.phase != PhaseActive || deltaSeconds <= 0 {
		return
	}
	m.state.RemainingSeconds -= deltaSeconds
	if m.state.RemainingSeconds <= 0 {
		m.Expire(ctx)
		return
	}
	m.snapshots.SaveThrottled(ctx, *m.state)
}

// Expire forces the session to finish with no time remaining. It is a
// no-op outside an active session.
func (m *Machine) Expire(ctx context.Context) {
	if m.phase != PhaseActive {
		return
	}
	m.state.RemainingSeconds = 0
	m.state.IsFinished = true
	m.snapshots.Save(ctx, *m.state)
	m.phase = PhaseFinished
}

// Results scores the finished session. Calling it before the session
// finishes is an explicit error.
func (m *Machine) Results() (domain.Results, error) {
	if m.state == nil || !m.state.IsFinished {
		return domain.Results{}, domain.ErrNotFinished
	}

	answered, correct := 0, 0
	for i, answer := range m.state.Answers {
		if answer == nil {
			continue
		}
		answered++
		if *answer == m.state.Questions[i].CorrectAnswer {
			correct++
		}
	}

	timeTaken := m.state.Config.TimerSeconds - m.state.RemainingSeconds
	if timeTaken < 0 {
		timeTaken = 0
	}
	if timeTaken > m.state.Config.TimerSeconds {
		timeTaken = m.state.Config.TimerSeconds
	}

	return domain.Results{
		TotalQuestions: len(m.state.Questions),
		Answered:       answered,
		Correct:        correct,
		Incorrect:      answered - correct,
		TimeTaken:      timeTaken,
	}, nil
}

// Restart discards the session, clears the persisted snapshot, and returns
// to the login phase.
func (m *Machine) Restart(ctx context.Context) {
	m.snapshots.Clear(ctx)
	m.state = nil
	m.phase = PhaseLoggedOut
}
