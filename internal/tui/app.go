// Package tui renders the four quiz screens (login, settings, quiz,
// results) on top of the session state machine. The screens are pure
// presenters: they read the machine's state and translate keys into
// machine operations.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"trivia-cli/internal/app"
	"trivia-cli/internal/domain"
)

type screen int

const (
	screenLogin screen = iota
	screenSettings
	screenLoading
	screenQuiz
	screenResults
)

// CategoryLister supplies the settings screen's category list
// (memory.CategoryCache in production).
type CategoryLister interface {
	Categories(ctx context.Context) []domain.Category
}

type (
	categoriesMsg  []domain.Category
	quizStartedMsg struct{}
	startFailedMsg struct{ err error }
	tickMsg        time.Time
	dismissMsg     struct{}
)

// Model is the root bubbletea model owning screen switching.
type Model struct {
	ctx        context.Context
	machine    *app.Machine
	categories CategoryLister
	styles     Styles

	screen   screen
	status   string
	width    int
	height   int
	spin     spinner.Model
	login    loginModel
	settings settingsModel
	quiz     quizModel
	results  resultsModel
}

// New builds the root model. If a persisted unfinished session exists it is
// resumed straight into the quiz screen.
func New(ctx context.Context, machine *app.Machine, categories CategoryLister) Model {
	styles := DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Title

	m := Model{
		ctx:        ctx,
		machine:    machine,
		categories: categories,
		styles:     styles,
		screen:     screenLogin,
		spin:       sp,
		login:      newLoginModel(styles),
		settings:   newSettingsModel(styles),
	}

	if machine.Resume(ctx) {
		m.screen = screenQuiz
		m.quiz = newQuizModel(ctx, styles, machine)
		m.status = "Quiz resumed — continuing where you left off"
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenQuiz {
		return tickCmd()
	}
	return textinput.Blink
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func dismissCmd() tea.Cmd {
	return tea.Tick(1500*time.Millisecond, func(time.Time) tea.Msg { return dismissMsg{} })
}

func (m Model) fetchCategoriesCmd() tea.Cmd {
	return func() tea.Msg {
		return categoriesMsg(m.categories.Categories(m.ctx))
	}
}

func (m Model) startQuizCmd(cfg domain.QuizConfig) tea.Cmd {
	return func() tea.Msg {
		if err := m.machine.Start(m.ctx, cfg); err != nil {
			return startFailedMsg{err: err}
		}
		return quizStartedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.screen == screenLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case categoriesMsg:
		m.settings.setCategories([]domain.Category(msg))
		return m, nil

	case quizStartedMsg:
		m.screen = screenQuiz
		m.quiz = newQuizModel(m.ctx, m.styles, m.machine)
		m.status = "Quiz started — good luck, " + m.machine.State().UserName + "!"
		return m, tickCmd()

	case startFailedMsg:
		// Provider failures bounce back to the settings screen with a
		// transient message; the form keeps its values.
		m.screen = screenSettings
		m.settings.errMsg = msg.err.Error()
		return m, nil
	}

	switch m.screen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenSettings:
		return m.updateSettings(msg)
	case screenQuiz:
		return m.updateQuiz(msg)
	case screenResults:
		return m.updateResults(msg)
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	login, cmd, submitted := m.login.update(msg)
	m.login = login
	if !submitted {
		return m, cmd
	}

	if err := m.machine.Login(m.login.input.Value()); err != nil {
		m.login.errMsg = err.Error()
		return m, cmd
	}
	m.login.errMsg = ""
	m.screen = screenSettings
	m.settings = newSettingsModel(m.styles)
	return m, m.fetchCategoriesCmd()
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	settings, cmd, action := m.settings.update(msg)
	m.settings = settings

	switch action {
	case settingsStart:
		cfg, err := m.settings.config()
		if err != nil {
			m.settings.errMsg = err.Error()
			return m, cmd
		}
		m.settings.errMsg = ""
		m.screen = screenLoading
		return m, tea.Batch(m.spin.Tick, m.startQuizCmd(cfg))
	case settingsBack:
		m.machine.Restart(m.ctx)
		m.screen = screenLogin
		m.login = newLoginModel(m.styles)
		m.status = ""
		return m, textinput.Blink
	}
	return m, cmd
}

func (m Model) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	quiz, cmd := m.quiz.update(m.ctx, msg)
	m.quiz = quiz

	if m.machine.Phase() == app.PhaseFinished && !m.quiz.feedback {
		m.screen = screenResults
		m.results = newResultsModel(m.styles, m.machine)
		return m, nil
	}
	return m, cmd
}

func (m Model) updateResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r", "enter":
		m.machine.Restart(m.ctx)
		m.screen = screenLogin
		m.login = newLoginModel(m.styles)
		m.status = ""
		return m, textinput.Blink
	}
	return m, nil
}

func (m Model) View() string {
	var body string
	switch m.screen {
	case screenLogin:
		body = m.login.view()
	case screenSettings:
		body = m.settings.view()
	case screenLoading:
		body = m.styles.Card.Render(m.spin.View() + " Fetching quiz questions...")
	case screenQuiz:
		body = m.quiz.view()
	case screenResults:
		body = m.results.view()
	}

	if m.status != "" {
		body += "\n" + m.styles.StatusBar.Render(m.status)
	}
	return body + "\n"
}

// Run starts the TUI event loop and blocks until the user quits.
func Run(ctx context.Context, machine *app.Machine, categories CategoryLister) error {
	_, err := tea.NewProgram(New(ctx, machine, categories), tea.WithContext(ctx)).Run()
	return err
}
