package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"trivia-cli/internal/app"
	"trivia-cli/internal/domain"
	"trivia-cli/internal/timer"
)

// quizModel renders the active quiz. The countdown drives the on-screen
// clock and fires the session expiry; it is paused while answer feedback is
// on screen, so thinking about the feedback costs no quiz time.
type quizModel struct {
	styles    Styles
	machine   *app.Machine
	countdown *timer.Countdown
	bar       progress.Model

	selected int

	// feedback state for the question just answered
	feedback  bool
	fbQuest   domain.Question
	fbAnswer  string
	fbCorrect bool
}

func newQuizModel(ctx context.Context, styles Styles, machine *app.Machine) quizModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return quizModel{
		styles:  styles,
		machine: machine,
		countdown: timer.New(machine.State().RemainingSeconds, func() {
			machine.Expire(ctx)
		}),
		bar: bar,
	}
}

func (q quizModel) update(ctx context.Context, msg tea.Msg) (quizModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if q.machine.Phase() != app.PhaseActive {
			return q, nil
		}
		if !q.countdown.Paused() {
			// Reaching zero fires the countdown's expiry, which finishes
			// the session before the mirroring tick runs.
			q.countdown.Tick()
			q.machine.Tick(ctx, 1)
		}
		if q.machine.Phase() != app.PhaseActive {
			q.feedback = false
			return q, nil
		}
		return q, tickCmd()

	case dismissMsg:
		if q.feedback {
			q.dismissFeedback()
		}
		return q, nil

	case tea.KeyMsg:
		if q.feedback {
			q.dismissFeedback()
			return q, nil
		}
		return q.handleKey(ctx, msg)
	}
	return q, nil
}

func (q *quizModel) dismissFeedback() {
	q.feedback = false
	q.selected = 0
	q.countdown.Resume()
}

func (q quizModel) handleKey(ctx context.Context, key tea.KeyMsg) (quizModel, tea.Cmd) {
	state := q.machine.State()
	if state == nil || state.IsFinished {
		return q, nil
	}
	question := state.Questions[state.CurrentIndex]

	switch key.String() {
	case "up", "k":
		if q.selected > 0 {
			q.selected--
		}
	case "down", "j":
		if q.selected < len(question.PresentedAnswers)-1 {
			q.selected++
		}
	case "enter":
		return q.submit(ctx, question, q.selected)
	default:
		// Digit keys answer directly.
		if n, err := strconv.Atoi(key.String()); err == nil && n >= 1 && n <= len(question.PresentedAnswers) {
			return q.submit(ctx, question, n-1)
		}
	}
	return q, nil
}

func (q quizModel) submit(ctx context.Context, question domain.Question, idx int) (quizModel, tea.Cmd) {
	answer := question.PresentedAnswers[idx]
	if err := q.machine.SubmitAnswer(ctx, answer); err != nil {
		return q, nil
	}

	q.feedback = true
	q.fbQuest = question
	q.fbAnswer = answer
	q.fbCorrect = answer == question.CorrectAnswer
	q.countdown.Pause()
	return q, dismissCmd()
}

func (q quizModel) view() string {
	state := q.machine.State()
	if state == nil {
		return ""
	}

	if q.feedback {
		return q.feedbackView()
	}

	index := state.CurrentIndex
	question := state.Questions[index]

	header := q.styles.Title.Render(fmt.Sprintf("Question %d of %d", index+1, len(state.Questions))) +
		"   " + q.timerView() + "\n" +
		q.bar.ViewAs(float64(index)/float64(len(state.Questions))) + "\n\n"

	meta := q.styles.Subtitle.Render(fmt.Sprintf("%s • %s", question.Category, question.Difficulty)) + "\n"
	prompt := q.styles.Label.Render(question.Prompt) + "\n\n"

	answers := ""
	for i, answer := range question.PresentedAnswers {
		line := fmt.Sprintf("%d. %s", i+1, answer)
		if i == q.selected {
			answers += q.styles.AnswerSelected.Render("> "+line) + "\n"
		} else {
			answers += q.styles.Answer.Render(line) + "\n"
		}
	}

	help := "\n" + q.styles.Muted.Render("↑/↓ or 1-9: choose • enter: answer")
	return q.styles.Card.Render(header + meta + prompt + answers + help)
}

func (q quizModel) feedbackView() string {
	verdict := q.styles.Success.Render("Correct!")
	if !q.fbCorrect {
		verdict = q.styles.Error.Render("Incorrect")
	}

	answers := ""
	for _, answer := range q.fbQuest.PresentedAnswers {
		switch {
		case answer == q.fbQuest.CorrectAnswer:
			answers += q.styles.AnswerCorrect.Render("✓ "+answer) + "\n"
		case answer == q.fbAnswer:
			answers += q.styles.AnswerWrong.Render("✗ "+answer) + "\n"
		default:
			answers += q.styles.Answer.Render(answer) + "\n"
		}
	}

	return q.styles.Card.Render(
		verdict + "\n\n" +
			q.styles.Label.Render(q.fbQuest.Prompt) + "\n\n" +
			answers + "\n" +
			q.styles.Muted.Render("any key: continue"),
	)
}

func (q quizModel) timerView() string {
	remaining := q.countdown.Remaining()
	label := fmt.Sprintf("⏱ %02d:%02d", remaining/60, remaining%60)
	if remaining <= 30 {
		return q.styles.Error.Render(label)
	}
	if remaining <= 60 {
		return q.styles.Warning.Render(label)
	}
	return q.styles.Value.Render(label)
}
