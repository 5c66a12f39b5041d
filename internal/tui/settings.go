package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"trivia-cli/internal/domain"
)

type settingsAction int

const (
	settingsNone settingsAction = iota
	settingsStart
	settingsBack
)

const (
	fieldCount = iota
	fieldType
	fieldDifficulty
	fieldCategory
	fieldTimer
	fieldLast
)

var (
	typeChoices       = []domain.QuestionType{domain.TypeMultiple, domain.TypeBoolean, domain.TypeAny}
	difficultyChoices = []domain.Difficulty{"", domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}
)

// settingsModel is the configuration form. Defaults match the classic
// setup: 10 multiple-choice questions on a 5 minute clock.
type settingsModel struct {
	styles Styles

	count      textinput.Model
	timer      textinput.Model
	typeIdx    int
	diffIdx    int
	categories []domain.Category
	catIdx     int // 0 means any; otherwise categories[catIdx-1]

	focus  int
	errMsg string
}

func newSettingsModel(styles Styles) settingsModel {
	count := textinput.New()
	count.SetValue("10")
	count.CharLimit = 2
	count.Width = 6
	count.Focus()

	timer := textinput.New()
	timer.SetValue("300")
	timer.CharLimit = 4
	timer.Width = 6

	return settingsModel{styles: styles, count: count, timer: timer}
}

func (s *settingsModel) setCategories(categories []domain.Category) {
	s.categories = categories
	if s.catIdx > len(categories) {
		s.catIdx = 0
	}
}

// config translates the form into a validated QuizConfig.
func (s settingsModel) config() (domain.QuizConfig, error) {
	count, err := strconv.Atoi(strings.TrimSpace(s.count.Value()))
	if err != nil {
		return domain.QuizConfig{}, domain.ErrQuestionCount
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(s.timer.Value()))
	if err != nil {
		return domain.QuizConfig{}, domain.ErrTimerBounds
	}

	cfg := domain.QuizConfig{
		QuestionCount: count,
		Type:          typeChoices[s.typeIdx],
		Difficulty:    difficultyChoices[s.diffIdx],
		TimerSeconds:  seconds,
	}
	if s.catIdx > 0 && s.catIdx <= len(s.categories) {
		cfg.Category = strconv.Itoa(s.categories[s.catIdx-1].ID)
	}
	return cfg, cfg.Validate()
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd, settingsAction) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.updateInputs(msg)
	}

	switch key.String() {
	case "enter":
		return s, nil, settingsStart
	case "esc":
		return s, nil, settingsBack
	case "tab", "down":
		s.setFocus((s.focus + 1) % fieldLast)
		return s, nil, settingsNone
	case "shift+tab", "up":
		s.setFocus((s.focus + fieldLast - 1) % fieldLast)
		return s, nil, settingsNone
	case "left":
		s.cycle(-1)
		return s, nil, settingsNone
	case "right":
		s.cycle(1)
		return s, nil, settingsNone
	}
	return s.updateInputs(msg)
}

func (s settingsModel) updateInputs(msg tea.Msg) (settingsModel, tea.Cmd, settingsAction) {
	var cmd tea.Cmd
	switch s.focus {
	case fieldCount:
		s.count, cmd = s.count.Update(msg)
	case fieldTimer:
		s.timer, cmd = s.timer.Update(msg)
	}
	return s, cmd, settingsNone
}

func (s *settingsModel) setFocus(focus int) {
	s.focus = focus
	s.count.Blur()
	s.timer.Blur()
	switch focus {
	case fieldCount:
		s.count.Focus()
	case fieldTimer:
		s.timer.Focus()
	}
}

// cycle steps the focused choice field left or right.
func (s *settingsModel) cycle(delta int) {
	switch s.focus {
	case fieldType:
		s.typeIdx = (s.typeIdx + delta + len(typeChoices)) % len(typeChoices)
	case fieldDifficulty:
		s.diffIdx = (s.diffIdx + delta + len(difficultyChoices)) % len(difficultyChoices)
	case fieldCategory:
		n := len(s.categories) + 1
		s.catIdx = (s.catIdx + delta + n) % n
	}
}

func (s settingsModel) view() string {
	typeLabel := string(typeChoices[s.typeIdx])
	if typeChoices[s.typeIdx] == domain.TypeAny {
		typeLabel = "any type"
	}
	diffLabel := string(difficultyChoices[s.diffIdx])
	if diffLabel == "" {
		diffLabel = "any difficulty"
	}
	catLabel := "any category"
	if s.catIdx > 0 && s.catIdx <= len(s.categories) {
		catLabel = s.categories[s.catIdx-1].Name
	} else if len(s.categories) == 0 {
		catLabel = "any category (list unavailable)"
	}

	rows := []string{
		s.row(fieldCount, "Questions ", s.count.View()),
		s.row(fieldType, "Type      ", "< "+typeLabel+" >"),
		s.row(fieldDifficulty, "Difficulty", "< "+diffLabel+" >"),
		s.row(fieldCategory, "Category  ", "< "+catLabel+" >"),
		s.row(fieldTimer, "Timer (s) ", s.timer.View()),
	}

	content := s.styles.Title.Render("Quiz Settings") + "\n\n" +
		strings.Join(rows, "\n")
	if s.errMsg != "" {
		content += "\n\n" + s.styles.Error.Render(s.errMsg)
	}
	content += "\n\n" + s.styles.Muted.Render("tab: next field • ←/→: change • enter: start • esc: back")
	return s.styles.Card.Render(content)
}

func (s settingsModel) row(field int, label, value string) string {
	marker := "  "
	if s.focus == field {
		marker = s.styles.Title.Render("> ")
	}
	return fmt.Sprintf("%s%s  %s", marker, s.styles.Label.Render(label), value)
}
