package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"trivia-cli/internal/domain"
)

type loginModel struct {
	styles Styles
	input  textinput.Model
	errMsg string
}

func newLoginModel(styles Styles) loginModel {
	input := textinput.New()
	input.Placeholder = "Your name"
	input.CharLimit = domain.MaxNameLength + 10
	input.Width = 30
	input.Focus()
	return loginModel{styles: styles, input: input}
}

// update handles input for the login screen and reports whether the user
// submitted the form.
func (l loginModel) update(msg tea.Msg) (loginModel, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return l, nil, true
	}
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd, false
}

func (l loginModel) view() string {
	content := l.styles.Title.Render("Trivia Quiz") + "\n" +
		l.styles.Subtitle.Render("Enter your name to get started") + "\n\n" +
		l.input.View()
	if l.errMsg != "" {
		content += "\n\n" + l.styles.Error.Render(l.errMsg)
	}
	content += "\n\n" + l.styles.Muted.Render("enter: continue • ctrl+c: quit")
	return l.styles.Card.Render(content)
}
