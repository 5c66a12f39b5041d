package tui

import (
	"fmt"

	"trivia-cli/internal/app"
	"trivia-cli/internal/domain"
)

type resultsModel struct {
	styles  Styles
	name    string
	results domain.Results
}

func newResultsModel(styles Styles, machine *app.Machine) resultsModel {
	results, err := machine.Results()
	if err != nil {
		// Only reachable from the finished phase; keep the zero value as a
		// harmless fallback.
		results = domain.Results{}
	}
	return resultsModel{styles: styles, name: machine.State().UserName, results: results}
}

func (r resultsModel) view() string {
	res := r.results

	score := 0
	if res.TotalQuestions > 0 {
		score = res.Correct * 100 / res.TotalQuestions
	}

	rows := fmt.Sprintf(
		"%s  %d\n%s  %d\n%s  %s\n%s  %s\n%s  %02d:%02d",
		r.styles.Label.Render("Questions "), res.TotalQuestions,
		r.styles.Label.Render("Answered  "), res.Answered,
		r.styles.Label.Render("Correct   "), r.styles.Success.Render(fmt.Sprintf("%d", res.Correct)),
		r.styles.Label.Render("Incorrect "), r.styles.Error.Render(fmt.Sprintf("%d", res.Incorrect)),
		r.styles.Label.Render("Time taken"), res.TimeTaken/60, res.TimeTaken%60,
	)

	return r.styles.Card.Render(
		r.styles.Title.Render(fmt.Sprintf("Results — %s", r.name)) + "\n" +
			r.styles.Subtitle.Render(fmt.Sprintf("Score: %d%%", score)) + "\n\n" +
			rows + "\n\n" +
			r.styles.Muted.Render("r: play again • q: quit"),
	)
}
