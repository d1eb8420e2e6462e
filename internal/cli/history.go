package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenwell/lumen/internal/checkin"
	"github.com/lumenwell/lumen/internal/constants"
)

type HistoryCmd struct {
	Limit   int  `help:"Maximum entries to show." default:"30"`
	Answers bool `help:"Show questionnaire answer history instead of moods."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if c.Answers {
		return c.printAnswers(reqCtx, engine)
	}

	entries, source, err := engine.History(reqCtx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries yet. Start with 'lumen checkin'.")
		return nil
	}

	switch source {
	case "local":
		fmt.Println(pendingStyle.Render("Remote unreachable, showing locally cached entries."))
	case "sample":
		fmt.Println(pendingStyle.Render("Showing sample data (allow_sample_history is on)."))
	}

	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}
	fmt.Printf("%-12s %-10s %-12s %-7s %s\n", "DATE", "MOOD", "SLEEP", "HOURS", "FOCUS")
	for _, e := range entries {
		focus := ""
		if e.Focus >= 0 && e.Focus < len(constants.FocusCategories) {
			focus = constants.FocusCategories[e.Focus]
		}
		fmt.Printf("%-12s %-10s %-12s %-7d %s\n",
			e.EntryDate, e.Mood, constants.SleepQualityLabel(e.SleepQuality), e.SleepHours, focus)
	}
	return nil
}

func (c *HistoryCmd) printAnswers(reqCtx context.Context, engine *checkin.Orchestrator) error {
	answers, err := engine.FetchAnswerHistory(reqCtx)
	if err != nil {
		return err
	}
	if len(answers) == 0 {
		fmt.Println("No questionnaire answers recorded yet.")
		return nil
	}
	if c.Limit > 0 && len(answers) > c.Limit {
		answers = answers[:c.Limit]
	}
	fmt.Printf("%-22s %s\n", "SUBMITTED", "ANSWERS (q0-q5)")
	for _, a := range answers {
		fmt.Printf("%-22s", a.CreatedAt)
		for i := range constants.Questions {
			fmt.Printf(" %d", a.Answers[fmt.Sprintf("q%d", i)])
		}
		fmt.Println()
	}
	return nil
}
