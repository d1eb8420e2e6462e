package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/lumenwell/lumen/internal/constants"
	lumenerrors "github.com/lumenwell/lumen/internal/errors"
	"github.com/lumenwell/lumen/internal/questionnaire"
)

type QuestionnaireCmd struct{}

func (c *QuestionnaireCmd) Run(ctx *Context) error {
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	flow, err := engine.NewQuestionnaire()
	if err != nil {
		return err
	}
	if flow.State() == questionnaire.StateBlocked {
		return lumenerrors.ErrAlreadyCheckedInToday
	}

	answerOptions := make([]huh.Option[int], constants.AnswerMax-constants.AnswerMin+1)
	for v := constants.AnswerMin; v <= constants.AnswerMax; v++ {
		answerOptions[v-constants.AnswerMin] = huh.NewOption(constants.AnswerLabels[v-constants.AnswerMin], v)
	}

	for {
		idx, question, ok := flow.Current()
		if !ok {
			break
		}

		var answer int
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[int]().
				Title(fmt.Sprintf("(%d/%d) %s", idx+1, len(constants.Questions), question)).
				Options(answerOptions...).
				Value(&answer),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if err := flow.Answer(answer); err != nil {
			return err
		}
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	synced, err := flow.Finalize(reqCtx)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()
	fmt.Println("Questionnaire complete. Thanks for checking in with yourself.")
	if !synced {
		fmt.Println(pendingStyle.Render("Answers saved locally; the remote is unreachable. Run 'lumen sync' later."))
	}
	return nil
}
