package checkin

import (
	"context"
	"errors"

	"github.com/lumenwell/lumen/internal/gateway"
	"github.com/lumenwell/lumen/internal/questionnaire"
)

// NewQuestionnaire builds today's questionnaire flow for the configured
// user. The flow starts blocked if the user has already answered today.
func (o *Orchestrator) NewQuestionnaire() (*questionnaire.Flow, error) {
	if o.settings.UserID == "" {
		return nil, errors.New("no user id configured, set one with 'lumen settings set user_id <id>' or store an API token")
	}
	return questionnaire.New(o.store, o.remote, o.settings.UserID, o.now())
}

// FetchAnswerHistory retrieves the configured user's past questionnaire
// submissions from the remote store.
func (o *Orchestrator) FetchAnswerHistory(ctx context.Context) ([]gateway.RemoteAnswers, error) {
	if o.settings.UserID == "" {
		return nil, errors.New("no user id configured")
	}
	return o.remote.FetchAnswers(ctx, o.settings.UserID)
}
