package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// EncodeAnswers serializes a completed questionnaire into the answers wire
// payload: the userId plus an answers map keyed "q<index>".
func EncodeAnswers(userID string, answers map[int]int) ([]byte, error) {
	keyed := make(map[string]int, len(answers))
	for idx, value := range answers {
		keyed[fmt.Sprintf("q%d", idx)] = value
	}
	return json.Marshal(map[string]any{
		"userId":  userID,
		"answers": keyed,
	})
}

// SubmitAnswers delivers a completed questionnaire to the remote store.
func (c *Client) SubmitAnswers(ctx context.Context, userID string, answers map[int]int) error {
	body, err := EncodeAnswers(userID, answers)
	if err != nil {
		return &NetworkError{Op: "POST /api/answers", Kind: KindMalformed, Err: err}
	}
	return c.doJSON(ctx, http.MethodPost, "/api/answers", body, nil)
}

// RemoteAnswers is one questionnaire submission as reported by the remote
// store. Answers are keyed "q<index>".
type RemoteAnswers struct {
	UserID    string         `json:"userId"`
	Answers   map[string]int `json:"answers"`
	CreatedAt string         `json:"createdAt"`
}

// FetchAnswers retrieves the questionnaire submissions recorded for a user.
func (c *Client) FetchAnswers(ctx context.Context, userID string) ([]RemoteAnswers, error) {
	var answers []RemoteAnswers
	path := "/api/answers/" + url.PathEscape(userID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// Replay resends a previously queued payload to the endpoint its kind maps
// to. The payload bytes are sent exactly as originally encoded.
func (c *Client) Replay(ctx context.Context, kind string, payload []byte) error {
	switch kind {
	case "mood":
		return c.doJSON(ctx, http.MethodPost, "/api/moods", payload, nil)
	case "answers":
		return c.doJSON(ctx, http.MethodPost, "/api/answers", payload, nil)
	default:
		return &NetworkError{Op: "replay", Kind: KindMalformed, Err: fmt.Errorf("unknown outbox kind %q", kind)}
	}
}
