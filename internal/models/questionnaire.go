package models

import "time"

// QuestionnaireSession is the in-progress accumulation of answers for one
// user's daily emotional-state questionnaire. Answers map question index to
// the chosen Likert value. Sessions are discarded after finalization; a new
// one is constructed the next calendar day.
type QuestionnaireSession struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Day       string      `json:"day"` // YYYY-MM-DD
	Answers   map[int]int `json:"answers"`
	StartedAt time.Time   `json:"started_at"`
}
