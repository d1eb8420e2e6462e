package constants

// Questions is the daily emotional-state questionnaire, answered once per
// calendar day. Answers are keyed by question index.
var Questions = []string{
	"How often do you feel angry?",
	"How often do you feel sad?",
	"How often do you feel worried?",
	"How often do you feel bored?",
	"How often do you feel lonely?",
	"How often do you feel stressed?",
}

const (
	// Likert response bounds (inclusive)
	AnswerMin = 1
	AnswerMax = 5
)

// AnswerLabels maps the Likert scale to display labels, indexed by value-1.
var AnswerLabels = []string{"Never", "Rarely", "Sometimes", "Often", "Always"}
