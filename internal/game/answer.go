package game

import "strings"

// Answer is one of the host's fixed responses to a question. The set is
// closed; unknown callback tokens are rejected at the boundary instead
// of falling through.
type Answer string

const (
	AnswerYes       Answer = "yes"
	AnswerNo        Answer = "no"
	AnswerDontKnow  Answer = "dont_know"
	AnswerPartially Answer = "partially"
	AnswerGuessed   Answer = "guessed"
)

const answerPrefix = "answer:"

// CallbackData is the wire token carried in the inline button payload.
func (a Answer) CallbackData() string {
	return answerPrefix + string(a)
}

// Label is the user-facing text rendered for the answer.
func (a Answer) Label() string {
	switch a {
	case AnswerYes:
		return "Yes"
	case AnswerNo:
		return "No"
	case AnswerDontKnow:
		return "Don't know"
	case AnswerPartially:
		return "Partially"
	case AnswerGuessed:
		return "Guessed it!"
	}
	return ""
}

// ParseAnswerData decodes a callback payload into an Answer.
func ParseAnswerData(data string) (Answer, bool) {
	tok, ok := strings.CutPrefix(data, answerPrefix)
	if !ok {
		return "", false
	}
	switch a := Answer(tok); a {
	case AnswerYes, AnswerNo, AnswerDontKnow, AnswerPartially, AnswerGuessed:
		return a, true
	}
	return "", false
}
