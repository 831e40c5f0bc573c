package question

import (
	"errors"

	"github.com/opositest/backend/internal/id"
)

// Letter identifies one of the four answer options.
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters lists the option letters in display order.
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// Valid reports whether l is one of A, B, C or D.
func (l Letter) Valid() bool {
	switch l {
	case LetterA, LetterB, LetterC, LetterD:
		return true
	}
	return false
}

// Question is a multiple-choice question with exactly four options.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"question"`
	Options []string `json:"options"`
	Answer  Letter   `json:"answer"`
	Topic   string   `json:"tema"`
}

// New builds a Question with a generated ID.
func New(text string, options []string, answer Letter, topic string) (Question, error) {
	if text == "" {
		return Question{}, errors.New("question text cannot be empty")
	}
	if len(options) != 4 {
		return Question{}, errors.New("a question needs exactly 4 options")
	}
	if !answer.Valid() {
		return Question{}, errors.New("answer must be one of A, B, C, D")
	}
	if topic == "" {
		return Question{}, errors.New("topic cannot be empty")
	}
	opts := make([]string, 4)
	copy(opts, options)
	return Question{
		ID:      id.GenerateID(),
		Text:    text,
		Options: opts,
		Answer:  answer,
		Topic:   topic,
	}, nil
}

// Key is the composite identity used for deduplication and the review
// heuristic: two questions with the same text and topic are the same
// question regardless of ID.
func (q Question) Key() string {
	return q.Text + "|" + q.Topic
}

// Clone returns a deep copy. History entries store clones so later edits
// or deletion of the source question cannot corrupt the log.
func (q Question) Clone() Question {
	c := q
	c.Options = make([]string, len(q.Options))
	copy(c.Options, q.Options)
	return c
}

// Topics returns the distinct topics present in qs, in first-seen order.
func Topics(qs []Question) []string {
	seen := make(map[string]bool)
	var topics []string
	for _, q := range qs {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			topics = append(topics, q.Topic)
		}
	}
	return topics
}
