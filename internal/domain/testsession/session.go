package testsession

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/opositest/backend/internal/domain/question"
)

// Mode determines how many questions a session draws and how they are
// selected.
type Mode string

const (
	ModeExamen Mode = "examen"
	ModeLargo  Mode = "largo"
	ModeCorto  Mode = "corto"
	ModeRepaso Mode = "repaso"
)

// Limit returns the maximum number of questions for the mode.
func (m Mode) Limit() int {
	switch m {
	case ModeExamen:
		return 100
	case ModeLargo:
		return 50
	default:
		return 20
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeExamen, ModeLargo, ModeCorto, ModeRepaso:
		return true
	}
	return false
}

var (
	ErrEmptyPool   = errors.New("no questions available for the selected topic")
	ErrInvalidMode = errors.New("unknown session mode")
)

// Session is one quiz run: a fixed ordered question selection, the user's
// answers so far and a cursor. Sessions are ephemeral and never persisted.
type Session struct {
	ID        string
	Mode      Mode
	Topic     string // empty means all topics
	User      string
	Questions []question.Question
	Answers   map[int]question.Letter
	Current   int
	Finished  bool
	StartedAt time.Time

	// Explanations holds AI explanation text per question index, filled in
	// asynchronously after wrong answers.
	Explanations map[int]string
}

// New selects questions from pool according to mode and starts a session.
// wrongCounts (keyed by question.Key) drives the repaso ordering and is
// ignored by the other modes. The pool must already be topic-filtered.
func New(mode Mode, topic, user string, pool []question.Question, wrongCounts map[string]int) (*Session, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	var selected []question.Question
	if mode == ModeRepaso {
		selected = orderByWrongCount(pool, wrongCounts)
	} else {
		selected = shuffle(pool)
	}
	if limit := mode.Limit(); len(selected) > limit {
		selected = selected[:limit]
	}

	return &Session{
		ID:           uuid.NewString(),
		Mode:         mode,
		Topic:        topic,
		User:         user,
		Questions:    selected,
		Answers:      make(map[int]question.Letter),
		StartedAt:    time.Now(),
		Explanations: make(map[int]string),
	}, nil
}

// shuffle returns a uniform random permutation of pool.
func shuffle(pool []question.Question) []question.Question {
	out := make([]question.Question, len(pool))
	copy(out, pool)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// orderByWrongCount sorts descending by historical wrong answers. The sort
// is stable so questions never answered wrongly keep their pool order and
// end up last.
func orderByWrongCount(pool []question.Question, wrongCounts map[string]int) []question.Question {
	out := make([]question.Question, len(pool))
	copy(out, pool)
	sort.SliceStable(out, func(i, j int) bool {
		return wrongCounts[out[i].Key()] > wrongCounts[out[j].Key()]
	})
	return out
}

// CurrentQuestion returns the question under the cursor.
func (s *Session) CurrentQuestion() question.Question {
	return s.Questions[s.Current]
}

// Answer records letter for the current question and reports whether it was
// correct. The first answer for an index locks it: repeated calls return
// recorded=false and leave the original choice untouched. Finished sessions
// accept no answers.
func (s *Session) Answer(letter question.Letter) (recorded, correct bool) {
	if s.Finished {
		return false, false
	}
	if _, already := s.Answers[s.Current]; already {
		return false, false
	}
	s.Answers[s.Current] = letter
	return true, letter == s.Questions[s.Current].Answer
}

// Advance moves the cursor by delta, clamped to the valid range. Answering
// the current question first is not required.
func (s *Session) Advance(delta int) {
	s.Current += delta
	if s.Current < 0 {
		s.Current = 0
	}
	if s.Current > len(s.Questions)-1 {
		s.Current = len(s.Questions) - 1
	}
}

// Finish freezes the session and returns the final summary.
func (s *Session) Finish() Result {
	s.Finished = true
	return s.Summary()
}

// Summary computes the live result over the answers given so far.
func (s *Session) Summary() Result {
	correct, wrong := 0, 0
	for idx, letter := range s.Answers {
		if letter == s.Questions[idx].Answer {
			correct++
		} else {
			wrong++
		}
	}
	score := Score(correct, wrong)
	return Result{
		Total:      len(s.Questions),
		Answered:   len(s.Answers),
		Correct:    correct,
		Wrong:      wrong,
		Unanswered: len(s.Questions) - len(s.Answers),
		Score:      score,
		Passed:     score >= PassMark,
	}
}
