package history

import (
	"math"
	"time"

	"github.com/opositest/backend/internal/domain/question"
)

// Entry is one answered question in a user's log. The question is a
// snapshot taken at answer time, never a live reference.
type Entry struct {
	Question question.Question `json:"pregunta"`
	Correct  bool              `json:"acierto"`
	Date     time.Time         `json:"fecha"`
	User     string            `json:"usuario"`
}

// NewEntry snapshots q and records whether the answer was correct.
func NewEntry(q question.Question, correct bool, user string) Entry {
	return Entry{
		Question: q.Clone(),
		Correct:  correct,
		Date:     time.Now(),
		User:     user,
	}
}

// Statistics summarizes a user's full log.
type Statistics struct {
	Total      int `json:"total"`
	Correct    int `json:"correct"`
	Percentage int `json:"percentage"`
}

// Compute returns lifetime statistics over entries.
func Compute(entries []Entry) Statistics {
	s := Statistics{Total: len(entries)}
	for _, e := range entries {
		if e.Correct {
			s.Correct++
		}
	}
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Correct) / float64(s.Total) * 100))
	}
	return s
}

// topicWindow is the sliding-window size for per-topic accuracy. Only the
// most recent entries for a topic count, so old mistakes age out.
const topicWindow = 100

// TopicPercentage returns the accuracy for one topic over at most the last
// 100 entries recorded for it. Returns 0 when the topic has no entries.
func TopicPercentage(entries []Entry, topic string) int {
	var forTopic []Entry
	for _, e := range entries {
		if e.Question.Topic == topic {
			forTopic = append(forTopic, e)
		}
	}
	if len(forTopic) > topicWindow {
		forTopic = forTopic[len(forTopic)-topicWindow:]
	}
	if len(forTopic) == 0 {
		return 0
	}
	correct := 0
	for _, e := range forTopic {
		if e.Correct {
			correct++
		}
	}
	return int(math.Round(float64(correct) / float64(len(forTopic)) * 100))
}

// WrongCounts tallies historical wrong answers keyed by the question's
// composite identity (text|topic). The review mode sorts its pool by these
// counts.
func WrongCounts(entries []Entry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		if !e.Correct {
			counts[e.Question.Key()]++
		}
	}
	return counts
}
