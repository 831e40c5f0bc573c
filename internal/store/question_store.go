package store

import (
	"encoding/json"

	"github.com/opositest/backend/internal/domain/question"
)

// Questions returns a copy of the full question list.
func (s *Store) Questions() []question.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneQuestions(s.questions)
}

// QuestionsByTopic returns the questions for one topic; an empty topic
// means all of them.
func (s *Store) QuestionsByTopic(topic string) []question.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if topic == "" {
		return cloneQuestions(s.questions)
	}
	var out []question.Question
	for _, q := range s.questions {
		if q.Topic == topic {
			out = append(out, q.Clone())
		}
	}
	return out
}

// Topics returns the distinct topics in first-seen order.
func (s *Store) Topics() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return question.Topics(s.questions)
}

// CountQuestions returns the number of stored questions.
func (s *Store) CountQuestions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.questions)
}

// AddQuestion appends one question. No uniqueness check beyond the
// caller-supplied ID.
func (s *Store) AddQuestion(q question.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append(s.questions, q)
	s.persist(questionsKey, s.questions)
}

// AddQuestions appends a batch (confirmed imports).
func (s *Store) AddQuestions(qs []question.Question) {
	if len(qs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append(s.questions, qs...)
	s.persist(questionsKey, s.questions)
}

// RemoveQuestion deletes the question at index. Irreversible; the API layer
// requires an explicit confirmation flag before calling this.
func (s *Store) RemoveQuestion(index int) (question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.questions) {
		return question.Question{}, ErrOutOfRange
	}
	removed := s.questions[index]
	s.questions = append(s.questions[:index], s.questions[index+1:]...)
	s.persist(questionsKey, s.questions)
	return removed, nil
}

// ReplaceAll overwrites the local list with server truth after a remote
// fetch.
func (s *Store) ReplaceAll(qs []question.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = cloneQuestions(qs)
	s.persist(questionsKey, s.questions)
}

// MergeNew appends the candidates not already present and returns exactly
// that subset. Identity is the (text, topic) composite key; IDs are
// ignored.
func (s *Store) MergeNew(candidates []question.Question) []question.Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]bool, len(s.questions))
	for _, q := range s.questions {
		existing[q.Key()] = true
	}

	var added []question.Question
	for _, c := range candidates {
		if existing[c.Key()] {
			continue
		}
		existing[c.Key()] = true
		s.questions = append(s.questions, c.Clone())
		added = append(added, c.Clone())
	}

	if len(added) > 0 {
		s.persist(questionsKey, s.questions)
	}
	return added
}

// CachedQuestions reads the persisted questions key directly, bypassing the
// in-memory list. Recovery merges these back in after an accidental
// overwrite.
func (s *Store) CachedQuestions() []question.Question {
	data, err := s.backend.Load(questionsKey)
	if err != nil {
		return nil
	}
	var qs []question.Question
	if err := json.Unmarshal(data, &qs); err != nil {
		s.logger.Error("corrupt questions key during recovery", "error", err)
		return nil
	}
	return qs
}

func cloneQuestions(qs []question.Question) []question.Question {
	out := make([]question.Question, len(qs))
	for i, q := range qs {
		out[i] = q.Clone()
	}
	return out
}
