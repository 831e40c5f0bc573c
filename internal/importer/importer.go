// Package importer converts delimited plain text into question drafts.
//
// The accepted grammar: blocks separated by blank lines, each block holding
// one question line (optionally prefixed "Pregunta:") and four option lines
// like "a) text" or "b: text", with the correct one starred ("*b) text").
package importer

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/opositest/backend/internal/domain/question"
)

// Draft is a parsed question pending topic assignment. It becomes a real
// question only after the user confirms the import.
type Draft struct {
	Text    string          `json:"question"`
	Options []string        `json:"options"`
	Answer  question.Letter `json:"answer"`
	Topic   string          `json:"tema"`
}

var (
	blockSep       = regexp.MustCompile(`\n\s*\n`)
	optionLine     = regexp.MustCompile(`(?i)^\*?[a-d][\):]`)
	questionPrefix = regexp.MustCompile(`(?i)^pregunta:\s*`)
)

// Parse extracts drafts from raw text. Malformed blocks are logged and
// dropped without failing the batch; every surviving draft gets
// defaultTopic. An empty result means no valid questions were found.
//
// Options are collected in encounter order and the correct letter is
// whatever the starred line claimed, independent of its position. Existing
// import files rely on this exact behavior, so it is kept rather than
// hardened.
func Parse(content, defaultTopic string, logger *slog.Logger) []Draft {
	var drafts []Draft

	for blockIndex, block := range blockSep.Split(content, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		var (
			text    string
			options []string
			answer  question.Letter
		)

		for lineIndex, line := range strings.Split(strings.TrimSpace(block), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			switch {
			case strings.Contains(strings.ToLower(line), "pregunta:"),
				lineIndex == 0 && !optionLine.MatchString(line):
				text = strings.TrimSpace(questionPrefix.ReplaceAllString(line, ""))

			case optionLine.MatchString(line):
				starred := strings.HasPrefix(line, "*")
				letterAt := 0
				if starred {
					letterAt = 1
				}
				letter := question.Letter(strings.ToUpper(line[letterAt : letterAt+1]))
				if starred {
					answer = letter
				}
				// Text starts right after the ")" or ":" delimiter.
				options = append(options, strings.TrimSpace(line[letterAt+2:]))
			}
		}

		if text != "" && len(options) == 4 && answer != "" {
			drafts = append(drafts, Draft{
				Text:    text,
				Options: options,
				Answer:  answer,
				Topic:   defaultTopic,
			})
		} else {
			logger.Warn("dropping malformed question block",
				"block", blockIndex+1,
				"has_question", text != "",
				"options", len(options),
				"answer", string(answer),
			)
		}
	}

	return drafts
}

// Commit turns confirmed drafts into questions. Drafts that fail question
// validation are skipped, mirroring the lenient parse step.
func Commit(drafts []Draft, logger *slog.Logger) []question.Question {
	questions := make([]question.Question, 0, len(drafts))
	for _, d := range drafts {
		q, err := question.New(d.Text, d.Options, d.Answer, d.Topic)
		if err != nil {
			logger.Warn("skipping invalid draft", "question", d.Text, "error", err)
			continue
		}
		questions = append(questions, q)
	}
	return questions
}
