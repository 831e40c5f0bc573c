package testsession

import "math"

// PassMark is the minimum score (out of 10) that counts as a pass.
const PassMark = 5.0

// Score computes the 0-10 mark for a set of answered questions. Every 3
// wrong answers cancel 1 correct one; unanswered questions count toward
// neither side.
//
//	effective = correct - floor(wrong/3)
//	score     = max(0, round(effective/(correct+wrong) * 10, 2 decimals))
func Score(correct, wrong int) float64 {
	total := correct + wrong
	if total == 0 {
		return 0
	}
	effective := correct - wrong/3
	score := float64(effective) / float64(total) * 10
	score = math.Round(score*100) / 100
	return math.Max(0, score)
}

// Result summarizes a finished (or in-progress) session.
type Result struct {
	Total      int     `json:"total"`
	Answered   int     `json:"answered"`
	Correct    int     `json:"correct"`
	Wrong      int     `json:"wrong"`
	Unanswered int     `json:"unanswered"`
	Score      float64 `json:"score"`
	Passed     bool    `json:"passed"`
}
