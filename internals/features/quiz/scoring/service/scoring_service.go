// file: internals/features/quiz/scoring/service/scoring_service.go
package service

import (
	catalogModel "quizku_backend/internals/features/quiz/catalog/model"
)

// Marking scheme. Wrong is not the same as unanswered.
const (
	PointsCorrect    = 4
	PointsWrong      = -1
	PointsUnanswered = 0
)

type ItemResult struct {
	catalogModel.QuestionDescriptor
	UserAnswer    *string `json:"user_answer"`
	CorrectAnswer string  `json:"correct_answer"`
	IsCorrect     bool    `json:"is_correct"`
	Score         int     `json:"score"`
}

type Result struct {
	Items      []ItemResult `json:"results"`
	Total      int          `json:"total"`
	MaxTotal   int          `json:"max_total"`
	Answered   int          `json:"answered"`
	Correct    int          `json:"correct"`
	Wrong      int          `json:"wrong"`
	Unanswered int          `json:"unanswered"`
}

// ScoreAnswer applies the marking scheme to one question. Comparison is
// exact and case-sensitive; an empty answer counts as unanswered.
func ScoreAnswer(correct, answer string, answered bool) int {
	if !answered || answer == "" {
		return PointsUnanswered
	}
	if answer == correct {
		return PointsCorrect
	}
	return PointsWrong
}

// Score joins the catalog with the answer map, in catalog order.
// Answers for ids outside the catalog are ignored.
func Score(catalog []catalogModel.QuestionDescriptor, answers map[string]string) Result {
	res := Result{
		Items:    make([]ItemResult, 0, len(catalog)),
		MaxTotal: PointsCorrect * len(catalog),
	}

	for _, q := range catalog {
		ans, ok := answers[q.ID]
		item := ItemResult{
			QuestionDescriptor: q,
			CorrectAnswer:      q.CorrectAnswer,
			Score:              ScoreAnswer(q.CorrectAnswer, ans, ok),
		}
		if ok && ans != "" {
			v := ans
			item.UserAnswer = &v
		}

		switch item.Score {
		case PointsCorrect:
			item.IsCorrect = true
			res.Correct++
			res.Answered++
		case PointsWrong:
			res.Wrong++
			res.Answered++
		default:
			res.Unanswered++
		}

		res.Total += item.Score
		res.Items = append(res.Items, item)
	}
	return res
}
