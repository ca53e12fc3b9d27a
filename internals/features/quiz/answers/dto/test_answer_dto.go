// file: internals/features/quiz/answers/dto/test_answer_dto.go
package dto

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

/* ===================== REQUESTS ===================== */

// Body of POST /submit-answer. Field names follow the browser script.
type SubmitAnswerRequest struct {
	QuestionID string `json:"questionId" form:"questionId" validate:"required,max=64"`
	Answer     string `json:"answer" form:"answer" validate:"max=64"`
}

// Normalize is the only normalisation an answer ever gets: trim + NFC.
// Case is kept, so "B" and "b" stay different answers.
func (r *SubmitAnswerRequest) Normalize() {
	r.QuestionID = strings.TrimSpace(r.QuestionID)
	r.Answer = NormalizeAnswer(r.Answer)
}

func NormalizeAnswer(v string) string {
	return norm.NFC.String(strings.TrimSpace(v))
}

/* ===================== RESPONSES ===================== */

type SubmitAnswerResponse struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	Cleared    bool   `json:"cleared"`
}
