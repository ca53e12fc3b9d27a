// file: internals/features/quiz/lifecycle/dto/test_flow_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	catalogModel "quizku_backend/internals/features/quiz/catalog/model"
	sessionModel "quizku_backend/internals/features/quiz/sessions/model"
	scoring "quizku_backend/internals/features/quiz/scoring/service"
	helper "quizku_backend/internals/helpers"
)

var ErrNoQuestionIDs = errors.New("no question IDs provided")

/* ===================== REQUESTS ===================== */

// SubmitTestRequest is the JSON shape of POST /submit. ids may arrive either
// as a JSON-encoded string (what the HTML form posts) or as a plain array.
type SubmitTestRequest struct {
	IDs any `json:"ids" form:"ids"`
}

// ParseQuestionIDs accepts `"[\"mcq-p-1\"]"` or `["mcq-p-1"]` and
// requires a non-empty array of non-empty strings.
func ParseQuestionIDs(raw any) ([]string, error) {
	var items []any
	switch v := raw.(type) {
	case nil:
		return nil, ErrNoQuestionIDs
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, ErrNoQuestionIDs
		}
		if err := helper.UnmarshalJSON([]byte(s), &items); err != nil {
			return nil, errors.New("ids must be a JSON array")
		}
	case []any:
		items = v
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	default:
		return nil, errors.New("ids must be a JSON array")
	}

	if len(items) == 0 {
		return nil, ErrNoQuestionIDs
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, errors.New("ids must contain non-empty strings")
		}
		ids = append(ids, strings.TrimSpace(s))
	}
	return ids, nil
}

/* ===================== RESPONSES ===================== */

type TestViewResponse struct {
	Questions    []catalogModel.QuestionDescriptor `json:"questions"`
	QuestionIDs  []string                          `json:"question_ids"`
	RemainingMs  int64                             `json:"remaining_ms"`
	DurationMs   int64                             `json:"duration_ms"`
	SavedAnswers map[string]string                 `json:"saved_answers"`
	Finished     bool                              `json:"finished"`
	Status       string                            `json:"status"`
	StartedAt    time.Time                         `json:"started_at"`
}

func NewTestViewResponse(
	questions []catalogModel.QuestionDescriptor,
	saved map[string]string,
	s *sessionModel.TestSessionModel,
	remaining, limit time.Duration,
) TestViewResponse {
	ids := make([]string, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	if saved == nil {
		saved = map[string]string{}
	}
	status := s.TestSessionStatus
	if status == sessionModel.TestSessionActive && remaining <= 0 {
		status = sessionModel.TestSessionExpired
	}
	return TestViewResponse{
		Questions:    questions,
		QuestionIDs:  ids,
		RemainingMs:  remaining.Milliseconds(),
		DurationMs:   limit.Milliseconds(),
		SavedAnswers: saved,
		Finished:     remaining <= 0,
		Status:       status.String(),
		StartedAt:    s.TestSessionStartedAt,
	}
}

type ResultResponse struct {
	scoring.Result
	Status      string     `json:"status"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

func NewResultResponse(r scoring.Result, s *sessionModel.TestSessionModel) ResultResponse {
	return ResultResponse{
		Result:      r,
		Status:      s.TestSessionStatus.String(),
		SubmittedAt: s.TestSessionSubmittedAt,
	}
}
