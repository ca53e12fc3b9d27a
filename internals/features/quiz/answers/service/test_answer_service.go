// file: internals/features/quiz/answers/service/test_answer_service.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quizku_backend/internals/features/quiz/answers/model"
)

type TestAnswerService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewTestAnswerService(db *gorm.DB) *TestAnswerService {
	return &TestAnswerService{DB: db, Now: time.Now}
}

func (s *TestAnswerService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Upsert stores value as the answer of questionID within the session.
// Unconditional: the last write wins and "" clears the answer.
func (s *TestAnswerService) Upsert(ctx context.Context, sessionToken, questionID, value string) error {
	now := s.now()
	m := &model.TestAnswerModel{
		TestAnswerSessionToken: sessionToken,
		TestAnswerQuestionID:   questionID,
		TestAnswerValue:        value,
		TestAnswerAnsweredAt:   now,
	}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "test_answer_session_token"},
			{Name: "test_answer_question_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"test_answer_value":       value,
			"test_answer_answered_at": now,
		}),
	}).Create(m).Error
}

// ListBySession returns question id -> latest value for one session.
func (s *TestAnswerService) ListBySession(ctx context.Context, sessionToken string) (map[string]string, error) {
	var rows []model.TestAnswerModel
	if err := s.DB.WithContext(ctx).
		Where("test_answer_session_token = ?", sessionToken).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.TestAnswerQuestionID] = r.TestAnswerValue
	}
	return out, nil
}

// ListBySessionAndIDs returns the stored rows for ids, ordered by question id.
func (s *TestAnswerService) ListBySessionAndIDs(ctx context.Context, sessionToken string, ids []string) ([]model.TestAnswerModel, error) {
	var rows []model.TestAnswerModel
	q := s.DB.WithContext(ctx).
		Where("test_answer_session_token = ?", sessionToken)
	if len(ids) > 0 {
		q = q.Where("test_answer_question_id IN ?", ids)
	}
	if err := q.Order("test_answer_question_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
