// file: internals/features/quiz/sessions/service/test_session_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	answerModel "quizku_backend/internals/features/quiz/answers/model"
	"quizku_backend/internals/features/quiz/sessions/model"
	helper "quizku_backend/internals/helpers"
)

var ErrSessionNotFound = errors.New("session not found")

/* =========================================================
   SERVICE
========================================================= */

type TestSessionService struct {
	DB    *gorm.DB
	Limit time.Duration
	Now   func() time.Time
}

func NewTestSessionService(db *gorm.DB, limit time.Duration) *TestSessionService {
	return &TestSessionService{DB: db, Limit: limit, Now: time.Now}
}

func (s *TestSessionService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now().UTC()
}

// Clock is the service's notion of now, in UTC.
func (s *TestSessionService) Clock() time.Time { return s.now() }

// ValidToken reports whether token looks like something we minted.
func ValidToken(token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	_, err := uuid.Parse(token)
	return err == nil
}

// Find loads the session for token or returns ErrSessionNotFound.
func (s *TestSessionService) Find(ctx context.Context, token string) (*model.TestSessionModel, error) {
	if !ValidToken(token) {
		return nil, ErrSessionNotFound
	}
	var m model.TestSessionModel
	if err := s.DB.WithContext(ctx).
		First(&m, "test_session_token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Begin resumes the session behind token if there is one. A well-formed token
// without a record is adopted as is; anything else gets a freshly minted token.
// created is true only when this call inserted the row.
func (s *TestSessionService) Begin(ctx context.Context, token string) (*model.TestSessionModel, bool, error) {
	existing, err := s.Find(ctx, token)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return nil, false, err
	}

	if !ValidToken(token) {
		token = uuid.NewString()
	}
	now := s.now()
	m := &model.TestSessionModel{
		TestSessionToken:     strings.TrimSpace(token),
		TestSessionStartedAt: now,
		TestSessionStatus:    model.TestSessionActive,
		TestSessionCreatedAt: now,
		TestSessionUpdatedAt: now,
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// concurrent begin with the same cookie; the other row wins
			again, ferr := s.Find(ctx, m.TestSessionToken)
			return again, false, ferr
		}
		return nil, false, err
	}

	log.Printf("[SESSION] created token=%s started_at=%s", m.TestSessionToken, now.Format(time.RFC3339))
	return m, true, nil
}

// Remaining is the time left on the session at the service clock.
func (s *TestSessionService) Remaining(m *model.TestSessionModel) time.Duration {
	return m.Remaining(s.now(), s.Limit)
}

// IsFinished is true once the session was submitted, expired, or ran out of time.
func (s *TestSessionService) IsFinished(m *model.TestSessionModel) bool {
	return m.IsFinished(s.now(), s.Limit)
}

// Submit finalizes the session. A second submit keeps the first one.
func (s *TestSessionService) Submit(ctx context.Context, token string, ids []string) (*model.TestSessionModel, error) {
	m, err := s.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	if m.TestSessionStatus == model.TestSessionSubmitted {
		return m, nil
	}

	raw, err := helper.MarshalJSON(ids)
	if err != nil {
		return nil, err
	}
	m.MarkSubmitted(s.now(), datatypes.JSON(raw))

	if err := s.DB.WithContext(ctx).
		Model(&model.TestSessionModel{}).
		Where("test_session_token = ?", m.TestSessionToken).
		Updates(map[string]any{
			"test_session_status":                 m.TestSessionStatus,
			"test_session_submitted_at":           m.TestSessionSubmittedAt,
			"test_session_submitted_question_ids": m.TestSessionSubmittedQuestionIDs,
			"test_session_updated_at":             m.TestSessionUpdatedAt,
		}).Error; err != nil {
		return nil, err
	}

	log.Printf("[SESSION] submitted token=%s questions=%d", m.TestSessionToken, len(ids))
	return m, nil
}

// SubmittedIDs decodes the question ids stored on submit.
func SubmittedIDs(m *model.TestSessionModel) []string {
	if m == nil || len(m.TestSessionSubmittedQuestionIDs) == 0 {
		return nil
	}
	var ids []string
	if err := helper.UnmarshalJSON(m.TestSessionSubmittedQuestionIDs, &ids); err != nil {
		log.Printf("[SESSION] bad submitted ids token=%s: %v", m.TestSessionToken, err)
		return nil
	}
	return ids
}

/* =========================================================
   Maintenance
========================================================= */

// ExpireStale flips active sessions whose time ran out to expired.
func (s *TestSessionService) ExpireStale(ctx context.Context) (int64, error) {
	now := s.now()
	res := s.DB.WithContext(ctx).
		Model(&model.TestSessionModel{}).
		Where("test_session_status = ? AND test_session_started_at <= ?", model.TestSessionActive, now.Add(-s.Limit)).
		Updates(map[string]any{
			"test_session_status":     model.TestSessionExpired,
			"test_session_updated_at": now,
		})
	return res.RowsAffected, res.Error
}

// PurgeOlderThan deletes sessions created before cutoff together with their answers.
func (s *TestSessionService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var purged int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Model(&model.TestSessionModel{}).
			Select("test_session_token").
			Where("test_session_created_at < ?", cutoff.UTC())

		if err := tx.Where("test_answer_session_token IN (?)", stale).
			Delete(&answerModel.TestAnswerModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("test_session_created_at < ?", cutoff.UTC()).
			Delete(&model.TestSessionModel{})
		purged = res.RowsAffected
		return res.Error
	})
	return purged, err
}

// PurgeAll removes every answer and every session. Global and irreversible.
func (s *TestSessionService) PurgeAll(ctx context.Context) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := global.Delete(&answerModel.TestAnswerModel{}).Error; err != nil {
			return err
		}
		if err := global.Delete(&model.TestSessionModel{}).Error; err != nil {
			return err
		}
		log.Println("[SESSION] hard reset: all sessions and answers purged")
		return nil
	})
}
