// file: internals/features/quiz/sessions/model/test_session_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/datatypes"
)

/* =============================================================================
   ENUM-like: Session Status ('active','submitted','expired')
============================================================================= */
type TestSessionStatus string

const (
	TestSessionActive    TestSessionStatus = "active"
	TestSessionSubmitted TestSessionStatus = "submitted"
	TestSessionExpired   TestSessionStatus = "expired"
)

func (s TestSessionStatus) String() string { return string(s) }
func (s TestSessionStatus) Valid() bool {
	switch s {
	case TestSessionActive, TestSessionSubmitted, TestSessionExpired:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer
func (s *TestSessionStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = TestSessionStatus(v)
	case []byte:
		*s = TestSessionStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for TestSessionStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid TestSessionStatus: %q", *s)
	}
	return nil
}
func (s TestSessionStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid TestSessionStatus: %q", s)
	}
	return string(s), nil
}

/* =============================================================================
   MODEL: test_sessions
   - started_at is written once on create and never changed.
   - Finalization is the status column, not a rewritten start time.
============================================================================= */
type TestSessionModel struct {
	TestSessionToken string `json:"test_session_token" gorm:"column:test_session_token;type:varchar(64);primaryKey"`

	TestSessionStartedAt   time.Time         `json:"test_session_started_at" gorm:"column:test_session_started_at;not null"`
	TestSessionStatus      TestSessionStatus `json:"test_session_status" gorm:"column:test_session_status;type:varchar(16);not null;index:idx_test_sessions_status"`
	TestSessionSubmittedAt *time.Time        `json:"test_session_submitted_at,omitempty" gorm:"column:test_session_submitted_at"`

	// Question ids the client sent on submit (JSON array of strings)
	TestSessionSubmittedQuestionIDs datatypes.JSON `json:"test_session_submitted_question_ids,omitempty" gorm:"column:test_session_submitted_question_ids"`

	TestSessionCreatedAt time.Time `json:"test_session_created_at" gorm:"column:test_session_created_at;not null;index:idx_test_sessions_created_at"`
	TestSessionUpdatedAt time.Time `json:"test_session_updated_at" gorm:"column:test_session_updated_at;not null"`
}

func (TestSessionModel) TableName() string { return "test_sessions" }

/* ===================================================================
   Helper methods
=================================================================== */

// Remaining returns how much of the time limit is left at now.
// Any non-active session has nothing left.
func (m *TestSessionModel) Remaining(now time.Time, limit time.Duration) time.Duration {
	if m.TestSessionStatus != TestSessionActive {
		return 0
	}
	left := limit - now.Sub(m.TestSessionStartedAt)
	if left < 0 {
		return 0
	}
	return left
}

// IsFinished reports whether answers may no longer be written.
func (m *TestSessionModel) IsFinished(now time.Time, limit time.Duration) bool {
	return m.Remaining(now, limit) <= 0
}

func (m *TestSessionModel) MarkSubmitted(at time.Time, ids datatypes.JSON) {
	m.TestSessionStatus = TestSessionSubmitted
	m.TestSessionSubmittedAt = &at
	m.TestSessionSubmittedQuestionIDs = ids
	m.TestSessionUpdatedAt = at
}
