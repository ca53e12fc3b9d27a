package model

import "time"

/* =========================================================
   TestAnswer (test_answers)
   One row per (session, question); the latest write wins.
   ========================================================= */

type TestAnswerModel struct {
	TestAnswerID uint `gorm:"primaryKey;autoIncrement;column:test_answer_id" json:"test_answer_id"`

	TestAnswerSessionToken string `gorm:"type:varchar(64);not null;column:test_answer_session_token;uniqueIndex:uq_test_answers_session_question,priority:1" json:"test_answer_session_token"`
	TestAnswerQuestionID   string `gorm:"type:varchar(64);not null;column:test_answer_question_id;uniqueIndex:uq_test_answers_session_question,priority:2" json:"test_answer_question_id"`

	// empty string = cleared
	TestAnswerValue string `gorm:"type:text;not null;default:'';column:test_answer_value" json:"test_answer_value"`

	TestAnswerAnsweredAt time.Time `gorm:"not null;column:test_answer_answered_at" json:"test_answer_answered_at"`
}

func (TestAnswerModel) TableName() string { return "test_answers" }
