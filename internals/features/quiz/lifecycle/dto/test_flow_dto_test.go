package dto

import (
	"errors"
	"testing"
	"time"

	catalogModel "quizku_backend/internals/features/quiz/catalog/model"
	sessionModel "quizku_backend/internals/features/quiz/sessions/model"
)

func TestParseQuestionIDs(t *testing.T) {
	ok := []struct {
		name string
		raw  any
		want []string
	}{
		{"json string", `["mcq-p-1","int-c-2"]`, []string{"mcq-p-1", "int-c-2"}},
		{"decoded array", []any{"mcq-p-1", " int-c-2 "}, []string{"mcq-p-1", "int-c-2"}},
		{"string slice", []string{"mcq-m-4"}, []string{"mcq-m-4"}},
	}
	for _, tc := range ok {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseQuestionIDs(tc.raw)
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}

	bad := []struct {
		name  string
		raw   any
		empty bool
	}{
		{"nil", nil, true},
		{"blank", "  ", true},
		{"empty array", "[]", true},
		{"empty decoded", []any{}, true},
		{"not json", "mcq-p-1", false},
		{"object", `{"a":1}`, false},
		{"numbers", `[1,2]`, false},
		{"blank entry", `["mcq-p-1",""]`, false},
		{"wrong type", 42, false},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseQuestionIDs(tc.raw)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.empty && !errors.Is(err, ErrNoQuestionIDs) {
				t.Fatalf("err = %v, want ErrNoQuestionIDs", err)
			}
		})
	}
}

func TestNewTestViewResponse(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s := &sessionModel.TestSessionModel{TestSessionStartedAt: start, TestSessionStatus: sessionModel.TestSessionActive}
	qs := []catalogModel.QuestionDescriptor{{ID: "mcq-p-1"}, {ID: "int-p-1"}}

	live := NewTestViewResponse(qs, nil, s, 90*time.Minute, 3*time.Hour)
	if live.Finished || live.Status != "active" || live.RemainingMs != (90*time.Minute).Milliseconds() {
		t.Fatalf("live view = %+v", live)
	}
	if live.SavedAnswers == nil || len(live.QuestionIDs) != 2 || live.QuestionIDs[1] != "int-p-1" {
		t.Fatalf("live view = %+v", live)
	}

	over := NewTestViewResponse(qs, map[string]string{"mcq-p-1": "a"}, s, 0, 3*time.Hour)
	if !over.Finished || over.Status != "expired" || over.SavedAnswers["mcq-p-1"] != "a" {
		t.Fatalf("expired view = %+v", over)
	}
}
