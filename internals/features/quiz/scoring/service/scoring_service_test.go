package service

import (
	"testing"

	catalogModel "quizku_backend/internals/features/quiz/catalog/model"
)

func TestScoreAnswer(t *testing.T) {
	cases := []struct {
		name     string
		correct  string
		answer   string
		answered bool
		want     int
	}{
		{"correct", "b", "b", true, PointsCorrect},
		{"wrong", "b", "c", true, PointsWrong},
		{"cleared", "b", "", true, PointsUnanswered},
		{"never answered", "b", "", false, PointsUnanswered},
		{"case sensitive", "b", "B", true, PointsWrong},
		{"integer exact", "7", "7", true, PointsCorrect},
		{"integer not normalised", "7", "07", true, PointsWrong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScoreAnswer(tc.correct, tc.answer, tc.answered); got != tc.want {
				t.Fatalf("ScoreAnswer(%q, %q, %v) = %d, want %d", tc.correct, tc.answer, tc.answered, got, tc.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	catalog := []catalogModel.QuestionDescriptor{
		{ID: "mcq-p-1", Type: catalogModel.QuestionTypeMCQ, CorrectAnswer: "b"},
		{ID: "mcq-p-2", Type: catalogModel.QuestionTypeMCQ, CorrectAnswer: "a"},
		{ID: "int-p-1", Type: catalogModel.QuestionTypeInteger, CorrectAnswer: "42"},
		{ID: "int-p-2", Type: catalogModel.QuestionTypeInteger, CorrectAnswer: "-3"},
	}
	answers := map[string]string{
		"mcq-p-1": "b",
		"mcq-p-2": "d",
		"int-p-1": "",
		"ghost":   "a",
	}

	res := Score(catalog, answers)

	if res.Total != 3 {
		t.Fatalf("total = %d, want 3", res.Total)
	}
	if res.MaxTotal != 16 {
		t.Fatalf("max total = %d, want 16", res.MaxTotal)
	}
	if res.Correct != 1 || res.Wrong != 1 || res.Unanswered != 2 || res.Answered != 2 {
		t.Fatalf("counts = %+v", res)
	}
	if len(res.Items) != len(catalog) {
		t.Fatalf("items = %d, want %d", len(res.Items), len(catalog))
	}
	for i, item := range res.Items {
		if item.ID != catalog[i].ID {
			t.Fatalf("item %d id = %s, want catalog order %s", i, item.ID, catalog[i].ID)
		}
	}
	if !res.Items[0].IsCorrect || res.Items[0].UserAnswer == nil || *res.Items[0].UserAnswer != "b" {
		t.Fatalf("first item = %+v", res.Items[0])
	}
	if res.Items[2].UserAnswer != nil {
		t.Fatalf("cleared answer should have no user answer, got %q", *res.Items[2].UserAnswer)
	}
	if res.Items[3].CorrectAnswer != "-3" {
		t.Fatalf("correct answer not exposed: %+v", res.Items[3])
	}
}

func TestScoreEmpty(t *testing.T) {
	res := Score(nil, nil)
	if res.Total != 0 || res.MaxTotal != 0 || len(res.Items) != 0 {
		t.Fatalf("empty score = %+v", res)
	}
}
