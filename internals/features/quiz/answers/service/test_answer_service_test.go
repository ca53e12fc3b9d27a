package service

import (
	"context"
	"strings"
	"testing"

	database "quizku_backend/internals/databases"
)

func newService(t *testing.T) *TestAnswerService {
	t.Helper()
	db, err := database.OpenInMemory(strings.ReplaceAll(t.Name(), "/", "_"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	return NewTestAnswerService(db)
}

func TestUpsertLastWriteWins(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	for _, v := range []string{"a", "c", "c"} {
		if err := svc.Upsert(ctx, "s1", "mcq-p-1", v); err != nil {
			t.Fatalf("upsert %q: %v", v, err)
		}
	}

	got, err := svc.ListBySession(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got["mcq-p-1"] != "c" {
		t.Fatalf("answers = %v, want one answer c", got)
	}
}

func TestUpsertEmptyClears(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_ = svc.Upsert(ctx, "s1", "int-m-2", "12")
	if err := svc.Upsert(ctx, "s1", "int-m-2", ""); err != nil {
		t.Fatal(err)
	}
	got, _ := svc.ListBySession(ctx, "s1")
	if v, ok := got["int-m-2"]; !ok || v != "" {
		t.Fatalf("cleared answer = %q (present=%v)", v, ok)
	}
}

func TestAnswersAreIsolatedPerSession(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_ = svc.Upsert(ctx, "s1", "mcq-p-1", "a")
	_ = svc.Upsert(ctx, "s2", "mcq-p-1", "d")

	s1, _ := svc.ListBySession(ctx, "s1")
	s2, _ := svc.ListBySession(ctx, "s2")
	if s1["mcq-p-1"] != "a" || s2["mcq-p-1"] != "d" {
		t.Fatalf("s1=%v s2=%v", s1, s2)
	}

	none, err := svc.ListBySession(ctx, "s3")
	if err != nil || len(none) != 0 {
		t.Fatalf("unknown session: %v %v", none, err)
	}
}

func TestListBySessionAndIDs(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_ = svc.Upsert(ctx, "s1", "mcq-p-2", "b")
	_ = svc.Upsert(ctx, "s1", "int-p-1", "5")
	_ = svc.Upsert(ctx, "s1", "mcq-p-1", "a")

	rows, err := svc.ListBySessionAndIDs(ctx, "s1", []string{"mcq-p-1", "mcq-p-2", "mcq-p-9"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || rows[0].TestAnswerQuestionID != "mcq-p-1" || rows[1].TestAnswerQuestionID != "mcq-p-2" {
		t.Fatalf("rows = %+v", rows)
	}

	all, _ := svc.ListBySessionAndIDs(ctx, "s1", nil)
	if len(all) != 3 {
		t.Fatalf("all rows = %d, want 3", len(all))
	}
}
