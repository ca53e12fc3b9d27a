package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	"quizku_backend/internals/features/quiz/sessions/model"
	sessionService "quizku_backend/internals/features/quiz/sessions/service"
)

func TestRunJanitor(t *testing.T) {
	db, err := database.OpenInMemory(t.Name())
	if err != nil {
		t.Fatal(err)
	}
	clock := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc := sessionService.NewTestSessionService(db, time.Hour)
	svc.Now = func() time.Time { return clock }
	ctx := context.Background()

	ancient, _, _ := svc.Begin(ctx, "")
	clock = clock.Add(10 * 24 * time.Hour)
	stale, _, _ := svc.Begin(ctx, "")
	clock = clock.Add(2 * time.Hour)

	RunJanitor(ctx, svc, 7)

	if _, err := svc.Find(ctx, ancient.TestSessionToken); !errors.Is(err, sessionService.ErrSessionNotFound) {
		t.Fatalf("session past retention survived: %v", err)
	}
	got, err := svc.Find(ctx, stale.TestSessionToken)
	if err != nil {
		t.Fatal(err)
	}
	if got.TestSessionStatus != model.TestSessionExpired {
		t.Fatalf("status = %s, want expired", got.TestSessionStatus)
	}
}

func TestRunJanitorKeepsEverythingWithoutRetention(t *testing.T) {
	db, err := database.OpenInMemory(t.Name())
	if err != nil {
		t.Fatal(err)
	}
	clock := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	svc := sessionService.NewTestSessionService(db, time.Hour)
	svc.Now = func() time.Time { return clock }
	ctx := context.Background()

	m, _, _ := svc.Begin(ctx, "")
	clock = clock.Add(365 * 24 * time.Hour)

	RunJanitor(ctx, svc, 0)

	if _, err := svc.Find(ctx, m.TestSessionToken); err != nil {
		t.Fatalf("session purged with retention 0: %v", err)
	}
}

func TestStartSessionJanitor(t *testing.T) {
	svc := sessionService.NewTestSessionService(nil, time.Hour)

	for _, spec := range []string{"", "off", "OFF", "not a schedule"} {
		if c := StartSessionJanitor(svc, configs.QuizConfig{JanitorCron: spec}); c != nil {
			c.Stop()
			t.Errorf("schedule %q should not start a janitor", spec)
		}
	}

	c := StartSessionJanitor(svc, configs.QuizConfig{JanitorCron: "@every 1h"})
	if c == nil {
		t.Fatal("valid schedule did not start")
	}
	if len(c.Entries()) != 1 {
		t.Fatalf("entries = %d, want 1", len(c.Entries()))
	}
	<-c.Stop().Done()
}
