package scheduler

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"quizku_backend/internals/configs"
	sessionService "quizku_backend/internals/features/quiz/sessions/service"
)

const janitorTimeout = 2 * time.Minute

// RunJanitor does one maintenance pass: overdue active sessions become
// expired, then sessions older than retentionDays are purged with their answers.
// retentionDays <= 0 keeps everything.
func RunJanitor(ctx context.Context, svc *sessionService.TestSessionService, retentionDays int) {
	if n, err := svc.ExpireStale(ctx); err != nil {
		log.Printf("[JANITOR] expire error: %v", err)
	} else if n > 0 {
		log.Printf("[JANITOR] %d session(s) marked expired", n)
	}

	if retentionDays <= 0 {
		return
	}
	cutoff := svc.Clock().Add(-time.Duration(retentionDays) * 24 * time.Hour)
	if n, err := svc.PurgeOlderThan(ctx, cutoff); err != nil {
		log.Printf("[JANITOR] purge error: %v", err)
	} else if n > 0 {
		log.Printf("[JANITOR] %d session(s) older than %dd purged", n, retentionDays)
	}
}

// StartSessionJanitor schedules RunJanitor on cfg.JanitorCron.
// "off" or an empty schedule disables it and returns nil.
func StartSessionJanitor(svc *sessionService.TestSessionService, cfg configs.QuizConfig) *cron.Cron {
	spec := strings.TrimSpace(cfg.JanitorCron)
	if spec == "" || strings.EqualFold(spec, "off") {
		log.Println("[JANITOR] disabled")
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), janitorTimeout)
		defer cancel()
		RunJanitor(ctx, svc, cfg.RetentionDays)
	})
	if err != nil {
		log.Printf("[JANITOR] bad schedule %q: %v", spec, err)
		return nil
	}

	log.Printf("[JANITOR] started schedule=%q retention=%dd", spec, cfg.RetentionDays)
	c.Start()
	return c
}
