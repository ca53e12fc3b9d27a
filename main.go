package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	"quizku_backend/internals/features/quiz/sessions/scheduler"
	sessionService "quizku_backend/internals/features/quiz/sessions/service"
	routes "quizku_backend/internals/route"
)

func main() {
	configs.LoadEnv()
	cfg := configs.LoadQuizConfig()

	// DB connect + schema + pool + warm-up
	database.ConnectDB()
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("❌ migrate failed: %v", err)
	}
	database.TunePool()
	database.WarmUpQueries()

	// janitor after the DB is ready
	janitor := scheduler.StartSessionJanitor(sessionService.NewTestSessionService(database.DB, cfg.Duration), cfg)

	app := routes.NewApp(database.DB, cfg)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	go func() {
		log.Printf("✅ Listening on :%s (duration=%s questions=%s)", port, cfg.Duration, cfg.QuestionsRoot)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + close the DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if janitor != nil {
		<-janitor.Stop().Done()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
