// Command scaffold creates the empty question asset tree the server reads.
package main

import (
	"flag"
	"log"
	"strings"

	"quizku_backend/internals/configs"
	catalogService "quizku_backend/internals/features/quiz/catalog/service"
)

func main() {
	configs.LoadEnv()
	cfg := configs.LoadQuizConfig()

	root := flag.String("root", cfg.QuestionsRoot, "questions root directory")
	subjects := flag.String("subjects", strings.Join(cfg.Subjects, ","), "comma separated subject codes")
	mcq := flag.Int("mcq", cfg.MCQSets, "MCQ sets per subject")
	integer := flag.Int("integer", cfg.IntegerSets, "integer sets per subject")
	flag.Parse()

	layout := catalogService.Layout{
		Root:        *root,
		MCQSets:     *mcq,
		IntegerSets: *integer,
	}
	for _, s := range strings.Split(*subjects, ",") {
		if s = strings.TrimSpace(s); s != "" {
			layout.Subjects = append(layout.Subjects, s)
		}
	}

	if err := catalogService.Scaffold(layout); err != nil {
		log.Fatalf("❌ scaffold failed: %v", err)
	}
	log.Printf("✅ scaffolded %d subject(s) under %s (mcq=%d integer=%d)", len(layout.Subjects), layout.Root, layout.MCQSets, layout.IntegerSets)
}
