// file: internals/features/quiz/catalog/service/catalog_loader.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"quizku_backend/internals/constants"
	"quizku_backend/internals/features/quiz/catalog/model"
)

const (
	mcqDir         = "mcq"
	integerDir     = "integer"
	questionDir    = "question"
	solutionDir    = "solution"
	solutionFile   = "solution.txt"
	AssetURLPrefix = "/questions"
)

// Layout describes where the question assets live and how many sets to read.
type Layout struct {
	Root        string
	Subjects    []string
	MCQSets     int
	IntegerSets int
}

type CatalogLoader struct {
	Layout Layout
}

func NewCatalogLoader(layout Layout) *CatalogLoader {
	return &CatalogLoader{Layout: layout}
}

// Load scans the asset tree and returns the catalog in subject order,
// MCQ sets first, then integer sets. Incomplete sets are logged and skipped.
// A missing subject directory or unreadable root is an error.
func (l *CatalogLoader) Load(ctx context.Context) ([]model.QuestionDescriptor, error) {
	root := l.Layout.Root
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("questions root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("questions root %q is not a directory", root)
	}

	questions := make([]model.QuestionDescriptor, 0, len(l.Layout.Subjects)*(l.Layout.MCQSets+l.Layout.IntegerSets))
	for _, subject := range l.Layout.Subjects {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		subjectPath := filepath.Join(root, subject)
		if st, err := os.Stat(subjectPath); err != nil || !st.IsDir() {
			return nil, fmt.Errorf("subject %q missing under %q", subject, root)
		}

		for set := 1; set <= l.Layout.MCQSets; set++ {
			if q, ok := l.loadMCQ(subject, set); ok {
				questions = append(questions, q)
			}
		}
		for set := 1; set <= l.Layout.IntegerSets; set++ {
			if q, ok := l.loadInteger(subject, set); ok {
				questions = append(questions, q)
			}
		}
	}
	return questions, nil
}

// MCQ: the correct option is the first of a..d whose folder holds a file.
func (l *CatalogLoader) loadMCQ(subject string, set int) (model.QuestionDescriptor, bool) {
	setRel := filepath.Join(subject, mcqDir, strconv.Itoa(set))
	id := model.QuestionID(model.QuestionTypeMCQ, subject, set)

	for _, opt := range model.MCQOptions {
		file, err := firstFile(filepath.Join(l.Layout.Root, setRel, opt))
		if err != nil || file == "" {
			continue
		}
		return model.QuestionDescriptor{
			ID:            id,
			Subject:       subject,
			Set:           set,
			Type:          model.QuestionTypeMCQ,
			AssetPath:     assetURL(setRel, opt, file),
			AssetKind:     constants.DetectAssetKind(file),
			CorrectAnswer: opt,
			SolutionURL:   l.solutionLink(setRel),
		}, true
	}

	log.Printf("[CATALOG] ⚠️ no answer option found for %s (%s), skipped", id, setRel)
	return model.QuestionDescriptor{}, false
}

// Integer: the stem of the single file in question/ is the answer.
func (l *CatalogLoader) loadInteger(subject string, set int) (model.QuestionDescriptor, bool) {
	setRel := filepath.Join(subject, integerDir, strconv.Itoa(set))
	id := model.QuestionID(model.QuestionTypeInteger, subject, set)

	file, err := firstFile(filepath.Join(l.Layout.Root, setRel, questionDir))
	if err != nil || file == "" {
		log.Printf("[CATALOG] ⚠️ no question file for %s (%s), skipped", id, setRel)
		return model.QuestionDescriptor{}, false
	}

	answer, ok := NormalizeIntegerAnswer(strings.TrimSuffix(file, filepath.Ext(file)))
	if !ok {
		log.Printf("[CATALOG] ⚠️ file %q of %s is not an integer answer, skipped", file, id)
		return model.QuestionDescriptor{}, false
	}

	return model.QuestionDescriptor{
		ID:            id,
		Subject:       subject,
		Set:           set,
		Type:          model.QuestionTypeInteger,
		AssetPath:     assetURL(setRel, questionDir, file),
		AssetKind:     constants.DetectAssetKind(file),
		CorrectAnswer: answer,
		SolutionURL:   l.solutionLink(setRel),
	}, true
}

func (l *CatalogLoader) solutionLink(setRel string) string {
	b, err := os.ReadFile(filepath.Join(l.Layout.Root, setRel, solutionDir, solutionFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("[CATALOG] read solution %s: %v", setRel, err)
		}
		return ""
	}
	return strings.TrimSpace(string(b))
}

// NormalizeIntegerAnswer turns "007" into "7" and "-03" into "-3".
func NormalizeIntegerAnswer(s string) (string, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(n, 10), true
}

// firstFile returns the name of the first regular, non-hidden file in dir
// (ReadDir sorts by name), "" when there is none.
func firstFile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.Type().IsRegular() && !strings.HasPrefix(e.Name(), ".") {
			return e.Name(), nil
		}
	}
	return "", nil
}

func assetURL(setRel string, parts ...string) string {
	elems := append([]string{AssetURLPrefix, filepath.ToSlash(setRel)}, parts...)
	return path.Join(elems...)
}
