package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"quizku_backend/internals/features/quiz/catalog/model"
)

// Scaffold creates the empty asset tree for layout:
//
//	<root>/<subject>/mcq/<n>/{a,b,c,d,solution}
//	<root>/<subject>/integer/<n>/{question,solution}
//
// Each solution folder gets an empty solution.txt; existing files are left alone.
func Scaffold(layout Layout) error {
	mcqFolders := append(append([]string{}, model.MCQOptions...), solutionDir)
	intFolders := []string{questionDir, solutionDir}

	for _, subject := range layout.Subjects {
		for set := 1; set <= layout.MCQSets; set++ {
			setPath := filepath.Join(layout.Root, subject, mcqDir, strconv.Itoa(set))
			if err := createSet(setPath, mcqFolders); err != nil {
				return err
			}
		}
		for set := 1; set <= layout.IntegerSets; set++ {
			setPath := filepath.Join(layout.Root, subject, integerDir, strconv.Itoa(set))
			if err := createSet(setPath, intFolders); err != nil {
				return err
			}
		}
	}
	return nil
}

func createSet(setPath string, folders []string) error {
	for _, f := range folders {
		full := filepath.Join(setPath, f)
		if err := os.MkdirAll(full, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", full, err)
		}
		if f != solutionDir {
			continue
		}
		link := filepath.Join(full, solutionFile)
		if _, err := os.Stat(link); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := os.WriteFile(link, nil, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", link, err)
		}
	}
	return nil
}
