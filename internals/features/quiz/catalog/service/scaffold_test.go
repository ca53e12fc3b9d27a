package service

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScaffold(t *testing.T) {
	root := t.TempDir()
	layout := Layout{Root: root, Subjects: []string{"p", "m"}, MCQSets: 2, IntegerSets: 1}

	if err := Scaffold(layout); err != nil {
		t.Fatalf("scaffold: %v", err)
	}

	dirs := []string{
		"p/mcq/1/a", "p/mcq/1/b", "p/mcq/1/c", "p/mcq/1/d", "p/mcq/1/solution",
		"p/mcq/2/d",
		"m/integer/1/question", "m/integer/1/solution",
	}
	for _, d := range dirs {
		st, err := os.Stat(filepath.Join(root, filepath.FromSlash(d)))
		if err != nil || !st.IsDir() {
			t.Errorf("missing dir %s: %v", d, err)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "p", "integer", "2")); err == nil {
		t.Error("integer set 2 should not exist")
	}

	b, err := os.ReadFile(filepath.Join(root, "p", "mcq", "1", "solution", "solution.txt"))
	if err != nil || len(b) != 0 {
		t.Fatalf("solution.txt = %q, %v", b, err)
	}
}

func TestScaffoldKeepsExistingSolution(t *testing.T) {
	root := t.TempDir()
	layout := Layout{Root: root, Subjects: []string{"c"}, IntegerSets: 1}
	if err := Scaffold(layout); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(root, "c", "integer", "1", "solution", "solution.txt")
	if err := os.WriteFile(link, []byte("https://example.com/s"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Scaffold(layout); err != nil {
		t.Fatalf("second scaffold: %v", err)
	}
	b, _ := os.ReadFile(link)
	if string(b) != "https://example.com/s" {
		t.Fatalf("solution.txt overwritten: %q", b)
	}
}
