package model

import (
	"fmt"

	"quizku_backend/internals/constants"
)

type QuestionType string

const (
	QuestionTypeMCQ     QuestionType = "mcq"
	QuestionTypeInteger QuestionType = "integer"
)

// MCQOptions in the order the loader probes them.
var MCQOptions = []string{"a", "b", "c", "d"}

// QuestionDescriptor is one entry of the catalog. Built from the asset tree,
// never persisted.
type QuestionDescriptor struct {
	ID            string              `json:"id"`
	Subject       string              `json:"subject"`
	Set           int                 `json:"set"`
	Type          QuestionType        `json:"type"`
	AssetPath     string              `json:"path"`
	AssetKind     constants.AssetKind `json:"kind"`
	CorrectAnswer string              `json:"-"`
	SolutionURL   string              `json:"solution_url,omitempty"`
}

func (q QuestionDescriptor) IsInteger() bool { return q.Type == QuestionTypeInteger }

// QuestionID builds "mcq-p-3" / "int-c-1".
func QuestionID(t QuestionType, subject string, set int) string {
	prefix := "mcq"
	if t == QuestionTypeInteger {
		prefix = "int"
	}
	return fmt.Sprintf("%s-%s-%d", prefix, subject, set)
}
