package quiz

import (
	"fmt"
	"strings"

	"github.com/quizhive/quizhive/internal/apperr"
)

// Question types. The type only constrains authoring; grading compares all
// of them the same way.
const (
	TypeMCQ       = "MCQ"
	TypeTrueFalse = "TrueFalse"
	TypeText      = "Text"
)

type Question struct {
	Text          string   `json:"questionText" bson:"question_text"`
	Type          string   `json:"type" bson:"type"`
	Options       []string `json:"options,omitempty" bson:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty" bson:"correct_answer"`
}

// Quiz is immutable after creation; questions are owned by the quiz and
// ordered.
type Quiz struct {
	ID          string     `json:"id" bson:"_id"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description" bson:"description"`
	Questions   []Question `json:"questions" bson:"questions"`
	CreatedAt   int64      `json:"created_at,omitempty" bson:"created_at"`
}

// Validate enforces the authoring-time invariants. The grading engine
// trusts any quiz that passed this check.
func Validate(q Quiz) error {
	if strings.TrimSpace(q.Title) == "" {
		return apperr.Validation("Title is required")
	}
	if strings.TrimSpace(q.Description) == "" {
		return apperr.Validation("Description is required")
	}
	if len(q.Questions) == 0 {
		return apperr.Validation("At least one question is required")
	}
	for i, qn := range q.Questions {
		if err := validateQuestion(i, qn); err != nil {
			return err
		}
	}
	return nil
}

func validateQuestion(i int, qn Question) error {
	if strings.TrimSpace(qn.Text) == "" {
		return apperr.Validation(fmt.Sprintf("question %d: text is required", i+1))
	}
	if strings.TrimSpace(qn.CorrectAnswer) == "" {
		return apperr.Validation(fmt.Sprintf("question %d: correct answer is required", i+1))
	}
	switch qn.Type {
	case TypeMCQ:
		if len(qn.Options) == 0 {
			return apperr.Validation(fmt.Sprintf("question %d: options are required", i+1))
		}
		found := false
		for _, opt := range qn.Options {
			if opt == qn.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return apperr.Validation(fmt.Sprintf("question %d: correct answer must be one of the options", i+1))
		}
	case TypeTrueFalse:
		if qn.CorrectAnswer != "True" && qn.CorrectAnswer != "False" {
			return apperr.Validation(fmt.Sprintf("question %d: correct answer must be True or False", i+1))
		}
	case TypeText:
		// free-form; nothing beyond the common checks
	default:
		return apperr.Validation(fmt.Sprintf("question %d: unknown type %q", i+1, qn.Type))
	}
	return nil
}

// Sanitized returns a copy with correct answers stripped, for serving to
// quiz takers.
func (q Quiz) Sanitized() Quiz {
	out := q
	out.Questions = make([]Question, len(q.Questions))
	for i, qn := range q.Questions {
		qn.CorrectAnswer = ""
		out.Questions[i] = qn
	}
	return out
}
