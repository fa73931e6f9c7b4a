// Package grading turns a quiz and a list of submitted answers into a
// score and a per-question review. It is pure: no I/O, no clock, no store.
package grading

import (
	"fmt"
	"math"
	"strings"

	"github.com/quizhive/quizhive/internal/apperr"
	"github.com/quizhive/quizhive/internal/quiz"
)

// NoAnswer is shown in the review when a submission slot is empty after
// trimming.
const NoAnswer = "No answer provided"

type ReviewItem struct {
	QuestionText   string `json:"questionText"`
	SelectedAnswer string `json:"selectedAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

type Result struct {
	Score      int          `json:"score"`
	Total      int          `json:"total"`
	Percentage int          `json:"percentage"`
	Review     []ReviewItem `json:"review"`
}

type Grader interface {
	Grade(q quiz.Quiz, answers []string) (Result, error)
}

func NewGrader() Grader { return engine{} }

type engine struct{}

// Grade walks the questions once, in order. Every question type is compared
// the same way: exact, case-sensitive string equality after trimming
// leading/trailing whitespace.
func (engine) Grade(q quiz.Quiz, answers []string) (Result, error) {
	if len(answers) != len(q.Questions) {
		return Result{}, apperr.Validation(fmt.Sprintf(
			"Expected %d answers, received %d", len(q.Questions), len(answers)))
	}

	total := len(q.Questions)
	score := 0
	review := make([]ReviewItem, 0, total)

	for i, qn := range q.Questions {
		selected := answers[i]
		correct := strings.TrimSpace(selected) == strings.TrimSpace(qn.CorrectAnswer)
		if correct {
			score++
		}

		display := selected
		if strings.TrimSpace(selected) == "" {
			display = NoAnswer
		}
		review = append(review, ReviewItem{
			QuestionText:   qn.Text,
			SelectedAnswer: display,
			CorrectAnswer:  qn.CorrectAnswer,
			IsCorrect:      correct,
		})
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) / float64(total) * 100))
	}

	return Result{Score: score, Total: total, Percentage: percentage, Review: review}, nil
}
