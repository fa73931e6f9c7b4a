package grading_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/quizhive/quizhive/internal/apperr"
	"github.com/quizhive/quizhive/internal/grading"
	"github.com/quizhive/quizhive/internal/quiz"
)

func sampleQuiz() quiz.Quiz {
	return quiz.Quiz{
		ID:          "q1",
		Title:       "Geography and math",
		Description: "Two questions",
		Questions: []quiz.Question{
			{Text: "Capital of France?", Type: quiz.TypeMCQ, Options: []string{"Paris", "London", "Rome", "Berlin"}, CorrectAnswer: "Paris"},
			{Text: "2+2?", Type: quiz.TypeText, CorrectAnswer: "4"},
		},
	}
}

func TestGradeAllCorrect(t *testing.T) {
	g := grading.NewGrader()
	res, err := g.Grade(sampleQuiz(), []string{"Paris", "4"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 2 || res.Total != 2 || res.Percentage != 100 {
		t.Fatalf("got score=%d total=%d pct=%d", res.Score, res.Total, res.Percentage)
	}
	for i, item := range res.Review {
		if !item.IsCorrect {
			t.Errorf("review[%d] expected correct", i)
		}
	}
}

func TestGradeAllWrong(t *testing.T) {
	g := grading.NewGrader()
	res, err := g.Grade(sampleQuiz(), []string{"London", "5"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 0 || res.Percentage != 0 {
		t.Fatalf("got score=%d pct=%d", res.Score, res.Percentage)
	}
}

func TestGradePartial(t *testing.T) {
	g := grading.NewGrader()
	res, err := g.Grade(sampleQuiz(), []string{"Paris", "5"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 1 || res.Total != 2 || res.Percentage != 50 {
		t.Fatalf("got score=%d total=%d pct=%d", res.Score, res.Total, res.Percentage)
	}
	if !res.Review[0].IsCorrect {
		t.Error("first answer should be correct")
	}
	if res.Review[1].IsCorrect || res.Review[1].SelectedAnswer != "5" || res.Review[1].CorrectAnswer != "4" {
		t.Errorf("unexpected second review item: %+v", res.Review[1])
	}
}

func TestGradeLengthMismatch(t *testing.T) {
	g := grading.NewGrader()
	_, err := g.Grade(sampleQuiz(), []string{"Paris"})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "2") || !strings.Contains(msg, "1") {
		t.Errorf("error should name both counts, got %q", msg)
	}
}

func TestGradeEmptyAnswer(t *testing.T) {
	g := grading.NewGrader()
	res, err := g.Grade(sampleQuiz(), []string{"", "4"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Review[0].SelectedAnswer != grading.NoAnswer {
		t.Errorf("got %q, want %q", res.Review[0].SelectedAnswer, grading.NoAnswer)
	}
	if res.Review[0].IsCorrect {
		t.Error("empty answer should not be correct")
	}
	if res.Score != 1 {
		t.Errorf("score = %d, want 1", res.Score)
	}
}

func TestGradeWhitespaceOnlyAnswer(t *testing.T) {
	g := grading.NewGrader()
	res, err := g.Grade(sampleQuiz(), []string{"   ", "4"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Review[0].SelectedAnswer != grading.NoAnswer {
		t.Errorf("whitespace-only should display as %q, got %q", grading.NoAnswer, res.Review[0].SelectedAnswer)
	}
}

func TestGradeTrimsBeforeComparing(t *testing.T) {
	g := grading.NewGrader()
	res, err := g.Grade(sampleQuiz(), []string{"  Paris  ", " 4 "})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 2 {
		t.Errorf("score = %d, want 2 (answers should be trimmed)", res.Score)
	}
	if res.Review[0].SelectedAnswer != "  Paris  " {
		t.Errorf("review should keep the raw answer, got %q", res.Review[0].SelectedAnswer)
	}
}

func TestGradeCaseSensitive(t *testing.T) {
	q := quiz.Quiz{Questions: []quiz.Question{
		{Text: "Sky is blue", Type: quiz.TypeTrueFalse, CorrectAnswer: "True"},
	}}
	g := grading.NewGrader()
	res, err := g.Grade(q, []string{"true"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 0 {
		t.Error(`"true" must not match "True"`)
	}
}

func TestGradeZeroQuestions(t *testing.T) {
	g := grading.NewGrader()
	res, err := g.Grade(quiz.Quiz{}, []string{})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Percentage != 0 || res.Total != 0 {
		t.Fatalf("got pct=%d total=%d", res.Percentage, res.Total)
	}
}

func TestGradeRounding(t *testing.T) {
	cases := []struct {
		questions int
		correct   int
		want      int
	}{
		{3, 1, 33},
		{3, 2, 67},
		{6, 1, 17},
		{8, 1, 13}, // 12.5 rounds half up
		{2, 1, 50},
	}
	g := grading.NewGrader()
	for _, tc := range cases {
		q := quiz.Quiz{}
		answers := make([]string, tc.questions)
		for i := 0; i < tc.questions; i++ {
			q.Questions = append(q.Questions, quiz.Question{Text: "x", Type: quiz.TypeText, CorrectAnswer: "yes"})
			if i < tc.correct {
				answers[i] = "yes"
			} else {
				answers[i] = "no"
			}
		}
		res, err := g.Grade(q, answers)
		if err != nil {
			t.Fatalf("Grade: %v", err)
		}
		if res.Percentage != tc.want {
			t.Errorf("%d/%d: pct = %d, want %d", tc.correct, tc.questions, res.Percentage, tc.want)
		}
	}
}

func TestGradeDeterministic(t *testing.T) {
	g := grading.NewGrader()
	a, err := g.Grade(sampleQuiz(), []string{"Paris", "5"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	b, err := g.Grade(sampleQuiz(), []string{"Paris", "5"})
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", a, b)
	}
}
