package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/quizhive/quizhive/internal/apperr"
	"github.com/quizhive/quizhive/internal/events"
	"github.com/quizhive/quizhive/internal/grading"
	"github.com/quizhive/quizhive/internal/quiz"
)

func CreateQuizHandler(store quiz.Store, pub events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q quiz.Quiz
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			writeError(w, apperr.Validation("Invalid request body"))
			return
		}
		if err := quiz.Validate(q); err != nil {
			writeError(w, err)
			return
		}
		q.ID = uuid.NewString()
		q.Title = strings.TrimSpace(q.Title)
		q.Description = strings.TrimSpace(q.Description)
		if err := store.Put(r.Context(), q); err != nil {
			writeError(w, err)
			return
		}
		publish(pub, events.QuizCreated, map[string]interface{}{
			"quiz_id":   q.ID,
			"title":     q.Title,
			"questions": len(q.Questions),
		})
		writeJSON(w, http.StatusCreated, q)
	}
}

func ListQuizzesHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		qs, err := store.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]quiz.Quiz, 0, len(qs))
		for _, q := range qs {
			out = append(out, q.Sanitized())
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func GetQuizHandler(store quiz.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q, err := store.Get(r.Context(), chi.URLParam(r, "quizID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, q.Sanitized())
	}
}

// SubmitQuizHandler grades anonymously; no identity is required to take a
// quiz.
func SubmitQuizHandler(store quiz.Store, grader grading.Grader, pub events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers []string `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answers == nil {
			writeError(w, apperr.Validation("Answers must be an array"))
			return
		}
		q, err := store.Get(r.Context(), chi.URLParam(r, "quizID"))
		if err != nil {
			writeError(w, err)
			return
		}
		result, err := grader.Grade(q, req.Answers)
		if err != nil {
			writeError(w, err)
			return
		}
		publish(pub, events.QuizSubmitted, map[string]interface{}{
			"quiz_id":    q.ID,
			"score":      result.Score,
			"total":      result.Total,
			"percentage": result.Percentage,
		})
		writeJSON(w, http.StatusOK, result)
	}
}

func publish(pub events.Publisher, typ string, payload interface{}) {
	if err := pub.Publish(typ, payload); err != nil {
		log.Printf("publish %s: %v", typ, err)
	}
}
