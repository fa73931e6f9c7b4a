package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/quizhive/quizhive/internal/auth"
	authmw "github.com/quizhive/quizhive/internal/auth/middleware"
	"github.com/quizhive/quizhive/internal/events"
	"github.com/quizhive/quizhive/internal/grading"
	"github.com/quizhive/quizhive/internal/quiz"
	"github.com/quizhive/quizhive/internal/rbac"
)

// Deps are the collaborators the router needs. Everything is constructed
// at startup and passed in; there are no package-level singletons.
type Deps struct {
	Accounts  *auth.Accounts
	Tokens    *auth.AuthService
	Quizzes   quiz.Store
	Grader    grading.Grader
	Gate      *rbac.Gate
	Publisher events.Publisher

	CORSOrigins []string
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Logger, chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))

	if len(d.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   d.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	requireAuth := authmw.JWTMiddleware(d.Tokens)

	r.Route("/api/auth", func(ar chi.Router) {
		ar.Post("/register", RegisterHandler(d.Accounts))
		ar.Post("/login", LoginHandler(d.Accounts))
		ar.With(requireAuth).Get("/me", MeHandler(d.Accounts))
	})

	r.Route("/api/quiz", func(qr chi.Router) {
		// Reading and taking quizzes is anonymous by design.
		qr.Get("/", ListQuizzesHandler(d.Quizzes))
		qr.Get("/{quizID}", GetQuizHandler(d.Quizzes))
		qr.Post("/{quizID}/submit", SubmitQuizHandler(d.Quizzes, d.Grader, d.Publisher))

		qr.With(requireAuth, d.Gate.Require(rbac.PermCreateQuiz)).
			Post("/", CreateQuizHandler(d.Quizzes, d.Publisher))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	return r
}
