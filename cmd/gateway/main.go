package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	api "github.com/quizhive/quizhive/internal/api/http"
	"github.com/quizhive/quizhive/internal/auth"
	"github.com/quizhive/quizhive/internal/config"
	"github.com/quizhive/quizhive/internal/db"
	"github.com/quizhive/quizhive/internal/events"
	"github.com/quizhive/quizhive/internal/grading"
	"github.com/quizhive/quizhive/internal/quiz"
	"github.com/quizhive/quizhive/internal/rbac"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process env")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		quizzes quiz.Store
		users   auth.UserStore
	)
	switch cfg.StoreDriver {
	case config.StoreSQL:
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		quizzes = quiz.NewSQLStore(dbh)
		users = auth.NewSQLUserStore(dbh)
	case config.StoreMongo:
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatalf("mongo connect failed: %v", err)
		}
		mdb := client.Database(cfg.MongoDB)
		userStore := auth.NewMongoUserStore(mdb)
		if err := userStore.EnsureIndexes(ctx); err != nil {
			log.Fatalf("mongo indexes: %v", err)
		}
		quizzes = quiz.NewMongoStore(mdb)
		users = userStore
	}

	tokens := auth.NewAuthService(cfg.AuthSecret)
	accounts := auth.NewAccounts(users, tokens, cfg.BcryptCost)
	gate := rbac.NewGate(rbac.NewChecker(nil))

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQPURI != "" {
		p, err := events.NewAMQPPublisher(cfg.AMQPURI, cfg.AMQPExchange)
		if err != nil {
			log.Fatalf("amqp connect failed: %v", err)
		}
		publisher = p
	}
	defer publisher.Close()

	router := api.NewRouter(api.Deps{
		Accounts:    accounts,
		Tokens:      tokens,
		Quizzes:     quizzes,
		Grader:      grading.NewGrader(),
		Gate:        gate,
		Publisher:   publisher,
		CORSOrigins: cfg.CORSOrigins,
	})

	log.Printf("listening on %s (store=%s)", cfg.HTTPAddr, cfg.StoreDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, router))
}
