package quiz

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quizhive/quizhive/internal/apperr"
)

// MongoStore stores one document per quiz, keyed by its id.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("quizzes")}
}

func (s *MongoStore) Put(ctx context.Context, q Quiz) error {
	if q.CreatedAt == 0 {
		q.CreatedAt = time.Now().Unix()
	}
	_, err := s.col.InsertOne(ctx, q)
	return err
}

func (s *MongoStore) Get(ctx context.Context, id string) (Quiz, error) {
	var q Quiz
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Quiz{}, apperr.NotFound("Quiz not found")
	}
	if err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Quiz, error) {
	cur, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"created_at": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Quiz{}
	for cur.Next(ctx) {
		var q Quiz
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, cur.Err()
}
