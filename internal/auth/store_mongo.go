package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quizhive/quizhive/internal/apperr"
)

type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{col: db.Collection("users")}
}

// EnsureIndexes creates the unique indexes that back duplicate detection.
// Call once at startup.
func (s *MongoUserStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"email": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"username": 1}, Options: options.Index().SetUnique(true)},
	})
	return err
}

func (s *MongoUserStore) Create(ctx context.Context, u User) error {
	err := s.col.FindOne(ctx, bson.M{
		"$or": []bson.M{{"email": u.Email}, {"username": u.Username}},
	}).Err()
	if err == nil {
		return apperr.Conflict(conflictMsg)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = time.Now().Unix()
	}
	_, err = s.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Conflict(conflictMsg)
	}
	return err
}

func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.getBy(ctx, bson.M{"email": email})
}

func (s *MongoUserStore) GetByID(ctx context.Context, id string) (User, error) {
	return s.getBy(ctx, bson.M{"_id": id})
}

func (s *MongoUserStore) getBy(ctx context.Context, filter bson.M) (User, error) {
	var u User
	err := s.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, apperr.NotFound("User not found")
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}
