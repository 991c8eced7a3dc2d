package db

import (
	"context"
	"errors"
	"time"

	"motmystere/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no document matches the lookup.
var ErrNotFound = errors.New("not found")

// UserStore is the contract every identity-scoped handler goes through.
// RaiseBestScore and SetStreak are the only writers of the progress fields;
// both are single-document read-modify-writes so concurrent reports for the
// same user converge instead of losing updates.
type UserStore interface {
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)

	// SyncProfile refreshes the profile fields on login, creating the record
	// with zeroed progress when the googleId is seen for the first time.
	SyncProfile(ctx context.Context, googleID, email, name, photo string) (*models.User, error)

	// RaiseBestScore raises bestScore to score if score is higher and returns
	// the stored value either way.
	RaiseBestScore(ctx context.Context, googleID string, score int) (int, error)

	// SetStreak writes the streak fields only if lastPlayed still equals
	// ifLastPlayed; reports whether the guarded write took effect.
	SetStreak(ctx context.Context, googleID, ifLastPlayed string, streak int, lastPlayed string) (bool, error)

	Ping(ctx context.Context) error
}

// QuoteStore exposes the quote collection as a fetch-one contract.
type QuoteStore interface {
	RandomQuote(ctx context.Context) (*models.Quote, error)
	Count(ctx context.Context) (int64, error)
	Authors(ctx context.Context) ([]string, error)
	InsertMany(ctx context.Context, quotes []models.Quote) error
}

type mongoUserStore struct {
	collection *mongo.Collection
}

func (s *mongoUserStore) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"googleId": googleID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) SyncProfile(ctx context.Context, googleID, email, name, photo string) (*models.User, error) {
	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"email":     email,
			"name":      name,
			"photo":     photo,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"googleId":   googleID,
			"bestScore":  0,
			"streak":     0,
			"lastPlayed": "",
			"createdAt":  now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"googleId": googleID}, update, opts).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) RaiseBestScore(ctx context.Context, googleID string, score int) (int, error) {
	update := bson.M{
		"$max": bson.M{"bestScore": score},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := s.collection.FindOneAndUpdate(ctx, bson.M{"googleId": googleID}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return user.BestScore, nil
}

func (s *mongoUserStore) SetStreak(ctx context.Context, googleID, ifLastPlayed string, streak int, lastPlayed string) (bool, error) {
	filter := bson.M{"googleId": googleID, "lastPlayed": ifLastPlayed}
	update := bson.M{
		"$set": bson.M{
			"streak":     streak,
			"lastPlayed": lastPlayed,
			"updatedAt":  time.Now(),
		},
	}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (s *mongoUserStore) Ping(ctx context.Context) error {
	return s.collection.Database().Client().Ping(ctx, nil)
}

type mongoQuoteStore struct {
	collection *mongo.Collection
}

func (s *mongoQuoteStore) RandomQuote(ctx context.Context) (*models.Quote, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: 1}}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var quotes []models.Quote
	if err := cursor.All(ctx, &quotes); err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, ErrNotFound
	}
	return &quotes[0], nil
}

func (s *mongoQuoteStore) Count(ctx context.Context) (int64, error) {
	return s.collection.CountDocuments(ctx, bson.M{})
}

func (s *mongoQuoteStore) Authors(ctx context.Context) ([]string, error) {
	values, err := s.collection.Distinct(ctx, "author", bson.M{})
	if err != nil {
		return nil, err
	}

	authors := make([]string, 0, len(values))
	for _, v := range values {
		if author, ok := v.(string); ok {
			authors = append(authors, author)
		}
	}
	return authors, nil
}

func (s *mongoQuoteStore) InsertMany(ctx context.Context, quotes []models.Quote) error {
	documents := make([]interface{}, 0, len(quotes))
	for _, quote := range quotes {
		documents = append(documents, quote)
	}
	_, err := s.collection.InsertMany(ctx, documents)
	return err
}
