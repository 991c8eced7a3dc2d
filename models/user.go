package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a player record. GoogleId is the identity-provider subject id
// and never changes after creation; profile fields are refreshed on every
// login, progress fields (BestScore, Streak, LastPlayed) only move through
// the score and streak endpoints.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	GoogleID   string             `bson:"googleId" json:"id"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name" json:"name"`
	Photo      string             `bson:"photo,omitempty" json:"photo,omitempty"`
	BestScore  int                `bson:"bestScore" json:"bestScore"`
	Streak     int                `bson:"streak" json:"streak"`
	LastPlayed string             `bson:"lastPlayed" json:"lastPlayed,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
