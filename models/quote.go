package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Quote is one entry of the quote collection. MissingWord is the word the
// player has to guess; Options holds the four proposed answers, the missing
// word included.
type Quote struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Text        string             `bson:"text" json:"text"`
	Author      string             `bson:"author" json:"author"`
	MissingWord string             `bson:"missingWord" json:"missingWord"`
	Options     []string           `bson:"options" json:"options"`
}
