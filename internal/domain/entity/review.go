package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review references a Book by its hex id. The reference is soft: nothing
// enforces that the book exists, and reviews outlive book deletion.
type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookID        string             `bson:"bookId" json:"bookId"`
	Rating        float64            `bson:"rating" json:"rating"`
	Text          string             `bson:"reviewText" json:"reviewText"`
	ReviewerName  string             `bson:"reviewerName,omitempty" json:"reviewerName,omitempty"`
	ReviewerEmail string             `bson:"reviewerEmail,omitempty" json:"reviewerEmail,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
