package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WishlistEntry records that a user wants a book. At most one entry may
// exist per (BookID, UserEmail) pair; a unique compound index backs this.
type WishlistEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookID    primitive.ObjectID `bson:"bookId" json:"bookId"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
}
