// Package entity contains the core business objects of the project,
// each representing a document stored in the bookshelf database.
package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is the central entity of the system. Field names follow the wire
// format the frontend submits, so bson and json tags match one to one.
type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title         string             `bson:"bookTitle" json:"bookTitle"`
	Author        string             `bson:"bookAuthor" json:"bookAuthor"`
	Category      string             `bson:"bookCategory" json:"bookCategory"`
	Overview      string             `bson:"bookOverview,omitempty" json:"bookOverview,omitempty"`
	CoverPhoto    string             `bson:"coverPhoto,omitempty" json:"coverPhoto,omitempty"`
	TotalPages    int                `bson:"totalPage,omitempty" json:"totalPage,omitempty"`
	ReadingStatus string             `bson:"readingStatus,omitempty" json:"readingStatus,omitempty"`
	OwnerEmail    string             `bson:"userEmail" json:"userEmail"`
	OwnerName     string             `bson:"userName,omitempty" json:"userName,omitempty"`
	// UpvotedBy is append-only; the same email may appear more than once.
	UpvotedBy []string `bson:"upvotedBy,omitempty" json:"upvotedBy,omitempty"`
	// UpvoteCount is computed by the top-books aggregation and is not
	// persisted on regular writes.
	UpvoteCount int `bson:"upvoteCount,omitempty" json:"upvoteCount,omitempty"`
}
