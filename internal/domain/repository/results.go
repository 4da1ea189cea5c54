// Package repository defines the persistence interfaces the domain depends
// on, along with the write-acknowledgment records the store reports back.
package repository

// InsertResult acknowledges a single-document insert.
type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult acknowledges an update or upsert. UpsertedID is empty when
// the write matched an existing document.
type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteResult acknowledges a delete.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// OwnerCount is the number of books owned by one email.
type OwnerCount struct {
	Email string `json:"email"`
	Count int64  `json:"count"`
}

// CategoryCount is one bucket of the per-owner category grouping.
type CategoryCount struct {
	Category string `bson:"category" json:"category"`
	Count    int64  `bson:"count" json:"count"`
}
