package impl

import (
	"context"
	"sort"
	"strings"

	"bookshelf/internal/domain/entity"
	domainerrors "bookshelf/internal/domain/errors"
	"bookshelf/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeBookRepo is an in-memory stand-in for the books collection. It keeps
// insertion order so top-ranking ties resolve the way natural store order
// would.
type fakeBookRepo struct {
	books        []*entity.Book
	lastTopLimit int
	countCalls   int
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{}
}

func (f *fakeBookRepo) FindAll(ctx context.Context) ([]*entity.Book, error) {
	return append([]*entity.Book(nil), f.books...), nil
}

func (f *fakeBookRepo) FindByID(ctx context.Context, id string) (*entity.Book, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domainerrors.ErrInvalidObjectID
	}
	for _, b := range f.books {
		if b.ID.Hex() == id {
			copied := *b
			return &copied, nil
		}
	}

	return nil, domainerrors.ErrBookNotFound
}

func (f *fakeBookRepo) FindByOwner(ctx context.Context, email string) ([]*entity.Book, error) {
	var out []*entity.Book
	for _, b := range f.books {
		if b.OwnerEmail == email {
			out = append(out, b)
		}
	}

	return out, nil
}

func (f *fakeBookRepo) FindTopByUpvotes(ctx context.Context, limit int) ([]*entity.Book, error) {
	f.lastTopLimit = limit
	ranked := append([]*entity.Book(nil), f.books...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i].UpvotedBy) > len(ranked[j].UpvotedBy)
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]*entity.Book, 0, len(ranked))
	for _, b := range ranked {
		copied := *b
		copied.UpvoteCount = len(b.UpvotedBy)
		out = append(out, &copied)
	}

	return out, nil
}

func (f *fakeBookRepo) Search(ctx context.Context, query string) ([]*entity.Book, error) {
	needle := strings.ToLower(query)
	var out []*entity.Book
	for _, b := range f.books {
		if strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.Author), needle) {
			out = append(out, b)
		}
	}

	return out, nil
}

func (f *fakeBookRepo) FindByCategory(ctx context.Context, category string) ([]*entity.Book, error) {
	var out []*entity.Book
	for _, b := range f.books {
		if b.Category == category {
			out = append(out, b)
		}
	}

	return out, nil
}

func (f *fakeBookRepo) Insert(ctx context.Context, book *entity.Book) (*repository.InsertResult, error) {
	stored := *book
	stored.ID = primitive.NewObjectID()
	f.books = append(f.books, &stored)

	return &repository.InsertResult{InsertedID: stored.ID.Hex()}, nil
}

func (f *fakeBookRepo) Upsert(ctx context.Context, id string, book *entity.Book) (*repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrInvalidObjectID
	}
	for i, b := range f.books {
		if b.ID == oid {
			updated := *book
			updated.ID = oid
			f.books[i] = &updated

			return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	inserted := *book
	inserted.ID = oid
	f.books = append(f.books, &inserted)

	return &repository.UpdateResult{UpsertedID: oid.Hex()}, nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrInvalidObjectID
	}
	for i, b := range f.books {
		if b.ID == oid {
			f.books = append(f.books[:i], f.books[i+1:]...)

			return &repository.DeleteResult{DeletedCount: 1}, nil
		}
	}

	return &repository.DeleteResult{DeletedCount: 0}, nil
}

func (f *fakeBookRepo) AppendUpvote(ctx context.Context, id, email string) (*repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrInvalidObjectID
	}
	for _, b := range f.books {
		if b.ID == oid {
			b.UpvotedBy = append(b.UpvotedBy, email)

			return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}

	// Missing id is a zero-effect acknowledgment, not an error.
	return &repository.UpdateResult{}, nil
}

func (f *fakeBookRepo) CountByOwner(ctx context.Context, email string) (int64, error) {
	f.countCalls++
	var count int64
	for _, b := range f.books {
		if b.OwnerEmail == email {
			count++
		}
	}

	return count, nil
}

func (f *fakeBookRepo) CategoryCountsByOwner(ctx context.Context, email string) ([]repository.CategoryCount, error) {
	buckets := make(map[string]int64)
	for _, b := range f.books {
		if b.OwnerEmail == email {
			buckets[b.Category]++
		}
	}
	out := make([]repository.CategoryCount, 0, len(buckets))
	for category, count := range buckets {
		out = append(out, repository.CategoryCount{Category: category, Count: count})
	}

	return out, nil
}

func (f *fakeBookRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, b := range f.books {
		if !seen[b.Category] {
			seen[b.Category] = true
			out = append(out, b.Category)
		}
	}

	return out, nil
}

// fakeWishlistRepo simulates the wishlist collection including its unique
// (bookId, userEmail) index.
type fakeWishlistRepo struct {
	entries map[string]*entity.WishlistEntry
	// existsAlwaysFalse simulates the check-then-insert race: the existence
	// check misses while the index still rejects the duplicate insert.
	existsAlwaysFalse bool
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{entries: make(map[string]*entity.WishlistEntry)}
}

func wishlistKey(bookID, userEmail string) string {
	return bookID + "|" + userEmail
}

func (f *fakeWishlistRepo) Exists(ctx context.Context, bookID, userEmail string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(bookID); err != nil {
		return false, domainerrors.ErrInvalidObjectID
	}
	if f.existsAlwaysFalse {
		return false, nil
	}
	_, ok := f.entries[wishlistKey(bookID, userEmail)]

	return ok, nil
}

func (f *fakeWishlistRepo) Insert(ctx context.Context, entry *entity.WishlistEntry) (*repository.InsertResult, error) {
	key := wishlistKey(entry.BookID.Hex(), entry.UserEmail)
	if _, ok := f.entries[key]; ok {
		return nil, domainerrors.ErrWishlistDuplicate
	}
	stored := *entry
	stored.ID = primitive.NewObjectID()
	f.entries[key] = &stored

	return &repository.InsertResult{InsertedID: stored.ID.Hex()}, nil
}

// fakeUserRepo is an in-memory stand-in for the users collection.
type fakeUserRepo struct {
	users []*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *entity.User) (*repository.InsertResult, error) {
	stored := *user
	stored.ID = primitive.NewObjectID()
	f.users = append(f.users, &stored)

	return &repository.InsertResult{InsertedID: stored.ID.Hex()}, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	return append([]*entity.User(nil), f.users...), nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}

	return nil, domainerrors.ErrUserNotFound
}

// fakeReviewRepo is an in-memory stand-in for the reviews collection.
type fakeReviewRepo struct {
	reviews []*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (f *fakeReviewRepo) Insert(ctx context.Context, review *entity.Review) (*repository.InsertResult, error) {
	stored := *review
	stored.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, &stored)

	return &repository.InsertResult{InsertedID: stored.ID.Hex()}, nil
}

func (f *fakeReviewRepo) FindByBookID(ctx context.Context, bookID string) ([]*entity.Review, error) {
	out := make([]*entity.Review, 0)
	for _, r := range f.reviews {
		if r.BookID == bookID {
			out = append(out, r)
		}
	}

	return out, nil
}

func (f *fakeReviewRepo) Upsert(ctx context.Context, id string, review *entity.Review) (*repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrInvalidObjectID
	}
	for i, r := range f.reviews {
		if r.ID == oid {
			updated := *review
			updated.ID = oid
			f.reviews[i] = &updated

			return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	inserted := *review
	inserted.ID = oid
	f.reviews = append(f.reviews, &inserted)

	return &repository.UpdateResult{UpsertedID: oid.Hex()}, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domainerrors.ErrInvalidObjectID
	}
	for i, r := range f.reviews {
		if r.ID == oid {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)

			return &repository.DeleteResult{DeletedCount: 1}, nil
		}
	}

	return &repository.DeleteResult{DeletedCount: 0}, nil
}
