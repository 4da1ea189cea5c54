package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"bookshelf/internal/delivery/http/middleware"
	"bookshelf/internal/delivery/http/validator"
	"bookshelf/internal/domain/entity"
	"bookshelf/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testServer bundles a configured echo instance for request-level tests.
type testServer struct {
	e *echo.Echo
}

// newTestEcho wires the validator and error handler the real server uses,
// so handler tests observe the same status codes as clients do.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newTestLogger()).HandleHTTPError

	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

// fakeBookUC returns canned values and records which operations ran.
type fakeBookUC struct {
	t *testing.T

	books      []*entity.Book
	getErr     error
	calls      []string
	lastSearch string
}

func (f *fakeBookUC) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeBookUC) ListAll(context.Context) ([]*entity.Book, error) {
	f.record("ListAll")

	return f.books, nil
}

func (f *fakeBookUC) Get(context.Context, string) (*entity.Book, error) {
	f.record("Get")
	if f.getErr != nil {
		return nil, f.getErr
	}
	if len(f.books) == 0 {
		return nil, nil
	}

	return f.books[0], nil
}

func (f *fakeBookUC) ListByOwner(context.Context, string) ([]*entity.Book, error) {
	f.record("ListByOwner")

	return f.books, nil
}

func (f *fakeBookUC) TopByUpvotes(context.Context) ([]*entity.Book, error) {
	f.record("TopByUpvotes")

	return f.books, nil
}

func (f *fakeBookUC) Search(_ context.Context, query string) ([]*entity.Book, error) {
	f.record("Search")
	f.lastSearch = query

	return f.books, nil
}

func (f *fakeBookUC) ListByCategory(context.Context, string) ([]*entity.Book, error) {
	f.record("ListByCategory")

	return f.books, nil
}

func (f *fakeBookUC) Add(context.Context, *entity.Book) (*repository.InsertResult, error) {
	f.record("Add")

	return &repository.InsertResult{InsertedID: "6533e1f3a1c8b2d4e5f60718"}, nil
}

func (f *fakeBookUC) Replace(context.Context, string, *entity.Book) (*repository.UpdateResult, error) {
	f.record("Replace")

	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeBookUC) Remove(context.Context, string) (*repository.DeleteResult, error) {
	f.record("Remove")

	return &repository.DeleteResult{DeletedCount: 1}, nil
}

func (f *fakeBookUC) Upvote(context.Context, string, string) (*repository.UpdateResult, error) {
	f.record("Upvote")

	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeBookUC) CountByOwner(_ context.Context, email string) (*repository.OwnerCount, error) {
	f.record("CountByOwner")

	return &repository.OwnerCount{Email: email, Count: int64(len(f.books))}, nil
}

func (f *fakeBookUC) CategoryCountsByOwner(context.Context, string) ([]repository.CategoryCount, error) {
	f.record("CategoryCountsByOwner")

	return []repository.CategoryCount{{Category: "Fiction", Count: 2}}, nil
}

func (f *fakeBookUC) Categories(context.Context) ([]string, error) {
	f.record("Categories")

	return []string{"Fiction", "SciFi"}, nil
}

// fakeWishlistUC answers a conflict after the first successful add for a
// given pair, mirroring the unique-index behavior of the real store.
type fakeWishlistUC struct {
	addErr error
	added  []string
}

func (f *fakeWishlistUC) Add(_ context.Context, bookID, userEmail string) (*repository.InsertResult, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, bookID+"|"+userEmail)

	return &repository.InsertResult{InsertedID: "6533e1f3a1c8b2d4e5f60719"}, nil
}

type fakeUserUC struct {
	users  []*entity.User
	getErr error
}

func (f *fakeUserUC) Register(context.Context, *entity.User) (*repository.InsertResult, error) {
	return &repository.InsertResult{InsertedID: "6533e1f3a1c8b2d4e5f6071a"}, nil
}

func (f *fakeUserUC) ListAll(context.Context) ([]*entity.User, error) {
	return f.users, nil
}

func (f *fakeUserUC) Get(context.Context, string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if len(f.users) == 0 {
		return nil, nil
	}

	return f.users[0], nil
}

type fakeReviewUC struct {
	reviews []*entity.Review
}

func (f *fakeReviewUC) Add(context.Context, *entity.Review) (*repository.InsertResult, error) {
	return &repository.InsertResult{InsertedID: "6533e1f3a1c8b2d4e5f6071b"}, nil
}

func (f *fakeReviewUC) ListByBook(context.Context, string) ([]*entity.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewUC) Replace(context.Context, string, *entity.Review) (*repository.UpdateResult, error) {
	return &repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeReviewUC) Remove(context.Context, string) (*repository.DeleteResult, error) {
	return &repository.DeleteResult{DeletedCount: 1}, nil
}
