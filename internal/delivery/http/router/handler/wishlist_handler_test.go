package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "bookshelf/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWishlistTestServer(uc *fakeWishlistUC) *testServer {
	e := newTestEcho()
	h := NewWishlistHandler(uc, newTestLogger())
	e.POST("/wishlist", h.Add)

	return &testServer{e: e}
}

func TestWishlistAddCreated(t *testing.T) {
	uc := &fakeWishlistUC{}
	srv := newWishlistTestServer(uc)

	payload := `{"bookId":"6533e1f3a1c8b2d4e5f60718","userEmail":"a@x.com"}`
	rec := doJSON(srv.e, http.MethodPost, "/wishlist", payload)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []string{"6533e1f3a1c8b2d4e5f60718|a@x.com"}, uc.added)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Book added to wishlist successfully!", body["message"])
}

func TestWishlistAddDuplicateConflict(t *testing.T) {
	uc := &fakeWishlistUC{addErr: domainerrors.ErrWishlistDuplicate}
	srv := newWishlistTestServer(uc)

	payload := `{"bookId":"6533e1f3a1c8b2d4e5f60718","userEmail":"a@x.com"}`
	rec := doJSON(srv.e, http.MethodPost, "/wishlist", payload)

	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "WISHLIST_DUPLICATE", errInfo["code"])
}

func TestWishlistAddMissingFields(t *testing.T) {
	uc := &fakeWishlistUC{}
	srv := newWishlistTestServer(uc)

	rec := doJSON(srv.e, http.MethodPost, "/wishlist", `{"bookId":"6533e1f3a1c8b2d4e5f60718"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.added)
}
