package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newUserTestServer(uc *fakeUserUC) *testServer {
	e := newTestEcho()
	h := NewUserHandler(uc, newTestLogger())

	e.POST("/users", h.Register)
	e.GET("/users", h.ListAll)
	e.GET("/user/:id", h.GetByID)

	return &testServer{e: e}
}

func TestRegisterUserCreated(t *testing.T) {
	srv := newUserTestServer(&fakeUserUC{})

	payload := `{"name":"Ada","email":"ada@x.com"}`
	rec := doJSON(srv.e, http.MethodPost, "/users", payload)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterUserRejectsBadEmail(t *testing.T) {
	srv := newUserTestServer(&fakeUserUC{})

	rec := doJSON(srv.e, http.MethodPost, "/users", `{"name":"Ada","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListUsersOK(t *testing.T) {
	srv := newUserTestServer(&fakeUserUC{})

	rec := doJSON(srv.e, http.MethodGet, "/users", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
