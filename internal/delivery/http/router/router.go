// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookshelf/internal/delivery/http/middleware"
	"bookshelf/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BookHandler     *handler.BookHandler
	UserHandler     *handler.UserHandler
	ReviewHandler   *handler.ReviewHandler
	WishlistHandler *handler.WishlistHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	bookHandler     *handler.BookHandler
	userHandler     *handler.UserHandler
	reviewHandler   *handler.ReviewHandler
	wishlistHandler *handler.WishlistHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		bookHandler:     params.BookHandler,
		userHandler:     params.UserHandler,
		reviewHandler:   params.ReviewHandler,
		wishlistHandler: params.WishlistHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Path shapes are kept flat for client compatibility.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Liveness probe
	e.GET("/", handler.Liveness)

	// Book reads. Fixed segments are registered before parameterized
	// siblings so /books/search never captures as a category name.
	e.GET("/bookshelf", r.bookHandler.ListAll)
	e.GET("/allBooks", r.bookHandler.ListAll)
	e.GET("/book/:id", r.bookHandler.GetByID)
	e.GET("/books/top", r.bookHandler.Top)
	e.GET("/books/search", r.bookHandler.Search)
	e.GET("/books/count", r.bookHandler.CountByOwner)
	e.GET("/books/category-count", r.bookHandler.CategoryCounts)
	e.GET("/books/category/:categoryName", r.bookHandler.ListByCategory)
	e.GET("/categories", r.bookHandler.Categories)

	// Owner-scoped reads require a verified token whose email matches
	// the email query parameter.
	e.GET("/myBooks", r.bookHandler.ListMine,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireOwnEmail,
	)

	// Book writes
	e.POST("/addBook", r.bookHandler.Add)
	e.PUT("/book/:id", r.bookHandler.Replace)
	e.DELETE("/book/:id", r.bookHandler.Delete)
	e.PATCH("/upvote/:bookId", r.bookHandler.Upvote)

	// User profiles
	e.POST("/users", r.userHandler.Register)
	e.GET("/users", r.userHandler.ListAll)
	e.GET("/user/:id", r.userHandler.GetByID)

	// Reviews
	e.POST("/addReview", r.reviewHandler.Add)
	e.GET("/reviews/:bookId", r.reviewHandler.ListByBook)
	e.PUT("/updateReview/:id", r.reviewHandler.Replace)
	e.DELETE("/deleteReview/:id", r.reviewHandler.Delete)

	// Wishlist
	e.POST("/wishlist", r.wishlistHandler.Add)
}
