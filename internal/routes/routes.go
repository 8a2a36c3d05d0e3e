package routes

import (
	"net/http"

	"github.com/templui/bloglist/internal/app"
	"github.com/templui/bloglist/internal/handler"
	"github.com/templui/bloglist/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	blog := handler.NewBlogHandler(app.BlogService, app.Cfg.MaxBodyBytes)
	health := handler.NewHealthHandler(app.DB)

	// Writes are rate limited per client IP
	limit := app.RateLimiter.Limit

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)

	// Blogs
	mux.HandleFunc("GET /api/blogs", blog.List)
	mux.HandleFunc("POST /api/blogs", limit(blog.Create))
	mux.HandleFunc("GET /api/blogs/{id}", blog.Show)
	mux.HandleFunc("PUT /api/blogs/{id}", limit(blog.Update))
	mux.HandleFunc("DELETE /api/blogs/{id}", limit(blog.Delete))

	// Known paths, unsupported methods
	mux.HandleFunc("/api/blogs", handler.MethodNotAllowed(http.MethodGet, http.MethodPost))
	mux.HandleFunc("/api/blogs/{id}", handler.MethodNotAllowed(http.MethodGet, http.MethodPut, http.MethodDelete))

	// 404
	mux.HandleFunc("/{path...}", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestID, // Must be first so every log line carries the id
		middleware.ClientIP(app.Cfg.TrustProxy),
		middleware.RequestLogging,
		middleware.Recover,
	)
}
