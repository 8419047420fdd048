package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// idParam matches positive integer ids only; anything else is a 404.
const idParam = "/{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.metrics.Middleware)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Handle("/metrics", h.metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		// every route below may act on behalf of the caller
		r.Group(func(r chi.Router) {
			r.Use(h.identify)

			r.Route("/auth", func(r chi.Router) {
				r.Post("/register", h.register)
				r.Post("/login", h.login)
				r.Post("/token", h.regenerateToken)
				r.Delete("/me", h.deleteAccount)
			})

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", h.listArticles)
				r.Post("/", h.createArticle)
				r.Get(idParam, h.getArticle)
				r.Put(idParam, h.updateArticle)
				r.Patch(idParam, h.updateArticle)
				r.Delete(idParam, h.deleteArticle)
			})

			r.Route("/comments", func(r chi.Router) {
				r.Get("/", h.listComments)
				r.Post("/", h.createComment)
				r.Get(idParam, h.getComment)
				r.Put(idParam, h.updateComment)
				r.Patch(idParam, h.updateComment)
				r.Delete(idParam, h.deleteComment)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.listCategories)
				r.Post("/", h.createCategory)
				r.Get(idParam, h.getCategory)
				r.Delete(idParam, h.deleteCategory)
			})
		})
	})

	return router
}
