package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	routePrefix = "/service02"

	secondRequestHeader = "second-request"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.GetHead)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get(routePrefix+"/welcome", h.welcome)
	router.With(requireHeader(secondRequestHeader)).Get(routePrefix+"/message", h.message)
	router.Get(routePrefix+"/check", h.check)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
