package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, middleware.Recoverer, withGZip, h.withRequestTimeout)

	// reads are public
	router.With(h.withResponseHashing).Get("/jcadata", h.getJcaData)

	// writes require the shared secret
	router.With(h.withSecret).Post("/update", h.updateJcaData)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
