// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// the push channel authenticates with its first frame and must not be
	// wrapped by the gzip writer
	router.Get("/ws", h.push)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		// routes without authorization
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/api/item", h.listItems)
			r.Post("/api/item", h.createItem)
			r.Put("/api/item/{id}", h.updateItem)
			r.Delete("/api/item/{id}", h.deleteItem)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
