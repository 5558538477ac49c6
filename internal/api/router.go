package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/nikhilbhutani/kidsagent/internal/agent"
	"github.com/nikhilbhutani/kidsagent/internal/api/handlers"
	"github.com/nikhilbhutani/kidsagent/internal/api/middleware"
)

type Router struct {
	mux       *chi.Mux
	responder *agent.Responder
}

func NewRouter(responder *agent.Responder) *Router {
	return &Router{
		mux:       chi.NewRouter(),
		responder: responder,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)

	health := handlers.NewHealthHandler()
	r.Get("/health", health.Health)

	a2a := handlers.NewA2AHandler(rt.responder)
	r.Post("/a2a", a2a.Message)

	return r
}
