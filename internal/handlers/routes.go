package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the site's routes. Paths the site only links to
// (/about, /signup, /pricing, ...) belong to other services and fall through
// to the not-found page here.
func RegisterRoutes(r *chi.Mux, p *PageHandler, a *AssetHandler, h *HealthHandler) {
	r.NotFound(p.NotFound)
	r.MethodNotAllowed(p.MethodNotAllowed)

	r.Group(func(r chi.Router) {
		r.Use(p.Recover)
		r.Get("/", p.Landing)
		r.Get("/profiles", p.Profiles)
		r.Get("/profiles/{id}", p.ActivateProfile)
	})

	r.Get("/static/tokens.css", a.TokensCSS)
	r.Get("/robots.txt", a.Robots)
	r.Get("/manifest.json", a.Manifest)

	r.Get("/health", h.Health)
	r.Get("/healthz", h.Healthz)
	r.Get("/ready", h.Ready)
	r.Get("/version", h.Version)
}
