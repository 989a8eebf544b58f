package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"

	"github.com/chiranperera/inner-most/internal/components"
	"github.com/chiranperera/inner-most/internal/metrics"
	"github.com/chiranperera/inner-most/internal/render"
	"github.com/chiranperera/inner-most/pkg/apperror"
	"github.com/chiranperera/inner-most/pkg/logger"
)

// PageHandler serves the HTML pages.
type PageHandler struct {
	pages *render.Pages
	cache *render.Cache
	log   *slog.Logger
}

func NewPageHandler(pages *render.Pages, cache *render.Cache, log *slog.Logger) *PageHandler {
	return &PageHandler{
		pages: pages,
		cache: cache,
		log:   log.With(logger.Scope("pages")),
	}
}

// header builds the per-request header. ?menu=open toggles the menu once, so
// the page renders with the mobile navigation expanded.
func (h *PageHandler) header(r *http.Request, path string) (*components.Header, string) {
	hd := h.pages.Header(path)
	if r.URL.Query().Get(components.MenuParam) == "open" {
		hd.Toggle()
		metrics.MenuToggles.Inc()
	}
	key := path
	if hd.MenuOpen() {
		key += "?" + components.MenuParam + "=open"
	}
	return hd, key
}

func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	hd, key := h.header(r, "/")
	h.writePage(w, r, key, h.pages.Landing(hd, h.recordActivation))
}

func (h *PageHandler) Profiles(w http.ResponseWriter, r *http.Request) {
	hd, key := h.header(r, "/profiles")
	h.writePage(w, r, key, h.pages.Profiles(hd, h.recordActivation))
}

// ActivateProfile is where a clicked profile card lands. The activation is
// dispatched through the grid's callback and the visitor continues to sign-up.
func (h *PageHandler) ActivateProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	grid := components.ProfileGrid{
		Profiles:       h.pages.Site.Profiles,
		OnProfileClick: h.recordActivation,
	}
	for _, card := range grid.Cards() {
		if card.Profile.ID == id {
			card.Activate()
			http.Redirect(w, r, "/signup?profile="+url.QueryEscape(id), http.StatusSeeOther)
			return
		}
	}

	h.Error(w, r, apperror.NewNotFound("Profile", id))
}

func (h *PageHandler) recordActivation(id string) {
	metrics.ProfileActivations.WithLabelValues(id).Inc()
	h.log.Info("profile activated", slog.String("profile_id", id))
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Error(w, r, apperror.ErrNotFound)
}

func (h *PageHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.Error(w, r, apperror.ErrMethodNotAllowed)
}

// Recover renders panics on page routes as the HTML error page.
func (h *PageHandler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%v", rec)
			}
			h.log.Error("panic recovered",
				logger.Error(err),
				slog.String("stack", string(debug.Stack())),
			)
			h.Error(w, r, apperror.ErrInternal.WithInternal(err))
		}()
		next.ServeHTTP(w, r)
	})
}

// Error renders err as an HTML error page with the matching status.
func (h *PageHandler) Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperror.From(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("request error",
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	if r.Method == http.MethodHead {
		return
	}
	if rerr := h.pages.Error(r.URL.Path, appErr.HTTPStatus, appErr.Message).Render(w); rerr != nil {
		h.log.Error("render error page", logger.Error(rerr))
	}
}

func (h *PageHandler) writePage(w http.ResponseWriter, r *http.Request, key string, page g.Node) {
	body, err := h.cache.Render(key, page)
	if err != nil {
		h.Error(w, r, apperror.NewInternal("Failed to render page", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}
