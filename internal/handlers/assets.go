package handlers

import (
	"log/slog"
	"net/http"

	"github.com/chiranperera/inner-most/internal/render"
	"github.com/chiranperera/inner-most/pkg/apperror"
	"github.com/chiranperera/inner-most/pkg/logger"
)

const assetCacheControl = "public, max-age=3600"

// AssetHandler serves the generated non-HTML resources.
type AssetHandler struct {
	pages *render.Pages
	log   *slog.Logger
}

func NewAssetHandler(pages *render.Pages, log *slog.Logger) *AssetHandler {
	return &AssetHandler{pages: pages, log: log.With(logger.Scope("assets"))}
}

func (a *AssetHandler) TokensCSS(w http.ResponseWriter, r *http.Request) {
	writeAsset(w, r, "text/css; charset=utf-8", a.pages.TokensCSS())
}

func (a *AssetHandler) Robots(w http.ResponseWriter, r *http.Request) {
	writeAsset(w, r, "text/plain; charset=utf-8", a.pages.RobotsTxt())
}

func (a *AssetHandler) Manifest(w http.ResponseWriter, r *http.Request) {
	b, err := a.pages.Manifest()
	if err != nil {
		apperror.WriteJSON(w, r, a.log, apperror.NewInternal("Failed to build manifest", err))
		return
	}
	writeAsset(w, r, "application/manifest+json", b)
}

func writeAsset(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", assetCacheControl)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(body)
}
