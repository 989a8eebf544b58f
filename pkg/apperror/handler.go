package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Body is the JSON envelope written for errors on machine-facing endpoints.
func Body(err error) map[string]any {
	appErr := From(err)
	return map[string]any{"error": map[string]any{
		"code":    appErr.Code,
		"message": appErr.Message,
	}}
}

// WriteJSON writes err as a JSON error response. 5xx errors are logged.
func WriteJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError && log != nil {
		log.Error("request error",
			slog.Int("status", status),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(Body(err))
}
