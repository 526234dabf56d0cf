package http

import "net/http"

// health is a plain-text liveness probe. It reports only that the process
// accepts requests; it deliberately does not touch the database.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
