// internal/app/features/home/handler.go
package home

import "net/http"

// Handler serves the root banner. Deploy targets poke this to see that the
// process is up without touching the database.
type Handler struct{}

// NewHandler constructs a home Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("LessonHub utility bill and life lessons API"))
}
