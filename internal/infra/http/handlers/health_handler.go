package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/floobyte/site-api/internal/entity"
)

type HealthHandler struct {
	Env            string
	HasDatabaseURL bool
	Posts          entity.PostRepository
}

func NewHealthHandler(env string, hasDatabaseURL bool, posts entity.PostRepository) *HealthHandler {
	return &HealthHandler{Env: env, HasDatabaseURL: hasDatabaseURL, Posts: posts}
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":             true,
		"env":            h.Env,
		"runtime":        runtime.Version(),
		"hasDatabaseUrl": h.HasDatabaseURL,
		"time":           time.Now().UTC().Format(time.RFC3339),
	})
}

// DB proves the database is reachable by running a real query.
func (h *HealthHandler) DB(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Posts.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"ok":    false,
			"error": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":          true,
		"reachable":   true,
		"sampleCount": len(posts),
	})
}
