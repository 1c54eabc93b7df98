package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jultty/en/internal/graph"
)

// handleGraph serves the loaded graph serialized in the requested format.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	f, err := graph.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		s.renderError(w, http.StatusNotFound, err.Error())
		return
	}
	data, err := graph.Serialize(f, s.store.Graph())
	if err != nil {
		s.log.Error("graph serialize failed", "format", f, "error", err)
		s.renderError(w, http.StatusInternalServerError, "Failed to serialize graph.")
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	w.Write(data)
}
