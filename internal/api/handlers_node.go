package api

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/jultty/en/internal/graph"
	"github.com/jultty/en/internal/markup"
)

type nodePage struct {
	Site     site
	Title    string
	Node     graph.Node
	Text     template.HTML
	Incoming []graph.Edge
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g := s.store.Graph()

	node, ok := g.FindNode(id)
	if !ok {
		s.renderError(w, http.StatusNotFound, fmt.Sprintf("Could not find node %s.", id))
		return
	}
	if node.ID != id {
		http.Redirect(w, r, "/node/"+url.PathEscape(node.ID), http.StatusPermanentRedirect)
		return
	}

	text, err := markup.Parse(node.Text, markupOptions(g))
	if err != nil {
		s.log.Error("node render failed", "node", node.ID, "error", err)
		s.renderError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to render node %s.", node.ID))
		return
	}

	s.render(w, http.StatusOK, "node.html", nodePage{
		Site:     s.site(g),
		Title:    node.Title,
		Node:     node,
		Text:     template.HTML(text),
		Incoming: g.Incoming[node.ID],
	})
}
