package api

import (
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/jultty/en/internal/graph"
	"github.com/jultty/en/internal/markup"
)

const defaultSiteTitle = "en"

type indexPage struct {
	Site     site
	Title    string
	Messages []string
	Root     *graph.Node
	Nodes    []graph.Node
}

type branch struct {
	Node     graph.Node
	Incoming []graph.Edge
}

type treePage struct {
	Site     site
	Title    string
	Branches []branch
}

type textPage struct {
	Site  site
	Title string
	Text  template.HTML
}

func markupOptions(g graph.Graph) markup.Options {
	return markup.Options{ASCIIIdentifiers: g.Meta.Config.ASCIIDOMIDs}
}

// markupHTML renders wiki text for a page. Text that fails to parse is
// shown escaped instead.
func (s *Server) markupHTML(g graph.Graph, text, where string) template.HTML {
	out, err := markup.Parse(text, markupOptions(g))
	if err != nil {
		s.log.Warn("markup render failed", "where", where, "error", err)
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(out)
}

func (s *Server) site(g graph.Graph) site {
	title := g.Meta.Config.SiteTitle
	if title == "" {
		title = defaultSiteTitle
	}
	return site{
		Title:  title,
		Footer: s.markupHTML(g, g.Meta.Config.FooterText, "footer"),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	g := s.store.Graph()
	data := indexPage{
		Site:     s.site(g),
		Messages: g.Meta.Messages,
		Nodes:    g.Visible(),
	}
	if root, ok := g.Root(); ok {
		data.Root = &root
	}
	s.render(w, http.StatusOK, "index.html", data)
}

// handleSearch redirects the search form to the node it names.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.FormValue("node"))
	if id == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/node/"+url.PathEscape(id), http.StatusPermanentRedirect)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	g := s.store.Graph()
	nodes := g.Visible()
	branches := make([]branch, 0, len(nodes))
	for _, n := range nodes {
		branches = append(branches, branch{Node: n, Incoming: g.Incoming[n.ID]})
	}
	s.render(w, http.StatusOK, "tree.html", treePage{
		Site:     s.site(g),
		Title:    "Tree",
		Branches: branches,
	})
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	g := s.store.Graph()
	s.render(w, http.StatusOK, "about.html", textPage{
		Site:  s.site(g),
		Title: "About",
		Text:  s.markupHTML(g, g.Meta.Config.AboutText, "about"),
	})
}

func (s *Server) handleAcknowledgments(w http.ResponseWriter, r *http.Request) {
	g := s.store.Graph()
	s.render(w, http.StatusOK, "acknowledgments.html", textPage{
		Site:  s.site(g),
		Title: "Acknowledgments",
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, http.StatusNotFound, "Nothing lives at "+r.URL.Path+".")
}
