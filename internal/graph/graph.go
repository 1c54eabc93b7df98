package graph

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// emptyMessage is recorded in graphs that could not be loaded.
const emptyMessage = "This graph is empty or in error"

// Graph is the whole wiki: its nodes, the root node id and site settings.
type Graph struct {
	Meta     Meta            `toml:"meta" json:"meta" yaml:"meta"`
	RootNode string          `toml:"root_node" json:"root_node" yaml:"root_node"`
	Nodes    map[string]Node `toml:"nodes" json:"nodes" yaml:"nodes"`

	// Incoming maps a node id to the edges pointing at it.
	Incoming map[string][]Edge `toml:"-" json:"-" yaml:"-"`

	keymap map[string]string
}

// Meta carries load messages and site-wide configuration.
type Meta struct {
	Messages []string   `toml:"messages,omitempty" json:"messages,omitempty" yaml:"messages,omitempty"`
	Config   WikiConfig `toml:"config" json:"config" yaml:"config"`
}

// WikiConfig holds settings edited alongside the content.
type WikiConfig struct {
	SiteTitle  string `toml:"site_title,omitempty" json:"site_title,omitempty" yaml:"site_title,omitempty"`
	FooterText string `toml:"footer_text,omitempty" json:"footer_text,omitempty" yaml:"footer_text,omitempty"`
	AboutText  string `toml:"about_text,omitempty" json:"about_text,omitempty" yaml:"about_text,omitempty"`
	// ASCIIDOMIDs restricts header ids to ASCII.
	ASCIIDOMIDs bool `toml:"ascii_dom_ids" json:"ascii_dom_ids" yaml:"ascii_dom_ids"`
}

// Node is a single wiki page.
type Node struct {
	ID          string   `toml:"id,omitempty" json:"id,omitempty" yaml:"id,omitempty"`
	Title       string   `toml:"title,omitempty" json:"title,omitempty" yaml:"title,omitempty"`
	Text        string   `toml:"text" json:"text" yaml:"text"`
	Links       []string `toml:"links,omitempty" json:"links,omitempty" yaml:"links,omitempty"`
	Hidden      bool     `toml:"hidden,omitempty" json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Connections []Edge   `toml:"connections,omitempty" json:"connections,omitempty" yaml:"connections,omitempty"`
}

// Edge is a directed connection between two nodes. Detached edges point
// at nodes that do not exist.
type Edge struct {
	Anchor   string `toml:"anchor,omitempty" json:"anchor,omitempty" yaml:"anchor,omitempty"`
	From     string `toml:"from,omitempty" json:"from,omitempty" yaml:"from,omitempty"`
	To       string `toml:"to" json:"to" yaml:"to"`
	Detached bool   `toml:"detached,omitempty" json:"detached,omitempty" yaml:"detached,omitempty"`
}

// Empty returns a graph with no nodes and a single message explaining why.
func Empty(message string) Graph {
	if message == "" {
		message = emptyMessage
	}
	return Graph{
		Meta:     Meta{Messages: []string{message}},
		Nodes:    map[string]Node{},
		Incoming: map[string][]Edge{},
		keymap:   map[string]string{},
	}
}

// Root returns the root node, if it exists.
func (g Graph) Root() (Node, bool) {
	n, ok := g.Nodes[g.RootNode]
	return n, ok
}

// FindNode looks a node up by id, falling back to a case-insensitive match.
func (g Graph) FindNode(id string) (Node, bool) {
	if n, ok := g.Nodes[id]; ok {
		return n, true
	}
	key, ok := g.keymap[fold(id)]
	if !ok {
		return Node{}, false
	}
	n, ok := g.Nodes[key]
	return n, ok
}

// Visible returns the nodes not marked hidden, ordered by title.
func (g Graph) Visible() []Node {
	nodes := make([]Node, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if !n.Hidden {
			nodes = append(nodes, n)
		}
	}
	slices.SortFunc(nodes, func(a, b Node) int {
		if c := strings.Compare(fold(a.Title), fold(b.Title)); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return nodes
}

func fold(s string) string {
	return cases.Fold().String(s)
}
