package graph

import (
	"cmp"
	"slices"
)

// Populate derives everything a loaded graph does not store: node ids and
// default titles, edge sources, detached flags, edges for plain links,
// incoming edges and the case-insensitive key map. Links are folded into
// Connections and cleared, so a populated graph serializes each edge once
// and populating it again is a no-op.
func Populate(g Graph) Graph {
	nodes := make(map[string]Node, len(g.Nodes))
	for key, node := range g.Nodes {
		edges := make([]Edge, 0, len(node.Connections)+len(node.Links))
		for _, e := range node.Connections {
			if e.From == "" {
				e.From = key
			}
			_, exists := g.Nodes[e.To]
			e.Detached = !exists
			edges = append(edges, e)
		}
		for _, link := range node.Links {
			_, exists := g.Nodes[link]
			edges = append(edges, Edge{From: key, To: link, Detached: !exists})
		}

		node.ID = key
		if node.Title == "" {
			node.Title = key
		}
		node.Connections = edges
		node.Links = nil
		nodes[key] = node
	}

	g.Nodes = nodes
	g.Incoming = incoming(nodes)
	g.keymap = keymap(nodes)
	return g
}

func incoming(nodes map[string]Node) map[string][]Edge {
	in := make(map[string][]Edge)
	for _, node := range nodes {
		for _, e := range node.Connections {
			in[e.To] = append(in[e.To], e)
		}
	}
	for _, edges := range in {
		slices.SortFunc(edges, func(a, b Edge) int {
			return cmp.Or(cmp.Compare(a.From, b.From), cmp.Compare(a.Anchor, b.Anchor))
		})
	}
	return in
}

func keymap(nodes map[string]Node) map[string]string {
	m := make(map[string]string, len(nodes))
	for key := range nodes {
		m[fold(key)] = key
	}
	return m
}
