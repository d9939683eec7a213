package vizceral

import "github.com/GoSim-25-26J-441/observatory/internal/topology/domain"

// Translate converts n and its descendants into the wire schema. It does not
// modify n, so repeated calls on the same node produce equal documents.
func Translate(n domain.Node) Node {
	var t translator
	n.Accept(&t)
	return t.out
}

type translator struct {
	out Node
}

func (t *translator) VisitLeaf(l *domain.Leaf) {
	t.out = Node{
		Renderer:    RendererFocusedChild,
		Name:        l.Name(),
		DisplayName: ptr(l.DisplayName()),
	}
}

func (t *translator) VisitSubgraph(g *domain.Subgraph) {
	renderer := RendererRegion
	if g.IsRoot() {
		renderer = RendererGlobal
	}

	children := g.Children()
	nodes := make([]Node, 0, len(children))
	for _, c := range children {
		nodes = append(nodes, Translate(c))
	}

	edges := g.Edges()
	conns := make([]Connection, 0, len(edges))
	for _, e := range edges {
		conns = append(conns, Connection{
			Source:  g.Child(e.Source).Name(),
			Target:  g.Child(e.Target).Name(),
			Metrics: fromMetrics(e.Metrics),
		})
	}

	t.out = Node{
		Renderer:    renderer,
		Name:        g.Name(),
		DisplayName: ptr(g.DisplayName()),
		EntryNode:   ptr(g.EntryPoint()),
		Nodes:       nodes,
		Connections: conns,
	}
}

func fromMetrics(m domain.Metrics) *Metrics {
	return &Metrics{Normal: m.Normal, Warning: m.Warning, Danger: m.Danger}
}

func ptr[T any](v T) *T { return &v }
