package domain

import "fmt"

// Edge connects two children of the same Subgraph by arena index.
type Edge struct {
	Source  int
	Target  int
	Metrics Metrics
}

// Subgraph is a named directed graph of child nodes. Children live in a dense
// arena with stable indices; edges refer to children by index only.
//
// A Subgraph is mutated while it is being built and must be treated as
// read-only once it has been published in a Topology.
type Subgraph struct {
	name        string
	displayName *string
	entryPoint  string
	root        bool

	children []Node
	edges    []Edge
	// first index per child name; later duplicates never win resolution
	index map[string]int
}

func NewSubgraph(name, entryPoint string) *Subgraph {
	if entryPoint == "" {
		entryPoint = DefaultEntryPoint
	}
	return &Subgraph{
		name:       name,
		entryPoint: entryPoint,
		index:      map[string]int{},
	}
}

// NewRootSubgraph returns a Subgraph rendered as a top-level region.
func NewRootSubgraph(name, entryPoint string) *Subgraph {
	g := NewSubgraph(name, entryPoint)
	g.root = true
	return g
}

func (g *Subgraph) Name() string { return g.name }

func (g *Subgraph) DisplayName() string {
	if g.displayName != nil {
		return *g.displayName
	}
	return g.name
}

func (g *Subgraph) SetDisplayName(displayName string) {
	g.displayName = &displayName
}

func (g *Subgraph) EntryPoint() string { return g.entryPoint }

func (g *Subgraph) IsRoot() bool { return g.root }

func (g *Subgraph) Accept(v Visitor) { v.VisitSubgraph(g) }

func (*Subgraph) sealed() {}

// AddChild appends n to the arena and returns its index.
func (g *Subgraph) AddChild(n Node) int {
	idx := len(g.children)
	g.children = append(g.children, n)
	if _, ok := g.index[n.Name()]; !ok {
		g.index[n.Name()] = idx
	}
	return idx
}

// ChildIndex resolves a name against the direct children only.
func (g *Subgraph) ChildIndex(name string) (int, bool) {
	idx, ok := g.index[name]
	return idx, ok
}

func (g *Subgraph) Child(idx int) Node {
	return g.children[idx]
}

func (g *Subgraph) NumChildren() int { return len(g.children) }

// Children returns the arena in insertion order. Callers must not modify it.
func (g *Subgraph) Children() []Node { return g.children }

// Edges returns the edge list in insertion order. Callers must not modify it.
func (g *Subgraph) Edges() []Edge { return g.edges }

func (g *Subgraph) AddEdge(src, tgt int, m Metrics) error {
	if src < 0 || src >= len(g.children) {
		return fmt.Errorf("subgraph %q: source index %d out of range", g.name, src)
	}
	if tgt < 0 || tgt >= len(g.children) {
		return fmt.Errorf("subgraph %q: target index %d out of range", g.name, tgt)
	}
	g.edges = append(g.edges, Edge{Source: src, Target: tgt, Metrics: m})
	return nil
}

// AddEdgeByName connects two direct children by name. It reports false and
// adds nothing when either endpoint is not a direct child.
func (g *Subgraph) AddEdgeByName(src, tgt string, m Metrics) bool {
	si, ok := g.ChildIndex(src)
	if !ok {
		return false
	}
	ti, ok := g.ChildIndex(tgt)
	if !ok {
		return false
	}
	g.edges = append(g.edges, Edge{Source: si, Target: ti, Metrics: m})
	return true
}
