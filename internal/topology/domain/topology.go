package domain

import "sort"

// Topology maps region names to their root Subgraph.
type Topology struct {
	regions map[string]Node
}

func NewTopology() *Topology {
	return &Topology{regions: map[string]Node{}}
}

// Insert registers n under its name. The first registration wins; Insert
// reports false and leaves the registry unchanged for a duplicate name.
func (t *Topology) Insert(n Node) bool {
	if _, ok := t.regions[n.Name()]; ok {
		return false
	}
	t.regions[n.Name()] = n
	return true
}

func (t *Topology) Lookup(name string) (Node, bool) {
	n, ok := t.regions[name]
	return n, ok
}

// Names returns all region names in ascending byte order.
func (t *Topology) Names() []string {
	out := make([]string, 0, len(t.regions))
	for k := range t.regions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func (t *Topology) Len() int { return len(t.regions) }
