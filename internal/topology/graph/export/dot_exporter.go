package export

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/observatory/internal/topology/domain"
)

// ToDOT renders n as a Graphviz digraph. Nested subgraphs become clusters;
// every subgraph also gets an anchor node so that edges drawn at its parent's
// level have something to point at.
func ToDOT(n domain.Node, title string) string {
	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=LR;\n  compound=true;\n  node [shape=box, style=rounded];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label=%q; fontname="Helvetica";`, title))
		b.WriteString("\n")
	}

	w := &dotWriter{b: &b, depth: 1}
	n.Accept(w)

	b.WriteString("}\n")
	return b.String()
}

type dotWriter struct {
	b     *strings.Builder
	depth int
	// path of the enclosing subgraph, used to build unique node ids
	parent string
}

func (w *dotWriter) id(name string) string {
	return nodePath(name, w.parent)
}

func (w *dotWriter) indent() string {
	return strings.Repeat("  ", w.depth)
}

func (w *dotWriter) VisitLeaf(l *domain.Leaf) {
	fmt.Fprintf(w.b, "%s%q [label=%q, shape=box, style=\"rounded,filled\", fillcolor=\"#eef6ff\"];\n",
		w.indent(), w.id(l.Name()), l.DisplayName())
}

func (w *dotWriter) VisitSubgraph(g *domain.Subgraph) {
	self := w.id(g.Name())
	ind := w.indent()

	fmt.Fprintf(w.b, "%ssubgraph %q {\n", ind, "cluster_"+self)
	fmt.Fprintf(w.b, "%s  label=%q;\n", ind, g.DisplayName())
	fmt.Fprintf(w.b, "%s  %q [label=%q, shape=folder, style=\"filled\", fillcolor=\"#fff3cd\", tooltip=%q];\n",
		ind, self, g.DisplayName(), "entry: "+g.EntryPoint())

	inner := &dotWriter{b: w.b, depth: w.depth + 1, parent: self}
	for _, c := range g.Children() {
		c.Accept(inner)
	}
	for i, e := range g.Edges() {
		src := inner.id(g.Child(e.Source).Name())
		tgt := inner.id(g.Child(e.Target).Name())
		fmt.Fprintf(w.b, "%s  %q -> %q [tooltip=\"edge#%d\", label=\"%.0f/%.0f/%.0f\"];\n",
			ind, src, tgt, i, e.Metrics.Normal, e.Metrics.Warning, e.Metrics.Danger)
	}

	fmt.Fprintf(w.b, "%s}\n", ind)
}

// nodePath joins a node name onto its parent's path.
func nodePath(name, parent string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
