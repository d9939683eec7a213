package mapper

import (
	"github.com/charmbracelet/log"

	"github.com/GoSim-25-26J-441/observatory/internal/topology/domain"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/ingest/parser"
)

// Report counts what a Builder produced and what it had to skip.
type Report struct {
	Regions            int      `json:"regions" yaml:"regions"`
	Subgraphs          int      `json:"subgraphs" yaml:"subgraphs"`
	Leaves             int      `json:"leaves" yaml:"leaves"`
	Edges              int      `json:"edges" yaml:"edges"`
	SkippedConnections int      `json:"skipped_connections" yaml:"skipped_connections"`
	DuplicateRegions   []string `json:"duplicate_regions" yaml:"duplicate_regions"`
}

// Builder turns parsed records into topology nodes. A Builder is not safe
// for concurrent use; each load should use its own.
type Builder struct {
	logger *log.Logger
	report Report
}

func NewBuilder(logger *log.Logger) *Builder {
	return &Builder{logger: logger, report: Report{DuplicateRegions: []string{}}}
}

func (b *Builder) Report() Report { return b.report }

// Build converts r and its descendants. A record with at least one child
// node becomes a Subgraph, anything else a Leaf. Only direct children of a
// record are candidates when its connections are resolved.
func (b *Builder) Build(r parser.YRegion, isRoot bool) domain.Node {
	if len(r.Nodes) == 0 {
		b.logger.Debug("creating leaf node", "name", r.Name)
		if len(r.Connections) > 0 {
			b.logger.Debug("ignoring connections on leaf node", "name", r.Name, "count", len(r.Connections))
		}
		b.report.Leaves++
		return domain.NewLeaf(r.Name, r.DisplayName)
	}

	b.logger.Debug("creating graph node", "name", r.Name, "root", isRoot)
	entry := domain.DefaultEntryPoint
	if r.EntryPoint != nil {
		entry = *r.EntryPoint
	}
	var g *domain.Subgraph
	if isRoot {
		g = domain.NewRootSubgraph(r.Name, entry)
	} else {
		g = domain.NewSubgraph(r.Name, entry)
	}
	if r.DisplayName != nil {
		g.SetDisplayName(*r.DisplayName)
	}
	b.report.Subgraphs++

	for _, c := range r.Nodes {
		n := b.Build(c, false)
		b.logger.Debug("adding node to graph", "graph", r.Name, "node", n.Name())
		g.AddChild(n)
	}

	for _, c := range r.Connections {
		for _, tgt := range c.Targets {
			if g.AddEdgeByName(c.Source, tgt, domain.DefaultMetrics()) {
				b.logger.Debug("connected", "graph", r.Name, "source", c.Source, "target", tgt)
				b.report.Edges++
				continue
			}
			b.logger.Warn("couldn't add connection", "graph", r.Name, "source", c.Source, "target", tgt)
			b.report.SkippedConnections++
		}
	}

	return g
}

// Load builds every region as a root subgraph and registers it under its
// name. A region whose name is already registered is dropped.
func (b *Builder) Load(regions []parser.YRegion) *domain.Topology {
	t := domain.NewTopology()
	for _, r := range regions {
		if _, exists := t.Lookup(r.Name); exists {
			b.logger.Warn("topology already contains root, skipping", "name", r.Name)
			b.report.DuplicateRegions = append(b.report.DuplicateRegions, r.Name)
			continue
		}
		t.Insert(b.Build(r, true))
		b.report.Regions++
	}
	return t
}

// ToTopology builds a fresh Topology from a parsed document.
func ToTopology(f *parser.YFile, logger *log.Logger) (*domain.Topology, Report) {
	b := NewBuilder(logger)
	t := b.Load(f.Regions)
	return t, b.Report()
}
