package service

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/GoSim-25-26J-441/observatory/internal/metrics"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/domain"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/ingest/mapper"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/ingest/parser"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/ingest/validator"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/vizceral"
)

// Snapshot is one fully built, immutable generation of the topology.
type Snapshot struct {
	Topology *domain.Topology
	Report   mapper.Report
	LoadedAt time.Time
}

// TopologyService publishes topology snapshots and answers state queries.
//
// Readers load the current snapshot pointer once and work on it without
// locking. A load builds a complete new snapshot before swapping it in, so a
// reader sees either the old or the new generation, never a mix.
type TopologyService struct {
	path    string
	logger  *log.Logger
	metrics *metrics.Registry

	current atomic.Pointer[Snapshot]
}

func NewTopologyService(path string, logger *log.Logger, m *metrics.Registry) *TopologyService {
	return &TopologyService{
		path:    path,
		logger:  logger,
		metrics: m,
	}
}

func (s *TopologyService) Path() string { return s.path }

// Load reads the source file and publishes the result. On error the
// previously published snapshot, if any, stays in place.
func (s *TopologyService) Load() (*Snapshot, error) {
	f, err := parser.ParseFile(s.path)
	if err != nil {
		s.metrics.TopologyLoadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	if err := validator.Validate(f); err != nil {
		s.metrics.TopologyLoadsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return s.Publish(f), nil
}

// Publish builds a snapshot from an already parsed document and makes it
// current.
func (s *TopologyService) Publish(f *parser.YFile) *Snapshot {
	start := time.Now()
	t, report := mapper.ToTopology(f, s.logger)
	snap := &Snapshot{Topology: t, Report: report, LoadedAt: time.Now()}

	s.current.Store(snap)

	s.metrics.TopologyLoadsTotal.WithLabelValues("ok").Inc()
	s.metrics.TopologyRegions.Set(float64(t.Len()))
	s.metrics.TopologyEdges.Set(float64(report.Edges))
	s.metrics.TopologyLoadedAt.Set(float64(snap.LoadedAt.Unix()))
	s.metrics.TopologySkippedConnections.Add(float64(report.SkippedConnections))
	s.metrics.TopologyDuplicateRegions.Add(float64(len(report.DuplicateRegions)))

	s.logger.Info("topology published",
		"regions", report.Regions,
		"subgraphs", report.Subgraphs,
		"leaves", report.Leaves,
		"edges", report.Edges,
		"skipped", report.SkippedConnections,
		"duplicates", len(report.DuplicateRegions),
		"took", time.Since(start).Round(time.Microsecond),
	)
	return snap
}

// Snapshot returns the current generation, or nil before the first load.
func (s *TopologyService) Snapshot() *Snapshot {
	return s.current.Load()
}

// Names lists the registered regions in ascending order.
func (s *TopologyService) Names() []string {
	snap := s.current.Load()
	if snap == nil {
		return []string{}
	}
	return snap.Topology.Names()
}

// Region returns the named root node of the current snapshot.
func (s *TopologyService) Region(name string) (domain.Node, bool) {
	snap := s.current.Load()
	if snap == nil {
		return nil, false
	}
	return snap.Topology.Lookup(name)
}

// State translates the named region into the wire schema. The boolean is
// false when no region has that name.
func (s *TopologyService) State(name string) (vizceral.Node, bool) {
	snap := s.current.Load()
	if snap == nil {
		s.metrics.StateLookupsTotal.WithLabelValues("miss").Inc()
		return vizceral.Node{}, false
	}
	n, ok := snap.Topology.Lookup(name)
	if !ok {
		s.metrics.StateLookupsTotal.WithLabelValues("miss").Inc()
		return vizceral.Node{}, false
	}
	s.metrics.StateLookupsTotal.WithLabelValues("hit").Inc()
	return vizceral.Translate(n), true
}
