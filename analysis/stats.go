package analysis

import (
	"log/slog"
	"time"
)

// GraphStats describes the graph of one movement type.
type GraphStats struct {
	Type  string
	Nodes int
	Edges int
}

// Stats summarizes an analyzed map for logging and reports.
type Stats struct {
	Graphs       []GraphStats
	DijkstraRuns int
	Openness     map[string]OpennessSummary
	Bases        int
	Starts       int
	ChokesFound  int
	Elapsed      time.Duration
}

// Stats collects the current summary; DijkstraRuns grows as the engine is
// queried.
func (m *Map) Stats() Stats {
	s := Stats{
		DijkstraRuns: m.engine.Runs(),
		Openness:     make(map[string]OpennessSummary),
		Bases:        len(m.bases),
		Starts:       len(m.chokes),
		Elapsed:      m.elapsed,
	}
	for _, t := range m.engine.Types() {
		g := m.engine.Graph(t)
		s.Graphs = append(s.Graphs, GraphStats{Type: t.String(), Nodes: g.Len(), Edges: g.EdgeCount()})
		if sum, ok := m.OpennessStats(t); ok {
			s.Openness[t.String()] = sum
		}
	}
	for _, r := range m.chokes {
		if r.Found {
			s.ChokesFound++
		}
	}

	return s
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("dijkstra_runs", s.DijkstraRuns),
		slog.Int("bases", s.Bases),
		slog.Int("starts", s.Starts),
		slog.Int("chokes_found", s.ChokesFound),
		slog.Duration("elapsed", s.Elapsed),
	}
	for _, g := range s.Graphs {
		attrs = append(attrs, slog.Group(g.Type,
			slog.Int("nodes", g.Nodes),
			slog.Int("edges", g.Edges)))
		if o, ok := s.Openness[g.Type]; ok {
			attrs = append(attrs, slog.Group("openness_"+g.Type,
				slog.Float64("max", o.Max),
				slog.Float64("avg", o.Average),
				slog.Int("passes", o.Passes)))
		}
	}

	return slog.GroupValue(attrs...)
}
