// Package codec renders a matching Report as text, YAML or JSON.
package codec

import (
	"fmt"
	"io"
	"sort"

	"github.com/ronylevy1/algo9/bipartite"
)

// Exporter interface for exporting reports to various formats
type Exporter interface {
	Export(r *Report, w io.Writer) error
	Format() string
}

// Importer interface for reading reports back from structured formats
type Importer interface {
	Parse(r io.Reader) (*Report, error)
	Format() string
}

// Report is the serializable result of one driver invocation.
type Report struct {
	Seed  int64                    `json:"seed" yaml:"seed"`
	Left  []string                 `json:"left" yaml:"left"`
	Right []string                 `json:"right" yaml:"right"`
	Edges []bipartite.WeightedEdge `json:"edges" yaml:"edges"`
	Runs  []Run                    `json:"runs" yaml:"runs"`
}

// Run is one matching together with its stages.
type Run struct {
	Index int `json:"index" yaml:"index"`
	// Attempts counts GreedyMatch calls spent on this run.
	Attempts    int                      `json:"attempts" yaml:"attempts"`
	Matching    []bipartite.WeightedEdge `json:"matching" yaml:"matching"`
	TotalWeight float64                  `json:"total_weight" yaml:"total_weight"`
	Stages      []Stage                  `json:"stages,omitempty" yaml:"stages,omitempty"`
}

// Stage lists the edges remaining after Step accepted edges.
type Stage struct {
	Step  int                      `json:"step" yaml:"step"`
	Edges []bipartite.WeightedEdge `json:"edges" yaml:"edges"`
}

// NewRun converts a matching and, when withStages is set, its snapshots.
func NewRun(index, attempts int, m bipartite.Matching, snaps []bipartite.Snapshot, withStages bool) Run {
	run := Run{
		Index:       index,
		Attempts:    attempts,
		Matching:    append([]bipartite.WeightedEdge{}, m...),
		TotalWeight: m.TotalWeight(),
	}
	if withStages {
		run.Stages = make([]Stage, len(snaps))
		for i, s := range snaps {
			run.Stages[i] = Stage{Step: s.Step(), Edges: s.Edges()}
		}
	}
	return run
}

var exporters = map[string]func() Exporter{
	"text": func() Exporter { return NewTextCodec() },
	"yaml": func() Exporter { return NewYAMLCodec() },
	"json": func() Exporter { return NewJSONCodec() },
}

// ForFormat returns the exporter registered under format.
func ForFormat(format string) (Exporter, error) {
	mk, ok := exporters[format]
	if !ok {
		return nil, fmt.Errorf("unknown report format %q (have %v)", format, Formats())
	}
	return mk(), nil
}

// Formats lists the registered format identifiers.
func Formats() []string {
	out := make([]string, 0, len(exporters))
	for f := range exporters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
