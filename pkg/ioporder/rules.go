package ioporder

import (
	"sync"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/rawpipe/go-rawpipe/internal/store"
)

// Rule requires every instance of Before to run before any instance of
// After whenever both operations appear in a list.
type Rule struct {
	Before string
	After  string
}

var ruleTable = []Rule{
	{"rawprepare", "invert"},
	{"invert", "temperature"},
	{"temperature", "highlights"},
	{"highlights", "cacorrect"},
	{"cacorrect", "hotpixels"},
	{"hotpixels", "rawdenoise"},
	{"rawdenoise", "demosaic"},
	{"demosaic", "colorin"},
	{"colorin", "colorout"},
	{"colorout", "gamma"},
	{"flip", "crop"},
	{"flip", "clipping"},
	{"ashift", "clipping"},
	{"colorin", "channelmixerrgb"},
}

// Rules returns the mandatory precedence pairs.
func Rules() []Rule {
	out := make([]Rule, len(ruleTable))
	copy(out, ruleTable)
	return out
}

var ruleGraphOnce = sync.OnceValues(buildRuleGraph)

// RuleGraph returns the directed acyclic graph of the precedence rules,
// with one vertex per operation name. The graph is built once and shared.
func RuleGraph() (graph.Graph[string, string], error) {
	return ruleGraphOnce()
}

// buildRuleGraph assembles the rule DAG. Cycle prevention guards against
// contradictory rules ever entering the table.
func buildRuleGraph() (graph.Graph[string, string], error) {
	g := graph.NewWithStore(graph.StringHash,
		graph.Store[string, string](store.New[string, string]()),
		graph.Directed(), graph.PreventCycles())

	for _, r := range ruleTable {
		for _, op := range []string{r.Before, r.After} {
			if err := g.AddVertex(op); err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
				return nil, errors.Wrapf(err, "add vertex %s", op)
			}
		}
		if err := g.AddEdge(r.Before, r.After); err != nil {
			return nil, errors.Wrapf(err, "add rule %s before %s", r.Before, r.After)
		}
	}
	return g, nil
}

// Validate checks the list against every precedence rule. A rule applies
// only when both of its operations are present; it is satisfied when the
// last instance of the earlier operation sorts before the first instance
// of the later one.
func Validate(l *List) error {
	g, err := RuleGraph()
	if err != nil {
		return err
	}

	edges, err := g.Edges()
	if err != nil {
		return errors.Wrap(err, "list rule edges")
	}

	for _, e := range edges {
		last := l.LastOrderOf(e.Source)
		if last == OrderNone {
			continue
		}
		first, ok := l.Lookup(e.Target, AnyInstance)
		if !ok {
			continue
		}
		if last >= first.Order {
			return errors.Wrapf(ErrRuleViolation, "%s must run before %s", e.Source, e.Target)
		}
	}
	return nil
}
