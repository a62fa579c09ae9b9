// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"math"

	"github.com/HarrisonGreenlee/isohash/compare"
)

// PairMode says how the second graph of a trial is produced.
type PairMode uint8

const (
	// PairIsomorphic relabels the first graph with a random permutation.
	PairIsomorphic PairMode = iota
	// PairIndependent draws a second graph from the same model.
	PairIndependent
)

func (m PairMode) String() string {
	if m == PairIsomorphic {
		return "isomorphic"
	}
	return "independent"
}

// MarshalText lets PairMode appear by name in YAML summaries.
func (m PairMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Scenario is one experiment: Trials pairs for every size in Nodes.
type Scenario struct {
	Name     string
	Nodes    []int
	P        float64
	Directed bool
	Pair     PairMode
	Trials   int
	Rounds   int
	Kinds    []compare.Kind
	// Output is the CSV file name written by WriteReports.
	Output string
}

// Total is the number of trials the scenario runs.
func (s Scenario) Total() int { return len(s.Nodes) * s.Trials }

// Validate reports ErrInvalidScenario for parameters no trial could use.
func (s Scenario) Validate() error {
	switch {
	case s.Name == "":
		return fmt.Errorf("empty name: %w", ErrInvalidScenario)
	case len(s.Nodes) == 0:
		return fmt.Errorf("%s: no node counts: %w", s.Name, ErrInvalidScenario)
	case s.Trials < 1:
		return fmt.Errorf("%s: trials=%d: %w", s.Name, s.Trials, ErrInvalidScenario)
	case s.Rounds < 0:
		return fmt.Errorf("%s: rounds=%d: %w", s.Name, s.Rounds, ErrInvalidScenario)
	case math.IsNaN(s.P) || s.P < 0 || s.P > 1:
		return fmt.Errorf("%s: p=%g: %w", s.Name, s.P, ErrInvalidScenario)
	case len(s.Kinds) == 0:
		return fmt.Errorf("%s: no hash kinds: %w", s.Name, ErrInvalidScenario)
	}
	for _, n := range s.Nodes {
		if n < 1 {
			return fmt.Errorf("%s: nodes=%d: %w", s.Name, n, ErrInvalidScenario)
		}
	}
	return nil
}

// Sweep returns from, from+step, ... up to and including to.
func Sweep(from, to, step int) []int {
	if step < 1 || to < from {
		return nil
	}
	out := make([]int, 0, (to-from)/step+1)
	for n := from; n <= to; n += step {
		out = append(out, n)
	}
	return out
}

// DefaultScenarios returns the standard catalogue:
// isomorphic and independent pairs at 200 vertices in both modes, the dense
// 1000-vertex overflow check, and three size sweeps.
func DefaultScenarios() []Scenario {
	both := []compare.Kind{compare.KindNode, compare.KindEdge}
	return []Scenario{
		{Name: "directed_isomorphic", Nodes: []int{200}, P: 0.5, Directed: true, Pair: PairIsomorphic, Trials: 500, Rounds: 10, Kinds: both},
		{Name: "undirected_isomorphic", Nodes: []int{200}, P: 0.5, Pair: PairIsomorphic, Trials: 500, Rounds: 10, Kinds: both},
		{Name: "directed_nonisomorphic", Nodes: []int{200}, P: 0.5, Directed: true, Pair: PairIndependent, Trials: 500, Rounds: 10, Kinds: both},
		{Name: "undirected_nonisomorphic", Nodes: []int{200}, P: 0.5, Pair: PairIndependent, Trials: 500, Rounds: 10, Kinds: both},
		{Name: "overflow_undirected_isomorphic", Nodes: []int{1000}, P: 0.9, Pair: PairIsomorphic, Trials: 10, Rounds: 10, Kinds: both},
		{Name: "scaling_isomorphic", Nodes: Sweep(10, 990, 10), P: 0.5, Pair: PairIsomorphic, Trials: 1, Rounds: 5, Kinds: both},
		{Name: "scaling_nonisomorphic_nodehash", Nodes: Sweep(100, 3900, 100), P: 0.5, Directed: true, Pair: PairIndependent, Trials: 1, Rounds: 10, Kinds: []compare.Kind{compare.KindNode}},
		{Name: "scaling_nonisomorphic", Nodes: Sweep(10, 990, 10), P: 0.5, Directed: true, Pair: PairIndependent, Trials: 1, Rounds: 10, Kinds: both},
	}
}

// Lookup returns the scenario called name from catalogue, with Output
// defaulted to "<name>.csv".
func Lookup(catalogue []Scenario, name string) (Scenario, error) {
	for _, s := range catalogue {
		if s.Name == name {
			if s.Output == "" {
				s.Output = s.Name + ".csv"
			}
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%q: %w", name, ErrUnknownScenario)
}

// Select resolves names against catalogue; no names selects everything.
func Select(catalogue []Scenario, names []string) ([]Scenario, error) {
	if len(names) == 0 {
		names = make([]string, len(catalogue))
		for i, s := range catalogue {
			names[i] = s.Name
		}
	}
	out := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, err := Lookup(catalogue, name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
