// SPDX-License-Identifier: MIT

package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/HarrisonGreenlee/isohash/compare"
)

// Outcome is one engine call of a trial.
type Outcome struct {
	Kind    compare.Kind
	Match   bool
	Elapsed time.Duration
}

// Row is one trial: the graph size, its seed and an Outcome per kind in
// the scenario's Kinds order.
type Row struct {
	Nodes    int
	Seed     uint64
	Outcomes []Outcome
}

// Collector receives trial rows. Begin is called once per scenario before
// any Collect for it; Collect may be called concurrently, once per index in
// [0, total).
type Collector interface {
	Begin(s Scenario, total int)
	Collect(s Scenario, index int, row Row)
}

// Table is an in-memory Collector. Rows are kept in trial-index order, so
// the rendered output does not depend on trial scheduling.
type Table struct {
	mu        sync.Mutex
	order     []string
	scenarios map[string]Scenario
	rows      map[string][]Row
	filled    map[string][]bool
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{
		scenarios: make(map[string]Scenario),
		rows:      make(map[string][]Row),
		filled:    make(map[string][]bool),
	}
}

// Begin implements Collector. Beginning a scenario again discards its rows.
func (t *Table) Begin(s Scenario, total int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, seen := t.scenarios[s.Name]; !seen {
		t.order = append(t.order, s.Name)
	}
	t.scenarios[s.Name] = s
	t.rows[s.Name] = make([]Row, total)
	t.filled[s.Name] = make([]bool, total)
}

// Collect implements Collector. Out-of-range indices are ignored.
func (t *Table) Collect(s Scenario, index int, row Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rows := t.rows[s.Name]
	if index < 0 || index >= len(rows) {
		return
	}
	rows[index] = row
	t.filled[s.Name][index] = true
}

// Scenarios returns the collected scenarios in first-Begin order.
func (t *Table) Scenarios() []Scenario {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Scenario, len(t.order))
	for i, name := range t.order {
		out[i] = t.scenarios[name]
	}
	return out
}

// Rows returns the completed rows of a scenario in trial order.
func (t *Table) Rows(name string) []Row {
	t.mu.Lock()
	defer t.mu.Unlock()
	var out []Row
	for i, row := range t.rows[name] {
		if t.filled[name][i] {
			out = append(out, row)
		}
	}
	return out
}

// Header returns the CSV header of a scenario:
// Nodes, Random_Graph_Seed, then <Kind>_Hash_Result, Elapsed_<Kind>_Hash per kind.
func Header(s Scenario) []string {
	h := []string{"Nodes", "Random_Graph_Seed"}
	for _, k := range s.Kinds {
		h = append(h, k.Title()+"_Hash_Result", "Elapsed_"+k.Title()+"_Hash")
	}
	return h
}

// WriteCSV renders the completed rows of the named scenario.
func (t *Table) WriteCSV(w io.Writer, name string) error {
	t.mu.Lock()
	s, ok := t.scenarios[name]
	t.mu.Unlock()
	if !ok {
		return fmt.Errorf("WriteCSV: %q: %w", name, ErrUnknownScenario)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header(s)); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, row := range t.Rows(name) {
		rec := []string{strconv.Itoa(row.Nodes), strconv.FormatUint(row.Seed, 10)}
		for _, o := range row.Outcomes {
			rec = append(rec, strconv.FormatBool(o.Match), strconv.FormatFloat(o.Elapsed.Seconds(), 'g', -1, 64))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	return nil
}

// KindSummary aggregates one hash kind within a scenario.
type KindSummary struct {
	Kind             compare.Kind `yaml:"kind"`
	Matches          int          `yaml:"matches"`
	Mismatches       int          `yaml:"mismatches"`
	MatchRate        float64      `yaml:"match_rate"`
	MeanElapsedSec   float64      `yaml:"mean_elapsed_seconds"`
	StdDevElapsedSec float64      `yaml:"stddev_elapsed_seconds"`
	MedianElapsedSec float64      `yaml:"median_elapsed_seconds"`
}

// ScenarioSummary aggregates one scenario.
type ScenarioSummary struct {
	Name     string        `yaml:"name"`
	Pair     PairMode      `yaml:"pair"`
	Directed bool          `yaml:"directed"`
	P        float64       `yaml:"p"`
	Rounds   int           `yaml:"rounds"`
	Trials   int           `yaml:"trials"`
	Kinds    []KindSummary `yaml:"kinds"`
}

// Summarize aggregates every collected scenario in Begin order.
func (t *Table) Summarize() []ScenarioSummary {
	var out []ScenarioSummary
	for _, s := range t.Scenarios() {
		rows := t.Rows(s.Name)
		ss := ScenarioSummary{
			Name: s.Name, Pair: s.Pair, Directed: s.Directed,
			P: s.P, Rounds: s.Rounds, Trials: len(rows),
		}
		for ki, k := range s.Kinds {
			ks := KindSummary{Kind: k}
			var elapsed []float64
			for _, row := range rows {
				if ki >= len(row.Outcomes) {
					continue
				}
				o := row.Outcomes[ki]
				if o.Match {
					ks.Matches++
				} else {
					ks.Mismatches++
				}
				elapsed = append(elapsed, o.Elapsed.Seconds())
			}
			if n := len(elapsed); n > 0 {
				ks.MatchRate = float64(ks.Matches) / float64(n)
				ks.MeanElapsedSec, ks.StdDevElapsedSec = stat.MeanStdDev(elapsed, nil)
				if n == 1 {
					ks.StdDevElapsedSec = 0
				}
				slices.Sort(elapsed)
				ks.MedianElapsedSec = stat.Quantile(0.5, stat.Empirical, elapsed, nil)
			}
			ss.Kinds = append(ss.Kinds, ks)
		}
		out = append(out, ss)
	}
	return out
}
