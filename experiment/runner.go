// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/HarrisonGreenlee/isohash/builder"
	"github.com/HarrisonGreenlee/isohash/compare"
	"github.com/HarrisonGreenlee/isohash/matrix"
	"github.com/HarrisonGreenlee/isohash/signature"
)

// tagTrialSeed separates trial seeds from every engine hash domain.
const tagTrialSeed = 0x7472_6961_6c73_6564

// Summary describes one RunAll invocation.
type Summary struct {
	RunID      string            `yaml:"run_id"`
	Seed       uint64            `yaml:"seed"`
	Started    string            `yaml:"started"`
	ElapsedSec float64           `yaml:"elapsed_seconds"`
	Scenarios  []ScenarioSummary `yaml:"scenarios"`
}

// Runner executes scenarios. Trials of one scenario run concurrently on
// performance.trial_workers goroutines; each engine call gets
// performance.engine_workers.
type Runner struct {
	cfg     *Config
	log     zerolog.Logger
	metrics *Metrics
}

// NewRunner creates a Runner. Metrics are collected when metrics.enabled is
// set in cfg.
func NewRunner(cfg *Config, log zerolog.Logger) *Runner {
	r := &Runner{cfg: cfg, log: log}
	if cfg.MetricsEnabled() {
		r.metrics = NewMetrics()
	}
	return r
}

// Metrics returns the runner's collectors, or nil when disabled.
func (r *Runner) Metrics() *Metrics { return r.metrics }

// TrialSeed derives the graph seed of trial index in the named scenario.
// Seeds depend only on the run seed, the scenario name and the index, so a
// trial can be replayed alone.
func TrialSeed(runSeed uint64, name string, index int) uint64 {
	var h signature.Hasher
	h.Start(tagTrialSeed)
	h.Add(runSeed)
	for i := 0; i < len(name); i++ {
		h.Add(uint64(name[i]))
	}
	h.Add(uint64(index))
	return h.Sum()
}

// effective applies config overrides to s.
func (r *Runner) effective(s Scenario) Scenario {
	if t := r.cfg.TrialsOverride(); t > 0 {
		s.Trials = t
	}
	if s.Output == "" {
		s.Output = s.Name + ".csv"
	}
	return s
}

// Run executes every trial of s and hands the rows to c.
// The first trial error cancels the remaining trials and is returned.
func (r *Runner) Run(ctx context.Context, s Scenario, c Collector) error {
	s = r.effective(s)
	if err := s.Validate(); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	total := s.Total()
	log := r.log.With().Str("scenario", s.Name).Logger()
	log.Info().
		Int("trials", total).
		Ints("nodes", s.Nodes).
		Float64("p", s.P).
		Bool("directed", s.Directed).
		Str("pair", s.Pair.String()).
		Msg("Scenario started")

	c.Begin(s, total)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.cfg.TrialWorkers()))
	for i := 0; i < total; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := r.trial(s, i)
			if err != nil {
				return fmt.Errorf("Run: %s trial %d: %w", s.Name, i, err)
			}
			c.Collect(s, i, row)
			r.metrics.ObserveTrial(s.Name)
			log.Debug().Int("trial", i).Int("nodes", row.Nodes).Uint64("seed", row.Seed).Msg("Trial done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Scenario failed")
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Run: %s: %w", s.Name, err)
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("Scenario finished")
	return nil
}

// trial builds one graph pair and compares it with every kind of s.
func (r *Runner) trial(s Scenario, index int) (Row, error) {
	n := s.Nodes[index/s.Trials]
	seed := TrialSeed(r.cfg.Seed(), s.Name, index)

	a, b, err := pair(s, n, seed)
	if err != nil {
		return Row{}, err
	}

	row := Row{Nodes: n, Seed: seed, Outcomes: make([]Outcome, 0, len(s.Kinds))}
	workers := compare.WithWorkers(max(1, r.cfg.EngineWorkers()))
	for _, k := range s.Kinds {
		t0 := time.Now()
		res, err := compare.Run(k, a, b, s.Rounds, workers)
		elapsed := time.Since(t0)
		if err != nil {
			return Row{}, err
		}
		r.metrics.ObserveCompare(k, res.Match, elapsed)
		row.Outcomes = append(row.Outcomes, Outcome{Kind: k, Match: res.Match, Elapsed: elapsed})
	}
	return row, nil
}

// pair draws graph A from G(n,p) and derives B from it per s.Pair.
func pair(s Scenario, n int, seed uint64) (*matrix.Adjacency, *matrix.Adjacency, error) {
	a, err := builder.Build(s.Directed, []builder.BuilderOption{builder.WithSeed(seed)}, builder.ErdosRenyi(n, s.P))
	if err != nil {
		return nil, nil, err
	}

	second := builder.WithSeed(signature.Mix64(seed))
	if s.Pair == PairIsomorphic {
		b, _, err := builder.Isomorphic(a, second)
		return a, b, err
	}
	b, err := builder.Build(s.Directed, []builder.BuilderOption{second}, builder.ErdosRenyi(n, s.P))
	return a, b, err
}

// RunAll runs scenarios in order into t and summarises the run.
func (r *Runner) RunAll(ctx context.Context, scenarios []Scenario, t *Table) (Summary, error) {
	started := time.Now()
	sum := Summary{
		RunID:   uuid.New().String(),
		Seed:    r.cfg.Seed(),
		Started: started.UTC().Format(time.RFC3339),
	}
	r.log.Info().Str("run_id", sum.RunID).Int("scenarios", len(scenarios)).Msg("Run started")

	for _, s := range scenarios {
		if err := r.Run(ctx, s, t); err != nil {
			return sum, err
		}
	}

	sum.ElapsedSec = time.Since(started).Seconds()
	sum.Scenarios = t.Summarize()
	r.log.Info().Str("run_id", sum.RunID).Float64("elapsed_seconds", sum.ElapsedSec).Msg("Run finished")
	return sum, nil
}
