// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File names written next to the per-scenario CSVs.
const (
	SummaryFile = "summary.yaml"
	MetricsFile = "metrics.prom"
)

// WriteReports writes one CSV per scenario in t, the run summary and, when
// m is non-nil, a metrics snapshot into dir.
func WriteReports(dir string, t *Table, sum Summary, m *Metrics) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("WriteReports: %w", err)
	}

	for _, s := range t.Scenarios() {
		name := s.Output
		if name == "" {
			name = s.Name + ".csv"
		}
		if err := writeFile(filepath.Join(dir, name), func(w io.Writer) error {
			return t.WriteCSV(w, s.Name)
		}); err != nil {
			return fmt.Errorf("WriteReports: %w", err)
		}
	}

	if err := writeFile(filepath.Join(dir, SummaryFile), func(w io.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sum); err != nil {
			return err
		}
		return enc.Close()
	}); err != nil {
		return fmt.Errorf("WriteReports: %w", err)
	}

	if m == nil {
		return nil
	}
	if err := writeFile(filepath.Join(dir, MetricsFile), m.WriteText); err != nil {
		return fmt.Errorf("WriteReports: %w", err)
	}
	return nil
}

func writeFile(path string, fill func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fill(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
