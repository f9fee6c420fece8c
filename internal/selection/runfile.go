// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selection

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pump-select/pkg/types"
)

// RunFile is the on-disk representation of a selection run: the criteria
// and configuration that produced it plus the ranked results. A run can be
// saved and reloaded later without re-evaluating the catalog.
type RunFile struct {
	Criteria types.SelectionCriteria `yaml:"criteria"`
	Config   types.SelectionConfig   `yaml:"config"`
	Results  []types.PumpPerformance `yaml:"results"`
	Summary  RunSummary              `yaml:"summary"`
}

// RunSummary stores batch statistics and a timestamp.
type RunSummary struct {
	Feasible        int       `yaml:"feasible"`
	Infeasible      int       `yaml:"infeasible"`
	CandidateErrors []string  `yaml:"candidate_errors,omitempty"`
	Timestamp       time.Time `yaml:"timestamp"`
}

// WriteRunFile saves criteria, config, and results to a YAML file.
func WriteRunFile(path string, criteria types.SelectionCriteria, cfg types.SelectionConfig, out Output) error {
	rf := RunFile{
		Criteria: criteria,
		Config:   cfg,
		Results:  out.Results,
		Summary: RunSummary{
			Feasible:        len(out.Results),
			Infeasible:      out.Infeasible,
			CandidateErrors: out.CandidateErrors,
			Timestamp:       time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing run file %s: %w", path, err)
	}
	return nil
}

// ReadRunFile loads a previously saved selection run.
func ReadRunFile(path string) (RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunFile{}, fmt.Errorf("reading run file %s: %w", path, err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return RunFile{}, fmt.Errorf("parsing run file %s: %w", path, err)
	}
	return rf, nil
}
