// Package report collects benchmark results and stores them as a JSON document.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/natefinch/atomic"

	"github.com/gostonefire/mchashbrowns/internal/model"
)

const filePerms = 0o644

// Run - One benchmark run, Table is only set for workloads that report the table they built
type Run struct {
	Name   string                `json:"name"`
	Count  int                   `json:"count"`
	Result model.BenchmarkResult `json:"result"`
	Table  *model.TableStat      `json:"table,omitempty"`
}

// Report - All runs of one invocation of the benchmark tool
type Report struct {
	Generated     time.Time `json:"generated"`
	HashAlgorithm string    `json:"hash_algorithm"`
	Runs          []Run     `json:"runs"`
}

// New - Returns an empty report stamped with the current time
func New(hashAlgorithm string) *Report {
	return &Report{Generated: time.Now().UTC(), HashAlgorithm: hashAlgorithm, Runs: []Run{}}
}

// Add - Appends a run, table may be nil
func (R *Report) Add(name string, count int, result model.BenchmarkResult, table *model.TableStat) {
	R.Runs = append(R.Runs, Run{Name: name, Count: count, Result: result, Table: table})
}

// Save - Writes the report as indented JSON, replacing any existing file atomically
func (R *Report) Save(path string) error {
	data, err := json.MarshalIndent(R, "", "  ")
	if err != nil {
		return fmt.Errorf("error while encoding report: %w", err)
	}
	data = append(data, '\n')

	if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("error while writing report %s: %w", path, err)
	}

	// atomic.WriteFile does not set permissions for new files
	if err = os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("error while setting permissions of %s: %w", path, err)
	}

	return nil
}

// Load - Reads a report written by Save
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error while reading report %s: %w", path, err)
	}

	var r Report
	if err = json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("error while decoding report %s: %w", path, err)
	}

	return &r, nil
}
