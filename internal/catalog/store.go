// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists pump specifications in a local SQLite database.
// Spec files are ingested from catalog/specs/, one pump per YAML file, and
// queried by the CLI. The engine itself never touches the catalog: it takes
// specifications as plain inputs, so this package is supporting
// infrastructure, not part of the computation core.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pump-select/internal/hydraulic"
	"github.com/pdiddy/pump-select/pkg/types"
)

const (
	specsDir = "specs"
	indexDir = "index"
	dbFile   = "pumps.db"
)

// Store manages the pump catalog SQLite database.
type Store struct {
	db         *sql.DB
	catalogDir string
	maxResults int
}

// NewStore opens or creates the catalog database at
// catalogDir/index/pumps.db, creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.CatalogDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 50
	}

	s := &Store{
		db:         db,
		catalogDir: cfg.CatalogDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS pumps (
			id TEXT PRIMARY KEY,
			manufacturer TEXT,
			model TEXT,
			size TEXT,
			speed REAL,
			stages INTEGER,
			impeller_diameter REAL,
			motor_power REAL,
			price REAL,
			curve TEXT NOT NULL,
			min_flow REAL,
			max_flow REAL,
			shutoff_head REAL,
			best_efficiency REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_pumps_manufacturer ON pumps(manufacturer)`,
		`CREATE INDEX IF NOT EXISTS idx_pumps_flow_range ON pumps(min_flow, max_flow)`,
		`CREATE TABLE IF NOT EXISTS ingest_status (
			pump_id TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from a catalog ingest run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of spec files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest reads pump spec YAML files from catalogDir/specs/ and populates
// the database. Files unchanged since the last run are skipped; a file
// with a structurally invalid curve fails individually without aborting
// the batch. A curve whose head rises with flow is ingested with a warning,
// since parallel combination of such a pump will be rejected later.
func (s *Store) Ingest(ctx context.Context, w io.Writer) (IngestSummary, error) {
	dir := filepath.Join(s.catalogDir, specsDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading specs directory %s: %w", dir, err)
	}

	var summary IngestSummary

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		name := strings.TrimSuffix(entry.Name(), ".yaml")
		filePath := filepath.Join(dir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM ingest_status WHERE pump_id = ?`, name,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", name)
			summary.Skipped++
			continue
		}

		isUpdate := err == nil

		pump, err := readSpecFile(filePath)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}
		if pump.ID == "" {
			pump.ID = name
		}

		if !headNonIncreasing(pump.Curve) {
			fmt.Fprintf(w, "warning: %s: head rises with flow; parallel combination will reject this curve\n", pump.ID)
		}

		if err := s.upsertPump(ctx, pump, modTime); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		if isUpdate {
			fmt.Fprintf(w, "updated %s\n", pump.ID)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s\n", pump.ID)
			summary.Indexed++
		}
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	if summary.Indexed > 0 || summary.Updated > 0 {
		if err := s.ExportYAML(ctx); err != nil {
			fmt.Fprintf(w, "warning: export.yaml write failed: %v\n", err)
		}
	}

	return summary, nil
}

// readSpecFile parses and validates one pump spec file.
func readSpecFile(path string) (types.PumpSpecification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PumpSpecification{}, err
	}
	var pump types.PumpSpecification
	if err := yaml.Unmarshal(data, &pump); err != nil {
		return types.PumpSpecification{}, fmt.Errorf("parse error: %w", err)
	}
	if err := hydraulic.ValidateCurve(pump.Curve); err != nil {
		return types.PumpSpecification{}, err
	}
	return pump, nil
}

func (s *Store) upsertPump(ctx context.Context, pump types.PumpSpecification, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	curveJSON, err := json.Marshal(pump.Curve)
	if err != nil {
		return fmt.Errorf("marshaling curve: %w", err)
	}

	bep, err := hydraulic.BestEfficiencyPoint(pump.Curve)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO pumps (id, manufacturer, model, size, speed, stages, impeller_diameter,
			motor_power, price, curve, min_flow, max_flow, shutoff_head, best_efficiency)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			manufacturer=excluded.manufacturer, model=excluded.model, size=excluded.size,
			speed=excluded.speed, stages=excluded.stages,
			impeller_diameter=excluded.impeller_diameter, motor_power=excluded.motor_power,
			price=excluded.price, curve=excluded.curve, min_flow=excluded.min_flow,
			max_flow=excluded.max_flow, shutoff_head=excluded.shutoff_head,
			best_efficiency=excluded.best_efficiency`,
		pump.ID, pump.Manufacturer, pump.Model, pump.Size, pump.Speed, pump.Stages,
		pump.ImpellerDiameter, pump.MotorPower, pump.Price, string(curveJSON),
		pump.Curve.MinFlow(), pump.Curve.MaxFlow(), pump.Curve[0].Head, bep.Efficiency,
	)
	if err != nil {
		return fmt.Errorf("upserting pump: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO ingest_status (pump_id, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(pump_id) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		pump.ID, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating ingest status: %w", err)
	}

	return tx.Commit()
}

// headNonIncreasing reports whether head never rises as flow increases,
// the expected centrifugal characteristic.
func headNonIncreasing(c types.Curve) bool {
	for i := 1; i < len(c); i++ {
		if c[i].Head > c[i-1].Head {
			return false
		}
	}
	return true
}
