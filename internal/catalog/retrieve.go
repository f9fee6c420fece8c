// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/pump-select/pkg/types"
)

// ListOptions holds filters for catalog queries.
type ListOptions struct {
	// Manufacturer filters by exact manufacturer name.
	Manufacturer string

	// CoversFlow keeps only pumps whose curve spans this flow, in GPM.
	CoversFlow float64

	// MaxPrice keeps only pumps at or below this price. Zero disables the
	// filter.
	MaxPrice float64

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// Get returns the pump with the given catalog ID.
func (s *Store) Get(ctx context.Context, id string) (types.PumpSpecification, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, manufacturer, model, size, speed, stages, impeller_diameter,
			motor_power, price, curve
		 FROM pumps WHERE id = ?`, id)

	pump, err := scanPump(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.PumpSpecification{}, fmt.Errorf("pump %q not in catalog", id)
	}
	if err != nil {
		return types.PumpSpecification{}, fmt.Errorf("loading pump %q: %w", id, err)
	}
	return pump, nil
}

// List returns catalog pumps matching the filters, ordered by manufacturer
// and model.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.PumpSpecification, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, manufacturer, model, size, speed, stages, impeller_diameter,
		motor_power, price, curve FROM pumps`)

	var conds []string
	if opts.Manufacturer != "" {
		conds = append(conds, "manufacturer = ?")
		args = append(args, opts.Manufacturer)
	}
	if opts.CoversFlow > 0 {
		conds = append(conds, "min_flow <= ? AND max_flow >= ?")
		args = append(args, opts.CoversFlow, opts.CoversFlow)
	}
	if opts.MaxPrice > 0 {
		conds = append(conds, "price <= ?")
		args = append(args, opts.MaxPrice)
	}
	if len(conds) > 0 {
		qb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	qb.WriteString(" ORDER BY manufacturer, model LIMIT ?")
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var pumps []types.PumpSpecification
	for rows.Next() {
		pump, err := scanPump(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pump: %w", err)
		}
		pumps = append(pumps, pump)
	}
	return pumps, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPump(row scanner) (types.PumpSpecification, error) {
	var (
		pump      types.PumpSpecification
		curveJSON string
	)
	err := row.Scan(&pump.ID, &pump.Manufacturer, &pump.Model, &pump.Size,
		&pump.Speed, &pump.Stages, &pump.ImpellerDiameter,
		&pump.MotorPower, &pump.Price, &curveJSON)
	if err != nil {
		return types.PumpSpecification{}, err
	}
	if err := json.Unmarshal([]byte(curveJSON), &pump.Curve); err != nil {
		return types.PumpSpecification{}, fmt.Errorf("parsing stored curve: %w", err)
	}
	return pump, nil
}
