// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selection evaluates candidate pumps against selection criteria
// and produces a ranked list. Each candidate is scored independently, so
// the evaluation fans out across goroutines and a malformed or infeasible
// candidate never aborts the batch: it is reported as a warning and
// excluded from the ranking.
package selection

import (
	"fmt"
	"io"
	"math"
	"sort"
	"sync"

	"github.com/pdiddy/pump-select/internal/energy"
	"github.com/pdiddy/pump-select/internal/hydraulic"
	"github.com/pdiddy/pump-select/pkg/types"
)

// npshSafetyMargin is the suction-head margin, in feet, above the pump's
// requirement considered adequate to avoid cavitation. A 3 ft margin is a
// standard engineering rule of thumb.
const npshSafetyMargin = 3

// Output holds the ranked results and batch statistics.
type Output struct {
	// Results is the ranked list, best score first.
	Results []types.PumpPerformance

	// Infeasible counts candidates whose curve never crossed the system
	// curve.
	Infeasible int

	// CandidateErrors records per-candidate failures (malformed curves,
	// degenerate best-efficiency points) that were skipped.
	CandidateErrors []string
}

// Select evaluates every candidate against the criteria concurrently and
// returns them ranked by score, best first. Candidates with no feasible
// operating point or with structurally bad curves are skipped with a
// warning written to w; Select itself fails only for invalid criteria.
// An empty candidate list returns an empty Output.
func Select(criteria types.SelectionCriteria, candidates []types.PumpSpecification, cfg types.SelectionConfig, w io.Writer) (Output, error) {
	if criteria.DesignFlow <= 0 {
		return Output{}, fmt.Errorf("%w: design flow must be positive, got %.4g", types.ErrValidation, criteria.DesignFlow)
	}
	if criteria.DesignHead <= 0 {
		return Output{}, fmt.Errorf("%w: design head must be positive, got %.4g", types.ErrValidation, criteria.DesignHead)
	}
	cfg = cfg.WithDefaults()

	type candidateResult struct {
		perf *types.PumpPerformance
		err  error
		id   string
	}

	ch := make(chan candidateResult, len(candidates))
	var wg sync.WaitGroup

	for _, pump := range candidates {
		wg.Add(1)
		go func(pump types.PumpSpecification) {
			defer wg.Done()
			perf, err := Evaluate(criteria, pump, cfg)
			ch <- candidateResult{perf: perf, err: err, id: pump.ID}
		}(pump)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var out Output
	for cr := range ch {
		if cr.err != nil {
			msg := fmt.Sprintf("%s: %v", cr.id, cr.err)
			out.CandidateErrors = append(out.CandidateErrors, msg)
			fmt.Fprintf(w, "warning: candidate %s skipped: %v\n", cr.id, cr.err)
			continue
		}
		if cr.perf == nil {
			out.Infeasible++
			continue
		}
		out.Results = append(out.Results, *cr.perf)
	}

	sort.Slice(out.Results, func(i, j int) bool {
		if out.Results[i].Score != out.Results[j].Score {
			return out.Results[i].Score > out.Results[j].Score
		}
		return out.Results[i].Pump.ID < out.Results[j].Pump.ID
	})

	if cfg.MaxResults > 0 && len(out.Results) > cfg.MaxResults {
		out.Results = out.Results[:cfg.MaxResults]
	}

	return out, nil
}

// Evaluate scores a single candidate against the criteria. It returns
// (nil, nil) when the pump has no feasible operating point on the system
// curve, and an error for structurally bad curves (too few points,
// misordered flows, zero best-efficiency flow, zero operating efficiency).
func Evaluate(criteria types.SelectionCriteria, pump types.PumpSpecification, cfg types.SelectionConfig) (*types.PumpPerformance, error) {
	cfg = cfg.WithDefaults()

	system, err := hydraulic.SystemCurveFor(criteria, pump.Curve)
	if err != nil {
		return nil, err
	}

	op, err := hydraulic.SolveOperatingPoint(pump.Curve, system)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, nil
	}

	margin := criteria.NPSHAvailable - op.NPSHRequired
	adequate := margin >= npshSafetyMargin

	bep, err := hydraulic.BestEfficiencyPoint(pump.Curve)
	if err != nil {
		return nil, err
	}
	if bep.Flow == 0 {
		return nil, fmt.Errorf("%w: best-efficiency flow is zero", types.ErrDegenerateCurve)
	}
	percentBEP := 100 * op.Flow / bep.Flow

	cost, err := energy.AnnualCost(op.Power, op.Efficiency, cfg.HoursPerYear, cfg.RatePerKWh)
	if err != nil {
		return nil, err
	}

	breakdown := scoreBreakdown(criteria, *op, percentBEP, adequate, pump.Price)

	return &types.PumpPerformance{
		Pump:             pump,
		OperatingPoint:   *op,
		NPSHMargin:       margin,
		AdequateNPSH:     adequate,
		PercentBEP:       percentBEP,
		AnnualEnergyCost: cost,
		Score:            totalScore(breakdown),
		Breakdown:        breakdown,
	}, nil
}

// scoreBreakdown computes the independent weighted terms of the selection
// score. Every term is floored at zero; the price term is a heuristic
// linear penalty (zero benefit above $10,000 list price), not a financial
// model.
func scoreBreakdown(criteria types.SelectionCriteria, op types.OperatingPoint, percentBEP float64, adequateNPSH bool, price float64) types.ScoreBreakdown {
	b := types.ScoreBreakdown{
		FlowMatch:  math.Max(0, 20-100*math.Abs(op.Flow-criteria.DesignFlow)/criteria.DesignFlow),
		HeadMatch:  math.Max(0, 20-100*math.Abs(op.Head-criteria.DesignHead)/criteria.DesignHead),
		Efficiency: 0.25 * op.Efficiency,
		Price:      math.Max(0, 10-price/1000),
	}

	switch {
	case percentBEP >= 80 && percentBEP <= 110:
		b.BEPProximity = 15
	case percentBEP >= 70 && percentBEP <= 120:
		b.BEPProximity = 10
	case percentBEP >= 60 && percentBEP <= 130:
		b.BEPProximity = 5
	}

	if adequateNPSH {
		b.NPSHMargin = 10
	}
	return b
}

// totalScore sums the breakdown terms and caps the result at 100.
func totalScore(b types.ScoreBreakdown) float64 {
	sum := b.FlowMatch + b.HeadMatch + b.Efficiency + b.BEPProximity + b.NPSHMargin + b.Price
	return math.Min(100, sum)
}
