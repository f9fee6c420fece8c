// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selection

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FormatTable writes the ranked results as a human-readable table to w.
func FormatTable(out Output, w io.Writer) {
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "No feasible pumps found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-24s  %8s  %8s  %5s  %6s  %5s  %10s  %6s\n",
		"Rank", "Pump", "Flow", "Head", "Eff%", "%BEP", "NPSH", "Cost/yr", "Score")
	fmt.Fprintln(w, strings.Repeat("-", 96))

	for i, r := range out.Results {
		name := r.Pump.Manufacturer + " " + r.Pump.Model
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		npsh := "ok"
		if !r.AdequateNPSH {
			npsh = "LOW"
		}
		fmt.Fprintf(w, "%-4d  %-24s  %8.1f  %8.1f  %5.1f  %6.1f  %5s  %10.0f  %6.1f\n",
			i+1, name, r.OperatingPoint.Flow, r.OperatingPoint.Head,
			r.OperatingPoint.Efficiency, r.PercentBEP, npsh, r.AnnualEnergyCost, r.Score)
	}

	fmt.Fprintf(w, "\n%d feasible pump(s)", len(out.Results))
	if out.Infeasible > 0 {
		fmt.Fprintf(w, " (%d infeasible excluded)", out.Infeasible)
	}
	if len(out.CandidateErrors) > 0 {
		fmt.Fprintf(w, " (%d skipped with errors)", len(out.CandidateErrors))
	}
	fmt.Fprintln(w)
}

// FormatJSON writes the ranked results as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out.Results)
}
