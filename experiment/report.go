// Package experiment - plain-text report writer.
package experiment

import (
	"bufio"
	"fmt"
	"io"
)

// WriteReport renders an outcome as a human-readable text report: a header
// block, then one section per swept configuration with the individual run
// results and their aggregate statistics.
func WriteReport(w io.Writer, cfg Config, outcome *Outcome) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "--- %s ---\n", cfg.Name)
	fmt.Fprintf(bw, "Instance: %s\n", outcome.InstanceName)
	fmt.Fprintf(bw, "Runs per configuration: %d\n", cfg.Runs)
	fmt.Fprintln(bw, "--------------------------------------------------")

	// Group the flat result list under its summary; results arrive in the
	// same axis/value order the summaries were produced in.
	next := 0
	for _, sum := range outcome.Summaries {
		fmt.Fprintf(bw, "\n=== %s = %s ===\n", sum.Axis, sum.Value)
		for ; next < len(outcome.Results); next++ {
			res := outcome.Results[next]
			if res.Axis != sum.Axis || res.Value != sum.Value {
				break
			}
			fmt.Fprintf(bw, "run %d: best = %.2f (seed %d)\n", res.Run+1, res.BestFitness, res.Seed)
		}
		fmt.Fprintf(bw, "mean:   %.2f\n", sum.Mean)
		fmt.Fprintf(bw, "median: %.2f\n", sum.Median)
		fmt.Fprintf(bw, "stddev: %.2f\n", sum.StdDev)
		fmt.Fprintf(bw, "best:   %.2f\n", sum.Best)
	}

	return bw.Flush()
}
