// Package report renders instances, solutions and benchmark timings as
// plain-text tables and a horizontal bar chart.
//
// All values pass through a model.Scale, so instances loaded from rational
// input are printed in their original units ("3/2", not the scaled 3).
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/knapsack/bench"
	"github.com/katalvlaran/knapsack/model"
)

// Items prints one row per item: Num_Item, Weight, Benefit.
func Items(w io.Writer, items []model.Item, scale model.Scale) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Num_Item\tWeight\tBenefit")
	fmt.Fprintln(tw, "--------\t------\t-------")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", it.Index,
			scale.Weight(it.Weight).RatString(), scale.Benefit(it.Benefit).RatString())
	}

	return tw.Flush()
}

// Instance prints the capacity followed by the item table.
func Instance(w io.Writer, inst model.Instance, scale model.Scale) error {
	if _, err := fmt.Fprintf(w, "Knapsack weight: %s\nItems:\n\n", scale.Weight(inst.Capacity).RatString()); err != nil {
		return err
	}

	return Items(w, inst.Items, scale)
}

// Solution prints the benefit, the selected items and their weight.
func Solution(w io.Writer, sol model.Solution, scale model.Scale) error {
	if _, err := fmt.Fprintf(w, "Max Benefit: %s\nWith the items:\n\n", scale.Benefit(sol.Benefit).RatString()); err != nil {
		return err
	}
	if err := Items(w, sol.Items, scale); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nWeight: %s\n", scale.Weight(sol.Weight).RatString())

	return err
}

// Result prints a titled solution block plus the average time of a run.
func Result(w io.Writer, res bench.Result, scale model.Scale) error {
	if _, err := fmt.Fprintf(w, "\n%s results (%d iterations)\n", title(res.Algorithm.String()), res.Iterations); err != nil {
		return err
	}
	if err := Solution(w, res.Solution, scale); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Average Time: %s\n", res.Average)

	return err
}

// Averages prints one column per algorithm with its average time.
func Averages(w io.Writer, results []bench.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	heads := make([]string, len(results))
	rules := make([]string, len(results))
	cells := make([]string, len(results))
	for k, r := range results {
		heads[k] = title(r.Algorithm.String())
		rules[k] = strings.Repeat("-", len(heads[k]))
		cells[k] = r.Average.String()
	}
	fmt.Fprintln(tw, strings.Join(heads, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))
	fmt.Fprintln(tw, strings.Join(cells, "\t"))

	return tw.Flush()
}

// BarChart draws one horizontal bar per result, scaled so that the slowest
// algorithm spans width characters. Non-zero averages get at least one cell.
func BarChart(w io.Writer, results []bench.Result, width int) error {
	if width < 1 {
		width = 1
	}
	var slowest time.Duration
	label := 0
	for _, r := range results {
		slowest = max(slowest, r.Average)
		label = max(label, len(r.Algorithm.String()))
	}

	if _, err := fmt.Fprintln(w, "Average time per algorithm"); err != nil {
		return err
	}
	for _, r := range results {
		n := 0
		if slowest > 0 {
			n = int(int64(width) * int64(r.Average) / int64(slowest))
			if n == 0 && r.Average > 0 {
				n = 1
			}
		}
		if _, err := fmt.Fprintf(w, "%-*s |%s %s\n", label, r.Algorithm, strings.Repeat("█", n), r.Average); err != nil {
			return err
		}
	}

	return nil
}

func title(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
