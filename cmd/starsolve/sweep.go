// Sweep command: solve every possible grid.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/shootingstars/internal/solver"
	"github.com/dukaforge/shootingstars/pkg/stars"
)

// Sweep command flags.
var sweepStore bool

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Solve all 512 possible grids and report statistics",
	Long: `Sweep runs the solver over every possible grid and prints how many are
solvable, the longest shortest solution, and a histogram of solution
lengths. With --store, every result is written to the solution archive so
later lookups are instant.

Sweep also doubles as a resource check: it verifies that repeated searches
leave no live path nodes behind.`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().BoolVar(&sweepStore, "store", false, "write every solution to the archive")
}

// sweepStats aggregates results over the full state space.
type sweepStats struct {
	Total      int   `json:"total"`
	Solvable   int   `json:"solvable"`
	Unsolvable int   `json:"unsolvable"`
	MaxLength  int   `json:"max_length"`
	Histogram  []int `json:"histogram"` // count of solvable grids per solution length
}

func runSweep(cmd *cobra.Command, args []string) error {
	var archive stars.Archive
	if sweepStore {
		a, err := attachArchive()
		if err != nil {
			return err
		}
		defer a.Detach()
		archive = a
	}

	baseline := solver.LiveNodes()
	stats := sweepStats{Total: int(stars.MaxGrid) + 1}
	lengths := make(map[int]int)

	for value := 0; value <= int(stars.MaxGrid); value++ {
		grid := stars.Grid(value)
		result, err := solver.Solve(grid)
		if err != nil {
			return fmt.Errorf("solve grid %d: %w", value, err)
		}

		if result.Found {
			stats.Solvable++
			lengths[result.Length()]++
			if result.Length() > stats.MaxLength {
				stats.MaxLength = result.Length()
			}
		} else {
			stats.Unsolvable++
		}

		if archive != nil {
			if _, err := archive.Save(stars.NewSolution(grid, result)); err != nil {
				return fmt.Errorf("archive grid %d: %w", value, err)
			}
		}
	}

	if leaked := solver.LiveNodes() - baseline; leaked != 0 {
		return fmt.Errorf("sweep leaked %d path nodes", leaked)
	}

	stats.Histogram = make([]int, stats.MaxLength+1)
	for length, count := range lengths {
		stats.Histogram[length] = count
	}

	return printSweep(cmd, stats)
}

func printSweep(cmd *cobra.Command, stats sweepStats) error {
	out := cmd.OutOrStdout()

	if flagJSON {
		output, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal stats: %w", err)
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	fmt.Fprintf(out, "grids:      %d\n", stats.Total)
	fmt.Fprintf(out, "solvable:   %d\n", stats.Solvable)
	fmt.Fprintf(out, "unsolvable: %d\n", stats.Unsolvable)
	fmt.Fprintf(out, "max moves:  %d\n", stats.MaxLength)
	fmt.Fprintln(out, "moves  grids")
	for length, count := range stats.Histogram {
		fmt.Fprintf(out, "%5d  %d\n", length, count)
	}
	return nil
}
