// Solve command: find the shortest winning move sequence for one grid.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dukaforge/shootingstars/internal/solver"
	"github.com/dukaforge/shootingstars/pkg/stars"
)

// noSolutionMessage is printed when the search exhausts the state space.
const noSolutionMessage = "There's no winning sequence of moves!"

// Solve command flags.
var (
	solveFile    string
	solveSteps   bool
	solveQuiet   bool
	solveNoCache bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [grid]",
	Short: "Find the shortest winning move sequence for a grid",
	Long: `Solve finds the shortest sequence of explosions that turns the given
grid into the winning configuration (stars everywhere except the center),
or reports that no winning sequence exists.

The grid is given as a positional argument (either a decimal value in
[0, 511] or three rows of '*'/'.' separated by '/'), via --file, or on
stdin as three newline-separated rows.

Results are kept in the solution archive: a grid solved before is answered
from the archive, and a fresh result is recorded for later runs. Use
--no-cache to search without touching the archive.

Example:
  starsolve solve '*../.../...'
  starsolve solve 256 --steps
  echo '***
***
***' | starsolve solve`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveFile, "file", "", "read the grid from a file")
	solveCmd.Flags().BoolVar(&solveSteps, "steps", false, "show each intermediate grid")
	solveCmd.Flags().BoolVar(&solveQuiet, "quiet", false, "run the search without printing the result")
	solveCmd.Flags().BoolVar(&solveNoCache, "no-cache", false, "solve without consulting or updating the solution archive")
}

func runSolve(cmd *cobra.Command, args []string) error {
	grid, err := readGrid(args, solveFile)
	if err != nil {
		return err
	}

	var result stars.Result
	if solveNoCache {
		result, err = solver.Solve(grid)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
	} else {
		result, err = solveThroughArchive(grid)
		if err != nil {
			return err
		}
	}

	if solveQuiet {
		return nil
	}

	if flagJSON {
		return printSolveJSON(cmd, grid, result)
	}

	if !result.Found {
		fmt.Fprintln(cmd.OutOrStdout(), noSolutionMessage)
		return nil
	}

	if solveSteps {
		printSteps(cmd, grid, result)
		return nil
	}

	for _, move := range result.Moves {
		fmt.Fprintln(cmd.OutOrStdout(), move)
	}
	return nil
}

// solveThroughArchive answers from the solution archive when the grid was
// solved before, and otherwise runs the search and records the result.
func solveThroughArchive(grid stars.Grid) (stars.Result, error) {
	archive, err := attachArchive()
	if err != nil {
		return stars.Result{}, err
	}
	defer archive.Detach()

	solution, err := archive.Get(int(grid))
	switch {
	case err == nil:
		return stars.Result{Moves: solution.Moves, Found: solution.Solvable}, nil
	case !errors.Is(err, stars.ErrNotFound):
		return stars.Result{}, fmt.Errorf("consult archive: %w", err)
	}

	result, err := solver.Solve(grid)
	if err != nil {
		return stars.Result{}, fmt.Errorf("solve: %w", err)
	}
	if _, err := archive.Save(stars.NewSolution(grid, result)); err != nil {
		return stars.Result{}, fmt.Errorf("archive solution: %w", err)
	}
	return result, nil
}

// printSteps replays the winning sequence, rendering the grid after every
// explosion.
func printSteps(cmd *cobra.Command, grid stars.Grid, result stars.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", grid)
	for i, move := range result.Moves {
		grid = grid.Explode(move)
		fmt.Fprintf(out, "%d. explode %d\n%s\n\n", i+1, move, grid)
	}
	fmt.Fprintf(out, "solved in %d moves\n", result.Length())
}

// solveOutput is the JSON shape of one solve result.
type solveOutput struct {
	Grid     int    `json:"grid"`
	Rendered string `json:"rendered"`
	Solvable bool   `json:"solvable"`
	Moves    []int  `json:"moves,omitempty"`
	Length   int    `json:"length"`
}

func printSolveJSON(cmd *cobra.Command, grid stars.Grid, result stars.Result) error {
	output, err := json.MarshalIndent(solveOutput{
		Grid:     int(grid),
		Rendered: grid.String(),
		Solvable: result.Found,
		Moves:    result.Moves,
		Length:   result.Length(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
