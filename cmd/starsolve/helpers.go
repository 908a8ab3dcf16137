// Shared helpers for starsolve CLI commands.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dukaforge/shootingstars/internal/sqlite"
	"github.com/dukaforge/shootingstars/pkg/stars"
)

// systemError marks failures of the environment (filesystem, archive
// database) rather than of the user's input, so main can exit with a
// distinct status code.
type systemError struct{ err error }

func (e systemError) Error() string { return e.err.Error() }
func (e systemError) Unwrap() error { return e.err }

// attachArchive resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer archive.Detach().
func attachArchive() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, systemError{fmt.Errorf("resolve data dir: %w", err)}
	}

	cfg := stars.Config{
		Backend: stars.BackendSQLite,
		DataDir: dataDir,
	}

	archive := sqlite.NewBackend()
	if err := archive.Attach(cfg); err != nil {
		return nil, systemError{fmt.Errorf("attach archive: %w", err)}
	}

	return archive, nil
}

// parseGridArg converts a command-line grid argument into a Grid. Two forms
// are accepted: a decimal grid value in [0, 511], or the textual form with
// rows separated by '/' instead of newlines (e.g. "*../.../..."), which is
// easier to pass in a shell.
func parseGridArg(arg string) (stars.Grid, error) {
	if value, err := strconv.Atoi(arg); err == nil {
		g := stars.Grid(value)
		if value < 0 || !g.Valid() {
			return stars.ErrorGrid, stars.ErrGridRange
		}
		return g, nil
	}
	return parseGridText(strings.ReplaceAll(arg, "/", "\n"))
}

// parseGridText parses the canonical 11-character textual grid form,
// tolerating a trailing newline.
func parseGridText(text string) (stars.Grid, error) {
	text = strings.TrimRight(text, "\n")
	grid, err := stars.Parse(text)
	if err != nil {
		return stars.ErrorGrid, fmt.Errorf("parse grid: %w", err)
	}
	return grid, nil
}

// readGrid resolves the initial grid for solve-style commands: from the
// positional argument if present, from --file if set, otherwise from stdin.
func readGrid(args []string, file string) (stars.Grid, error) {
	switch {
	case len(args) == 1:
		return parseGridArg(args[0])
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return stars.ErrorGrid, fmt.Errorf("read grid file: %w", err)
		}
		return parseGridText(string(data))
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return stars.ErrorGrid, fmt.Errorf("read stdin: %w", err)
		}
		return parseGridText(string(data))
	}
}

// moveLine formats a move sequence as space-separated cell numbers.
func moveLine(moves []int) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = strconv.Itoa(m)
	}
	return strings.Join(parts, " ")
}
