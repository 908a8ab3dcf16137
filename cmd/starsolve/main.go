// Package main provides the starsolve CLI, a solver for the shooting-stars
// puzzle: it finds the shortest sequence of explosions turning a 3x3 grid of
// stars into the winning configuration.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var sysErr systemError
		if errors.As(err, &sysErr) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
