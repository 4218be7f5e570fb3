package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Parse and validate a sketch",
		Long: `Parse and validate a sketch and print the declared window.

On failure the diagnostic names the line and column, what was expected, and
points at the offending part of the line. Use - to read from stdin.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := a.readSketch(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, w.Describe())
			return nil
		},
	}
}
