package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/1broseidon/sketch/internal/platform"
)

func newDisplaysCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "displays",
		Short: "List connected displays",
		Long: `List connected displays with their index, output name, full bounds and
usable work area. The index and the name are accepted by --display.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.backend()
			if err != nil {
				return err
			}
			defer b.Close()

			displays, err := b.Displays()
			if err != nil {
				return err
			}
			if asJSON {
				if displays == nil {
					displays = []platform.Display{}
				}
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(displays)
			}
			return printDisplays(a, displays)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printDisplays(a *app, displays []platform.Display) error {
	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRIMARY\tBOUNDS\tUSABLE")
	for _, d := range displays {
		primary := ""
		if d.Primary {
			primary = "*"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", d.ID, d.Name, primary, formatRect(d.Bounds), formatRect(d.Usable))
	}
	return tw.Flush()
}

func formatRect(r platform.Rect) string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}
