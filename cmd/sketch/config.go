package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/1broseidon/sketch/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Validate, print and explain configuration",
	}

	validate := &cobra.Command{
		Use:         "validate",
		Short:       "Validate configuration",
		Args:        noArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, "config: ok")
			return nil
		},
	}

	var defaults bool
	printCmd := &cobra.Command{
		Use:         "print",
		Short:       "Print the effective configuration",
		Args:        noArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if !defaults {
				if err := a.loadConfig(); err != nil {
					return err
				}
				cfg = a.cfg
				for _, f := range a.res.Files {
					fmt.Fprintf(a.stdout, "# from: %s\n", f)
				}
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}
	printCmd.Flags().BoolVar(&defaults, "defaults", false, "Print built-in defaults (no files)")

	explain := &cobra.Command{
		Use:         "explain PATH",
		Short:       "Show a config value and where it was set",
		Long:        "Show a config value and where it was set.\n\nPaths:\n  " + strings.Join(config.Paths(), "\n  "),
		Args:        exactArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}
			value, src, err := config.Explain(a.res, args[0])
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(value)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "path: %s\n", args[0])
			fmt.Fprintf(a.stdout, "source: %s\n", src)
			fmt.Fprintf(a.stdout, "value: %s", out)
			return nil
		},
	}

	cmd.AddCommand(validate, printCmd, explain)
	return cmd
}
