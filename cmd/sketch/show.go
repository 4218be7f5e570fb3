package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/sketch/internal/platform"
	"github.com/1broseidon/sketch/internal/sketch"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		display  string
		watching bool
	)
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Open the sketched window",
		Long: `Open a window with the sketched title and geometry and keep it open until
it is closed, Escape is pressed in it (window.close_on_escape) or sketch is
interrupted.

With --watch the window is moved and resized whenever the file changes. A
sketch that no longer parses is reported and the window keeps its geometry.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watching && args[0] == "-" {
				return usagef("--watch needs a file, not stdin")
			}
			return a.runShow(args[0], display, watching)
		},
	}
	cmd.Flags().StringVar(&display, "display", "",
		"Display to open on: active, primary, an index or an output name (default: screen.target)")
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "Apply changes to the file to the open window")
	return cmd
}

func (a *app) runShow(path, display string, watching bool) error {
	w, err := a.readSketch(path)
	if err != nil {
		return err
	}

	b, err := a.backend()
	if err != nil {
		return err
	}
	defer b.Close()

	if display == "" {
		display = a.cfg.Screen.Target
	}
	s, err := platform.QueryScreen(b, display, a.cfg.Screen.Usable)
	if err != nil {
		return err
	}

	id, err := b.OpenWindow(s.Area, sketch.Resolve(w, s.Bounds()))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watching {
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			err := a.watchSketch(watchCtx, path, func(w *sketch.Window, err error) {
				if err != nil {
					a.logger.Warn("keeping previous geometry", "error", err)
					return
				}
				if err := b.MoveResize(id, s.Area, sketch.Resolve(w, s.Bounds())); err != nil {
					a.logger.Warn("move/resize failed", "window", id, "error", err)
				}
			})
			if err != nil {
				a.logger.Warn("watch stopped", "error", err)
			}
		}()
	}

	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
