package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/1broseidon/sketch/internal/platform"
	"github.com/1broseidon/sketch/internal/preview"
	"github.com/1broseidon/sketch/internal/sketch"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		screen      screenFlags
		interactive bool
		watching    bool
		columns     int
		rows        int
	)
	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Draw a sketch inside its screen in the terminal",
		Long: `Draw the resolved window inside the screen it was resolved on.

The canvas keeps the screen's aspect ratio. Its size comes from --columns and
--rows, then preview.columns and preview.rows in the config, then the
terminal width.

Interactive mode keybindings:
  tab, →, l        Next display
  shift+tab, ←, h  Previous display
  u                Toggle work area / full bounds
  ?                Toggle help
  q, esc, ctrl+c   Quit`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if watching && path == "-" {
				return usagef("--watch needs a file, not stdin")
			}
			if columns < 0 || rows < 0 {
				return usagef("--columns and --rows must not be negative")
			}
			if columns == 0 {
				columns = a.cfg.Preview.Columns
			}
			if rows == 0 {
				rows = a.cfg.Preview.Rows
			}
			if interactive {
				if path == "-" {
					return usagef("interactive preview needs a file, not stdin")
				}
				return a.runInteractivePreview(path, screen, watching)
			}
			return a.runPreview(path, screen, watching, columns, rows)
		},
	}
	screen.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open an interactive preview that cycles displays")
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "Redraw when the file changes")
	cmd.Flags().IntVar(&columns, "columns", 0, "Canvas width in cells (default: preview.columns or terminal width)")
	cmd.Flags().IntVar(&rows, "rows", 0, "Canvas height in cells (default: preview.rows or aspect ratio)")
	cmd.MarkFlagsMutuallyExclusive("display", "offline", "bounds")
	return cmd
}

func (a *app) runPreview(path string, flags screenFlags, watching bool, columns, rows int) error {
	w, err := a.readSketch(path)
	if err != nil {
		return err
	}
	name, area, err := a.queryScreen(flags)
	if err != nil {
		return err
	}

	draw := func(w *sketch.Window) {
		f := preview.NewFrame(sketch.Resolve(w, area.ScreenBounds()), area, a.defaultSize())
		heading := w.Title()
		if name != "" {
			heading = fmt.Sprintf("%s • %s", w.Title(), name)
		}
		fmt.Fprint(a.stdout, preview.Render(f, heading, columns, rows))
	}
	draw(w)
	if !watching {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.watchSketch(ctx, path, func(w *sketch.Window, err error) {
		if err != nil {
			printError(a.stderr, err)
			return
		}
		draw(w)
	})
}

func (a *app) runInteractivePreview(path string, flags screenFlags, watching bool) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return usagef("interactive preview needs a terminal")
	}

	if !a.opts.verbose {
		// Log lines would tear the alternate screen.
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w, err := a.readSketch(path)
	if err != nil {
		return err
	}
	displays, start, err := a.previewDisplays(flags)
	if err != nil {
		return err
	}

	m := preview.NewModel(w, preview.Options{
		File:        path,
		Displays:    displays,
		Start:       start,
		Usable:      a.cfg.Screen.Usable,
		DefaultSize: a.defaultSize(),
	})
	p := preview.NewProgram(m)

	if watching {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			err := a.watchSketch(ctx, path, func(w *sketch.Window, err error) {
				p.Send(preview.ReloadMsg{Window: w, Err: err})
			})
			if err != nil {
				a.logger.Warn("watch stopped", "error", err)
			}
		}()
	}

	_, err = p.Run()
	return err
}

// previewDisplays lists the displays the interactive preview cycles through
// and the index of the one to start on.
func (a *app) previewDisplays(flags screenFlags) ([]platform.Display, int, error) {
	single := func(name string, r platform.Rect) []platform.Display {
		return []platform.Display{{ID: 0, Name: name, Primary: true, Bounds: r, Usable: r}}
	}
	if flags.bounds != "" {
		r, err := parseBounds(flags.bounds)
		if err != nil {
			return nil, 0, &usageError{err: err}
		}
		return single("bounds", r), 0, nil
	}
	if flags.offline {
		return single("fallback", a.fallbackRect()), 0, nil
	}

	b, err := a.backend()
	if err != nil {
		return nil, 0, err
	}
	defer b.Close()

	displays, err := b.Displays()
	if err != nil {
		return nil, 0, err
	}
	target := flags.display
	if target == "" {
		target = a.cfg.Screen.Target
	}
	current, err := platform.SelectDisplay(b, target)
	if err != nil {
		return nil, 0, err
	}
	for i, d := range displays {
		if d.ID == current.ID {
			return displays, i, nil
		}
	}
	return displays, 0, nil
}
