package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/1broseidon/sketch/internal/output"
	"github.com/1broseidon/sketch/internal/platform"
	"github.com/1broseidon/sketch/internal/sketch"
	"github.com/1broseidon/sketch/internal/watch"
)

// screenFlags select the bounds a sketch is resolved against.
type screenFlags struct {
	display string
	offline bool
	bounds  string
}

func (f *screenFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.display, "display", "",
		"Display to resolve on: active, primary, an index or an output name (default: screen.target)")
	cmd.Flags().BoolVar(&f.offline, "offline", false,
		"Resolve against screen.fallback without connecting to the window system")
	cmd.Flags().StringVar(&f.bounds, "bounds", "",
		"Resolve against explicit bounds X,Y,WxH (e.g. 0,0,1920x1080)")
}

func newResolveCmd(a *app) *cobra.Command {
	var (
		screen   screenFlags
		format   string
		watching bool
	)
	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Resolve a sketch to pixel geometry",
		Long: `Resolve a sketch against a display's bounds and print the geometry.

Percentages are taken of the display extent and sizes never exceed it.
Centered axes print as "centered" and axes left to the window manager as
"default". The display is queried once, after the sketch parsed.

With --watch the sketch is resolved again whenever the file changes.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.NewFormatter(format)
			if err != nil {
				return &usageError{err: err}
			}
			if watching && args[0] == "-" {
				return usagef("--watch needs a file, not stdin")
			}
			return a.runResolve(args[0], screen, f, watching)
		},
	}
	screen.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", "text",
		"Output format: "+strings.Join(output.Formats(), ", "))
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "Resolve again when the file changes")
	cmd.MarkFlagsMutuallyExclusive("display", "offline", "bounds")
	return cmd
}

func (a *app) runResolve(path string, flags screenFlags, f output.Formatter, watching bool) error {
	w, err := a.readSketch(path)
	if err != nil {
		return err
	}

	name, area, err := a.queryScreen(flags)
	if err != nil {
		return err
	}

	report := func(w *sketch.Window) error {
		return f.Format(a.stdout, output.Report{
			File:    path,
			Display: name,
			Bounds:  area.ScreenBounds(),
			Window:  sketch.Resolve(w, area.ScreenBounds()),
		})
	}
	if err := report(w); err != nil {
		return err
	}
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
		if err := report(w); err != nil {
			a.logger.Error("format failed", "error", err)
		}
	})
}

// queryScreen returns the display name and area to resolve against. It
// connects to the window system only when neither --bounds nor --offline
// is given.
func (a *app) queryScreen(flags screenFlags) (string, platform.Rect, error) {
	if flags.bounds != "" {
		r, err := parseBounds(flags.bounds)
		if err != nil {
			return "", platform.Rect{}, &usageError{err: err}
		}
		return "", r, nil
	}
	if flags.offline {
		return "fallback", a.fallbackRect(), nil
	}

	b, err := a.backend()
	if err != nil {
		return "", platform.Rect{}, err
	}
	defer b.Close()

	target := flags.display
	if target == "" {
		target = a.cfg.Screen.Target
	}
	s, err := platform.QueryScreen(b, target, a.cfg.Screen.Usable)
	if err != nil {
		return "", platform.Rect{}, err
	}
	a.logger.Debug("screen", "display", s.Display.Name, "bounds", s.Bounds().String())
	return s.Display.Name, s.Area, nil
}

// watchSketch reports every reload of path to fn until ctx is done.
func (a *app) watchSketch(ctx context.Context, path string, fn watch.Handler) error {
	wt, err := watch.New(path, a.logger)
	if err != nil {
		return err
	}
	defer wt.Close()

	a.logger.Info("watching for changes", "path", path)
	if err := wt.Run(ctx, fn); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// parseBounds parses "X,Y,WxH".
func parseBounds(s string) (platform.Rect, error) {
	bad := fmt.Errorf("invalid bounds %q (want X,Y,WxH)", s)

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return platform.Rect{}, bad
	}
	wStr, hStr, ok := strings.Cut(parts[2], "x")
	if !ok {
		return platform.Rect{}, bad
	}

	var nums [4]int
	for i, p := range []string{parts[0], parts[1], wStr, hStr} {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return platform.Rect{}, bad
		}
		nums[i] = n
	}
	if nums[2] < 0 || nums[3] < 0 {
		return platform.Rect{}, fmt.Errorf("invalid bounds %q: size must not be negative", s)
	}
	return platform.Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}, nil
}
