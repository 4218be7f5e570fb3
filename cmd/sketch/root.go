package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/1broseidon/sketch/internal/config"
	"github.com/1broseidon/sketch/internal/platform"
	"github.com/1broseidon/sketch/internal/sketch"
	"github.com/1broseidon/sketch/internal/x11"
)

// Opener connects to the window system described by cfg.
type Opener func(cfg *config.Config, logger *slog.Logger) (platform.Backend, error)

// app carries the state shared by all commands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	stdin  io.Reader

	opts struct {
		configPath string
		verbose    bool
	}

	res    *config.LoadResult
	cfg    *config.Config
	logger *slog.Logger
	open   Opener
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		stdin:  os.Stdin,
		open:   openX11,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

// skipConfig marks commands that load the configuration themselves.
const skipConfig = "skip-config"

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "sketch",
		Short: "Declare window geometry in a small text format",
		Long: `sketch reads window sketches: short declarations of a window's title,
size and position in pixels, percentages of the screen or as centered.

A sketch is checked, resolved against a display's bounds, previewed in the
terminal or shown as a real X11 window.

Example:

  window = "Main":
    width = 50%
    height = 600px
    centered`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfig] == "true" {
				a.setupLogger(slog.LevelWarn)
				return nil
			}
			if err := a.loadConfig(); err != nil {
				return err
			}
			a.setupLogger(a.cfg.SlogLevel())
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetIn(a.stdin)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	root.PersistentFlags().StringVar(&a.opts.configPath, "config", "",
		"Path to config file (default: ~/.config/sketch/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.opts.verbose, "verbose", "v", false,
		"Enable debug logging")

	root.AddCommand(
		newCheckCmd(a),
		newResolveCmd(a),
		newPreviewCmd(a),
		newShowCmd(a),
		newDisplaysCmd(a),
		newConfigCmd(a),
		newMCPCmd(a),
	)
	return root
}

func (a *app) loadConfig() error {
	var err error
	if a.opts.configPath == "" {
		a.res, err = config.Load()
	} else {
		a.res, err = config.LoadFromPath(a.opts.configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = a.res.Config
	return nil
}

// setupLogger configures the slog logger. Logs go to stderr so stdout stays
// clean for output.
func (a *app) setupLogger(level slog.Level) {
	if a.opts.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
}

func (a *app) backend() (platform.Backend, error) {
	b, err := a.open(a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("connect to window system: %w", err)
	}
	return b, nil
}

// openX11 resolves the X client environment and connects.
func openX11(cfg *config.Config, logger *slog.Logger) (platform.Backend, error) {
	env, err := x11.ResolveEnv(os.Environ(), cfg.Display, cfg.XAuthority)
	if err != nil {
		return nil, err
	}
	if err := env.Apply(); err != nil {
		return nil, err
	}
	logger.Debug("x11 environment", "display", env.Display, "xauthority", env.XAuthority)

	return platform.Open(platform.Options{
		Display: env.Display,
		DefaultSize: platform.Size{
			Width:  cfg.Window.DefaultWidth,
			Height: cfg.Window.DefaultHeight,
		},
		CloseOnEscape: cfg.Window.CloseOnEscape,
		Logger:        logger,
	})
}

func (a *app) defaultSize() platform.Size {
	return platform.Size{Width: a.cfg.Window.DefaultWidth, Height: a.cfg.Window.DefaultHeight}
}

func (a *app) fallbackRect() platform.Rect {
	fb := a.cfg.Screen.Fallback
	return platform.Rect{X: fb.X, Y: fb.Y, Width: fb.Width, Height: fb.Height}
}

// readSketch loads the sketch at path; "-" reads standard input.
func (a *app) readSketch(path string) (*sketch.Window, error) {
	if path != "-" {
		return sketch.Load(path)
	}
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	src, err := sketch.Decode("<stdin>", data)
	if err != nil {
		return nil, err
	}
	return sketch.Parse(src)
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}
