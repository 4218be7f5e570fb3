package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/sketch/internal/platform"
	"github.com/1broseidon/sketch/internal/sketch"
)

func (s *Server) handleCheckSketch(_ context.Context, _ *mcpsdk.CallToolRequest, args CheckSketchInput) (*mcpsdk.CallToolResult, CheckSketchOutput, error) {
	w, err := loadSketch(args.Path, args.Text, args.Name)
	if err != nil {
		var serr *sketch.Error
		if !errors.As(err, &serr) || serr.Kind == sketch.IOError {
			return nil, CheckSketchOutput{}, err
		}
		s.logger.Debug("check_sketch rejected input", "error", err)
		return nil, CheckSketchOutput{Valid: false, Error: diagnosticOf(serr)}, nil
	}
	return nil, CheckSketchOutput{Valid: true, Description: w.Describe()}, nil
}

func (s *Server) handleResolveSketch(_ context.Context, _ *mcpsdk.CallToolRequest, args ResolveSketchInput) (*mcpsdk.CallToolResult, ResolveSketchOutput, error) {
	w, err := loadSketch(args.Path, args.Text, args.Name)
	if err != nil {
		return nil, ResolveSketchOutput{}, err
	}

	name, area, err := s.screenFor(args)
	if err != nil {
		return nil, ResolveSketchOutput{}, err
	}
	r := sketch.Resolve(w, area.ScreenBounds())
	s.logger.Debug("resolve_sketch", "title", r.Title, "display", name, "bounds", area.ScreenBounds().String())

	return nil, ResolveSketchOutput{
		Display: name,
		Bounds:  BoundsInput(area),
		Window: ResolvedWindow{
			Title:      r.Title,
			X:          axisValue(r.X),
			Y:          axisValue(r.Y),
			Width:      axisValue(r.Width),
			Height:     axisValue(r.Height),
			Fullscreen: r.Fullscreen,
		},
	}, nil
}

func (s *Server) handleListDisplays(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListDisplaysInput) (*mcpsdk.CallToolResult, ListDisplaysOutput, error) {
	b, err := s.backend()
	if err != nil {
		return nil, ListDisplaysOutput{}, err
	}
	defer b.Close()

	displays, err := b.Displays()
	if err != nil {
		return nil, ListDisplaysOutput{}, err
	}
	if displays == nil {
		displays = []platform.Display{}
	}
	return nil, ListDisplaysOutput{Displays: displays}, nil
}

// screenFor queries the screen once, after the sketch parsed.
func (s *Server) screenFor(args ResolveSketchInput) (string, platform.Rect, error) {
	if b := args.Bounds; b != nil {
		if b.Width < 0 || b.Height < 0 {
			return "", platform.Rect{}, fmt.Errorf("bounds must not be negative")
		}
		return "", platform.Rect(*b), nil
	}
	if args.Offline {
		fb := s.config.Screen.Fallback
		return "fallback", platform.Rect{X: fb.X, Y: fb.Y, Width: fb.Width, Height: fb.Height}, nil
	}

	b, err := s.backend()
	if err != nil {
		return "", platform.Rect{}, err
	}
	defer b.Close()

	target := args.Display
	if strings.TrimSpace(target) == "" {
		target = s.config.Screen.Target
	}
	screen, err := platform.QueryScreen(b, target, s.config.Screen.Usable)
	if err != nil {
		return "", platform.Rect{}, err
	}
	return screen.Display.Name, screen.Area, nil
}

func (s *Server) backend() (platform.Backend, error) {
	if s.open == nil {
		return nil, fmt.Errorf("no window system available")
	}
	b, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("connect to window system: %w", err)
	}
	return b, nil
}

func loadSketch(path, text, name string) (*sketch.Window, error) {
	if strings.TrimSpace(path) != "" {
		return sketch.Load(path)
	}
	if text == "" {
		return nil, fmt.Errorf("path or text is required")
	}
	if name == "" {
		name = "<input>"
	}
	return sketch.ParseString(name, text)
}

func diagnosticOf(e *sketch.Error) *Diagnostic {
	return &Diagnostic{
		Kind:     e.Kind.String(),
		Line:     e.Pos.Line,
		Column:   e.Pos.Column,
		Message:  e.Message(),
		Expected: e.Expected,
		Rendered: e.Diagnostic(),
	}
}

func axisValue(a sketch.Axis) any {
	if n, ok := a.Value(); ok {
		return n
	}
	return a.String()
}
