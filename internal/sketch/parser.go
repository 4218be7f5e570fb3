package sketch

const attributeNames = "width, height, position, centered or fullscreen"

// Load reads, decodes and parses the sketch at path.
func Load(path string) (*Window, error) {
	src, err := ReadSource(path)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

// ParseString parses text as a sketch document named name.
func ParseString(name, text string) (*Window, error) {
	return Parse(NewSource(name, text))
}

// Parse parses a complete sketch document. The returned error, if any, is a
// *Error of kind SyntaxError or SemanticError; no partial Window is returned.
//
// The grammar commits after every keyword: once "window" or an attribute
// keyword has matched, a missing continuation is reported where it was
// expected and no other production is tried.
func Parse(src *Source) (*Window, error) {
	p := &parser{scanner: newScanner(src)}
	return p.document()
}

type parser struct {
	*scanner
}

// document := line_ending* window, consumed to the end of input.
func (p *parser) document() (*Window, error) {
	for p.lineEnding() {
	}
	start := p.off
	if !p.keyword("window") {
		return nil, p.expected(start, "'window'")
	}
	return p.window()
}

// window := "window" "=" title ":" (line_ending+ attribute)+ line_ending*
func (p *parser) window() (*Window, error) {
	if err := p.want("="); err != nil {
		return nil, err
	}

	w := &Window{}
	start := p.off
	title, ok, err := p.quoted()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.expected(start, "quoted title")
	}
	if err := w.SetTitle(title); err != nil {
		return nil, p.src.errorAt(SemanticError, start, p.off, "", err)
	}

	if err := p.want(":"); err != nil {
		return nil, err
	}

	for n := 0; ; n++ {
		if !p.lineEnding() {
			if n > 0 && p.atEnd() {
				return w, nil
			}
			return nil, p.expected(p.off, "end of line")
		}
		for p.lineEnding() {
		}
		if p.atEnd() {
			if n > 0 {
				return w, nil
			}
			return nil, p.expected(p.off, attributeNames)
		}
		if err := p.attribute(w); err != nil {
			return nil, err
		}
	}
}

// attribute := width | height | position | fullscreen
func (p *parser) attribute(w *Window) error {
	start := p.off
	p.skip()
	at := p.off
	p.off = start

	var err error
	switch {
	case p.keyword("width"):
		var d Dimension
		if d, err = p.dimension(); err != nil {
			return err
		}
		err = w.SetWidth(d)
	case p.keyword("height"):
		var d Dimension
		if d, err = p.dimension(); err != nil {
			return err
		}
		err = w.SetHeight(d)
	case p.keyword("centered"):
		err = w.SetPosition(Centered{})
	case p.keyword("position"):
		var pt Point
		if pt, err = p.point(); err != nil {
			return err
		}
		err = w.SetPosition(pt)
	case p.keyword("fullscreen"):
		err = w.SetFullscreen()
	default:
		return p.expected(start, attributeNames)
	}
	if err != nil {
		return p.src.errorAt(SemanticError, at, p.off, "", err)
	}
	return nil
}

// dimension := "=" (percent | pixels | "full")
func (p *parser) dimension() (Dimension, error) {
	if err := p.want("="); err != nil {
		return nil, err
	}
	start := p.off
	if p.keyword("full") {
		return Full{}, nil
	}
	v, ok, err := p.quantity()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.expected(start, "percentage, pixel count or 'full'")
	}
	return v, nil
}

// point := "=" coordinate "," coordinate
func (p *parser) point() (Point, error) {
	if err := p.want("="); err != nil {
		return Point{}, err
	}
	h, err := p.coordinate()
	if err != nil {
		return Point{}, err
	}
	if err := p.want(","); err != nil {
		return Point{}, err
	}
	v, err := p.coordinate()
	if err != nil {
		return Point{}, err
	}
	return Point{Horizontal: h, Vertical: v}, nil
}

// coordinate := "centered" | percent | pixels
func (p *parser) coordinate() (Coordinate, error) {
	start := p.off
	if p.keyword("centered") {
		return Centered{}, nil
	}
	v, ok, err := p.quantity()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.expected(start, "percentage, pixel count or 'centered'")
	}
	return v, nil
}
