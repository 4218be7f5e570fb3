package sketch

import (
	"fmt"
	"math"
	"strings"
)

// scanner is a cursor over a decoded source. Every method either consumes
// input and reports success, or leaves the cursor where it found it.
type scanner struct {
	src  *Source
	text string
	off  int
}

func newScanner(src *Source) *scanner {
	return &scanner{src: src, text: src.Text}
}

func (s *scanner) eof() bool { return s.off >= len(s.text) }

func (s *scanner) rest() string { return s.text[s.off:] }

// skip consumes blanks and comments. Line terminators are never skipped; an
// unterminated block comment is left in place for the caller to reject.
func (s *scanner) skip() {
	for !s.eof() {
		rest := s.rest()
		switch {
		case rest[0] == ' ' || rest[0] == '\t':
			s.off++
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return
			}
			s.off += 2 + end + 2
		case strings.HasPrefix(rest, "//"):
			end := strings.IndexAny(rest, "\r\n")
			if end < 0 {
				end = len(rest)
			}
			s.off += end
		default:
			return
		}
	}
}

// lineEnding consumes skippable input followed by exactly one \r\n, \n or \r.
func (s *scanner) lineEnding() bool {
	start := s.off
	s.skip()
	switch {
	case strings.HasPrefix(s.rest(), "\r\n"):
		s.off += 2
	case strings.HasPrefix(s.rest(), "\n"), strings.HasPrefix(s.rest(), "\r"):
		s.off++
	default:
		s.off = start
		return false
	}
	return true
}

// atEnd reports whether only skippable input remains on the current line
// and that line is the last one.
func (s *scanner) atEnd() bool {
	start := s.off
	s.skip()
	end := s.eof()
	s.off = start
	return end
}

// keyword consumes lit after skipping. Keywords match as a literal prefix.
func (s *scanner) keyword(lit string) bool {
	start := s.off
	s.skip()
	if strings.HasPrefix(s.rest(), lit) {
		s.off += len(lit)
		return true
	}
	s.off = start
	return false
}

// want is keyword past a commit point: a miss is reported at the end of the
// last consumed token.
func (s *scanner) want(lit string) error {
	start := s.off
	if s.keyword(lit) {
		return nil
	}
	return s.expected(start, "'"+lit+"'")
}

func (s *scanner) expected(at int, what string) *Error {
	return s.src.errorAt(SyntaxError, at, at, what, nil)
}

// number consumes a run of decimal digits. ok is false when none were found.
func (s *scanner) number() (n int, ok bool, err error) {
	start := s.off
	for !s.eof() && s.text[s.off] >= '0' && s.text[s.off] <= '9' {
		d := int(s.text[s.off] - '0')
		if n > (math.MaxInt32-d)/10 {
			for !s.eof() && s.text[s.off] >= '0' && s.text[s.off] <= '9' {
				s.off++
			}
			digits := s.text[start:s.off]
			s.off = start
			return 0, false, s.src.errorAt(SyntaxError, start, start+len(digits), "",
				fmt.Errorf("number %s is out of range", digits))
		}
		n = n*10 + d
		s.off++
	}
	return n, s.off > start, nil
}

// measure is a value usable both as a Dimension and as a Coordinate.
type measure interface {
	Dimension
	Coordinate
}

// quantity reads digit+ followed by '%' or "px". The digits commit: a
// missing unit is an error at the end of the digits.
func (s *scanner) quantity() (v measure, ok bool, err error) {
	start := s.off
	s.skip()
	n, ok, err := s.number()
	if err != nil {
		return nil, false, err
	}
	if !ok {
		s.off = start
		return nil, false, nil
	}
	switch rest := s.rest(); {
	case strings.HasPrefix(rest, "%"):
		s.off++
		return Percent(float64(n) / 100), true, nil
	case strings.HasPrefix(rest, "px"):
		s.off += 2
		return Pixels(n), true, nil
	}
	return nil, false, s.expected(s.off, "'%' or 'px'")
}

// quoted reads a single- or double-quoted string. There are no escapes; the
// contents run to the next matching quote, across lines if need be.
func (s *scanner) quoted() (string, bool, error) {
	start := s.off
	s.skip()
	if s.eof() || (s.text[s.off] != '"' && s.text[s.off] != '\'') {
		s.off = start
		return "", false, nil
	}
	quote := s.text[s.off : s.off+1]
	body := s.off + 1
	end := strings.Index(s.text[body:], quote)
	if end < 0 {
		closing := `closing '"'`
		if quote == "'" {
			closing = `closing "'"`
		}
		return "", false, s.expected(len(s.text), closing)
	}
	s.off = body + end + 1
	return s.text[body : body+end], true, nil
}
