package sketch

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Pos is a location in a sketch source. Line and Column are 1-based; Column
// counts characters, not bytes.
type Pos struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Pos) String() string {
	name := p.Filename
	if name == "" {
		name = "<input>"
	}
	if p.Line == 0 {
		return name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}

// Source is a fully decoded sketch document.
type Source struct {
	Name string
	Text string

	lines []int // byte offset of each line start
}

// NewSource wraps already decoded text.
func NewSource(name, text string) *Source {
	s := &Source{Name: name, Text: text, lines: []int{0}}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			s.lines = append(s.lines, i+1)
		case '\n':
			s.lines = append(s.lines, i+1)
		}
	}
	return s
}

// ReadSource reads and decodes the file at path. Read and decoding failures
// are reported as IOError before any parsing happens.
func ReadSource(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{
			Kind: IOError,
			Pos:  Pos{Filename: path},
			Err:  fmt.Errorf("failed to read: %w", err),
		}
	}
	return Decode(path, data)
}

// Decode validates data as UTF-8, dropping a leading byte order mark.
func Decode(name string, data []byte) (*Source, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		off := 0
		for off < len(data) {
			r, size := utf8.DecodeRune(data[off:])
			if r == utf8.RuneError && size <= 1 {
				break
			}
			off += size
		}
		pos := NewSource(name, string(data[:off])).Pos(off)
		return nil, &Error{
			Kind: IOError,
			Pos:  pos,
			End:  pos,
			Err:  fmt.Errorf("invalid UTF-8 at byte %d", off),
		}
	}
	return NewSource(name, string(data)), nil
}

// Pos converts a byte offset into a position.
func (s *Source) Pos(offset int) Pos {
	if offset > len(s.Text) {
		offset = len(s.Text)
	}
	line := sort.Search(len(s.lines), func(i int) bool { return s.lines[i] > offset }) - 1
	if line < 0 {
		line = 0
	}
	start := s.lines[line]
	return Pos{
		Filename: s.Name,
		Offset:   offset,
		Line:     line + 1,
		Column:   utf8.RuneCountInString(s.Text[start:offset]) + 1,
	}
}

// Line returns the text of the 1-based line n without its terminator.
func (s *Source) Line(n int) string {
	if n < 1 || n > len(s.lines) {
		return ""
	}
	start := s.lines[n-1]
	end := len(s.Text)
	if n < len(s.lines) {
		end = s.lines[n]
	}
	for end > start && (s.Text[end-1] == '\n' || s.Text[end-1] == '\r') {
		end--
	}
	return s.Text[start:end]
}
