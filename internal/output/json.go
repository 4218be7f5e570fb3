package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes an indented JSON object.
type JSONFormatter struct{}

func (JSONFormatter) Format(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
