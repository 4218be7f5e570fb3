package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes a YAML document.
type YAMLFormatter struct{}

func (YAMLFormatter) Format(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
