package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type printer struct {
	format string
}

func newPrinter(format string) (printer, error) {
	switch format {
	case formatText, formatJSON, formatYAML:
		return printer{format: format}, nil
	}
	return printer{}, fmt.Errorf("unsupported output format %q: must be %s, %s or %s", format, formatText, formatJSON, formatYAML)
}

// print encodes v as JSON or YAML, or calls text for the plain format.
func (p printer) print(w io.Writer, v any, text func(io.Writer) error) error {
	switch p.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return enc.Close()
	}
	return text(w)
}
