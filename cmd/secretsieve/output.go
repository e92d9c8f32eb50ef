package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/suryansh-23/secretsieve/internal/types"
	"github.com/suryansh-23/secretsieve/internal/ui"
)

// finding is one reported secret with its location in a source.
type finding struct {
	Source string `json:"source" yaml:"source"`
	Line   int    `json:"line" yaml:"line"`
	Type   string `json:"type" yaml:"type"`
	Value  string `json:"value" yaml:"value"`
	Start  int    `json:"start" yaml:"start"`
	End    int    `json:"end" yaml:"end"`
}

func writeFindings(w io.Writer, format types.Format, findings []finding) error {
	switch format {
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if findings == nil {
			findings = []finding{}
		}
		return enc.Encode(findings)
	case types.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if findings == nil {
			findings = []finding{}
		}
		if err := enc.Encode(findings); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case types.FormatText, "":
		for _, f := range findings {
			if _, err := fmt.Fprintln(w, ui.Finding(f.Source, f.Line, f.Start, f.End, f.Type, f.Value)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
