package shadow

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report headlines.
const (
	MatchLine      = "✅ Outputs match!"
	DifferenceLine = "❌ Differences found:"
)

// WriteText writes the human-readable verdict, one discrepancy per line.
func WriteText(w io.Writer, result *ComparisonResult) error {
	if result.AllMatch {
		_, err := fmt.Fprintln(w, MatchLine)
		return err
	}
	if _, err := fmt.Fprintln(w, DifferenceLine); err != nil {
		return err
	}
	for _, d := range result.Discrepancies {
		if _, err := fmt.Fprintf(w, "  ✗ %s\n", d); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the result as indented JSON.
func WriteJSON(w io.Writer, result *ComparisonResult) error {
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
