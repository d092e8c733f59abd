package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/densca/pkg/verify"
)

// sizeReport is the JSON-Lines shape of one searched size.
type sizeReport struct {
	Size           int     `json:"size"`
	Total          uint64  `json:"total"`
	Evaluated      uint64  `json:"evaluated"`
	Clean          bool    `json:"clean"`
	CounterExample *string `json:"counter_example,omitempty"`
	DurationMS     int64   `json:"duration_ms"`
}

// JSONReporter writes one JSON line per searched size.
type JSONReporter struct {
	Encoder *json.Encoder
}

// NewJSONReporter creates a reporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{Encoder: json.NewEncoder(w)}
}

// Report emits r as a single line.
func (h *JSONReporter) Report(r verify.Report) error {
	line := sizeReport{
		Size:       r.Size,
		Total:      r.Total,
		Evaluated:  r.Evaluated,
		Clean:      r.Clean(),
		DurationMS: r.Duration.Milliseconds(),
	}
	if r.Found {
		bits := fmt.Sprintf("%0*b", r.Size, r.CounterExample)
		line.CounterExample = &bits
	}
	return h.Encoder.Encode(line)
}
