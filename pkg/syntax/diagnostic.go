package syntax

import (
	"encoding/json"
	"fmt"
)

// Severity classifies a diagnostic. Only the parser itself emits
// SeverityError; the remaining levels are reserved for downstream layers.
type Severity int

const (
	SeverityHint Severity = iota
	SeverityInformation
	SeverityWarning
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityHint:        "hint",
	SeverityInformation: "information",
	SeverityWarning:     "warning",
	SeverityError:       "error",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON encodes the severity as its lower-case name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its lower-case name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for sev, n := range severityNames {
		if n == name {
			*s = sev
			return nil
		}
	}
	return fmt.Errorf("unknown severity %q", name)
}

// Diagnostic describes a single well-formedness violation. Diagnostics are
// immutable values collected in source order.
type Diagnostic struct {
	Span     Span     `json:"span"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// NewDiagnostic creates a diagnostic for the given source span.
func NewDiagnostic(span Span, severity Severity, message string) Diagnostic {
	return Diagnostic{Span: span, Severity: severity, Message: message}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Span, d.Severity, d.Message)
}
