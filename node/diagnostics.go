package node

import (
	"fmt"

	"github.com/erraggy/specfold/internal/severity"
)

// MetaDiagnostics is the metadata key under which diagnostics accumulate.
const MetaDiagnostics = "diagnostics"

// Severity levels re-exported for diagnostic construction.
const (
	SeverityError    = severity.SeverityError
	SeverityWarning  = severity.SeverityWarning
	SeverityInfo     = severity.SeverityInfo
	SeverityCritical = severity.SeverityCritical
)

// Diagnostic records a node-level issue found during transformation.
// Issues are attached to the node and processing continues; nothing is
// silently dropped from the tree.
type Diagnostic struct {
	// Path is the spec-path breadcrumb to the node (e.g. "paths./pets.get")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates how serious the issue is
	Severity severity.Severity
}

// String returns a formatted representation of the diagnostic.
func (d Diagnostic) String() string {
	if d.Path == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Path, d.Message)
}

// AddDiagnostic appends a diagnostic to the node's metadata.
func (n *Node) AddDiagnostic(d Diagnostic) {
	existing := n.Diagnostics()
	n.SetMeta(MetaDiagnostics, append(existing, d))
}

// Diagnostics returns the diagnostics recorded on the node, or nil.
func (n *Node) Diagnostics() []Diagnostic {
	if v, ok := n.Metadata[MetaDiagnostics]; ok {
		if ds, ok := v.([]Diagnostic); ok {
			return ds
		}
	}
	return nil
}
