// Package severity provides severity level constants for diagnostics
// attached to document nodes during transformation.
//
// Node-level issues (unresolved references, invalid patterns, unknown
// fields) are recorded as diagnostics on the node rather than aborting
// processing, and each diagnostic carries one of these levels:
//   - SeverityInfo: informational notices about choices made
//   - SeverityWarning: recoverable issues worth surfacing
//   - SeverityError: constructs that could not be processed as specified
//   - SeverityCritical: constructs preserved verbatim because processing
//     them would lose data
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of a diagnostic recorded during
// document transformation.
type Severity int

const (
	// SeverityError indicates a construct that could not be processed as
	// specified, such as a $ref that failed to resolve.
	SeverityError Severity = iota

	// SeverityWarning indicates a recoverable issue that should be
	// surfaced, such as an invalid but preserved pattern field.
	SeverityWarning

	// SeverityInfo indicates informational notices about processing
	// choices. These are non-actionable and may be useful for debugging.
	SeverityInfo

	// SeverityCritical indicates constructs preserved verbatim because
	// processing them would lose data.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
