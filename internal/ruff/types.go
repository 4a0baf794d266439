// Package ruff invokes the ruff executable and parses its wire format.
package ruff

// Location is a one-indexed (row, column) position as reported by ruff.
type Location struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Edit is a single text replacement in original-document coordinates.
type Edit struct {
	Content     string   `json:"content"`
	Location    Location `json:"location"`
	EndLocation Location `json:"end_location"`
}

// Applicability indicates how safe a fix is to auto-apply. It is a hint to
// the host, not enforced here.
type Applicability string

const (
	// ApplicabilityAutomatic marks fixes that are always safe to apply.
	ApplicabilityAutomatic Applicability = "automatic"

	// ApplicabilitySuggested marks fixes that are probably correct but may
	// change semantics.
	ApplicabilitySuggested Applicability = "suggested"

	// ApplicabilityManual marks fixes that need human review.
	ApplicabilityManual Applicability = "manual"

	// ApplicabilityUnspecified marks fixes without an applicability tag.
	ApplicabilityUnspecified Applicability = "unspecified"
)

// Fix is an ordered set of independent, non-overlapping edits that resolves
// a diagnostic, plus a human-readable message.
type Fix struct {
	Applicability Applicability `json:"applicability"`
	Edits         []Edit        `json:"edits"`
	Message       string        `json:"message"`
}

// RawDiagnostic is one finding as emitted by ruff's JSON output. It is
// transient: parsed from one output element and consumed immediately by the
// diagnostic builder.
type RawDiagnostic struct {
	Code        string   `json:"code"`
	Location    Location `json:"location"`
	EndLocation Location `json:"end_location"`
	Filename    string   `json:"filename"`
	Fix         *Fix     `json:"fix"`
	Message     string   `json:"message"`
	NoqaRow     int      `json:"noqa_row"`
	URL         string   `json:"url"`
}
