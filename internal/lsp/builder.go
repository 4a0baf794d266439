package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/lintkit/rufflink/internal/ruff"
)

// Source tags diagnostics and actions produced by this translation layer.
const Source = "ruff"

// Action records a fix against its diagnostic so a later code-action request
// can reconstruct the edits without re-invoking the tool.
type Action struct {
	// Source identifies the tool that produced the fix.
	Source string `json:"source"`

	// Code is the rule code of the originating diagnostic.
	Code string `json:"code"`

	// Title is the human-readable action title, taken from the fix message.
	Title string `json:"title"`

	// Fix is the full fix payload, every edit preserved.
	Fix ruff.Fix `json:"fix"`
}

// Diagnostic is one reported issue in protocol coordinates. It is immutable
// after construction and holds at most one attached action.
type Diagnostic struct {
	Category Category       `json:"category"`
	Message  string         `json:"message"`
	Range    protocol.Range `json:"range"`
	Code     string         `json:"code"`
	URL      string         `json:"url,omitempty"`
	Action   *Action        `json:"action,omitempty"`
}

// Protocol renders the diagnostic as a protocol object.
func (d Diagnostic) Protocol() protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityWarning

	var tags []protocol.DiagnosticTag

	switch d.Category {
	case CategoryError:
		severity = protocol.DiagnosticSeverityError
	case CategoryUnusedCode:
		tags = []protocol.DiagnosticTag{protocol.DiagnosticTagUnnecessary}
	case CategoryWarning:
	}

	source := Source
	out := protocol.Diagnostic{
		Range:    d.Range,
		Severity: &severity,
		Source:   &source,
		Message:  d.Message,
		Tags:     tags,
	}

	if d.Code != "" {
		out.Code = &protocol.IntegerOrString{Value: d.Code}
	}

	if d.URL != "" {
		out.CodeDescription = &protocol.CodeDescription{HRef: protocol.URI(d.URL)}
	}

	return out
}

// Builder converts raw tool findings into diagnostics.
type Builder struct {
	classifier *Classifier
}

// NewBuilder creates a Builder using the given classifier.
func NewBuilder(classifier *Classifier) *Builder {
	return &Builder{classifier: classifier}
}

// Build converts one raw finding. Pure transform: positions are remapped,
// the code is classified, and a present fix becomes exactly one attached
// action titled by the fix message.
func (b *Builder) Build(raw ruff.RawDiagnostic) Diagnostic {
	d := Diagnostic{
		Category: b.classifier.Classify(raw.Code),
		Message:  raw.Message,
		Range:    rangeOf(raw.Location, raw.EndLocation),
		Code:     raw.Code,
		URL:      raw.URL,
	}

	if raw.Fix != nil {
		d.Action = &Action{
			Source: Source,
			Code:   raw.Code,
			Title:  raw.Fix.Message,
			Fix:    *raw.Fix,
		}
	}

	return d
}
