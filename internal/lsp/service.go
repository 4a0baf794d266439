package lsp

import (
	"context"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/lintkit/rufflink/internal/ruff"
	"github.com/lintkit/rufflink/pkg/logger"
)

// Service composes the translation pipeline behind the degradation policy:
// no failure from this layer ever surfaces to the editor; everything
// degrades to "nothing to report". The Service holds no mutable state and
// is safe for concurrent use; each call runs a fresh tool invocation.
type Service struct {
	invoker     ruff.Invoker
	builder     *Builder
	aggregator  Aggregator
	synthesizer *Synthesizer
	log         logger.Logger
}

// NewService creates a Service.
func NewService(invoker ruff.Invoker, classifier *Classifier, log logger.Logger) *Service {
	return &Service{
		invoker:     invoker,
		builder:     NewBuilder(classifier),
		synthesizer: NewSynthesizer(invoker, log),
		log:         log,
	}
}

// Diagnostics runs a check-mode invocation and builds diagnostics from its
// output. Invocation and parse failures are logged and swallowed: a broken
// or missing tool degrades to an empty list, never an error.
func (s *Service) Diagnostics(ctx context.Context, path, buffer string) []Diagnostic {
	out, err := s.invoker.Check(ctx, path, buffer)
	if err != nil {
		s.log.Error("check invocation failed", "path", path, "error", err)
		return []Diagnostic{}
	}

	raws, err := ruff.ParseDiagnostics(out)
	if err != nil {
		s.log.Error("check output unreadable", "path", path, "error", err)
		return []Diagnostic{}
	}

	diags := make([]Diagnostic, 0, len(raws))
	for _, raw := range raws {
		diags = append(diags, s.builder.Build(raw))
	}

	return diags
}

// CodeActions aggregates quick-fix and organize-imports actions from the
// stored diagnostics, then appends the fix-all action last when a live
// buffer is supplied and synthesis finds changes. A nil buffer means the
// document is not open; closed documents never get a fix-all action.
// Fix-all failures are logged and swallowed, leaving the original buffer
// authoritative.
func (s *Service) CodeActions(
	ctx context.Context,
	uri protocol.DocumentUri,
	path string,
	buffer *string,
	diags []Diagnostic,
) []protocol.CodeAction {
	actions := s.aggregator.Aggregate(uri, diags)

	if buffer == nil {
		return actions
	}

	fixAll, err := s.synthesizer.Synthesize(ctx, uri, path, *buffer)
	if err != nil {
		s.log.Error("fix-all synthesis failed", "path", path, "error", err)
		return actions
	}

	if fixAll != nil {
		actions = append(actions, *fixAll)
	}

	return actions
}
