package lsp

import (
	"context"

	"github.com/pmezard/go-difflib/difflib"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/lintkit/rufflink/internal/ruff"
	"github.com/lintkit/rufflink/pkg/logger"
)

// FixAllTitle is the title of the synthesized whole-document action.
const FixAllTitle = "Fix all automatically fixable errors"

// CodeActionKindSourceFixAll is the source.fixAll action kind. The protocol
// 3.16 constant list stops at source.organizeImports, so it is declared here.
const CodeActionKindSourceFixAll = protocol.CodeActionKind("source.fixAll")

// Synthesizer produces the fix-all action by diffing a tool-autofixed buffer
// against the original.
type Synthesizer struct {
	invoker ruff.Invoker
	log     logger.Logger
}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer(invoker ruff.Invoker, log logger.Logger) *Synthesizer {
	return &Synthesizer{
		invoker: invoker,
		log:     log,
	}
}

// Synthesize re-invokes the tool in autofix mode. It returns nil when the
// invocation fails (the caller must apply nothing) or when the fixed output
// equals the buffer. Otherwise it returns exactly one fix-all action whose
// single edit replaces the whole document with the fixed buffer.
func (s *Synthesizer) Synthesize(
	ctx context.Context,
	uri protocol.DocumentUri,
	path, buffer string,
) (*protocol.CodeAction, error) {
	fixed, err := s.invoker.FixOnly(ctx, path, buffer)
	if err != nil {
		return nil, err
	}

	if fixed == buffer {
		return nil, nil
	}

	s.logDiff(path, buffer, fixed)

	kind := CodeActionKindSourceFixAll

	return &protocol.CodeAction{
		Title: FixAllTitle,
		Kind:  &kind,
		Edit: &protocol.WorkspaceEdit{
			Changes: map[protocol.DocumentUri][]protocol.TextEdit{
				uri: {
					{
						Range:   fullDocumentRange(buffer),
						NewText: fixed,
					},
				},
			},
		},
	}, nil
}

func (s *Synthesizer) logDiff(path, before, after string) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: path,
		ToFile:   path + " (fixed)",
		Context:  3,
	})
	if err != nil {
		return
	}

	s.log.Debug("fix-all produced changes", "path", path, "diff", diff)
}
